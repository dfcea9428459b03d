package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Gunvolt24/dance_center/internal/domain"
	"github.com/Gunvolt24/dance_center/internal/ports"
)

// Проверка, что HallRepository удовлетворяет интерфейсу HallRepository.
var _ ports.HallRepository = (*HallRepository)(nil)

// HallRepository — залы в Postgres (pgxpool).
type HallRepository struct {
	pool *pgxpool.Pool
}

// NewHallRepository — конструктор HallRepository.
func NewHallRepository(pool *pgxpool.Pool) *HallRepository { return &HallRepository{pool: pool} }

const hallColumns = `id, name, area`

func scanHall(row pgx.CollectableRow) (*domain.Hall, error) {
	var h domain.Hall
	if err := row.Scan(&h.ID, &h.Name, &h.Area); err != nil {
		return nil, err
	}
	return &h, nil
}

// FindByID — (nil, nil), если зала нет.
func (r *HallRepository) FindByID(ctx context.Context, id int64) (*domain.Hall, error) {
	rows, _ := r.pool.Query(ctx, `SELECT `+hallColumns+` FROM halls WHERE id = $1`, id)
	hall, err := pgx.CollectExactlyOneRow(rows, scanHall)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, wrapErr("select hall", err)
	}
	return hall, nil
}

func (r *HallRepository) FindAll(ctx context.Context) ([]*domain.Hall, error) {
	rows, _ := r.pool.Query(ctx, `SELECT `+hallColumns+` FROM halls ORDER BY id`)
	halls, err := pgx.CollectRows(rows, scanHall)
	if err != nil {
		return nil, wrapErr("select halls", err)
	}
	return halls, nil
}

// Save — INSERT при ID == 0, иначе UPDATE существующей строки.
func (r *HallRepository) Save(ctx context.Context, hall *domain.Hall) (*domain.Hall, error) {
	saved := hall.Clone()
	if saved.ID == 0 {
		if err := r.pool.QueryRow(ctx, `
			INSERT INTO halls (name, area) VALUES ($1, $2)
			RETURNING id
		`, saved.Name, saved.Area).Scan(&saved.ID); err != nil {
			return nil, wrapErr("insert hall", err)
		}
		return saved, nil
	}

	tag, err := r.pool.Exec(ctx, `
		UPDATE halls SET name = $2, area = $3 WHERE id = $1
	`, saved.ID, saved.Name, saved.Area)
	if err != nil {
		return nil, wrapErr("update hall", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, domain.NewNotFound(domain.EntityHall, saved.ID)
	}
	return saved, nil
}

// Delete — слоты зала удаляются каскадно (ON DELETE CASCADE).
func (r *HallRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM halls WHERE id = $1`, id); err != nil {
		return wrapErr("delete hall", err)
	}
	return nil
}

func (r *HallRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	return exists(ctx, r.pool, `SELECT EXISTS (SELECT 1 FROM halls WHERE id = $1)`, id)
}

func (r *HallRepository) FindByName(ctx context.Context, name string) (*domain.Hall, error) {
	rows, _ := r.pool.Query(ctx, `SELECT `+hallColumns+` FROM halls WHERE name = $1`, name)
	hall, err := pgx.CollectExactlyOneRow(rows, scanHall)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, wrapErr("select hall by name", err)
	}
	return hall, nil
}

func exists(ctx context.Context, q querier, sql string, args ...any) (bool, error) {
	var ok bool
	if err := q.QueryRow(ctx, sql, args...).Scan(&ok); err != nil {
		return false, wrapErr("exists", err)
	}
	return ok, nil
}
