package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Gunvolt24/dance_center/internal/domain"
	"github.com/Gunvolt24/dance_center/internal/ports"
)

var _ ports.TrainerRepository = (*TrainerRepository)(nil)

// TrainerRepository — тренеры в Postgres.
type TrainerRepository struct {
	pool *pgxpool.Pool
}

func NewTrainerRepository(pool *pgxpool.Pool) *TrainerRepository {
	return &TrainerRepository{pool: pool}
}

const trainerColumns = `id, name, phone_number, dance_style`

func scanTrainer(row pgx.CollectableRow) (*domain.Trainer, error) {
	var t domain.Trainer
	if err := row.Scan(&t.ID, &t.Name, &t.Phone, &t.DanceStyle); err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TrainerRepository) FindByID(ctx context.Context, id int64) (*domain.Trainer, error) {
	rows, _ := r.pool.Query(ctx, `SELECT `+trainerColumns+` FROM trainers WHERE id = $1`, id)
	trainer, err := pgx.CollectExactlyOneRow(rows, scanTrainer)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, wrapErr("select trainer", err)
	}
	return trainer, nil
}

func (r *TrainerRepository) FindAll(ctx context.Context) ([]*domain.Trainer, error) {
	rows, _ := r.pool.Query(ctx, `SELECT `+trainerColumns+` FROM trainers ORDER BY id`)
	trainers, err := pgx.CollectRows(rows, scanTrainer)
	if err != nil {
		return nil, wrapErr("select trainers", err)
	}
	return trainers, nil
}

func (r *TrainerRepository) Save(ctx context.Context, trainer *domain.Trainer) (*domain.Trainer, error) {
	saved := trainer.Clone()
	if saved.ID == 0 {
		if err := r.pool.QueryRow(ctx, `
			INSERT INTO trainers (name, phone_number, dance_style) VALUES ($1, $2, $3)
			RETURNING id
		`, saved.Name, saved.Phone, saved.DanceStyle).Scan(&saved.ID); err != nil {
			return nil, wrapErr("insert trainer", err)
		}
		return saved, nil
	}

	tag, err := r.pool.Exec(ctx, `
		UPDATE trainers SET name = $2, phone_number = $3, dance_style = $4 WHERE id = $1
	`, saved.ID, saved.Name, saved.Phone, saved.DanceStyle)
	if err != nil {
		return nil, wrapErr("update trainer", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, domain.NewNotFound(domain.EntityTrainer, saved.ID)
	}
	return saved, nil
}

// Delete — группы тренера (и их слоты) удаляются каскадно.
func (r *TrainerRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM trainers WHERE id = $1`, id); err != nil {
		return wrapErr("delete trainer", err)
	}
	return nil
}

func (r *TrainerRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	return exists(ctx, r.pool, `SELECT EXISTS (SELECT 1 FROM trainers WHERE id = $1)`, id)
}

func (r *TrainerRepository) FindByNameAndPhoneAndDanceStyle(ctx context.Context, name, phone, danceStyle string) ([]*domain.Trainer, error) {
	rows, _ := r.pool.Query(ctx, `
		SELECT `+trainerColumns+` FROM trainers
		WHERE name = $1 AND phone_number = $2 AND dance_style = $3
		ORDER BY id
	`, name, phone, danceStyle)
	trainers, err := pgx.CollectRows(rows, scanTrainer)
	if err != nil {
		return nil, wrapErr("select trainers by identity", err)
	}
	return trainers, nil
}
