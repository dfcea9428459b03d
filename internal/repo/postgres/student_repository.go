package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Gunvolt24/dance_center/internal/domain"
	"github.com/Gunvolt24/dance_center/internal/ports"
)

var _ ports.StudentRepository = (*StudentRepository)(nil)

// StudentRepository — ученики в Postgres.
type StudentRepository struct {
	pool *pgxpool.Pool
}

func NewStudentRepository(pool *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{pool: pool}
}

const studentColumns = `id, name, phone_number`

func scanStudent(row pgx.CollectableRow) (*domain.Student, error) {
	var s domain.Student
	if err := row.Scan(&s.ID, &s.Name, &s.Phone); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *StudentRepository) FindByID(ctx context.Context, id int64) (*domain.Student, error) {
	rows, _ := r.pool.Query(ctx, `SELECT `+studentColumns+` FROM students WHERE id = $1`, id)
	student, err := pgx.CollectExactlyOneRow(rows, scanStudent)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, wrapErr("select student", err)
	}
	return student, nil
}

func (r *StudentRepository) FindAll(ctx context.Context) ([]*domain.Student, error) {
	rows, _ := r.pool.Query(ctx, `SELECT `+studentColumns+` FROM students ORDER BY id`)
	students, err := pgx.CollectRows(rows, scanStudent)
	if err != nil {
		return nil, wrapErr("select students", err)
	}
	return students, nil
}

func (r *StudentRepository) Save(ctx context.Context, student *domain.Student) (*domain.Student, error) {
	saved := student.Clone()
	if saved.ID == 0 {
		if err := r.pool.QueryRow(ctx, `
			INSERT INTO students (name, phone_number) VALUES ($1, $2)
			RETURNING id
		`, saved.Name, saved.Phone).Scan(&saved.ID); err != nil {
			return nil, wrapErr("insert student", err)
		}
		return saved, nil
	}

	tag, err := r.pool.Exec(ctx, `
		UPDATE students SET name = $2, phone_number = $3 WHERE id = $1
	`, saved.ID, saved.Name, saved.Phone)
	if err != nil {
		return nil, wrapErr("update student", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, domain.NewNotFound(domain.EntityStudent, saved.ID)
	}
	return saved, nil
}

// Delete — ученик исчезает из составов групп (group_students, каскад).
func (r *StudentRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM students WHERE id = $1`, id); err != nil {
		return wrapErr("delete student", err)
	}
	return nil
}

func (r *StudentRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	return exists(ctx, r.pool, `SELECT EXISTS (SELECT 1 FROM students WHERE id = $1)`, id)
}

func (r *StudentRepository) FindByNameAndPhone(ctx context.Context, name, phone string) ([]*domain.Student, error) {
	rows, _ := r.pool.Query(ctx, `
		SELECT `+studentColumns+` FROM students
		WHERE name = $1 AND phone_number = $2
		ORDER BY id
	`, name, phone)
	students, err := pgx.CollectRows(rows, scanStudent)
	if err != nil {
		return nil, wrapErr("select students by identity", err)
	}
	return students, nil
}
