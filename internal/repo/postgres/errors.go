package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Gunvolt24/dance_center/internal/domain"
)

// Коды SQLSTATE, которые транслируются в ошибки ядра.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// fkEntities — на какую сущность указывает внешний ключ.
var fkEntities = map[string]domain.Entity{
	"dance_groups_trainer_id_fkey":   domain.EntityTrainer,
	"group_students_student_id_fkey": domain.EntityStudent,
	"group_students_group_id_fkey":   domain.EntityGroup,
	"schedule_items_hall_id_fkey":    domain.EntityHall,
	"schedule_items_group_id_fkey":   domain.EntityGroup,
}

// wrapErr — оборачивает ошибку драйвера с описанием операции.
// Нарушение уникальности становится ErrConflict, внешнего ключа — ErrNotFound.
func wrapErr(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return fmt.Errorf("%s: %w: unique constraint %s", op, domain.ErrConflict, pgErr.ConstraintName)
		case pgForeignKeyViolation:
			if entity, ok := fkEntities[pgErr.ConstraintName]; ok {
				return fmt.Errorf("%s: %w: referenced %s does not exist", op, domain.ErrNotFound, entity)
			}
			return fmt.Errorf("%s: %w: foreign key %s", op, domain.ErrNotFound, pgErr.ConstraintName)
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}

// rollback — для defer после Begin. После Commit вернётся ErrTxClosed — игнорируем.
func rollback(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		_ = err
	}
}

// querier — общее подмножество пула и транзакции.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}
