package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Gunvolt24/dance_center/internal/domain"
	"github.com/Gunvolt24/dance_center/internal/ports"
)

var _ ports.ScheduleItemRepository = (*ScheduleItemRepository)(nil)

// ScheduleItemRepository — слоты расписания в Postgres.
// Время хранится в колонках TIME (микросекунды от полуночи).
type ScheduleItemRepository struct {
	pool *pgxpool.Pool
}

func NewScheduleItemRepository(pool *pgxpool.Pool) *ScheduleItemRepository {
	return &ScheduleItemRepository{pool: pool}
}

const scheduleItemColumns = `id, hall_id, group_id, day_of_week, start_time, end_time`

func scanScheduleItem(row pgx.CollectableRow) (*domain.ScheduleItem, error) {
	var (
		it         domain.ScheduleItem
		start, end pgtype.Time
	)
	if err := row.Scan(&it.ID, &it.HallID, &it.GroupID, &it.DayOfWeek, &start, &end); err != nil {
		return nil, err
	}
	var err error
	if it.StartTime, err = fromPgTime(start); err != nil {
		return nil, err
	}
	if it.EndTime, err = fromPgTime(end); err != nil {
		return nil, err
	}
	return &it, nil
}

func toPgTime(t domain.TimeOfDay) pgtype.Time {
	if !t.Valid() {
		return pgtype.Time{}
	}
	return pgtype.Time{Microseconds: t.Duration().Microseconds(), Valid: true}
}

func fromPgTime(t pgtype.Time) (domain.TimeOfDay, error) {
	if !t.Valid {
		return domain.TimeOfDay{}, errors.New("time of day is NULL")
	}
	return domain.TimeOfDayFromDuration(time.Duration(t.Microseconds) * time.Microsecond)
}

func (r *ScheduleItemRepository) FindByID(ctx context.Context, id int64) (*domain.ScheduleItem, error) {
	rows, _ := r.pool.Query(ctx, `SELECT `+scheduleItemColumns+` FROM schedule_items WHERE id = $1`, id)
	item, err := pgx.CollectExactlyOneRow(rows, scanScheduleItem)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, wrapErr("select schedule item", err)
	}
	return item, nil
}

func (r *ScheduleItemRepository) FindAll(ctx context.Context) ([]*domain.ScheduleItem, error) {
	return r.list(ctx, "select schedule items", `SELECT `+scheduleItemColumns+` FROM schedule_items ORDER BY id`)
}

func (r *ScheduleItemRepository) Save(ctx context.Context, item *domain.ScheduleItem) (*domain.ScheduleItem, error) {
	return saveScheduleItem(ctx, r.pool, item)
}

// SaveAll — одна транзакция: при первой же ошибке ничего не сохраняется.
func (r *ScheduleItemRepository) SaveAll(ctx context.Context, items []*domain.ScheduleItem) ([]*domain.ScheduleItem, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, wrapErr("begin", err)
	}
	defer rollback(ctx, tx)

	out := make([]*domain.ScheduleItem, 0, len(items))
	for i, it := range items {
		saved, err := saveScheduleItem(ctx, tx, it)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		out = append(out, saved)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, wrapErr("commit", err)
	}
	return out, nil
}

func (r *ScheduleItemRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM schedule_items WHERE id = $1`, id); err != nil {
		return wrapErr("delete schedule item", err)
	}
	return nil
}

func (r *ScheduleItemRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	return exists(ctx, r.pool, `SELECT EXISTS (SELECT 1 FROM schedule_items WHERE id = $1)`, id)
}

func (r *ScheduleItemRepository) FindExact(ctx context.Context, hallID, groupID int64, dayOfWeek string, start, end domain.TimeOfDay) ([]*domain.ScheduleItem, error) {
	return r.list(ctx, "select exact schedule items", `
		SELECT `+scheduleItemColumns+` FROM schedule_items
		WHERE hall_id = $1 AND group_id = $2 AND day_of_week = $3 AND start_time = $4 AND end_time = $5
		ORDER BY id
	`, hallID, groupID, dayOfWeek, toPgTime(start), toPgTime(end))
}

func (r *ScheduleItemRepository) FindByDayOfWeekAndHall(ctx context.Context, dayOfWeek string, hallID int64) ([]*domain.ScheduleItem, error) {
	return r.list(ctx, "select schedule items by day and hall", `
		SELECT `+scheduleItemColumns+` FROM schedule_items
		WHERE day_of_week = $1 AND hall_id = $2
		ORDER BY start_time, id
	`, dayOfWeek, hallID)
}

func (r *ScheduleItemRepository) FindAllByGroup(ctx context.Context, groupID int64) ([]*domain.ScheduleItem, error) {
	return r.list(ctx, "select schedule items by group", `
		SELECT `+scheduleItemColumns+` FROM schedule_items
		WHERE group_id = $1
		ORDER BY id
	`, groupID)
}

func (r *ScheduleItemRepository) list(ctx context.Context, op, sql string, args ...any) ([]*domain.ScheduleItem, error) {
	rows, _ := r.pool.Query(ctx, sql, args...)
	items, err := pgx.CollectRows(rows, scanScheduleItem)
	if err != nil {
		return nil, wrapErr(op, err)
	}
	return items, nil
}

func saveScheduleItem(ctx context.Context, q querier, item *domain.ScheduleItem) (*domain.ScheduleItem, error) {
	saved := item.Clone()
	if saved.ID == 0 {
		if err := q.QueryRow(ctx, `
			INSERT INTO schedule_items (hall_id, group_id, day_of_week, start_time, end_time)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id
		`, saved.HallID, saved.GroupID, saved.DayOfWeek, toPgTime(saved.StartTime), toPgTime(saved.EndTime),
		).Scan(&saved.ID); err != nil {
			return nil, wrapErr("insert schedule item", err)
		}
		return saved, nil
	}

	tag, err := q.Exec(ctx, `
		UPDATE schedule_items
		SET hall_id = $2, group_id = $3, day_of_week = $4, start_time = $5, end_time = $6
		WHERE id = $1
	`, saved.ID, saved.HallID, saved.GroupID, saved.DayOfWeek, toPgTime(saved.StartTime), toPgTime(saved.EndTime))
	if err != nil {
		return nil, wrapErr("update schedule item", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, domain.NewNotFound(domain.EntityScheduleItem, saved.ID)
	}
	return saved, nil
}
