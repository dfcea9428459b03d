package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Gunvolt24/dance_center/internal/domain"
	"github.com/Gunvolt24/dance_center/internal/ports"
)

var _ ports.GroupRepository = (*GroupRepository)(nil)

// GroupRepository — группы в Postgres.
// Состав хранится в group_students (с порядком), слоты — в schedule_items.
type GroupRepository struct {
	pool *pgxpool.Pool
}

func NewGroupRepository(pool *pgxpool.Pool) *GroupRepository { return &GroupRepository{pool: pool} }

const groupColumns = `g.id, g.difficulty, g.trainer_id`

func scanGroup(row pgx.CollectableRow) (*domain.Group, error) {
	var g domain.Group
	if err := row.Scan(&g.ID, &g.Difficulty, &g.TrainerID); err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *GroupRepository) FindByID(ctx context.Context, id int64) (*domain.Group, error) {
	return findOneGroup(ctx, r.pool, `SELECT `+groupColumns+` FROM dance_groups g WHERE g.id = $1`, id)
}

func (r *GroupRepository) FindAll(ctx context.Context) ([]*domain.Group, error) {
	return findGroups(ctx, r.pool, `SELECT `+groupColumns+` FROM dance_groups g ORDER BY g.id`)
}

// Save — строка группы и полный состав заменяются в одной транзакции.
func (r *GroupRepository) Save(ctx context.Context, group *domain.Group) (*domain.Group, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, wrapErr("begin", err)
	}
	defer rollback(ctx, tx)

	id := group.ID
	if id == 0 {
		if err = tx.QueryRow(ctx, `
			INSERT INTO dance_groups (difficulty, trainer_id) VALUES ($1, $2)
			RETURNING id
		`, group.Difficulty, group.TrainerID).Scan(&id); err != nil {
			return nil, wrapErr("insert group", err)
		}
	} else {
		tag, execErr := tx.Exec(ctx, `
			UPDATE dance_groups SET difficulty = $2, trainer_id = $3 WHERE id = $1
		`, id, group.Difficulty, group.TrainerID)
		if execErr != nil {
			return nil, wrapErr("update group", execErr)
		}
		if tag.RowsAffected() == 0 {
			return nil, domain.NewNotFound(domain.EntityGroup, id)
		}
	}

	// Состав — replace: удаляем и вставляем заново через COPY.
	if _, err = tx.Exec(ctx, `DELETE FROM group_students WHERE group_id = $1`, id); err != nil {
		return nil, wrapErr("delete group students", err)
	}
	if err = copyGroupStudents(ctx, tx, id, group.StudentIDs); err != nil {
		return nil, err
	}

	saved, err := findOneGroup(ctx, tx, `SELECT `+groupColumns+` FROM dance_groups g WHERE g.id = $1`, id)
	if err != nil {
		return nil, err
	}
	if err = tx.Commit(ctx); err != nil {
		return nil, wrapErr("commit", err)
	}
	return saved, nil
}

// Delete — слоты и записи состава удаляются каскадно.
func (r *GroupRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM dance_groups WHERE id = $1`, id); err != nil {
		return wrapErr("delete group", err)
	}
	return nil
}

func (r *GroupRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	return exists(ctx, r.pool, `SELECT EXISTS (SELECT 1 FROM dance_groups WHERE id = $1)`, id)
}

func (r *GroupRepository) FindByTrainerAndDifficulty(ctx context.Context, trainerID int64, difficulty string) (*domain.Group, error) {
	return findOneGroup(ctx, r.pool, `
		SELECT `+groupColumns+` FROM dance_groups g
		WHERE g.trainer_id = $1 AND g.difficulty = $2
	`, trainerID, difficulty)
}

func (r *GroupRepository) FindAllByDanceStyle(ctx context.Context, danceStyle string) ([]*domain.Group, error) {
	return findGroups(ctx, r.pool, `
		SELECT `+groupColumns+` FROM dance_groups g
		JOIN trainers t ON t.id = g.trainer_id
		WHERE t.dance_style = $1
		ORDER BY g.id
	`, danceStyle)
}

func findOneGroup(ctx context.Context, q querier, sql string, args ...any) (*domain.Group, error) {
	rows, _ := q.Query(ctx, sql, args...)
	group, err := pgx.CollectExactlyOneRow(rows, scanGroup)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, wrapErr("select group", err)
	}
	if err := loadGroupRelations(ctx, q, []*domain.Group{group}); err != nil {
		return nil, err
	}
	return group, nil
}

func findGroups(ctx context.Context, q querier, sql string, args ...any) ([]*domain.Group, error) {
	rows, _ := q.Query(ctx, sql, args...)
	groups, err := pgx.CollectRows(rows, scanGroup)
	if err != nil {
		return nil, wrapErr("select groups", err)
	}
	if err := loadGroupRelations(ctx, q, groups); err != nil {
		return nil, err
	}
	return groups, nil
}

// loadGroupRelations — два запроса на всю пачку групп: состав и слоты,
// затем склейка в памяти.
func loadGroupRelations(ctx context.Context, q querier, groups []*domain.Group) error {
	if len(groups) == 0 {
		return nil
	}
	byID := make(map[int64]*domain.Group, len(groups))
	ids := make([]int64, 0, len(groups))
	for _, g := range groups {
		byID[g.ID] = g
		ids = append(ids, g.ID)
	}

	if err := collectPairs(ctx, q, `
		SELECT group_id, student_id FROM group_students
		WHERE group_id = ANY($1::bigint[])
		ORDER BY group_id, position
	`, ids, func(groupID, studentID int64) {
		g := byID[groupID]
		g.StudentIDs = append(g.StudentIDs, studentID)
	}); err != nil {
		return wrapErr("select group students", err)
	}

	if err := collectPairs(ctx, q, `
		SELECT group_id, id FROM schedule_items
		WHERE group_id = ANY($1::bigint[])
		ORDER BY group_id, id
	`, ids, func(groupID, itemID int64) {
		g := byID[groupID]
		g.ScheduleItemIDs = append(g.ScheduleItemIDs, itemID)
	}); err != nil {
		return wrapErr("select group schedule items", err)
	}
	return nil
}

func collectPairs(ctx context.Context, q querier, sql string, ids []int64, fn func(a, b int64)) error {
	rows, err := q.Query(ctx, sql, ids)
	if err != nil {
		return err
	}
	var a, b int64
	_, err = pgx.ForEachRow(rows, []any{&a, &b}, func() error {
		fn(a, b)
		return nil
	})
	return err
}

// copyGroupStudents — вставка состава через COPY; повторные id пропускаются.
func copyGroupStudents(ctx context.Context, tx pgx.Tx, groupID int64, studentIDs []int64) error {
	seen := make(map[int64]struct{}, len(studentIDs))
	rows := make([][]any, 0, len(studentIDs))
	for _, sid := range studentIDs {
		if _, dup := seen[sid]; dup {
			continue
		}
		seen[sid] = struct{}{}
		rows = append(rows, []any{groupID, sid, len(rows)})
	}
	if len(rows) == 0 {
		return nil
	}

	if _, err := tx.CopyFrom(ctx,
		pgx.Identifier{"group_students"},
		[]string{"group_id", "student_id", "position"},
		pgx.CopyFromRows(rows),
	); err != nil {
		return wrapErr("copy group students", err)
	}
	return nil
}
