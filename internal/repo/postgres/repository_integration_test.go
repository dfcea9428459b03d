//go:build integration

package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/Gunvolt24/dance_center/internal/domain"
	pgrepo "github.com/Gunvolt24/dance_center/internal/repo/postgres"
	"github.com/Gunvolt24/dance_center/internal/testutil"
)

type repos struct {
	pool     *pgxpool.Pool
	halls    *pgrepo.HallRepository
	trainers *pgrepo.TrainerRepository
	students *pgrepo.StudentRepository
	groups   *pgrepo.GroupRepository
	items    *pgrepo.ScheduleItemRepository
}

// startRepos — свой контейнер Postgres на тест, миграции и все репозитории.
func startRepos(t *testing.T) (context.Context, repos) {
	t.Helper()

	// длинный контекст — только на подъём контейнера
	ctxStart, cancelStart := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancelStart()

	pg, stopPG, err := testutil.StartPostgresTC(ctxStart)
	require.NoError(t, err)
	t.Cleanup(func() { _ = stopPG(context.Background()) })

	// короткий контекст — на сами БД-операции
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	t.Cleanup(cancel)

	pool := pg.Pool
	require.NoError(t, testutil.ApplyMigrationsGoose(ctx, pool))

	return ctx, repos{
		pool:     pool,
		halls:    pgrepo.NewHallRepository(pool),
		trainers: pgrepo.NewTrainerRepository(pool),
		students: pgrepo.NewStudentRepository(pool),
		groups:   pgrepo.NewGroupRepository(pool),
		items:    pgrepo.NewScheduleItemRepository(pool),
	}
}

// 1) Повторный прогон миграций ничего не применяет
func TestMigrate_Idempotent_TC(t *testing.T) {
	t.Parallel()
	ctx, r := startRepos(t)

	n, err := pgrepo.Migrate(ctx, r.pool, nopLogger{})
	require.NoError(t, err)
	require.Zero(t, n)
}

// 2) Залы: вставка, обновление, поиск по имени, уникальность имени
func TestHallRepository_CRUD_TC(t *testing.T) {
	t.Parallel()
	ctx, r := startRepos(t)

	hall, err := r.halls.Save(ctx, testutil.MakeHall(testutil.WithHallName("Big")))
	require.NoError(t, err)
	require.Positive(t, hall.ID)

	got, err := r.halls.FindByName(ctx, "Big")
	require.NoError(t, err)
	require.Equal(t, hall, got)

	hall.Area = 300
	updated, err := r.halls.Save(ctx, hall)
	require.NoError(t, err)
	require.Equal(t, 300, updated.Area)

	_, err = r.halls.Save(ctx, testutil.MakeHall(testutil.WithHallName("Big")))
	require.ErrorIs(t, err, domain.ErrConflict)

	_, err = r.halls.Save(ctx, &domain.Hall{ID: 9999, Name: "Ghost", Area: 1})
	require.ErrorIs(t, err, domain.ErrNotFound)

	missing, err := r.halls.FindByID(ctx, 9999)
	require.NoError(t, err)
	require.Nil(t, missing)

	ok, err := r.halls.ExistsByID(ctx, hall.ID)
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, r.halls.Delete(ctx, hall.ID))
	ok, err = r.halls.ExistsByID(ctx, hall.ID)
	require.NoError(t, err)
	require.False(t, ok)
}

// 3) Группа: состав с порядком и без дублей, слоты, поиск по стилю
func TestGroupRepository_RelationsAndStyle_TC(t *testing.T) {
	t.Parallel()
	ctx, r := startRepos(t)

	trainer, err := r.trainers.Save(ctx, testutil.MakeTrainer(testutil.WithDanceStyle("tango")))
	require.NoError(t, err)
	other, err := r.trainers.Save(ctx, testutil.MakeTrainer(testutil.WithDanceStyle("salsa")))
	require.NoError(t, err)
	s1, err := r.students.Save(ctx, testutil.MakeStudent())
	require.NoError(t, err)
	s2, err := r.students.Save(ctx, testutil.MakeStudent())
	require.NoError(t, err)
	hall, err := r.halls.Save(ctx, testutil.MakeHall())
	require.NoError(t, err)

	group, err := r.groups.Save(ctx, testutil.MakeGroup(trainer.ID, s2.ID, s1.ID, s2.ID))
	require.NoError(t, err)
	require.Equal(t, []int64{s2.ID, s1.ID}, group.StudentIDs)
	_, err = r.groups.Save(ctx, testutil.MakeGroup(other.ID))
	require.NoError(t, err)

	item, err := r.items.Save(ctx, testutil.MakeScheduleItem(hall.ID, group.ID, domain.Monday, "18:00", "19:30"))
	require.NoError(t, err)

	got, err := r.groups.FindByID(ctx, group.ID)
	require.NoError(t, err)
	require.Equal(t, []int64{item.ID}, got.ScheduleItemIDs)

	byStyle, err := r.groups.FindAllByDanceStyle(ctx, "tango")
	require.NoError(t, err)
	require.Len(t, byStyle, 1)
	require.Equal(t, group.ID, byStyle[0].ID)

	dup := testutil.MakeGroup(trainer.ID)
	dup.Difficulty = group.Difficulty
	_, err = r.groups.Save(ctx, dup)
	require.ErrorIs(t, err, domain.ErrConflict)

	_, err = r.groups.Save(ctx, testutil.MakeGroup(trainer.ID, 424242))
	require.ErrorIs(t, err, domain.ErrNotFound)

	// удаление ученика убирает его из состава
	require.NoError(t, r.students.Delete(ctx, s2.ID))
	got, err = r.groups.FindByID(ctx, group.ID)
	require.NoError(t, err)
	require.Equal(t, []int64{s1.ID}, got.StudentIDs)

	// удаление тренера — каскад на группы и слоты
	require.NoError(t, r.trainers.Delete(ctx, trainer.ID))
	ok, err := r.items.ExistsByID(ctx, item.ID)
	require.NoError(t, err)
	require.False(t, ok)
}

// 4) Слоты: время TIME, точный поиск, SaveAll атомарен
func TestScheduleItemRepository_SaveAllAtomic_TC(t *testing.T) {
	t.Parallel()
	ctx, r := startRepos(t)

	trainer, err := r.trainers.Save(ctx, testutil.MakeTrainer())
	require.NoError(t, err)
	group, err := r.groups.Save(ctx, testutil.MakeGroup(trainer.ID))
	require.NoError(t, err)
	hall, err := r.halls.Save(ctx, testutil.MakeHall())
	require.NoError(t, err)

	saved, err := r.items.SaveAll(ctx, []*domain.ScheduleItem{
		testutil.MakeScheduleItem(hall.ID, group.ID, domain.Monday, "10:00", "11:00"),
		testutil.MakeScheduleItem(hall.ID, group.ID, domain.Monday, "12:00:30", "13:00"),
	})
	require.NoError(t, err)
	require.Len(t, saved, 2)

	exact, err := r.items.FindExact(ctx, hall.ID, group.ID, domain.Monday,
		domain.MustTimeOfDay("12:00:30"), domain.MustTimeOfDay("13:00"))
	require.NoError(t, err)
	require.Len(t, exact, 1)
	require.Equal(t, saved[1], exact[0])

	// второй элемент ссылается на несуществующий зал — ничего не сохраняется
	_, err = r.items.SaveAll(ctx, []*domain.ScheduleItem{
		testutil.MakeScheduleItem(hall.ID, group.ID, domain.Friday, "10:00", "11:00"),
		testutil.MakeScheduleItem(777, group.ID, domain.Friday, "12:00", "13:00"),
	})
	require.ErrorIs(t, err, domain.ErrNotFound)

	friday, err := r.items.FindByDayOfWeekAndHall(ctx, domain.Friday, hall.ID)
	require.NoError(t, err)
	require.Empty(t, friday)

	// повтор точного кортежа — нарушение уникальности
	_, err = r.items.Save(ctx, testutil.MakeScheduleItem(hall.ID, group.ID, domain.Monday, "10:00", "11:00"))
	require.ErrorIs(t, err, domain.ErrConflict)

	byGroup, err := r.items.FindAllByGroup(ctx, group.ID)
	require.NoError(t, err)
	require.Len(t, byGroup, 2)
}

type nopLogger struct{}

func (nopLogger) Debugf(context.Context, string, ...any) {}
func (nopLogger) Infof(context.Context, string, ...any)  {}
func (nopLogger) Warnf(context.Context, string, ...any)  {}
func (nopLogger) Errorf(context.Context, string, ...any) {}
