package usecase_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	cachemem "github.com/Gunvolt24/dance_center/internal/cache/memory"
	"github.com/Gunvolt24/dance_center/internal/domain"
	"github.com/Gunvolt24/dance_center/internal/ports"
	repomem "github.com/Gunvolt24/dance_center/internal/repo/memory"
	"github.com/Gunvolt24/dance_center/internal/usecase"
	"github.com/Gunvolt24/dance_center/pkg/validate"
	"github.com/stretchr/testify/require"
)

type services struct {
	repos    ports.Repositories
	registry *cachemem.Registry
	halls    *usecase.HallService
	trainers *usecase.TrainerService
	students *usecase.StudentService
	groups   *usecase.GroupService
	schedule *usecase.ScheduleItemService
}

func newServices() services {
	repos := repomem.NewStore().Repositories()
	registry := cachemem.NewRegistry(cachemem.DefaultCapacity)
	v := validate.NewEntityValidator()
	log := noopLogger{}

	return services{
		repos:    repos,
		registry: registry,
		halls:    usecase.NewHallService(repos.Halls, registry, log, v),
		trainers: usecase.NewTrainerService(repos.Trainers, registry, log, v),
		students: usecase.NewStudentService(repos.Students, registry, log, v),
		groups:   usecase.NewGroupService(repos.Groups, repos.Trainers, repos.Students, registry, log, v),
		schedule: usecase.NewScheduleItemService(repos.ScheduleItems, repos.Halls, repos.Groups, registry, log, v),
	}
}

func TestScenario_HallsAndSchedule(t *testing.T) {
	ctx := context.Background()
	s := newServices()

	hall, err := s.halls.Create(ctx, &domain.Hall{Name: "Main Hall", Area: 200})
	require.NoError(t, err)
	require.Equal(t, int64(1), hall.ID)

	_, err = s.halls.Create(ctx, &domain.Hall{Name: "Main Hall", Area: 300})
	require.ErrorIs(t, err, domain.ErrConflict)

	trainer, err := s.trainers.Create(ctx, &domain.Trainer{Name: "Anna", Phone: "+7900", DanceStyle: "salsa"})
	require.NoError(t, err)
	g1, err := s.groups.Create(ctx, &domain.Group{Difficulty: "beginner", TrainerID: trainer.ID})
	require.NoError(t, err)
	g2, err := s.groups.Create(ctx, &domain.Group{Difficulty: "pro", TrainerID: trainer.ID})
	require.NoError(t, err)
	require.Equal(t, []int64{1, 2}, []int64{g1.ID, g2.ID})

	_, err = s.schedule.Create(ctx, item(0, 1, 1, domain.Monday, "10:00", "11:00"))
	require.NoError(t, err)

	_, err = s.schedule.Create(ctx, item(0, 1, 2, domain.Monday, "10:30", "11:30"))
	require.ErrorIs(t, err, domain.ErrConflict)
	require.ErrorIs(t, err, domain.ErrTimeBusy)

	// встык — допустимо
	_, err = s.schedule.Create(ctx, item(0, 1, 2, domain.Monday, "11:00", "12:00"))
	require.NoError(t, err)

	// группа в кэше не устаревает после записи слотов
	g1, err = s.groups.FindByID(ctx, g1.ID)
	require.NoError(t, err)
	require.Len(t, g1.ScheduleItemIDs, 1)
}

func TestScenario_HallUpdateKeepsName(t *testing.T) {
	ctx := context.Background()
	s := newServices()

	hall, err := s.halls.Create(ctx, &domain.Hall{Name: "Main Hall", Area: 200})
	require.NoError(t, err)

	updated, err := s.halls.Update(ctx, &domain.Hall{ID: hall.ID, Name: "Main Hall", Area: 300})
	require.NoError(t, err)
	require.Equal(t, 300, updated.Area)

	got, err := s.halls.FindByID(ctx, hall.ID)
	require.NoError(t, err)
	require.Equal(t, 300, got.Area)
}

func TestScenario_DeleteThenRead(t *testing.T) {
	ctx := context.Background()
	s := newServices()

	st, err := s.students.Create(ctx, &domain.Student{Name: "Ivan", Phone: "+7901"})
	require.NoError(t, err)
	_, err = s.students.FindByID(ctx, st.ID) // запись в кэше
	require.NoError(t, err)

	require.NoError(t, s.students.Delete(ctx, st.ID))

	_, ok := s.registry.GetStudent(st.ID)
	require.False(t, ok)
	_, err = s.students.FindByID(ctx, st.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)
	require.ErrorIs(t, s.students.Delete(ctx, st.ID), domain.ErrNotFound)
}

func TestScenario_BulkAtomic(t *testing.T) {
	ctx := context.Background()
	s := newServices()

	hall, _ := s.halls.Create(ctx, &domain.Hall{Name: "Main Hall", Area: 200})
	trainer, _ := s.trainers.Create(ctx, &domain.Trainer{Name: "Anna", Phone: "1", DanceStyle: "tango"})
	group, _ := s.groups.Create(ctx, &domain.Group{Difficulty: "pro", TrainerID: trainer.ID})

	_, err := s.schedule.Create(ctx, item(0, hall.ID, group.ID, domain.Friday, "18:00", "19:00"))
	require.NoError(t, err)

	// второй слот пересекается с существующим — не сохраняется ни один
	_, err = s.schedule.CreateMultiple(ctx, []*domain.ScheduleItem{
		item(0, hall.ID, group.ID, domain.Monday, "18:00", "19:00"),
		item(0, hall.ID, group.ID, domain.Friday, "18:30", "19:30"),
	})
	require.ErrorIs(t, err, domain.ErrTimeBusy)

	all, err := s.schedule.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)

	saved, err := s.schedule.CreateMultiple(ctx, []*domain.ScheduleItem{
		item(0, hall.ID, group.ID, domain.Monday, "18:00", "19:00"),
		item(0, hall.ID, group.ID, domain.Tuesday, "18:00", "19:00"),
	})
	require.NoError(t, err)
	require.Len(t, saved, 2)

	byGroup, err := s.schedule.FindAllByGroup(ctx, group.ID)
	require.NoError(t, err)
	require.Len(t, byGroup, 3)

	// созданные пакетом слоты читаются из кэша
	for _, it := range saved {
		cached, ok := s.registry.GetScheduleItem(it.ID)
		require.True(t, ok)
		require.Equal(t, it, cached)
	}
}

func TestScenario_ConcurrentOverlappingCreates(t *testing.T) {
	ctx := context.Background()
	s := newServices()

	hall, _ := s.halls.Create(ctx, &domain.Hall{Name: "Main Hall", Area: 200})
	trainer, _ := s.trainers.Create(ctx, &domain.Trainer{Name: "Anna", Phone: "1", DanceStyle: "tango"})

	const workers = 16
	groupIDs := make([]int64, workers)
	for i := range groupIDs {
		g, err := s.groups.Create(ctx, &domain.Group{Difficulty: string(rune('a' + i)), TrainerID: trainer.ID})
		require.NoError(t, err)
		groupIDs[i] = g.ID
	}

	var (
		wg      sync.WaitGroup
		created atomic.Int32
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(groupID int64) {
			defer wg.Done()
			if _, err := s.schedule.Create(ctx, item(0, hall.ID, groupID, domain.Monday, "10:00", "11:00")); err == nil {
				created.Add(1)
			}
		}(groupIDs[i])
	}
	wg.Wait()

	require.Equal(t, int32(1), created.Load())
}

func TestCacheWarmer_WarmUp(t *testing.T) {
	ctx := context.Background()
	s := newServices()

	for _, name := range []string{"A", "B", "C"} {
		_, err := s.repos.Halls.Save(ctx, &domain.Hall{Name: name, Area: 10})
		require.NoError(t, err)
	}

	registry := cachemem.NewRegistry(10)
	warmer := usecase.NewCacheWarmer(s.repos, registry, noopLogger{})

	require.NoError(t, warmer.WarmUp(ctx, 0))
	require.Equal(t, 0, registry.Sizes()[domain.EntityHall])

	require.NoError(t, warmer.WarmUp(ctx, 2))
	require.Equal(t, 2, registry.Sizes()[domain.EntityHall])
	_, ok := registry.GetHall(1)
	require.True(t, ok)
}
