package usecase

import (
	"context"
	"time"

	"github.com/Gunvolt24/dance_center/internal/domain"
	"github.com/Gunvolt24/dance_center/internal/ports"
)

// CacheWarmer — прогрев кэша при старте.
type CacheWarmer struct {
	repos ports.Repositories
	cache ports.EntityCache
	log   ports.Logger
}

// NewCacheWarmer — DI-конструктор.
func NewCacheWarmer(repos ports.Repositories, cache ports.EntityCache, log ports.Logger) *CacheWarmer {
	return &CacheWarmer{repos: repos, cache: cache, log: log}
}

// WarmUp — кладёт в кэш до n записей каждого типа.
// Если n <= 0, прогрев не выполняется (но это не ошибка).
func (w *CacheWarmer) WarmUp(ctx context.Context, n int) error {
	if n <= 0 {
		w.log.Infof(ctx, "cache warm-up skipped: n <= 0 (n=%d)", n)
		return nil
	}

	start := time.Now()
	steps := []struct {
		entity domain.Entity
		load   func(context.Context) (int, error)
	}{
		{domain.EntityHall, func(ctx context.Context) (int, error) {
			return warm(ctx, n, w.repos.Halls.FindAll, func(h *domain.Hall) { w.cache.PutHall(h.ID, h) })
		}},
		{domain.EntityTrainer, func(ctx context.Context) (int, error) {
			return warm(ctx, n, w.repos.Trainers.FindAll, func(t *domain.Trainer) { w.cache.PutTrainer(t.ID, t) })
		}},
		{domain.EntityStudent, func(ctx context.Context) (int, error) {
			return warm(ctx, n, w.repos.Students.FindAll, func(s *domain.Student) { w.cache.PutStudent(s.ID, s) })
		}},
		{domain.EntityGroup, func(ctx context.Context) (int, error) {
			return warm(ctx, n, w.repos.Groups.FindAll, func(g *domain.Group) { w.cache.PutGroup(g.ID, g) })
		}},
		{domain.EntityScheduleItem, func(ctx context.Context) (int, error) {
			return warm(ctx, n, w.repos.ScheduleItems.FindAll, func(it *domain.ScheduleItem) { w.cache.PutScheduleItem(it.ID, it) })
		}},
	}

	for _, step := range steps {
		count, err := step.load(ctx)
		if err != nil {
			w.log.Errorf(ctx, "cache warm-up %s failed err=%v", step.entity, err)
			return err
		}
		w.log.Infof(ctx, "cache warmed %s count=%d", step.entity, count)
	}
	w.log.Infof(ctx, "cache warm-up done in %s", time.Since(start))
	return nil
}

func warm[E any](ctx context.Context, n int, load func(context.Context) ([]*E, error), put func(*E)) (int, error) {
	all, err := load(ctx)
	if err != nil {
		return 0, err
	}
	if len(all) > n {
		all = all[:n]
	}
	for _, v := range all {
		put(v)
	}
	return len(all), nil
}
