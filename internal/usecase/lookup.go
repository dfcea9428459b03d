package usecase

import (
	"context"
	"fmt"

	"github.com/Gunvolt24/dance_center/internal/domain"
	"github.com/Gunvolt24/dance_center/internal/ports"
)

// readThrough — сначала кэш; при промахе хранилище с записью результата в кэш.
// Отсутствие записи в хранилище — *domain.NotFoundError.
// Отметка stamp берётся до чтения из хранилища: если за время чтения запись
// обновили или удалили, прочитанное значение в кэш не кладётся.
func readThrough[E any](
	ctx context.Context,
	log ports.Logger,
	entity domain.Entity,
	id int64,
	fromCache func(int64) (*E, bool),
	stamp func() uint64,
	fromStore func(context.Context, int64) (*E, error),
	toCache func(int64, *E, uint64) bool,
) (*E, error) {
	if v, found := fromCache(id); found {
		log.Debugf(ctx, "cache hit for %s=%d", entity, id)
		return v, nil
	}
	log.Debugf(ctx, "cache miss for %s=%d", entity, id)

	st := stamp()
	v, err := fromStore(ctx, id)
	if err != nil {
		log.Errorf(ctx, "find %s id=%d failed err=%v", entity, id, err)
		return nil, fmt.Errorf("find %s %d: %w", entity, id, err)
	}
	if v == nil {
		return nil, domain.NewNotFound(entity, id)
	}
	if !toCache(id, v, st) {
		log.Debugf(ctx, "%s=%d changed during read, not cached", entity, id)
	}
	return v, nil
}

// mustExist — проверка существования записи напрямую в хранилище (без кэша).
func mustExist[E any](
	ctx context.Context,
	entity domain.Entity,
	id int64,
	fromStore func(context.Context, int64) (*E, error),
) (*E, error) {
	v, err := fromStore(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find %s %d: %w", entity, id, err)
	}
	if v == nil {
		return nil, domain.NewNotFound(entity, id)
	}
	return v, nil
}

// existsByID — ссылка на сущность (например, trainerId в группе) должна существовать.
func existsByID(
	ctx context.Context,
	entity domain.Entity,
	id int64,
	exists func(context.Context, int64) (bool, error),
) error {
	ok, err := exists(ctx, id)
	if err != nil {
		return fmt.Errorf("check %s %d: %w", entity, id, err)
	}
	if !ok {
		return domain.NewNotFound(entity, id)
	}
	return nil
}

// deleteThrough — удаление: проверка в хранилище, инвалидация кэша, удаление из хранилища.
// Возвращает удалённую запись.
// Повторная инвалидация после удаления отсекает чтения, начатые между первой и удалением.
func deleteThrough[E any](
	ctx context.Context,
	log ports.Logger,
	entity domain.Entity,
	id int64,
	fromStore func(context.Context, int64) (*E, error),
	evict func(int64),
	remove func(context.Context, int64) error,
) (*E, error) {
	v, err := mustExist(ctx, entity, id, fromStore)
	if err != nil {
		return nil, err
	}

	evict(id)
	if err := remove(ctx, id); err != nil {
		log.Errorf(ctx, "delete %s id=%d failed err=%v", entity, id, err)
		return nil, fmt.Errorf("delete %s %d: %w", entity, id, err)
	}
	evict(id)

	log.Infof(ctx, "%s deleted id=%d", entity, id)
	return v, nil
}
