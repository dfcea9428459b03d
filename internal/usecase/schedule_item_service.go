package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/Gunvolt24/dance_center/internal/domain"
	"github.com/Gunvolt24/dance_center/internal/ports"
)

// Проверка, что ScheduleItemService удовлетворяет интерфейсу ports.ScheduleItemService.
var _ ports.ScheduleItemService = (*ScheduleItemService)(nil)

// ScheduleItemService — слоты расписания.
// Записи выполняются под общим мьютексом: проверка конфликтов и сохранение не перемежаются
// между параллельными запросами одного экземпляра сервиса.
type ScheduleItemService struct {
	repo   ports.ScheduleItemRepository
	halls  ports.HallRepository
	groups ports.GroupRepository
	policy *ConflictPolicy
	cache  ports.EntityCache
	log    ports.Logger

	writeMu sync.Mutex
}

// NewScheduleItemService — DI-конструктор.
func NewScheduleItemService(
	repo ports.ScheduleItemRepository,
	halls ports.HallRepository,
	groups ports.GroupRepository,
	cache ports.EntityCache,
	log ports.Logger,
	validator ports.EntityValidator,
) *ScheduleItemService {
	return &ScheduleItemService{
		repo:   repo,
		halls:  halls,
		groups: groups,
		policy: NewConflictPolicy(repo, validator),
		cache:  cache,
		log:    log,
	}
}

func (s *ScheduleItemService) FindByID(ctx context.Context, id int64) (*domain.ScheduleItem, error) {
	return readThrough(ctx, s.log, domain.EntityScheduleItem, id, s.cache.GetScheduleItem, s.cache.StampScheduleItem, s.repo.FindByID, s.cache.PutScheduleItemIfUnchanged)
}

func (s *ScheduleItemService) FindAll(ctx context.Context) ([]*domain.ScheduleItem, error) {
	return s.repo.FindAll(ctx)
}

func (s *ScheduleItemService) FindAllByGroup(ctx context.Context, groupID int64) ([]*domain.ScheduleItem, error) {
	return s.repo.FindAllByGroup(ctx, groupID)
}

func (s *ScheduleItemService) Create(ctx context.Context, item *domain.ScheduleItem) (*domain.ScheduleItem, error) {
	if err := s.checkPayload(ctx, item); err != nil {
		return nil, err
	}
	candidate := item.Clone()
	candidate.ID = 0

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if err := s.policy.CheckConflicts(ctx, candidate, 0); err != nil {
		s.log.Warnf(ctx, "schedule item rejected err=%v", err)
		return nil, err
	}

	saved, err := s.repo.Save(ctx, candidate)
	if err != nil {
		s.log.Errorf(ctx, "save schedule item failed %s err=%v", item.Describe(), err)
		return nil, fmt.Errorf("save schedule item: %w", err)
	}

	s.cached(saved)
	s.log.Infof(ctx, "schedule item created id=%d %s", saved.ID, saved.Describe())
	return saved, nil
}

// CreateMultiple — пакетное создание: либо сохраняются все слоты, либо ни одного.
func (s *ScheduleItemService) CreateMultiple(ctx context.Context, items []*domain.ScheduleItem) ([]*domain.ScheduleItem, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: no schedule items", domain.ErrInvalidInput)
	}

	candidates := make([]*domain.ScheduleItem, 0, len(items))
	for i, item := range items {
		if err := s.checkPayload(ctx, item); err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		candidate := item.Clone()
		candidate.ID = 0
		candidates = append(candidates, candidate)
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if err := s.policy.CheckBatch(ctx, candidates); err != nil {
		s.log.Warnf(ctx, "schedule batch rejected size=%d err=%v", len(candidates), err)
		return nil, err
	}

	saved, err := s.repo.SaveAll(ctx, candidates)
	if err != nil {
		s.log.Errorf(ctx, "save schedule batch size=%d failed err=%v", len(candidates), err)
		return nil, fmt.Errorf("save schedule items: %w", err)
	}

	for _, it := range saved {
		s.cached(it)
	}
	s.log.Infof(ctx, "schedule items created count=%d", len(saved))
	return saved, nil
}

func (s *ScheduleItemService) Update(ctx context.Context, item *domain.ScheduleItem) (*domain.ScheduleItem, error) {
	if err := s.checkPayload(ctx, item); err != nil {
		return nil, err
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	// сам слот исключён из проверок дубликата и пересечения:
	// неизменённый или сдвинутый слот не конфликтует со своей прежней записью
	if err := s.policy.CheckConflicts(ctx, item, item.ID); err != nil {
		s.log.Warnf(ctx, "schedule item update rejected id=%d err=%v", item.ID, err)
		return nil, err
	}
	previous, err := mustExist(ctx, domain.EntityScheduleItem, item.ID, s.repo.FindByID)
	if err != nil {
		return nil, err
	}

	updated, err := s.repo.Save(ctx, item.Clone())
	if err != nil {
		s.log.Errorf(ctx, "save schedule item id=%d failed err=%v", item.ID, err)
		return nil, fmt.Errorf("save schedule item %d: %w", item.ID, err)
	}

	// слот мог переехать в другую группу
	s.cache.RemoveGroup(previous.GroupID)
	s.cached(updated)
	s.log.Infof(ctx, "schedule item updated id=%d %s", updated.ID, updated.Describe())
	return updated, nil
}

func (s *ScheduleItemService) Delete(ctx context.Context, id int64) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	item, err := deleteThrough(ctx, s.log, domain.EntityScheduleItem, id, s.repo.FindByID, s.cache.RemoveScheduleItem, s.repo.Delete)
	if err != nil {
		return err
	}
	s.cache.RemoveGroup(item.GroupID)
	return nil
}

// checkPayload — статическая проверка слота и существование зала и группы.
func (s *ScheduleItemService) checkPayload(ctx context.Context, item *domain.ScheduleItem) error {
	if err := s.policy.Validate(ctx, item); err != nil {
		s.log.Warnf(ctx, "schedule item validation failed err=%v", err)
		return err
	}
	if err := existsByID(ctx, domain.EntityHall, item.HallID, s.halls.ExistsByID); err != nil {
		return err
	}
	return existsByID(ctx, domain.EntityGroup, item.GroupID, s.groups.ExistsByID)
}

// cached — запись слота в кэш. Кэшированная группа хранит список своих слотов,
// поэтому её запись сбрасывается.
func (s *ScheduleItemService) cached(item *domain.ScheduleItem) {
	s.cache.PutScheduleItem(item.ID, item)
	s.cache.RemoveGroup(item.GroupID)
}
