package usecase

import (
	"context"
	"fmt"

	"github.com/Gunvolt24/dance_center/internal/domain"
	"github.com/Gunvolt24/dance_center/internal/ports"
)

// Проверка, что HallService удовлетворяет интерфейсу ports.HallService.
var _ ports.HallService = (*HallService)(nil)

// HallService — залы. Имя зала уникально.
type HallService struct {
	repo      ports.HallRepository
	cache     ports.EntityCache
	log       ports.Logger
	validator ports.EntityValidator
}

// NewHallService — DI-конструктор.
func NewHallService(
	repo ports.HallRepository,
	cache ports.EntityCache,
	log ports.Logger,
	validator ports.EntityValidator,
) *HallService {
	return &HallService{repo: repo, cache: cache, log: log, validator: validator}
}

func (s *HallService) FindByID(ctx context.Context, id int64) (*domain.Hall, error) {
	return readThrough(ctx, s.log, domain.EntityHall, id, s.cache.GetHall, s.cache.StampHall, s.repo.FindByID, s.cache.PutHallIfUnchanged)
}

func (s *HallService) FindAll(ctx context.Context) ([]*domain.Hall, error) {
	return s.repo.FindAll(ctx)
}

func (s *HallService) Create(ctx context.Context, hall *domain.Hall) (*domain.Hall, error) {
	if err := s.validator.Validate(ctx, hall); err != nil {
		s.log.Warnf(ctx, "hall validation failed err=%v", err)
		return nil, err
	}

	candidate := hall.Clone()
	candidate.ID = 0
	if err := s.checkNameFree(ctx, candidate); err != nil {
		return nil, err
	}

	saved, err := s.repo.Save(ctx, candidate)
	if err != nil {
		s.log.Errorf(ctx, "save hall name=%q failed err=%v", hall.Name, err)
		return nil, fmt.Errorf("save hall: %w", err)
	}

	s.cache.PutHall(saved.ID, saved)
	s.log.Infof(ctx, "hall created id=%d name=%q", saved.ID, saved.Name)
	return saved, nil
}

func (s *HallService) Update(ctx context.Context, hall *domain.Hall) (*domain.Hall, error) {
	if err := s.validator.Validate(ctx, hall); err != nil {
		s.log.Warnf(ctx, "hall validation failed id=%d err=%v", hall.ID, err)
		return nil, err
	}

	if err := s.checkNameFree(ctx, hall); err != nil {
		return nil, err
	}

	if _, err := mustExist(ctx, domain.EntityHall, hall.ID, s.repo.FindByID); err != nil {
		return nil, err
	}

	updated, err := s.repo.Save(ctx, hall.Clone())
	if err != nil {
		s.log.Errorf(ctx, "save hall id=%d failed err=%v", hall.ID, err)
		return nil, fmt.Errorf("save hall %d: %w", hall.ID, err)
	}

	s.cache.PutHall(updated.ID, updated)
	s.log.Infof(ctx, "hall updated id=%d", updated.ID)
	return updated, nil
}

func (s *HallService) Delete(ctx context.Context, id int64) error {
	_, err := deleteThrough(ctx, s.log, domain.EntityHall, id, s.repo.FindByID, s.cache.RemoveHall, s.repo.Delete)
	return err
}

// checkNameFree — имя свободно или занято этим же залом (hall.ID).
func (s *HallService) checkNameFree(ctx context.Context, hall *domain.Hall) error {
	found, err := s.repo.FindByName(ctx, hall.Name)
	if err != nil {
		return fmt.Errorf("find hall by name: %w", err)
	}
	if found != nil && found.ID != hall.ID {
		s.log.Warnf(ctx, "hall name taken name=%q by id=%d", hall.Name, found.ID)
		return fmt.Errorf("%w: hall name %q (area %d)", domain.ErrAlreadyExists, hall.Name, hall.Area)
	}
	return nil
}
