package usecase

import (
	"context"
	"fmt"

	"github.com/Gunvolt24/dance_center/internal/domain"
	"github.com/Gunvolt24/dance_center/internal/ports"
)

// Проверка, что TrainerService удовлетворяет интерфейсу ports.TrainerService.
var _ ports.TrainerService = (*TrainerService)(nil)

// TrainerService — тренеры. Тройка (имя, телефон, стиль) уникальна.
type TrainerService struct {
	repo      ports.TrainerRepository
	cache     ports.EntityCache
	log       ports.Logger
	validator ports.EntityValidator
}

// NewTrainerService — DI-конструктор.
func NewTrainerService(
	repo ports.TrainerRepository,
	cache ports.EntityCache,
	log ports.Logger,
	validator ports.EntityValidator,
) *TrainerService {
	return &TrainerService{repo: repo, cache: cache, log: log, validator: validator}
}

func (s *TrainerService) FindByID(ctx context.Context, id int64) (*domain.Trainer, error) {
	return readThrough(ctx, s.log, domain.EntityTrainer, id, s.cache.GetTrainer, s.cache.StampTrainer, s.repo.FindByID, s.cache.PutTrainerIfUnchanged)
}

func (s *TrainerService) FindAll(ctx context.Context) ([]*domain.Trainer, error) {
	return s.repo.FindAll(ctx)
}

func (s *TrainerService) Create(ctx context.Context, trainer *domain.Trainer) (*domain.Trainer, error) {
	if err := s.validator.Validate(ctx, trainer); err != nil {
		s.log.Warnf(ctx, "trainer validation failed err=%v", err)
		return nil, err
	}
	if err := s.checkUnique(ctx, trainer); err != nil {
		return nil, err
	}

	candidate := trainer.Clone()
	candidate.ID = 0
	saved, err := s.repo.Save(ctx, candidate)
	if err != nil {
		s.log.Errorf(ctx, "save trainer name=%q failed err=%v", trainer.Name, err)
		return nil, fmt.Errorf("save trainer: %w", err)
	}

	s.cache.PutTrainer(saved.ID, saved)
	s.log.Infof(ctx, "trainer created id=%d", saved.ID)
	return saved, nil
}

// Update — совпадение тройки с любым тренером, включая обновляемого, считается конфликтом.
// Поэтому обновление без изменения тройки отклоняется.
func (s *TrainerService) Update(ctx context.Context, trainer *domain.Trainer) (*domain.Trainer, error) {
	if err := s.validator.Validate(ctx, trainer); err != nil {
		s.log.Warnf(ctx, "trainer validation failed id=%d err=%v", trainer.ID, err)
		return nil, err
	}
	if err := s.checkUnique(ctx, trainer); err != nil {
		return nil, err
	}
	if _, err := mustExist(ctx, domain.EntityTrainer, trainer.ID, s.repo.FindByID); err != nil {
		return nil, err
	}

	updated, err := s.repo.Save(ctx, trainer.Clone())
	if err != nil {
		s.log.Errorf(ctx, "save trainer id=%d failed err=%v", trainer.ID, err)
		return nil, fmt.Errorf("save trainer %d: %w", trainer.ID, err)
	}

	s.cache.PutTrainer(updated.ID, updated)
	s.log.Infof(ctx, "trainer updated id=%d", updated.ID)
	return updated, nil
}

func (s *TrainerService) Delete(ctx context.Context, id int64) error {
	_, err := deleteThrough(ctx, s.log, domain.EntityTrainer, id, s.repo.FindByID, s.cache.RemoveTrainer, s.repo.Delete)
	return err
}

func (s *TrainerService) checkUnique(ctx context.Context, trainer *domain.Trainer) error {
	found, err := s.repo.FindByNameAndPhoneAndDanceStyle(ctx, trainer.Name, trainer.Phone, trainer.DanceStyle)
	if err != nil {
		return fmt.Errorf("find trainer duplicates: %w", err)
	}
	if len(found) > 0 {
		s.log.Warnf(ctx, "trainer already exists name=%q", trainer.Name)
		return fmt.Errorf("%w: trainer name %q, phone %q, dance style %q",
			domain.ErrAlreadyExists, trainer.Name, trainer.Phone, trainer.DanceStyle)
	}
	return nil
}
