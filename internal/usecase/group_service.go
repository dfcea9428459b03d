package usecase

import (
	"context"
	"fmt"

	"github.com/Gunvolt24/dance_center/internal/domain"
	"github.com/Gunvolt24/dance_center/internal/ports"
)

// Проверка, что GroupService удовлетворяет интерфейсу ports.GroupService.
var _ ports.GroupService = (*GroupService)(nil)

// GroupService — группы. Пара (тренер, сложность) уникальна;
// тренер и все ученики группы должны существовать.
type GroupService struct {
	repo      ports.GroupRepository
	trainers  ports.TrainerRepository
	students  ports.StudentRepository
	cache     ports.EntityCache
	log       ports.Logger
	validator ports.EntityValidator
}

// NewGroupService — DI-конструктор.
func NewGroupService(
	repo ports.GroupRepository,
	trainers ports.TrainerRepository,
	students ports.StudentRepository,
	cache ports.EntityCache,
	log ports.Logger,
	validator ports.EntityValidator,
) *GroupService {
	return &GroupService{
		repo:      repo,
		trainers:  trainers,
		students:  students,
		cache:     cache,
		log:       log,
		validator: validator,
	}
}

func (s *GroupService) FindByID(ctx context.Context, id int64) (*domain.Group, error) {
	return readThrough(ctx, s.log, domain.EntityGroup, id, s.cache.GetGroup, s.cache.StampGroup, s.repo.FindByID, s.cache.PutGroupIfUnchanged)
}

func (s *GroupService) FindAll(ctx context.Context) ([]*domain.Group, error) {
	return s.repo.FindAll(ctx)
}

// FindAllByDanceStyle — группы тренеров указанного стиля.
func (s *GroupService) FindAllByDanceStyle(ctx context.Context, danceStyle string) ([]*domain.Group, error) {
	return s.repo.FindAllByDanceStyle(ctx, danceStyle)
}

func (s *GroupService) Create(ctx context.Context, group *domain.Group) (*domain.Group, error) {
	if err := s.checkPayload(ctx, group); err != nil {
		return nil, err
	}

	candidate := group.Clone()
	candidate.ID = 0
	if err := s.checkUnique(ctx, candidate); err != nil {
		return nil, err
	}

	saved, err := s.repo.Save(ctx, candidate)
	if err != nil {
		s.log.Errorf(ctx, "save group trainer=%d difficulty=%q failed err=%v", group.TrainerID, group.Difficulty, err)
		return nil, fmt.Errorf("save group: %w", err)
	}

	s.cache.PutGroup(saved.ID, saved)
	s.log.Infof(ctx, "group created id=%d trainer=%d students=%d", saved.ID, saved.TrainerID, len(saved.StudentIDs))
	return saved, nil
}

func (s *GroupService) Update(ctx context.Context, group *domain.Group) (*domain.Group, error) {
	if err := s.checkPayload(ctx, group); err != nil {
		return nil, err
	}
	if err := s.checkUnique(ctx, group); err != nil {
		return nil, err
	}
	if _, err := mustExist(ctx, domain.EntityGroup, group.ID, s.repo.FindByID); err != nil {
		return nil, err
	}

	updated, err := s.repo.Save(ctx, group.Clone())
	if err != nil {
		s.log.Errorf(ctx, "save group id=%d failed err=%v", group.ID, err)
		return nil, fmt.Errorf("save group %d: %w", group.ID, err)
	}

	s.cache.PutGroup(updated.ID, updated)
	s.log.Infof(ctx, "group updated id=%d", updated.ID)
	return updated, nil
}

func (s *GroupService) Delete(ctx context.Context, id int64) error {
	_, err := deleteThrough(ctx, s.log, domain.EntityGroup, id, s.repo.FindByID, s.cache.RemoveGroup, s.repo.Delete)
	return err
}

// checkPayload — заполненность полей, затем существование учеников и тренера.
func (s *GroupService) checkPayload(ctx context.Context, group *domain.Group) error {
	if err := s.validator.Validate(ctx, group); err != nil {
		s.log.Warnf(ctx, "group validation failed err=%v", err)
		return err
	}
	for _, studentID := range group.StudentIDs {
		if err := existsByID(ctx, domain.EntityStudent, studentID, s.students.ExistsByID); err != nil {
			s.log.Warnf(ctx, "group references unknown student err=%v", err)
			return err
		}
	}
	if err := existsByID(ctx, domain.EntityTrainer, group.TrainerID, s.trainers.ExistsByID); err != nil {
		s.log.Warnf(ctx, "group references unknown trainer err=%v", err)
		return err
	}
	return nil
}

// checkUnique — пара (тренер, сложность) свободна или занята этой же группой.
func (s *GroupService) checkUnique(ctx context.Context, group *domain.Group) error {
	found, err := s.repo.FindByTrainerAndDifficulty(ctx, group.TrainerID, group.Difficulty)
	if err != nil {
		return fmt.Errorf("find group by trainer and difficulty: %w", err)
	}
	if found != nil && found.ID != group.ID {
		s.log.Warnf(ctx, "group already exists id=%d", found.ID)
		return fmt.Errorf("%w: group trainer %d, difficulty %q",
			domain.ErrAlreadyExists, group.TrainerID, group.Difficulty)
	}
	return nil
}
