package usecase

import (
	"context"
	"fmt"

	"github.com/Gunvolt24/dance_center/internal/domain"
	"github.com/Gunvolt24/dance_center/internal/ports"
)

// Проверка, что StudentService удовлетворяет интерфейсу ports.StudentService.
var _ ports.StudentService = (*StudentService)(nil)

// StudentService — ученики. Пара (имя, телефон) уникальна.
type StudentService struct {
	repo      ports.StudentRepository
	cache     ports.EntityCache
	log       ports.Logger
	validator ports.EntityValidator
}

// NewStudentService — DI-конструктор.
func NewStudentService(
	repo ports.StudentRepository,
	cache ports.EntityCache,
	log ports.Logger,
	validator ports.EntityValidator,
) *StudentService {
	return &StudentService{repo: repo, cache: cache, log: log, validator: validator}
}

func (s *StudentService) FindByID(ctx context.Context, id int64) (*domain.Student, error) {
	return readThrough(ctx, s.log, domain.EntityStudent, id, s.cache.GetStudent, s.cache.StampStudent, s.repo.FindByID, s.cache.PutStudentIfUnchanged)
}

func (s *StudentService) FindAll(ctx context.Context) ([]*domain.Student, error) {
	return s.repo.FindAll(ctx)
}

func (s *StudentService) Create(ctx context.Context, student *domain.Student) (*domain.Student, error) {
	if err := s.validator.Validate(ctx, student); err != nil {
		s.log.Warnf(ctx, "student validation failed err=%v", err)
		return nil, err
	}
	if err := s.checkUnique(ctx, student); err != nil {
		return nil, err
	}

	candidate := student.Clone()
	candidate.ID = 0
	saved, err := s.repo.Save(ctx, candidate)
	if err != nil {
		s.log.Errorf(ctx, "save student name=%q failed err=%v", student.Name, err)
		return nil, fmt.Errorf("save student: %w", err)
	}

	s.cache.PutStudent(saved.ID, saved)
	s.log.Infof(ctx, "student created id=%d", saved.ID)
	return saved, nil
}

// Update — совпадение пары с любым учеником, включая обновляемого, считается конфликтом.
// Поэтому обновление без изменения пары отклоняется.
func (s *StudentService) Update(ctx context.Context, student *domain.Student) (*domain.Student, error) {
	if err := s.validator.Validate(ctx, student); err != nil {
		s.log.Warnf(ctx, "student validation failed id=%d err=%v", student.ID, err)
		return nil, err
	}
	if err := s.checkUnique(ctx, student); err != nil {
		return nil, err
	}
	if _, err := mustExist(ctx, domain.EntityStudent, student.ID, s.repo.FindByID); err != nil {
		return nil, err
	}

	updated, err := s.repo.Save(ctx, student.Clone())
	if err != nil {
		s.log.Errorf(ctx, "save student id=%d failed err=%v", student.ID, err)
		return nil, fmt.Errorf("save student %d: %w", student.ID, err)
	}

	s.cache.PutStudent(updated.ID, updated)
	s.log.Infof(ctx, "student updated id=%d", updated.ID)
	return updated, nil
}

func (s *StudentService) Delete(ctx context.Context, id int64) error {
	_, err := deleteThrough(ctx, s.log, domain.EntityStudent, id, s.repo.FindByID, s.cache.RemoveStudent, s.repo.Delete)
	return err
}

func (s *StudentService) checkUnique(ctx context.Context, student *domain.Student) error {
	found, err := s.repo.FindByNameAndPhone(ctx, student.Name, student.Phone)
	if err != nil {
		return fmt.Errorf("find student duplicates: %w", err)
	}
	if len(found) > 0 {
		s.log.Warnf(ctx, "student already exists name=%q", student.Name)
		return fmt.Errorf("%w: student name %q, phone %q", domain.ErrAlreadyExists, student.Name, student.Phone)
	}
	return nil
}
