package ports

import (
	"context"

	"github.com/Gunvolt24/dance_center/internal/domain"
)

// Сервисы ядра в том виде, в каком их видит транспортный слой.

type HallService interface {
	FindByID(ctx context.Context, id int64) (*domain.Hall, error)
	FindAll(ctx context.Context) ([]*domain.Hall, error)
	Create(ctx context.Context, hall *domain.Hall) (*domain.Hall, error)
	Update(ctx context.Context, hall *domain.Hall) (*domain.Hall, error)
	Delete(ctx context.Context, id int64) error
}

type GroupService interface {
	FindByID(ctx context.Context, id int64) (*domain.Group, error)
	FindAll(ctx context.Context) ([]*domain.Group, error)
	FindAllByDanceStyle(ctx context.Context, danceStyle string) ([]*domain.Group, error)
	Create(ctx context.Context, group *domain.Group) (*domain.Group, error)
	Update(ctx context.Context, group *domain.Group) (*domain.Group, error)
	Delete(ctx context.Context, id int64) error
}

type TrainerService interface {
	FindByID(ctx context.Context, id int64) (*domain.Trainer, error)
	FindAll(ctx context.Context) ([]*domain.Trainer, error)
	Create(ctx context.Context, trainer *domain.Trainer) (*domain.Trainer, error)
	Update(ctx context.Context, trainer *domain.Trainer) (*domain.Trainer, error)
	Delete(ctx context.Context, id int64) error
}

type StudentService interface {
	FindByID(ctx context.Context, id int64) (*domain.Student, error)
	FindAll(ctx context.Context) ([]*domain.Student, error)
	Create(ctx context.Context, student *domain.Student) (*domain.Student, error)
	Update(ctx context.Context, student *domain.Student) (*domain.Student, error)
	Delete(ctx context.Context, id int64) error
}

type ScheduleItemService interface {
	FindByID(ctx context.Context, id int64) (*domain.ScheduleItem, error)
	FindAll(ctx context.Context) ([]*domain.ScheduleItem, error)
	FindAllByGroup(ctx context.Context, groupID int64) ([]*domain.ScheduleItem, error)
	Create(ctx context.Context, item *domain.ScheduleItem) (*domain.ScheduleItem, error)
	CreateMultiple(ctx context.Context, items []*domain.ScheduleItem) ([]*domain.ScheduleItem, error)
	Update(ctx context.Context, item *domain.ScheduleItem) (*domain.ScheduleItem, error)
	Delete(ctx context.Context, id int64) error
}
