package ports

import (
	"context"

	"github.com/Gunvolt24/dance_center/internal/domain"
)

// GroupRepository — хранилище групп (вместе с составом учеников).
type GroupRepository interface {
	FindByID(ctx context.Context, id int64) (*domain.Group, error)
	FindAll(ctx context.Context) ([]*domain.Group, error)
	Save(ctx context.Context, group *domain.Group) (*domain.Group, error)
	Delete(ctx context.Context, id int64) error
	ExistsByID(ctx context.Context, id int64) (bool, error)
	FindByTrainerAndDifficulty(ctx context.Context, trainerID int64, difficulty string) (*domain.Group, error)
	// FindAllByDanceStyle — группы, тренер которых ведёт указанный стиль.
	FindAllByDanceStyle(ctx context.Context, danceStyle string) ([]*domain.Group, error)
}
