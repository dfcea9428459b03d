package ports

import (
	"context"

	"github.com/Gunvolt24/dance_center/internal/domain"
)

type TrainerRepository interface {
	FindByID(ctx context.Context, id int64) (*domain.Trainer, error)
	FindAll(ctx context.Context) ([]*domain.Trainer, error)
	Save(ctx context.Context, trainer *domain.Trainer) (*domain.Trainer, error)
	Delete(ctx context.Context, id int64) error
	ExistsByID(ctx context.Context, id int64) (bool, error)
	FindByNameAndPhoneAndDanceStyle(ctx context.Context, name, phone, danceStyle string) ([]*domain.Trainer, error)
}
