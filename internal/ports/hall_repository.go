package ports

import (
	"context"

	"github.com/Gunvolt24/dance_center/internal/domain"
)

// HallRepository — хранилище залов.
// FindBy* возвращают (nil, nil), если запись не найдена.
type HallRepository interface {
	FindByID(ctx context.Context, id int64) (*domain.Hall, error)
	FindAll(ctx context.Context) ([]*domain.Hall, error)
	Save(ctx context.Context, hall *domain.Hall) (*domain.Hall, error)
	Delete(ctx context.Context, id int64) error
	ExistsByID(ctx context.Context, id int64) (bool, error)
	FindByName(ctx context.Context, name string) (*domain.Hall, error)
}
