package ports

import (
	"context"

	"github.com/Gunvolt24/dance_center/internal/domain"
)

type StudentRepository interface {
	FindByID(ctx context.Context, id int64) (*domain.Student, error)
	FindAll(ctx context.Context) ([]*domain.Student, error)
	Save(ctx context.Context, student *domain.Student) (*domain.Student, error)
	Delete(ctx context.Context, id int64) error
	ExistsByID(ctx context.Context, id int64) (bool, error)
	FindByNameAndPhone(ctx context.Context, name, phone string) ([]*domain.Student, error)
}
