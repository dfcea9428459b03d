package ports

import (
	"context"

	"github.com/Gunvolt24/dance_center/internal/domain"
)

// ScheduleItemRepository — хранилище слотов расписания.
type ScheduleItemRepository interface {
	FindByID(ctx context.Context, id int64) (*domain.ScheduleItem, error)
	FindAll(ctx context.Context) ([]*domain.ScheduleItem, error)
	Save(ctx context.Context, item *domain.ScheduleItem) (*domain.ScheduleItem, error)
	// SaveAll — атомарно: либо сохраняются все слоты, либо ни одного.
	SaveAll(ctx context.Context, items []*domain.ScheduleItem) ([]*domain.ScheduleItem, error)
	Delete(ctx context.Context, id int64) error
	ExistsByID(ctx context.Context, id int64) (bool, error)
	// FindExact — слоты с точно таким же кортежем (зал, группа, день, начало, конец).
	FindExact(ctx context.Context, hallID, groupID int64, dayOfWeek string, start, end domain.TimeOfDay) ([]*domain.ScheduleItem, error)
	FindByDayOfWeekAndHall(ctx context.Context, dayOfWeek string, hallID int64) ([]*domain.ScheduleItem, error)
	FindAllByGroup(ctx context.Context, groupID int64) ([]*domain.ScheduleItem, error)
}
