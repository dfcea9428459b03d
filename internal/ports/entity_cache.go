package ports

import "github.com/Gunvolt24/dance_center/internal/domain"

// EntityCache — кэш сущностей по идентификатору, отдельный для каждого типа.
// Реализации возвращают копии: изменение результата Get не меняет кэш.
// StampX + PutXIfUnchanged — запись после чтения из хранилища: значение не попадёт
// в кэш, если ключ был записан или удалён после отметки.
type EntityCache interface {
	GetGroup(id int64) (*domain.Group, bool)
	PutGroup(id int64, group *domain.Group)
	RemoveGroup(id int64)
	StampGroup() uint64
	PutGroupIfUnchanged(id int64, group *domain.Group, stamp uint64) bool

	GetHall(id int64) (*domain.Hall, bool)
	PutHall(id int64, hall *domain.Hall)
	RemoveHall(id int64)
	StampHall() uint64
	PutHallIfUnchanged(id int64, hall *domain.Hall, stamp uint64) bool

	GetScheduleItem(id int64) (*domain.ScheduleItem, bool)
	PutScheduleItem(id int64, item *domain.ScheduleItem)
	RemoveScheduleItem(id int64)
	StampScheduleItem() uint64
	PutScheduleItemIfUnchanged(id int64, item *domain.ScheduleItem, stamp uint64) bool

	GetStudent(id int64) (*domain.Student, bool)
	PutStudent(id int64, student *domain.Student)
	RemoveStudent(id int64)
	StampStudent() uint64
	PutStudentIfUnchanged(id int64, student *domain.Student, stamp uint64) bool

	GetTrainer(id int64) (*domain.Trainer, bool)
	PutTrainer(id int64, trainer *domain.Trainer)
	RemoveTrainer(id int64)
	StampTrainer() uint64
	PutTrainerIfUnchanged(id int64, trainer *domain.Trainer, stamp uint64) bool
}
