package memory

import (
	"github.com/Gunvolt24/dance_center/internal/domain"
	"github.com/Gunvolt24/dance_center/internal/ports"
)

// Проверка, что Registry удовлетворяет интерфейсу ports.EntityCache.
var _ ports.EntityCache = (*Registry)(nil)

// Registry — по одному LRU на тип сущности. Создаётся один раз при старте
// и передаётся сервисам. Кэши независимы: удаление тренера не трогает группы.
type Registry struct {
	groups        *LRU[int64, *domain.Group]
	halls         *LRU[int64, *domain.Hall]
	scheduleItems *LRU[int64, *domain.ScheduleItem]
	students      *LRU[int64, *domain.Student]
	trainers      *LRU[int64, *domain.Trainer]
}

// NewRegistry — реестр с одинаковой ёмкостью capacity для всех типов.
func NewRegistry(capacity int) *Registry {
	return &Registry{
		groups:        newEntityLRU(domain.EntityGroup, capacity, (*domain.Group).Clone),
		halls:         newEntityLRU(domain.EntityHall, capacity, (*domain.Hall).Clone),
		scheduleItems: newEntityLRU(domain.EntityScheduleItem, capacity, (*domain.ScheduleItem).Clone),
		students:      newEntityLRU(domain.EntityStudent, capacity, (*domain.Student).Clone),
		trainers:      newEntityLRU(domain.EntityTrainer, capacity, (*domain.Trainer).Clone),
	}
}

func newEntityLRU[V any](entity domain.Entity, capacity int, clone func(V) V) *LRU[int64, V] {
	return NewLRU[int64, V](string(entity), capacity, WithClone[int64, V](clone))
}

func (r *Registry) GetGroup(id int64) (*domain.Group, bool) { return r.groups.Get(id) }
func (r *Registry) PutGroup(id int64, group *domain.Group)  { r.groups.Put(id, group) }
func (r *Registry) RemoveGroup(id int64)                    { r.groups.Remove(id) }
func (r *Registry) StampGroup() uint64 { return r.groups.Stamp() }
func (r *Registry) PutGroupIfUnchanged(id int64, group *domain.Group, stamp uint64) bool {
	return r.groups.PutIfUnchanged(id, group, stamp)
}

func (r *Registry) GetHall(id int64) (*domain.Hall, bool) { return r.halls.Get(id) }
func (r *Registry) PutHall(id int64, hall *domain.Hall)   { r.halls.Put(id, hall) }
func (r *Registry) RemoveHall(id int64)                   { r.halls.Remove(id) }
func (r *Registry) StampHall() uint64 { return r.halls.Stamp() }
func (r *Registry) PutHallIfUnchanged(id int64, hall *domain.Hall, stamp uint64) bool {
	return r.halls.PutIfUnchanged(id, hall, stamp)
}

func (r *Registry) GetScheduleItem(id int64) (*domain.ScheduleItem, bool) {
	return r.scheduleItems.Get(id)
}
func (r *Registry) PutScheduleItem(id int64, item *domain.ScheduleItem) {
	r.scheduleItems.Put(id, item)
}
func (r *Registry) RemoveScheduleItem(id int64) { r.scheduleItems.Remove(id) }
func (r *Registry) StampScheduleItem() uint64 { return r.scheduleItems.Stamp() }
func (r *Registry) PutScheduleItemIfUnchanged(id int64, item *domain.ScheduleItem, stamp uint64) bool {
	return r.scheduleItems.PutIfUnchanged(id, item, stamp)
}

func (r *Registry) GetStudent(id int64) (*domain.Student, bool) { return r.students.Get(id) }
func (r *Registry) PutStudent(id int64, student *domain.Student) { r.students.Put(id, student) }
func (r *Registry) RemoveStudent(id int64)                       { r.students.Remove(id) }
func (r *Registry) StampStudent() uint64 { return r.students.Stamp() }
func (r *Registry) PutStudentIfUnchanged(id int64, student *domain.Student, stamp uint64) bool {
	return r.students.PutIfUnchanged(id, student, stamp)
}

func (r *Registry) GetTrainer(id int64) (*domain.Trainer, bool) { return r.trainers.Get(id) }
func (r *Registry) PutTrainer(id int64, trainer *domain.Trainer) { r.trainers.Put(id, trainer) }
func (r *Registry) RemoveTrainer(id int64)                       { r.trainers.Remove(id) }
func (r *Registry) StampTrainer() uint64 { return r.trainers.Stamp() }
func (r *Registry) PutTrainerIfUnchanged(id int64, trainer *domain.Trainer, stamp uint64) bool {
	return r.trainers.PutIfUnchanged(id, trainer, stamp)
}

// Sizes — текущее число записей по типам сущностей (для логов при старте).
func (r *Registry) Sizes() map[domain.Entity]int {
	return map[domain.Entity]int{
		domain.EntityGroup:        r.groups.Len(),
		domain.EntityHall:         r.halls.Len(),
		domain.EntityScheduleItem: r.scheduleItems.Len(),
		domain.EntityStudent:      r.students.Len(),
		domain.EntityTrainer:      r.trainers.Len(),
	}
}
