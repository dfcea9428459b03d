package memory

import (
	"context"

	"github.com/Gunvolt24/dance_center/internal/domain"
	"github.com/Gunvolt24/dance_center/internal/ports"
)

var _ ports.ScheduleItemRepository = (*ScheduleItemRepository)(nil)

type ScheduleItemRepository struct{ s *Store }

func (r *ScheduleItemRepository) FindByID(_ context.Context, id int64) (*domain.ScheduleItem, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.items[id].Clone(), nil
}

func (r *ScheduleItemRepository) FindAll(_ context.Context) ([]*domain.ScheduleItem, error) {
	return r.filter(func(*domain.ScheduleItem) bool { return true }), nil
}

func (r *ScheduleItemRepository) Save(_ context.Context, item *domain.ScheduleItem) (*domain.ScheduleItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.saveItemLocked(item)
}

// SaveAll — все слоты или ни одного: при ошибке хранилище не меняется.
func (r *ScheduleItemRepository) SaveAll(_ context.Context, items []*domain.ScheduleItem) ([]*domain.ScheduleItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	snapshot := make(map[int64]*domain.ScheduleItem, len(r.s.items))
	for id, it := range r.s.items {
		snapshot[id] = it
	}
	seq := r.s.seq[domain.EntityScheduleItem]

	out := make([]*domain.ScheduleItem, 0, len(items))
	for _, it := range items {
		saved, err := r.s.saveItemLocked(it)
		if err != nil {
			r.s.items = snapshot
			r.s.seq[domain.EntityScheduleItem] = seq
			return nil, err
		}
		out = append(out, saved)
	}
	return out, nil
}

func (r *ScheduleItemRepository) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.items, id)
	return nil
}

func (r *ScheduleItemRepository) ExistsByID(_ context.Context, id int64) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	_, ok := r.s.items[id]
	return ok, nil
}

func (r *ScheduleItemRepository) FindExact(_ context.Context, hallID, groupID int64, dayOfWeek string, start, end domain.TimeOfDay) ([]*domain.ScheduleItem, error) {
	probe := &domain.ScheduleItem{HallID: hallID, GroupID: groupID, DayOfWeek: dayOfWeek, StartTime: start, EndTime: end}
	return r.filter(probe.SameSlot), nil
}

func (r *ScheduleItemRepository) FindByDayOfWeekAndHall(_ context.Context, dayOfWeek string, hallID int64) ([]*domain.ScheduleItem, error) {
	return r.filter(func(it *domain.ScheduleItem) bool {
		return it.DayOfWeek == dayOfWeek && it.HallID == hallID
	}), nil
}

func (r *ScheduleItemRepository) FindAllByGroup(_ context.Context, groupID int64) ([]*domain.ScheduleItem, error) {
	return r.filter(func(it *domain.ScheduleItem) bool { return it.GroupID == groupID }), nil
}

func (r *ScheduleItemRepository) filter(keep func(*domain.ScheduleItem) bool) []*domain.ScheduleItem {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var out []*domain.ScheduleItem
	for _, id := range sortedIDs(r.s.items) {
		if it := r.s.items[id]; keep(it) {
			out = append(out, it.Clone())
		}
	}
	return out
}

// saveItemLocked — вставка или обновление слота. Вызывается под s.mu (запись).
func (s *Store) saveItemLocked(item *domain.ScheduleItem) (*domain.ScheduleItem, error) {
	if _, ok := s.halls[item.HallID]; !ok {
		return nil, foreignKeyViolation(domain.EntityHall, item.HallID)
	}
	if _, ok := s.groups[item.GroupID]; !ok {
		return nil, foreignKeyViolation(domain.EntityGroup, item.GroupID)
	}
	for id, it := range s.items {
		if id != item.ID && it.SameSlot(item) {
			return nil, uniqueViolation("schedule_items(hall_id, group_id, day_of_week, start_time, end_time)")
		}
	}

	row := item.Clone()
	if row.ID == 0 {
		row.ID = s.nextID(domain.EntityScheduleItem)
	} else if _, ok := s.items[row.ID]; !ok {
		return nil, domain.NewNotFound(domain.EntityScheduleItem, row.ID)
	}
	s.items[row.ID] = row
	return row.Clone(), nil
}
