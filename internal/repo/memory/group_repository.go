package memory

import (
	"context"

	"github.com/Gunvolt24/dance_center/internal/domain"
	"github.com/Gunvolt24/dance_center/internal/ports"
)

var _ ports.GroupRepository = (*GroupRepository)(nil)

// GroupRepository — ScheduleItemIDs не хранятся, а вычисляются по слотам при чтении.
type GroupRepository struct{ s *Store }

func (r *GroupRepository) FindByID(_ context.Context, id int64) (*domain.Group, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.groupView(id), nil
}

func (r *GroupRepository) FindAll(_ context.Context) ([]*domain.Group, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]*domain.Group, 0, len(r.s.groups))
	for _, id := range sortedIDs(r.s.groups) {
		out = append(out, r.s.groupView(id))
	}
	return out, nil
}

func (r *GroupRepository) Save(_ context.Context, group *domain.Group) (*domain.Group, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.trainers[group.TrainerID]; !ok {
		return nil, foreignKeyViolation(domain.EntityTrainer, group.TrainerID)
	}
	for _, sid := range group.StudentIDs {
		if _, ok := r.s.students[sid]; !ok {
			return nil, foreignKeyViolation(domain.EntityStudent, sid)
		}
	}
	for id, g := range r.s.groups {
		if id != group.ID && g.TrainerID == group.TrainerID && g.Difficulty == group.Difficulty {
			return nil, uniqueViolation("groups(trainer_id, difficulty)")
		}
	}

	row := &domain.Group{
		ID:         group.ID,
		Difficulty: group.Difficulty,
		TrainerID:  group.TrainerID,
		StudentIDs: dedupe(group.StudentIDs),
	}
	if row.ID == 0 {
		row.ID = r.s.nextID(domain.EntityGroup)
	} else if _, ok := r.s.groups[row.ID]; !ok {
		return nil, domain.NewNotFound(domain.EntityGroup, row.ID)
	}
	r.s.groups[row.ID] = row
	return r.s.groupView(row.ID), nil
}

func (r *GroupRepository) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.deleteGroupLocked(id)
	return nil
}

func (r *GroupRepository) ExistsByID(_ context.Context, id int64) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	_, ok := r.s.groups[id]
	return ok, nil
}

func (r *GroupRepository) FindByTrainerAndDifficulty(_ context.Context, trainerID int64, difficulty string) (*domain.Group, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, id := range sortedIDs(r.s.groups) {
		g := r.s.groups[id]
		if g.TrainerID == trainerID && g.Difficulty == difficulty {
			return r.s.groupView(id), nil
		}
	}
	return nil, nil
}

func (r *GroupRepository) FindAllByDanceStyle(_ context.Context, danceStyle string) ([]*domain.Group, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var out []*domain.Group
	for _, id := range sortedIDs(r.s.groups) {
		if t, ok := r.s.trainers[r.s.groups[id].TrainerID]; ok && t.DanceStyle == danceStyle {
			out = append(out, r.s.groupView(id))
		}
	}
	return out, nil
}

// groupView — копия группы с актуальным списком слотов. Вызывается под s.mu.
func (s *Store) groupView(id int64) *domain.Group {
	g, ok := s.groups[id]
	if !ok {
		return nil
	}
	view := g.Clone()
	view.ScheduleItemIDs = nil
	for _, itemID := range sortedIDs(s.items) {
		if s.items[itemID].GroupID == id {
			view.ScheduleItemIDs = append(view.ScheduleItemIDs, itemID)
		}
	}
	return view
}

// deleteGroupLocked — группа и её слоты. Вызывается под s.mu (запись).
func (s *Store) deleteGroupLocked(id int64) {
	delete(s.groups, id)
	for itemID, it := range s.items {
		if it.GroupID == id {
			delete(s.items, itemID)
		}
	}
}

func dedupe(ids []int64) []int64 {
	if ids == nil {
		return nil
	}
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
