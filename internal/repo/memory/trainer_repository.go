package memory

import (
	"context"

	"github.com/Gunvolt24/dance_center/internal/domain"
	"github.com/Gunvolt24/dance_center/internal/ports"
)

var _ ports.TrainerRepository = (*TrainerRepository)(nil)

type TrainerRepository struct{ s *Store }

func (r *TrainerRepository) FindByID(_ context.Context, id int64) (*domain.Trainer, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.trainers[id].Clone(), nil
}

func (r *TrainerRepository) FindAll(_ context.Context) ([]*domain.Trainer, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]*domain.Trainer, 0, len(r.s.trainers))
	for _, id := range sortedIDs(r.s.trainers) {
		out = append(out, r.s.trainers[id].Clone())
	}
	return out, nil
}

func (r *TrainerRepository) Save(_ context.Context, trainer *domain.Trainer) (*domain.Trainer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for id, t := range r.s.trainers {
		if id != trainer.ID && t.Name == trainer.Name && t.Phone == trainer.Phone && t.DanceStyle == trainer.DanceStyle {
			return nil, uniqueViolation("trainers(name, phone, dance_style)")
		}
	}

	row := trainer.Clone()
	if row.ID == 0 {
		row.ID = r.s.nextID(domain.EntityTrainer)
	} else if _, ok := r.s.trainers[row.ID]; !ok {
		return nil, domain.NewNotFound(domain.EntityTrainer, row.ID)
	}
	r.s.trainers[row.ID] = row
	return row.Clone(), nil
}

// Delete — вместе с тренером удаляются его группы (и их слоты).
func (r *TrainerRepository) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	delete(r.s.trainers, id)
	for groupID, g := range r.s.groups {
		if g.TrainerID == id {
			r.s.deleteGroupLocked(groupID)
		}
	}
	return nil
}

func (r *TrainerRepository) ExistsByID(_ context.Context, id int64) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	_, ok := r.s.trainers[id]
	return ok, nil
}

func (r *TrainerRepository) FindByNameAndPhoneAndDanceStyle(_ context.Context, name, phone, danceStyle string) ([]*domain.Trainer, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var out []*domain.Trainer
	for _, id := range sortedIDs(r.s.trainers) {
		t := r.s.trainers[id]
		if t.Name == name && t.Phone == phone && t.DanceStyle == danceStyle {
			out = append(out, t.Clone())
		}
	}
	return out, nil
}
