package memory

import (
	"context"

	"github.com/Gunvolt24/dance_center/internal/domain"
	"github.com/Gunvolt24/dance_center/internal/ports"
)

var _ ports.HallRepository = (*HallRepository)(nil)

type HallRepository struct{ s *Store }

func (r *HallRepository) FindByID(_ context.Context, id int64) (*domain.Hall, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.halls[id].Clone(), nil
}

func (r *HallRepository) FindAll(_ context.Context) ([]*domain.Hall, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]*domain.Hall, 0, len(r.s.halls))
	for _, id := range sortedIDs(r.s.halls) {
		out = append(out, r.s.halls[id].Clone())
	}
	return out, nil
}

func (r *HallRepository) Save(_ context.Context, hall *domain.Hall) (*domain.Hall, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for id, h := range r.s.halls {
		if h.Name == hall.Name && id != hall.ID {
			return nil, uniqueViolation("halls(name)")
		}
	}

	row := hall.Clone()
	if row.ID == 0 {
		row.ID = r.s.nextID(domain.EntityHall)
	} else if _, ok := r.s.halls[row.ID]; !ok {
		return nil, domain.NewNotFound(domain.EntityHall, row.ID)
	}
	r.s.halls[row.ID] = row
	return row.Clone(), nil
}

// Delete — вместе с залом удаляются его слоты расписания.
func (r *HallRepository) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	delete(r.s.halls, id)
	for itemID, it := range r.s.items {
		if it.HallID == id {
			delete(r.s.items, itemID)
		}
	}
	return nil
}

func (r *HallRepository) ExistsByID(_ context.Context, id int64) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	_, ok := r.s.halls[id]
	return ok, nil
}

func (r *HallRepository) FindByName(_ context.Context, name string) (*domain.Hall, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, h := range r.s.halls {
		if h.Name == name {
			return h.Clone(), nil
		}
	}
	return nil, nil
}
