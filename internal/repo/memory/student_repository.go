package memory

import (
	"context"

	"github.com/Gunvolt24/dance_center/internal/domain"
	"github.com/Gunvolt24/dance_center/internal/ports"
)

var _ ports.StudentRepository = (*StudentRepository)(nil)

type StudentRepository struct{ s *Store }

func (r *StudentRepository) FindByID(_ context.Context, id int64) (*domain.Student, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.students[id].Clone(), nil
}

func (r *StudentRepository) FindAll(_ context.Context) ([]*domain.Student, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]*domain.Student, 0, len(r.s.students))
	for _, id := range sortedIDs(r.s.students) {
		out = append(out, r.s.students[id].Clone())
	}
	return out, nil
}

func (r *StudentRepository) Save(_ context.Context, student *domain.Student) (*domain.Student, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for id, st := range r.s.students {
		if id != student.ID && st.Name == student.Name && st.Phone == student.Phone {
			return nil, uniqueViolation("students(name, phone)")
		}
	}

	row := student.Clone()
	if row.ID == 0 {
		row.ID = r.s.nextID(domain.EntityStudent)
	} else if _, ok := r.s.students[row.ID]; !ok {
		return nil, domain.NewNotFound(domain.EntityStudent, row.ID)
	}
	r.s.students[row.ID] = row
	return row.Clone(), nil
}

// Delete — ученик исключается из всех групп.
func (r *StudentRepository) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	delete(r.s.students, id)
	for _, g := range r.s.groups {
		kept := g.StudentIDs[:0]
		for _, sid := range g.StudentIDs {
			if sid != id {
				kept = append(kept, sid)
			}
		}
		g.StudentIDs = kept
	}
	return nil
}

func (r *StudentRepository) ExistsByID(_ context.Context, id int64) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	_, ok := r.s.students[id]
	return ok, nil
}

func (r *StudentRepository) FindByNameAndPhone(_ context.Context, name, phone string) ([]*domain.Student, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var out []*domain.Student
	for _, id := range sortedIDs(r.s.students) {
		st := r.s.students[id]
		if st.Name == name && st.Phone == phone {
			out = append(out, st.Clone())
		}
	}
	return out, nil
}
