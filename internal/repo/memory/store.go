// Пакет memory — хранилище сущностей в памяти процесса.
// Повторяет ограничения схемы postgres: уникальные ключи, внешние ключи
// и каскадное удаление, чтобы сервисы вели себя одинаково с обоими драйверами.
package memory

import (
	"fmt"
	"sort"
	"sync"

	"github.com/Gunvolt24/dance_center/internal/domain"
	"github.com/Gunvolt24/dance_center/internal/ports"
)

// Store — общее состояние всех репозиториев; одна блокировка на всё хранилище.
type Store struct {
	mu sync.RWMutex

	seq      map[domain.Entity]int64
	halls    map[int64]*domain.Hall
	trainers map[int64]*domain.Trainer
	students map[int64]*domain.Student
	groups   map[int64]*domain.Group
	items    map[int64]*domain.ScheduleItem
}

// NewStore — пустое хранилище; идентификаторы каждого типа выдаются с 1.
func NewStore() *Store {
	return &Store{
		seq:      make(map[domain.Entity]int64, len(domain.Entities)),
		halls:    make(map[int64]*domain.Hall),
		trainers: make(map[int64]*domain.Trainer),
		students: make(map[int64]*domain.Student),
		groups:   make(map[int64]*domain.Group),
		items:    make(map[int64]*domain.ScheduleItem),
	}
}

// Repositories — все репозитории поверх одного хранилища.
func (s *Store) Repositories() ports.Repositories {
	return ports.Repositories{
		Groups:        &GroupRepository{s: s},
		Halls:         &HallRepository{s: s},
		ScheduleItems: &ScheduleItemRepository{s: s},
		Students:      &StudentRepository{s: s},
		Trainers:      &TrainerRepository{s: s},
	}
}

// nextID — вызывается под s.mu (запись).
func (s *Store) nextID(entity domain.Entity) int64 {
	s.seq[entity]++
	return s.seq[entity]
}

func sortedIDs[V any](m map[int64]V) []int64 {
	ids := make([]int64, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func uniqueViolation(what string) error {
	return fmt.Errorf("%w: unique constraint on %s", domain.ErrConflict, what)
}

func foreignKeyViolation(entity domain.Entity, id int64) error {
	return fmt.Errorf("foreign key: %w", domain.NewNotFound(entity, id))
}
