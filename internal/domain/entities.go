package domain

// Entity — тип сущности; используется в ошибках, кэше и метриках.
type Entity string

const (
	EntityGroup        Entity = "group"
	EntityHall         Entity = "hall"
	EntityScheduleItem Entity = "schedule_item"
	EntityStudent      Entity = "student"
	EntityTrainer      Entity = "trainer"
)

// Entities — все типы сущностей в стабильном порядке.
var Entities = []Entity{EntityGroup, EntityHall, EntityScheduleItem, EntityStudent, EntityTrainer}

// Trainer — тренер; владеет группами (связь хранится на стороне Group.TrainerID).
type Trainer struct {
	ID         int64  `json:"id"`
	Name       string `json:"name" validate:"required"`
	Phone      string `json:"phoneNumber" validate:"required"`
	DanceStyle string `json:"danceStyle" validate:"required"`
}

// Student — ученик; состав групп хранится на стороне Group.StudentIDs.
type Student struct {
	ID    int64  `json:"id"`
	Name  string `json:"name" validate:"required"`
	Phone string `json:"phoneNumber" validate:"required"`
}

// Hall — зал. Имя уникально среди всех залов.
type Hall struct {
	ID   int64  `json:"id"`
	Name string `json:"name" validate:"required"`
	Area int    `json:"area" validate:"required,gt=0"`
}

// Group — группа. Пара (TrainerID, Difficulty) уникальна.
// Связи хранятся идентификаторами, без вложенных объектов.
type Group struct {
	ID              int64   `json:"id"`
	Difficulty      string  `json:"difficulty" validate:"required"`
	TrainerID       int64   `json:"trainerId" validate:"required"`
	StudentIDs      []int64 `json:"studentIds"`
	ScheduleItemIDs []int64 `json:"scheduleItemIds"`
}

// ScheduleItem — слот недельного расписания: зал, группа, день недели и интервал [Start, End).
type ScheduleItem struct {
	ID        int64     `json:"id"`
	HallID    int64     `json:"hallId" validate:"required"`
	GroupID   int64     `json:"groupId" validate:"required"`
	DayOfWeek string    `json:"dayOfWeek" validate:"required,weekday"`
	StartTime TimeOfDay `json:"startTime" validate:"required"`
	EndTime   TimeOfDay `json:"endTime" validate:"required"`
}

// Clone — копия тренера.
func (t *Trainer) Clone() *Trainer {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}

// Clone — копия ученика.
func (s *Student) Clone() *Student {
	if s == nil {
		return nil
	}
	c := *s
	return &c
}

// Clone — копия зала.
func (h *Hall) Clone() *Hall {
	if h == nil {
		return nil
	}
	c := *h
	return &c
}

// Clone — глубокая копия группы (срезы идентификаторов копируются).
func (g *Group) Clone() *Group {
	if g == nil {
		return nil
	}
	c := *g
	if g.StudentIDs != nil {
		c.StudentIDs = append([]int64(nil), g.StudentIDs...)
	}
	if g.ScheduleItemIDs != nil {
		c.ScheduleItemIDs = append([]int64(nil), g.ScheduleItemIDs...)
	}
	return &c
}

// Clone — копия слота расписания.
func (s *ScheduleItem) Clone() *ScheduleItem {
	if s == nil {
		return nil
	}
	c := *s
	return &c
}
