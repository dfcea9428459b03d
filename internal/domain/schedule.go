package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Канонические названия дней недели (регистр важен).
const (
	Monday    = "Monday"
	Tuesday   = "Tuesday"
	Wednesday = "Wednesday"
	Thursday  = "Thursday"
	Friday    = "Friday"
	Saturday  = "Saturday"
	Sunday    = "Sunday"
)

var daysOfWeek = map[string]struct{}{
	Monday: {}, Tuesday: {}, Wednesday: {}, Thursday: {}, Friday: {}, Saturday: {}, Sunday: {},
}

// IsValidDayOfWeek — точное (регистрозависимое) совпадение с одним из семи дней.
func IsValidDayOfWeek(day string) bool {
	_, ok := daysOfWeek[day]
	return ok
}

const secondsPerDay = 24 * 60 * 60

// TimeOfDay — время суток без даты с точностью до секунды.
// Нулевое значение означает «не задано».
type TimeOfDay struct {
	seconds int
	valid   bool
}

// NewTimeOfDay — время суток из часов, минут и секунд.
func NewTimeOfDay(hour, minute, second int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 || second < 0 || second > 59 {
		return TimeOfDay{}, fmt.Errorf("time of day out of range: %02d:%02d:%02d", hour, minute, second)
	}
	return TimeOfDay{seconds: hour*3600 + minute*60 + second, valid: true}, nil
}

// MustTimeOfDay — как ParseTimeOfDay, но паникует при ошибке (для тестов и констант).
func MustTimeOfDay(s string) TimeOfDay {
	t, err := ParseTimeOfDay(s)
	if err != nil {
		panic(err)
	}
	return t
}

// ParseTimeOfDay — разбор "HH:MM" или "HH:MM:SS".
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{"15:04:05", "15:04"} {
		if t, err := time.Parse(layout, s); err == nil {
			return NewTimeOfDay(t.Hour(), t.Minute(), t.Second())
		}
	}
	return TimeOfDay{}, fmt.Errorf("invalid time of day %q, expected HH:MM or HH:MM:SS", s)
}

// TimeOfDayFromDuration — время суток из смещения от полуночи (формат хранения в БД).
func TimeOfDayFromDuration(d time.Duration) (TimeOfDay, error) {
	if d < 0 || d >= secondsPerDay*time.Second {
		return TimeOfDay{}, fmt.Errorf("time of day offset out of range: %s", d)
	}
	return TimeOfDay{seconds: int(d / time.Second), valid: true}, nil
}

// Valid — задано ли значение.
func (t TimeOfDay) Valid() bool { return t.valid }

// Seconds — секунды от полуночи.
func (t TimeOfDay) Seconds() int { return t.seconds }

// Duration — смещение от полуночи.
func (t TimeOfDay) Duration() time.Duration { return time.Duration(t.seconds) * time.Second }

// Before — строго раньше.
func (t TimeOfDay) Before(o TimeOfDay) bool { return t.seconds < o.seconds }

// After — строго позже.
func (t TimeOfDay) After(o TimeOfDay) bool { return t.seconds > o.seconds }

// String — "HH:MM", либо "HH:MM:SS" при ненулевых секундах.
func (t TimeOfDay) String() string {
	if !t.valid {
		return ""
	}
	h, m, s := t.seconds/3600, t.seconds%3600/60, t.seconds%60
	if s != 0 {
		return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", h, m)
}

func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	if !t.valid {
		return []byte("null"), nil
	}
	return json.Marshal(t.String())
}

func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*t = TimeOfDay{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("time of day: %w", err)
	}
	if s == "" {
		*t = TimeOfDay{}
		return nil
	}
	parsed, err := ParseTimeOfDay(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Overlaps — пересечение полуинтервалов [start, end): o.start < s.end && o.end > s.start.
// Слоты «встык» (конец одного равен началу другого) не пересекаются.
func (s *ScheduleItem) Overlaps(o *ScheduleItem) bool {
	return o.StartTime.Before(s.EndTime) && o.EndTime.After(s.StartTime)
}

// SameSlot — совпадение кортежа (зал, группа, день, начало, конец).
func (s *ScheduleItem) SameSlot(o *ScheduleItem) bool {
	return s.HallID == o.HallID && s.GroupID == o.GroupID && s.DayOfWeek == o.DayOfWeek &&
		s.StartTime == o.StartTime && s.EndTime == o.EndTime
}

// Describe — человекочитаемое описание слота для диагностики.
func (s *ScheduleItem) Describe() string {
	return fmt.Sprintf("Group: %d, Hall: %d, Day of week: %s, Start time: %s, End time: %s",
		s.GroupID, s.HallID, s.DayOfWeek, s.StartTime, s.EndTime)
}

// CheckTimeRange — начало слота строго раньше конца.
func (s *ScheduleItem) CheckTimeRange() error {
	if !s.StartTime.Before(s.EndTime) {
		return fmt.Errorf("%w: %s", ErrInvalidTimeRange, s.Describe())
	}
	return nil
}

// ConflictsWith — конфликт двух слотов: точный дубль (ErrAlreadyExists) имеет приоритет
// над пересечением в том же зале и в тот же день (ErrTimeBusy).
func (s *ScheduleItem) ConflictsWith(o *ScheduleItem) error {
	if s.SameSlot(o) {
		return fmt.Errorf("%w: %s", ErrAlreadyExists, s.Describe())
	}
	if s.HallID == o.HallID && s.DayOfWeek == o.DayOfWeek && s.Overlaps(o) {
		return fmt.Errorf("%w: %s", ErrTimeBusy, s.Describe())
	}
	return nil
}

// CheckBatchConflicts — попарная проверка слотов одного пакета между собой.
func CheckBatchConflicts(items []*ScheduleItem) error {
	for i := 1; i < len(items); i++ {
		for j := 0; j < i; j++ {
			if err := items[i].ConflictsWith(items[j]); err != nil {
				return fmt.Errorf("item %d conflicts with item %d: %w", i, j, err)
			}
		}
	}
	return nil
}
