//go:build integration

package testutil

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/Gunvolt24/dance_center/internal/domain"
)

func randHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

func UniqSuffix() string { return randHex(6) }

// MakeHall — зал с уникальным именем.
func MakeHall(opts ...func(*domain.Hall)) *domain.Hall {
	h := &domain.Hall{Name: "Hall-" + UniqSuffix(), Area: 120}
	for _, fn := range opts {
		fn(h)
	}
	return h
}

func MakeTrainer(opts ...func(*domain.Trainer)) *domain.Trainer {
	t := &domain.Trainer{Name: "Trainer-" + UniqSuffix(), Phone: "+7-900-000-00-00", DanceStyle: "salsa"}
	for _, fn := range opts {
		fn(t)
	}
	return t
}

func MakeStudent(opts ...func(*domain.Student)) *domain.Student {
	s := &domain.Student{Name: "Student-" + UniqSuffix(), Phone: "+7-900-111-11-11"}
	for _, fn := range opts {
		fn(s)
	}
	return s
}

// MakeGroup — группа тренера; difficulty уникальна, чтобы не упереться в (trainer_id, difficulty).
func MakeGroup(trainerID int64, studentIDs ...int64) *domain.Group {
	return &domain.Group{
		Difficulty: "level-" + UniqSuffix(),
		TrainerID:  trainerID,
		StudentIDs: studentIDs,
	}
}

// MakeScheduleItem — слот вида "Monday 18:00-19:30" (start/end в формате HH:MM).
func MakeScheduleItem(hallID, groupID int64, day, start, end string) *domain.ScheduleItem {
	return &domain.ScheduleItem{
		HallID:    hallID,
		GroupID:   groupID,
		DayOfWeek: day,
		StartTime: domain.MustTimeOfDay(start),
		EndTime:   domain.MustTimeOfDay(end),
	}
}

func WithDanceStyle(style string) func(*domain.Trainer) {
	return func(t *domain.Trainer) { t.DanceStyle = style }
}

func WithHallName(name string) func(*domain.Hall) {
	return func(h *domain.Hall) { h.Name = name }
}
