package validate

import (
	"context"
	"testing"

	"github.com/Gunvolt24/dance_center/internal/domain"
	"github.com/stretchr/testify/require"
)

func validItem() *domain.ScheduleItem {
	return &domain.ScheduleItem{
		HallID:    1,
		GroupID:   2,
		DayOfWeek: domain.Monday,
		StartTime: domain.MustTimeOfDay("10:00"),
		EndTime:   domain.MustTimeOfDay("11:00"),
	}
}

func TestEntityValidator_ValidEntities(t *testing.T) {
	ctx := context.Background()
	v := NewEntityValidator()

	require.NoError(t, v.Validate(ctx, &domain.Hall{Name: "Big", Area: 120}))
	require.NoError(t, v.Validate(ctx, &domain.Trainer{Name: "Anna", Phone: "+7900", DanceStyle: "salsa"}))
	require.NoError(t, v.Validate(ctx, &domain.Student{Name: "Ivan", Phone: "+7901"}))
	require.NoError(t, v.Validate(ctx, &domain.Group{Difficulty: "beginner", TrainerID: 3}))
	require.NoError(t, v.Validate(ctx, validItem()))
}

func TestEntityValidator_MissingFields(t *testing.T) {
	ctx := context.Background()
	v := NewEntityValidator()

	tests := []struct {
		name   string
		entity any
		field  string
	}{
		{"hall_name", &domain.Hall{Area: 10}, "name"},
		{"trainer_phone", &domain.Trainer{Name: "A", DanceStyle: "tango"}, "phoneNumber"},
		{"student_name", &domain.Student{Phone: "1"}, "name"},
		{"group_trainer", &domain.Group{Difficulty: "pro"}, "trainerId"},
		{"item_hall", func() any { it := validItem(); it.HallID = 0; return it }(), "hallId"},
		{"item_start_time", func() any { it := validItem(); it.StartTime = domain.TimeOfDay{}; return it }(), "startTime"},
		{"item_day", func() any { it := validItem(); it.DayOfWeek = ""; return it }(), "dayOfWeek"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.entity)
			require.ErrorIs(t, err, domain.ErrMissingFields)
			require.ErrorIs(t, err, domain.ErrInvalidInput)
			require.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestEntityValidator_InvalidDayOfWeek(t *testing.T) {
	v := NewEntityValidator()

	for _, day := range []string{"monday", "Mon", "Funday"} {
		it := validItem()
		it.DayOfWeek = day
		err := v.Validate(context.Background(), it)
		require.ErrorIs(t, err, domain.ErrInvalidDayOfWeek, "day=%q", day)
		require.NotErrorIs(t, err, domain.ErrMissingFields)
	}
}

func TestEntityValidator_MissingFieldsReportedBeforeDay(t *testing.T) {
	it := validItem()
	it.DayOfWeek = "Funday"
	it.GroupID = 0

	err := NewEntityValidator().Validate(context.Background(), it)
	require.ErrorIs(t, err, domain.ErrMissingFields)
}

func TestEntityValidator_NonPositiveArea(t *testing.T) {
	err := NewEntityValidator().Validate(context.Background(), &domain.Hall{Name: "Small", Area: -5})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	require.NotErrorIs(t, err, domain.ErrMissingFields)
}

func TestEntityValidator_NilAndNonStruct(t *testing.T) {
	v := NewEntityValidator()
	var hall *domain.Hall

	require.ErrorIs(t, v.Validate(context.Background(), nil), domain.ErrInvalidInput)
	require.ErrorIs(t, v.Validate(context.Background(), hall), domain.ErrInvalidInput)
	require.ErrorIs(t, v.Validate(context.Background(), 42), domain.ErrInvalidInput)
}
