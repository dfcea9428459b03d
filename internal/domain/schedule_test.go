package domain_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/Gunvolt24/dance_center/internal/domain"
	"github.com/stretchr/testify/require"
)

func TestIsValidDayOfWeek(t *testing.T) {
	t.Parallel()

	tests := []struct {
		day  string
		want bool
	}{
		{"Monday", true},
		{"Tuesday", true},
		{"Wednesday", true},
		{"Thursday", true},
		{"Friday", true},
		{"Saturday", true},
		{"Sunday", true},
		{"monday", false},
		{"MONDAY", false},
		{"Funday", false},
		{"", false},
		{" Monday", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.day, func(t *testing.T) {
			t.Parallel()
			if got := domain.IsValidDayOfWeek(tt.day); got != tt.want {
				t.Fatalf("IsValidDayOfWeek(%q) = %v, want %v", tt.day, got, tt.want)
			}
		})
	}
}

func slot(start, end string) *domain.ScheduleItem {
	return &domain.ScheduleItem{
		HallID: 1, GroupID: 1, DayOfWeek: domain.Monday,
		StartTime: domain.MustTimeOfDay(start), EndTime: domain.MustTimeOfDay(end),
	}
}

func TestScheduleItem_Overlaps(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		a, b       *domain.ScheduleItem
		wantResult bool
	}{
		{"partial overlap", slot("10:00", "11:00"), slot("10:30", "11:30"), true},
		{"back to back", slot("10:00", "11:00"), slot("11:00", "12:00"), false},
		{"back to back reversed", slot("11:00", "12:00"), slot("10:00", "11:00"), false},
		{"inside", slot("10:00", "12:00"), slot("10:30", "11:00"), true},
		{"same interval", slot("10:00", "11:00"), slot("10:00", "11:00"), true},
		{"disjoint", slot("08:00", "09:00"), slot("10:00", "11:00"), false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.a.Overlaps(tt.b); got != tt.wantResult {
				t.Fatalf("Overlaps = %v, want %v", got, tt.wantResult)
			}
			if got := tt.b.Overlaps(tt.a); got != tt.wantResult {
				t.Fatalf("Overlaps must be symmetric, got %v", got)
			}
		})
	}
}

func TestParseTimeOfDay(t *testing.T) {
	t.Parallel()

	tod, err := domain.ParseTimeOfDay("10:30")
	require.NoError(t, err)
	require.True(t, tod.Valid())
	require.Equal(t, 10*3600+30*60, tod.Seconds())
	require.Equal(t, "10:30", tod.String())

	tod, err = domain.ParseTimeOfDay("07:05:09")
	require.NoError(t, err)
	require.Equal(t, "07:05:09", tod.String())

	for _, bad := range []string{"", "25:00", "10", "ten o'clock", "10:61"} {
		_, err := domain.ParseTimeOfDay(bad)
		require.Error(t, err, "input %q", bad)
	}
}

func TestTimeOfDay_JSON(t *testing.T) {
	t.Parallel()

	var item domain.ScheduleItem
	require.NoError(t, json.Unmarshal([]byte(`{"hallId":1,"groupId":2,"dayOfWeek":"Monday","startTime":"10:00","endTime":null}`), &item))
	require.True(t, item.StartTime.Valid())
	require.False(t, item.EndTime.Valid())

	raw, err := json.Marshal(slot("10:00", "11:00:30"))
	require.NoError(t, err)
	require.JSONEq(t, `{"id":0,"hallId":1,"groupId":1,"dayOfWeek":"Monday","startTime":"10:00","endTime":"11:00:30"}`, string(raw))

	require.Error(t, json.Unmarshal([]byte(`{"startTime":"noon"}`), &item))
}

func TestTimeOfDayFromDuration(t *testing.T) {
	t.Parallel()

	tod, err := domain.TimeOfDayFromDuration(9*time.Hour + 15*time.Minute)
	require.NoError(t, err)
	require.Equal(t, domain.MustTimeOfDay("09:15"), tod)
	require.Equal(t, 9*time.Hour+15*time.Minute, tod.Duration())

	_, err = domain.TimeOfDayFromDuration(24 * time.Hour)
	require.Error(t, err)
}

func TestGroup_CloneIsDeep(t *testing.T) {
	t.Parallel()

	g := &domain.Group{ID: 1, Difficulty: "Beginner", TrainerID: 2, StudentIDs: []int64{3, 4}}
	c := g.Clone()
	c.StudentIDs[0] = 99

	if g.StudentIDs[0] != 3 {
		t.Fatalf("clone must not share student ids with the original")
	}
}

func slotAt(hall, group int64, day, start, end string) *domain.ScheduleItem {
	return &domain.ScheduleItem{
		HallID: hall, GroupID: group, DayOfWeek: day,
		StartTime: domain.MustTimeOfDay(start), EndTime: domain.MustTimeOfDay(end),
	}
}

func TestScheduleItem_CheckTimeRange(t *testing.T) {
	t.Parallel()

	require.NoError(t, slotAt(1, 1, domain.Monday, "10:00", "11:00").CheckTimeRange())
	require.ErrorIs(t, slotAt(1, 1, domain.Monday, "11:00", "11:00").CheckTimeRange(), domain.ErrInvalidTimeRange)
	require.ErrorIs(t, slotAt(1, 1, domain.Monday, "12:00", "11:00").CheckTimeRange(), domain.ErrInvalidInput)
}

func TestScheduleItem_ConflictsWith(t *testing.T) {
	t.Parallel()

	base := slotAt(1, 1, domain.Monday, "10:00", "11:00")

	tests := []struct {
		name  string
		other *domain.ScheduleItem
		want  error
	}{
		{"exact_duplicate", slotAt(1, 1, domain.Monday, "10:00", "11:00"), domain.ErrAlreadyExists},
		{"overlap_same_hall_other_group", slotAt(1, 2, domain.Monday, "10:30", "11:30"), domain.ErrTimeBusy},
		{"overlap_other_hall", slotAt(2, 2, domain.Monday, "10:30", "11:30"), nil},
		{"overlap_other_day", slotAt(1, 2, domain.Tuesday, "10:30", "11:30"), nil},
		{"back_to_back", slotAt(1, 2, domain.Monday, "11:00", "12:00"), nil},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := base.ConflictsWith(tt.other)
			if tt.want == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.want)
			require.ErrorIs(t, err, domain.ErrConflict)
		})
	}
}

func TestCheckBatchConflicts(t *testing.T) {
	t.Parallel()

	ok := []*domain.ScheduleItem{
		slotAt(1, 1, domain.Monday, "10:00", "11:00"),
		slotAt(1, 2, domain.Monday, "11:00", "12:00"),
		slotAt(2, 3, domain.Monday, "10:00", "11:00"),
	}
	require.NoError(t, domain.CheckBatchConflicts(ok))

	busy := append(ok, slotAt(2, 4, domain.Monday, "10:30", "10:45"))
	require.ErrorIs(t, domain.CheckBatchConflicts(busy), domain.ErrTimeBusy)

	dup := []*domain.ScheduleItem{ok[0], slotAt(1, 1, domain.Monday, "10:00", "11:00")}
	require.ErrorIs(t, domain.CheckBatchConflicts(dup), domain.ErrAlreadyExists)
}
