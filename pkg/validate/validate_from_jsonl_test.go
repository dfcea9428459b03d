package validate

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/Gunvolt24/dance_center/internal/domain"
	"github.com/stretchr/testify/require"
)

func TestValidateJSONLStream_Mixed(t *testing.T) {
	input := strings.Join([]string{
		itemJSON(1, 1, "Monday", "10:00", "11:00"),
		`{"hallId":1,`, // не JSON
		"",             // пустая строка пропускается
		itemJSON(1, 2, "Monday", "10:15", "10:45"), // пересекается с первым
		itemJSON(2, 2, "Monday", "10:15", "10:45"),
	}, "\n")

	var out bytes.Buffer
	rep, err := ValidateJSONLStream(context.Background(), NewEntityValidator(), strings.NewReader(input), &out)
	require.NoError(t, err)
	require.Equal(t, "2 valid / 2 invalid", rep.Summary())

	require.Equal(t, 1, rep.Rejected[0].Index)
	require.ErrorIs(t, rep.Rejected[0].Err, ErrInvalidJSON)
	require.Equal(t, 2, rep.Rejected[1].Index)
	require.ErrorIs(t, rep.Rejected[1].Err, domain.ErrTimeBusy)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	var second domain.ScheduleItem
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &second))
	require.Equal(t, int64(2), second.HallID)
	require.Equal(t, "10:15", second.StartTime.String())
}

func TestValidateJSONLStream_LargeLine(t *testing.T) {
	// строка > 64KB за счёт пробелов внутри объекта
	raw := `{"hallId":1,` + strings.Repeat(" ", 200_000) + `"groupId":1,"dayOfWeek":"Monday","startTime":"10:00","endTime":"11:00"}`

	var out bytes.Buffer
	rep, err := ValidateJSONLStream(context.Background(), NewEntityValidator(), strings.NewReader(raw+"\n"), &out)
	require.NoError(t, err)
	require.Len(t, rep.Valid, 1)
	require.Empty(t, rep.Rejected)
}
