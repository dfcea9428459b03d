package validate

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/Gunvolt24/dance_center/internal/domain"
	"github.com/Gunvolt24/dance_center/internal/ports"
)

// ValidateJSONLStream — читает слоты по одному на строку, проверяет набор целиком
// и пишет принятые слоты каноническим JSON построчно. Пустые строки пропускаются.
// Строки, которые не разбираются, попадают в Rejected с номером строки (с нуля, без пустых).
func ValidateJSONLStream(ctx context.Context, validator ports.EntityValidator, ir io.Reader, ow io.Writer) (ScheduleReport, error) {
	var (
		items     []*domain.ScheduleItem
		positions []int
		broken    []Rejected
	)

	scanner := bufio.NewScanner(ir)
	// запас на большие строки
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 10*1024*1024)

	line := 0
	for scanner.Scan() {
		lineBytes := scanner.Bytes()
		if len(strings.TrimSpace(string(lineBytes))) == 0 {
			continue
		}
		item, err := DecodeScheduleItem(lineBytes)
		if err != nil {
			broken = append(broken, Rejected{Index: line, Err: err})
		} else {
			items = append(items, item)
			positions = append(positions, line)
		}
		line++
	}
	if err := scanner.Err(); err != nil {
		return ScheduleReport{}, fmt.Errorf("scan: %w", err)
	}

	rep := CheckSchedule(ctx, validator, items)
	for i := range rep.Rejected {
		rep.Rejected[i].Index = positions[rep.Rejected[i].Index]
	}
	rep.Rejected = append(broken, rep.Rejected...)

	for _, it := range rep.Valid {
		marshal, _ := json.Marshal(it)
		if _, err := ow.Write(append(marshal, '\n')); err != nil {
			return rep, fmt.Errorf("write valid line: %w", err)
		}
	}
	return rep, nil
}
