package validate

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Gunvolt24/dance_center/internal/ports"
)

// InputFormat допустимые значения.
type InputFormat string

const (
	FormatAuto  InputFormat = "auto"
	FormatJSON  InputFormat = "json"
	FormatJSONL InputFormat = "jsonl"
)

// ValidateFile — проверяет файл слотов расписания (JSON-массив или JSONL)
// и пишет принятые слоты в writer в том же формате.
func ValidateFile(ctx context.Context, validator ports.EntityValidator, filePath string, format InputFormat, ow io.Writer) (ScheduleReport, error) {
	// auto по расширению
	if format == FormatAuto {
		if strings.ToLower(filepath.Ext(filePath)) == ".jsonl" {
			format = FormatJSONL
		} else {
			format = FormatJSON
		}
	}
	if format != FormatJSON && format != FormatJSONL {
		return ScheduleReport{}, fmt.Errorf("unsupported format: %s", format)
	}

	file, err := os.Open(filePath)
	if err != nil {
		return ScheduleReport{}, fmt.Errorf("open file: %w", err)
	}
	defer file.Close()

	if format == FormatJSONL {
		return ValidateJSONLStream(ctx, validator, file, ow)
	}

	raw, err := io.ReadAll(file)
	if err != nil {
		return ScheduleReport{}, fmt.Errorf("read file: %w", err)
	}
	items, err := DecodeScheduleItems(raw)
	if err != nil {
		return ScheduleReport{}, err
	}

	rep := CheckSchedule(ctx, validator, items)
	if len(rep.Valid) == 0 {
		return rep, nil
	}
	canonical, _ := json.MarshalIndent(rep.Valid, "", "  ")
	if _, err := ow.Write(append(canonical, '\n')); err != nil {
		return rep, fmt.Errorf("write json: %w", err)
	}
	return rep, nil
}
