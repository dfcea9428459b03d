package validate

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/Gunvolt24/dance_center/internal/domain"
	"github.com/Gunvolt24/dance_center/internal/ports"
)

// ErrInvalidJSON — вход не разбирается как ожидаемый JSON; вид domain.ErrInvalidInput.
var ErrInvalidJSON = fmt.Errorf("%w: invalid json", domain.ErrInvalidInput)

// decodeStrict — строгий разбор: неизвестные поля и хвост после значения запрещены.
func decodeStrict(raw []byte, dst any) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	if err := dec.Decode(new(struct{})); !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: trailing data", ErrInvalidJSON)
	}
	return nil
}

// DecodeScheduleItem — один слот расписания из JSON-объекта.
func DecodeScheduleItem(raw []byte) (*domain.ScheduleItem, error) {
	var item domain.ScheduleItem
	if err := decodeStrict(raw, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// DecodeScheduleItems — пакет слотов из JSON-массива. Пустой массив — ошибка.
func DecodeScheduleItems(raw []byte) ([]*domain.ScheduleItem, error) {
	var items []*domain.ScheduleItem
	if err := decodeStrict(raw, &items); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: empty batch", domain.ErrInvalidInput)
	}
	for i, it := range items {
		if it == nil {
			return nil, fmt.Errorf("%w: item %d is null", domain.ErrInvalidInput, i)
		}
	}
	return items, nil
}

// Rejected — отклонённый слот и причина.
type Rejected struct {
	Index int
	Err   error
}

// ScheduleReport — итог проверки набора слотов.
type ScheduleReport struct {
	Valid    []*domain.ScheduleItem
	Rejected []Rejected
}

// Summary — "N valid / M invalid".
func (r ScheduleReport) Summary() string {
	return fmt.Sprintf("%d valid / %d invalid", len(r.Valid), len(r.Rejected))
}

// CheckSchedule — статическая проверка каждого слота и конфликтов внутри набора.
// Слот, конфликтующий с ранее принятым, отклоняется; принятые сохраняют исходный порядок.
func CheckSchedule(ctx context.Context, validator ports.EntityValidator, items []*domain.ScheduleItem) ScheduleReport {
	var rep ScheduleReport

next:
	for i, it := range items {
		if err := validator.Validate(ctx, it); err != nil {
			rep.Rejected = append(rep.Rejected, Rejected{Index: i, Err: err})
			continue
		}
		if err := it.CheckTimeRange(); err != nil {
			rep.Rejected = append(rep.Rejected, Rejected{Index: i, Err: err})
			continue
		}
		for _, accepted := range rep.Valid {
			if err := it.ConflictsWith(accepted); err != nil {
				rep.Rejected = append(rep.Rejected, Rejected{Index: i, Err: err})
				continue next
			}
		}
		rep.Valid = append(rep.Valid, it)
	}
	return rep
}
