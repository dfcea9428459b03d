package usecase

import (
	"context"
	"fmt"

	"github.com/Gunvolt24/dance_center/internal/ports"
	"github.com/Gunvolt24/dance_center/pkg/validate"
)

// ScheduleImporter — импорт пачки слотов из сообщения (raw JSON-массив).
type ScheduleImporter struct {
	items ports.ScheduleItemService
	log   ports.Logger
}

func NewScheduleImporter(items ports.ScheduleItemService, log ports.Logger) *ScheduleImporter {
	return &ScheduleImporter{items: items, log: log}
}

// ImportFromMessage — строгий разбор JSON и CreateMultiple: сохраняются все слоты или ни одного.
// Ошибки разбора оборачивают domain.ErrInvalidInput; прочие ошибки сервиса возвращаются как есть.
func (i *ScheduleImporter) ImportFromMessage(ctx context.Context, raw []byte) error {
	items, err := validate.DecodeScheduleItems(raw)
	if err != nil {
		i.log.Warnf(ctx, "schedule import: %v", err)
		return err
	}

	saved, err := i.items.CreateMultiple(ctx, items)
	if err != nil {
		return fmt.Errorf("schedule import of %d items: %w", len(items), err)
	}
	i.log.Infof(ctx, "schedule import: %d items saved", len(saved))
	return nil
}
