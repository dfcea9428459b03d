package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/Gunvolt24/dance_center/internal/domain"
	"github.com/Gunvolt24/dance_center/internal/ports"
	"github.com/Gunvolt24/dance_center/pkg/metrics"
)

// ConflictPolicy — правила записи слотов расписания.
// Сама по себе состояния не хранит; существующие слоты читает из хранилища.
type ConflictPolicy struct {
	items     ports.ScheduleItemRepository
	validator ports.EntityValidator
}

// NewConflictPolicy — DI-конструктор.
func NewConflictPolicy(items ports.ScheduleItemRepository, validator ports.EntityValidator) *ConflictPolicy {
	return &ConflictPolicy{items: items, validator: validator}
}

// Validate — полнота полей, день недели и начало строго раньше конца.
func (p *ConflictPolicy) Validate(ctx context.Context, item *domain.ScheduleItem) error {
	if err := p.validator.Validate(ctx, item); err != nil {
		return reject("invalid", err)
	}
	if err := item.CheckTimeRange(); err != nil {
		return reject("invalid", err)
	}
	return nil
}

// CheckConflicts — точный дубль, затем пересечение с любым слотом того же зала в тот же день.
// Слот с идентификатором excludeID (обновляемый) в проверке не участвует; 0 — не исключать ничего.
func (p *ConflictPolicy) CheckConflicts(ctx context.Context, item *domain.ScheduleItem, excludeID int64) error {
	same, err := p.items.FindExact(ctx, item.HallID, item.GroupID, item.DayOfWeek, item.StartTime, item.EndTime)
	if err != nil {
		return fmt.Errorf("find exact schedule items: %w", err)
	}
	for _, existing := range same {
		if excludeID == 0 || existing.ID != excludeID {
			return reject("duplicate", fmt.Errorf("%w: schedule item. %s", domain.ErrAlreadyExists, item.Describe()))
		}
	}

	sameDay, err := p.items.FindByDayOfWeekAndHall(ctx, item.DayOfWeek, item.HallID)
	if err != nil {
		return fmt.Errorf("find schedule items by day and hall: %w", err)
	}
	for _, existing := range sameDay {
		if excludeID != 0 && existing.ID == excludeID {
			continue
		}
		if existing.Overlaps(item) {
			return reject("busy", fmt.Errorf("%w. Group ID: %d, Start time: %s, End time: %s (taken by schedule item %d)",
				domain.ErrTimeBusy, item.GroupID, item.StartTime, item.EndTime, existing.ID))
		}
	}
	return nil
}

// CheckBatch — каждый слот проверяется против хранилища, затем слоты пакета между собой.
// Любая ошибка отклоняет весь пакет.
func (p *ConflictPolicy) CheckBatch(ctx context.Context, items []*domain.ScheduleItem) error {
	for i, item := range items {
		if err := p.CheckConflicts(ctx, item, 0); err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
	}
	if err := domain.CheckBatchConflicts(items); err != nil {
		reason := "busy"
		if errors.Is(err, domain.ErrAlreadyExists) {
			reason = "duplicate"
		}
		return reject(reason, err)
	}
	return nil
}

func reject(reason string, err error) error {
	metrics.ScheduleRejections.WithLabelValues(reason).Inc()
	return err
}
