package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/Gunvolt24/dance_center/internal/domain"
	"github.com/Gunvolt24/dance_center/internal/ports/mocks"
	"github.com/Gunvolt24/dance_center/internal/usecase"
	"github.com/Gunvolt24/dance_center/pkg/validate"
)

func TestScheduleImporter_SavesBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockScheduleItemService(ctrl)

	raw := []byte(`[
		{"hallId":1,"groupId":2,"dayOfWeek":"Monday","startTime":"10:00","endTime":"11:00"},
		{"hallId":1,"groupId":2,"dayOfWeek":"Tuesday","startTime":"10:00","endTime":"11:00"}
	]`)

	svc.EXPECT().CreateMultiple(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, items []*domain.ScheduleItem) ([]*domain.ScheduleItem, error) {
			require.Len(t, items, 2)
			require.Equal(t, domain.Tuesday, items[1].DayOfWeek)
			return items, nil
		})

	imp := usecase.NewScheduleImporter(svc, noopLogger{})
	require.NoError(t, imp.ImportFromMessage(context.Background(), raw))
}

func TestScheduleImporter_InvalidJSON_NoServiceCall(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockScheduleItemService(ctrl)

	imp := usecase.NewScheduleImporter(svc, noopLogger{})

	err := imp.ImportFromMessage(context.Background(), []byte("not-a-json"))
	require.ErrorIs(t, err, validate.ErrInvalidJSON)
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	err = imp.ImportFromMessage(context.Background(), []byte(`[{"hallId":1,"unknown":true}]`))
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestScheduleImporter_ServiceErrorKeepsKind(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockScheduleItemService(ctrl)

	raw := []byte(`[{"hallId":1,"groupId":2,"dayOfWeek":"Monday","startTime":"10:00","endTime":"11:00"}]`)
	storeDown := errors.New("db down")

	gomock.InOrder(
		svc.EXPECT().CreateMultiple(gomock.Any(), gomock.Any()).Return(nil, domain.ErrTimeBusy),
		svc.EXPECT().CreateMultiple(gomock.Any(), gomock.Any()).Return(nil, storeDown),
	)

	imp := usecase.NewScheduleImporter(svc, noopLogger{})

	err := imp.ImportFromMessage(context.Background(), raw)
	require.ErrorIs(t, err, domain.ErrConflict)

	err = imp.ImportFromMessage(context.Background(), raw)
	require.ErrorIs(t, err, storeDown)
	require.NotErrorIs(t, err, domain.ErrConflict)
}
