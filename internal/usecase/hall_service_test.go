package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Gunvolt24/dance_center/internal/cache/memory"
	"github.com/Gunvolt24/dance_center/internal/domain"
	"github.com/Gunvolt24/dance_center/internal/ports/mocks"
	"github.com/Gunvolt24/dance_center/internal/usecase"
	"github.com/Gunvolt24/dance_center/pkg/validate"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

type noopLogger struct{}

func (noopLogger) Debugf(context.Context, string, ...any) {}
func (noopLogger) Infof(context.Context, string, ...any)  {}
func (noopLogger) Warnf(context.Context, string, ...any)  {}
func (noopLogger) Errorf(context.Context, string, ...any) {}

var errStore = errors.New("store unavailable")

func TestHallFindByID_CacheHit(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockHallRepository(ctrl)
	cache := mocks.NewMockEntityCache(ctrl)
	hall := &domain.Hall{ID: 1, Name: "Main Hall", Area: 200}

	cache.EXPECT().GetHall(int64(1)).Return(hall, true)
	repo.EXPECT().FindByID(gomock.Any(), gomock.Any()).Times(0)

	svc := usecase.NewHallService(repo, cache, noopLogger{}, validate.NewEntityValidator())

	got, err := svc.FindByID(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, hall, got)
}

func TestHallFindByID_CacheMiss_FetchAndCache(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockHallRepository(ctrl)
	cache := mocks.NewMockEntityCache(ctrl)
	hall := &domain.Hall{ID: 1, Name: "Main Hall", Area: 200}

	gomock.InOrder(
		cache.EXPECT().GetHall(int64(1)).Return(nil, false),
		cache.EXPECT().StampHall().Return(uint64(4)),
		repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(hall, nil),
		cache.EXPECT().PutHallIfUnchanged(int64(1), hall, uint64(4)).Return(true),
	)

	svc := usecase.NewHallService(repo, cache, noopLogger{}, validate.NewEntityValidator())

	got, err := svc.FindByID(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, hall, got)
}

func TestHallFindByID_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockHallRepository(ctrl)
	cache := mocks.NewMockEntityCache(ctrl)

	cache.EXPECT().GetHall(int64(9)).Return(nil, false)
	cache.EXPECT().StampHall().Return(uint64(0))
	repo.EXPECT().FindByID(gomock.Any(), int64(9)).Return(nil, nil)
	cache.EXPECT().PutHallIfUnchanged(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	svc := usecase.NewHallService(repo, cache, noopLogger{}, validate.NewEntityValidator())

	_, err := svc.FindByID(context.Background(), 9)
	require.ErrorIs(t, err, domain.ErrNotFound)

	var nf *domain.NotFoundError
	require.ErrorAs(t, err, &nf)
	require.Equal(t, domain.EntityHall, nf.Entity)
	require.Equal(t, int64(9), nf.ID)
}

func TestHallFindByID_StoreErrorPropagates(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockHallRepository(ctrl)
	cache := mocks.NewMockEntityCache(ctrl)

	cache.EXPECT().GetHall(int64(1)).Return(nil, false)
	cache.EXPECT().StampHall().Return(uint64(0))
	repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(nil, errStore)

	svc := usecase.NewHallService(repo, cache, noopLogger{}, validate.NewEntityValidator())

	_, err := svc.FindByID(context.Background(), 1)
	require.ErrorIs(t, err, errStore)
	require.NotErrorIs(t, err, domain.ErrNotFound)
}

func TestHallCreate_ThenFindByID_NoStoreRead(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockHallRepository(ctrl)
	registry := memory.NewRegistry(10)

	repo.EXPECT().FindByName(gomock.Any(), "Main Hall").Return(nil, nil)
	repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, h *domain.Hall) (*domain.Hall, error) {
			saved := *h
			saved.ID = 1
			return &saved, nil
		})
	// после создания чтение обслуживается кэшем
	repo.EXPECT().FindByID(gomock.Any(), gomock.Any()).Times(0)

	svc := usecase.NewHallService(repo, registry, noopLogger{}, validate.NewEntityValidator())

	created, err := svc.Create(context.Background(), &domain.Hall{Name: "Main Hall", Area: 200})
	require.NoError(t, err)
	require.Equal(t, int64(1), created.ID)

	got, err := svc.FindByID(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, created, got)
}

func TestHallCreate_NameTaken(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockHallRepository(ctrl)
	cache := mocks.NewMockEntityCache(ctrl)

	repo.EXPECT().FindByName(gomock.Any(), "Main Hall").Return(&domain.Hall{ID: 1, Name: "Main Hall", Area: 200}, nil)
	repo.EXPECT().Save(gomock.Any(), gomock.Any()).Times(0)

	svc := usecase.NewHallService(repo, cache, noopLogger{}, validate.NewEntityValidator())

	_, err := svc.Create(context.Background(), &domain.Hall{Name: "Main Hall", Area: 300})
	require.ErrorIs(t, err, domain.ErrConflict)
	require.ErrorIs(t, err, domain.ErrAlreadyExists)
	require.Contains(t, err.Error(), "Main Hall")
}

func TestHallCreate_MissingFields(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockHallRepository(ctrl)
	cache := mocks.NewMockEntityCache(ctrl)

	svc := usecase.NewHallService(repo, cache, noopLogger{}, validate.NewEntityValidator())

	_, err := svc.Create(context.Background(), &domain.Hall{Area: 300})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestHallUpdate_SameNameSelfExempt(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockHallRepository(ctrl)
	cache := mocks.NewMockEntityCache(ctrl)
	stored := &domain.Hall{ID: 1, Name: "Main Hall", Area: 200}
	patch := &domain.Hall{ID: 1, Name: "Main Hall", Area: 300}

	gomock.InOrder(
		repo.EXPECT().FindByName(gomock.Any(), "Main Hall").Return(stored, nil),
		repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(stored, nil),
		repo.EXPECT().Save(gomock.Any(), patch).Return(patch, nil),
		cache.EXPECT().PutHall(int64(1), patch),
	)

	svc := usecase.NewHallService(repo, cache, noopLogger{}, validate.NewEntityValidator())

	got, err := svc.Update(context.Background(), patch)
	require.NoError(t, err)
	require.Equal(t, 300, got.Area)
}

func TestHallUpdate_NameTakenByAnother(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockHallRepository(ctrl)
	cache := mocks.NewMockEntityCache(ctrl)

	repo.EXPECT().FindByName(gomock.Any(), "Main Hall").Return(&domain.Hall{ID: 2, Name: "Main Hall"}, nil)
	repo.EXPECT().Save(gomock.Any(), gomock.Any()).Times(0)

	svc := usecase.NewHallService(repo, cache, noopLogger{}, validate.NewEntityValidator())

	_, err := svc.Update(context.Background(), &domain.Hall{ID: 1, Name: "Main Hall", Area: 10})
	require.ErrorIs(t, err, domain.ErrConflict)
}

func TestHallUpdate_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockHallRepository(ctrl)
	cache := mocks.NewMockEntityCache(ctrl)

	repo.EXPECT().FindByName(gomock.Any(), "Small").Return(nil, nil)
	repo.EXPECT().FindByID(gomock.Any(), int64(5)).Return(nil, nil)
	repo.EXPECT().Save(gomock.Any(), gomock.Any()).Times(0)

	svc := usecase.NewHallService(repo, cache, noopLogger{}, validate.NewEntityValidator())

	_, err := svc.Update(context.Background(), &domain.Hall{ID: 5, Name: "Small", Area: 10})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestHallDelete_Order(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockHallRepository(ctrl)
	cache := mocks.NewMockEntityCache(ctrl)

	gomock.InOrder(
		repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(&domain.Hall{ID: 1}, nil),
		cache.EXPECT().RemoveHall(int64(1)),
		repo.EXPECT().Delete(gomock.Any(), int64(1)).Return(nil),
		cache.EXPECT().RemoveHall(int64(1)),
	)

	svc := usecase.NewHallService(repo, cache, noopLogger{}, validate.NewEntityValidator())
	require.NoError(t, svc.Delete(context.Background(), 1))
}

func TestHallDelete_NotFound_CacheUntouched(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockHallRepository(ctrl)
	cache := mocks.NewMockEntityCache(ctrl)

	repo.EXPECT().FindByID(gomock.Any(), int64(3)).Return(nil, nil)
	cache.EXPECT().RemoveHall(gomock.Any()).Times(0)
	repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Times(0)

	svc := usecase.NewHallService(repo, cache, noopLogger{}, validate.NewEntityValidator())
	require.ErrorIs(t, svc.Delete(context.Background(), 3), domain.ErrNotFound)
}
