package impl

import (
	"context"
	"testing"

	"itinerary/internal/domain/entity"
	domainerrors "itinerary/internal/domain/errors"
	"itinerary/internal/domain/repository"
	mockRepo "itinerary/internal/mocks/repository"
	"itinerary/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestTripService(t *testing.T) (
	usecase.TripUsecase,
	*mockRepo.MockTransactionManager,
	*mockRepo.MockTripRepository,
	*mockRepo.MockDayRepository,
) {
	txManager := mockRepo.NewMockTransactionManager(t)
	tripRepo := mockRepo.NewMockTripRepository(t)
	dayRepo := mockRepo.NewMockDayRepository(t)

	svc := NewTripService(TripServiceParams{
		TxManager: txManager,
		TripRepo:  tripRepo,
		DayRepo:   dayRepo,
		Logger:    newDiscardLogger(),
	})

	return svc, txManager, tripRepo, dayRepo
}

// expectTripTransaction runs the transaction body against a factory handing out txTripRepo.
func expectTripTransaction(t *testing.T, txManager *mockRepo.MockTransactionManager) *mockRepo.MockTripRepository {
	txTripRepo := mockRepo.NewMockTripRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewTripRepository().Return(txTripRepo)

	txManager.EXPECT().Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	return txTripRepo
}

func TestTripService_ListTrips(t *testing.T) {
	svc, _, tripRepo, _ := createTestTripService(t)
	ctx := context.Background()
	trips := []*entity.Trip{{ID: uuid.New(), Title: "Kyoto", Status: entity.TripStatusActive}}

	tripRepo.EXPECT().ListTrips(ctx).Return(trips, nil)

	got, err := svc.ListTrips(ctx)

	require.NoError(t, err)
	assert.Equal(t, trips, got)
}

func TestTripService_ListTrips_Error(t *testing.T) {
	svc, _, tripRepo, _ := createTestTripService(t)
	ctx := context.Background()

	tripRepo.EXPECT().ListTrips(ctx).Return(nil, errors.New("db down"))

	_, err := svc.ListTrips(ctx)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list trips")
}

func TestTripService_GetTrip_NotFound(t *testing.T) {
	svc, _, tripRepo, _ := createTestTripService(t)
	ctx := context.Background()
	tripID := uuid.New()

	tripRepo.EXPECT().FindTripByID(ctx, tripID).Return(nil, repository.ErrTripNotFound)

	_, err := svc.GetTrip(ctx, tripID)

	assert.ErrorIs(t, err, domainerrors.ErrTripNotFound)
}

func TestTripService_GetDay_OrdersStops(t *testing.T) {
	svc, _, _, dayRepo := createTestTripService(t)
	ctx := context.Background()
	day := newTestDay(t)
	day.Stops[0], day.Stops[3] = day.Stops[3], day.Stops[0]

	dayRepo.EXPECT().FindDayByID(ctx, day.ID).Return(day, nil)

	got, err := svc.GetDay(ctx, day.ID)

	require.NoError(t, err)
	assert.Equal(t, "start", got.Stops[0].Place.Name)
	assert.Equal(t, "end", got.Stops[3].Place.Name)
}

func TestTripService_GetDay_NotFound(t *testing.T) {
	svc, _, _, dayRepo := createTestTripService(t)
	ctx := context.Background()
	dayID := uuid.New()

	dayRepo.EXPECT().FindDayByID(ctx, dayID).Return(nil, repository.ErrDayNotFound)

	_, err := svc.GetDay(ctx, dayID)

	assert.ErrorIs(t, err, domainerrors.ErrDayNotFound)
}

func TestTripService_UpdateTripStatus(t *testing.T) {
	svc, txManager, _, _ := createTestTripService(t)
	ctx := context.Background()
	trip := &entity.Trip{ID: uuid.New(), Title: "Lisbon", Status: entity.TripStatusDraft}

	txTripRepo := expectTripTransaction(t, txManager)
	txTripRepo.EXPECT().FindTripByID(ctx, trip.ID).Return(trip, nil)
	txTripRepo.EXPECT().UpdateTripStatus(ctx, trip.ID, entity.TripStatusActive).Return(nil)

	got, err := svc.UpdateTripStatus(ctx, trip.ID, entity.TripStatusActive)

	require.NoError(t, err)
	assert.Equal(t, entity.TripStatusActive, got.Status)
}

func TestTripService_UpdateTripStatus_SameStatusIsNoop(t *testing.T) {
	svc, txManager, _, _ := createTestTripService(t)
	ctx := context.Background()
	trip := &entity.Trip{ID: uuid.New(), Status: entity.TripStatusActive}

	txTripRepo := expectTripTransaction(t, txManager)
	txTripRepo.EXPECT().FindTripByID(ctx, trip.ID).Return(trip, nil)

	got, err := svc.UpdateTripStatus(ctx, trip.ID, entity.TripStatusActive)

	require.NoError(t, err)
	assert.Same(t, trip, got)
}

func TestTripService_UpdateTripStatus_ForbiddenTransition(t *testing.T) {
	svc, txManager, _, _ := createTestTripService(t)
	ctx := context.Background()
	trip := &entity.Trip{ID: uuid.New(), Status: entity.TripStatusCompleted}

	txTripRepo := expectTripTransaction(t, txManager)
	txTripRepo.EXPECT().FindTripByID(ctx, trip.ID).Return(trip, nil)

	_, err := svc.UpdateTripStatus(ctx, trip.ID, entity.TripStatusActive)

	assert.ErrorIs(t, err, domainerrors.ErrTripStatusTransition)
}

func TestTripService_UpdateTripStatus_InvalidStatus(t *testing.T) {
	svc, _, _, _ := createTestTripService(t)

	_, err := svc.UpdateTripStatus(context.Background(), uuid.New(), entity.TripStatus("paused"))

	assert.ErrorIs(t, err, domainerrors.ErrInvalidTripStatus)
}
