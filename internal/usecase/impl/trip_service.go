package impl

import (
	"context"
	"log/slog"

	deliverycontext "itinerary/internal/delivery/context"
	"itinerary/internal/domain/entity"
	domainerrors "itinerary/internal/domain/errors"
	"itinerary/internal/domain/repository"
	"itinerary/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// tripService implements the TripUsecase interface.
type tripService struct {
	txManager repository.TransactionManager
	tripRepo  repository.TripRepository
	dayRepo   repository.DayRepository
	logger    *slog.Logger
}

// TripServiceParams holds dependencies for TripService, injected by Fx.
type TripServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	TripRepo  repository.TripRepository
	DayRepo   repository.DayRepository
	Logger    *slog.Logger
}

// NewTripService is the constructor for tripService.
func NewTripService(params TripServiceParams) usecase.TripUsecase {
	return &tripService{
		txManager: params.TxManager,
		tripRepo:  params.TripRepo,
		dayRepo:   params.DayRepo,
		logger:    params.Logger,
	}
}

func (srv *tripService) ListTrips(ctx context.Context) ([]*entity.Trip, error) {
	trips, err := srv.tripRepo.ListTrips(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list trips")
	}

	return trips, nil
}

func (srv *tripService) GetTrip(ctx context.Context, tripID uuid.UUID) (*entity.Trip, error) {
	return srv.findTrip(ctx, srv.tripRepo, tripID)
}

func (srv *tripService) GetDay(ctx context.Context, dayID uuid.UUID) (*entity.Day, error) {
	day, err := srv.dayRepo.FindDayByID(ctx, dayID)
	if err != nil {
		if errors.Is(err, repository.ErrDayNotFound) {
			return nil, domainerrors.ErrDayNotFound
		}

		return nil, errors.Wrap(err, "failed to load day")
	}
	day.Stops = day.OrderedStops()

	return day, nil
}

// UpdateTripStatus moves the trip inside a transaction so the transition check
// and the write see the same row.
func (srv *tripService) UpdateTripStatus(ctx context.Context, tripID uuid.UUID, status entity.TripStatus) (*entity.Trip, error) {
	if !status.IsValid() {
		return nil, domainerrors.ErrInvalidTripStatus.WithDetails(string(status))
	}

	var updated *entity.Trip
	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		tripRepo := factory.NewTripRepository()

		trip, err := srv.findTrip(ctx, tripRepo, tripID)
		if err != nil {
			return err
		}

		if trip.Status == status {
			updated = trip

			return nil
		}

		if !trip.Status.CanTransitionTo(status) {
			return domainerrors.ErrTripStatusTransition.WithDetails(string(trip.Status) + " -> " + string(status))
		}

		if err := tripRepo.UpdateTripStatus(ctx, tripID, status); err != nil {
			if errors.Is(err, repository.ErrTripNotFound) {
				return domainerrors.ErrTripNotFound
			}

			return errors.Wrap(err, "failed to update trip status")
		}

		deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Trip status changed",
			slog.String("trip_id", tripID.String()),
			slog.String("from", string(trip.Status)),
			slog.String("to", string(status)),
		)

		trip.Status = status
		updated = trip

		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (srv *tripService) findTrip(ctx context.Context, repo repository.TripRepository, tripID uuid.UUID) (*entity.Trip, error) {
	trip, err := repo.FindTripByID(ctx, tripID)
	if err != nil {
		if errors.Is(err, repository.ErrTripNotFound) {
			return nil, domainerrors.ErrTripNotFound
		}

		return nil, errors.Wrap(err, "failed to load trip")
	}

	return trip, nil
}
