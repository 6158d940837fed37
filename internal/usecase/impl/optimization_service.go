package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"itinerary/config"
	deliverycontext "itinerary/internal/delivery/context"
	"itinerary/internal/domain/entity"
	domainerrors "itinerary/internal/domain/errors"
	"itinerary/internal/domain/repository"
	"itinerary/internal/domain/service"
	"itinerary/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	// baseline estimate defaults when routing config is missing
	defaultSpeedKmh     = 30.0
	defaultDetourFactor = 1.3
)

// optimizationService implements the OptimizationUsecase interface.
type optimizationService struct {
	txManager repository.TransactionManager
	dayRepo   repository.DayRepository
	publisher service.EventPublisher
	qrCode    service.QRCodeService
	deps      *sessionDeps
	logger    *slog.Logger
	now       func() time.Time

	mu       sync.Mutex
	sessions map[uuid.UUID]*OptimizationSession // idle sessions are pruned
}

// OptimizationServiceParams holds dependencies for the optimization service, injected by Fx.
type OptimizationServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	DayRepo       repository.DayRepository
	RoutingClient service.RoutingClient
	TokenProvider service.TokenProvider
	Cache         service.OptimizationCache `optional:"true"`
	Publisher     service.EventPublisher
	QRCode        service.QRCodeService
	Config        *config.Config
	Logger        *slog.Logger
}

// NewOptimizationService creates the optimization use case.
func NewOptimizationService(params OptimizationServiceParams) usecase.OptimizationUsecase {
	speedKmh, detourFactor := defaultSpeedKmh, defaultDetourFactor
	if params.Config != nil && params.Config.Routing != nil {
		if params.Config.Routing.BaselineSpeedKmh > 0 {
			speedKmh = params.Config.Routing.BaselineSpeedKmh
		}
		if params.Config.Routing.BaselineDetourFactor >= 1 {
			detourFactor = params.Config.Routing.BaselineDetourFactor
		}
	}

	return &optimizationService{
		txManager: params.TxManager,
		dayRepo:   params.DayRepo,
		publisher: params.Publisher,
		qrCode:    params.QRCode,
		deps: &sessionDeps{
			client:       params.RoutingClient,
			tokens:       params.TokenProvider,
			cache:        params.Cache,
			speedKmh:     speedKmh,
			detourFactor: detourFactor,
			logger:       params.Logger,
		},
		logger:   params.Logger,
		now:      time.Now,
		sessions: make(map[uuid.UUID]*OptimizationSession),
	}
}

func (srv *optimizationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// acquire returns the day's session, creating it on first use. Callers must
// release it when done.
func (srv *optimizationService) acquire(dayID uuid.UUID) *OptimizationSession {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	sess, ok := srv.sessions[dayID]
	if !ok {
		sess = newOptimizationSession(dayID, srv.deps)
		srv.sessions[dayID] = sess
	}
	sess.users++

	return sess
}

func (srv *optimizationService) release(sess *OptimizationSession) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	sess.users--
	srv.pruneLocked(sess)
}

// pruneLocked drops sess once it is idle and no call holds it, so only days
// with a pending result or report stay in memory. srv.mu must be held.
func (srv *optimizationService) pruneLocked(sess *OptimizationSession) {
	if sess.users > 0 || srv.sessions[sess.dayID] != sess || !sess.idle() {
		return
	}
	delete(srv.sessions, sess.dayID)
}

func (srv *optimizationService) existingSession(dayID uuid.UUID) (*OptimizationSession, bool) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	sess, ok := srv.sessions[dayID]

	return sess, ok
}

// OptimizeDay loads the day and runs an optimization attempt on its session.
func (srv *optimizationService) OptimizeDay(ctx context.Context, dayID uuid.UUID, options entity.OptimizationOptions) (*usecase.OptimizationOutcome, error) {
	day, err := srv.findDay(ctx, srv.dayRepo, dayID)
	if err != nil {
		return nil, err
	}

	sess := srv.acquire(dayID)
	defer srv.release(sess)

	return sess.Optimize(ctx, day, options), nil
}

// GetOptimization returns the session snapshot, idle when the day was never optimized.
func (srv *optimizationService) GetOptimization(_ context.Context, dayID uuid.UUID) (*usecase.OptimizationSnapshot, error) {
	sess, ok := srv.existingSession(dayID)
	if !ok {
		return &usecase.OptimizationSnapshot{DayID: dayID, State: entity.OptimizationStateIdle}, nil
	}

	snapshot := sess.Snapshot()

	return &snapshot, nil
}

// ClearOptimization resets the day's session.
func (srv *optimizationService) ClearOptimization(ctx context.Context, dayID uuid.UUID) error {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if sess, ok := srv.sessions[dayID]; ok {
		sess.Clear()
		srv.pruneLocked(sess)
		srv.log(ctx).Debug("Optimization cleared", slog.String("day_id", dayID.String()))
	}

	return nil
}

// AcceptOptimization commits the succeeded order, publishes the change and clears the session.
func (srv *optimizationService) AcceptOptimization(ctx context.Context, dayID uuid.UUID) (*entity.Day, error) {
	sess, ok := srv.existingSession(dayID)
	if !ok {
		return nil, domainerrors.ErrOptimizationNotReady
	}

	snapshot := sess.Snapshot()
	if snapshot.State != entity.OptimizationStateSucceeded || snapshot.Result == nil {
		return nil, domainerrors.ErrOptimizationNotReady
	}

	result := snapshot.Result
	if result.SizeMismatch {
		return nil, domainerrors.ErrOptimizationPartial
	}

	var committed *entity.Day
	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		dayRepo := factory.NewDayRepository()

		day, err := srv.findDay(ctx, dayRepo, dayID)
		if err != nil {
			return err
		}

		if !sameStops(day, result) {
			return domainerrors.ErrOptimizationOutdated
		}

		if err := dayRepo.UpdateStopSequences(ctx, dayID, result.SeqByStop()); err != nil {
			if errors.Is(err, repository.ErrStopNotOnDay) {
				return domainerrors.ErrOptimizationOutdated.WithDetails(err.Error())
			}

			return errors.Wrap(err, "failed to update stop sequences")
		}

		committed, err = srv.findDay(ctx, dayRepo, dayID)

		return err
	})
	if err != nil {
		return nil, err
	}

	if sess.clearAttempt(snapshot.Attempt) {
		srv.mu.Lock()
		srv.pruneLocked(sess)
		srv.mu.Unlock()
	}
	srv.publishAccepted(ctx, committed, result)

	return committed, nil
}

// RouteQRCode renders a navigation link through the day's stops in their current order.
func (srv *optimizationService) RouteQRCode(ctx context.Context, dayID uuid.UUID, profile entity.VehicleProfile) ([]byte, error) {
	day, err := srv.findDay(ctx, srv.dayRepo, dayID)
	if err != nil {
		return nil, err
	}

	if profile == "" {
		profile = entity.VehicleProfileCar
	}

	png, err := srv.qrCode.GenerateRouteQR(day.OrderedStops(), profile)
	if err != nil {
		return nil, domainerrors.ErrDayNotRoutable.WithDetails(err.Error())
	}

	return png, nil
}

func (srv *optimizationService) findDay(ctx context.Context, repo repository.DayRepository, dayID uuid.UUID) (*entity.Day, error) {
	day, err := repo.FindDayByID(ctx, dayID)
	if err != nil {
		if errors.Is(err, repository.ErrDayNotFound) {
			return nil, domainerrors.ErrDayNotFound
		}

		return nil, errors.Wrap(err, "failed to load day")
	}

	return day, nil
}

func (srv *optimizationService) publishAccepted(ctx context.Context, day *entity.Day, result *entity.OptimizationResult) {
	event := &service.RouteOrderAcceptedEvent{
		RequestID:        deliverycontext.GetRequestIDFromContext(ctx),
		TripID:           day.TripID.String(),
		DayID:            day.ID.String(),
		Stops:            make([]service.StopOrder, 0, len(day.Stops)),
		TotalDistanceKm:  result.Summary.TotalDistanceKm,
		TotalDurationMin: result.Summary.TotalDurationMin,
		DistanceSavedKm:  result.Savings.DistanceSavedKm,
		TimeSavedMin:     result.Savings.TimeSavedMin,
		AcceptedAt:       srv.now().UTC(),
	}
	for _, stop := range day.OrderedStops() {
		event.Stops = append(event.Stops, service.StopOrder{StopID: stop.ID.String(), Seq: stop.Seq})
	}

	// The order is already committed; a lost event is logged, not surfaced.
	if err := srv.publisher.PublishRouteOrderAccepted(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to publish route order accepted event",
			slog.String("day_id", event.DayID),
			slog.Any("error", err),
		)
	}
}

// sameStops reports whether the day still holds exactly the optimized stops.
func sameStops(day *entity.Day, result *entity.OptimizationResult) bool {
	if len(day.Stops) != len(result.Stops) {
		return false
	}

	ids := day.StopIDs()
	for _, s := range result.Stops {
		if _, ok := ids[s.ID]; !ok {
			return false
		}
	}

	return true
}
