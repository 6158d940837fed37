package impl

import (
	"context"
	"log/slog"
	"sync"

	deliverycontext "itinerary/internal/delivery/context"
	"itinerary/internal/domain/entity"
	"itinerary/internal/domain/optimization"
	"itinerary/internal/domain/service"
	"itinerary/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// sessionDeps are shared by every session of an optimization service.
type sessionDeps struct {
	client       service.RoutingClient
	tokens       service.TokenProvider
	cache        service.OptimizationCache // optional
	speedKmh     float64
	detourFactor float64
	logger       *slog.Logger
}

// OptimizationSession drives the optimization of one day:
// idle -> validating -> (failed | requesting) -> (succeeded | failed).
//
// Every Optimize call takes a new attempt number. Only the attempt that is
// still current when it completes may update the session; older completions
// are reported as stale and dropped.
type OptimizationSession struct {
	dayID uuid.UUID
	deps  *sessionDeps

	// users counts calls holding the session; guarded by the service mutex.
	users int

	mu      sync.Mutex
	attempt uint64
	cancel  context.CancelFunc
	state   entity.OptimizationState
	result  *entity.OptimizationResult
	report  *entity.ErrorReport
}

func newOptimizationSession(dayID uuid.UUID, deps *sessionDeps) *OptimizationSession {
	return &OptimizationSession{
		dayID: dayID,
		deps:  deps,
		state: entity.OptimizationStateIdle,
	}
}

// Optimize runs one attempt to completion. It blocks until the routing call
// returns; use OptimizeAsync to run it in the background.
func (s *OptimizationSession) Optimize(ctx context.Context, day *entity.Day, options entity.OptimizationOptions) *usecase.OptimizationOutcome {
	attempt, attemptCtx, cancel := s.begin(ctx)
	defer cancel()

	logger := s.log(ctx).With(slog.String("day_id", s.dayID.String()), slog.Uint64("attempt", attempt))
	logger.Debug("Optimization attempt started", slog.Int("stops", len(day.Stops)))

	options = options.WithDefaults()

	if problems := optimization.Validate(day, options); len(problems) > 0 {
		return s.fail(logger, attempt, &optimization.ValidationFailure{Messages: problems})
	}

	req, err := optimization.BuildRequest(day, options)
	if err != nil {
		return s.fail(logger, attempt, &optimization.ValidationFailure{Messages: []string{err.Error()}})
	}

	// a missing token fails the attempt before it ever reaches requesting
	token, err := s.token(attemptCtx)
	if err != nil {
		return s.fail(logger, attempt, err)
	}

	if !s.enterRequesting(attempt) {
		logger.Debug("Optimization attempt superseded before request")

		return s.staleOutcome(attempt, nil, nil)
	}

	resp, err := s.fetch(attemptCtx, logger, token, req)
	if err != nil {
		return s.fail(logger, attempt, err)
	}

	rec, err := optimization.Reconcile(resp, day.Stops)
	if err != nil {
		return s.fail(logger, attempt, err)
	}

	baseline := optimization.EstimateBaseline(day.Stops, s.deps.speedKmh, s.deps.detourFactor)
	result := optimization.BuildResult(day.ID, resp, rec, baseline)

	return s.succeed(logger, attempt, result)
}

// OptimizeAsync runs Optimize in a goroutine and delivers its outcome on the
// returned channel.
func (s *OptimizationSession) OptimizeAsync(ctx context.Context, day *entity.Day, options entity.OptimizationOptions) <-chan *usecase.OptimizationOutcome {
	out := make(chan *usecase.OptimizationOutcome, 1)
	go func() {
		defer close(out)
		out <- s.Optimize(ctx, day, options)
	}()

	return out
}

// Clear returns the session to idle. In-flight attempts keep running but their
// completions are dropped.
func (s *OptimizationSession) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.attempt++
	s.cancel = nil
	s.setLocked(entity.OptimizationStateIdle, nil, nil)
}

// clearAttempt clears only if attempt is still the current one.
func (s *OptimizationSession) clearAttempt(attempt uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.attempt != attempt {
		return false
	}

	s.attempt++
	s.cancel = nil
	s.setLocked(entity.OptimizationStateIdle, nil, nil)

	return true
}

func (s *OptimizationSession) idle() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state == entity.OptimizationStateIdle
}

// Snapshot returns the current state with the latest result or report.
func (s *OptimizationSession) Snapshot() usecase.OptimizationSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.snapshotLocked()
}

func (s *OptimizationSession) begin(ctx context.Context) (uint64, context.Context, context.CancelFunc) {
	attemptCtx, cancel := context.WithCancel(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	// best effort: the superseded transport may still run to completion
	if s.cancel != nil {
		s.cancel()
	}

	s.attempt++
	s.cancel = cancel
	s.setLocked(entity.OptimizationStateValidating, nil, nil)

	return s.attempt, attemptCtx, cancel
}

func (s *OptimizationSession) enterRequesting(attempt uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.attempt != attempt {
		return false
	}
	s.state = entity.OptimizationStateRequesting

	return true
}

func (s *OptimizationSession) token(ctx context.Context) (string, error) {
	token, err := s.deps.tokens.Token(ctx)
	if err != nil {
		return "", errors.Wrap(err, "acquire routing token")
	}
	if token == "" {
		return "", optimization.ErrAuthenticationRequired
	}

	return token, nil
}

func (s *OptimizationSession) fetch(ctx context.Context, logger *slog.Logger, token string, req *optimization.Request) (*optimization.Response, error) {
	var err error
	fingerprint := ""
	if s.deps.cache != nil {
		fingerprint, err = req.Fingerprint()
		if err != nil {
			logger.Warn("Skipping optimization cache", slog.Any("error", err))
		} else if cached, cacheErr := s.deps.cache.Get(ctx, fingerprint); cacheErr != nil {
			logger.Warn("Optimization cache read failed", slog.Any("error", cacheErr))
		} else if cached != nil {
			logger.Debug("Optimization cache hit")

			return cached, nil
		}
	}

	resp, err := s.deps.client.Optimize(ctx, token, req)
	if err != nil {
		return nil, err
	}

	if s.deps.cache != nil && fingerprint != "" {
		if err := s.deps.cache.Set(ctx, fingerprint, resp); err != nil {
			logger.Warn("Optimization cache write failed", slog.Any("error", err))
		}
	}

	return resp, nil
}

func (s *OptimizationSession) fail(logger *slog.Logger, attempt uint64, cause error) *usecase.OptimizationOutcome {
	report := optimization.Classify(cause)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.attempt != attempt {
		logger.Debug("Dropping stale optimization failure", slog.Any("error", cause))

		return s.staleOutcomeLocked(attempt, nil, report)
	}

	s.setLocked(entity.OptimizationStateFailed, nil, report)
	logger.Warn("Route optimization failed",
		slog.Any("error", cause),
		slog.Bool("retryable", report.Retryable()),
	)

	return &usecase.OptimizationOutcome{OptimizationSnapshot: s.snapshotLocked()}
}

func (s *OptimizationSession) succeed(logger *slog.Logger, attempt uint64, result *entity.OptimizationResult) *usecase.OptimizationOutcome {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.attempt != attempt {
		logger.Debug("Dropping stale optimization result")

		return s.staleOutcomeLocked(attempt, result, nil)
	}

	s.setLocked(entity.OptimizationStateSucceeded, result, nil)
	logger.Info("Route optimized",
		slog.Int("stops", result.OptimizedCount),
		slog.Bool("size_mismatch", result.SizeMismatch),
		slog.Float64("distance_km", result.Summary.TotalDistanceKm),
		slog.Float64("time_saved_min", result.Savings.TimeSavedMin),
	)

	return &usecase.OptimizationOutcome{OptimizationSnapshot: s.snapshotLocked()}
}

func (s *OptimizationSession) staleOutcome(attempt uint64, result *entity.OptimizationResult, report *entity.ErrorReport) *usecase.OptimizationOutcome {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.staleOutcomeLocked(attempt, result, report)
}

// staleOutcomeLocked describes the dropped attempt itself; the session state is untouched.
func (s *OptimizationSession) staleOutcomeLocked(attempt uint64, result *entity.OptimizationResult, report *entity.ErrorReport) *usecase.OptimizationOutcome {
	state := s.state
	switch {
	case result != nil:
		state = entity.OptimizationStateSucceeded
	case report != nil:
		state = entity.OptimizationStateFailed
	}

	return &usecase.OptimizationOutcome{
		OptimizationSnapshot: usecase.OptimizationSnapshot{
			DayID:   s.dayID,
			State:   state,
			Attempt: attempt,
			Result:  result,
			Report:  report,
		},
		Stale: true,
	}
}

func (s *OptimizationSession) setLocked(state entity.OptimizationState, result *entity.OptimizationResult, report *entity.ErrorReport) {
	s.state = state
	s.result = result
	s.report = report
}

func (s *OptimizationSession) snapshotLocked() usecase.OptimizationSnapshot {
	return usecase.OptimizationSnapshot{
		DayID:   s.dayID,
		State:   s.state,
		Attempt: s.attempt,
		Result:  s.result,
		Report:  s.report,
	}
}

func (s *OptimizationSession) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.deps.logger)
}
