package api

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"itinerary/config"
	"itinerary/internal/delivery"
	apimiddleware "itinerary/internal/delivery/api/middleware"
	"itinerary/internal/delivery/api/router"
	"itinerary/internal/delivery/api/validator"
	deliverycontext "itinerary/internal/delivery/context"
	"itinerary/internal/delivery/middleware"
	"itinerary/internal/domain/lifecycle"
	"itinerary/internal/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

type apiServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

// Handler exposes the configured echo instance for in-process tests.
func (s *apiServer) Handler() http.Handler {
	return s.server
}

// ServerParams holds dependencies for HTTP server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	RouterParams router.RouterParams
}

func NewServer(params ServerParams) (delivery.Delivery, error) {
	if params.Cfg.Routing != nil && params.Cfg.HTTP.Timeouts.WriteTimeout > 0 &&
		params.Cfg.HTTP.Timeouts.WriteTimeout <= params.Cfg.Routing.Timeout {
		// optimize blocks on the routing call; a shorter write timeout cuts it off
		params.Logger.Warn("HTTP write timeout does not cover the routing timeout",
			slog.Duration("write_timeout", params.Cfg.HTTP.Timeouts.WriteTimeout),
			slog.Duration("routing_timeout", params.Cfg.Routing.Timeout),
		)
	}

	echoServer := echo.New()
	echoServer.HideBanner = true
	echoServer.HidePort = true
	echoServer.Server.ReadTimeout = params.Cfg.HTTP.Timeouts.ReadTimeout
	echoServer.Server.ReadHeaderTimeout = params.Cfg.HTTP.Timeouts.ReadHeaderTimeout
	echoServer.Server.WriteTimeout = params.Cfg.HTTP.Timeouts.WriteTimeout
	echoServer.Server.IdleTimeout = params.Cfg.HTTP.Timeouts.IdleTimeout

	// Order matters: recover, request scope (request id, trip/day logger), access log.
	echoServer.Use(echomiddleware.Recover())
	echoServer.Use(middleware.NewRequestScopeMiddleware(params.Logger).Process)
	echoServer.Use(middleware.NewAccessLogMiddleware(params.Logger, params.Cfg).Handle)
	echoServer.Use(echomiddleware.CORSWithConfig(corsConfig))
	echoServer.Use(echomiddleware.BodyLimit(params.Cfg.HTTP.MaxRequestBodySize))

	echoServer.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(params.Logger).HandleHTTPError
	echoServer.Validator = validator.New()

	router.NewRouter(params.RouterParams).RegisterRoutes(echoServer)

	srv := &apiServer{
		cfg:    params.Cfg,
		logger: params.Logger,
		server: echoServer,
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// corsConfig lets browser clients forward their bearer token and correlate
// responses by request id. PATCH covers trip status updates.
var corsConfig = echomiddleware.CORSConfig{ //nolint:gochecknoglobals
	AllowOrigins:  []string{"*"},
	AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
	AllowHeaders:  []string{echo.HeaderAuthorization, echo.HeaderContentType, deliverycontext.HeaderXRequestID},
	ExposeHeaders: []string{deliverycontext.HeaderXRequestID},
}

func (s *apiServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Starting API HTTP server", slog.String("host_port", hostPort))
	h2Server := &http2.Server{
		IdleTimeout: s.cfg.HTTP.Timeouts.IdleTimeout,
	}
	if err := s.server.StartH2CServer(hostPort, h2Server); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *apiServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down API HTTP server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
