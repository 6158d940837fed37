// Package routing talks to the remote route optimization service.
package routing

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"itinerary/config"
	deliverycontext "itinerary/internal/delivery/context"
	"itinerary/internal/domain/optimization"
	"itinerary/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// maxErrorBody caps how much of an error response is kept for classification.
const maxErrorBody = 64 << 10

// Client is a RoutingClient over HTTP. It is safe for concurrent use.
type Client struct {
	session  *http.Client
	endpoint string
	logger   *slog.Logger
}

// ClientParams holds dependencies for the routing client, injected by Fx.
type ClientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewClient builds the client from the routing config section.
func NewClient(params ClientParams) (service.RoutingClient, error) {
	cfg := params.Config.Routing
	if cfg == nil || cfg.BaseURL == "" {
		return nil, errors.New("routing base url must be provided")
	}

	endpoint, err := url.JoinPath(cfg.BaseURL, cfg.OptimizePath)
	if err != nil {
		return nil, errors.Wrap(err, "invalid routing base url")
	}

	return &Client{
		session:  &http.Client{Timeout: cfg.Timeout},
		endpoint: endpoint,
		logger:   params.Logger,
	}, nil
}

// Optimize posts the request and decodes the optimized order. HTTP error
// statuses become *optimization.ServiceFailure, and requests that got no
// response become *optimization.TransportFailure.
func (c *Client) Optimize(ctx context.Context, token string, req *optimization.Request) (*optimization.Response, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, errors.Wrap(err, "encode optimization request")
	}

	httpReq, err := c.newRequest(ctx, token, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, c.logger)
	started := time.Now()

	resp, err := c.do(httpReq)
	if err != nil {
		logger.Debug("Routing call failed",
			slog.String("day_id", req.DayID),
			slog.Duration("elapsed", time.Since(started)),
			slog.Any("error", err),
		)

		return nil, err
	}
	defer resp.Body.Close()

	var out optimization.Response
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, errors.Wrap(err, "decode optimization response")
	}

	logger.Debug("Routing call completed",
		slog.String("day_id", req.DayID),
		slog.Int("status", resp.StatusCode),
		slog.Int("ordered", len(out.Ordered)),
		slog.Duration("elapsed", time.Since(started)),
	)

	return &out, nil
}

func (c *Client) newRequest(ctx context.Context, token string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, body)
	if err != nil {
		return nil, errors.Wrap(err, "create request")
	}

	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, requestID)
	}

	return req, nil
}

func (c *Client) do(req *http.Request) (*http.Response, error) {
	resp, err := c.session.Do(req)
	if err != nil {
		return nil, &optimization.TransportFailure{Cause: err}
	}

	if resp.StatusCode >= http.StatusBadRequest {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		resp.Body.Close()

		return nil, &optimization.ServiceFailure{StatusCode: resp.StatusCode, Body: b}
	}

	return resp, nil
}
