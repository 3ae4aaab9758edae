package http

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"tamilwords/internal/domain"
	"tamilwords/internal/errors"
)

const (
	// Standard HTTP content types.
	contentTypeJSON = "application/json"

	// HeaderRequestID correlates client logs with API logs.
	HeaderRequestID = "X-Request-ID"
)

// Options configures an Adapter.
type Options struct {
	BaseURL string
	Timeout time.Duration

	// RequestsPerSecond of zero disables client-side throttling.
	RequestsPerSecond float64
	Burst             int
}

// Adapter is an HTTP client adapter using resty with rate limiting.
// Every request is resolved against a single base URL fixed at construction.
type Adapter struct {
	client  *resty.Client
	baseURL string

	mu      sync.RWMutex
	limiter *rate.Limiter

	logger *slog.Logger
}

// NewAdapter creates a new HTTP adapter. Requests are never retried; a failed
// call is reported to the caller as-is.
func NewAdapter(opts Options, logger *slog.Logger) *Adapter {
	client := resty.New().
		SetBaseURL(opts.BaseURL).
		SetTimeout(opts.Timeout).
		SetRetryCount(0).
		SetHeader("Content-Type", contentTypeJSON).
		SetHeader("Accept", contentTypeJSON)

	a := &Adapter{
		client:  client,
		baseURL: client.BaseURL,
		logger:  logger,
	}
	a.SetRateLimit(opts.RequestsPerSecond, opts.Burst)

	// Add rate limiting middleware
	client.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		limiter := a.currentLimiter()
		if limiter == nil {
			return nil
		}
		return limiter.Wait(req.Context())
	})

	// Add logging middleware
	client.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		requestID := uuid.NewString()
		req.SetHeader(HeaderRequestID, requestID)
		logger.DebugContext(req.Context(), "HTTP request",
			"method", req.Method,
			"url", req.URL,
			"request_id", requestID,
		)
		return nil
	})

	return a
}

// Do sends req and returns the raw response. The caller owns the body.
// Transport failures, including timeouts and cancellation, come back as
// *errors.NetworkError; HTTP status codes are left for the caller to judge.
func (a *Adapter) Do(ctx context.Context, req domain.Request) (*http.Response, error) {
	request := a.client.R().
		SetContext(ctx).
		SetDoNotParseResponse(true)

	if len(req.Query) > 0 {
		request.SetQueryParamsFromValues(req.Query)
	}
	if req.Body != nil {
		request.SetBody(req.Body)
	}

	resp, err := request.Execute(req.Method, req.Path)
	if err != nil {
		a.logger.DebugContext(ctx, "HTTP request failed",
			"operation", req.Operation,
			"method", req.Method,
			"path", req.Path,
			"error", err,
		)
		return nil, errors.NewNetworkError(req.Method, a.baseURL+req.Path, err)
	}

	// Responses left unparsed skip resty's after-response hooks, so log here.
	a.logger.DebugContext(ctx, "HTTP response",
		"operation", req.Operation,
		"method", req.Method,
		"path", req.Path,
		"status", resp.StatusCode(),
		"duration", resp.Time(),
		"request_id", resp.Request.Header.Get(HeaderRequestID),
	)
	return resp.RawResponse, nil
}

// BaseURL returns the location every request path is appended to.
func (a *Adapter) BaseURL() string {
	return a.baseURL
}

// SetRateLimit replaces the limiter. A non-positive rate disables throttling.
func (a *Adapter) SetRateLimit(requestsPerSecond float64, burst int) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if requestsPerSecond <= 0 {
		a.limiter = nil
		return
	}
	if burst < 1 {
		burst = 1
	}
	a.limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), burst)
}

func (a *Adapter) currentLimiter() *rate.Limiter {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.limiter
}
