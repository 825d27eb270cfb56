// Package statfeed fetches the raw game document from a remote box-score
// endpoint. The endpoint is a single parameterless GET returning the whole
// document as application/xml.
package statfeed

import (
	"context"
	"fmt"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/drewburchfield/gridiron/internal/platform/logging"
	"github.com/drewburchfield/gridiron/internal/platform/resilience"
	"github.com/valyala/fasthttp"
)

var errFeedTransient = crerr.New("statfeed transient failure")

type ClientConfig struct {
	URL            string
	Timeout        time.Duration
	MaxRetries     int
	CircuitBreaker resilience.CircuitBreakerConfig
}

type Client struct {
	http           *fasthttp.Client
	url            string
	timeout        time.Duration
	maxRetries     int
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	flight         resilience.SingleFlight
	logger         *logging.Logger
}

func NewClient(cfg ClientConfig, logger *logging.Logger) *Client {
	if logger == nil {
		logger = logging.Default()
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	retries := cfg.MaxRetries
	if retries < 0 {
		retries = 0
	}
	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &Client{
		http: &fasthttp.Client{
			ReadTimeout:  timeout,
			WriteTimeout: timeout,
		},
		url:            strings.TrimSpace(cfg.URL),
		timeout:        timeout,
		maxRetries:     retries,
		breaker:        resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.HalfOpenMaxReq),
		circuitEnabled: breakerCfg.Enabled,
		logger:         logger,
	}
}

// FetchDocument retrieves the full document. Concurrent callers share one
// in-flight request.
func (c *Client) FetchDocument(ctx context.Context) ([]byte, error) {
	if c.url == "" {
		return nil, crerr.New("statfeed URL is not configured")
	}

	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "statfeed circuit breaker rejected request", "state", c.breaker.State())
			return nil, fmt.Errorf("statfeed is temporarily unavailable: %w", err)
		}
	}

	value, err, shared := c.flight.Do("document", func() (any, error) {
		return c.fetchWithRetry(ctx)
	})
	if err != nil {
		if c.circuitEnabled && !shared {
			c.breaker.RecordFailure()
		}
		return nil, err
	}
	if c.circuitEnabled && !shared {
		c.breaker.RecordSuccess()
	}

	return value.([]byte), nil
}

func (c *Client) fetchWithRetry(ctx context.Context) ([]byte, error) {
	backoff := 250 * time.Millisecond
	var lastErr error

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(backoff):
			}
			backoff *= 2
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		body, err := c.fetchOnce(ctx, attempt)
		if err == nil {
			return body, nil
		}
		lastErr = err
		if !crerr.Is(err, errFeedTransient) {
			return nil, err
		}
	}

	return nil, crerr.Wrapf(lastErr, "statfeed fetch failed after %d attempts", c.maxRetries+1)
}

func (c *Client) fetchOnce(ctx context.Context, attempt int) ([]byte, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(c.url)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set(fasthttp.HeaderAccept, "application/xml, text/xml")

	started := time.Now()
	if err := c.http.DoTimeout(req, resp, c.timeout); err != nil {
		c.logger.WarnContext(ctx, "statfeed request failed",
			"attempt", attempt,
			"duration_ms", time.Since(started).Milliseconds(),
			"error", err,
		)
		return nil, crerr.WithSecondaryError(errFeedTransient, err)
	}

	status := resp.StatusCode()
	switch {
	case status == fasthttp.StatusOK:
		// The response buffer is pooled; hand back a private copy.
		body := append([]byte(nil), resp.Body()...)
		c.logger.DebugContext(ctx, "statfeed document fetched",
			"bytes", len(body),
			"duration_ms", time.Since(started).Milliseconds(),
		)
		return body, nil
	case status >= 500:
		c.logger.WarnContext(ctx, "statfeed returned server error",
			"attempt", attempt,
			"status", status,
			"body", truncateForLog(resp.Body(), 512),
		)
		return nil, crerr.Wrapf(errFeedTransient, "status %d", status)
	default:
		return nil, crerr.Newf("statfeed returned unexpected status %d", status)
	}
}

func truncateForLog(body []byte, limit int) string {
	if len(body) > limit {
		body = body[:limit]
	}
	return string(body)
}
