package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Belphemur/ShowGraph/internal/apperrors"
	"github.com/Belphemur/ShowGraph/internal/config"
	"github.com/Belphemur/ShowGraph/internal/metrics"
	"github.com/Belphemur/ShowGraph/internal/parser"
)

// maxBodySize bounds how much of an upstream body is read; the largest schedule days are a few MB.
const maxBodySize = 32 << 20

// upstreamResponse is a validated JSON body together with the status it was served with.
type upstreamResponse struct {
	StatusCode int
	Body       json.RawMessage
	Cached     bool
}

func (r *upstreamResponse) ok() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// getJSON performs a GET against the upstream API and returns the body once it is known to be valid JSON.
// Successful responses are stored in the cache (when configured) keyed by URL.
// route is a low-cardinality name used for metrics and logs.
func (c *client) getJSON(ctx context.Context, route, endpoint string) (*upstreamResponse, error) {
	logger := config.GetLogger()

	if c.cache != nil {
		if body, ok := c.cache.Get(ctx, endpoint); ok {
			logger.Debug().Str("route", route).Str("url", endpoint).Msg("Serving upstream response from cache")
			return &upstreamResponse{StatusCode: http.StatusOK, Body: body, Cached: true}, nil
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s request: %w", route, err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	metrics.UpstreamRequestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(route, metrics.StatusClass(0)).Inc()
		return nil, fmt.Errorf("failed to fetch %s: %w", route, err)
	}
	defer resp.Body.Close()
	metrics.UpstreamRequestsTotal.WithLabelValues(route, metrics.StatusClass(resp.StatusCode)).Inc()

	reader, err := parser.NewUTF8Reader(io.LimitReader(resp.Body, maxBodySize), resp.Header.Get("Content-Type"))
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s body: %w", route, err)
	}

	body, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s body: %w", route, err)
	}

	result := &upstreamResponse{StatusCode: resp.StatusCode, Body: body}
	if !json.Valid(body) {
		if !result.ok() {
			// A non-JSON error page: the status is the more useful diagnostic.
			return nil, &apperrors.ErrUpstreamStatus{URL: endpoint, StatusCode: resp.StatusCode}
		}
		return nil, apperrors.NewInvalidPayloadError(route, "response body is not valid JSON")
	}

	if result.ok() && c.cache != nil {
		c.cache.Set(ctx, endpoint, body)
	}

	logger.Debug().
		Str("route", route).
		Str("url", endpoint).
		Int("statusCode", resp.StatusCode).
		Int("bytes", len(body)).
		Dur("elapsed", time.Since(start)).
		Msg("Fetched upstream resource")

	return result, nil
}
