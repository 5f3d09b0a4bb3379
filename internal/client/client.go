package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"github.com/failsafe-go/failsafe-go"
	"github.com/failsafe-go/failsafe-go/failsafehttp"
	"github.com/failsafe-go/failsafe-go/ratelimiter"

	"github.com/Belphemur/ShowGraph/internal/cache"
	"github.com/Belphemur/ShowGraph/internal/config"
)

// Client defines the interface for querying the TVmaze REST API.
type Client interface {
	// FetchSchedule returns the raw entries of the web/streaming schedule for date (YYYY-MM-DD),
	// in upstream order.
	FetchSchedule(ctx context.Context, date string) ([]json.RawMessage, error)

	// FetchShow returns the raw show document for id.
	FetchShow(ctx context.Context, id int) (json.RawMessage, error)

	// FetchCast returns the raw cast document for id. The body is returned whatever
	// the status code as long as it is valid JSON; callers treat non-arrays as "no cast".
	FetchCast(ctx context.Context, id int) (json.RawMessage, error)

	// Close releases any resources held by the client (e.g., cache connections).
	Close() error
}

// client implements the Client interface
type client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	cache      cache.Cache
}

// NewClient creates a new client instance. responseCache may be nil to disable caching.
func NewClient(cfg *config.Config, responseCache cache.Cache) Client {
	logger := config.GetLogger()

	timeout := parseDuration(cfg.ClientTimeout, 30*time.Second, "client_timeout")

	// Clone DefaultTransport to preserve its pooling, HTTP/2 and dial timeouts
	baseTransport := http.DefaultTransport.(*http.Transport).Clone()
	if cfg.ProxyConnectionString != "" {
		proxyURL, err := url.Parse(cfg.ProxyConnectionString)
		if err != nil {
			logger.Warn().Err(err).Str("proxy", cfg.ProxyConnectionString).Msg("Invalid proxy URL, continuing without proxy")
		} else {
			baseTransport.Proxy = http.ProxyURL(proxyURL)
		}
	}

	var transport http.RoundTripper = newCompressionTransport(baseTransport)
	if policies := upstreamPolicies(cfg); len(policies) > 0 {
		transport = failsafehttp.NewRoundTripper(transport, policies...)
	}

	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = config.GetUserAgent()
	}
	baseURL := cfg.UpstreamBaseURL
	if baseURL == "" {
		baseURL = config.DefaultUpstreamBaseURL
	}

	return &client{
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
		baseURL:   baseURL,
		userAgent: userAgent,
		cache:     responseCache,
	}
}

// upstreamPolicies builds the failsafe policies wrapped around every upstream request.
// TVmaze allows about 20 calls every 10 seconds per IP; requests beyond the budget
// wait up to max_wait for a permit and then fail with ratelimiter.ErrExceeded.
func upstreamPolicies(cfg *config.Config) []failsafe.Policy[*http.Response] {
	if cfg.RateLimit.Requests == 0 {
		return nil
	}

	period := parseDuration(cfg.RateLimit.Period, 10*time.Second, "rate_limit.period")
	maxWait := parseDuration(cfg.RateLimit.MaxWait, 5*time.Second, "rate_limit.max_wait")

	limiter := ratelimiter.NewBurstyBuilder[*http.Response](cfg.RateLimit.Requests, period).
		WithMaxWaitTime(maxWait).
		Build()

	return []failsafe.Policy[*http.Response]{limiter}
}

func parseDuration(value string, fallback time.Duration, key string) time.Duration {
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		logger := config.GetLogger()
		logger.Warn().Err(err).Str("key", key).Str("value", value).Dur("fallback", fallback).Msg("Invalid duration, using default")
		return fallback
	}
	return parsed
}

// Close releases any resources held by the client, such as cache connections.
func (c *client) Close() error {
	if c.cache == nil {
		return nil
	}
	return c.cache.Close()
}
