// Package nbastats implements the StatsProvider against the two public NBA
// feeds: the live CDN JSON (scores, in-game boxscores) and the stats API
// (historical boxscores, standings, game logs, career totals).
package nbastats

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/nbastables/stats-api/internal/providers"
)

// Config controls how the client reaches the upstream feeds.
type Config struct {
	LiveBaseURL  string
	StatsBaseURL string
	// Proxy, when set, is prefixed to stats API URLs. The stats API blocks
	// many cloud provider IP ranges, so deployments route through a relay.
	Proxy      string
	HTTPClient *http.Client
}

// Client talks to both NBA feeds. It is safe for concurrent use.
type Client struct {
	liveBaseURL  string
	statsBaseURL string
	proxy        string
	httpClient   httpDoer
	now          func() time.Time
}

// NewClient constructs a client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		liveBaseURL:  normalizeBaseURL(cfg.LiveBaseURL, defaultLiveBaseURL),
		statsBaseURL: normalizeBaseURL(cfg.StatsBaseURL, defaultStatsBaseURL),
		proxy:        cfg.Proxy,
		httpClient:   resolveHTTPClient(cfg.HTTPClient),
		now:          time.Now,
	}
}

var _ providers.StatsProvider = (*Client)(nil)

// getJSON fetches a URL and decodes the body into out.
func (c *Client) getJSON(ctx context.Context, rawURL string, browserHeaders bool, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}
	if browserHeaders {
		statsHeaders(req)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", providers.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return &providers.RateLimitError{
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After")),
		}
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%w: unexpected status %d: %s",
			providers.ErrUpstreamUnavailable, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %v", providers.ErrMalformedResponse, err)
	}
	return nil
}

// statsURL builds a stats API URL, routing through the proxy when set.
func (c *Client) statsURL(endpoint string, params url.Values) string {
	target := fmt.Sprintf("%s/%s?%s", c.statsBaseURL, endpoint, params.Encode())
	if c.proxy == "" {
		return target
	}
	return strings.TrimSuffix(c.proxy, "/") + "/" + url.QueryEscape(target)
}

// currentSeason formats the season string, rolling over in October.
func (c *Client) currentSeason() string {
	now := c.now()
	year := now.Year()
	if now.Month() < seasonRolloverMonth {
		year--
	}
	return fmt.Sprintf("%d-%02d", year, (year+1)%100)
}

func parseRetryAfter(value string) time.Duration {
	if value == "" {
		return 0
	}
	if secs, err := strconv.Atoi(value); err == nil {
		return time.Duration(secs) * time.Second
	}
	return 0
}
