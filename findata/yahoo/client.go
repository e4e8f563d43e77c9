// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/poiesic/compsearch/core"
	"github.com/poiesic/compsearch/findata"
)

const (
	defaultQueryHost  = "https://query1.finance.yahoo.com"
	defaultCookieHost = "https://finance.yahoo.com"

	// Yahoo rejects requests without a browser-looking user agent.
	userAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

	// quoteSummary modules covering the full attribute schema.
	modules = "assetProfile,summaryDetail,defaultKeyStatistics,financialData"
)

// Config holds connection settings for the Yahoo Finance quoteSummary API.
type Config struct {
	// QueryHost is the API host. Default: https://query1.finance.yahoo.com
	QueryHost string

	// CookieHost is the page fetched to obtain a session cookie before
	// requesting a crumb. Default: https://finance.yahoo.com
	CookieHost string

	// Timeout is the per-request HTTP timeout. Default: 10s.
	Timeout time.Duration
}

// DefaultConfig returns a Config pointing at the public Yahoo endpoints.
func DefaultConfig() *Config {
	return &Config{
		QueryHost:  defaultQueryHost,
		CookieHost: defaultCookieHost,
		Timeout:    10 * time.Second,
	}
}

// Client implements findata.Provider against the Yahoo Finance
// quoteSummary API. Yahoo requires a session cookie plus a "crumb" token
// on every data request; the client performs that handshake lazily and
// reuses the crumb across lookups.
type Client struct {
	httpClient *http.Client
	queryHost  string
	cookieHost string
	logger     *slog.Logger

	mu    sync.Mutex
	crumb string
}

// Option configures a Client.
type Option func(*Client) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) error {
		if logger == nil {
			logger = slog.Default()
		}
		c.logger = logger
		return nil
	}
}

// newClient is an internal constructor that returns the concrete type.
func newClient(config *Config, opts ...Option) (*Client, error) {
	if config == nil {
		config = DefaultConfig()
	}
	queryHost := config.QueryHost
	if queryHost == "" {
		queryHost = defaultQueryHost
	}
	cookieHost := config.CookieHost
	if cookieHost == "" {
		cookieHost = defaultCookieHost
	}
	timeout := config.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}

	c := &Client{
		httpClient: &http.Client{Jar: jar, Timeout: timeout},
		queryHost:  queryHost,
		cookieHost: cookieHost,
		logger:     slog.Default().With("component", "yahoo-findata"),
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// NewClient creates a Yahoo Finance client.
//
// Returns findata.Provider interface to enforce abstraction.
func NewClient(config *Config, opts ...Option) (findata.Provider, error) {
	return newClient(config, opts...)
}

// Lookup fetches the financial attribute set for a ticker.
func (c *Client) Lookup(ctx context.Context, ticker string) (*core.Fundamentals, error) {
	ticker = strings.TrimSpace(ticker)
	if ticker == "" {
		return nil, findata.ErrEmptyTicker
	}

	crumb, err := c.ensureCrumb(ctx)
	if err != nil {
		return nil, fmt.Errorf("yahoo crumb handshake: %w", err)
	}

	reqURL := fmt.Sprintf("%s/v10/finance/quoteSummary/%s?modules=%s&crumb=%s",
		c.queryHost, url.PathEscape(ticker), modules, url.QueryEscape(crumb))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("quoteSummary request for %s: %w", ticker, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s", findata.ErrNotFound, ticker)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("quoteSummary for %s: status %s", ticker, resp.Status)
	}

	var payload quoteSummaryResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decoding quoteSummary for %s: %w", ticker, err)
	}

	if payload.QuoteSummary.Error != nil {
		c.logger.Debug("quoteSummary returned api error",
			"ticker", ticker, "code", payload.QuoteSummary.Error.Code)
		return nil, fmt.Errorf("%w: %s", findata.ErrNotFound, ticker)
	}
	if len(payload.QuoteSummary.Result) == 0 {
		return nil, fmt.Errorf("%w: %s", findata.ErrNotFound, ticker)
	}

	return payload.QuoteSummary.Result[0].fundamentals(), nil
}

// ensureCrumb performs the cookie+crumb handshake once and caches the
// crumb for subsequent lookups.
func (c *Client) ensureCrumb(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.crumb != "" {
		return c.crumb, nil
	}

	// 1. Fetch the landing page so the jar picks up a session cookie.
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cookieHost, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching session cookie: %w", err)
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()

	// 2. Exchange the cookie for a crumb.
	req, err = http.NewRequestWithContext(ctx, http.MethodGet, c.queryHost+"/v1/test/getcrumb", nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err = c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching crumb: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	crumb := strings.TrimSpace(string(body))
	if crumb == "" || strings.Contains(crumb, "html") {
		return "", fmt.Errorf("invalid crumb received: %q", crumb)
	}

	c.crumb = crumb
	c.logger.Debug("crumb handshake complete")
	return crumb, nil
}
