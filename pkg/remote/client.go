/*
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package remote talks to the sensor gateway's JSON API with retries,
// read-through caching and connectivity tracking.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/jellydator/ttlcache/v3"

	"github.com/carverauto/sensorpoll/pkg/logger"
	"github.com/carverauto/sensorpoll/pkg/models"
)

const (
	defaultCacheTTL  = 30 * time.Second
	maxResponseBytes = 8 << 20
)

var errNotJSONObject = errors.New("body is not a JSON object")

// Request describes one gateway call.
type Request struct {
	Endpoint string
	// Method defaults to GET. GET params go in the query string, everything
	// else sends params as a JSON body.
	Method   string
	Params   map[string]interface{}
	UseCache bool
	// CacheTTL only applies when UseCache is set.
	CacheTTL time.Duration
}

type payloadCache = ttlcache.Cache[string, map[string]interface{}]

// Client issues retried, optionally cached requests to a single gateway.
type Client struct {
	mu               sync.RWMutex
	config           Config
	httpClient       *http.Client
	connected        bool
	lastCheck        time.Time
	connectionErrors int

	cache     *payloadCache
	logger    logger.Logger
	closed    atomic.Bool
	closeOnce sync.Once
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the default transport. The client timeout is still
// taken from Config.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = &http.Client{
			Transport: hc.Transport,
			Timeout:   time.Duration(c.config.Timeout),
		}
	}
}

// NewClient validates cfg and starts the cache expiry loop. Call Close when done.
func NewClient(cfg Config, log logger.Logger, opts ...Option) (*Client, error) {
	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid remote config: %w", err)
	}

	c := &Client{
		config:     cfg,
		logger:     log,
		httpClient: &http.Client{Timeout: time.Duration(cfg.Timeout)},
		cache:      newPayloadCache(cfg.CacheCapacity),
	}

	for _, opt := range opts {
		opt(c)
	}

	go c.cache.Start()

	return c, nil
}

func newPayloadCache(capacity int) *payloadCache {
	return ttlcache.New(
		ttlcache.WithCapacity[string, map[string]interface{}](uint64(capacity)),
		ttlcache.WithDisableTouchOnHit[string, map[string]interface{}](),
	)
}

// Call performs req. Failures are reported in Result.Err, never panicked.
func (c *Client) Call(ctx context.Context, req Request) Result {
	if c.closed.Load() {
		return Result{Err: ErrClientClosed}
	}

	method := strings.ToUpper(req.Method)
	if method == "" {
		method = http.MethodGet
	}

	key := cacheKey(method, req.Endpoint, req.Params)

	if req.UseCache {
		if item := c.cache.Get(key); item != nil {
			recordCall(ctx, method, outcomeCacheHit, 0)

			return Result{Data: item.Value()}
		}
	}

	c.mu.RLock()
	cfg := c.config
	httpClient := c.httpClient
	c.mu.RUnlock()

	target := cfg.BaseURL() + req.Endpoint
	start := time.Now()
	attempt := 0

	operation := func() (map[string]interface{}, error) {
		attempt++

		data, err := c.do(ctx, httpClient, method, target, req.Params)
		if err != nil && !errors.Is(err, ErrMalformedResponse) {
			c.logger.Warn().
				Err(err).
				Str("endpoint", req.Endpoint).
				Int("attempt", attempt).
				Int("max_attempts", cfg.RetryCount).
				Msg("Gateway request failed")
		}

		return data, err
	}

	data, err := backoff.Retry(ctx, operation,
		backoff.WithBackOff(&linearBackOff{step: time.Duration(cfg.RetryDelay)}),
		backoff.WithMaxTries(uint(cfg.RetryCount)),
	)

	elapsed := time.Since(start)

	switch {
	case err == nil:
		c.markConnected()

		if req.UseCache {
			ttl := req.CacheTTL
			if ttl <= 0 {
				ttl = defaultCacheTTL
			}

			c.cache.Set(key, data, ttl)
		}

		recordCall(ctx, method, outcomeSuccess, elapsed)

		return Result{Data: data}
	case errors.Is(err, ErrMalformedResponse):
		c.logger.Error().Err(err).Str("endpoint", req.Endpoint).Msg("Gateway returned a malformed response")
		recordCall(ctx, method, outcomeMalformed, elapsed)
	case ctx.Err() != nil:
		// the caller gave up, which says nothing about the gateway
		recordCall(ctx, method, outcomeFailure, elapsed)
	default:
		c.markDisconnected()
		c.logger.Error().
			Err(err).
			Str("endpoint", req.Endpoint).
			Int("attempts", attempt).
			Msg("Gateway unreachable, all retries exhausted")
		recordCall(ctx, method, outcomeFailure, elapsed)
	}

	return Result{Err: fmt.Errorf("%s %s: %w", method, req.Endpoint, err)}
}

func (c *Client) do(
	ctx context.Context, hc *http.Client, method, target string, params map[string]interface{},
) (map[string]interface{}, error) {
	var body io.Reader

	if method == http.MethodGet {
		if len(params) > 0 {
			target += "?" + encodeQuery(params)
		}
	} else if params != nil {
		payload, err := json.Marshal(params)
		if err != nil {
			return nil, backoff.Permanent(fmt.Errorf("encode request body: %w", err))
		}

		body = bytes.NewReader(payload)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, backoff.Permanent(err)
	}

	httpReq.Header.Set("Accept", "application/json")

	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	resp, err := hc.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	var data map[string]interface{}

	err = json.Unmarshal(raw, &data)
	if err == nil && data == nil {
		err = errNotJSONObject
	}

	if err != nil {
		return nil, backoff.Permanent(fmt.Errorf("%w: %w", ErrMalformedResponse, err))
	}

	return data, nil
}

func (c *Client) markConnected() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.connected {
		c.logger.Info().Str("base_url", c.config.BaseURL()).Msg("Gateway connection established")
	}

	c.connected = true
	c.connectionErrors = 0
	c.lastCheck = time.Now()
}

func (c *Client) markDisconnected() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.connected = false
	c.connectionErrors++
	c.lastCheck = time.Now()
}

// IsConnected reports whether the most recent non-cached call reached the gateway.
func (c *Client) IsConnected() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.connected
}

// ConnectionStatus returns a consistent snapshot of connectivity state.
func (c *Client) ConnectionStatus() models.ConnectionStatus {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return models.ConnectionStatus{
		Connected:        c.connected,
		LastCheck:        c.lastCheck,
		ConnectionErrors: c.connectionErrors,
		Host:             c.config.Host,
		Port:             c.config.Port,
		BaseURL:          c.config.BaseURL(),
		Timeout:          time.Duration(c.config.Timeout),
		CachedEntries:    c.cache.Len(),
	}
}

// Config returns the active configuration.
func (c *Client) Config() Config {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.config
}

// ClearCache drops every cached payload.
func (c *Client) ClearCache() {
	c.cache.DeleteAll()
	c.logger.Info().Msg("Gateway response cache cleared")
}

// UpdateConfig swaps in cfg. The cache is cleared because cached payloads
// may belong to a different gateway.
func (c *Client) UpdateConfig(cfg Config) error {
	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid remote config: %w", err)
	}

	c.mu.Lock()
	c.config = cfg
	c.httpClient = &http.Client{
		Transport: c.httpClient.Transport,
		Timeout:   time.Duration(cfg.Timeout),
	}
	c.connected = false
	c.connectionErrors = 0
	c.mu.Unlock()

	c.cache.DeleteAll()

	c.logger.Info().
		Str("base_url", cfg.BaseURL()).
		Dur("timeout", time.Duration(cfg.Timeout)).
		Int("retry_count", cfg.RetryCount).
		Msg("Gateway client reconfigured")

	return nil
}

// Close stops the cache expiry loop. Later calls fail with ErrClientClosed.
func (c *Client) Close() {
	c.closeOnce.Do(func() {
		c.closed.Store(true)
		c.cache.Stop()
	})
}

func cacheKey(method, endpoint string, params map[string]interface{}) string {
	if params == nil {
		return method + ":" + endpoint + ":"
	}

	// both encodings sort map keys, so equal params give equal keys
	encoded, err := json.Marshal(params)
	if err != nil {
		return method + ":" + endpoint + ":" + fmt.Sprint(params)
	}

	return method + ":" + endpoint + ":" + string(encoded)
}

func encodeQuery(params map[string]interface{}) string {
	values := url.Values{}

	for k, v := range params {
		values.Set(k, fmt.Sprint(v))
	}

	return values.Encode()
}
