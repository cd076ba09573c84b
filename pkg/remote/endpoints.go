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

package remote

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// Gateway endpoints and their cache lifetimes.
const (
	endpointHealth            = "/api/health"
	endpointStatus            = "/api/status"
	endpointUARTStatus        = "/api/uart/status"
	endpointMACIDs            = "/api/uart/mac-ids"
	endpointMACChannels       = "/api/uart/mac-channels/"
	endpointMACData           = "/api/uart/mac-data/"
	endpointUARTStart         = "/api/uart/start"
	endpointUARTStop          = "/api/uart/stop"
	endpointUARTTest          = "/api/uart/test"
	endpointDashboardStats    = "/api/dashboard/stats"
	endpointDashboardOverview = "/api/dashboard/overview"
	endpointLatestData        = "/api/database/latest-data"
	endpointDatabaseStats     = "/api/database/statistics"

	ttlHealth            = 10 * time.Second
	ttlStatus            = 15 * time.Second
	ttlUARTStatus        = 5 * time.Second
	ttlMACIDs            = 10 * time.Second
	ttlMACChannels       = 10 * time.Second
	ttlDashboardStats    = 20 * time.Second
	ttlDashboardOverview = 15 * time.Second
	ttlDatabaseStats     = 30 * time.Second
)

func (c *Client) cachedGet(ctx context.Context, endpoint string, ttl time.Duration) Result {
	return c.Call(ctx, Request{Endpoint: endpoint, Method: http.MethodGet, UseCache: true, CacheTTL: ttl})
}

func (c *Client) post(ctx context.Context, endpoint string) Result {
	return c.Call(ctx, Request{Endpoint: endpoint, Method: http.MethodPost})
}

func (c *Client) HealthCheck(ctx context.Context) Result {
	return c.cachedGet(ctx, endpointHealth, ttlHealth)
}

func (c *Client) SystemStatus(ctx context.Context) Result {
	return c.cachedGet(ctx, endpointStatus, ttlStatus)
}

func (c *Client) UARTStatus(ctx context.Context) Result {
	return c.cachedGet(ctx, endpointUARTStatus, ttlUARTStatus)
}

// MACIDs lists the MAC IDs the gateway has seen on its UART.
func (c *Client) MACIDs(ctx context.Context) ([]string, error) {
	res := c.cachedGet(ctx, endpointMACIDs, ttlMACIDs)
	if res.Err != nil {
		return nil, res.Err
	}

	if !res.Succeeded() {
		return nil, fmt.Errorf("%s: %w", endpointMACIDs, ErrUnsuccessful)
	}

	raw := res.Slice("mac_ids")
	ids := make([]string, 0, len(raw))

	for _, v := range raw {
		if id, ok := v.(string); ok && id != "" {
			ids = append(ids, id)
		}
	}

	return ids, nil
}

// MACChannels returns channel metadata for one MAC. An empty mac lists all.
func (c *Client) MACChannels(ctx context.Context, mac string) Result {
	return c.cachedGet(ctx, endpointMACChannels+url.PathEscape(mac), ttlMACChannels)
}

// MACData returns the raw data points reported by mac over the last minutes.
func (c *Client) MACData(ctx context.Context, mac string, minutes int) ([]interface{}, error) {
	res := c.Call(ctx, Request{
		Endpoint: endpointMACData + url.PathEscape(mac),
		Method:   http.MethodGet,
		Params:   map[string]interface{}{"minutes": minutes},
	})
	if res.Err != nil {
		return nil, res.Err
	}

	if !res.Succeeded() {
		return nil, fmt.Errorf("%s%s: %w", endpointMACData, mac, ErrUnsuccessful)
	}

	return res.Slice("data"), nil
}

func (c *Client) DashboardStats(ctx context.Context) Result {
	return c.cachedGet(ctx, endpointDashboardStats, ttlDashboardStats)
}

func (c *Client) DashboardOverview(ctx context.Context) Result {
	return c.cachedGet(ctx, endpointDashboardOverview, ttlDashboardOverview)
}

func (c *Client) DatabaseLatestData(ctx context.Context) Result {
	return c.Call(ctx, Request{Endpoint: endpointLatestData, Method: http.MethodGet})
}

func (c *Client) DatabaseStatistics(ctx context.Context) Result {
	return c.cachedGet(ctx, endpointDatabaseStats, ttlDatabaseStats)
}

// StartUART asks the gateway to begin reading its UART.
func (c *Client) StartUART(ctx context.Context) Result {
	return c.post(ctx, endpointUARTStart)
}

func (c *Client) StopUART(ctx context.Context) Result {
	return c.post(ctx, endpointUARTStop)
}

func (c *Client) TestUART(ctx context.Context) Result {
	return c.post(ctx, endpointUARTTest)
}
