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

package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/carverauto/sensorpoll/pkg/aggregator"
	"github.com/carverauto/sensorpoll/pkg/logger"
	"github.com/carverauto/sensorpoll/pkg/models"
	"github.com/carverauto/sensorpoll/pkg/poller"
	"github.com/carverauto/sensorpoll/pkg/remote"
	"github.com/carverauto/sensorpoll/pkg/trigger"
)

type testServices struct {
	remote  *MockRemoteService
	summary *MockSummaryService
	poller  *MockPollerService
	trigger *MockTriggerService
	server  *Server
}

func newTestServer(t *testing.T) *testServices {
	t.Helper()

	ctrl := gomock.NewController(t)

	ts := &testServices{
		remote:  NewMockRemoteService(ctrl),
		summary: NewMockSummaryService(ctrl),
		poller:  NewMockPollerService(ctrl),
		trigger: NewMockTriggerService(ctrl),
	}

	ts.server = NewServer(Config{Enabled: true}, logger.NewTestLogger(),
		WithRemote(ts.remote),
		WithSummaries(ts.summary),
		WithPoller(ts.poller),
		WithTrigger(ts.trigger),
	)

	return ts
}

func do(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, http.NoBody)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}

	rr := httptest.NewRecorder()
	s.Handler().ServeHTTP(rr, req)

	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v))

	return v
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)

	ts.remote.EXPECT().ConnectionStatus().Return(models.ConnectionStatus{Connected: true})
	ts.poller.EXPECT().IsRunning().Return(true)
	ts.trigger.EXPECT().IsActive().Return(true)

	rr := do(t, ts.server, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rr.Code)

	resp := decode[HealthResponse](t, rr)
	assert.Equal(t, "ok", resp.Status)
	assert.True(t, resp.RemoteConnected)
	assert.True(t, resp.PollerRunning)
	assert.True(t, resp.TriggerActive)
}

func TestHealthDegradedWhenPollerStopped(t *testing.T) {
	ts := newTestServer(t)

	ts.remote.EXPECT().ConnectionStatus().Return(models.ConnectionStatus{})
	ts.poller.EXPECT().IsRunning().Return(false)
	ts.trigger.EXPECT().IsActive().Return(false)

	rr := do(t, ts.server, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "degraded", decode[HealthResponse](t, rr).Status)
}

func TestRemoteEndpoints(t *testing.T) {
	ts := newTestServer(t)

	ts.remote.EXPECT().ConnectionStatus().Return(models.ConnectionStatus{Connected: true, Host: "10.0.0.2", Port: 5000})

	rr := do(t, ts.server, http.MethodGet, "/api/v1/remote/status", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "10.0.0.2", decode[models.ConnectionStatus](t, rr).Host)

	ts.summary.EXPECT().UARTSummary(gomock.Any()).Return(models.UARTSummary{
		Success:    true,
		UARTActive: true,
		MACIDs:     []string{"aa:01"},
		TotalMACs:  1,
	})

	rr = do(t, ts.server, http.MethodGet, "/api/v1/remote/summary", "")
	require.Equal(t, http.StatusOK, rr.Code)

	summary := decode[models.UARTSummary](t, rr)
	assert.True(t, summary.UARTActive)
	assert.Equal(t, []string{"aa:01"}, summary.MACIDs)

	ts.summary.EXPECT().CompleteStatus(gomock.Any()).Return(models.CompleteStatus{Success: true})

	rr = do(t, ts.server, http.MethodGet, "/api/v1/remote/complete-status", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, decode[models.CompleteStatus](t, rr).Success)

	ts.remote.EXPECT().ClearCache()

	rr = do(t, ts.server, http.MethodPost, "/api/v1/remote/cache/clear", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, decode[models.SuccessResponse](t, rr).Success)
}

func TestUpdateRemoteConfigMergesOverCurrent(t *testing.T) {
	ts := newTestServer(t)

	current := remote.DefaultConfig()
	updated := current
	updated.Port = 6000

	gomock.InOrder(
		ts.remote.EXPECT().Config().Return(current),
		ts.remote.EXPECT().UpdateConfig(updated).Return(nil),
		ts.remote.EXPECT().Config().Return(updated),
	)

	rr := do(t, ts.server, http.MethodPut, "/api/v1/remote/config", `{"port": 6000}`)
	require.Equal(t, http.StatusOK, rr.Code)

	got := decode[remote.Config](t, rr)
	assert.Equal(t, 6000, got.Port)
	assert.Equal(t, current.Host, got.Host)
}

func TestUpdateRemoteConfigRejectsInvalid(t *testing.T) {
	ts := newTestServer(t)

	ts.remote.EXPECT().Config().Return(remote.DefaultConfig())

	rr := do(t, ts.server, http.MethodPut, "/api/v1/remote/config", `{"port": "nope"}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, http.StatusBadRequest, decode[models.ErrorResponse](t, rr).Status)

	current := remote.DefaultConfig()

	ts.remote.EXPECT().Config().Return(current)
	ts.remote.EXPECT().UpdateConfig(gomock.Any()).Return(assert.AnError)

	rr = do(t, ts.server, http.MethodPut, "/api/v1/remote/config", `{"port": 70000}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestUpdateSummaryConfig(t *testing.T) {
	ts := newTestServer(t)

	gomock.InOrder(
		ts.summary.EXPECT().Config().Return(aggregator.Config{MaxMACFanout: 5, RecentDataMinutes: 1}),
		ts.summary.EXPECT().UpdateConfig(aggregator.Config{MaxMACFanout: 8, RecentDataMinutes: 1}),
		ts.summary.EXPECT().Config().Return(aggregator.Config{MaxMACFanout: 8, RecentDataMinutes: 1}),
	)

	rr := do(t, ts.server, http.MethodPut, "/api/v1/remote/summary/config", `{"max_mac_fanout": 8}`)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, 8, decode[aggregator.Config](t, rr).MaxMACFanout)
}

func TestPollerEndpoints(t *testing.T) {
	ts := newTestServer(t)

	ts.poller.EXPECT().Status().Return(poller.Status{Running: true, KnownMACs: []string{"aa:01"}})

	rr := do(t, ts.server, http.MethodGet, "/api/v1/poller/status", "")
	require.Equal(t, http.StatusOK, rr.Code)

	status := decode[poller.Status](t, rr)
	assert.True(t, status.Running)
	assert.Equal(t, []string{"aa:01"}, status.KnownMACs)

	ts.poller.EXPECT().PendingEvents().Return(nil)

	rr = do(t, ts.server, http.MethodGet, "/api/v1/poller/events", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, "[]", rr.Body.String())
}

func TestUpdatePollerConfig(t *testing.T) {
	ts := newTestServer(t)

	current := poller.DefaultConfig()
	updated := current
	updated.PollInterval = models.Duration(2 * time.Second)

	gomock.InOrder(
		ts.poller.EXPECT().Config().Return(current),
		ts.poller.EXPECT().UpdateConfig(updated),
		ts.poller.EXPECT().Config().Return(updated),
	)

	rr := do(t, ts.server, http.MethodPut, "/api/v1/poller/config", `{"poll_interval": "2s"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, models.Duration(2*time.Second), decode[poller.Config](t, rr).PollInterval)

	ts.poller.EXPECT().Config().Return(current)

	rr = do(t, ts.server, http.MethodPut, "/api/v1/poller/config", `{"poll_interval": "-1s"}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestManualScan(t *testing.T) {
	ts := newTestServer(t)

	event := models.TriggerEvent{ID: "evt-1", Reason: models.ReasonManualTrigger, Message: "operator"}
	ts.trigger.EXPECT().ManualScan(gomock.Any(), "operator").Return(event, nil)

	rr := do(t, ts.server, http.MethodPost, "/api/v1/trigger/scan", `{"message": "operator"}`)
	require.Equal(t, http.StatusAccepted, rr.Code)
	assert.Equal(t, "evt-1", decode[models.TriggerEvent](t, rr).ID)
}

func TestManualScanWithoutBody(t *testing.T) {
	ts := newTestServer(t)

	ts.trigger.EXPECT().ManualScan(gomock.Any(), "").Return(models.TriggerEvent{ID: "evt-2"}, nil)

	rr := do(t, ts.server, http.MethodPost, "/api/v1/trigger/scan", "")
	assert.Equal(t, http.StatusAccepted, rr.Code)
}

func TestManualScanInactive(t *testing.T) {
	ts := newTestServer(t)

	ts.trigger.EXPECT().ManualScan(gomock.Any(), gomock.Any()).Return(models.TriggerEvent{}, trigger.ErrNotActive)

	rr := do(t, ts.server, http.MethodPost, "/api/v1/trigger/scan", "")
	assert.Equal(t, http.StatusConflict, rr.Code)
}

func TestTriggerEndpoints(t *testing.T) {
	ts := newTestServer(t)

	ts.trigger.EXPECT().Status().Return(trigger.Status{Active: true, Callbacks: map[string]bool{"start": true}})

	rr := do(t, ts.server, http.MethodGet, "/api/v1/trigger/status", "")
	require.Equal(t, http.StatusOK, rr.Code)

	status := decode[trigger.Status](t, rr)
	assert.True(t, status.Active)
	assert.True(t, status.Callbacks["start"])

	current := trigger.DefaultConfig()
	updated := current
	updated.PriorityMACIDs = []string{"aa:01"}

	gomock.InOrder(
		ts.trigger.EXPECT().Config().Return(current),
		ts.trigger.EXPECT().UpdateConfig(updated).Return(nil),
		ts.trigger.EXPECT().Config().Return(updated),
	)

	rr = do(t, ts.server, http.MethodPut, "/api/v1/trigger/config", `{"priority_mac_ids": ["aa:01"]}`)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, []string{"aa:01"}, decode[trigger.Config](t, rr).PriorityMACIDs)

	ts.trigger.EXPECT().Config().Return(current)
	ts.trigger.EXPECT().UpdateConfig(gomock.Any()).Return(assert.AnError)

	rr = do(t, ts.server, http.MethodPut, "/api/v1/trigger/config", `{"min_scan_interval": "10m"}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestUnconfiguredServicesReturnUnavailable(t *testing.T) {
	s := NewServer(Config{}, logger.NewTestLogger())

	for _, path := range []string{
		"/api/v1/remote/status",
		"/api/v1/remote/summary",
		"/api/v1/poller/status",
		"/api/v1/trigger/status",
	} {
		rr := do(t, s, http.MethodGet, path, "")
		assert.Equal(t, http.StatusServiceUnavailable, rr.Code, path)
	}

	rr := do(t, s, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestMethodNotAllowed(t *testing.T) {
	ts := newTestServer(t)

	rr := do(t, ts.server, http.MethodGet, "/api/v1/trigger/scan", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}

func TestStartStop(t *testing.T) {
	s := NewServer(Config{Enabled: true, ListenAddr: "127.0.0.1:0"}, logger.NewTestLogger())

	require.NoError(t, s.Start(context.Background()))

	addr := s.Addr()
	require.NotEmpty(t, addr)

	resp, err := http.Get("http://" + addr + "/health") //nolint:noctx // test request
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	require.NoError(t, s.Stop(ctx))
	require.NoError(t, s.Stop(ctx))
}
