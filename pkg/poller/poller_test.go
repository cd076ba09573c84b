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

package poller

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/carverauto/sensorpoll/pkg/logger"
	"github.com/carverauto/sensorpoll/pkg/models"
	"github.com/carverauto/sensorpoll/pkg/remote"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var errSubscriber = errors.New("subscriber failed")

type fakeTime struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeTime() *fakeTime {
	return &fakeTime{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (f *fakeTime) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.now
}

func (f *fakeTime) Advance(d time.Duration) {
	f.mu.Lock()
	f.now = f.now.Add(d)
	f.mu.Unlock()
}

type fakeGateway struct {
	mu        sync.Mutex
	healthy   bool
	connected bool
}

func (g *fakeGateway) HealthCheck(context.Context) remote.Result {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.healthy {
		return remote.Result{Err: errors.New("connection refused")}
	}

	return remote.Result{Data: map[string]interface{}{"success": true}}
}

func (g *fakeGateway) IsConnected() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.connected
}

func (g *fakeGateway) setConnected(c bool) {
	g.mu.Lock()
	g.connected = c
	g.mu.Unlock()
}

type fakeSummarizer struct {
	mu      sync.Mutex
	summary models.UARTSummary
	calls   int
	block   chan struct{}
}

func (s *fakeSummarizer) UARTSummary(context.Context) models.UARTSummary {
	s.mu.Lock()
	s.calls++
	block := s.block
	summary := s.summary
	s.mu.Unlock()

	if block != nil {
		<-block
	}

	return summary
}

func (s *fakeSummarizer) set(summary models.UARTSummary) {
	s.mu.Lock()
	s.summary = summary
	s.mu.Unlock()
}

func (s *fakeSummarizer) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.calls
}

type recorder struct {
	mu     sync.Mutex
	events []models.TriggerEvent
}

func (r *recorder) HandleTrigger(_ context.Context, event models.TriggerEvent) error {
	r.mu.Lock()
	r.events = append(r.events, event)
	r.mu.Unlock()

	return nil
}

func (r *recorder) reasons() []models.TriggerReason {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.TriggerReason, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.Reason)
	}

	return out
}

func activeSummary(macs []string, recent int, channels map[string]models.ChannelSummary) models.UARTSummary {
	return models.UARTSummary{
		Success:          true,
		UARTActive:       true,
		MACIDs:           macs,
		TotalMACs:        len(macs),
		RecentDataPoints: recent,
		ChannelsSummary:  channels,
	}
}

type testPoller struct {
	*Poller
	gateway    *fakeGateway
	summarizer *fakeSummarizer
	time       *fakeTime
	clock      *MockClock
}

func newTestPoller(t *testing.T, ctrl *gomock.Controller, cfg Config) *testPoller {
	t.Helper()

	ft := newFakeTime()
	clock := NewMockClock(ctrl)
	clock.EXPECT().Now().DoAndReturn(ft.Now).AnyTimes()

	gw := &fakeGateway{healthy: true, connected: true}
	sum := &fakeSummarizer{summary: models.UARTSummary{Success: true}}

	return &testPoller{
		Poller:     New(gw, sum, cfg, clock, logger.NewTestLogger()),
		gateway:    gw,
		summarizer: sum,
		time:       ft,
		clock:      clock,
	}
}

func expectTicker(ctrl *gomock.Controller, clock *MockClock, interval time.Duration) (*MockTicker, chan time.Time) {
	ticker := NewMockTicker(ctrl)
	tickCh := make(chan time.Time)

	var recv <-chan time.Time = tickCh

	clock.EXPECT().Ticker(interval).Return(ticker)
	ticker.EXPECT().Chan().Return(recv).AnyTimes()

	return ticker, tickCh
}

func TestStartFailsWhenGatewayUnhealthy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tp := newTestPoller(t, ctrl, Config{})
	tp.gateway.healthy = false

	started, err := tp.Start(context.Background())

	require.ErrorIs(t, err, ErrRemoteUnhealthy)
	assert.False(t, started)
	assert.False(t, tp.IsRunning())
	assert.Zero(t, tp.summarizer.Calls(), "no poll should run against an unhealthy gateway")
}

func TestStartStopLifecycle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tp := newTestPoller(t, ctrl, Config{})
	ticker, tickCh := expectTicker(ctrl, tp.clock, defaultPollInterval)
	ticker.EXPECT().Stop()

	ctx := context.Background()

	started, err := tp.Start(ctx)
	require.NoError(t, err)
	require.True(t, started)

	again, err := tp.Start(ctx)
	require.NoError(t, err)
	assert.False(t, again)

	require.Eventually(t, func() bool { return tp.summarizer.Calls() == 1 }, time.Second, 5*time.Millisecond)

	tickCh <- time.Now()

	require.Eventually(t, func() bool { return tp.summarizer.Calls() == 2 }, time.Second, 5*time.Millisecond)

	stopped, err := tp.Stop(ctx)
	require.NoError(t, err)
	assert.True(t, stopped)
	assert.False(t, tp.IsRunning())

	stopped, err = tp.Stop(ctx)
	require.NoError(t, err)
	assert.False(t, stopped)

	assert.Equal(t, int64(2), tp.Status().Stats.TotalChecks)
}

func TestStartResetsStatistics(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tp := newTestPoller(t, ctrl, Config{})
	tp.TriggerManual(context.Background(), "")
	require.Equal(t, int64(1), tp.Status().Stats.TriggersSent)

	ticker, _ := expectTicker(ctrl, tp.clock, defaultPollInterval)
	ticker.EXPECT().Stop()

	_, err := tp.Start(context.Background())
	require.NoError(t, err)

	defer func() {
		_, _ = tp.Stop(context.Background())
	}()

	assert.Zero(t, tp.Status().Stats.TriggersSent)
}

func TestStopTimesOutWhileIterationBlocks(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tp := newTestPoller(t, ctrl, Config{StopTimeout: models.Duration(20 * time.Millisecond)})
	tp.summarizer.block = make(chan struct{})

	ticker, _ := expectTicker(ctrl, tp.clock, defaultPollInterval)
	ticker.EXPECT().Stop()

	_, err := tp.Start(context.Background())
	require.NoError(t, err)

	stopped, err := tp.Stop(context.Background())
	require.ErrorIs(t, err, ErrStopTimeout)
	assert.False(t, stopped)
	assert.True(t, tp.IsRunning())

	close(tp.summarizer.block)
	tp.UpdateConfig(Config{StopTimeout: models.Duration(time.Second)})

	stopped, err = tp.Stop(context.Background())
	require.NoError(t, err)
	assert.True(t, stopped)
	assert.Zero(t, tp.Status().Stats.TotalChecks, "a canceled iteration is not counted")
}

func TestPollIntervalHotReload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tp := newTestPoller(t, ctrl, Config{})
	first, _ := expectTicker(ctrl, tp.clock, defaultPollInterval)
	first.EXPECT().Stop()

	second := NewMockTicker(ctrl)
	second.EXPECT().Chan().Return((<-chan time.Time)(make(chan time.Time))).AnyTimes()
	second.EXPECT().Stop()

	reloaded := make(chan struct{})

	tp.clock.EXPECT().Ticker(2 * time.Second).DoAndReturn(func(time.Duration) Ticker {
		close(reloaded)
		return second
	})

	_, err := tp.Start(context.Background())
	require.NoError(t, err)

	tp.UpdateConfig(Config{PollInterval: models.Duration(2 * time.Second)})

	select {
	case <-reloaded:
	case <-time.After(time.Second):
		t.Fatal("ticker was not replaced")
	}

	_, err = tp.Stop(context.Background())
	require.NoError(t, err)
}

func TestCheckEmitsInDetectionOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tp := newTestPoller(t, ctrl, Config{})
	rec := &recorder{}
	tp.Subscribe("recorder", rec)

	summary := activeSummary([]string{"aa:01", "aa:02"}, 5, map[string]models.ChannelSummary{
		"aa:01": {ChannelCount: 2, RecentDataPoints: 5},
	})
	tp.summarizer.set(summary)

	require.True(t, tp.check(context.Background()))
	assert.Equal(t, []models.TriggerReason{
		models.ReasonNewMACDetected,
		models.ReasonDataChangeDetected,
	}, rec.reasons())

	rec.mu.Lock()
	assert.Equal(t, []string{"aa:01", "aa:02"}, rec.events[0].MACIDs)
	assert.Equal(t, summary.ChannelsSummary, rec.events[1].DataSummary)
	rec.mu.Unlock()

	tp.time.Advance(defaultMaxScanInterval)

	require.True(t, tp.check(context.Background()))
	assert.Equal(t, []models.TriggerReason{
		models.ReasonNewMACDetected,
		models.ReasonDataChangeDetected,
		models.ReasonScheduledScan,
	}, rec.reasons())

	status := tp.Status()
	assert.Equal(t, []string{"aa:01", "aa:02"}, status.KnownMACs)
	assert.Equal(t, []string{"aa:01", "aa:02"}, status.Stats.MACsDiscovered)
	assert.Equal(t, int64(3), status.Stats.TriggersSent)
}

func TestScheduledScanSeedsThenFires(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tp := newTestPoller(t, ctrl, Config{MaxScanInterval: models.Duration(time.Minute)})
	rec := &recorder{}
	tp.Subscribe("recorder", rec)
	tp.summarizer.set(activeSummary(nil, 0, nil))

	tp.check(context.Background())
	assert.Empty(t, rec.reasons(), "first pass only seeds the schedule")

	tp.time.Advance(59 * time.Second)
	tp.check(context.Background())
	assert.Empty(t, rec.reasons())

	tp.time.Advance(time.Second)
	tp.check(context.Background())
	assert.Equal(t, []models.TriggerReason{models.ReasonScheduledScan}, rec.reasons())

	tp.time.Advance(30 * time.Second)
	tp.check(context.Background())
	assert.Len(t, rec.reasons(), 1, "timestamp resets after firing")
}

func TestSignificantChange(t *testing.T) {
	prior := map[string]models.ChannelSummary{"aa:01": {ChannelCount: 2}}

	tests := []struct {
		name     string
		last     map[string]models.ChannelSummary
		summary  models.UARTSummary
		expected bool
	}{
		{"first summary without data", nil, activeSummary(nil, 0, nil), false},
		{"first summary with data", nil, activeSummary(nil, 1, nil), true},
		{"above threshold", prior, activeSummary(nil, 11, prior), true},
		{"at threshold", prior, activeSummary(nil, 10, prior), false},
		{
			"channel count changed", prior,
			activeSummary(nil, 0, map[string]models.ChannelSummary{"aa:01": {ChannelCount: 3}}),
			true,
		},
		{
			"unseen MAC without channels", prior,
			activeSummary(nil, 0, map[string]models.ChannelSummary{"aa:01": {ChannelCount: 2}, "aa:02": {}}),
			false,
		},
		{
			"unseen MAC with channels", prior,
			activeSummary(nil, 0, map[string]models.ChannelSummary{"aa:01": {ChannelCount: 2}, "aa:02": {ChannelCount: 1}}),
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(&fakeGateway{}, &fakeSummarizer{}, Config{}, nil, logger.NewTestLogger())
			p.lastSummary = tt.last

			assert.Equal(t, tt.expected, p.significantChangeLocked(tt.summary))
		})
	}
}

func TestCheckConnectionLossAndReconnect(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tp := newTestPoller(t, ctrl, Config{})
	rec := &recorder{}
	tp.Subscribe("recorder", rec)

	tp.gateway.setConnected(false)
	tp.summarizer.set(models.UARTSummary{Success: false, Error: "connection refused"})

	assert.False(t, tp.check(context.Background()))
	assert.False(t, tp.check(context.Background()))

	status := tp.Status()
	assert.Equal(t, int64(2), status.Stats.ConnectionErrors)
	assert.Nil(t, status.LastSuccessfulCheck)

	tp.gateway.setConnected(true)
	tp.summarizer.set(models.UARTSummary{Success: true})

	assert.True(t, tp.check(context.Background()))
	assert.Equal(t, []models.TriggerReason{models.ReasonRemoteReconnected}, rec.reasons())

	assert.True(t, tp.check(context.Background()))
	assert.Len(t, rec.reasons(), 1, "reconnect fires once per outage")
	assert.NotNil(t, tp.Status().LastSuccessfulCheck)
}

func TestSoftFailureWhileConnectedIsNotAnOutage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tp := newTestPoller(t, ctrl, Config{})
	rec := &recorder{}
	tp.Subscribe("recorder", rec)

	tp.summarizer.set(models.UARTSummary{Success: false})
	tp.check(context.Background())

	tp.summarizer.set(models.UARTSummary{Success: true})
	tp.check(context.Background())

	assert.Empty(t, rec.reasons())
	assert.Equal(t, int64(1), tp.Status().Stats.ConnectionErrors)
}

func TestInactiveUARTSkipsDiff(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tp := newTestPoller(t, ctrl, Config{})
	rec := &recorder{}
	tp.Subscribe("recorder", rec)

	tp.summarizer.set(models.UARTSummary{Success: true, UARTActive: false, MACIDs: []string{"aa:01"}})

	assert.True(t, tp.check(context.Background()))
	assert.Empty(t, rec.reasons())

	status := tp.Status()
	assert.Empty(t, status.KnownMACs)
	assert.Equal(t, int64(1), status.Stats.SuccessfulChecks)
}

func TestDisappearedMACsAreForgotten(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tp := newTestPoller(t, ctrl, Config{})
	rec := &recorder{}
	tp.Subscribe("recorder", rec)

	tp.summarizer.set(activeSummary([]string{"aa:01", "aa:02"}, 0, nil))
	tp.check(context.Background())

	tp.summarizer.set(activeSummary([]string{"aa:01"}, 0, nil))
	tp.check(context.Background())

	assert.Equal(t, []string{"aa:01"}, tp.Status().KnownMACs)

	tp.summarizer.set(activeSummary([]string{"aa:01", "aa:02"}, 0, nil))
	tp.check(context.Background())

	reasons := rec.reasons()
	require.Len(t, reasons, 2)
	assert.Equal(t, models.ReasonNewMACDetected, reasons[1], "a returning MAC counts as new")
}

func TestCanceledCheckIsNotCounted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tp := newTestPoller(t, ctrl, Config{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.False(t, tp.check(ctx))
	assert.Zero(t, tp.Status().Stats.TotalChecks)
}

func TestEventQueueDropsOnOverflow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tp := newTestPoller(t, ctrl, Config{EventQueueSize: 2})

	for i := 0; i < 3; i++ {
		tp.TriggerManual(context.Background(), "")
	}

	status := tp.Status()
	assert.Equal(t, int64(3), status.Stats.TriggersSent)
	assert.Equal(t, int64(1), status.Stats.TriggersDropped)
	assert.Equal(t, 2, status.PendingEvents)

	pending := tp.PendingEvents()
	require.Len(t, pending, 2)
	assert.Equal(t, models.ReasonManualTrigger, pending[0].Reason)
	assert.Equal(t, defaultManualMessage, pending[0].Message)
	assert.NotEqual(t, pending[0].ID, pending[1].ID)

	assert.Empty(t, tp.PendingEvents())
}

func TestSubscribersAreIsolated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tp := newTestPoller(t, ctrl, Config{})

	var order []string

	tp.Subscribe("panics", SubscriberFunc(func(context.Context, models.TriggerEvent) error {
		order = append(order, "panics")
		panic("boom")
	}))
	tp.Subscribe("fails", SubscriberFunc(func(context.Context, models.TriggerEvent) error {
		order = append(order, "fails")
		return errSubscriber
	}))

	rec := &recorder{}
	unsubscribe := tp.Subscribe("recorder", rec)

	event := tp.TriggerManual(context.Background(), "operator request")
	assert.Equal(t, "operator request", event.Message)
	assert.Equal(t, []string{"panics", "fails"}, order)
	assert.Len(t, rec.reasons(), 1)

	unsubscribe()
	tp.TriggerManual(context.Background(), "")

	assert.Len(t, rec.reasons(), 1)
	assert.Len(t, order, 4)
}

func TestUpdateConfigClamps(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tp := newTestPoller(t, ctrl, Config{})

	tp.UpdateConfig(Config{
		PollInterval:    models.Duration(100 * time.Millisecond),
		MaxScanInterval: models.Duration(10 * time.Second),
		EventQueueSize:  999,
	})

	cfg := tp.Config()
	assert.Equal(t, models.Duration(time.Second), cfg.PollInterval)
	assert.Equal(t, models.Duration(time.Minute), cfg.MaxScanInterval)
	assert.Equal(t, defaultEventQueueSize, cfg.EventQueueSize)
	assert.Equal(t, defaultDataChangeThreshold, cfg.DataChangeThreshold)

	tp.SetMaxScanInterval(30 * time.Second)
	assert.Equal(t, models.Duration(time.Minute), tp.Config().MaxScanInterval)

	tp.SetMaxScanInterval(2 * time.Minute)
	assert.Equal(t, models.Duration(2*time.Minute), tp.Config().MaxScanInterval)
}

func TestConfigValidate(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	cfg.PollInterval = models.Duration(-time.Second)
	require.ErrorIs(t, cfg.Validate(), errInvalidInterval)

	cfg = DefaultConfig()
	cfg.EventQueueSize = -1
	require.ErrorIs(t, cfg.Validate(), errInvalidQueue)
}
