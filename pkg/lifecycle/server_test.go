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

package lifecycle

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carverauto/sensorpoll/pkg/logger"
)

type fakeService struct {
	startErr error
	started  bool
	stopped  bool
}

func (f *fakeService) Start(context.Context) error {
	f.started = true
	return f.startErr
}

func (f *fakeService) Stop(context.Context) error {
	f.stopped = true
	return nil
}

func TestRunServerStopsOnContextCancel(t *testing.T) {
	svc := &fakeService{}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := RunServer(ctx, &ServerOptions{
		ServiceName:     "test",
		Service:         svc,
		ShutdownTimeout: time.Second,
		Logger:          logger.NewTestLogger(),
	})
	require.NoError(t, err)
	assert.True(t, svc.started)
	assert.True(t, svc.stopped)
}

func TestRunServerStartFailure(t *testing.T) {
	boom := errors.New("boom")
	svc := &fakeService{startErr: boom}

	err := RunServer(context.Background(), &ServerOptions{ServiceName: "test", Service: svc})
	require.ErrorIs(t, err, boom)
	assert.False(t, svc.stopped)
}

func TestCreateComponentLogger(t *testing.T) {
	l, err := CreateComponentLogger(context.Background(), "trigger", &logger.Config{Level: "warn"})
	require.NoError(t, err)
	assert.NotNil(t, l)

	_, err = CreateComponentLogger(context.Background(), "trigger", &logger.Config{Level: "nope"})
	assert.Error(t, err)
}

func TestInitializeMetricsDisabledIsNotAnError(t *testing.T) {
	err := InitializeMetrics(context.Background(), "sensorpoll", &logger.OTelConfig{}, 0, logger.NewTestLogger())
	assert.NoError(t, err)
}
