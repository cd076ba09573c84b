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

package uart

import (
	"context"
	"errors"
	"testing"

	"github.com/carverauto/sensorpoll/pkg/logger"
	"github.com/carverauto/sensorpoll/pkg/remote"
	"github.com/stretchr/testify/assert"
)

type fakeController struct {
	start, stop, status remote.Result
	calls               []string
}

func (f *fakeController) StartUART(context.Context) remote.Result {
	f.calls = append(f.calls, "start")
	return f.start
}

func (f *fakeController) StopUART(context.Context) remote.Result {
	f.calls = append(f.calls, "stop")
	return f.stop
}

func (f *fakeController) UARTStatus(context.Context) remote.Result {
	f.calls = append(f.calls, "status")
	return f.status
}

func TestParseStatus(t *testing.T) {
	tests := []struct {
		name     string
		res      remote.Result
		expected Status
	}{
		{
			name:     "transport failure",
			res:      remote.Result{Err: errors.New("refused")},
			expected: Status{},
		},
		{
			name: "explicit flag and count",
			res: remote.Result{Data: map[string]interface{}{
				"success": true, "is_running": true, "data_count": float64(12),
			}},
			expected: Status{IsRunning: true, DataCount: 12},
		},
		{
			name: "status string",
			res: remote.Result{Data: map[string]interface{}{
				"success": true, "status": "running", "latest_data_count": float64(3),
			}},
			expected: Status{IsRunning: true, DataCount: 3},
		},
		{
			name: "stopped",
			res: remote.Result{Data: map[string]interface{}{
				"success": true, "status": "stopped",
			}},
			expected: Status{},
		},
		{
			name: "soft failure",
			res: remote.Result{Data: map[string]interface{}{
				"success": false, "status": "running",
			}},
			expected: Status{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseStatus(tt.res)

			assert.Equal(t, tt.expected.IsRunning, got.IsRunning)
			assert.Equal(t, tt.expected.DataCount, got.DataCount)
		})
	}
}

func TestRemoteCallbacks(t *testing.T) {
	ok := remote.Result{Data: map[string]interface{}{"success": true}}
	fc := &fakeController{
		start:  ok,
		stop:   remote.Result{Data: map[string]interface{}{"success": false, "message": "not running"}},
		status: remote.Result{Data: map[string]interface{}{"success": true, "is_running": false}},
	}

	cb := NewRemoteCallbacks(fc, logger.NewTestLogger())
	ctx := context.Background()

	assert.True(t, cb.Start(ctx))
	assert.False(t, cb.Stop(ctx))
	assert.False(t, cb.Status(ctx).IsRunning)
	assert.Equal(t, []string{"start", "stop", "status"}, fc.calls)
	assert.Equal(t, map[string]bool{"start": true, "stop": true, "status": true}, cb.Configured())
}

func TestEmptyCallbacks(t *testing.T) {
	assert.Equal(t, map[string]bool{"start": false, "stop": false, "status": false}, Callbacks{}.Configured())
}
