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

//go:generate mockgen -destination=mock_aggregator.go -package=aggregator github.com/carverauto/sensorpoll/pkg/aggregator RemoteAPI

package aggregator

import (
	"context"

	"github.com/carverauto/sensorpoll/pkg/models"
	"github.com/carverauto/sensorpoll/pkg/remote"
)

// RemoteAPI is the subset of *remote.Client the aggregator reads from.
type RemoteAPI interface {
	ConnectionStatus() models.ConnectionStatus
	SystemStatus(ctx context.Context) remote.Result
	UARTStatus(ctx context.Context) remote.Result
	MACIDs(ctx context.Context) ([]string, error)
	MACChannels(ctx context.Context, mac string) remote.Result
	MACData(ctx context.Context, mac string, minutes int) ([]interface{}, error)
	DashboardStats(ctx context.Context) remote.Result
	DatabaseStatistics(ctx context.Context) remote.Result
}
