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
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/carverauto/sensorpoll/pkg/models"
)

// check runs one poll iteration and reports whether the gateway answered.
// Events are collected under the lock and emitted after it is released, in
// detection order.
func (p *Poller) check(ctx context.Context) bool {
	summary := p.summarizer.UARTSummary(ctx)
	if ctx.Err() != nil {
		return false
	}

	now := p.clock.Now()
	connected := p.gateway.IsConnected()

	p.mu.Lock()
	p.stats.totalChecks++

	if !summary.Success {
		if !connected && p.connectionLostAt.IsZero() {
			p.connectionLostAt = now
			p.logger.Warn().Str("error", summary.Error).Msg("Gateway connection lost")
		}

		p.stats.connectionErrors++
		p.mu.Unlock()

		recordCheck(ctx, outcomeFailure)

		return false
	}

	var events []models.TriggerEvent

	if !p.connectionLostAt.IsZero() && connected {
		p.logger.Info().Dur("outage", now.Sub(p.connectionLostAt)).Msg("Gateway connection restored")

		events = append(events, p.newEvent(models.ReasonRemoteReconnected, now,
			"gateway connection restored, running sync scan"))
		p.connectionLostAt = time.Time{}
	}

	p.stats.successfulChecks++
	p.lastSuccessfulCheck = now

	if summary.UARTActive {
		events = append(events, p.diffLocked(summary, now)...)
	} else {
		p.logger.Debug().Msg("Gateway UART not running, skipping data check")
	}

	p.mu.Unlock()

	recordCheck(ctx, outcomeSuccess)

	for _, event := range events {
		p.emit(ctx, event)
	}

	return true
}

// diffLocked compares summary with the last known state, commits the new
// state and returns the resulting events. Callers hold p.mu.
func (p *Poller) diffLocked(summary models.UARTSummary, now time.Time) []models.TriggerEvent {
	var events []models.TriggerEvent

	current := make(map[string]struct{}, len(summary.MACIDs))

	var added []string

	for _, mac := range summary.MACIDs {
		if _, dup := current[mac]; dup {
			continue
		}

		current[mac] = struct{}{}

		if _, known := p.knownMACs[mac]; !known {
			added = append(added, mac)
		}
	}

	var removed []string

	for mac := range p.knownMACs {
		if _, ok := current[mac]; !ok {
			removed = append(removed, mac)
		}
	}

	if len(removed) > 0 {
		sort.Strings(removed)
		p.logger.Info().Strs("mac_ids", removed).Msg("MAC IDs no longer reported by gateway")
	}

	if len(added) > 0 {
		for _, mac := range added {
			p.stats.macsDiscovered[mac] = struct{}{}
		}

		event := p.newEvent(models.ReasonNewMACDetected, now,
			fmt.Sprintf("new MAC IDs detected: %s", strings.Join(added, ", ")))
		event.MACIDs = added
		events = append(events, event)
	}

	if p.significantChangeLocked(summary) {
		event := p.newEvent(models.ReasonDataChangeDetected, now,
			fmt.Sprintf("data change detected, %d new data points", summary.RecentDataPoints))
		event.MACIDs = append([]string(nil), summary.MACIDs...)
		event.DataSummary = copySummary(summary.ChannelsSummary)
		events = append(events, event)
	}

	if event, ok := p.scheduledLocked(now); ok {
		events = append(events, event)
	}

	p.knownMACs = current
	p.lastSummary = copySummary(summary.ChannelsSummary)

	return events
}

// significantChangeLocked: with no prior summary any recent data counts.
// Otherwise the recent point total must exceed the threshold, or some MAC's
// channel count must differ from last time (unseen MACs count as zero).
func (p *Poller) significantChangeLocked(summary models.UARTSummary) bool {
	if len(p.lastSummary) == 0 {
		return summary.RecentDataPoints > 0
	}

	if summary.RecentDataPoints > p.config.DataChangeThreshold {
		return true
	}

	for mac, current := range summary.ChannelsSummary {
		if p.lastSummary[mac].ChannelCount != current.ChannelCount {
			return true
		}
	}

	return false
}

func (p *Poller) scheduledLocked(now time.Time) (models.TriggerEvent, bool) {
	if p.lastScheduledScan.IsZero() {
		p.lastScheduledScan = now
		return models.TriggerEvent{}, false
	}

	maxInterval := time.Duration(p.config.MaxScanInterval)
	if now.Sub(p.lastScheduledScan) < maxInterval {
		return models.TriggerEvent{}, false
	}

	p.lastScheduledScan = now

	return p.newEvent(models.ReasonScheduledScan, now,
		fmt.Sprintf("scheduled scan (every %s)", maxInterval)), true
}

func copySummary(in map[string]models.ChannelSummary) map[string]models.ChannelSummary {
	if in == nil {
		return nil
	}

	out := make(map[string]models.ChannelSummary, len(in))
	for k, v := range in {
		out[k] = v
	}

	return out
}
