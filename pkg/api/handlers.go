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
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/carverauto/sensorpoll/pkg/models"
	"github.com/carverauto/sensorpoll/pkg/trigger"
	"github.com/carverauto/sensorpoll/pkg/version"
)

const maxBodyBytes = 1 << 20

// HealthResponse summarizes pipeline liveness.
type HealthResponse struct {
	Status          string       `json:"status"`
	Version         version.Info `json:"version"`
	RemoteConnected bool         `json:"raspi_connected"`
	PollerRunning   bool         `json:"poller_running"`
	TriggerActive   bool         `json:"trigger_active"`
	Timestamp       time.Time    `json:"timestamp"`
}

// ManualScanRequest is the optional body of POST /api/v1/trigger/scan.
type ManualScanRequest struct {
	Message string `json:"message"`
}

func (s *Server) getHealth(w http.ResponseWriter, _ *http.Request) {
	resp := HealthResponse{Status: "ok", Version: version.Get(), Timestamp: time.Now()}

	if s.remote != nil {
		resp.RemoteConnected = s.remote.ConnectionStatus().Connected
	}

	if s.poller != nil {
		resp.PollerRunning = s.poller.IsRunning()
	}

	if s.trigger != nil {
		resp.TriggerActive = s.trigger.IsActive()
	}

	if s.poller != nil && !resp.PollerRunning {
		resp.Status = "degraded"
	}

	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) getRemoteStatus(w http.ResponseWriter, _ *http.Request) {
	if s.remote == nil {
		writeUnavailable(w)
		return
	}

	s.writeJSON(w, http.StatusOK, s.remote.ConnectionStatus())
}

func (s *Server) getSummary(w http.ResponseWriter, r *http.Request) {
	if s.summary == nil {
		writeUnavailable(w)
		return
	}

	s.writeJSON(w, http.StatusOK, s.summary.UARTSummary(r.Context()))
}

func (s *Server) getCompleteStatus(w http.ResponseWriter, r *http.Request) {
	if s.summary == nil {
		writeUnavailable(w)
		return
	}

	s.writeJSON(w, http.StatusOK, s.summary.CompleteStatus(r.Context()))
}

func (s *Server) clearCache(w http.ResponseWriter, _ *http.Request) {
	if s.remote == nil {
		writeUnavailable(w)
		return
	}

	s.remote.ClearCache()

	s.logger.Info().Msg("Remote response cache cleared via API")

	s.writeJSON(w, http.StatusOK, models.SuccessResponse{Success: true, Message: "cache cleared"})
}

func (s *Server) getRemoteConfig(w http.ResponseWriter, _ *http.Request) {
	if s.remote == nil {
		writeUnavailable(w)
		return
	}

	s.writeJSON(w, http.StatusOK, s.remote.Config())
}

func (s *Server) updateRemoteConfig(w http.ResponseWriter, r *http.Request) {
	if s.remote == nil {
		writeUnavailable(w)
		return
	}

	cfg := s.remote.Config()
	if err := decodeBody(r, &cfg); err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := s.remote.UpdateConfig(cfg); err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.writeJSON(w, http.StatusOK, s.remote.Config())
}

func (s *Server) getSummaryConfig(w http.ResponseWriter, _ *http.Request) {
	if s.summary == nil {
		writeUnavailable(w)
		return
	}

	s.writeJSON(w, http.StatusOK, s.summary.Config())
}

func (s *Server) updateSummaryConfig(w http.ResponseWriter, r *http.Request) {
	if s.summary == nil {
		writeUnavailable(w)
		return
	}

	cfg := s.summary.Config()
	if err := decodeBody(r, &cfg); err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.summary.UpdateConfig(cfg)

	s.writeJSON(w, http.StatusOK, s.summary.Config())
}

func (s *Server) getPollerStatus(w http.ResponseWriter, _ *http.Request) {
	if s.poller == nil {
		writeUnavailable(w)
		return
	}

	s.writeJSON(w, http.StatusOK, s.poller.Status())
}

func (s *Server) getPendingEvents(w http.ResponseWriter, _ *http.Request) {
	if s.poller == nil {
		writeUnavailable(w)
		return
	}

	events := s.poller.PendingEvents()
	if events == nil {
		events = []models.TriggerEvent{}
	}

	s.writeJSON(w, http.StatusOK, events)
}

func (s *Server) getPollerConfig(w http.ResponseWriter, _ *http.Request) {
	if s.poller == nil {
		writeUnavailable(w)
		return
	}

	s.writeJSON(w, http.StatusOK, s.poller.Config())
}

func (s *Server) updatePollerConfig(w http.ResponseWriter, r *http.Request) {
	if s.poller == nil {
		writeUnavailable(w)
		return
	}

	cfg := s.poller.Config()
	if err := decodeBody(r, &cfg); err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := cfg.Validate(); err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.poller.UpdateConfig(cfg)

	s.writeJSON(w, http.StatusOK, s.poller.Config())
}

func (s *Server) getTriggerStatus(w http.ResponseWriter, _ *http.Request) {
	if s.trigger == nil {
		writeUnavailable(w)
		return
	}

	s.writeJSON(w, http.StatusOK, s.trigger.Status())
}

func (s *Server) manualScan(w http.ResponseWriter, r *http.Request) {
	if s.trigger == nil {
		writeUnavailable(w)
		return
	}

	var req ManualScanRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	event, err := s.trigger.ManualScan(r.Context(), req.Message)
	if errors.Is(err, trigger.ErrNotActive) {
		writeError(w, err.Error(), http.StatusConflict)
		return
	}

	if err != nil {
		writeError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	s.writeJSON(w, http.StatusAccepted, event)
}

func (s *Server) getTriggerConfig(w http.ResponseWriter, _ *http.Request) {
	if s.trigger == nil {
		writeUnavailable(w)
		return
	}

	s.writeJSON(w, http.StatusOK, s.trigger.Config())
}

func (s *Server) updateTriggerConfig(w http.ResponseWriter, r *http.Request) {
	if s.trigger == nil {
		writeUnavailable(w)
		return
	}

	cfg := s.trigger.Config()
	if err := decodeBody(r, &cfg); err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := s.trigger.UpdateConfig(cfg); err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.writeJSON(w, http.StatusOK, s.trigger.Config())
}

// decodeBody decodes JSON over dst so omitted fields keep their current
// values. An empty body leaves dst untouched.
func decodeBody(r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))

	if err := dec.Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	return nil
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Warn().Err(err).Msg("Failed to encode response")
	}
}

func writeUnavailable(w http.ResponseWriter) {
	writeError(w, "service not configured", http.StatusServiceUnavailable)
}

func writeError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")

	w.WriteHeader(statusCode)

	errResponse := models.ErrorResponse{
		Message: message,
		Status:  statusCode,
	}

	if err := json.NewEncoder(w).Encode(errResponse); err != nil {
		http.Error(w, "Failed to encode error response", http.StatusInternalServerError)
	}
}
