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

// Package natsutil publishes trigger decisions and scan results to NATS
// JetStream as CloudEvents.
package natsutil

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/carverauto/sensorpoll/pkg/logger"
	"github.com/carverauto/sensorpoll/pkg/models"
	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

const (
	SubjectTrigger = "events.sensorpoll.trigger"
	SubjectScan    = "events.sensorpoll.scan"

	eventSource       = "sensorpoll/trigger"
	typeDecision      = "com.carverauto.sensorpoll.trigger.decision"
	typeScan          = "com.carverauto.sensorpoll.scan.completed"
	contentTypeJSON   = "application/json"
	cloudEventVersion = "1.0"

	defaultMaxPending   = 256
	defaultDrainTimeout = 5 * time.Second
	connectionName      = "sensorpoll"
)

// EventPublisher provides methods for publishing CloudEvents to NATS JetStream.
// Publishes are asynchronous; failures surface through the logger.
type EventPublisher struct {
	nc     *nats.Conn
	js     jetstream.JetStream
	stream string
	logger logger.Logger
}

// NewEventPublisher wraps an existing JetStream context.
func NewEventPublisher(js jetstream.JetStream, streamName string, log logger.Logger) *EventPublisher {
	return &EventPublisher{
		js:     js,
		stream: streamName,
		logger: log,
	}
}

// PublishDecision implements trigger.Publisher.
func (p *EventPublisher) PublishDecision(ctx context.Context, decision models.TriggerDecision) error {
	return p.publish(ctx, SubjectTrigger, typeDecision, decision.DecidedAt, decision)
}

// PublishScan implements trigger.Publisher.
func (p *EventPublisher) PublishScan(ctx context.Context, result models.ScanResult) error {
	return p.publish(ctx, SubjectScan, typeScan, result.EndTime, result)
}

func (p *EventPublisher) publish(_ context.Context, subject, eventType string, at time.Time, data interface{}) error {
	event := models.CloudEvent{
		SpecVersion:     cloudEventVersion,
		ID:              uuid.New().String(),
		Source:          eventSource,
		Type:            eventType,
		DataContentType: contentTypeJSON,
		Subject:         subject,
		Time:            &at,
		Data:            data,
	}

	eventBytes, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal %s event: %w", eventType, err)
	}

	if _, err := p.js.PublishAsync(subject, eventBytes, jetstream.WithMsgID(event.ID)); err != nil {
		return fmt.Errorf("failed to publish %s event: %w", eventType, err)
	}

	return nil
}

// Close waits briefly for outstanding acks, then drains the connection if
// the publisher owns it.
func (p *EventPublisher) Close() error {
	select {
	case <-p.js.PublishAsyncComplete():
	case <-time.After(defaultDrainTimeout):
		p.logger.Warn().Int("pending", p.js.PublishAsyncPending()).Msg("Closing with unacknowledged events")
	}

	if p.nc == nil {
		return nil
	}

	return p.nc.Drain()
}

// Connect dials NATS and returns a publisher bound to the configured stream,
// creating the stream or adding the sensorpoll subjects to it as needed.
func Connect(ctx context.Context, cfg *models.NATSConfig, log logger.Logger, extraOpts ...nats.Option) (*EventPublisher, error) {
	nc, err := connectWithSecurity(cfg, log, extraOpts...)
	if err != nil {
		return nil, err
	}

	publisher, err := CreateEventPublisherWithDomain(ctx, nc, cfg.Domain, cfg.StreamName, log)
	if err != nil {
		nc.Close()
		return nil, err
	}

	publisher.nc = nc

	return publisher, nil
}

func connectWithSecurity(cfg *models.NATSConfig, log logger.Logger, extraOpts ...nats.Option) (*nats.Conn, error) {
	opts := []nats.Option{nats.Name(connectionName)}

	if cfg.TLS != nil {
		tlsConf, err := TLSConfig(cfg.TLS)
		if err != nil {
			return nil, fmt.Errorf("failed to build NATS TLS config: %w", err)
		}

		opts = append(opts, nats.Secure(tlsConf))
	}

	if cfg.CredsFile != "" {
		opts = append(opts, nats.UserCredentials(cfg.CredsFile))
	}

	opts = append(opts,
		nats.ErrorHandler(func(_ *nats.Conn, _ *nats.Subscription, err error) {
			log.Error().Err(err).Msg("NATS error")
		}),
		nats.ConnectHandler(func(nc *nats.Conn) {
			log.Info().Str("url", nc.ConnectedUrl()).Msg("Connected to NATS")
		}),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			log.Warn().Err(err).Msg("NATS disconnected")
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			log.Info().Str("url", nc.ConnectedUrl()).Msg("NATS reconnected")
		}),
	)

	opts = append(opts, extraOpts...)

	nc, err := nats.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	return nc, nil
}

// CreateEventPublisherWithDomain creates an EventPublisher with optional NATS domain support.
func CreateEventPublisherWithDomain(
	ctx context.Context, nc *nats.Conn, domain, streamName string, log logger.Logger,
) (*EventPublisher, error) {
	jsOpts := []jetstream.JetStreamOpt{
		jetstream.WithPublishAsyncMaxPending(defaultMaxPending),
		jetstream.WithPublishAsyncErrHandler(func(_ jetstream.JetStream, msg *nats.Msg, err error) {
			log.Warn().Err(err).Str("subject", msg.Subject).Msg("Event publish failed")
		}),
	}

	var (
		js  jetstream.JetStream
		err error
	)

	if domain != "" {
		js, err = jetstream.NewWithDomain(nc, domain, jsOpts...)
		if err != nil {
			return nil, fmt.Errorf("failed to create JetStream context with domain %s: %w", domain, err)
		}
	} else {
		js, err = jetstream.New(nc, jsOpts...)
		if err != nil {
			return nil, fmt.Errorf("failed to create JetStream context: %w", err)
		}
	}

	if err := ensureStream(ctx, js, streamName, log); err != nil {
		return nil, err
	}

	return NewEventPublisher(js, streamName, log), nil
}

func ensureStream(ctx context.Context, js jetstream.JetStream, streamName string, log logger.Logger) error {
	stream, err := js.Stream(ctx, streamName)
	if err != nil {
		if !isStreamMissingErr(err) {
			return fmt.Errorf("failed to look up stream %s: %w", streamName, err)
		}

		_, err = js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
			Name:     streamName,
			Subjects: []string{SubjectTrigger, SubjectScan},
		})
		if err != nil {
			return fmt.Errorf("failed to create stream %s: %w", streamName, err)
		}

		log.Info().Str("stream", streamName).Msg("Created NATS JetStream stream")

		return nil
	}

	cfg := stream.CachedInfo().Config
	before := len(cfg.Subjects)

	cfg.Subjects = ensureSubjectList(cfg.Subjects, SubjectTrigger)
	cfg.Subjects = ensureSubjectList(cfg.Subjects, SubjectScan)

	if len(cfg.Subjects) == before {
		return nil
	}

	if _, err := js.UpdateStream(ctx, cfg); err != nil {
		return fmt.Errorf("failed to add subjects to stream %s: %w", streamName, err)
	}

	log.Info().Str("stream", streamName).Strs("subjects", cfg.Subjects).Msg("Updated stream subjects")

	return nil
}

// ensureSubjectList appends subject unless an existing pattern covers it.
func ensureSubjectList(subjects []string, subject string) []string {
	for _, pattern := range subjects {
		if matchesSubject(pattern, subject) {
			return subjects
		}
	}

	return append(subjects, subject)
}

func matchesSubject(pattern, subject string) bool {
	pTokens := strings.Split(pattern, ".")
	sTokens := strings.Split(subject, ".")

	for i, token := range pTokens {
		if token == ">" {
			return len(sTokens) > i
		}

		if i >= len(sTokens) {
			return false
		}

		if token != "*" && token != sTokens[i] {
			return false
		}
	}

	return len(pTokens) == len(sTokens)
}

func isStreamMissingErr(err error) bool {
	return errors.Is(err, jetstream.ErrStreamNotFound) ||
		errors.Is(err, jetstream.ErrNoStreamResponse) ||
		errors.Is(err, nats.ErrStreamNotFound) ||
		errors.Is(err, nats.ErrNoStreamResponse) ||
		errors.Is(err, nats.ErrNoResponders)
}
