package poller

import "errors"

var (
	ErrRemoteUnhealthy = errors.New("remote gateway failed health check")
	ErrStopTimeout     = errors.New("timed out waiting for poll loop to exit")
	errInvalidInterval = errors.New("intervals must not be negative")
	errInvalidQueue    = errors.New("event_queue_size must not be negative")
)
