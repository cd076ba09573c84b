package trigger

import "errors"

var (
	ErrNotActive         = errors.New("trigger manager is not active")
	ErrScanStopTimeout   = errors.New("timed out waiting for scan to finish")
	ErrStopPending       = errors.New("previous stop still waiting for scan to finish")
	ErrNoStartCallback   = errors.New("no UART start callback available")
	ErrUARTStartFailed   = errors.New("failed to start UART")
	ErrScanInterrupted   = errors.New("scan interrupted")
	errInvalidScanWindow = errors.New("max_scan_interval must not be below min_scan_interval")
	errInvalidDuration   = errors.New("durations must not be negative")
)
