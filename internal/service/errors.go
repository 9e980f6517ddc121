package service

import "errors"

var (
	// ErrInvalidCapacity is returned by NewTelemetryService when the
	// configured size and unit do not convert to a positive byte count.
	ErrInvalidCapacity = errors.New("invalid storage capacity")

	// ErrTickAborted is returned by Tick when the tick was cancelled
	// before a report could be delivered.
	ErrTickAborted = errors.New("telemetry tick aborted")
)
