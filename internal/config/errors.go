package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, empty data path or a non-positive capacity).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidNetworkConfigs indicates an out-of-range port.
	ErrInvalidNetworkConfigs = errors.New("invalid network configuration")
	// ErrInvalidTelemetryConfigs indicates that telemetry is enabled but
	// an endpoint or a positive interval is missing.
	ErrInvalidTelemetryConfigs = errors.New("invalid telemetry configuration")
	// ErrInvalidKeyConfigs indicates that the encrypted key file is not set.
	ErrInvalidKeyConfigs = errors.New("invalid key configuration")
	// ErrUnknownUnit is returned for a capacity unit other than MB, GB, TB.
	ErrUnknownUnit = errors.New("unknown capacity unit")
)
