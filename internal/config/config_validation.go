// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or an error wrapping one of
// the sentinel errors from errors.go.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.Path == "" {
		return fmt.Errorf("%w: storage path is empty", ErrInvalidStorageConfigs)
	}

	if _, err := cfg.Storage.CapacityBytes(); err != nil {
		if errors.Is(err, ErrUnknownUnit) {
			return errors.Join(ErrInvalidStorageConfigs, err)
		}
		return err
	}

	if cfg.Network.Port < 0 || cfg.Network.Port > 65535 {
		return fmt.Errorf("%w: port %d out of range", ErrInvalidNetworkConfigs, cfg.Network.Port)
	}

	if cfg.Key.File == "" {
		return fmt.Errorf("%w: key file is empty", ErrInvalidKeyConfigs)
	}

	if cfg.Telemetry.IsEnabled() {
		if cfg.Telemetry.Endpoint == "" || cfg.Telemetry.SpeedTestURL == "" {
			return fmt.Errorf("%w: endpoint and speed-test url are required", ErrInvalidTelemetryConfigs)
		}
		if cfg.Telemetry.Interval <= 0 || cfg.Telemetry.FreshnessWindow <= 0 || cfg.Telemetry.RequestTimeout <= 0 {
			return fmt.Errorf("%w: durations must be positive", ErrInvalidTelemetryConfigs)
		}
	}

	return nil
}
