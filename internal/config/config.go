// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"time"
)

// Defaults applied by [StructuredConfig.applyDefaults] to fields left empty
// by every source.
const (
	DefaultReportInterval  = 5 * time.Minute
	DefaultFreshnessWindow = 25 * time.Hour
	DefaultRequestTimeout  = 30 * time.Second
	DefaultCacheFileName   = "bandwidth.json"
	defaultStateDirName    = ".node-reporter"
)

// StructuredConfig is the top-level configuration container. It is loaded
// once at startup and treated as read-only afterwards.
//
// Struct tags:
//   - envPrefix : prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Storage describes the shared data directory and its capacity.
	Storage Storage `envPrefix:"STORAGE_"`

	// Network holds the contact address published in every report.
	Network Network `envPrefix:"NETWORK_"`

	// Payment holds the operator's payout address.
	Payment Payment `envPrefix:"PAYMENT_"`

	// Telemetry controls the periodic report loop.
	Telemetry Telemetry `envPrefix:"TELEMETRY_"`

	// Key locates the encrypted private key and, optionally, its password.
	Key Key `envPrefix:"KEY_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Storage holds the data directory settings.
type Storage struct {
	// Path is the data directory whose size is reported as "used".
	// Env: STORAGE_PATH
	Path string `env:"PATH"`

	// Size is the shared capacity as a decimal number, e.g. "2" or "1.5".
	// Env: STORAGE_SIZE
	Size string `env:"SIZE"`

	// Unit is one of MB, GB, TB (binary multiples of 1024).
	// Env: STORAGE_UNIT
	Unit string `env:"UNIT"`

	// JournalDSN is an optional sqlite file that records every tick outcome.
	// Empty disables the journal.
	// Env: STORAGE_JOURNAL_DSN
	JournalDSN string `env:"JOURNAL_DSN"`
}

// Network holds the node's contact settings.
type Network struct {
	// Address is the public host name or IP of the node. When empty the
	// daemon tries to discover it via STUN.
	// Env: NETWORK_ADDRESS
	Address string `env:"ADDRESS"`

	// Port is the public port of the node.
	// Env: NETWORK_PORT
	Port int `env:"PORT"`

	// STUNServers are queried, in order, when Address is empty.
	// Env: NETWORK_STUN_SERVERS (comma separated)
	STUNServers []string `env:"STUN_SERVERS" envSeparator:","`
}

// Payment holds payout settings.
type Payment struct {
	// Address is the operator's payment address, copied verbatim into
	// every report.
	// Env: PAYMENT_ADDRESS
	Address string `env:"ADDRESS"`
}

// Telemetry controls the periodic report loop.
type Telemetry struct {
	// Enabled turns the report loop on. When false the daemon only holds
	// the unlocked identity. A pointer so that an explicit false from an
	// earlier source (TELEMETRY_ENABLED=false, -telemetry=false) beats true
	// from the JSON file; nil means no source set it, which is off.
	// Env: TELEMETRY_ENABLED
	Enabled *bool `env:"ENABLED"`

	// Endpoint is the base URL of the collection service.
	// Env: TELEMETRY_ENDPOINT
	Endpoint string `env:"ENDPOINT"`

	// SpeedTestURL is the base URL of the speed-test service.
	// Env: TELEMETRY_SPEED_TEST_URL
	SpeedTestURL string `env:"SPEED_TEST_URL"`

	// Interval is the pause between the end of one tick and the start of
	// the next (e.g. "5m").
	// Env: TELEMETRY_INTERVAL
	Interval time.Duration `env:"INTERVAL"`

	// FreshnessWindow is the maximum age of a cached bandwidth sample.
	// Env: TELEMETRY_FRESHNESS_WINDOW
	FreshnessWindow time.Duration `env:"FRESHNESS_WINDOW"`

	// CachePath is the bandwidth cache file. It must live outside the data
	// directory so it is not counted as used space.
	// Env: TELEMETRY_CACHE_PATH
	CachePath string `env:"CACHE_PATH"`

	// RequestTimeout bounds every outbound HTTP call.
	// Env: TELEMETRY_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Key locates the encrypted node key.
type Key struct {
	// File is the path of the text file holding the encrypted key blob.
	// Env: KEY_FILE
	File string `env:"FILE"`

	// Password unlocks File. It is only ever read from the environment;
	// when empty the daemon prompts on the terminal.
	// Env: KEY_PASSWORD
	Password string `env:"PASSWORD"`
}

// GetStructuredConfig loads, merges, defaults and validates the daemon
// configuration. See the package documentation for source priority.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}

// applyDefaults fills fields that no source has set.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Telemetry.Interval == 0 {
		cfg.Telemetry.Interval = DefaultReportInterval
	}
	if cfg.Telemetry.FreshnessWindow == 0 {
		cfg.Telemetry.FreshnessWindow = DefaultFreshnessWindow
	}
	if cfg.Telemetry.RequestTimeout == 0 {
		cfg.Telemetry.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Telemetry.CachePath == "" {
		cfg.Telemetry.CachePath = defaultCachePath()
	}
}

// IsEnabled reports whether the report loop should run.
func (t Telemetry) IsEnabled() bool {
	return t.Enabled != nil && *t.Enabled
}

func defaultCachePath() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		home = os.TempDir()
	}
	return filepath.Join(home, defaultStateDirName, DefaultCacheFileName)
}
