// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package bandwidth

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/node-reporter/internal/adapter"
	"github.com/MKhiriev/node-reporter/internal/clock"
	"github.com/MKhiriev/node-reporter/internal/logger"
	"github.com/MKhiriev/node-reporter/models"
)

// State is the freshness state of the cached sample.
type State int

const (
	// StateStale means there is no sample or it is older than the window.
	StateStale State = iota
	// StateTesting means a speed test is running.
	StateTesting
	// StateFresh means the cached sample is younger than the window.
	StateFresh
)

func (s State) String() string {
	switch s {
	case StateStale:
		return "stale"
	case StateTesting:
		return "testing"
	case StateFresh:
		return "fresh"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Cache serves the last bandwidth sample and re-measures it once it is
// older than the freshness window.
type Cache struct {
	store  SampleStore
	tester adapter.SpeedTestAdapter
	clock  clock.Clock
	window time.Duration

	// refreshMu serializes speed tests; mu guards the fields below and is
	// never held while the tester runs.
	refreshMu sync.Mutex
	mu        sync.Mutex
	testing   bool
	last      models.BandwidthSample

	logger *logger.Logger
}

// NewCache wires a cache. window is the maximum age of a usable sample.
func NewCache(store SampleStore, tester adapter.SpeedTestAdapter, clk clock.Clock, window time.Duration, logger *logger.Logger) *Cache {
	return &Cache{
		store:  store,
		tester: tester,
		clock:  clk,
		window: window,
		logger: logger,
	}
}

// Sample returns the persisted sample and whether it is fresh. A missing or
// unreadable cache yields a zero sample and false.
func (c *Cache) Sample(ctx context.Context) (models.BandwidthSample, bool) {
	sample, err := c.store.Load()
	if err != nil {
		if !errors.Is(err, ErrNoSample) {
			c.logger.Warn().Err(err).Msg("bandwidth cache unreadable, treating as stale")
		}
		return models.BandwidthSample{}, false
	}

	c.mu.Lock()
	c.last = sample
	c.mu.Unlock()

	return sample, c.isFresh(sample, c.clock.Now())
}

// RefreshIfStale returns the cached sample when it is fresh. Otherwise it
// runs exactly one speed test and persists the result. On failure the cache
// file is left untouched and the error wraps [ErrSpeedTest].
func (c *Cache) RefreshIfStale(ctx context.Context) (models.BandwidthSample, error) {
	c.refreshMu.Lock()
	defer c.refreshMu.Unlock()

	if sample, fresh := c.Sample(ctx); fresh {
		return sample, nil
	}

	c.setTesting(true)
	defer c.setTesting(false)

	c.logger.Info().Msg("bandwidth sample is stale, running speed test")

	throughput, err := c.tester.Measure(ctx)
	if err != nil {
		c.logger.Error().
			Err(err).
			Time("failed_at", c.clock.Now().UTC()).
			Msg("speed test failed")
		return models.BandwidthSample{}, fmt.Errorf("%w: %w", ErrSpeedTest, err)
	}

	sample := models.NewBandwidthSample(throughput, c.clock.Now())

	c.mu.Lock()
	c.last = sample
	c.mu.Unlock()

	if err = c.store.Save(sample); err != nil {
		// the measurement is still valid for this tick
		c.logger.Error().Err(err).Msg("failed to persist bandwidth sample")
		return sample, nil
	}

	c.logger.Info().
		Float64("upload", sample.Upload).
		Float64("download", sample.Download).
		Msg("bandwidth sample refreshed")
	return sample, nil
}

// State reports the current state. Fresh turns into Stale lazily, by
// comparing the last known sample against the clock.
func (c *Cache) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.testing {
		return StateTesting
	}
	if c.isFresh(c.last, c.clock.Now()) {
		return StateFresh
	}
	return StateStale
}

func (c *Cache) setTesting(v bool) {
	c.mu.Lock()
	c.testing = v
	c.mu.Unlock()
}

// isFresh is true iff the sample exists and is strictly younger than the
// window. A sample stamped in the future (the clock moved backwards) is
// stale.
func (c *Cache) isFresh(sample models.BandwidthSample, now time.Time) bool {
	if sample.IsZero() {
		return false
	}
	age := sample.Age(now)
	return age >= 0 && age < c.window
}
