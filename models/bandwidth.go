// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"time"
)

// Throughput is the raw outcome of one speed test: upload and download
// rates in bytes per second.
type Throughput struct {
	Upload   float64 `json:"upload"`
	Download float64 `json:"download"`
}

// BandwidthSample is a [Throughput] stamped with the moment it was
// measured. It is the unit persisted in the bandwidth cache file.
type BandwidthSample struct {
	Upload     float64
	Download   float64
	MeasuredAt time.Time
}

// bandwidthSampleJSON is the on-disk shape of the cache file. The timestamp
// is stored as milliseconds since the Unix epoch.
type bandwidthSampleJSON struct {
	Upload    float64 `json:"upload"`
	Download  float64 `json:"download"`
	Timestamp int64   `json:"timestamp"`
}

// NewBandwidthSample stamps t with measuredAt.
func NewBandwidthSample(t Throughput, measuredAt time.Time) BandwidthSample {
	return BandwidthSample{
		Upload:     t.Upload,
		Download:   t.Download,
		MeasuredAt: measuredAt,
	}
}

// IsZero reports whether the sample was never measured.
func (s BandwidthSample) IsZero() bool {
	return s.MeasuredAt.IsZero()
}

// Age returns how old the sample is relative to now.
func (s BandwidthSample) Age(now time.Time) time.Duration {
	return now.Sub(s.MeasuredAt)
}

// MarshalJSON encodes the sample as {"upload","download","timestamp"(ms)}.
func (s BandwidthSample) MarshalJSON() ([]byte, error) {
	return json.Marshal(bandwidthSampleJSON{
		Upload:    s.Upload,
		Download:  s.Download,
		Timestamp: s.MeasuredAt.UnixMilli(),
	})
}

// UnmarshalJSON decodes the cache file format written by MarshalJSON.
func (s *BandwidthSample) UnmarshalJSON(b []byte) error {
	var raw bandwidthSampleJSON
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	s.Upload = raw.Upload
	s.Download = raw.Download
	s.MeasuredAt = time.UnixMilli(raw.Timestamp)
	if raw.Timestamp == 0 {
		s.MeasuredAt = time.Time{}
	}
	return nil
}
