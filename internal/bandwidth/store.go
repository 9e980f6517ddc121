// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package bandwidth

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/MKhiriev/node-reporter/models"
	"github.com/natefinch/atomic"
)

//go:generate mockgen -source=store.go -destination=../mock/sample_store_mock.go -package=mock

// SampleStore persists the last bandwidth sample.
type SampleStore interface {
	// Load returns the persisted sample, [ErrNoSample] when nothing was
	// saved yet, or [ErrCorruptCache] when the stored data is unreadable.
	Load() (models.BandwidthSample, error)

	// Save replaces the persisted sample. A failed Save leaves the
	// previous sample intact.
	Save(sample models.BandwidthSample) error
}

// FileSampleStore keeps the sample in a small JSON file:
//
//	{"upload":12500000,"download":62500000,"timestamp":1792227600000}
type FileSampleStore struct {
	path string
}

// NewFileSampleStore returns a store backed by the file at path. The file
// and its directory are created on the first Save.
func NewFileSampleStore(path string) *FileSampleStore {
	return &FileSampleStore{path: path}
}

// Path returns the cache file location.
func (s *FileSampleStore) Path() string {
	return s.path
}

func (s *FileSampleStore) Load() (models.BandwidthSample, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return models.BandwidthSample{}, ErrNoSample
	}
	if err != nil {
		return models.BandwidthSample{}, fmt.Errorf("read bandwidth cache: %w", err)
	}

	var sample models.BandwidthSample
	if err = json.Unmarshal(data, &sample); err != nil {
		return models.BandwidthSample{}, fmt.Errorf("%w: %v", ErrCorruptCache, err)
	}
	if sample.IsZero() {
		return models.BandwidthSample{}, fmt.Errorf("%w: missing timestamp", ErrCorruptCache)
	}

	return sample, nil
}

// Save writes the sample through a temporary file and a rename so readers
// never observe a partial write.
func (s *FileSampleStore) Save(sample models.BandwidthSample) error {
	data, err := json.Marshal(sample)
	if err != nil {
		return fmt.Errorf("encode bandwidth sample: %w", err)
	}

	if err = os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create bandwidth cache dir: %w", err)
	}

	if err = atomic.WriteFile(s.path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("write bandwidth cache: %w", err)
	}
	return nil
}
