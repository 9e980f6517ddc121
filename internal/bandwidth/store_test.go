package bandwidth

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/node-reporter/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileSampleStore_LoadMissing(t *testing.T) {
	s := NewFileSampleStore(filepath.Join(t.TempDir(), "bandwidth.json"))

	_, err := s.Load()
	assert.ErrorIs(t, err, ErrNoSample)
}

func TestFileSampleStore_SaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "bandwidth.json")
	s := NewFileSampleStore(path)
	assert.Equal(t, path, s.Path())

	at := time.UnixMilli(1792227600123)
	sample := models.BandwidthSample{Upload: 100, Download: 200, MeasuredAt: at}
	require.NoError(t, s.Save(sample))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"upload":100,"download":200,"timestamp":1792227600123}`, string(raw))

	got, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, sample.Upload, got.Upload)
	assert.Equal(t, sample.Download, got.Download)
	assert.True(t, at.Equal(got.MeasuredAt))
}

func TestFileSampleStore_SaveReplaces(t *testing.T) {
	s := NewFileSampleStore(filepath.Join(t.TempDir(), "bandwidth.json"))

	require.NoError(t, s.Save(models.BandwidthSample{Upload: 1, Download: 1, MeasuredAt: time.UnixMilli(1000)}))
	require.NoError(t, s.Save(models.BandwidthSample{Upload: 2, Download: 3, MeasuredAt: time.UnixMilli(2000)}))

	got, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, 2.0, got.Upload)
	assert.Equal(t, 3.0, got.Download)
}

func TestFileSampleStore_LoadCorrupt(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "not json", content: "upload=1"},
		{name: "truncated", content: `{"upload":1,`},
		{name: "wrong types", content: `{"upload":"fast"}`},
		{name: "no timestamp", content: `{"upload":1,"download":2}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bandwidth.json")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o600))

			_, err := NewFileSampleStore(path).Load()
			assert.ErrorIs(t, err, ErrCorruptCache)
		})
	}
}

func TestFileSampleStore_LoadDirectory(t *testing.T) {
	_, err := NewFileSampleStore(t.TempDir()).Load()
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoSample)
}
