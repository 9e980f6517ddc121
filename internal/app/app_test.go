// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/MKhiriev/node-reporter/internal/config"
	"github.com/MKhiriev/node-reporter/internal/crypto"
	"github.com/MKhiriev/node-reporter/internal/logger"
	"github.com/MKhiriev/node-reporter/internal/mock"
	"github.com/MKhiriev/node-reporter/internal/utils"
	"github.com/MKhiriev/node-reporter/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func ptr[T any](v T) *T { return &v }

func TestNewApp_WrongPasswordIsFatal(t *testing.T) {
	path, _ := writeKeyFile(t, "right")
	cfg := &config.StructuredConfig{Key: config.Key{File: path, Password: "wrong"}}

	_, err := NewApp(context.Background(), cfg, Options{}, logger.Nop())
	require.Error(t, err)
	assert.ErrorIs(t, err, crypto.ErrDecryption)
}

func TestApp_TelemetryDisabled(t *testing.T) {
	path, _ := writeKeyFile(t, "pw")
	cfg := &config.StructuredConfig{Key: config.Key{File: path, Password: "pw"}}

	ctrl := gomock.NewController(t)
	resolver := mock.NewMockAddressResolver(ctrl)
	resolver.EXPECT().Resolve(gomock.Any()).Times(0)

	a, err := NewApp(context.Background(), cfg, Options{Resolver: resolver}, logger.Nop())
	require.NoError(t, err)
	require.NotNil(t, a.identity.PrivateKey())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, a.Run(ctx))

	assert.Nil(t, a.identity.PrivateKey())
}

func TestApp_ReportsOnStart(t *testing.T) {
	path, nodeID := writeKeyFile(t, "pw")

	reports := make(chan *http.Request, 1)
	bodies := make(chan []byte, 1)

	mux := http.NewServeMux()
	mux.HandleFunc("/download", func(w http.ResponseWriter, r *http.Request) {
		n, _ := strconv.Atoi(r.URL.Query().Get("bytes"))
		_, _ = w.Write(bytes.Repeat([]byte{'x'}, n))
	})
	mux.HandleFunc("/upload", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.Copy(io.Discard, r.Body)
		w.WriteHeader(http.StatusNoContent)
	})
	mux.HandleFunc("/reports", func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		reports <- r
		bodies <- body
		w.WriteHeader(http.StatusAccepted)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	dir := t.TempDir()
	cfg := &config.StructuredConfig{
		Storage: config.Storage{Path: filepath.Join(dir, "data"), Size: "1", Unit: "GB"},
		Network: config.Network{Address: "127.0.0.1", Port: 28967},
		Payment: config.Payment{Address: "0xpay"},
		Telemetry: config.Telemetry{
			Enabled:         ptr(true),
			Endpoint:        srv.URL,
			SpeedTestURL:    srv.URL,
			Interval:        time.Hour,
			FreshnessWindow: config.DefaultFreshnessWindow,
			CachePath:       filepath.Join(dir, "state", "bandwidth.json"),
			RequestTimeout:  5 * time.Second,
		},
		Key: config.Key{File: path, Password: "pw"},
	}

	a, err := NewApp(context.Background(), cfg, Options{}, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.Run(ctx) }()

	var req *http.Request
	select {
	case req = <-reports:
	case <-time.After(10 * time.Second):
		cancel()
		t.Fatal("no report delivered")
	}
	body := <-bodies

	var report models.TelemetryReport
	require.NoError(t, json.Unmarshal(body, &report))
	assert.Equal(t, models.ContactInfo{Address: "127.0.0.1", Port: 28967, NodeID: nodeID}, report.Contact)
	assert.Equal(t, "0xpay", report.PaymentAddress)
	assert.Equal(t, int64(0), report.Storage.Used)
	assert.Equal(t, int64(1<<30), report.Storage.Free)
	assert.Greater(t, report.Bandwidth.Download, 0.0)
	assert.Greater(t, report.Bandwidth.Upload, 0.0)

	token, err := utils.ParseBearerToken(req.Header.Get("Authorization"))
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.NotEmpty(t, req.Header.Get("X-Request-ID"))

	cancel()
	select {
	case err = <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
	assert.FileExists(t, cfg.Telemetry.CachePath)
	assert.Nil(t, a.identity.PrivateKey())
}
