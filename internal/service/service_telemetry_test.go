// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/node-reporter/internal/bandwidth"
	"github.com/MKhiriev/node-reporter/internal/clock"
	"github.com/MKhiriev/node-reporter/internal/config"
	"github.com/MKhiriev/node-reporter/internal/diskusage"
	"github.com/MKhiriev/node-reporter/internal/logger"
	"github.com/MKhiriev/node-reporter/internal/mock"
	"github.com/MKhiriev/node-reporter/internal/utils"
	"github.com/MKhiriev/node-reporter/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const oneMiB = int64(1 << 20)

var (
	testNow     = time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)
	testContact = models.ContactInfo{Address: "203.0.113.7", Port: 28967, NodeID: "node-1"}
	testStorage = config.Storage{Path: "/srv/node", Size: "1", Unit: "MB"}
	testPayment = config.Payment{Address: "0xabc"}
)

type telemetryFixture struct {
	svc       TelemetryService
	bandwidth *mock.MockBandwidthProvider
	measurer  *mock.MockMeasurer
	reporter  *mock.MockReportAdapter
	journal   *mock.MockJournal
	clock     *clock.FakeClock
}

func newTelemetryFixture(t *testing.T) *telemetryFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &telemetryFixture{
		bandwidth: mock.NewMockBandwidthProvider(ctrl),
		measurer:  mock.NewMockMeasurer(ctrl),
		reporter:  mock.NewMockReportAdapter(ctrl),
		journal:   mock.NewMockJournal(ctrl),
		clock:     clock.Fake(testNow),
	}

	svc, err := NewTelemetryService(testStorage, testPayment, testContact, TelemetryDeps{
		Bandwidth: f.bandwidth,
		Measurer:  f.measurer,
		Reporter:  f.reporter,
		Journal:   f.journal,
		Clock:     f.clock,
	}, logger.Nop())
	require.NoError(t, err)
	f.svc = svc
	return f
}

func TestNewTelemetryService_InvalidCapacity(t *testing.T) {
	_, err := NewTelemetryService(config.Storage{Path: "/srv", Size: "2", Unit: "PB"}, testPayment, testContact, TelemetryDeps{}, logger.Nop())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidCapacity)
	assert.ErrorIs(t, err, config.ErrUnknownUnit)
}

func TestTick_Sent(t *testing.T) {
	f := newTelemetryFixture(t)
	sample := models.BandwidthSample{Upload: 100, Download: 200, MeasuredAt: testNow.Add(-time.Hour)}

	want := models.TelemetryReport{
		Storage:        models.StorageReport{Free: oneMiB - 5000, Used: 5000},
		Bandwidth:      models.BandwidthReport{Upload: 100, Download: 200},
		Contact:        testContact,
		PaymentAddress: "0xabc",
	}

	var sentTrace string
	f.bandwidth.EXPECT().RefreshIfStale(gomock.Any()).Return(sample, nil)
	f.measurer.EXPECT().Measure(gomock.Any(), "/srv/node").Return(int64(5000), nil)
	f.reporter.EXPECT().Send(gomock.Any(), want).DoAndReturn(func(ctx context.Context, _ models.TelemetryReport) error {
		sentTrace, _ = utils.GetTraceIDFromContext(ctx)
		return nil
	})
	f.journal.EXPECT().RecordTick(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, rec models.TickRecord) error {
		assert.Equal(t, models.TickSent, rec.Outcome)
		return nil
	})

	rec, err := f.svc.Tick(context.Background())
	require.NoError(t, err)

	assert.Equal(t, models.TickSent, rec.Outcome)
	assert.Empty(t, rec.Error)
	assert.Equal(t, testNow, rec.StartedAt)
	require.NotNil(t, rec.Report)
	assert.Equal(t, want, *rec.Report)
	assert.NotEmpty(t, rec.TraceID)
	assert.Equal(t, rec.TraceID, sentTrace)
}

func TestTick_SkippedWhenSpeedTestFails(t *testing.T) {
	f := newTelemetryFixture(t)
	testErr := errors.New("connection refused")

	f.bandwidth.EXPECT().RefreshIfStale(gomock.Any()).Return(models.BandwidthSample{}, testErr)
	f.measurer.EXPECT().Measure(gomock.Any(), gomock.Any()).Times(0)
	f.reporter.EXPECT().Send(gomock.Any(), gomock.Any()).Times(0)
	f.journal.EXPECT().RecordTick(gomock.Any(), gomock.Any()).Return(nil)

	rec, err := f.svc.Tick(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, testErr)
	assert.Equal(t, models.TickSkipped, rec.Outcome)
	assert.Nil(t, rec.Report)
	assert.Equal(t, testErr.Error(), rec.Error)
}

func TestTick_FilesystemErrorReportsZeroUsed(t *testing.T) {
	f := newTelemetryFixture(t)
	sample := models.BandwidthSample{Upload: 1, Download: 2, MeasuredAt: testNow}

	f.bandwidth.EXPECT().RefreshIfStale(gomock.Any()).Return(sample, nil)
	f.measurer.EXPECT().Measure(gomock.Any(), gomock.Any()).Return(int64(0), diskusage.ErrFilesystem)
	f.reporter.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, report models.TelemetryReport) error {
		assert.Equal(t, int64(0), report.Storage.Used)
		assert.Equal(t, oneMiB, report.Storage.Free)
		return nil
	})
	f.journal.EXPECT().RecordTick(gomock.Any(), gomock.Any()).Return(nil)

	rec, err := f.svc.Tick(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.TickSent, rec.Outcome)
}

func TestTick_LogLinesAreInfoOrError(t *testing.T) {
	ctrl := gomock.NewController(t)
	var buf bytes.Buffer

	bw := mock.NewMockBandwidthProvider(ctrl)
	measurer := mock.NewMockMeasurer(ctrl)
	reporter := mock.NewMockReportAdapter(ctrl)

	svc, err := NewTelemetryService(testStorage, testPayment, testContact, TelemetryDeps{
		Bandwidth: bw,
		Measurer:  measurer,
		Reporter:  reporter,
		Clock:     clock.Fake(testNow),
	}, logger.NewLoggerTo(&buf, "reporter"))
	require.NoError(t, err)

	bw.EXPECT().RefreshIfStale(gomock.Any()).Return(models.BandwidthSample{MeasuredAt: testNow}, nil)
	measurer.EXPECT().Measure(gomock.Any(), gomock.Any()).Return(int64(0), diskusage.ErrFilesystem)
	reporter.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil)

	_, err = svc.Tick(context.Background())
	require.NoError(t, err)

	var lines int
	scanner := bufio.NewScanner(&buf)
	for scanner.Scan() {
		var entry map[string]any
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &entry))
		assert.Contains(t, []any{"info", "error"}, entry["type"], "line: %s", scanner.Text())
		lines++
	}
	assert.GreaterOrEqual(t, lines, 2)
}

func TestTick_MeasureCancelled(t *testing.T) {
	f := newTelemetryFixture(t)

	f.bandwidth.EXPECT().RefreshIfStale(gomock.Any()).Return(models.BandwidthSample{MeasuredAt: testNow}, nil)
	f.measurer.EXPECT().Measure(gomock.Any(), gomock.Any()).Return(int64(0), context.Canceled)
	f.reporter.EXPECT().Send(gomock.Any(), gomock.Any()).Times(0)
	f.journal.EXPECT().RecordTick(gomock.Any(), gomock.Any()).Return(nil)

	rec, err := f.svc.Tick(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTickAborted)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, models.TickFailed, rec.Outcome)
}

func TestTick_DeliveryFailure(t *testing.T) {
	f := newTelemetryFixture(t)
	sendErr := errors.New("503")

	f.bandwidth.EXPECT().RefreshIfStale(gomock.Any()).Return(models.BandwidthSample{MeasuredAt: testNow}, nil)
	f.measurer.EXPECT().Measure(gomock.Any(), gomock.Any()).Return(int64(10), nil)
	f.reporter.EXPECT().Send(gomock.Any(), gomock.Any()).Return(sendErr)
	f.journal.EXPECT().RecordTick(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, rec models.TickRecord) error {
		assert.Equal(t, models.TickFailed, rec.Outcome)
		assert.NotNil(t, rec.Report)
		return nil
	})

	rec, err := f.svc.Tick(context.Background())
	require.ErrorIs(t, err, sendErr)
	assert.Equal(t, models.TickFailed, rec.Outcome)
	require.NotNil(t, rec.Report)
	assert.Equal(t, int64(10), rec.Report.Storage.Used)
}

func TestTick_JournalErrorDoesNotFailTick(t *testing.T) {
	f := newTelemetryFixture(t)

	f.bandwidth.EXPECT().RefreshIfStale(gomock.Any()).Return(models.BandwidthSample{MeasuredAt: testNow}, nil)
	f.measurer.EXPECT().Measure(gomock.Any(), gomock.Any()).Return(int64(10), nil)
	f.reporter.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil)
	f.journal.EXPECT().RecordTick(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

	rec, err := f.svc.Tick(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.TickSent, rec.Outcome)
}

func TestTick_JournalOutlivesCancelledContext(t *testing.T) {
	f := newTelemetryFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	testErr := errors.New("speed test aborted")

	f.bandwidth.EXPECT().RefreshIfStale(gomock.Any()).DoAndReturn(func(context.Context) (models.BandwidthSample, error) {
		cancel()
		return models.BandwidthSample{}, testErr
	})
	f.journal.EXPECT().RecordTick(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, _ models.TickRecord) error {
		assert.NoError(t, ctx.Err())
		return nil
	})

	_, err := f.svc.Tick(ctx)
	require.ErrorIs(t, err, testErr)
}

// end-to-end through a real bandwidth cache backed by a temp file

func newPipeline(t *testing.T, cachePath string) (TelemetryService, *mock.MockSpeedTestAdapter, *mock.MockMeasurer, *mock.MockReportAdapter) {
	t.Helper()
	ctrl := gomock.NewController(t)

	clk := clock.Fake(testNow)
	tester := mock.NewMockSpeedTestAdapter(ctrl)
	measurer := mock.NewMockMeasurer(ctrl)
	reporter := mock.NewMockReportAdapter(ctrl)

	cache := bandwidth.NewCache(bandwidth.NewFileSampleStore(cachePath), tester, clk, config.DefaultFreshnessWindow, logger.Nop())

	svc, err := NewTelemetryService(testStorage, testPayment, testContact, TelemetryDeps{
		Bandwidth: cache,
		Measurer:  measurer,
		Reporter:  reporter,
		Clock:     clk,
	}, logger.Nop())
	require.NoError(t, err)
	return svc, tester, measurer, reporter
}

func TestTick_EndToEnd(t *testing.T) {
	cachePath := filepath.Join(t.TempDir(), "state", "bandwidth.json")
	svc, tester, measurer, reporter := newPipeline(t, cachePath)

	tester.EXPECT().Measure(gomock.Any()).Return(models.Throughput{Upload: 100, Download: 200}, nil).Times(1)
	measurer.EXPECT().Measure(gomock.Any(), "/srv/node").Return(int64(5000), nil).Times(2)
	reporter.EXPECT().Send(gomock.Any(), models.TelemetryReport{
		Storage:        models.StorageReport{Free: oneMiB - 5000, Used: 5000},
		Bandwidth:      models.BandwidthReport{Upload: 100, Download: 200},
		Contact:        testContact,
		PaymentAddress: "0xabc",
	}).Return(nil).Times(2)

	_, err := svc.Tick(context.Background())
	require.NoError(t, err)

	// the second tick is served from the cache file
	_, err = svc.Tick(context.Background())
	require.NoError(t, err)

	saved, err := bandwidth.NewFileSampleStore(cachePath).Load()
	require.NoError(t, err)
	assert.Equal(t, 100.0, saved.Upload)
	assert.Equal(t, 200.0, saved.Download)
	assert.True(t, saved.MeasuredAt.Equal(testNow))
}

func TestTick_EndToEndSpeedTestFailureLeavesCacheUntouched(t *testing.T) {
	cachePath := filepath.Join(t.TempDir(), "bandwidth.json")
	stale := models.BandwidthSample{Upload: 1, Download: 2, MeasuredAt: testNow.Add(-48 * time.Hour)}
	require.NoError(t, bandwidth.NewFileSampleStore(cachePath).Save(stale))
	before, err := os.ReadFile(cachePath)
	require.NoError(t, err)

	svc, tester, measurer, reporter := newPipeline(t, cachePath)
	tester.EXPECT().Measure(gomock.Any()).Return(models.Throughput{}, errors.New("timeout"))
	measurer.EXPECT().Measure(gomock.Any(), gomock.Any()).Times(0)
	reporter.EXPECT().Send(gomock.Any(), gomock.Any()).Times(0)

	rec, err := svc.Tick(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, bandwidth.ErrSpeedTest)
	assert.Equal(t, models.TickSkipped, rec.Outcome)

	after, err := os.ReadFile(cachePath)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}
