// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/node-reporter/internal/adapter"
	"github.com/MKhiriev/node-reporter/internal/clock"
	"github.com/MKhiriev/node-reporter/internal/config"
	"github.com/MKhiriev/node-reporter/internal/diskusage"
	"github.com/MKhiriev/node-reporter/internal/logger"
	"github.com/MKhiriev/node-reporter/internal/store"
	"github.com/MKhiriev/node-reporter/internal/utils"
	"github.com/MKhiriev/node-reporter/models"
)

// TelemetryDeps are the collaborators of a TelemetryService.
type TelemetryDeps struct {
	Bandwidth BandwidthProvider
	Measurer  diskusage.Measurer
	Reporter  adapter.ReportAdapter
	Journal   store.Journal
	Clock     clock.Clock
}

type telemetryService struct {
	deps TelemetryDeps
	ids  *utils.UUIDGenerator

	storagePath    string
	capacityBytes  int64
	contact        models.ContactInfo
	paymentAddress string

	logger *logger.Logger
}

// NewTelemetryService builds the tick pipeline. The capacity is converted
// once from storageCfg; an unusable size or unit is reported here rather
// than on every tick.
func NewTelemetryService(storageCfg config.Storage, paymentCfg config.Payment, contact models.ContactInfo, deps TelemetryDeps, logger *logger.Logger) (TelemetryService, error) {
	capacity, err := storageCfg.CapacityBytes()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCapacity, err)
	}

	if deps.Journal == nil {
		deps.Journal = store.NopJournal()
	}
	if deps.Clock == nil {
		deps.Clock = clock.Real()
	}

	return &telemetryService{
		deps:           deps,
		ids:            utils.NewUUIDGenerator(),
		storagePath:    storageCfg.Path,
		capacityBytes:  capacity,
		contact:        contact,
		paymentAddress: paymentCfg.Address,
		logger:         logger,
	}, nil
}

// Tick implements TelemetryService.
func (s *telemetryService) Tick(ctx context.Context) (models.TickRecord, error) {
	traceID := s.ids.Generate()
	log := s.logger.WithTrace(traceID)
	ctx = log.WithContext(utils.WithTraceID(ctx, traceID))

	rec := models.TickRecord{
		TraceID:   traceID,
		StartedAt: s.deps.Clock.Now(),
	}

	sample, err := s.deps.Bandwidth.RefreshIfStale(ctx)
	if err != nil {
		rec.Outcome = models.TickSkipped
		rec.Error = err.Error()
		log.Error().Err(err).Msg("telemetry report skipped: no fresh bandwidth sample")
		s.finish(ctx, &rec)
		return rec, err
	}

	used, err := s.deps.Measurer.Measure(ctx, s.storagePath)
	if err != nil {
		if !errors.Is(err, diskusage.ErrFilesystem) {
			rec.Outcome = models.TickFailed
			rec.Error = err.Error()
			log.Error().Err(err).Msg("telemetry report aborted while measuring data directory")
			s.finish(ctx, &rec)
			return rec, fmt.Errorf("%w: %w", ErrTickAborted, err)
		}
		log.Warn().Err(err).Str("path", s.storagePath).Msg("data directory not measurable, reporting it as empty")
		used = 0
	}

	report := models.NewTelemetryReport(
		models.StorageUsageSnapshot{TotalSpaceBytes: s.capacityBytes, UsedBytes: used},
		sample,
		s.contact,
		s.paymentAddress,
	)
	rec.Report = &report

	if err = s.deps.Reporter.Send(ctx, report); err != nil {
		rec.Outcome = models.TickFailed
		rec.Error = err.Error()
		log.Error().Err(err).Interface("report", report).Msg("failed to send telemetry report")
		s.finish(ctx, &rec)
		return rec, err
	}

	rec.Outcome = models.TickSent
	log.Info().Interface("report", report).Msg("telemetry report sent")
	s.finish(ctx, &rec)
	return rec, nil
}

// finish stamps the duration and journals rec. A journal failure is logged
// and never changes the tick outcome.
func (s *telemetryService) finish(ctx context.Context, rec *models.TickRecord) {
	rec.Duration = s.deps.Clock.Now().Sub(rec.StartedAt)

	if err := s.deps.Journal.RecordTick(context.WithoutCancel(ctx), *rec); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Msg("failed to journal telemetry tick")
	}
}
