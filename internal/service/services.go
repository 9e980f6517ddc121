package service

import (
	"github.com/MKhiriev/node-reporter/internal/clock"
	"github.com/MKhiriev/node-reporter/internal/config"
	"github.com/MKhiriev/node-reporter/internal/logger"
	"github.com/MKhiriev/node-reporter/models"
)

// Services groups the telemetry pipeline and the job that drives it.
type Services struct {
	TelemetryService TelemetryService
	ReportJob        ReportJob
}

// NewServices wires the telemetry service and its report job from cfg.
func NewServices(cfg *config.StructuredConfig, contact models.ContactInfo, deps TelemetryDeps, logger *logger.Logger) (*Services, error) {
	if deps.Clock == nil {
		deps.Clock = clock.Real()
	}

	telemetry, err := NewTelemetryService(cfg.Storage, cfg.Payment, contact, deps, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		TelemetryService: telemetry,
		ReportJob:        NewReportJob(telemetry, deps.Clock, cfg.Telemetry.Interval, logger),
	}, nil
}
