package service

import (
	"context"
	"time"

	"github.com/MKhiriev/node-reporter/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// BandwidthProvider hands out a bandwidth sample no older than the
// freshness window. *bandwidth.Cache implements it.
type BandwidthProvider interface {
	RefreshIfStale(ctx context.Context) (models.BandwidthSample, error)
}

// TelemetryService performs one report tick.
type TelemetryService interface {
	// Tick refreshes bandwidth if needed, measures the data directory,
	// builds a report and delivers it. The returned record describes the
	// outcome and is also written to the journal. The error is non-nil for
	// skipped and failed ticks.
	Tick(ctx context.Context) (models.TickRecord, error)
}

// ReportJob runs TelemetryService.Tick periodically.
type ReportJob interface {
	// Start runs the first tick immediately and then one tick per
	// interval, measured from the end of the previous tick.
	Start(ctx context.Context)
	// Stop cancels the loop and waits for it to exit.
	Stop()
	// NextFireTime returns when the next tick is due, or the zero time if
	// the job is not running.
	NextFireTime() time.Time
}
