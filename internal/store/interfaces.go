package store

import (
	"context"

	"github.com/MKhiriev/node-reporter/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/journal_mock.go -package=mock

// Journal keeps a bounded history of report ticks.
type Journal interface {
	// RecordTick appends rec and drops entries beyond the retention limit.
	RecordTick(ctx context.Context, rec models.TickRecord) error
	// Recent returns up to limit entries, newest first.
	Recent(ctx context.Context, limit int) ([]models.TickRecord, error)
	Close() error
}
