package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/node-reporter/internal/config"
	"github.com/MKhiriev/node-reporter/internal/logger"
)

// DefaultJournalRetention is the number of ticks kept in the journal.
const DefaultJournalRetention = 1000

// NewJournal returns the tick journal configured by cfg. When
// cfg.JournalDSN is empty the journal discards everything.
//
// Otherwise it:
//  1. Opens an SQLite connection to cfg.JournalDSN, creating the database
//     file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Returns a [Journal] keeping the last [DefaultJournalRetention] ticks.
func NewJournal(ctx context.Context, cfg config.Storage, logger *logger.Logger) (Journal, error) {
	if cfg.JournalDSN == "" {
		logger.Debug().Msg("tick journal disabled")
		return NopJournal(), nil
	}

	db, err := NewConnectSQLite(ctx, cfg.JournalDSN, logger)
	if err != nil {
		return nil, fmt.Errorf("open tick journal: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate tick journal: %w", err)
	}

	return newSQLJournal(db, DefaultJournalRetention, logger), nil
}
