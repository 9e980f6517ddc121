package app

import (
	"context"

	"github.com/MKhiriev/node-reporter/internal/logger"
	"github.com/MKhiriev/node-reporter/internal/store"
	"github.com/MKhiriev/node-reporter/models"
)

// journalSummaryTicks is how many past ticks the startup summary covers.
const journalSummaryTicks = 10

// logJournalSummary logs the outcome of the last ticks recorded before this
// start, so an operator sees at a glance whether reports were going out.
func logJournalSummary(ctx context.Context, journal store.Journal, log *logger.Logger) {
	recent, err := journal.Recent(ctx, journalSummaryTicks)
	if err != nil {
		log.Warn().Err(err).Msg("failed to read tick journal")
		return
	}
	if len(recent) == 0 {
		return
	}

	counts := make(map[models.TickOutcome]int, 3)
	for _, rec := range recent {
		counts[rec.Outcome]++
	}

	last := recent[0]
	log.Info().
		Str("last_trace_id", last.TraceID).
		Time("last_started_at", last.StartedAt.UTC()).
		Str("last_outcome", string(last.Outcome)).
		Int("sent", counts[models.TickSent]).
		Int("skipped", counts[models.TickSkipped]).
		Int("failed", counts[models.TickFailed]).
		Msg(MsgJournalSummary)
}
