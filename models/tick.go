package models

import "time"

// TickOutcome classifies how a report tick ended.
type TickOutcome string

const (
	// TickSent means a report was built and accepted by the collector.
	TickSent TickOutcome = "sent"
	// TickSkipped means no fresh bandwidth sample was available, so no
	// report was built.
	TickSkipped TickOutcome = "skipped"
	// TickFailed means a report was built but delivery failed.
	TickFailed TickOutcome = "failed"
)

// TickRecord is the journal entry written after every tick.
type TickRecord struct {
	TraceID   string
	StartedAt time.Time
	Duration  time.Duration
	Outcome   TickOutcome
	Error     string
	// Report is nil for skipped ticks.
	Report *TelemetryReport
}
