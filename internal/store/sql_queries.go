// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"
)

const tickJournalTable = "tick_journal"

var tickJournalColumns = []string{
	"trace_id",
	"started_at",
	"duration_ms",
	"outcome",
	"error",
	"report",
}

// buildInsertTickQuery builds the INSERT of one journal row. started_at is
// stored as Unix milliseconds; report is NULL for skipped ticks.
func buildInsertTickQuery(row tickRow) (string, []any, error) {
	return sq.Insert(tickJournalTable).
		Columns(tickJournalColumns...).
		Values(row.TraceID, row.StartedAt, row.DurationMS, row.Outcome, row.Error, row.Report).
		ToSql()
}

// buildPruneQuery deletes every row except the newest keep.
func buildPruneQuery(keep int) (string, []any, error) {
	newest := sq.Select("id").
		From(tickJournalTable).
		OrderBy("id DESC").
		Limit(uint64(keep))

	sub, args, err := newest.ToSql()
	if err != nil {
		return "", nil, err
	}

	return sq.Delete(tickJournalTable).
		Where("id NOT IN ("+sub+")", args...).
		ToSql()
}

// buildRecentQuery selects the newest limit rows.
func buildRecentQuery(limit int) (string, []any, error) {
	return sq.Select(tickJournalColumns...).
		From(tickJournalTable).
		OrderBy("id DESC").
		Limit(uint64(limit)).
		ToSql()
}
