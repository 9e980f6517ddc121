// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/node-reporter/internal/logger"
	"github.com/MKhiriev/node-reporter/models"
)

// tickRow is the column form of a [models.TickRecord].
type tickRow struct {
	TraceID    string
	StartedAt  int64
	DurationMS int64
	Outcome    string
	Error      string
	Report     sql.NullString
}

func toTickRow(rec models.TickRecord) (tickRow, error) {
	row := tickRow{
		TraceID:    rec.TraceID,
		StartedAt:  rec.StartedAt.UnixMilli(),
		DurationMS: rec.Duration.Milliseconds(),
		Outcome:    string(rec.Outcome),
		Error:      rec.Error,
	}

	if rec.Report != nil {
		data, err := json.Marshal(rec.Report)
		if err != nil {
			return tickRow{}, fmt.Errorf("encode report: %w", err)
		}
		row.Report = sql.NullString{String: string(data), Valid: true}
	}
	return row, nil
}

func (r tickRow) toRecord() (models.TickRecord, error) {
	rec := models.TickRecord{
		TraceID:   r.TraceID,
		StartedAt: time.UnixMilli(r.StartedAt).UTC(),
		Duration:  time.Duration(r.DurationMS) * time.Millisecond,
		Outcome:   models.TickOutcome(r.Outcome),
		Error:     r.Error,
	}

	if r.Report.Valid {
		var report models.TelemetryReport
		if err := json.Unmarshal([]byte(r.Report.String), &report); err != nil {
			return models.TickRecord{}, fmt.Errorf("decode report of tick %s: %w", r.TraceID, err)
		}
		rec.Report = &report
	}
	return rec, nil
}

type sqlJournal struct {
	db     *DB
	retain int
	logger *logger.Logger
}

func newSQLJournal(db *DB, retain int, logger *logger.Logger) *sqlJournal {
	return &sqlJournal{db: db, retain: retain, logger: logger}
}

// RecordTick inserts rec and prunes old rows in one transaction.
func (j *sqlJournal) RecordTick(ctx context.Context, rec models.TickRecord) error {
	log := logger.FromContext(ctx)

	row, err := toTickRow(rec)
	if err != nil {
		return err
	}

	insertQuery, insertArgs, err := buildInsertTickQuery(row)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	pruneQuery, pruneArgs, err := buildPruneQuery(j.retain)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := j.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "sqlJournal.RecordTick").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
		log.Err(err).
			Str("func", "sqlJournal.RecordTick").
			Str("trace_id", rec.TraceID).
			Msg("failed to insert tick")
		return fmt.Errorf("%w: insert tick: %w", ErrExecutingStatement, err)
	}

	if _, err = tx.ExecContext(ctx, pruneQuery, pruneArgs...); err != nil {
		log.Err(err).Str("func", "sqlJournal.RecordTick").Msg("failed to prune journal")
		return fmt.Errorf("%w: prune journal: %w", ErrExecutingStatement, err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}
	return nil
}

// Recent returns up to limit ticks, newest first.
func (j *sqlJournal) Recent(ctx context.Context, limit int) ([]models.TickRecord, error) {
	if limit <= 0 {
		return nil, ErrInvalidLimit
	}

	query, args, err := buildRecentQuery(limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := j.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	records := make([]models.TickRecord, 0, limit)
	for rows.Next() {
		var row tickRow
		if err = rows.Scan(&row.TraceID, &row.StartedAt, &row.DurationMS, &row.Outcome, &row.Error, &row.Report); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		rec, err := row.toRecord()
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return records, nil
}

func (j *sqlJournal) Close() error {
	if err := j.db.Close(); err != nil && !errors.Is(err, sql.ErrConnDone) {
		return err
	}
	return nil
}

type nopJournal struct{}

// NopJournal returns a [Journal] that records nothing.
func NopJournal() Journal {
	return nopJournal{}
}

func (nopJournal) RecordTick(context.Context, models.TickRecord) error { return nil }

func (nopJournal) Recent(context.Context, int) ([]models.TickRecord, error) { return nil, nil }

func (nopJournal) Close() error { return nil }
