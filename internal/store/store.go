// Package store persists run reports in SQLite, building a queryable run
// history alongside the NDJSON sinks.
package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/marisvale/floret/internal/report"
)

// ErrNotFound is returned when no run exists for the requested ID.
var ErrNotFound = errors.New("run not found")

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	run_id             TEXT PRIMARY KEY,
	created_at         TEXT NOT NULL,
	validation_start   INTEGER NOT NULL,
	validation_end     INTEGER NOT NULL,
	max_depth          INTEGER NOT NULL,
	train_correct      INTEGER NOT NULL,
	train_total        INTEGER NOT NULL,
	validation_correct INTEGER NOT NULL,
	validation_total   INTEGER NOT NULL,
	report_json        TEXT NOT NULL
);
`

// Store manages the run history in SQLite.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) a SQLite database at path and runs
// migrations.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveRun inserts a run report. The full report, node dump included, is
// stored as JSON next to the indexed summary columns.
func (s *Store) SaveRun(rep report.Report) error {
	data, err := json.Marshal(rep)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	_, err = s.db.Exec(
		`INSERT INTO runs (run_id, created_at, validation_start, validation_end, max_depth,
		                   train_correct, train_total, validation_correct, validation_total, report_json)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rep.RunID, rep.CreatedAt.Format(time.RFC3339Nano),
		rep.ValidationStart, rep.ValidationEnd, rep.MaxDepth,
		rep.Train.Correct, rep.Train.Total,
		rep.Validation.Correct, rep.Validation.Total,
		string(data),
	)
	if err != nil {
		return fmt.Errorf("insert run %s: %w", rep.RunID, err)
	}
	return nil
}

// GetRun retrieves a full run report by ID.
func (s *Store) GetRun(id string) (report.Report, error) {
	var data string
	err := s.db.QueryRow(`SELECT report_json FROM runs WHERE run_id = ?`, id).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return report.Report{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return report.Report{}, fmt.Errorf("get run %s: %w", id, err)
	}
	var rep report.Report
	if err := json.Unmarshal([]byte(data), &rep); err != nil {
		return report.Report{}, fmt.Errorf("unmarshal run %s: %w", id, err)
	}
	return rep, nil
}

// RunSummary is one row of the run history listing.
type RunSummary struct {
	RunID      string
	CreatedAt  time.Time
	MaxDepth   int
	Train      report.Accuracy
	Validation report.Accuracy
}

// ListRuns returns up to limit run summaries, newest first.
func (s *Store) ListRuns(limit int) ([]RunSummary, error) {
	rows, err := s.db.Query(
		`SELECT run_id, created_at, max_depth,
		        train_correct, train_total, validation_correct, validation_total
		 FROM runs ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var out []RunSummary
	for rows.Next() {
		var sum RunSummary
		var createdStr string
		if err := rows.Scan(&sum.RunID, &createdStr, &sum.MaxDepth,
			&sum.Train.Correct, &sum.Train.Total,
			&sum.Validation.Correct, &sum.Validation.Total); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		sum.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		out = append(out, sum)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	return out, nil
}
