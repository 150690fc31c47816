/*
 * micronix - host reconnaissance to privilege-escalation planning problems
 * License: MIT
 */

// Package stats records one row per extraction run in a local SQLite
// database, for later analysis of extraction/solve performance across
// hosts.
package stats

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// DB wraps the run-metadata database.
type DB struct {
	conn *sql.DB
}

// Open opens (creating if necessary) the sqlite database at path and
// ensures the runs table exists.
func Open(path string) (*DB, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("stats: open %s: %w", path, err)
	}

	_, err = conn.Exec(`
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			ami TEXT,
			start_timestamp DATETIME,
			end_timestamp DATETIME,
			facts_extracted INTEGER DEFAULT 0,
			state TEXT,
			problem_generation_time REAL,
			solve_time REAL,
			cve_patch_checked INTEGER DEFAULT 0
		)
	`)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("stats: create runs table: %w", err)
	}

	return &DB{conn: conn}, nil
}

// Run is one row of run metadata.
type Run struct {
	ID                     int64
	AMI                    string
	StartTimestamp         time.Time
	EndTimestamp           time.Time
	FactsExtracted         int
	State                  string
	ProblemGenerationTime  time.Duration
	SolveTime              time.Duration
	CVEPatchChecked        bool
}

// InsertRun writes one run row and returns the assigned row id.
func (d *DB) InsertRun(r Run) (int64, error) {
	res, err := d.conn.Exec(
		`INSERT INTO runs (ami, start_timestamp, end_timestamp, facts_extracted, state, problem_generation_time, solve_time, cve_patch_checked)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.AMI, r.StartTimestamp, r.EndTimestamp, r.FactsExtracted, r.State,
		r.ProblemGenerationTime.Seconds(), r.SolveTime.Seconds(), boolToInt(r.CVEPatchChecked),
	)
	if err != nil {
		return 0, fmt.Errorf("stats: insert run: %w", err)
	}
	return res.LastInsertId()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Close closes the underlying database handle.
func (d *DB) Close() error {
	return d.conn.Close()
}
