package report

import (
	"database/sql"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	run_id     TEXT PRIMARY KEY,
	recipe     TEXT NOT NULL,
	instance   INTEGER NOT NULL,
	time       INTEGER NOT NULL,
	events     INTEGER NOT NULL,
	positives  INTEGER NOT NULL,
	negatives  INTEGER NOT NULL,
	auc        REAL,
	created_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS curve_points (
	run_id TEXT NOT NULL,
	k      INTEGER NOT NULL,
	fp     INTEGER NOT NULL,
	tp     INTEGER NOT NULL,
	PRIMARY KEY (run_id, k),
	FOREIGN KEY (run_id) REFERENCES runs(run_id)
);
`

// Store persists evaluation reports and their curves in SQLite.
type Store struct {
	db *sql.DB
}

// NewStore opens a SQLite database and runs migrations.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening run store %s: %w", dbPath, err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("enabling WAL on run store: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("enabling foreign keys on run store: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating runs and curve_points tables: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveReport stores r and its curve points in one transaction. A new run ID
// is assigned to r when it has none, only once the transaction commits.
func (s *Store) SaveReport(r *Report) error {
	runID := r.RunID
	if runID == "" {
		runID = uuid.New().String()
	}
	var auc sql.NullFloat64
	if r.Defined() {
		auc = sql.NullFloat64{Float64: r.AUC, Valid: true}
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO runs (run_id, recipe, instance, time, events, positives, negatives, auc, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		runID, r.Recipe, r.Instance, r.Time, r.Events, r.Positives, r.Negatives, auc,
		time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	if r.Curve != nil {
		stmt, err := tx.Prepare(`INSERT INTO curve_points (run_id, k, fp, tp) VALUES (?, ?, ?, ?)`)
		if err != nil {
			return fmt.Errorf("prepare curve insert: %w", err)
		}
		defer stmt.Close()
		for k := range r.Curve.X {
			if _, err := stmt.Exec(runID, k, r.Curve.X[k], r.Curve.Y[k]); err != nil {
				return fmt.Errorf("insert curve point %d: %w", k, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	r.RunID = runID
	return nil
}

// ListReports returns stored reports, optionally filtered by recipe
// (empty matches all), ordered by recipe, instance and time.
func (s *Store) ListReports(recipe string) ([]*Report, error) {
	rows, err := s.db.Query(
		`SELECT run_id, recipe, instance, time, events, positives, negatives, auc
		 FROM runs
		 WHERE ? = '' OR recipe = ?
		 ORDER BY recipe, instance, time, created_at`,
		recipe, recipe,
	)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var out []*Report
	for rows.Next() {
		var r Report
		var auc sql.NullFloat64
		if err := rows.Scan(&r.RunID, &r.Recipe, &r.Instance, &r.Time, &r.Events, &r.Positives, &r.Negatives, &auc); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		r.AUC = math.NaN()
		if auc.Valid {
			r.AUC = auc.Float64
		}
		out = append(out, &r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return out, nil
}

// CurvePoints returns the stored curve of a run as (fp, tp) sequences.
// Both are empty for runs with an undefined AUC.
func (s *Store) CurvePoints(runID string) (x, y []int, err error) {
	rows, err := s.db.Query(`SELECT fp, tp FROM curve_points WHERE run_id = ? ORDER BY k`, runID)
	if err != nil {
		return nil, nil, fmt.Errorf("query curve: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var fp, tp int
		if err := rows.Scan(&fp, &tp); err != nil {
			return nil, nil, fmt.Errorf("scan curve point: %w", err)
		}
		x = append(x, fp)
		y = append(y, tp)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("iterate curve: %w", err)
	}
	return x, y, nil
}
