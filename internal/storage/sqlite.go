// Package storage persists grove runs in SQLite.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-grove/internal/core"
)

// sqliteTime is the format CURRENT_TIMESTAMP is stored in.
const sqliteTime = "2006-01-02 15:04:05"

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// RunEntry is a stored run with its progress at the end.
type RunEntry struct {
	ID int64
	core.RunSummary
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			layout_id TEXT NOT NULL,
			score INTEGER NOT NULL DEFAULT 0,
			gems INTEGER NOT NULL DEFAULT 0,
			total_gems INTEGER NOT NULL DEFAULT 0,
			ponds INTEGER NOT NULL DEFAULT 0,
			total_ponds INTEGER NOT NULL DEFAULT 0,
			treasure INTEGER NOT NULL DEFAULT 0,
			won INTEGER NOT NULL DEFAULT 0,
			elapsed_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_layout ON runs(layout_id);
		CREATE INDEX IF NOT EXISTS idx_runs_best ON runs(layout_id, won DESC, score DESC, elapsed_ms ASC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// parseTime reads a DATETIME column, which the driver returns either as
// time.Time or as text.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse(sqliteTime, v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// ClearRuns deletes every run recorded for the layout and reports how many
// were removed.
func (s *Store) ClearRuns(layoutID string) (int64, error) {
	res, err := s.db.Exec("DELETE FROM runs WHERE layout_id = ?", layoutID)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot count cleared runs: %w", err)
	}
	return n, nil
}

// SaveRun records a run. Returns the ID of the inserted record.
func (s *Store) SaveRun(run core.RunSummary) (int64, error) {
	if run.LayoutID == "" {
		return 0, errors.New("storage: run has no layout")
	}
	res, err := s.db.Exec(
		`INSERT INTO runs
		 (layout_id, score, gems, total_gems, ponds, total_ponds, treasure, won, elapsed_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.LayoutID,
		run.Score,
		run.Gems,
		run.TotalGems,
		run.Ponds,
		run.TotalPonds,
		boolInt(run.Treasure),
		boolInt(run.Won),
		run.Elapsed.Milliseconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// BestRuns retrieves the best runs for a layout, or across all layouts
// when layoutID is empty. Won runs come first, then higher scores, then
// faster times.
func (s *Store) BestRuns(layoutID string, limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, layout_id, score, gems, total_gems, ponds, total_ponds,
		        treasure, won, elapsed_ms, created_at
		 FROM runs
		 WHERE ? = '' OR layout_id = ?
		 ORDER BY won DESC, score DESC, elapsed_ms ASC, id ASC
		 LIMIT ?`,
		layoutID, layoutID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []RunEntry
	for rows.Next() {
		var r RunEntry
		var treasure, won int
		var elapsedMs int64
		var createdAt any
		if err := rows.Scan(
			&r.ID,
			&r.LayoutID,
			&r.Score,
			&r.Gems,
			&r.TotalGems,
			&r.Ponds,
			&r.TotalPonds,
			&treasure,
			&won,
			&elapsedMs,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Treasure = treasure != 0
		r.Won = won != 0
		r.Elapsed = time.Duration(elapsedMs) * time.Millisecond
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// GameStats contains aggregated run statistics for a layout.
type GameStats struct {
	LayoutID   string
	Runs       int
	Wins       int
	HighScore  int
	AvgScore   float64
	BestTime   time.Duration // fastest win, zero when never won
	LastPlayed time.Time
}

// GetGameStats retrieves aggregated statistics for a layout.
func (s *Store) GetGameStats(layoutID string) (*GameStats, error) {
	stats := &GameStats{LayoutID: layoutID}

	var bestMs sql.NullInt64
	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(won), 0), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
		        MIN(CASE WHEN won = 1 THEN elapsed_ms END), MAX(created_at)
		 FROM runs WHERE layout_id = ?`,
		layoutID,
	).Scan(&stats.Runs, &stats.Wins, &stats.HighScore, &stats.AvgScore, &bestMs, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}

	if bestMs.Valid {
		stats.BestTime = time.Duration(bestMs.Int64) * time.Millisecond
	}
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}
