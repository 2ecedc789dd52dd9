// Package storage provides SQLite-based persistence for scores, run
// history and the player profile.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// ScoreEntry represents a single high score record.
type ScoreEntry struct {
	ID        int64
	GameID    string
	Score     int
	CreatedAt time.Time
}

// RunEntry represents one finished run.
type RunEntry struct {
	ID        int64
	GameID    string
	Mode      string // "story" or "endless"
	Score     int
	Distance  float64
	Level     int
	Gems      int
	CreatedAt time.Time
}

// Profile is the persistent player profile: the gem wallet and the
// abilities bought in the shop survive across runs.
type Profile struct {
	Gems        int
	DoubleJump  bool
	Immortality bool
	LaneCount   int
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
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
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_game_id ON scores(game_id);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(game_id, score DESC);

		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			mode TEXT NOT NULL,
			score INTEGER NOT NULL DEFAULT 0,
			distance REAL NOT NULL DEFAULT 0,
			level INTEGER NOT NULL DEFAULT 1,
			gems INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_game_id ON runs(game_id);

		CREATE TABLE IF NOT EXISTS profile (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			gems INTEGER NOT NULL DEFAULT 0,
			double_jump INTEGER NOT NULL DEFAULT 0,
			immortality INTEGER NOT NULL DEFAULT 0,
			lane_count INTEGER NOT NULL DEFAULT 0
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveScore records a score for a game.
func (s *Store) SaveScore(gameID string, score int) error {
	_, err := s.db.Exec(
		`INSERT INTO scores (game_id, score) VALUES (?, ?)`,
		gameID, score,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save score: %w", err)
	}
	return nil
}

// TopScores returns the top N scores for a game, highest first.
func (s *Store) TopScores(gameID string, limit int) ([]ScoreEntry, error) {
	rows, err := s.db.Query(
		`SELECT id, game_id, score, created_at
		 FROM scores WHERE game_id = ?
		 ORDER BY score DESC, created_at ASC LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		if err := rows.Scan(&e.ID, &e.GameID, &e.Score, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan score: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// HighScore returns the best score for a game, or 0 if none exists.
func (s *Store) HighScore(gameID string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		`SELECT MAX(score) FROM scores WHERE game_id = ?`,
		gameID,
	).Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	return int(score.Int64), nil
}

// SaveRun records one finished run.
func (s *Store) SaveRun(run RunEntry) error {
	_, err := s.db.Exec(
		`INSERT INTO runs (game_id, mode, score, distance, level, gems)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		run.GameID, run.Mode, run.Score, run.Distance, run.Level, run.Gems,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save run: %w", err)
	}
	return nil
}

// RecentRuns returns the most recent runs for a game, newest first.
func (s *Store) RecentRuns(gameID string, limit int) ([]RunEntry, error) {
	rows, err := s.db.Query(
		`SELECT id, game_id, mode, score, distance, level, gems, created_at
		 FROM runs WHERE game_id = ?
		 ORDER BY created_at DESC LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var entries []RunEntry
	for rows.Next() {
		var e RunEntry
		if err := rows.Scan(&e.ID, &e.GameID, &e.Mode, &e.Score, &e.Distance,
			&e.Level, &e.Gems, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan run: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// LoadProfile returns the stored player profile, or a zero profile if
// none was saved yet.
func (s *Store) LoadProfile() (Profile, error) {
	var p Profile
	var dj, im int
	err := s.db.QueryRow(
		`SELECT gems, double_jump, immortality, lane_count FROM profile WHERE id = 1`,
	).Scan(&p.Gems, &dj, &im, &p.LaneCount)
	if err == sql.ErrNoRows {
		return Profile{}, nil
	}
	if err != nil {
		return Profile{}, fmt.Errorf("storage: cannot load profile: %w", err)
	}
	p.DoubleJump = dj != 0
	p.Immortality = im != 0
	return p, nil
}

// SaveProfile upserts the player profile.
func (s *Store) SaveProfile(p Profile) error {
	dj, im := 0, 0
	if p.DoubleJump {
		dj = 1
	}
	if p.Immortality {
		im = 1
	}
	_, err := s.db.Exec(
		`INSERT INTO profile (id, gems, double_jump, immortality, lane_count)
		 VALUES (1, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			gems = excluded.gems,
			double_jump = excluded.double_jump,
			immortality = excluded.immortality,
			lane_count = excluded.lane_count`,
		p.Gems, dj, im, p.LaneCount,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save profile: %w", err)
	}
	return nil
}
