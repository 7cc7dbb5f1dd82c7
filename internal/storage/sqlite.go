// Package storage persists high scores and finished sessions.
// Session history uses the pure-Go modernc.org/sqlite driver to avoid CGO.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/pixel-snake/internal/config"
	"github.com/vovakirdan/pixel-snake/internal/games/snake"
)

// Store manages the SQLite database holding session history.
type Store struct {
	db *sql.DB
}

// SessionRecord is one finished game.
type SessionRecord struct {
	ID         int64
	SessionID  string
	Mode       string
	Difficulty string
	Score      int
	Length     int
	Ticks      int64
	EndCause   string
	NewHigh    bool
	CreatedAt  time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	dbPath, err := expandHome(dbPath)
	if err != nil {
		return nil, err
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
		CREATE TABLE IF NOT EXISTS sessions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL UNIQUE,
			mode TEXT NOT NULL,
			difficulty TEXT NOT NULL,
			score INTEGER NOT NULL,
			length INTEGER NOT NULL,
			ticks INTEGER NOT NULL DEFAULT 0,
			end_cause TEXT NOT NULL,
			new_high INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_top ON sessions(difficulty, score DESC);
		CREATE INDEX IF NOT EXISTS idx_sessions_created ON sessions(created_at DESC);
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

// SaveSession inserts a finished game and returns its row ID.
// A zero CreatedAt uses the database clock.
func (s *Store) SaveSession(r SessionRecord) (int64, error) {
	var createdAt any
	if !r.CreatedAt.IsZero() {
		createdAt = r.CreatedAt.UTC().Format(timeLayout)
	}

	res, err := s.db.Exec(
		`INSERT INTO sessions
		 (session_id, mode, difficulty, score, length, ticks, end_cause, new_high, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, COALESCE(?, CURRENT_TIMESTAMP))`,
		r.SessionID,
		r.Mode,
		r.Difficulty,
		r.Score,
		r.Length,
		r.Ticks,
		r.EndCause,
		r.NewHigh,
		createdAt,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save session: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// SaveSessionResult implements snake.ResultRecorder.
func (s *Store) SaveSessionResult(r snake.Result) error {
	_, err := s.SaveSession(SessionRecord{
		SessionID:  r.ID,
		Mode:       r.Mode.String(),
		Difficulty: string(r.Difficulty),
		Score:      r.Score,
		Length:     r.Length,
		Ticks:      int64(r.Ticks),
		EndCause:   string(r.Cause),
		NewHigh:    r.NewHigh,
		CreatedAt:  r.EndedAt,
	})
	return err
}

var _ snake.ResultRecorder = (*Store)(nil)

const sessionColumns = `id, session_id, mode, difficulty, score, length, ticks, end_cause, new_high, created_at`

// SessionByID retrieves a session by its session ID.
// Returns nil, nil when it does not exist.
func (s *Store) SessionByID(sessionID string) (*SessionRecord, error) {
	row := s.db.QueryRow(
		`SELECT `+sessionColumns+` FROM sessions WHERE session_id = ?`,
		sessionID,
	)
	r, err := scanSession(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query session: %w", err)
	}
	return &r, nil
}

// TopSessions retrieves the best sessions for a difficulty, highest first.
// An empty difficulty covers all of them.
func (s *Store) TopSessions(d config.Difficulty, limit int) ([]SessionRecord, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.Query(
		`SELECT `+sessionColumns+`
		 FROM sessions
		 WHERE ? = '' OR difficulty = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		string(d), string(d), limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	return collectSessions(rows)
}

// RecentSessions retrieves the most recent sessions, newest first.
func (s *Store) RecentSessions(limit int) ([]SessionRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.Query(
		`SELECT `+sessionColumns+`
		 FROM sessions
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	return collectSessions(rows)
}

// ClearSessions deletes the history for a difficulty, or everything when d is empty.
func (s *Store) ClearSessions(d config.Difficulty) error {
	_, err := s.db.Exec("DELETE FROM sessions WHERE ? = '' OR difficulty = ?", string(d), string(d))
	if err != nil {
		return fmt.Errorf("storage: cannot clear sessions: %w", err)
	}
	return nil
}

// Stats contains aggregated statistics for one difficulty.
type Stats struct {
	Difficulty   string
	Games        int
	HighScore    int
	AvgScore     float64
	TotalTicks   int64
	LongestSnake int
	LastPlayed   time.Time
}

// AllStats retrieves statistics for every difficulty that has been played.
func (s *Store) AllStats() (map[string]*Stats, error) {
	rows, err := s.db.Query(
		`SELECT difficulty, COUNT(*), MAX(score), AVG(score), SUM(ticks), MAX(length), MAX(created_at)
		 FROM sessions
		 GROUP BY difficulty`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*Stats)
	for rows.Next() {
		var st Stats
		var lastPlayed any
		if err := rows.Scan(&st.Difficulty, &st.Games, &st.HighScore, &st.AvgScore, &st.TotalTicks, &st.LongestSnake, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.LastPlayed = parseTime(lastPlayed)
		stats[st.Difficulty] = &st
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return stats, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSession(sc scanner) (SessionRecord, error) {
	var r SessionRecord
	var createdAt any
	err := sc.Scan(
		&r.ID,
		&r.SessionID,
		&r.Mode,
		&r.Difficulty,
		&r.Score,
		&r.Length,
		&r.Ticks,
		&r.EndCause,
		&r.NewHigh,
		&createdAt,
	)
	if err != nil {
		return r, err
	}
	r.CreatedAt = parseTime(createdAt)
	return r, nil
}

func collectSessions(rows *sql.Rows) ([]SessionRecord, error) {
	defer rows.Close()

	var out []SessionRecord
	for rows.Next() {
		r, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return out, nil
}

const timeLayout = "2006-01-02 15:04:05"

// parseTime handles the driver returning either time.Time or a string.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(timeLayout, t); err == nil {
			return parsed
		}
		if parsed, err := time.Parse(time.RFC3339, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
