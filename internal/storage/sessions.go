package storage

import (
	"fmt"
	"time"
)

// SessionEntry is one play session.
type SessionEntry struct {
	ID        int64
	BoardID   string
	Rows      int
	Cols      int
	Completed bool
	Duration  int // seconds
	Finished  bool
	CreatedAt time.Time
}

// Stats aggregates all finished sessions.
type Stats struct {
	Started   int // sessions ever started
	Completed int // sessions that ended with every cell revealed
	Seconds   int // total time spent across finished sessions
}

// StartSession records the start of a session and returns its ID.
func (s *Store) StartSession(boardID string, rows, cols int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO sessions (board_id, rows, cols) VALUES (?, ?, ?)",
		boardID, rows, cols,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot start session: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// FinishSession stores the outcome of a session.
func (s *Store) FinishSession(id int64, completed bool, seconds int) error {
	res, err := s.db.Exec(
		`UPDATE sessions SET completed = ?, duration_secs = ?, finished = 1
		 WHERE id = ?`,
		boolInt(completed), seconds, id,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot finish session: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("storage: unknown session %d", id)
	}
	return nil
}

// Stats returns the started/completed counts and total seconds played.
func (s *Store) Stats() (Stats, error) {
	var st Stats
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(completed), 0),
		        COALESCE(SUM(duration_secs), 0)
		 FROM sessions`,
	).Scan(&st.Started, &st.Completed, &st.Seconds)
	if err != nil {
		return Stats{}, fmt.Errorf("storage: cannot query stats: %w", err)
	}
	return st, nil
}

// RecentSessions returns the newest sessions first.
func (s *Store) RecentSessions(limit int) ([]SessionEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, board_id, rows, cols, completed, duration_secs, finished, created_at
		 FROM sessions
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var entries []SessionEntry
	for rows.Next() {
		var e SessionEntry
		var completed, finished int
		var createdAt any
		if err := rows.Scan(&e.ID, &e.BoardID, &e.Rows, &e.Cols, &completed, &e.Duration, &finished, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Completed = completed != 0
		e.Finished = finished != 0
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
