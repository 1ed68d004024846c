package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/addisonking/zsweep/internal/board"
	"github.com/addisonking/zsweep/internal/motion"
	"github.com/addisonking/zsweep/internal/replay"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("storage: not found")

// ReplayEntry describes a stored replay without its frames.
type ReplayEntry struct {
	ID         int64
	SessionID  int64
	BoardID    string
	Rows       int
	Cols       int
	FrameCount int
	CreatedAt  time.Time
}

// SaveReplay stores every frame of a session in one transaction.
// Returns the ID of the replay.
func (s *Store) SaveReplay(sessionID int64, boardID string, frames []replay.Snapshot) (int64, error) {
	if len(frames) == 0 {
		return 0, fmt.Errorf("storage: replay has no frames")
	}
	first := frames[0].Board

	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	//nolint:errcheck // Rollback after Commit is a no-op
	defer tx.Rollback()

	res, err := tx.Exec(
		`INSERT INTO replays (session_id, board_id, rows, cols, frame_count)
		 VALUES (?, ?, ?, ?, ?)`,
		sessionID, boardID, first.Rows(), first.Cols(), len(frames),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save replay: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	stmt, err := tx.Prepare(
		`INSERT INTO replay_frames (replay_id, seq, cursor_r, cursor_c, mask, ts_ms)
		 VALUES (?, ?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot prepare frame insert: %w", err)
	}
	defer stmt.Close()

	for i, f := range frames {
		if _, err := stmt.Exec(id, i, f.Cursor.R, f.Cursor.C, f.Board.String(), f.Timestamp.UnixMilli()); err != nil {
			return 0, fmt.Errorf("storage: cannot save frame %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("storage: cannot commit replay: %w", err)
	}
	return id, nil
}

// ListReplays returns the newest replays first.
func (s *Store) ListReplays(limit int) ([]ReplayEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, session_id, board_id, rows, cols, frame_count, created_at
		 FROM replays
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query replays: %w", err)
	}
	defer rows.Close()

	var entries []ReplayEntry
	for rows.Next() {
		var e ReplayEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.SessionID, &e.BoardID, &e.Rows, &e.Cols, &e.FrameCount, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// LoadReplay returns a stored replay with its frames in order.
// Returns ErrNotFound if the replay does not exist.
func (s *Store) LoadReplay(id int64) (ReplayEntry, []replay.Snapshot, error) {
	var e ReplayEntry
	var createdAt any
	err := s.db.QueryRow(
		`SELECT id, session_id, board_id, rows, cols, frame_count, created_at
		 FROM replays WHERE id = ?`,
		id,
	).Scan(&e.ID, &e.SessionID, &e.BoardID, &e.Rows, &e.Cols, &e.FrameCount, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return ReplayEntry{}, nil, fmt.Errorf("%w: replay %d", ErrNotFound, id)
	}
	if err != nil {
		return ReplayEntry{}, nil, fmt.Errorf("storage: cannot query replay: %w", err)
	}
	e.CreatedAt = parseTime(createdAt)

	rows, err := s.db.Query(
		`SELECT cursor_r, cursor_c, mask, ts_ms
		 FROM replay_frames
		 WHERE replay_id = ?
		 ORDER BY seq`,
		id,
	)
	if err != nil {
		return ReplayEntry{}, nil, fmt.Errorf("storage: cannot query frames: %w", err)
	}
	defer rows.Close()

	frames := make([]replay.Snapshot, 0, e.FrameCount)
	for rows.Next() {
		var cur motion.Cursor
		var mask string
		var ts int64
		if err := rows.Scan(&cur.R, &cur.C, &mask, &ts); err != nil {
			return ReplayEntry{}, nil, fmt.Errorf("storage: cannot scan frame: %w", err)
		}
		b, err := board.Parse(strings.Split(mask, "\n"))
		if err != nil {
			return ReplayEntry{}, nil, fmt.Errorf("storage: frame %d: %w", len(frames), err)
		}
		frames = append(frames, replay.Snapshot{
			Board:     b,
			Cursor:    cur,
			Timestamp: time.UnixMilli(ts),
		})
	}

	if err := rows.Err(); err != nil {
		return ReplayEntry{}, nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return e, frames, nil
}
