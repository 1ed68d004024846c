// Package replay records board snapshots so a session can be stepped
// through afterwards.
package replay

import (
	"time"

	"github.com/addisonking/zsweep/internal/board"
	"github.com/addisonking/zsweep/internal/motion"
)

// Snapshot is one recorded frame. The board is a private copy and must not
// be modified.
type Snapshot struct {
	Board     *board.Board
	Cursor    motion.Cursor
	Timestamp time.Time
}

// Recorder keeps the frame history of a session.
type Recorder struct {
	frames    []Snapshot
	maxFrames int
	now       func() time.Time
}

// Option configures a Recorder.
type Option func(*Recorder)

// WithMaxFrames keeps only the newest n frames. Zero means unlimited.
func WithMaxFrames(n int) Option {
	return func(r *Recorder) {
		if n > 0 {
			r.maxFrames = n
		}
	}
}

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(r *Recorder) {
		r.now = now
	}
}

// NewRecorder creates an empty recorder.
func NewRecorder(opts ...Option) *Recorder {
	r := &Recorder{now: time.Now}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Reset drops every frame.
func (r *Recorder) Reset() {
	r.frames = nil
}

// Capture appends a deep copy of the board and the cursor.
func (r *Recorder) Capture(b *board.Board, cur motion.Cursor) {
	r.frames = append(r.frames, Snapshot{
		Board:     b.Clone(),
		Cursor:    cur,
		Timestamp: r.now(),
	})

	if r.maxFrames > 0 && len(r.frames) > r.maxFrames {
		// Drop the oldest frames
		r.frames = append(r.frames[:0:0], r.frames[len(r.frames)-r.maxFrames:]...)
	}
}

// Append adds an already-built snapshot, e.g. one loaded from storage.
func (r *Recorder) Append(s Snapshot) {
	r.frames = append(r.frames, s)
}

// Len returns the number of frames.
func (r *Recorder) Len() int {
	return len(r.frames)
}

// Frame returns frame i, clamping i into range. It returns false only when
// there are no frames.
func (r *Recorder) Frame(i int) (Snapshot, bool) {
	if len(r.frames) == 0 {
		return Snapshot{}, false
	}
	if i < 0 {
		return r.frames[0], true
	}
	if i >= len(r.frames) {
		return r.frames[len(r.frames)-1], true
	}
	return r.frames[i], true
}

// Frames returns a copy of the frame slice.
func (r *Recorder) Frames() []Snapshot {
	out := make([]Snapshot, len(r.frames))
	copy(out, r.frames)
	return out
}

// Duration returns the time between the first and last frame.
func (r *Recorder) Duration() time.Duration {
	if len(r.frames) < 2 {
		return 0
	}
	return r.frames[len(r.frames)-1].Timestamp.Sub(r.frames[0].Timestamp)
}
