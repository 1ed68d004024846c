package replay

import (
	"testing"
	"time"

	"github.com/addisonking/zsweep/internal/board"
	"github.com/addisonking/zsweep/internal/motion"
)

// fakeClock returns times one second apart.
func fakeClock() func() time.Time {
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	n := 0
	return func() time.Time {
		n++
		return t0.Add(time.Duration(n-1) * time.Second)
	}
}

func TestCaptureCopiesBoard(t *testing.T) {
	rec := NewRecorder(WithClock(fakeClock()))
	b := board.MustParse("##", "##")

	rec.Capture(b, motion.Cursor{R: 0, C: 0})
	b.Reveal(0, 0)
	rec.Capture(b, motion.Cursor{R: 0, C: 1})

	if rec.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", rec.Len())
	}

	first, _ := rec.Frame(0)
	if first.Board.Revealed(0, 0) {
		t.Error("first snapshot should not see the later reveal")
	}
	second, _ := rec.Frame(1)
	if !second.Board.Revealed(0, 0) {
		t.Error("second snapshot should include the reveal")
	}
	if second.Cursor != (motion.Cursor{R: 0, C: 1}) {
		t.Errorf("cursor = %v", second.Cursor)
	}
	if rec.Duration() != time.Second {
		t.Errorf("Duration() = %v, want 1s", rec.Duration())
	}
}

func TestFrameClamps(t *testing.T) {
	rec := NewRecorder()
	if _, ok := rec.Frame(0); ok {
		t.Error("Frame on empty recorder should report false")
	}

	b := board.MustParse("#")
	for c := 0; c < 3; c++ {
		rec.Capture(b, motion.Cursor{R: 0, C: c})
	}

	tests := []struct {
		index    int
		expected int
	}{
		{-5, 0},
		{0, 0},
		{1, 1},
		{2, 2},
		{99, 2},
	}

	for _, tt := range tests {
		f, ok := rec.Frame(tt.index)
		if !ok {
			t.Fatalf("Frame(%d) reported empty", tt.index)
		}
		if f.Cursor.C != tt.expected {
			t.Errorf("Frame(%d) cursor col = %d, want %d", tt.index, f.Cursor.C, tt.expected)
		}
	}
}

func TestMaxFramesDropsOldest(t *testing.T) {
	rec := NewRecorder(WithMaxFrames(2))
	b := board.MustParse("#")
	for c := 0; c < 5; c++ {
		rec.Capture(b, motion.Cursor{R: 0, C: c})
	}

	if rec.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", rec.Len())
	}
	f, _ := rec.Frame(0)
	if f.Cursor.C != 3 {
		t.Errorf("oldest kept frame col = %d, want 3", f.Cursor.C)
	}
}

func TestReset(t *testing.T) {
	rec := NewRecorder()
	rec.Capture(board.MustParse("#"), motion.Cursor{})
	rec.Reset()
	if rec.Len() != 0 {
		t.Errorf("Len() after Reset = %d", rec.Len())
	}
	if len(rec.Frames()) != 0 {
		t.Error("Frames() after Reset should be empty")
	}
}
