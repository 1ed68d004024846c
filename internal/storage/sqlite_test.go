package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/addisonking/zsweep/internal/board"
	"github.com/addisonking/zsweep/internal/motion"
	"github.com/addisonking/zsweep/internal/replay"
)

// openTestStore opens a fresh database in a temp directory.
func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreSessionsAndStats(t *testing.T) {
	store := openTestStore(t)

	// Empty database
	st, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if st != (Stats{}) {
		t.Errorf("Expected zero stats, got %+v", st)
	}

	id1, err := store.StartSession("beginner", 9, 9)
	if err != nil {
		t.Fatalf("StartSession() failed: %v", err)
	}
	id2, err := store.StartSession("expert", 16, 30)
	if err != nil {
		t.Fatalf("StartSession() failed: %v", err)
	}
	if _, err := store.StartSession("beginner", 9, 9); err != nil {
		t.Fatalf("StartSession() failed: %v", err)
	}

	if err := store.FinishSession(id1, true, 42); err != nil {
		t.Fatalf("FinishSession() failed: %v", err)
	}
	if err := store.FinishSession(id2, false, 8); err != nil {
		t.Fatalf("FinishSession() failed: %v", err)
	}

	st, err = store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	expected := Stats{Started: 3, Completed: 1, Seconds: 50}
	if st != expected {
		t.Errorf("Stats() = %+v, want %+v", st, expected)
	}

	sessions, err := store.RecentSessions(10)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(sessions) != 3 {
		t.Fatalf("Expected 3 sessions, got %d", len(sessions))
	}
	// Newest first
	if sessions[0].Finished {
		t.Error("Newest session should not be finished")
	}
	if !sessions[2].Completed || sessions[2].Duration != 42 {
		t.Errorf("Oldest session = %+v, want completed in 42s", sessions[2])
	}
}

func TestStoreFinishUnknownSession(t *testing.T) {
	store := openTestStore(t)
	if err := store.FinishSession(999, true, 1); err == nil {
		t.Error("FinishSession() on unknown id should fail")
	}
}

func TestStoreReplayRoundTrip(t *testing.T) {
	store := openTestStore(t)

	t0 := time.UnixMilli(1_700_000_000_000)
	rec := replay.NewRecorder(replay.WithClock(func() time.Time {
		t0 = t0.Add(250 * time.Millisecond)
		return t0
	}))

	b := board.MustParse("##.", "#F#")
	rec.Capture(b, motion.Cursor{R: 0, C: 0})
	b.Reveal(1, 0)
	rec.Capture(b, motion.Cursor{R: 1, C: 0})

	sessionID, _ := store.StartSession("custom", 2, 3)
	id, err := store.SaveReplay(sessionID, "custom", rec.Frames())
	if err != nil {
		t.Fatalf("SaveReplay() failed: %v", err)
	}

	entry, frames, err := store.LoadReplay(id)
	if err != nil {
		t.Fatalf("LoadReplay() failed: %v", err)
	}
	if entry.BoardID != "custom" || entry.Rows != 2 || entry.Cols != 3 || entry.FrameCount != 2 {
		t.Errorf("entry = %+v", entry)
	}
	if len(frames) != 2 {
		t.Fatalf("Expected 2 frames, got %d", len(frames))
	}

	original := rec.Frames()
	for i := range frames {
		if frames[i].Board.String() != original[i].Board.String() {
			t.Errorf("frame %d mask = %q, want %q", i, frames[i].Board.String(), original[i].Board.String())
		}
		if frames[i].Cursor != original[i].Cursor {
			t.Errorf("frame %d cursor = %v, want %v", i, frames[i].Cursor, original[i].Cursor)
		}
		if !frames[i].Timestamp.Equal(original[i].Timestamp) {
			t.Errorf("frame %d timestamp = %v, want %v", i, frames[i].Timestamp, original[i].Timestamp)
		}
	}

	list, err := store.ListReplays(5)
	if err != nil {
		t.Fatalf("ListReplays() failed: %v", err)
	}
	if len(list) != 1 || list[0].ID != id {
		t.Errorf("ListReplays() = %+v", list)
	}
}

func TestStoreReplayErrors(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveReplay(1, "x", nil); err == nil {
		t.Error("SaveReplay() with no frames should fail")
	}

	_, _, err := store.LoadReplay(12345)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("LoadReplay() error = %v, want ErrNotFound", err)
	}
}

func TestStorePreferences(t *testing.T) {
	store := openTestStore(t)

	if _, ok, err := store.Preference("zen_mode"); err != nil || ok {
		t.Fatalf("Preference() on empty store = (%v, %v)", ok, err)
	}

	if err := store.SetPreference("zen_mode", "true"); err != nil {
		t.Fatalf("SetPreference() failed: %v", err)
	}
	if err := store.SetPreference("zen_mode", "false"); err != nil {
		t.Fatalf("SetPreference() overwrite failed: %v", err)
	}
	if err := store.SetPreference("line_numbers", "relative"); err != nil {
		t.Fatalf("SetPreference() failed: %v", err)
	}

	v, ok, err := store.Preference("zen_mode")
	if err != nil || !ok || v != "false" {
		t.Errorf("Preference(zen_mode) = (%q, %v, %v), want false", v, ok, err)
	}

	all, err := store.Preferences()
	if err != nil {
		t.Fatalf("Preferences() failed: %v", err)
	}
	if len(all) != 2 || all["line_numbers"] != "relative" {
		t.Errorf("Preferences() = %v", all)
	}
}
