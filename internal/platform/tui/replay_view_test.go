package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/addisonking/zsweep/internal/board"
	"github.com/addisonking/zsweep/internal/motion"
	"github.com/addisonking/zsweep/internal/prefs"
	"github.com/addisonking/zsweep/internal/replay"
)

func recordFrames(n int) []replay.Snapshot {
	clock := testEpoch
	rec := replay.NewRecorder(replay.WithClock(func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}))
	b := board.MustParse("#####")
	for i := 0; i < n; i++ {
		rec.Capture(b, motion.Cursor{R: 0, C: i})
	}
	return rec.Frames()
}

func stepReplay(m ReplayModel, keys ...string) ReplayModel {
	var model tea.Model = m
	for _, k := range keys {
		model, _ = model.Update(keyMsg(k))
	}
	return model.(ReplayModel)
}

func TestReplayNavigation(t *testing.T) {
	m := NewReplayModel("replay", recordFrames(4), prefs.Default())

	tests := []struct {
		keys     []string
		expected int
	}{
		{[]string{"h"}, 0},
		{[]string{"l"}, 1},
		{[]string{"l", "l", "l", "l", "l"}, 3},
		{[]string{"$"}, 3},
		{[]string{"$", "h"}, 2},
		{[]string{"l", "l", "0"}, 0},
		{[]string{"right", "right", "left"}, 1},
	}

	for _, tt := range tests {
		if got := stepReplay(m, tt.keys...).Index(); got != tt.expected {
			t.Errorf("keys %v: index = %d, want %d", tt.keys, got, tt.expected)
		}
	}
}

func TestReplayView(t *testing.T) {
	m := stepReplay(NewReplayModel("replay #7", recordFrames(3), prefs.Default()), "l")
	view := m.View()
	if !strings.Contains(view, "frame 2/3") {
		t.Errorf("view missing frame counter:\n%s", view)
	}
	if !strings.Contains(view, "+0:01") {
		t.Errorf("view missing frame offset:\n%s", view)
	}

	empty := NewReplayModel("empty", nil, prefs.Default())
	if view := stepReplay(empty, "$", "l").View(); !strings.Contains(view, "No frames") {
		t.Errorf("empty replay view:\n%s", view)
	}
}

func TestReplayQuit(t *testing.T) {
	var model tea.Model = NewReplayModel("replay", recordFrames(2), prefs.Default())
	model, cmd := model.Update(keyMsg("q"))
	if cmd == nil || model.View() != "" {
		t.Error("q should quit the replay viewer")
	}
}
