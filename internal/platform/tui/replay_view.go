package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/addisonking/zsweep/internal/prefs"
	"github.com/addisonking/zsweep/internal/replay"
)

// ReplayKeyMap defines the key bindings for the replay viewer.
type ReplayKeyMap struct {
	Prev  key.Binding
	Next  key.Binding
	First key.Binding
	Last  key.Binding
	Quit  key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ReplayKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.First, k.Last, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ReplayKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Prev, k.Next, k.First, k.Last, k.Quit}}
}

// DefaultReplayKeyMap returns default key bindings.
func DefaultReplayKeyMap() ReplayKeyMap {
	return ReplayKeyMap{
		Prev: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("h", "prev frame"),
		),
		Next: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("l", "next frame"),
		),
		First: key.NewBinding(
			key.WithKeys("0", "g"),
			key.WithHelp("0", "first"),
		),
		Last: key.NewBinding(
			key.WithKeys("$", "G"),
			key.WithHelp("$", "last"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ReplayModel steps through the recorded frames of a session.
type ReplayModel struct {
	title    string
	frames   []replay.Snapshot
	index    int
	prefs    prefs.Prefs
	keys     ReplayKeyMap
	help     help.Model
	quitting bool
}

// NewReplayModel creates a viewer positioned on the first frame.
func NewReplayModel(title string, frames []replay.Snapshot, p prefs.Prefs) ReplayModel {
	return ReplayModel{
		title:  title,
		frames: frames,
		prefs:  p,
		keys:   DefaultReplayKeyMap(),
		help:   help.New(),
	}
}

// Init initializes the replay model.
func (m ReplayModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the replay viewer.
func (m ReplayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		last := len(m.frames) - 1
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Prev):
			if m.index > 0 {
				m.index--
			}
		case key.Matches(msg, m.keys.Next):
			if m.index < last {
				m.index++
			}
		case key.Matches(msg, m.keys.First):
			m.index = 0
		case key.Matches(msg, m.keys.Last):
			if last >= 0 {
				m.index = last
			}
		}

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	}
	return m, nil
}

// View renders the current frame.
func (m ReplayModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n\n")

	if len(m.frames) == 0 {
		b.WriteString(statusStyle.Render("No frames recorded."))
		b.WriteString("\n")
		return b.String()
	}

	frame := m.frames[m.index]
	b.WriteString(RenderBoard(frame.Board, frame.Cursor, m.prefs))
	b.WriteString("\n\n")

	offset := int(frame.Timestamp.Sub(m.frames[0].Timestamp).Seconds())
	revealed, flagged := frame.Board.Counts()
	status := fmt.Sprintf("frame %d/%d  +%s  %d:%d  %d/%d revealed  %d flagged",
		m.index+1, len(m.frames), formatDuration(offset),
		frame.Cursor.R+1, frame.Cursor.C+1,
		revealed, frame.Board.Total(), flagged)
	b.WriteString(statusStyle.Render(status))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// Index returns the position of the displayed frame.
func (m ReplayModel) Index() int {
	return m.index
}

// RunReplay runs the replay viewer.
func RunReplay(title string, frames []replay.Snapshot, p prefs.Prefs) error {
	program := tea.NewProgram(
		NewReplayModel(title, frames, p),
		tea.WithAltScreen(),
	)
	_, err := program.Run()
	return err
}
