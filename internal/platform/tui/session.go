package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/addisonking/zsweep/internal/board"
	"github.com/addisonking/zsweep/internal/input"
	"github.com/addisonking/zsweep/internal/motion"
	"github.com/addisonking/zsweep/internal/prefs"
	"github.com/addisonking/zsweep/internal/replay"
	"github.com/addisonking/zsweep/internal/storage"
)

// SessionConfig describes one drill session.
type SessionConfig struct {
	BoardID   string
	Board     *board.Board
	Store     *storage.Store // may be nil
	Prefs     prefs.Prefs
	MaxFrames int
	Width     int
	Height    int
	Logger    *log.Logger // may be nil
	Clock     func() time.Time

	// ReturnToMenu makes q end the session without quitting the program.
	ReturnToMenu bool
}

// SessionModel is the Bubble Tea model for a drill session.
type SessionModel struct {
	boardID   string
	board     *board.Board
	cursor    motion.Cursor
	count     input.Count
	recorder  *replay.Recorder
	store     *storage.Store
	prefs     prefs.Prefs
	keyMapper *KeyMapper
	keys      SessionKeyMap
	help      help.Model
	logger    *log.Logger
	now       func() time.Time

	sessionID int64
	started   time.Time

	searching   bool
	searchCount int
	lastSearch  rune
	status      string

	width        int
	height       int
	cleared      bool
	finished     bool
	quitting     bool
	backToMenu   bool
	returnToMenu bool
}

// NewSessionModel creates a session on cfg.Board and records its first
// frame. If a store is configured the session is registered there.
func NewSessionModel(cfg SessionConfig) SessionModel {
	now := cfg.Clock
	if now == nil {
		now = time.Now
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := SessionModel{
		boardID:   cfg.BoardID,
		board:     cfg.Board,
		store:     cfg.Store,
		prefs:     cfg.Prefs,
		keyMapper: NewKeyMapper(),
		keys:      DefaultSessionKeyMap(),
		help:      help.New(),
		logger:    logger,
		now:       now,
		started:   now(),
		width:     cfg.Width,
		height:    cfg.Height,

		returnToMenu: cfg.ReturnToMenu,
		recorder: replay.NewRecorder(
			replay.WithMaxFrames(cfg.MaxFrames),
			replay.WithClock(now),
		),
	}
	m.help.Width = cfg.Width
	m.cleared = m.board.Cleared()
	m.recorder.Capture(m.board, m.cursor)

	if m.store != nil {
		id, err := m.store.StartSession(m.boardID, m.board.Rows(), m.board.Cols())
		if err != nil {
			m.logger.Warn("could not record session start", "board", m.boardID, "error", err)
		} else {
			m.sessionID = id
		}
	}
	m.logger.Info("session started", "board", m.boardID, "rows", m.board.Rows(), "cols", m.board.Cols())

	return m
}

// Init starts the session clock.
func (m SessionModel) Init() tea.Cmd {
	return clockCmd(time.Second)
}

// Update handles messages and updates the model state.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.searching {
			return m.handleSearchKey(msg)
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case ClockMsg:
		if m.finished {
			return m, nil
		}
		return m, clockCmd(time.Second)
	}

	return m, nil
}

// handleKey processes a key in normal mode.
func (m SessionModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "?" {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	action := m.keyMapper.MapKey(msg)
	m.status = ""

	switch action.Kind {
	case input.KindDigit:
		m.count.Push(action.Digit)

	case input.KindZero:
		if m.count.Pending() {
			m.count.Push('0')
			return m, nil
		}
		m.move(motion.TagLineStart, 1)

	case input.KindMotion:
		m.move(action.Motion, m.count.Take())

	case input.KindReveal:
		m.count.Reset()
		if m.board.Reveal(m.cursor.R, m.cursor.C) {
			m.changed()
		}

	case input.KindFlag:
		m.count.Reset()
		if m.board.ToggleFlag(m.cursor.R, m.cursor.C) {
			m.changed()
		}

	case input.KindSmart:
		m.count.Reset()
		m.smart()

	case input.KindStartSearch:
		m.searching = true
		m.searchCount = m.count.Take()

	case input.KindNextMatch, input.KindPrevMatch:
		n := m.count.Take()
		if m.lastSearch == 0 {
			m.status = "no previous search"
			return m, nil
		}
		m.search(m.lastSearch, action.Kind == input.KindNextMatch, n)

	case input.KindCancel:
		m.count.Reset()

	case input.KindQuit:
		m.finish()
		if m.returnToMenu && msg.String() != "ctrl+c" {
			m.backToMenu = true
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit

	default:
		m.count.Reset()
	}

	return m, nil
}

// handleSearchKey reads the glyph to search for.
func (m SessionModel) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.searching = false
	key := msg.String()

	switch key {
	case "esc":
		return m, nil
	case "ctrl+c":
		m.finish()
		m.quitting = true
		return m, tea.Quit
	}

	if len(key) != 1 || !isSearchGlyph(rune(key[0])) {
		m.status = fmt.Sprintf("search: unknown glyph %q (use %c %c %c)",
			key, board.GlyphHidden, board.GlyphRevealed, board.GlyphFlagged)
		return m, nil
	}

	m.lastSearch = rune(key[0])
	m.search(m.lastSearch, true, m.searchCount)
	return m, nil
}

func isSearchGlyph(r rune) bool {
	return r == board.GlyphHidden || r == board.GlyphRevealed || r == board.GlyphFlagged
}

// move applies a motion and records the new cursor.
func (m *SessionModel) move(tag motion.Tag, n int) {
	next, ok := motion.Resolve(tag, n, m.cursor, m.board)
	if !ok {
		return
	}
	if next != m.cursor {
		m.cursor = next
		m.recorder.Capture(m.board, m.cursor)
	}
}

// smart reveals a plain unrevealed cell and toggles the flag otherwise.
func (m *SessionModel) smart() {
	r, c := m.cursor.R, m.cursor.C
	if m.board.Revealed(r, c) {
		return
	}
	var changed bool
	if m.board.Flagged(r, c) {
		changed = m.board.ToggleFlag(r, c)
	} else {
		changed = m.board.Reveal(r, c)
	}
	if changed {
		m.changed()
	}
}

// search moves to the n-th cell showing glyph.
func (m *SessionModel) search(glyph rune, forward bool, n int) {
	match := func(r, c int) bool {
		return m.board.Cell(r, c).Glyph() == glyph
	}
	cur := m.cursor
	for i := 0; i < n; i++ {
		next, ok := motion.Find(m.board, cur, forward, match)
		if !ok {
			m.status = fmt.Sprintf("pattern not found: %c", glyph)
			return
		}
		cur = next
	}
	if cur != m.cursor {
		m.cursor = cur
		m.recorder.Capture(m.board, m.cursor)
	}
}

// changed records a board change and notices completion.
func (m *SessionModel) changed() {
	m.recorder.Capture(m.board, m.cursor)
	if !m.cleared && m.board.Cleared() {
		m.cleared = true
		m.status = fmt.Sprintf("board cleared in %s", formatDuration(m.elapsed()))
		m.logger.Info("board cleared", "board", m.boardID, "seconds", m.elapsed())
	}
}

func (m SessionModel) elapsed() int {
	return int(m.now().Sub(m.started) / time.Second)
}

// finish closes the session in the store and saves its replay. It only
// runs once.
func (m *SessionModel) finish() {
	if m.finished {
		return
	}
	m.finished = true
	seconds := m.elapsed()
	m.logger.Info("session finished",
		"board", m.boardID,
		"completed", m.cleared,
		"seconds", seconds,
		"frames", m.recorder.Len(),
	)

	if m.store == nil || m.sessionID == 0 {
		return
	}
	if err := m.store.FinishSession(m.sessionID, m.cleared, seconds); err != nil {
		m.logger.Warn("could not record session end", "session", m.sessionID, "error", err)
	}
	if _, err := m.store.SaveReplay(m.sessionID, m.boardID, m.recorder.Frames()); err != nil {
		m.logger.Warn("could not save replay", "session", m.sessionID, "error", err)
	}
}

// View renders the session.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	if !m.prefs.ZenMode {
		b.WriteString(titleStyle.Render(fmt.Sprintf("zsweep - %s", m.boardID)))
		b.WriteString("\n\n")
	}

	b.WriteString(RenderBoard(m.board, m.cursor, m.prefs))
	b.WriteString("\n\n")

	if m.prefs.ZenMode {
		return b.String()
	}

	b.WriteString(statusStyle.Render(m.statusLine()))
	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(noticeStyle.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// statusLine shows count, search, position, progress and time.
func (m SessionModel) statusLine() string {
	revealed, flagged := m.board.Counts()
	parts := []string{
		fmt.Sprintf("%d:%d", m.cursor.R+1, m.cursor.C+1),
		fmt.Sprintf("%d/%d revealed", revealed, m.board.Total()),
		fmt.Sprintf("%d flagged", flagged),
		formatDuration(m.elapsed()),
	}
	if m.searching {
		parts = append([]string{"/"}, parts...)
	} else if m.lastSearch != 0 {
		parts = append([]string{"/" + string(m.lastSearch)}, parts...)
	}
	if pending := m.count.String(); pending != "" {
		parts = append([]string{pending}, parts...)
	}
	return strings.Join(parts, "  ")
}

// Cursor returns the current cursor.
func (m SessionModel) Cursor() motion.Cursor {
	return m.cursor
}

// Board returns the live board.
func (m SessionModel) Board() *board.Board {
	return m.board
}

// Recorder returns the frame history.
func (m SessionModel) Recorder() *replay.Recorder {
	return m.recorder
}

// Cleared reports whether every cell has been revealed.
func (m SessionModel) Cleared() bool {
	return m.cleared
}

// SessionID returns the store ID of the session, or 0 without a store.
func (m SessionModel) SessionID() int64 {
	return m.sessionID
}

// BackToMenu returns true if user ended the session to pick another board.
func (m SessionModel) BackToMenu() bool {
	return m.backToMenu
}

// IsQuitting returns true if user requested to quit.
func (m SessionModel) IsQuitting() bool {
	return m.quitting
}

// RunSession runs a drill session in the terminal.
func RunSession(cfg SessionConfig) error {
	model := NewSessionModel(cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
