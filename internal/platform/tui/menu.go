package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/addisonking/zsweep/internal/board"
	"github.com/addisonking/zsweep/internal/config"
)

// MenuItem represents a selectable board in the menu.
type MenuItem struct {
	ID     string
	Title  string
	Rows   int
	Cols   int
	Puzzle *config.Puzzle // nil for blank presets
}

// NewBoard creates a fresh board for the item.
func (i MenuItem) NewBoard() (*board.Board, error) {
	if i.Puzzle != nil {
		return i.Puzzle.Board()
	}
	return board.New(i.Rows, i.Cols)
}

// MenuItems lists the configured presets followed by the puzzles.
func MenuItems(cfg config.Config, puzzles []config.Puzzle) []MenuItem {
	items := make([]MenuItem, 0, len(cfg.Presets)+len(puzzles))
	for _, name := range cfg.PresetNames() {
		p := cfg.Presets[name]
		items = append(items, MenuItem{
			ID:    name,
			Title: name,
			Rows:  p.Rows,
			Cols:  p.Cols,
		})
	}
	for i := range puzzles {
		p := &puzzles[i]
		rows, cols := p.Size()
		items = append(items, MenuItem{
			ID:     p.ID,
			Title:  p.Name,
			Rows:   rows,
			Cols:   cols,
			Puzzle: p,
		})
	}
	return items
}

// MenuModel is the Bubble Tea model for the board picker menu.
type MenuModel struct {
	items     []MenuItem
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	quitting  bool
	selected  *MenuItem // Set when user selects a board
	openStats bool      // True if user asked for stats
}

// NewMenuModel creates a new menu model.
func NewMenuModel(items []MenuItem, width, height int) MenuModel {
	return MenuModel{
		items:     items,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit
		}

	case MenuActionStats:
		m.openStats = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(titleStyle.Render(centerText("  Z S W E E P  ", m.width)))
	b.WriteString("\n\n")
	b.WriteString(centerText("Pick a board", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		kind := "blank"
		if item.Puzzle != nil {
			kind = "puzzle"
		}
		line := fmt.Sprintf("%s%-16s %3dx%-3d %s", cursor, item.Title, item.Rows, item.Cols, kind)
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Play  |  S: Stats  |  Q: Quit"
	b.WriteString(helpStyle.Render(centerText(controls, m.width)))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsStats returns true if user requested the stats screen.
func (m MenuModel) WantsStats() bool {
	return m.openStats
}

// Size returns the last known terminal size.
func (m MenuModel) Size() (width, height int) {
	return m.width, m.height
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Item       *MenuItem
	Width      int
	Height     int
	WantsStats bool
	Quit       bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(items []MenuItem, width, height int) (MenuResult, error) {
	p := tea.NewProgram(
		NewMenuModel(items, width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Width: width, Height: height}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Width: width, Height: height, Quit: true}, nil
	}

	result := MenuResult{}
	result.Width, result.Height = m.Size()

	switch {
	case m.WantsStats():
		result.WantsStats = true
	case m.Selected() != nil:
		result.Item = m.Selected()
	default:
		result.Quit = true
	}
	return result, nil
}
