package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/addisonking/zsweep/internal/input"
)

// SessionKeyMap describes the drill bindings for the help bar. Dispatch
// goes through input.Resolve; these bindings only document it.
type SessionKeyMap struct {
	Move   key.Binding
	Line   key.Binding
	Jump   key.Binding
	Block  key.Binding
	Para   key.Binding
	Count  key.Binding
	Reveal key.Binding
	Flag   key.Binding
	Smart  key.Binding
	Search key.Binding
	Repeat key.Binding
	Cancel key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k SessionKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Move, k.Block, k.Reveal, k.Flag, k.Smart, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k SessionKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Move, k.Line, k.Jump, k.Count},
		{k.Block, k.Para, k.Search, k.Repeat},
		{k.Reveal, k.Flag, k.Smart, k.Cancel, k.Quit},
	}
}

// DefaultSessionKeyMap returns the drill key bindings.
func DefaultSessionKeyMap() SessionKeyMap {
	return SessionKeyMap{
		Move: key.NewBinding(
			key.WithKeys("h", "j", "k", "l", "left", "down", "up", "right"),
			key.WithHelp("hjkl", "move"),
		),
		Line: key.NewBinding(
			key.WithKeys("0", "_", "$"),
			key.WithHelp("0/$", "line start/end"),
		),
		Jump: key.NewBinding(
			key.WithKeys("g", "G"),
			key.WithHelp("g/G", "top/bottom"),
		),
		Block: key.NewBinding(
			key.WithKeys("w", "b"),
			key.WithHelp("w/b", "next/prev block"),
		),
		Para: key.NewBinding(
			key.WithKeys("{", "}"),
			key.WithHelp("{/}", "block up/down"),
		),
		Count: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "count"),
		),
		Reveal: key.NewBinding(
			key.WithKeys("i", "enter"),
			key.WithHelp("i", "reveal"),
		),
		Flag: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "flag"),
		),
		Smart: key.NewBinding(
			key.WithKeys(" ", "space", "a"),
			key.WithHelp("space", "smart"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Repeat: key.NewBinding(
			key.WithKeys("n", "N"),
			key.WithHelp("n/N", "next/prev match"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to drill actions.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a drill action.
// Unbound keys return an action of kind KindNone.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) input.Action {
	a, ok := input.Resolve(msg.String())
	if !ok {
		return input.Action{Kind: input.KindNone}
	}
	return a
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionStats
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "up", "k":
		return MenuActionUp
	case "down", "j":
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "esc":
		return MenuActionBack
	case "s", "tab":
		return MenuActionStats
	}
	return MenuActionNone
}
