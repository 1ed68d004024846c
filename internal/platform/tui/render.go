package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/addisonking/zsweep/internal/board"
	"github.com/addisonking/zsweep/internal/motion"
	"github.com/addisonking/zsweep/internal/prefs"
)

// Cell markers.
const (
	hiddenMarker   = "■"
	revealedMarker = "·"
)

var (
	hiddenStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	revealedStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	flaggedStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	cursorStyle        = lipgloss.NewStyle().Reverse(true)
	gutterStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	gutterCurrentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true)
	titleStyle         = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	statusStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	helpStyle          = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	noticeStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
)

// RenderBoard draws the board mask with the cursor highlighted and an
// optional line-number gutter.
func RenderBoard(b *board.Board, cur motion.Cursor, p prefs.Prefs) string {
	var sb strings.Builder
	gutterWidth := len(strconv.Itoa(b.Rows()))

	for r, rows := 0, b.Rows(); r < rows; r++ {
		if r > 0 {
			sb.WriteRune('\n')
		}

		if label := p.LineLabel(r, cur.R); label != "" {
			style := gutterStyle
			if r == cur.R {
				style = gutterCurrentStyle
			}
			sb.WriteString(style.Render(fmt.Sprintf("%*s", gutterWidth, label)))
			sb.WriteString("  ")
		}

		for c, cols := 0, b.Cols(); c < cols; c++ {
			if c > 0 {
				sb.WriteRune(' ')
			}
			sb.WriteString(renderCell(b.Cell(r, c), r == cur.R && c == cur.C, p.MineIcon))
		}
	}
	return sb.String()
}

func renderCell(cell board.Cell, atCursor bool, icon prefs.MineIcon) string {
	var text string
	var style lipgloss.Style
	switch {
	case cell.Flagged:
		text, style = icon.Glyph(), flaggedStyle
	case cell.Revealed:
		text, style = revealedMarker, revealedStyle
	default:
		text, style = hiddenMarker, hiddenStyle
	}
	if atCursor {
		style = style.Inherit(cursorStyle)
	}
	return style.Render(text)
}

// formatDuration renders whole seconds as m:ss or h:mm:ss.
func formatDuration(secs int) string {
	if secs < 0 {
		secs = 0
	}
	h, m, s := secs/3600, (secs/60)%60, secs%60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}
