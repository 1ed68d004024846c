// Package board holds the grid model zsweep navigates: a fixed rows×cols
// grid of cells stored in row-major order.
package board

import (
	"errors"
	"fmt"
	"strings"
)

// Mask glyphs used by Parse and Mask.
const (
	GlyphHidden   = '#'
	GlyphRevealed = '.'
	GlyphFlagged  = 'F'
)

// ErrEmpty is returned when a board would have no cells.
var ErrEmpty = errors.New("board: rows and cols must be positive")

// Cell is one square of the board.
type Cell struct {
	Revealed bool
	Flagged  bool // only meaningful while unrevealed
}

// Glyph returns the mask character for the cell.
func (c Cell) Glyph() rune {
	switch {
	case c.Revealed:
		return GlyphRevealed
	case c.Flagged:
		return GlyphFlagged
	default:
		return GlyphHidden
	}
}

// Board is a rectangular grid of cells.
// Index i maps to (i/cols, i%cols).
type Board struct {
	rows  int
	cols  int
	cells []Cell
}

// New creates a board with every cell unrevealed.
func New(rows, cols int) (*Board, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w (got %dx%d)", ErrEmpty, rows, cols)
	}
	return &Board{
		rows:  rows,
		cols:  cols,
		cells: make([]Cell, rows*cols),
	}, nil
}

// Parse builds a board from mask lines. Every line must have the same
// length; '#' is unrevealed, '.' revealed and 'F' flagged.
func Parse(lines []string) (*Board, error) {
	if len(lines) == 0 {
		return nil, ErrEmpty
	}
	cols := len(lines[0])
	b, err := New(len(lines), cols)
	if err != nil {
		return nil, err
	}

	for r, line := range lines {
		if len(line) != cols {
			return nil, fmt.Errorf("board: row %d has %d cells, want %d", r, len(line), cols)
		}
		for c := 0; c < cols; c++ {
			cell := &b.cells[r*cols+c]
			switch line[c] {
			case GlyphHidden:
			case GlyphRevealed:
				cell.Revealed = true
			case GlyphFlagged:
				cell.Flagged = true
			default:
				return nil, fmt.Errorf("board: row %d col %d: unknown glyph %q", r, c, line[c])
			}
		}
	}
	return b, nil
}

// MustParse is like Parse but panics on error. Intended for tests and
// embedded fixtures.
func MustParse(lines ...string) *Board {
	b, err := Parse(lines)
	if err != nil {
		panic(err)
	}
	return b
}

// Rows returns the number of rows.
func (b *Board) Rows() int { return b.rows }

// Cols returns the number of columns.
func (b *Board) Cols() int { return b.cols }

// Total returns rows*cols.
func (b *Board) Total() int { return len(b.cells) }

// InBounds reports whether (r, c) is on the board.
func (b *Board) InBounds(r, c int) bool {
	return r >= 0 && r < b.rows && c >= 0 && c < b.cols
}

// Cell returns the cell at (r, c). Out-of-bounds returns the zero Cell.
func (b *Board) Cell(r, c int) Cell {
	if !b.InBounds(r, c) {
		return Cell{}
	}
	return b.cells[r*b.cols+c]
}

// Revealed reports whether the cell at (r, c) is revealed.
func (b *Board) Revealed(r, c int) bool {
	return b.Cell(r, c).Revealed
}

// Flagged reports whether the cell at (r, c) carries a flag.
func (b *Board) Flagged(r, c int) bool {
	return b.Cell(r, c).Flagged
}

// Reveal opens the cell at (r, c). Flagged cells stay closed.
// Returns true if the board changed.
func (b *Board) Reveal(r, c int) bool {
	if !b.InBounds(r, c) {
		return false
	}
	cell := &b.cells[r*b.cols+c]
	if cell.Revealed || cell.Flagged {
		return false
	}
	cell.Revealed = true
	return true
}

// ToggleFlag flips the flag on an unrevealed cell.
// Returns true if the board changed.
func (b *Board) ToggleFlag(r, c int) bool {
	if !b.InBounds(r, c) {
		return false
	}
	cell := &b.cells[r*b.cols+c]
	if cell.Revealed {
		return false
	}
	cell.Flagged = !cell.Flagged
	return true
}

// Counts returns the number of revealed and flagged cells.
func (b *Board) Counts() (revealed, flagged int) {
	for _, c := range b.cells {
		switch {
		case c.Revealed:
			revealed++
		case c.Flagged:
			flagged++
		}
	}
	return revealed, flagged
}

// Cleared reports whether every cell has been revealed.
func (b *Board) Cleared() bool {
	revealed, _ := b.Counts()
	return revealed == len(b.cells)
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	cells := make([]Cell, len(b.cells))
	copy(cells, b.cells)
	return &Board{rows: b.rows, cols: b.cols, cells: cells}
}

// Mask returns one string per row using the mask glyphs.
func (b *Board) Mask() []string {
	lines := make([]string, b.rows)
	var sb strings.Builder
	for r := 0; r < b.rows; r++ {
		sb.Reset()
		for c := 0; c < b.cols; c++ {
			sb.WriteRune(b.cells[r*b.cols+c].Glyph())
		}
		lines[r] = sb.String()
	}
	return lines
}

// String returns the mask rows joined by newlines.
func (b *Board) String() string {
	return strings.Join(b.Mask(), "\n")
}
