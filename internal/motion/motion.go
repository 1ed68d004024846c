// Package motion resolves modal-editor motions on a revealed/unrevealed grid.
//
// Every function here is pure: the grid and cursor are read-only inputs and
// a new cursor is returned. Block motions treat the grid as a single
// row-major sequence that wraps from the last cell back to the first, and
// each repetition is capped at rows*cols steps so scans always terminate.
package motion

import "github.com/addisonking/zsweep/internal/core"

// Grid is the read-only view of a board that motions need.
// Rows and Cols must both be positive.
type Grid interface {
	Rows() int
	Cols() int
	Revealed(r, c int) bool
}

// Cursor is a board position.
type Cursor struct {
	R, C int
}

// Tag identifies a positional motion.
type Tag int

const (
	TagNone          Tag = iota
	TagLeft              // h
	TagDown              // j
	TagUp                // k
	TagRight             // l
	TagLineStart         // 0, _
	TagLineEnd           // $
	TagTop               // g
	TagBottom            // G, {count}G
	TagBlockForward      // w
	TagBlockBackward     // b
	TagBlockDown         // }
	TagBlockUp           // {
)

// String returns a human-readable name for the motion.
func (t Tag) String() string {
	switch t {
	case TagNone:
		return "None"
	case TagLeft:
		return "Left"
	case TagDown:
		return "Down"
	case TagUp:
		return "Up"
	case TagRight:
		return "Right"
	case TagLineStart:
		return "LineStart"
	case TagLineEnd:
		return "LineEnd"
	case TagTop:
		return "Top"
	case TagBottom:
		return "Bottom"
	case TagBlockForward:
		return "BlockForward"
	case TagBlockBackward:
		return "BlockBackward"
	case TagBlockDown:
		return "BlockDown"
	case TagBlockUp:
		return "BlockUp"
	default:
		return "Unknown"
	}
}

// Resolve computes where the cursor lands after applying the motion
// multiplier times. It returns false when tag is not a positional motion,
// in which case the caller keeps its cursor.
//
// A multiplier below 1 is treated as 1 and an out-of-range cursor is
// clamped onto the grid before the motion is applied.
func Resolve(tag Tag, multiplier int, cur Cursor, g Grid) (Cursor, bool) {
	rows, cols := g.Rows(), g.Cols()
	if multiplier < 1 {
		multiplier = 1
	}
	r := core.Clamp(cur.R, 0, rows-1)
	c := core.Clamp(cur.C, 0, cols-1)

	switch tag {
	// Simple directions
	case TagLeft:
		return Cursor{r, core.Max(0, c-multiplier)}, true
	case TagRight:
		return Cursor{r, core.Min(cols-1, c+multiplier)}, true
	case TagUp:
		return Cursor{core.Max(0, r-multiplier), c}, true
	case TagDown:
		return Cursor{core.Min(rows-1, r+multiplier), c}, true

	// Line boundaries
	case TagLineStart:
		return Cursor{r, 0}, true
	case TagLineEnd:
		return Cursor{r, cols - 1}, true
	case TagTop:
		return Cursor{0, c}, true
	case TagBottom:
		target := rows - 1
		if multiplier > 1 {
			target = core.Min(rows-1, multiplier-1)
		}
		return Cursor{target, c}, true

	// Block jumps
	case TagBlockForward:
		return blockForward(g, Cursor{r, c}, multiplier), true
	case TagBlockBackward:
		return blockBackward(g, Cursor{r, c}, multiplier), true
	case TagBlockDown:
		return vertical(g, Cursor{r, c}, multiplier, 1), true
	case TagBlockUp:
		return vertical(g, Cursor{r, c}, multiplier, -1), true
	}

	return Cursor{r, c}, false
}

// blockForward jumps to the start of the next run of unrevealed cells.
func blockForward(g Grid, cur Cursor, n int) Cursor {
	s := scan{index: cur.R*g.Cols() + cur.C}
	for i := 0; i < n; i++ {
		s.scanned = 0
		s = skipBlockForward(g, s)
		s = skipGapForward(g, s)
	}
	return s.cursor(g)
}

// blockBackward jumps to the start of the previous run of unrevealed cells.
func blockBackward(g Grid, cur Cursor, n int) Cursor {
	s := scan{index: cur.R*g.Cols() + cur.C}
	for i := 0; i < n; i++ {
		s.scanned = 0
		s = stepBack(g, s)
		s = skipBlockBackward(g, s)
		s = skipGapBackward(g, s)
		s = retighten(g, s)
	}
	return s.cursor(g)
}
