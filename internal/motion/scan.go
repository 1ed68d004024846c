package motion

import "github.com/addisonking/zsweep/internal/core"

// scan is the state threaded through the block-motion phases: the current
// linear index and how many steps this repetition has taken so far.
// Each phase takes a scan and returns the next one; none mutate the grid.
type scan struct {
	index   int
	scanned int
}

func (s scan) cursor(g Grid) Cursor {
	return Cursor{s.index / g.Cols(), s.index % g.Cols()}
}

func total(g Grid) int {
	return g.Rows() * g.Cols()
}

func revealedAt(g Grid, i int) bool {
	return g.Revealed(i/g.Cols(), i%g.Cols())
}

// skipBlockForward advances past the unrevealed run under the cursor.
// Reaching the next row ends the run: the step onto the new row's first
// cell is taken and the phase stops even if that cell is unrevealed.
func skipBlockForward(g Grid, s scan) scan {
	n, cols := total(g), g.Cols()
	for s.scanned < n && !revealedAt(g, s.index) {
		next := (s.index + 1) % n
		crossed := next/cols != s.index/cols
		s.index = next
		s.scanned++
		if crossed {
			break
		}
	}
	return s
}

// skipGapForward advances past revealed cells, wrapping across rows and
// past the end of the board.
func skipGapForward(g Grid, s scan) scan {
	n := total(g)
	for s.scanned < n && revealedAt(g, s.index) {
		s.index = (s.index + 1) % n
		s.scanned++
	}
	return s
}

// stepBack moves one cell back unconditionally.
func stepBack(g Grid, s scan) scan {
	s.index = core.Wrap(s.index-1, total(g))
	s.scanned++
	return s
}

// skipBlockBackward walks back through the unrevealed run the cursor is
// in. It never steps into a different row, so a run that straddles a row
// boundary stops at the first cell of the current row.
func skipBlockBackward(g Grid, s scan) scan {
	n, cols := total(g), g.Cols()
	for s.scanned < n && !revealedAt(g, s.index) {
		prev := core.Wrap(s.index-1, n)
		if prev/cols != s.index/cols {
			break
		}
		s.index = prev
		s.scanned++
	}
	return s
}

// skipGapBackward walks back over revealed cells, wrapping circularly.
func skipGapBackward(g Grid, s scan) scan {
	n := total(g)
	for s.scanned < n && revealedAt(g, s.index) {
		s.index = core.Wrap(s.index-1, n)
		s.scanned++
	}
	return s
}

// retighten moves back to the first unrevealed cell of the run that ends
// at the current index, staying within the current row.
func retighten(g Grid, s scan) scan {
	n, cols := total(g), g.Cols()
	targetRow := s.index / cols
	for s.scanned < n {
		prev := core.Wrap(s.index-1, n)
		if revealedAt(g, prev) || prev/cols != targetRow {
			break
		}
		s.index = prev
		s.scanned++
	}
	return s
}
