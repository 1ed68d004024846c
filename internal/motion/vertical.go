package motion

// searchOutcome classifies one repetition of a vertical block search.
type searchOutcome int

const (
	// searchNoop: the cursor already sits on the boundary row.
	searchNoop searchOutcome = iota
	// searchFound: a row with an unrevealed cell was found.
	searchFound
	// searchBoundary: no such row; move to the boundary row and keep the column.
	searchBoundary
)

// rowSearch is the result of scanning rows in one direction.
type rowSearch struct {
	outcome searchOutcome
	row     int
	col     int
}

// firstUnrevealed returns the lowest column in row r holding an unrevealed
// cell, or -1.
func firstUnrevealed(g Grid, r int) int {
	for c := 0; c < g.Cols(); c++ {
		if !g.Revealed(r, c) {
			return c
		}
	}
	return -1
}

// searchRows scans rows strictly after from.R in direction dir (+1 down,
// -1 up) for the first row that still has an unrevealed cell.
func searchRows(g Grid, from Cursor, dir int) rowSearch {
	boundary := 0
	if dir > 0 {
		boundary = g.Rows() - 1
	}
	if from.R == boundary {
		return rowSearch{outcome: searchNoop, row: from.R, col: from.C}
	}

	for r := from.R + dir; ; r += dir {
		if c := firstUnrevealed(g, r); c >= 0 {
			return rowSearch{outcome: searchFound, row: r, col: c}
		}
		if r == boundary {
			return rowSearch{outcome: searchBoundary, row: boundary, col: from.C}
		}
	}
}

// vertical repeats searchRows n times. A no-op repetition ends the loop.
func vertical(g Grid, cur Cursor, n, dir int) Cursor {
	for i := 0; i < n; i++ {
		res := searchRows(g, cur, dir)
		if res.outcome == searchNoop {
			break
		}
		cur = Cursor{res.row, res.col}
	}
	return cur
}
