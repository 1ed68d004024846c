package motion

import "github.com/addisonking/zsweep/internal/core"

// Find returns the first cell after from (before it when forward is false)
// in wraparound row-major order for which match reports true. The cell at
// from is examined last. It returns from and false when nothing matches.
func Find(g Grid, from Cursor, forward bool, match func(r, c int) bool) (Cursor, bool) {
	n, cols := total(g), g.Cols()
	start := from.R*cols + from.C
	step := 1
	if !forward {
		step = -1
	}

	for k := 1; k <= n; k++ {
		i := core.Wrap(start+step*k, n)
		if match(i/cols, i%cols) {
			return Cursor{i / cols, i % cols}, true
		}
	}
	return from, false
}
