package motion

import (
	"testing"

	"github.com/addisonking/zsweep/internal/board"
)

func TestResolveDirectional(t *testing.T) {
	g := board.MustParse("####", "####", "####")
	start := Cursor{1, 1}

	tests := []struct {
		name       string
		tag        Tag
		multiplier int
		expected   Cursor
	}{
		{"left one", TagLeft, 1, Cursor{1, 0}},
		{"left clamps", TagLeft, 5, Cursor{1, 0}},
		{"right two", TagRight, 2, Cursor{1, 3}},
		{"right clamps", TagRight, 9, Cursor{1, 3}},
		{"up one", TagUp, 1, Cursor{0, 1}},
		{"up clamps", TagUp, 3, Cursor{0, 1}},
		{"down one", TagDown, 1, Cursor{2, 1}},
		{"down clamps", TagDown, 10, Cursor{2, 1}},
		{"zero multiplier is one", TagLeft, 0, Cursor{1, 0}},
		{"negative multiplier is one", TagRight, -3, Cursor{1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Resolve(tt.tag, tt.multiplier, start, g)
			if !ok {
				t.Fatalf("Resolve(%v) reported not a motion", tt.tag)
			}
			if got != tt.expected {
				t.Errorf("Resolve(%v, %d) = %v, want %v", tt.tag, tt.multiplier, got, tt.expected)
			}
		})
	}
}

func TestResolveLeftClampsAtColumnZero(t *testing.T) {
	g := board.MustParse("########")
	for c := 0; c < 8; c++ {
		for m := c; m < c+4; m++ {
			got, _ := Resolve(TagLeft, m, Cursor{0, c}, g)
			if got.C != 0 {
				t.Errorf("left x%d from col %d = %v, want col 0", m, c, got)
			}
		}
	}
}

func TestResolveLineBoundaries(t *testing.T) {
	g := board.MustParse("####", "####", "####")

	tests := []struct {
		name       string
		tag        Tag
		multiplier int
		from       Cursor
		expected   Cursor
	}{
		{"line start", TagLineStart, 1, Cursor{1, 2}, Cursor{1, 0}},
		{"line end", TagLineEnd, 1, Cursor{1, 1}, Cursor{1, 3}},
		{"top keeps column", TagTop, 1, Cursor{2, 3}, Cursor{0, 3}},
		{"bottom", TagBottom, 1, Cursor{0, 3}, Cursor{2, 3}},
		{"go to row 2", TagBottom, 2, Cursor{0, 1}, Cursor{1, 1}},
		{"go to row past end", TagBottom, 50, Cursor{0, 1}, Cursor{2, 1}},
		{"line start ignores multiplier", TagLineStart, 7, Cursor{2, 3}, Cursor{2, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Resolve(tt.tag, tt.multiplier, tt.from, g)
			if !ok {
				t.Fatal("expected a motion")
			}
			if got != tt.expected {
				t.Errorf("got %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestResolveUnknownTag(t *testing.T) {
	g := board.MustParse("##", "##")
	for _, tag := range []Tag{TagNone, Tag(99)} {
		if _, ok := Resolve(tag, 1, Cursor{0, 0}, g); ok {
			t.Errorf("Resolve(%v) should not be a motion", tag)
		}
	}
}

func TestResolveClampsCursor(t *testing.T) {
	g := board.MustParse("####", "####", "####")
	got, _ := Resolve(TagLineEnd, 1, Cursor{10, -2}, g)
	if got != (Cursor{2, 3}) {
		t.Errorf("got %v, want {2 3}", got)
	}
}

func TestBlockForward(t *testing.T) {
	tests := []struct {
		name       string
		mask       []string
		from       Cursor
		multiplier int
		expected   Cursor
	}{
		{
			name:       "lands on lone unrevealed cell",
			mask:       []string{"...", ".#.", "..."},
			from:       Cursor{0, 0},
			multiplier: 1,
			expected:   Cursor{1, 1},
		},
		{
			name:       "from the lone block wraps back to it",
			mask:       []string{"...", ".#.", "..."},
			from:       Cursor{1, 1},
			multiplier: 1,
			expected:   Cursor{1, 1},
		},
		{
			name:       "fully revealed board returns to start",
			mask:       []string{"...", "...", "..."},
			from:       Cursor{1, 1},
			multiplier: 1,
			expected:   Cursor{1, 1},
		},
		{
			name:       "block ends at row boundary",
			mask:       []string{"..#", "##."},
			from:       Cursor{0, 2},
			multiplier: 1,
			expected:   Cursor{1, 0},
		},
		{
			name:       "skips block then gap",
			mask:       []string{".##..#."},
			from:       Cursor{0, 1},
			multiplier: 1,
			expected:   Cursor{0, 5},
		},
		{
			name:       "gap wraps past end of board",
			mask:       []string{".##..#."},
			from:       Cursor{0, 5},
			multiplier: 1,
			expected:   Cursor{0, 1},
		},
		{
			name:       "multiplier repeats",
			mask:       []string{".##..#."},
			from:       Cursor{0, 0},
			multiplier: 2,
			expected:   Cursor{0, 5},
		},
		{
			name:       "multiplier wraps",
			mask:       []string{".##..#."},
			from:       Cursor{0, 0},
			multiplier: 3,
			expected:   Cursor{0, 1},
		},
		{
			name:       "all unrevealed moves to next row start",
			mask:       []string{"###", "###"},
			from:       Cursor{0, 0},
			multiplier: 1,
			expected:   Cursor{1, 0},
		},
		{
			name:       "all unrevealed wraps to first row",
			mask:       []string{"###", "###"},
			from:       Cursor{1, 0},
			multiplier: 1,
			expected:   Cursor{0, 0},
		},
		{
			name:       "gap crosses rows",
			mask:       []string{"#..", "...", "..#"},
			from:       Cursor{0, 0},
			multiplier: 1,
			expected:   Cursor{2, 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := board.MustParse(tt.mask...)
			got, ok := Resolve(TagBlockForward, tt.multiplier, tt.from, g)
			if !ok {
				t.Fatal("expected a motion")
			}
			if got != tt.expected {
				t.Errorf("w x%d from %v = %v, want %v", tt.multiplier, tt.from, got, tt.expected)
			}
		})
	}
}

func TestBlockForwardVisitsIncreasingIndices(t *testing.T) {
	g := board.MustParse("####", "####", "####")
	cur := Cursor{0, 0}
	prev := 0
	for i := 1; i < 3; i++ {
		cur, _ = Resolve(TagBlockForward, 1, cur, g)
		idx := cur.R*4 + cur.C
		if idx <= prev {
			t.Fatalf("step %d: index %d did not increase from %d", i, idx, prev)
		}
		prev = idx
	}
	cur, _ = Resolve(TagBlockForward, 1, cur, g)
	if cur != (Cursor{0, 0}) {
		t.Errorf("expected wrap to {0 0}, got %v", cur)
	}
}

func TestBlockBackward(t *testing.T) {
	tests := []struct {
		name       string
		mask       []string
		from       Cursor
		multiplier int
		expected   Cursor
	}{
		{
			name:       "previous block start",
			mask:       []string{"..##..#"},
			from:       Cursor{0, 6},
			multiplier: 1,
			expected:   Cursor{0, 2},
		},
		{
			name:       "gap wraps backward",
			mask:       []string{"..##..#"},
			from:       Cursor{0, 2},
			multiplier: 1,
			expected:   Cursor{0, 6},
		},
		{
			name:       "from inside a block skips to the one before",
			mask:       []string{"##..##."},
			from:       Cursor{0, 5},
			multiplier: 1,
			expected:   Cursor{0, 0},
		},
		{
			name:       "multiplier repeats",
			mask:       []string{"##..##."},
			from:       Cursor{0, 6},
			multiplier: 2,
			expected:   Cursor{0, 4},
		},
		{
			name:       "block skip stays in its row",
			mask:       []string{"###", "##.", "..."},
			from:       Cursor{1, 1},
			multiplier: 1,
			expected:   Cursor{1, 0},
		},
		{
			name:       "row-straddling run from row start",
			mask:       []string{"###", "#..", "..."},
			from:       Cursor{1, 0},
			multiplier: 1,
			expected:   Cursor{0, 0},
		},
		{
			name:       "retighten finds block start in earlier row",
			mask:       []string{"###", "..."},
			from:       Cursor{1, 2},
			multiplier: 1,
			expected:   Cursor{0, 0},
		},
		{
			name:       "fully revealed board returns to start",
			mask:       []string{"...", "...", "..."},
			from:       Cursor{1, 1},
			multiplier: 1,
			expected:   Cursor{1, 1},
		},
		{
			name:       "all unrevealed moves to previous row start",
			mask:       []string{"###", "###"},
			from:       Cursor{1, 0},
			multiplier: 1,
			expected:   Cursor{0, 0},
		},
		{
			name:       "all unrevealed wraps to last row",
			mask:       []string{"###", "###"},
			from:       Cursor{0, 0},
			multiplier: 1,
			expected:   Cursor{1, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := board.MustParse(tt.mask...)
			got, ok := Resolve(TagBlockBackward, tt.multiplier, tt.from, g)
			if !ok {
				t.Fatal("expected a motion")
			}
			if got != tt.expected {
				t.Errorf("b x%d from %v = %v, want %v", tt.multiplier, tt.from, got, tt.expected)
			}
		})
	}
}

func TestBlockVertical(t *testing.T) {
	lone := []string{"....", "....", "....", "....", "....", "..#.", "...."}
	stairs := []string{"...", "#..", "...", ".#.", "..."}

	tests := []struct {
		name       string
		mask       []string
		tag        Tag
		from       Cursor
		multiplier int
		expected   Cursor
	}{
		{"down finds lone cell", lone, TagBlockDown, Cursor{0, 0}, 1, Cursor{5, 2}},
		{"up finds lone cell", lone, TagBlockUp, Cursor{6, 3}, 1, Cursor{5, 2}},
		{"down without target keeps column", lone, TagBlockDown, Cursor{5, 3}, 1, Cursor{6, 3}},
		{"up without target keeps column", lone, TagBlockUp, Cursor{4, 1}, 1, Cursor{0, 1}},
		{"down at bottom is no-op", lone, TagBlockDown, Cursor{6, 1}, 1, Cursor{6, 1}},
		{"up at top is no-op", lone, TagBlockUp, Cursor{0, 2}, 3, Cursor{0, 2}},
		{"down twice", stairs, TagBlockDown, Cursor{0, 2}, 2, Cursor{3, 1}},
		{"down past last target", stairs, TagBlockDown, Cursor{0, 2}, 5, Cursor{4, 1}},
		{"up twice", stairs, TagBlockUp, Cursor{4, 2}, 2, Cursor{1, 0}},
		{"first column wins", []string{"...", "#.#", ".##"}, TagBlockDown, Cursor{0, 2}, 1, Cursor{1, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := board.MustParse(tt.mask...)
			got, ok := Resolve(tt.tag, tt.multiplier, tt.from, g)
			if !ok {
				t.Fatal("expected a motion")
			}
			if got != tt.expected {
				t.Errorf("%v x%d from %v = %v, want %v", tt.tag, tt.multiplier, tt.from, got, tt.expected)
			}
		})
	}
}

func TestResolveIsIdempotent(t *testing.T) {
	g := board.MustParse("#.#.", "..##", "#...")
	before := g.String()

	for tag := TagLeft; tag <= TagBlockUp; tag++ {
		first, ok1 := Resolve(tag, 2, Cursor{1, 2}, g)
		second, ok2 := Resolve(tag, 2, Cursor{1, 2}, g)
		if first != second || ok1 != ok2 {
			t.Errorf("%v: results differ (%v vs %v)", tag, first, second)
		}
	}

	if g.String() != before {
		t.Error("Resolve mutated the board")
	}
}

// maskGrid encodes revealed cells as bits, used to enumerate every board
// of a given size.
type maskGrid struct {
	rows, cols int
	bits       uint
}

func (m maskGrid) Rows() int { return m.rows }
func (m maskGrid) Cols() int { return m.cols }
func (m maskGrid) Revealed(r, c int) bool {
	return m.bits&(1<<uint(r*m.cols+c)) != 0
}

func TestResolveStaysInBounds(t *testing.T) {
	sizes := [][2]int{{1, 1}, {1, 4}, {2, 3}, {3, 2}}

	for _, size := range sizes {
		rows, cols := size[0], size[1]
		n := rows * cols
		for bits := uint(0); bits < 1<<uint(n); bits++ {
			g := maskGrid{rows: rows, cols: cols, bits: bits}
			for i := 0; i < n; i++ {
				from := Cursor{i / cols, i % cols}
				for tag := TagLeft; tag <= TagBlockUp; tag++ {
					for m := 1; m <= 4; m++ {
						got, ok := Resolve(tag, m, from, g)
						if !ok {
							t.Fatalf("%v not resolved", tag)
						}
						if got.R < 0 || got.R >= rows || got.C < 0 || got.C >= cols {
							t.Fatalf("%dx%d bits=%b %v x%d from %v = %v out of bounds",
								rows, cols, bits, tag, m, from, got)
						}
					}
				}
			}
		}
	}
}

func TestTagString(t *testing.T) {
	if TagBlockForward.String() != "BlockForward" {
		t.Errorf("String() = %q", TagBlockForward.String())
	}
	if Tag(42).String() != "Unknown" {
		t.Errorf("String() = %q", Tag(42).String())
	}
}
