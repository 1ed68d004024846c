package input

import "strconv"

// maxCount caps accumulated counts. Larger values only make block motions
// loop longer without reaching new cells.
const maxCount = 9999

// Count accumulates a numeric prefix typed before a motion.
type Count struct {
	value  int
	active bool
}

// Push adds a digit to the count. A leading '0' is rejected because on
// its own it is the line-start motion. Returns true if the digit was taken.
func (c *Count) Push(r rune) bool {
	if r < '0' || r > '9' {
		return false
	}
	digit := int(r - '0')
	if !c.active && digit == 0 {
		return false
	}
	c.active = true

	if c.value*10+digit > maxCount {
		c.value = maxCount
		return true
	}
	c.value = c.value*10 + digit
	return true
}

// Pending reports whether digits have been typed since the last Take.
func (c *Count) Pending() bool {
	return c.active
}

// Value returns the effective count without consuming it (1 if none).
func (c *Count) Value() int {
	if c.value <= 0 {
		return 1
	}
	return c.value
}

// Take returns the effective count and resets the accumulator.
func (c *Count) Take() int {
	n := c.Value()
	c.Reset()
	return n
}

// Reset clears the count.
func (c *Count) Reset() {
	c.value = 0
	c.active = false
}

// String returns the typed digits, or "" when no count is pending.
func (c *Count) String() string {
	if !c.active {
		return ""
	}
	return strconv.Itoa(c.value)
}
