package input

import (
	"testing"

	"github.com/addisonking/zsweep/internal/motion"
)

func TestResolveKeys(t *testing.T) {
	tests := []struct {
		key      string
		expected Action
	}{
		{"h", Action{Kind: KindMotion, Motion: motion.TagLeft}},
		{"left", Action{Kind: KindMotion, Motion: motion.TagLeft}},
		{"j", Action{Kind: KindMotion, Motion: motion.TagDown}},
		{"k", Action{Kind: KindMotion, Motion: motion.TagUp}},
		{"right", Action{Kind: KindMotion, Motion: motion.TagRight}},
		{"_", Action{Kind: KindMotion, Motion: motion.TagLineStart}},
		{"$", Action{Kind: KindMotion, Motion: motion.TagLineEnd}},
		{"g", Action{Kind: KindMotion, Motion: motion.TagTop}},
		{"G", Action{Kind: KindMotion, Motion: motion.TagBottom}},
		{"w", Action{Kind: KindMotion, Motion: motion.TagBlockForward}},
		{"b", Action{Kind: KindMotion, Motion: motion.TagBlockBackward}},
		{"}", Action{Kind: KindMotion, Motion: motion.TagBlockDown}},
		{"{", Action{Kind: KindMotion, Motion: motion.TagBlockUp}},
		{"0", Action{Kind: KindZero}},
		{"5", Action{Kind: KindDigit, Digit: '5'}},
		{"9", Action{Kind: KindDigit, Digit: '9'}},
		{"i", Action{Kind: KindReveal}},
		{"enter", Action{Kind: KindReveal}},
		{" ", Action{Kind: KindSmart}},
		{"a", Action{Kind: KindSmart}},
		{"f", Action{Kind: KindFlag}},
		{"/", Action{Kind: KindStartSearch}},
		{"n", Action{Kind: KindNextMatch}},
		{"N", Action{Kind: KindPrevMatch}},
		{"esc", Action{Kind: KindCancel}},
		{"q", Action{Kind: KindQuit}},
		{"ctrl+c", Action{Kind: KindQuit}},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, ok := Resolve(tt.key)
			if !ok {
				t.Fatalf("Resolve(%q) not bound", tt.key)
			}
			if got != tt.expected {
				t.Errorf("Resolve(%q) = %v, want %v", tt.key, got, tt.expected)
			}
		})
	}
}

func TestResolveUnbound(t *testing.T) {
	for _, key := range []string{"x", "10", "", "ctrl+z", "W"} {
		if a, ok := Resolve(key); ok {
			t.Errorf("Resolve(%q) = %v, want unbound", key, a)
		}
	}
}

func TestActionString(t *testing.T) {
	a, _ := Resolve("w")
	if a.String() != "Motion(BlockForward)" {
		t.Errorf("String() = %q", a.String())
	}
	d, _ := Resolve("7")
	if d.String() != "Digit(7)" {
		t.Errorf("String() = %q", d.String())
	}
}

func TestCountAccumulates(t *testing.T) {
	var c Count
	if c.Pending() {
		t.Fatal("new count should not be pending")
	}
	if c.Push('0') {
		t.Error("leading zero should be rejected")
	}
	for _, r := range "120" {
		if !c.Push(r) {
			t.Fatalf("Push(%q) rejected", r)
		}
	}
	if c.String() != "120" {
		t.Errorf("String() = %q, want 120", c.String())
	}
	if got := c.Take(); got != 120 {
		t.Errorf("Take() = %d, want 120", got)
	}
	if c.Pending() || c.String() != "" {
		t.Error("Take should reset the count")
	}
	if got := c.Take(); got != 1 {
		t.Errorf("empty Take() = %d, want 1", got)
	}
}

func TestCountRejectsNonDigits(t *testing.T) {
	var c Count
	if c.Push('x') {
		t.Error("non-digit accepted")
	}
}

func TestCountOverflowCaps(t *testing.T) {
	var c Count
	for i := 0; i < 30; i++ {
		c.Push('9')
	}
	if c.Value() != maxCount {
		t.Errorf("Value() = %d, want %d", c.Value(), maxCount)
	}
}
