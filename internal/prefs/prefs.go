// Package prefs holds the user's display preferences and persists them as
// key/value pairs.
package prefs

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/addisonking/zsweep/internal/core"
)

// Preference keys.
const (
	KeyZenMode     = "zen_mode"
	KeyLineNumbers = "line_numbers"
	KeyMineIcon    = "mine_icon"
)

// LineNumberMode controls the row gutter.
type LineNumberMode string

const (
	LineNumbersOff      LineNumberMode = "off"
	LineNumbersNormal   LineNumberMode = "normal"
	LineNumbersRelative LineNumberMode = "relative"
	LineNumbersHybrid   LineNumberMode = "hybrid"
)

// MineIcon is the icon theme used for mines.
type MineIcon string

const (
	MineIconAsterisk  MineIcon = "asterisk"
	MineIconSkull     MineIcon = "skull"
	MineIconRadiation MineIcon = "radiation"
	MineIconFlame     MineIcon = "flame"
)

// Glyph returns the single-cell marker drawn for the icon.
func (i MineIcon) Glyph() string {
	switch i {
	case MineIconSkull:
		return "☠"
	case MineIconRadiation:
		return "☢"
	case MineIconFlame:
		return "♨"
	default:
		return "*"
	}
}

// Store is the persistence the preferences need.
type Store interface {
	Preference(key string) (string, bool, error)
	SetPreference(key, value string) error
}

// Prefs is the full set of user preferences.
type Prefs struct {
	ZenMode     bool           `yaml:"zen_mode"`
	LineNumbers LineNumberMode `yaml:"line_numbers"`
	MineIcon    MineIcon       `yaml:"mine_icon"`
}

// Default returns the built-in preferences.
func Default() Prefs {
	return Prefs{
		ZenMode:     false,
		LineNumbers: LineNumbersOff,
		MineIcon:    MineIconAsterisk,
	}
}

// Names returns the preference keys in sorted order.
func Names() []string {
	names := []string{KeyZenMode, KeyLineNumbers, KeyMineIcon}
	sort.Strings(names)
	return names
}

// Load overlays stored values on top of base. Invalid stored values are
// reported as an error and leave the base value in place.
func Load(s Store, base Prefs) (Prefs, error) {
	p := base
	for _, name := range Names() {
		v, ok, err := s.Preference(name)
		if err != nil {
			return base, err
		}
		if !ok {
			continue
		}
		if err := p.Set(name, v); err != nil {
			return p, fmt.Errorf("prefs: stored value: %w", err)
		}
	}
	return p, nil
}

// Save writes every preference to the store.
func (p Prefs) Save(s Store) error {
	for _, name := range Names() {
		v, _ := p.Get(name)
		if err := s.SetPreference(name, v); err != nil {
			return err
		}
	}
	return nil
}

// Get returns the string form of a preference.
func (p Prefs) Get(name string) (string, error) {
	switch name {
	case KeyZenMode:
		return strconv.FormatBool(p.ZenMode), nil
	case KeyLineNumbers:
		return string(p.LineNumbers), nil
	case KeyMineIcon:
		return string(p.MineIcon), nil
	default:
		return "", fmt.Errorf("prefs: unknown preference %q", name)
	}
}

// Set parses and assigns a preference value.
func (p *Prefs) Set(name, value string) error {
	switch name {
	case KeyZenMode:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("prefs: %s must be true or false, got %q", name, value)
		}
		p.ZenMode = b

	case KeyLineNumbers:
		mode := LineNumberMode(value)
		switch mode {
		case LineNumbersOff, LineNumbersNormal, LineNumbersRelative, LineNumbersHybrid:
			p.LineNumbers = mode
		default:
			return fmt.Errorf("prefs: %s must be off, normal, relative or hybrid, got %q", name, value)
		}

	case KeyMineIcon:
		icon := MineIcon(value)
		switch icon {
		case MineIconAsterisk, MineIconSkull, MineIconRadiation, MineIconFlame:
			p.MineIcon = icon
		default:
			return fmt.Errorf("prefs: %s must be asterisk, skull, radiation or flame, got %q", name, value)
		}

	default:
		return fmt.Errorf("prefs: unknown preference %q", name)
	}
	return nil
}

// LineLabel returns the gutter text for row given the cursor row, or ""
// when line numbers are off. Normal numbers are 1-based; relative numbers
// are distances from the cursor; hybrid shows the absolute number on the
// cursor row and relative numbers elsewhere.
func (p Prefs) LineLabel(row, cursorRow int) string {
	switch p.LineNumbers {
	case LineNumbersNormal:
		return strconv.Itoa(row + 1)
	case LineNumbersRelative:
		return strconv.Itoa(core.Abs(row - cursorRow))
	case LineNumbersHybrid:
		if row == cursorRow {
			return strconv.Itoa(row + 1)
		}
		return strconv.Itoa(core.Abs(row - cursorRow))
	default:
		return ""
	}
}
