// Package input translates key names into semantic board actions and
// accumulates numeric count prefixes. Key names are the strings produced
// by Bubble Tea's KeyMsg.String().
package input

import "github.com/addisonking/zsweep/internal/motion"

// Kind is the category of an Action.
type Kind int

const (
	KindNone        Kind = iota
	KindMotion           // positional motion, see Action.Motion
	KindDigit            // 1-9, accumulates a count
	KindZero             // 0: count digit or line-start motion
	KindReveal           // i, Enter
	KindFlag             // f
	KindSmart            // Space, a
	KindStartSearch      // /
	KindNextMatch        // n
	KindPrevMatch        // N
	KindCancel           // Esc
	KindQuit             // q, Ctrl+C
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "None"
	case KindMotion:
		return "Motion"
	case KindDigit:
		return "Digit"
	case KindZero:
		return "Zero"
	case KindReveal:
		return "Reveal"
	case KindFlag:
		return "Flag"
	case KindSmart:
		return "Smart"
	case KindStartSearch:
		return "StartSearch"
	case KindNextMatch:
		return "NextMatch"
	case KindPrevMatch:
		return "PrevMatch"
	case KindCancel:
		return "Cancel"
	case KindQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Action is the semantic meaning of a key press.
type Action struct {
	Kind   Kind
	Motion motion.Tag // set when Kind == KindMotion
	Digit  rune       // set when Kind == KindDigit
}

// String returns a short description, e.g. "Motion(BlockForward)".
func (a Action) String() string {
	switch a.Kind {
	case KindMotion:
		return "Motion(" + a.Motion.String() + ")"
	case KindDigit:
		return "Digit(" + string(a.Digit) + ")"
	default:
		return a.Kind.String()
	}
}

func motionAction(t motion.Tag) Action {
	return Action{Kind: KindMotion, Motion: t}
}

// keyTable is the static key binding table. Digits 1-9 are handled
// separately in Resolve.
var keyTable = map[string]Action{
	"0": {Kind: KindZero},
	"_": motionAction(motion.TagLineStart),

	"/": {Kind: KindStartSearch},
	"n": {Kind: KindNextMatch},
	"N": {Kind: KindPrevMatch},

	"h":     motionAction(motion.TagLeft),
	"left":  motionAction(motion.TagLeft),
	"j":     motionAction(motion.TagDown),
	"down":  motionAction(motion.TagDown),
	"k":     motionAction(motion.TagUp),
	"up":    motionAction(motion.TagUp),
	"l":     motionAction(motion.TagRight),
	"right": motionAction(motion.TagRight),

	"$": motionAction(motion.TagLineEnd),
	"G": motionAction(motion.TagBottom),
	"g": motionAction(motion.TagTop),

	"w": motionAction(motion.TagBlockForward),
	"b": motionAction(motion.TagBlockBackward),
	"}": motionAction(motion.TagBlockDown),
	"{": motionAction(motion.TagBlockUp),

	"i":     {Kind: KindReveal},
	"enter": {Kind: KindReveal},
	" ":     {Kind: KindSmart},
	"space": {Kind: KindSmart},
	"a":     {Kind: KindSmart},
	"f":     {Kind: KindFlag},

	"esc":    {Kind: KindCancel},
	"q":      {Kind: KindQuit},
	"ctrl+c": {Kind: KindQuit},
}

// Resolve maps a key name to its action. Unbound keys return false.
func Resolve(key string) (Action, bool) {
	if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
		return Action{Kind: KindDigit, Digit: rune(key[0])}, true
	}
	a, ok := keyTable[key]
	return a, ok
}
