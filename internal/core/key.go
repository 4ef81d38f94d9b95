package core

import "unicode"

// Key is a single normalized key press fed to the state machine.
// Letter keys are their uppercase rune; arrows use private-use runes.
type Key rune

const (
	KeyNone  Key = 0
	KeyUp    Key = '\uE000'
	KeyDown  Key = '\uE001'
	KeyLeft  Key = '\uE002'
	KeyRight Key = '\uE003'
)

// NormalizeKey uppercases letter keys so matching is case-insensitive.
func NormalizeKey(r rune) Key {
	return Key(unicode.ToUpper(r))
}

// IsDirection reports whether k is one of the four arrow keys.
func (k Key) IsDirection() bool {
	switch k {
	case KeyUp, KeyDown, KeyLeft, KeyRight:
		return true
	}
	return false
}

// String returns a readable name, used in logs.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "none"
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	default:
		return string(rune(k))
	}
}
