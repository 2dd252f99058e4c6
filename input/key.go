package input

import "github.com/gdamore/tcell/v2"

// Key identifies a physical key the game listens to
type Key uint8

const (
	KeyA Key = iota
	KeyD
	KeyW
	KeyZ
	KeyK
	KeyP
	KeyLeft
	KeyRight
	KeyUp
	KeySpace
	KeyEnter
	KeyEscape
	keyCount
)

var keyNames = [keyCount]string{
	KeyA:      "a",
	KeyD:      "d",
	KeyW:      "w",
	KeyZ:      "z",
	KeyK:      "k",
	KeyP:      "p",
	KeyLeft:   "left",
	KeyRight:  "right",
	KeyUp:     "up",
	KeySpace:  "space",
	KeyEnter:  "enter",
	KeyEscape: "escape",
}

func (k Key) String() string {
	if k >= keyCount {
		return "unknown"
	}
	return keyNames[k]
}

// KeyState is the raw held/not-held state of every tracked key for one frame
type KeyState [keyCount]bool

// With returns a copy with the given keys marked held
func (s KeyState) With(keys ...Key) KeyState {
	for _, k := range keys {
		if k < keyCount {
			s[k] = true
		}
	}
	return s
}

// Rune-bound keys, lowercase; uppercase input is folded before lookup
var runeKeys = map[rune]Key{
	'a': KeyA,
	'd': KeyD,
	'w': KeyW,
	'z': KeyZ,
	'k': KeyK,
	'p': KeyP,
	' ': KeySpace,
}

// Special (non-rune) terminal keys
var specialKeys = map[tcell.Key]Key{
	tcell.KeyLeft:   KeyLeft,
	tcell.KeyRight:  KeyRight,
	tcell.KeyUp:     KeyUp,
	tcell.KeyEnter:  KeyEnter,
	tcell.KeyEscape: KeyEscape,
}

// keyFromTerminal maps a tcell key event payload to a tracked key
func keyFromTerminal(k tcell.Key, r rune) (Key, bool) {
	if k == tcell.KeyRune {
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		key, ok := runeKeys[r]
		return key, ok
	}
	key, ok := specialKeys[k]
	return key, ok
}
