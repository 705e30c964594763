// @focus: #sys { io } #input { keys }
package terminal

// Key represents a parsed logical key
type Key uint8

const (
	KeyNone    Key = iota // nothing pending
	KeyUnknown            // unrecognized input byte

	// Letters, case-insensitive
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ

	// Digits
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9

	// Control keys
	KeyEnter
	KeyEscape
	KeyInterrupt // Ctrl+C, delivered as a byte under raw mode

	// Navigation
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
)

// KeyFromRune maps a letter or digit to its key, KeyUnknown otherwise
func KeyFromRune(r rune) Key {
	switch {
	case r >= 'a' && r <= 'z':
		return KeyA + Key(r-'a')
	case r >= 'A' && r <= 'Z':
		return KeyA + Key(r-'A')
	case r >= '0' && r <= '9':
		return Key0 + Key(r-'0')
	}
	return KeyUnknown
}

// keyToName maps non-character keys to display names
var keyToName = map[Key]string{
	KeyNone:      "none",
	KeyUnknown:   "unknown",
	KeyEnter:     "enter",
	KeyEscape:    "escape",
	KeyInterrupt: "ctrl_c",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyLeft:      "left",
	KeyRight:     "right",
}

// String returns a lower-case key name, letters and digits as themselves
func (k Key) String() string {
	switch {
	case k >= KeyA && k <= KeyZ:
		return string(rune('a' + (k - KeyA)))
	case k >= Key0 && k <= Key9:
		return string(rune('0' + (k - Key0)))
	}
	if name, ok := keyToName[k]; ok {
		return name
	}
	return "invalid"
}
