package game

// Key identifies one button of the resistor-ladder keypad. All five buttons
// share a single analog pin, so a key is really a voltage band on that pin.
type Key uint8

const (
	KeyRight Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeySelect
	KeyNone // nothing held, or a sample that lands in no band
)

// NumKeys is the number of real buttons (KeyNone excluded).
const NumKeys = 5

var keyNames = map[Key]string{
	KeyRight:  "RIGHT",
	KeyUp:     "UP",
	KeyDown:   "DOWN",
	KeyLeft:   "LEFT",
	KeySelect: "SELECT",
	KeyNone:   "NONE",
}

// String returns the display name of the key.
func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "NONE"
}

// Playable reports whether the key is one of the five real buttons.
func (k Key) Playable() bool {
	return k < KeyNone
}

// PlayableKeys returns the five real buttons in ladder order, lowest
// voltage band first.
func PlayableKeys() [NumKeys]Key {
	return [NumKeys]Key{KeyRight, KeyUp, KeyDown, KeyLeft, KeySelect}
}
