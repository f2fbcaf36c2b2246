package input

// Key identifies a physical key independent of the terminal backend
type Key uint8

const (
	KeyNone Key = iota

	// Movement
	KeyW
	KeyA
	KeyS
	KeyD
	KeyShiftLeft
	KeySpace
	KeyControlLeft

	// Actions
	KeyF
	KeyE
	KeyEscape
	KeyBackquote
	KeyEnter
	KeyBackspace

	// Look keys stand in for pointer motion on terminals without mouse reporting
	KeyArrowLeft
	KeyArrowRight
	KeyArrowUp
	KeyArrowDown

	// Digits are contiguous so Digit can index them
	KeyDigit0
	KeyDigit1
	KeyDigit2
	KeyDigit3
	KeyDigit4
	KeyDigit5
	KeyDigit6
	KeyDigit7
	KeyDigit8
	KeyDigit9
)

var keyNames = map[Key]string{
	KeyNone:        "None",
	KeyW:           "KeyW",
	KeyA:           "KeyA",
	KeyS:           "KeyS",
	KeyD:           "KeyD",
	KeyShiftLeft:   "ShiftLeft",
	KeySpace:       "Space",
	KeyControlLeft: "ControlLeft",
	KeyF:           "KeyF",
	KeyE:           "KeyE",
	KeyEscape:      "Escape",
	KeyBackquote:   "Backquote",
	KeyEnter:       "Enter",
	KeyBackspace:   "Backspace",
	KeyArrowLeft:   "ArrowLeft",
	KeyArrowRight:  "ArrowRight",
	KeyArrowUp:     "ArrowUp",
	KeyArrowDown:   "ArrowDown",
}

// String returns the browser-style key code name
func (k Key) String() string {
	if d, ok := k.Digit(); ok {
		return "Digit" + string(rune('0'+d))
	}
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "Unknown"
}

// DigitKey returns the key for decimal digit d
func DigitKey(d int) Key {
	if d < 0 || d > 9 {
		return KeyNone
	}
	return KeyDigit0 + Key(d)
}

// Digit returns the decimal value of a digit key
func (k Key) Digit() (int, bool) {
	if k >= KeyDigit0 && k <= KeyDigit9 {
		return int(k - KeyDigit0), true
	}
	return 0, false
}
