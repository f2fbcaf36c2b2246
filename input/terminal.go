package input

import (
	"sort"
	"time"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/midnight-awake/parameter"
)

// KeyEvent is a translated terminal key press
type KeyEvent struct {
	Key  Key
	Rune rune
	// Shift is set for upper-case letters, which imply sprint
	Shift bool
}

var specialKeys = map[tcell.Key]Key{
	tcell.KeyEscape:     KeyEscape,
	tcell.KeyEnter:      KeyEnter,
	tcell.KeyBackspace:  KeyBackspace,
	tcell.KeyBackspace2: KeyBackspace,
	tcell.KeyLeft:       KeyArrowLeft,
	tcell.KeyRight:      KeyArrowRight,
	tcell.KeyUp:         KeyArrowUp,
	tcell.KeyDown:       KeyArrowDown,
}

var runeKeys = map[rune]Key{
	'w': KeyW,
	'a': KeyA,
	's': KeyS,
	'd': KeyD,
	'f': KeyF,
	'e': KeyE,
	' ': KeySpace,
	'c': KeyControlLeft, // terminals never report a bare Ctrl press
	'`': KeyBackquote,
}

// Translate maps a tcell key event onto a Key; unknown keys yield KeyNone
func Translate(ev *tcell.EventKey) KeyEvent {
	if ev.Key() != tcell.KeyRune {
		return KeyEvent{Key: specialKeys[ev.Key()]}
	}

	r := ev.Rune()
	if r >= '0' && r <= '9' {
		return KeyEvent{Key: DigitKey(int(r - '0')), Rune: r}
	}
	lower := unicode.ToLower(r)
	return KeyEvent{
		Key:   runeKeys[lower],
		Rune:  r,
		Shift: lower != r,
	}
}

// TerminalKeys synthesizes key releases for terminals, which report only presses
// A hold key counts as held until no repeat arrives within the hold timeout;
// every other key is released right after its press
type TerminalKeys struct {
	hold time.Duration
	last map[Key]time.Time

	mouseX, mouseY int
	mouseSeen      bool
}

// NewTerminalKeys creates an adapter; a non-positive hold uses the default timeout
func NewTerminalKeys(hold time.Duration) *TerminalKeys {
	if hold <= 0 {
		hold = parameter.KeyHoldTimeout
	}
	return &TerminalKeys{
		hold: hold,
		last: make(map[Key]time.Time),
	}
}

// Press records k as held at now and reports whether it was a fresh press
func (tk *TerminalKeys) Press(k Key, now time.Time) bool {
	_, held := tk.last[k]
	tk.last[k] = now
	return !held
}

// Held reports whether k is currently considered held
func (tk *TerminalKeys) Held(k Key) bool {
	_, ok := tk.last[k]
	return ok
}

// Expire releases keys with no repeat within the hold timeout, in key order
func (tk *TerminalKeys) Expire(now time.Time) []Key {
	var released []Key
	for k, at := range tk.last {
		if now.Sub(at) >= tk.hold {
			released = append(released, k)
		}
	}
	sort.Slice(released, func(i, j int) bool { return released[i] < released[j] })
	for _, k := range released {
		delete(tk.last, k)
	}
	return released
}

// ReleaseAll drops every held key, returning them in key order
func (tk *TerminalKeys) ReleaseAll() []Key {
	released := make([]Key, 0, len(tk.last))
	for k := range tk.last {
		released = append(released, k)
	}
	sort.Slice(released, func(i, j int) bool { return released[i] < released[j] })
	clear(tk.last)
	return released
}

// Feed translates a key event and forwards presses to the tracker
// Upper-case letters also hold sprint; a lower-case letter releases a synthesized sprint.
// Triggers get a full press and release so each terminal press is a new edge
func (tk *TerminalKeys) Feed(ev *tcell.EventKey, now time.Time, tr *Tracker) KeyEvent {
	ke := Translate(ev)
	if ke.Key == KeyNone {
		return ke
	}

	if ke.Rune != 0 && unicode.IsLetter(ke.Rune) {
		if ke.Shift {
			tk.Press(KeyShiftLeft, now)
			tr.KeyDown(KeyShiftLeft)
		} else if tk.Held(KeyShiftLeft) {
			delete(tk.last, KeyShiftLeft)
			tr.KeyUp(KeyShiftLeft)
		}
	}

	if tr.table.Lookup(ke.Key).Behavior != BehaviorHold {
		tr.KeyDown(ke.Key)
		tr.KeyUp(ke.Key)
		return ke
	}
	tk.Press(ke.Key, now)
	tr.KeyDown(ke.Key)
	return ke
}

// Sweep forwards synthesized releases to the tracker
func (tk *TerminalKeys) Sweep(now time.Time, tr *Tracker) {
	for _, k := range tk.Expire(now) {
		tr.KeyUp(k)
	}
}

// Mouse converts absolute cell motion into a pointer delta for the tracker
func (tk *TerminalKeys) Mouse(ev *tcell.EventMouse, tr *Tracker) {
	x, y := ev.Position()
	if tk.mouseSeen {
		dx := float64(x-tk.mouseX) * parameter.MouseCellWidth
		dy := float64(y-tk.mouseY) * parameter.MouseCellHeight
		if dx != 0 || dy != 0 {
			tr.Look(dx, dy)
		}
	}
	tk.mouseX, tk.mouseY = x, y
	tk.mouseSeen = true
}
