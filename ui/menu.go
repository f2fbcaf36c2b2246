package ui

import (
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/midnight-awake/engine"
	"github.com/lixenwraith/midnight-awake/input"
	"github.com/lixenwraith/midnight-awake/parameter"
)

// view is the sub-page within the main or pause menu
type view uint8

const (
	viewMain view = iota
	viewSettings
	viewCode
	viewCheats
)

// entry is a menu row with its behaviour
type entry struct {
	label    string
	value    string
	accent   bool
	disabled bool
	activate func()
	adjust   func(step int)
}

// Menu is the keyboard controller for every non-HUD screen
// It owns presentation-only state (sub-page, cursor, code entry) and issues
// discrete store and phase calls; the simulation observes them next frame
type Menu struct {
	state  *engine.GameState
	phases *engine.PhaseMachine
	log    logrus.FieldLogger

	phase     engine.Phase
	view      view
	cursor    int
	code      string
	codeError engine.Deadline
	unwatch   func()
}

// NewMenu creates a menu controller; a nil logger discards output
func NewMenu(state *engine.GameState, phases *engine.PhaseMachine, log logrus.FieldLogger) *Menu {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	m := &Menu{
		state:  state,
		phases: phases,
		log:    log.WithField("component", "menu"),
		phase:  state.Phase(),
	}
	m.unwatch = engine.Watch(state, func(s engine.Snapshot) engine.Phase { return s.Phase }, m.phaseChanged)
	return m
}

// phaseChanged drops sub-page state whenever the phase changes underneath the menu
func (m *Menu) phaseChanged(p engine.Phase) {
	m.phase = p
	m.view = viewMain
	m.cursor = 0
	m.code = ""
	m.codeError.Clear()
}

// Close stops following phase changes
func (m *Menu) Close() {
	m.unwatch()
}

// Advance ticks the code error flag
func (m *Menu) Advance(dt time.Duration) {
	m.codeError.Tick(dt)
}

// CodeError reports whether a rejected code is still flagged
func (m *Menu) CodeError() bool {
	return m.codeError.Armed()
}

// Code returns the digits typed so far
func (m *Menu) Code() string {
	return m.code
}

// Active reports whether the current phase shows a menu instead of the HUD
func (m *Menu) Active() bool {
	switch m.state.Phase() {
	case engine.PhaseWarning, engine.PhaseMenu, engine.PhasePaused, engine.PhaseDawn:
		return true
	}
	return false
}

func (m *Menu) entries() []entry {
	switch m.phase {
	case engine.PhaseWarning:
		remaining := m.phases.WarningRemaining()
		if remaining > 0 {
			secs := int(math.Ceil(remaining.Seconds()))
			return []entry{{label: fmt.Sprintf("ЗАКРЫТЬ (%d)", secs), disabled: true}}
		}
		return []entry{{label: "ЗАКРЫТЬ", activate: func() { m.phases.DismissWarning() }}}

	case engine.PhaseDawn:
		return []entry{{label: "MAIN MENU", activate: func() { m.phases.ReturnToMenu() }}}

	case engine.PhaseMenu, engine.PhasePaused:
		switch m.view {
		case viewSettings:
			return m.settingsEntries()
		case viewCode:
			return m.codeEntries()
		case viewCheats:
			return m.cheatEntries()
		}
		if m.phase == engine.PhasePaused {
			return m.pauseEntries()
		}
		return m.mainEntries()
	}
	return nil
}

func (m *Menu) open(v view) func() {
	return func() {
		m.view = v
		m.cursor = 0
	}
}

func (m *Menu) mainEntries() []entry {
	es := []entry{
		{label: "START GAME", activate: func() {
			if m.phases.StartGame() {
				m.log.Info("new run started")
			}
		}},
		{label: "SETTINGS", activate: m.open(viewSettings)},
	}
	if m.state.CheatsUnlocked() {
		es = append(es, entry{label: "CHEATS", accent: true, activate: m.open(viewCheats)})
	} else {
		es = append(es, entry{label: "SPECIAL CODE", activate: m.open(viewCode)})
	}
	return es
}

func (m *Menu) pauseEntries() []entry {
	es := []entry{
		{label: "RESUME", activate: func() { m.phases.TogglePause() }},
		{label: "SETTINGS", activate: m.open(viewSettings)},
	}
	if m.state.CheatsUnlocked() {
		es = append(es, entry{label: "CHEATS", accent: true, activate: m.open(viewCheats)})
	}
	es = append(es, entry{label: "MAIN MENU", activate: func() { m.phases.ReturnToMenu() }})
	return es
}

func (m *Menu) settingsEntries() []entry {
	return []entry{
		{
			label:  "MOUSE SENSITIVITY",
			value:  fmt.Sprintf("%.1f", m.state.MouseSensitivity()),
			adjust: m.adjustSensitivity,
		},
		{label: "[ BACK ]", activate: m.open(viewMain)},
	}
}

// adjustSensitivity moves the slider by whole steps, snapping to one decimal
func (m *Menu) adjustSensitivity(step int) {
	v := m.state.MouseSensitivity() + float64(step)*parameter.MouseSensitivityStep
	m.state.SetMouseSensitivity(math.Round(v*10) / 10)
}

func (m *Menu) codeEntries() []entry {
	field := m.code + strings.Repeat("_", parameter.CheatCodeLength-len(m.code))
	return []entry{
		{label: "CODE", value: field, accent: m.codeError.Armed(), activate: m.submitCode},
		{label: "[ BACK ]", activate: m.open(viewMain)},
	}
}

func (m *Menu) submitCode() {
	if m.state.UnlockCheats(m.code) {
		m.log.Info("cheats unlocked")
		m.code = ""
		m.codeError.Clear()
		m.open(viewCheats)()
		return
	}
	m.log.Debug("special code rejected")
	m.codeError.Arm(parameter.CodeErrorDuration)
}

// flag reads a boolean store field; unknown fields read as false
func (m *Menu) flag(f engine.Field) bool {
	v, _ := m.state.Get(f)
	on, _ := v.(bool)
	return on
}

func (m *Menu) cheatEntries() []entry {
	toggle := func(label string, f engine.Field) entry {
		on := m.flag(f)
		value := "OFF"
		if on {
			value = "ON"
		}
		return entry{label: label, value: value, accent: on, activate: func() {
			if err := m.state.Set(f, !on); err != nil {
				m.log.WithError(err).Warn("cheat toggle failed")
				return
			}
			m.log.WithFields(logrus.Fields{"cheat": label, "on": m.flag(f)}).Info("cheat toggled")
		}}
	}
	return []entry{
		toggle("GOD MODE (FLY)", engine.FieldCheatFlyMode),
		toggle("SET TIME: DAY", engine.FieldCheatDayTime),
		toggle("INFINITE STAMINA", engine.FieldCheatInfiniteStamina),
		toggle("INFINITE BATTERY", engine.FieldCheatInfiniteBattery),
		{label: "[ BACK ]", activate: m.open(viewMain)},
	}
}

// HandleKey applies one key press and reports whether the menu consumed it
// Unconsumed keys (Escape on a top-level page) fall through to the game tracker
func (m *Menu) HandleKey(ev input.KeyEvent) bool {
	es := m.entries()
	if len(es) == 0 {
		return false
	}
	m.cursor = clampCursor(m.cursor, len(es))

	if m.view == viewCode {
		if d, ok := ev.Key.Digit(); ok {
			if len(m.code) < parameter.CheatCodeLength {
				m.code += string(rune('0' + d))
			}
			return true
		}
		if ev.Key == input.KeyBackspace {
			if len(m.code) > 0 {
				m.code = m.code[:len(m.code)-1]
			}
			return true
		}
	}

	switch ev.Key {
	case input.KeyArrowUp, input.KeyW:
		m.cursor = (m.cursor - 1 + len(es)) % len(es)
	case input.KeyArrowDown, input.KeyS:
		m.cursor = (m.cursor + 1) % len(es)
	case input.KeyArrowLeft, input.KeyA:
		if fn := es[m.cursor].adjust; fn != nil {
			fn(-1)
		}
	case input.KeyArrowRight, input.KeyD:
		if fn := es[m.cursor].adjust; fn != nil {
			fn(1)
		}
	case input.KeyEnter, input.KeySpace:
		e := es[m.cursor]
		if !e.disabled && e.activate != nil {
			e.activate()
		}
	case input.KeyEscape, input.KeyBackspace:
		if m.view == viewMain {
			return false
		}
		m.open(viewMain)()
	default:
		return false
	}
	return true
}

func clampCursor(c, n int) int {
	if c < 0 {
		return 0
	}
	if c >= n {
		return n - 1
	}
	return c
}

// Screen builds the current menu page; nil while the HUD is showing
func (m *Menu) Screen() *Screen {
	es := m.entries()
	if es == nil {
		return nil
	}
	m.cursor = clampCursor(m.cursor, len(es))

	s := &Screen{}
	switch m.phase {
	case engine.PhaseWarning:
		s.Title = "ПРЕДУПРЕЖДЕНИЕ"
		s.Body = []string{
			"Это ранняя версия игры.",
			"",
			"Сюда не добавлены никакие элементы сюжета,",
			"и не исправлены баги, недочёты, и другие ошибки.",
			"Мы занимаемся разработкой дальше, надеемся на ваше терпение.",
		}
	case engine.PhaseDawn:
		s.Title = "You Survived."
		s.Body = []string{"The nightmare fades with the light."}
		s.Light = true
	case engine.PhasePaused:
		s.Title = "PAUSED"
	default:
		s.Title = "MIDNIGHT AWAKE"
		s.Hint = "v0.0.1 ALPHA | HEADPHONES RECOMMENDED"
	}

	switch m.view {
	case viewSettings:
		s.Body = []string{"SETTINGS"}
		s.Hint = "←/→ adjust"
	case viewCode:
		s.Body = []string{"ENTER SPECIAL CODE"}
		if m.codeError.Armed() {
			s.Hint = "INVALID CODE"
		}
	case viewCheats:
		s.Body = []string{"DEV CHEATS"}
	}

	for i, e := range es {
		s.Items = append(s.Items, Item{
			Label:    e.label,
			Value:    e.value,
			Selected: i == m.cursor,
			Disabled: e.disabled,
			Accent:   e.accent,
		})
	}
	return s
}
