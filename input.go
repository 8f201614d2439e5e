package widgets

// MouseButton represents a mouse button.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
)

// Key represents a keyboard key that widgets react to.
type Key int

const (
	KeyNone Key = iota
	KeyTab
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	KeyDelete
	KeyBackspace
	KeyEnter
	KeyEscape
	KeyA
	KeyC
	KeyV
	KeyX
	KeyY
	KeyZ
)

// String returns the key name.
func (k Key) String() string {
	if k >= 0 && int(k) < len(keyNames) {
		return keyNames[k]
	}
	return "Key(?)"
}

var keyNames = [...]string{
	KeyNone:      "None",
	KeyTab:       "Tab",
	KeyLeft:      "Left",
	KeyRight:     "Right",
	KeyUp:        "Up",
	KeyDown:      "Down",
	KeyPageUp:    "PageUp",
	KeyPageDown:  "PageDown",
	KeyHome:      "Home",
	KeyEnd:       "End",
	KeyDelete:    "Delete",
	KeyBackspace: "Backspace",
	KeyEnter:     "Enter",
	KeyEscape:    "Escape",
	KeyA:         "A",
	KeyC:         "C",
	KeyV:         "V",
	KeyX:         "X",
	KeyY:         "Y",
	KeyZ:         "Z",
}

// Modifiers is the set of modifier keys held during an input event.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModCtrl
	ModAlt
	ModSuper
)

// Has reports whether every modifier in m2 is held.
func (m Modifiers) Has(m2 Modifiers) bool {
	return m&m2 == m2
}

// KeyTarget is anything that accepts keyboard input: widgets implement it
// so input backends can forward key and character events.
type KeyTarget interface {
	HandleKey(key Key, mods Modifiers) bool
	HandleChar(r rune) bool
}
