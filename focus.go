package widgets

// FocusEvent is fired when keyboard focus moves. Target is nil when focus
// was cleared.
type FocusEvent struct {
	Target KeyTarget
}

// FocusRing tracks which of several widgets receives keyboard input and
// cycles between them with Ctrl+Tab / Ctrl+Shift+Tab.
//
// A FocusRing is itself a KeyTarget: input backends deliver everything to
// the ring, which keeps the focus keys and forwards the rest to the focused
// widget.
type FocusRing struct {
	targets      []KeyTarget
	focusedIndex int // -1 = none

	focusChanged Event[FocusEvent]
}

// NewFocusRing creates a ring over targets. The first target starts focused.
func NewFocusRing(targets ...KeyTarget) *FocusRing {
	r := &FocusRing{targets: targets, focusedIndex: -1}
	if len(targets) > 0 {
		r.focusedIndex = 0
	}
	return r
}

// Add appends a target to the ring. The first target added gets focus.
func (r *FocusRing) Add(t KeyTarget) {
	r.targets = append(r.targets, t)
	if r.focusedIndex < 0 {
		r.setFocus(len(r.targets) - 1)
	}
}

// Remove takes t out of the ring. If t was focused the next target takes
// over.
func (r *FocusRing) Remove(t KeyTarget) {
	for i, cur := range r.targets {
		if cur != t {
			continue
		}
		r.targets = append(r.targets[:i], r.targets[i+1:]...)
		switch {
		case len(r.targets) == 0:
			r.setFocus(-1)
		case i < r.focusedIndex:
			r.focusedIndex--
		case i == r.focusedIndex:
			r.focusedIndex = -1
			r.setFocus(i % len(r.targets))
		}
		return
	}
}

// Len returns the number of targets.
func (r *FocusRing) Len() int { return len(r.targets) }

// Focused returns the focused target, or nil.
func (r *FocusRing) Focused() KeyTarget {
	if r.focusedIndex < 0 || r.focusedIndex >= len(r.targets) {
		return nil
	}
	return r.targets[r.focusedIndex]
}

// IsFocused reports whether t has focus.
func (r *FocusRing) IsFocused(t KeyTarget) bool {
	return t != nil && t == r.Focused()
}

// Focus gives focus to t. It reports false when t is not in the ring.
func (r *FocusRing) Focus(t KeyTarget) bool {
	for i, cur := range r.targets {
		if cur == t {
			r.setFocus(i)
			return true
		}
	}
	return false
}

// FocusNext moves focus to the next target, wrapping around.
func (r *FocusRing) FocusNext() {
	if len(r.targets) == 0 {
		r.setFocus(-1)
		return
	}
	r.setFocus((r.focusedIndex + 1) % len(r.targets))
}

// FocusPrev moves focus to the previous target, wrapping around.
func (r *FocusRing) FocusPrev() {
	if len(r.targets) == 0 {
		r.setFocus(-1)
		return
	}
	idx := r.focusedIndex - 1
	if idx < 0 {
		idx = len(r.targets) - 1
	}
	r.setFocus(idx)
}

// ClearFocus removes focus from every target.
func (r *FocusRing) ClearFocus() {
	r.setFocus(-1)
}

func (r *FocusRing) setFocus(idx int) {
	if idx == r.focusedIndex {
		return
	}
	r.focusedIndex = idx
	r.focusChanged.Fire(FocusEvent{Target: r.Focused()})
}

// HandleKey cycles focus on Ctrl+Tab (backwards with Shift) and forwards
// every other key to the focused target.
func (r *FocusRing) HandleKey(key Key, mods Modifiers) bool {
	if key == KeyTab && mods.Has(ModCtrl) {
		if mods.Has(ModShift) {
			r.FocusPrev()
		} else {
			r.FocusNext()
		}
		return true
	}
	if t := r.Focused(); t != nil {
		return t.HandleKey(key, mods)
	}
	return false
}

// HandleChar forwards typed characters to the focused target.
func (r *FocusRing) HandleChar(ch rune) bool {
	if t := r.Focused(); t != nil {
		return t.HandleChar(ch)
	}
	return false
}

// FocusChanged returns the focus change event.
func (r *FocusRing) FocusChanged() *Event[FocusEvent] { return &r.focusChanged }
