package widgets_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/widgets"
)

type recordingTarget struct {
	name  string
	keys  []widgets.Key
	chars []rune
}

func (r *recordingTarget) HandleKey(key widgets.Key, _ widgets.Modifiers) bool {
	r.keys = append(r.keys, key)
	return true
}

func (r *recordingTarget) HandleChar(ch rune) bool {
	r.chars = append(r.chars, ch)
	return true
}

func TestFocusRing_Cycle(t *testing.T) {
	a, b, c := &recordingTarget{name: "a"}, &recordingTarget{name: "b"}, &recordingTarget{name: "c"}
	ring := widgets.NewFocusRing(a, b, c)
	require.Equal(t, 3, ring.Len())
	assert.True(t, ring.IsFocused(a))

	ring.FocusNext()
	assert.True(t, ring.IsFocused(b))
	ring.FocusNext()
	ring.FocusNext()
	assert.True(t, ring.IsFocused(a), "next wraps to the first target")

	ring.FocusPrev()
	assert.True(t, ring.IsFocused(c), "prev wraps to the last target")

	assert.True(t, ring.Focus(b))
	assert.False(t, ring.Focus(&recordingTarget{}))
	assert.True(t, ring.IsFocused(b))

	ring.ClearFocus()
	assert.Nil(t, ring.Focused())
	assert.False(t, ring.IsFocused(nil))
}

func TestFocusRing_Forwarding(t *testing.T) {
	a, b := &recordingTarget{}, &recordingTarget{}
	ring := widgets.NewFocusRing(a, b)

	assert.True(t, ring.HandleKey(widgets.KeyLeft, 0))
	assert.True(t, ring.HandleChar('x'))
	assert.Equal(t, []widgets.Key{widgets.KeyLeft}, a.keys)
	assert.Equal(t, []rune{'x'}, a.chars)

	// Ctrl+Tab is consumed by the ring.
	assert.True(t, ring.HandleKey(widgets.KeyTab, widgets.ModCtrl))
	assert.True(t, ring.IsFocused(b))
	assert.Empty(t, b.keys)

	assert.True(t, ring.HandleKey(widgets.KeyTab, widgets.ModCtrl|widgets.ModShift))
	assert.True(t, ring.IsFocused(a))

	// Plain Tab goes to the widget.
	ring.HandleKey(widgets.KeyTab, 0)
	assert.Equal(t, []widgets.Key{widgets.KeyLeft, widgets.KeyTab}, a.keys)

	ring.ClearFocus()
	assert.False(t, ring.HandleKey(widgets.KeyLeft, 0))
	assert.False(t, ring.HandleChar('y'))
}

func TestFocusRing_AddRemove(t *testing.T) {
	a, b, c := &recordingTarget{}, &recordingTarget{}, &recordingTarget{}
	ring := widgets.NewFocusRing()
	assert.Nil(t, ring.Focused())

	var changes []widgets.KeyTarget
	ring.FocusChanged().Subscribe(func(ev widgets.FocusEvent) {
		changes = append(changes, ev.Target)
	})

	ring.Add(a)
	ring.Add(b)
	ring.Add(c)
	assert.True(t, ring.IsFocused(a), "first added target takes focus")
	assert.Equal(t, []widgets.KeyTarget{a}, changes)

	ring.Focus(c)
	ring.Remove(a)
	assert.True(t, ring.IsFocused(c), "removing an earlier target keeps focus")

	ring.Remove(c)
	assert.True(t, ring.IsFocused(b), "focus moves on when the focused target goes")

	ring.Remove(b)
	assert.Nil(t, ring.Focused())
	assert.Equal(t, 0, ring.Len())
	assert.Nil(t, changes[len(changes)-1])
}
