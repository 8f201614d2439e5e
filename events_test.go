package widgets_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-theft-auto/widgets"
)

func TestEvent_FiresInOrder(t *testing.T) {
	var ev widgets.Event[int]
	var got []string

	ev.Subscribe(func(v int) { got = append(got, "first") })
	conn := ev.Subscribe(func(v int) { got = append(got, "second") })
	ev.Subscribe(func(v int) { got = append(got, "third") })
	assert.Equal(t, 3, ev.Len())

	ev.Fire(1)
	assert.Equal(t, []string{"first", "second", "third"}, got)

	conn.Disconnect()
	conn.Disconnect()
	got = nil
	ev.Fire(2)
	assert.Equal(t, []string{"first", "third"}, got)
	assert.Equal(t, 2, ev.Len())
}

func TestEvent_DisconnectDuringFire(t *testing.T) {
	var ev widgets.Event[string]
	var calls int

	var self widgets.Connection
	self = ev.Subscribe(func(string) {
		calls++
		self.Disconnect()
	})
	ev.Subscribe(func(string) { calls++ })

	ev.Fire("x")
	assert.Equal(t, 2, calls, "listeners removed mid-fire still see the current event")
	ev.Fire("y")
	assert.Equal(t, 3, calls)
}

func TestConnection_ZeroValue(t *testing.T) {
	var c widgets.Connection
	assert.NotPanics(t, c.Disconnect)
}
