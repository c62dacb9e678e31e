package gui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHotkeyRegistry(t *testing.T) {
	r := NewHotkeyRegistry()
	var toggled, blocked int
	allow := false

	r.Register("toggle", KeyF1, func() { toggled++ })
	r.RegisterWithCondition("guarded", KeyF2, func() { blocked++ }, func() bool { return allow })

	in := NewInputState()
	assert.False(t, r.Handle(in), "nothing pressed")

	in.SetKey(KeyF1, true)
	assert.True(t, r.Handle(in))
	assert.Equal(t, 1, toggled)

	// Held keys only fire on the press edge
	in.Reset()
	assert.False(t, r.Handle(in))
	assert.Equal(t, 1, toggled)

	in.SetKey(KeyF2, true)
	assert.False(t, r.Handle(in), "condition false")
	allow = true
	assert.True(t, r.Handle(in))
	assert.Equal(t, 1, blocked)

	r.Unregister("toggle")
	in.Reset()
	in.SetKey(KeyF1, false)
	in.SetKey(KeyF1, true)
	assert.False(t, r.Handle(in))
	assert.Equal(t, 1, toggled)

	assert.False(t, r.Handle(nil))
}

func TestHotkeyRegisterReplaces(t *testing.T) {
	r := NewHotkeyRegistry()
	var first, second int
	r.Register("toggle", KeyF1, func() { first++ })
	r.Register("toggle", KeyF1, func() { second++ })

	in := NewInputState()
	in.SetKey(KeyF1, true)
	r.Handle(in)
	assert.Equal(t, 0, first)
	assert.Equal(t, 1, second)

	r.Clear()
	assert.False(t, r.Handle(in))
}
