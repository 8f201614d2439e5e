// Package glfw connects widgets to a GLFW window: the window clipboard and
// keyboard, character and mouse callbacks.
package glfw

import (
	goglfw "github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/widgets"
)

// Clipboard is a widgets.ClipboardProvider backed by a GLFW window.
// GLFW requires clipboard calls on the main thread.
type Clipboard struct {
	window *goglfw.Window
}

var _ widgets.ClipboardProvider = (*Clipboard)(nil)

// NewClipboard creates a clipboard for window.
func NewClipboard(window *goglfw.Window) *Clipboard {
	return &Clipboard{window: window}
}

// GetText returns the clipboard text, or "" when it holds no text.
func (c *Clipboard) GetText() string {
	return c.window.GetClipboardString()
}

// SetText puts text on the clipboard.
func (c *Clipboard) SetText(text string) {
	c.window.SetClipboardString(text)
}
