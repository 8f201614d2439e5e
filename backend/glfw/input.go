package glfw

import (
	"log/slog"

	goglfw "github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/widgets"
)

// MouseTarget receives drag-style mouse input (press, move, release).
// *widgets.MultiLineEditbox implements it.
type MouseTarget interface {
	HandleMouseDown(pt widgets.Vec2, mods widgets.Modifiers) error
	HandleMouseMove(pt widgets.Vec2) error
	HandleMouseUp()
}

// ClickTarget receives single clicks. *widgets.MultiColumnList implements it.
type ClickTarget interface {
	HandleClick(pt widgets.Vec2, mods widgets.Modifiers) error
}

// InputAdapter forwards GLFW window input to the focused widget.
//
// Key presses and repeats go to HandleKey, typed characters to HandleChar.
// Left-button mouse input goes to the target if it implements MouseTarget
// or ClickTarget, in coordinates relative to Origin.
type InputAdapter struct {
	window *goglfw.Window
	target widgets.KeyTarget
	Origin widgets.Vec2 // Window position of the target's top-left corner

	cursor widgets.Vec2
}

// NewInputAdapter installs key, char, mouse-button and cursor callbacks on
// window. Any callbacks set before are replaced.
func NewInputAdapter(window *goglfw.Window) *InputAdapter {
	a := &InputAdapter{window: window}

	window.SetKeyCallback(a.keyCallback)
	window.SetCharCallback(a.charCallback)
	window.SetMouseButtonCallback(a.mouseButtonCallback)
	window.SetCursorPosCallback(a.cursorPosCallback)

	return a
}

// Focus directs input to target. A nil target drops input.
func (a *InputAdapter) Focus(target widgets.KeyTarget) {
	a.target = target
}

// Focused returns the current target.
func (a *InputAdapter) Focused() widgets.KeyTarget {
	return a.target
}

func (a *InputAdapter) local() widgets.Vec2 {
	return a.cursor.Sub(a.Origin)
}

func (a *InputAdapter) keyCallback(w *goglfw.Window, key goglfw.Key, scancode int, action goglfw.Action, mods goglfw.ModifierKey) {
	if a.target == nil || action == goglfw.Release {
		return
	}
	k := glfwKeyToWidgetKey(key)
	if k == widgets.KeyNone {
		return
	}
	a.target.HandleKey(k, glfwModifiers(mods))
}

func (a *InputAdapter) charCallback(w *goglfw.Window, char rune) {
	if a.target != nil {
		a.target.HandleChar(char)
	}
}

func (a *InputAdapter) mouseButtonCallback(w *goglfw.Window, button goglfw.MouseButton, action goglfw.Action, mods goglfw.ModifierKey) {
	if a.target == nil || button != goglfw.MouseButtonLeft {
		return
	}

	var err error
	switch t := a.target.(type) {
	case MouseTarget:
		switch action {
		case goglfw.Press:
			err = t.HandleMouseDown(a.local(), glfwModifiers(mods))
		case goglfw.Release:
			t.HandleMouseUp()
		}
	case ClickTarget:
		if action == goglfw.Press {
			err = t.HandleClick(a.local(), glfwModifiers(mods))
		}
	}
	if err != nil {
		slog.Debug("mouse input not handled", "error", err)
	}
}

func (a *InputAdapter) cursorPosCallback(w *goglfw.Window, xpos, ypos float64) {
	a.cursor = widgets.Vec2{X: float32(xpos), Y: float32(ypos)}
	if t, ok := a.target.(MouseTarget); ok {
		if err := t.HandleMouseMove(a.local()); err != nil {
			slog.Debug("mouse move not handled", "error", err)
		}
	}
}

// glfwModifiers maps GLFW modifier bits to widget modifiers.
func glfwModifiers(mods goglfw.ModifierKey) widgets.Modifiers {
	var m widgets.Modifiers
	if mods&goglfw.ModShift != 0 {
		m |= widgets.ModShift
	}
	if mods&goglfw.ModControl != 0 {
		m |= widgets.ModCtrl
	}
	if mods&goglfw.ModAlt != 0 {
		m |= widgets.ModAlt
	}
	if mods&goglfw.ModSuper != 0 {
		m |= widgets.ModSuper
	}
	return m
}

// glfwKeyToWidgetKey maps GLFW keys to widget keys.
func glfwKeyToWidgetKey(key goglfw.Key) widgets.Key {
	switch key {
	case goglfw.KeyTab:
		return widgets.KeyTab
	case goglfw.KeyLeft:
		return widgets.KeyLeft
	case goglfw.KeyRight:
		return widgets.KeyRight
	case goglfw.KeyUp:
		return widgets.KeyUp
	case goglfw.KeyDown:
		return widgets.KeyDown
	case goglfw.KeyPageUp:
		return widgets.KeyPageUp
	case goglfw.KeyPageDown:
		return widgets.KeyPageDown
	case goglfw.KeyHome:
		return widgets.KeyHome
	case goglfw.KeyEnd:
		return widgets.KeyEnd
	case goglfw.KeyDelete:
		return widgets.KeyDelete
	case goglfw.KeyBackspace:
		return widgets.KeyBackspace
	case goglfw.KeyEnter, goglfw.KeyKPEnter:
		return widgets.KeyEnter
	case goglfw.KeyEscape:
		return widgets.KeyEscape
	case goglfw.KeyA:
		return widgets.KeyA
	case goglfw.KeyC:
		return widgets.KeyC
	case goglfw.KeyV:
		return widgets.KeyV
	case goglfw.KeyX:
		return widgets.KeyX
	case goglfw.KeyY:
		return widgets.KeyY
	case goglfw.KeyZ:
		return widgets.KeyZ
	default:
		return widgets.KeyNone
	}
}
