// Example drives a MultiLineEditbox from a GLFW window.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + X11 headers)
//	go run ./example/         # run this example
//
// The window has no drawing surface: typed text, caret moves and clipboard
// shortcuts are applied to the editbox and the current line is shown in the
// window title. Press Escape to quit.
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/widgets"
	glfwbackend "github.com/go-theft-auto/widgets/backend/glfw"
)

const (
	windowWidth  = 800
	windowHeight = 600
	windowTitle  = "widgets example"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// escapeFilter closes the window on Escape and forwards everything else.
type escapeFilter struct {
	widgets.KeyTarget
	window *glfw.Window
}

func (f escapeFilter) HandleKey(key widgets.Key, mods widgets.Modifiers) bool {
	if key == widgets.KeyEscape {
		f.window.SetShouldClose(true)
		return true
	}
	return f.KeyTarget.HandleKey(key, mods)
}

func run() error {
	// Initialize GLFW.
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	defer window.Destroy()

	// Route widget clipboard operations through the window.
	widgets.SetClipboardProvider(glfwbackend.NewClipboard(window))

	// Pixel metrics roughly matching an 8x16 monospace font.
	font := widgets.NewCellFont(8, 16)
	vert, horz := widgets.NewScrollbarModel(), widgets.NewScrollbarModel()
	area := widgets.NewFrameArea(widgets.Rect{W: windowWidth, H: windowHeight}, 0, 12, vert, horz)

	edit, err := widgets.NewMultiLineEditbox(font,
		widgets.WithScrollbars(vert, horz),
		widgets.WithRenderArea(area),
	)
	if err != nil {
		return fmt.Errorf("editbox: %w", err)
	}

	showLine := func() {
		lines := edit.Lines()
		n := edit.LineNumberFromIndex(edit.CaretIndex())
		ln := lines[n]
		text := []rune(edit.Text())[ln.Start : ln.Start+ln.Length]
		window.SetTitle(fmt.Sprintf("%s | line %d/%d | %q", windowTitle, n+1, len(lines), string(text)))
	}
	edit.TextChanged().Subscribe(func(widgets.EditboxEvent) { showLine() })
	edit.CaretMoved().Subscribe(func(widgets.EditboxEvent) { showLine() })

	window.SetSizeCallback(func(w *glfw.Window, width, height int) {
		area.Frame = widgets.Rect{W: float32(width), H: float32(height)}
		edit.SetRenderArea(area)
	})

	// Ctrl+Tab cycles focus once more widgets are added to the ring.
	ring := widgets.NewFocusRing(edit)
	ring.FocusChanged().Subscribe(func(ev widgets.FocusEvent) {
		if ev.Target == nil {
			window.SetTitle(windowTitle)
		}
	})

	input := glfwbackend.NewInputAdapter(window)
	input.Focus(escapeFilter{KeyTarget: ring, window: window})

	for !window.ShouldClose() {
		glfw.WaitEvents()
	}
	return nil
}
