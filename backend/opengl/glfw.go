package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/aetherbox/aetherbox/gui"
)

// GLFWInputAdapter adapts GLFW input to gui.InputState.
type GLFWInputAdapter struct {
	window *glfw.Window
	input  *gui.InputState
}

// NewGLFWInputAdapter creates a new GLFW input adapter.
func NewGLFWInputAdapter(window *glfw.Window) *GLFWInputAdapter {
	adapter := &GLFWInputAdapter{
		window: window,
		input:  gui.NewInputState(),
	}

	window.SetKeyCallback(adapter.keyCallback)
	window.SetMouseButtonCallback(adapter.mouseButtonCallback)
	window.SetCursorPosCallback(adapter.cursorPosCallback)

	return adapter
}

// NewFrame clears last frame's input edges.
// Call this before glfw.PollEvents so this frame's events survive.
func (a *GLFWInputAdapter) NewFrame() {
	a.input.Reset()
}

// Update samples the cursor position after events were polled.
func (a *GLFWInputAdapter) Update() *gui.InputState {
	x, y := a.window.GetCursorPos()
	a.input.SetMousePos(float32(x), float32(y))
	return a.input
}

// Input returns the current input state.
func (a *GLFWInputAdapter) Input() *gui.InputState {
	return a.input
}

func (a *GLFWInputAdapter) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	guiKey := glfwKeyToGUIKey(key)
	if guiKey == gui.KeyNone {
		return
	}

	switch action {
	case glfw.Press:
		a.input.SetKey(guiKey, true)
	case glfw.Release:
		a.input.SetKey(guiKey, false)
	}
}

func (a *GLFWInputAdapter) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	guiButton := glfwMouseButtonToGUI(button)
	if guiButton < 0 {
		return
	}

	switch action {
	case glfw.Press:
		a.input.SetMouseButton(guiButton, true)
	case glfw.Release:
		a.input.SetMouseButton(guiButton, false)
	}
}

func (a *GLFWInputAdapter) cursorPosCallback(w *glfw.Window, xpos, ypos float64) {
	a.input.SetMousePos(float32(xpos), float32(ypos))
}

// glfwKeyToGUIKey maps GLFW keys to GUI keys.
func glfwKeyToGUIKey(key glfw.Key) gui.Key {
	switch key {
	case glfw.KeyEscape:
		return gui.KeyEscape
	case glfw.KeyEnter:
		return gui.KeyEnter
	case glfw.KeySpace:
		return gui.KeySpace
	case glfw.KeyF1:
		return gui.KeyF1
	case glfw.KeyF2:
		return gui.KeyF2
	case glfw.KeyF12:
		return gui.KeyF12
	default:
		return gui.KeyNone
	}
}

// glfwMouseButtonToGUI maps GLFW mouse buttons to GUI mouse buttons.
func glfwMouseButtonToGUI(button glfw.MouseButton) gui.MouseButton {
	switch button {
	case glfw.MouseButtonLeft:
		return gui.MouseButtonLeft
	case glfw.MouseButtonRight:
		return gui.MouseButtonRight
	case glfw.MouseButtonMiddle:
		return gui.MouseButtonMiddle
	default:
		return -1
	}
}
