package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/imkit"
)

// GLFWInputAdapter adapts GLFW input to imkit.InputState.
type GLFWInputAdapter struct {
	window *glfw.Window
	input  *imkit.InputState
}

// NewGLFWInputAdapter creates a new GLFW input adapter and installs its
// window callbacks.
func NewGLFWInputAdapter(window *glfw.Window) *GLFWInputAdapter {
	adapter := &GLFWInputAdapter{
		window: window,
		input:  imkit.NewInputState(),
	}

	window.SetKeyCallback(adapter.keyCallback)
	window.SetCharCallback(adapter.charCallback)
	window.SetMouseButtonCallback(adapter.mouseButtonCallback)
	window.SetCursorPosCallback(adapter.cursorPosCallback)

	return adapter
}

// Update starts a new input frame: it clears last frame's edges, polls GLFW
// events and samples the pointer and modifiers. Call it once per frame in
// place of glfw.PollEvents.
func (a *GLFWInputAdapter) Update() *imkit.InputState {
	a.input.Reset()
	glfw.PollEvents()

	x, y := a.window.GetCursorPos()
	a.input.SetMousePos(float32(x), float32(y))

	a.input.ModCtrl = a.window.GetKey(glfw.KeyLeftControl) == glfw.Press ||
		a.window.GetKey(glfw.KeyRightControl) == glfw.Press
	a.input.ModShift = a.window.GetKey(glfw.KeyLeftShift) == glfw.Press ||
		a.window.GetKey(glfw.KeyRightShift) == glfw.Press

	return a.input
}

// Input returns the current input state.
func (a *GLFWInputAdapter) Input() *imkit.InputState {
	return a.input
}

func (a *GLFWInputAdapter) keyCallback(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	if k, ok := glfwKeys[key]; ok && action != glfw.Release {
		a.input.SetKey(k, true)
	}
}

func (a *GLFWInputAdapter) charCallback(_ *glfw.Window, char rune) {
	a.input.AddInputChar(char)
}

func (a *GLFWInputAdapter) mouseButtonCallback(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
	if b, ok := glfwButtons[button]; ok {
		a.input.SetMouseButton(b, action == glfw.Press)
	}
}

func (a *GLFWInputAdapter) cursorPosCallback(_ *glfw.Window, x, y float64) {
	a.input.SetMousePos(float32(x), float32(y))
}

// glfwKeys lists the keys text fields understand.
var glfwKeys = map[glfw.Key]imkit.Key{
	glfw.KeyTab:       imkit.KeyTab,
	glfw.KeyLeft:      imkit.KeyLeft,
	glfw.KeyRight:     imkit.KeyRight,
	glfw.KeyHome:      imkit.KeyHome,
	glfw.KeyEnd:       imkit.KeyEnd,
	glfw.KeyDelete:    imkit.KeyDelete,
	glfw.KeyBackspace: imkit.KeyBackspace,
	glfw.KeyEnter:     imkit.KeyEnter,
	glfw.KeyKPEnter:   imkit.KeyEnter,
	glfw.KeyEscape:    imkit.KeyEscape,
	glfw.KeyA:         imkit.KeyA,
	glfw.KeyC:         imkit.KeyC,
	glfw.KeyV:         imkit.KeyV,
}

var glfwButtons = map[glfw.MouseButton]imkit.MouseButton{
	glfw.MouseButtonLeft:   imkit.MouseButtonLeft,
	glfw.MouseButtonRight:  imkit.MouseButtonRight,
	glfw.MouseButtonMiddle: imkit.MouseButtonMiddle,
}

// GLFWClipboard is an imkit.ClipboardProvider backed by the GLFW window.
type GLFWClipboard struct {
	Window *glfw.Window
}

// GetText returns the clipboard text, or "" if it holds none.
func (c GLFWClipboard) GetText() string {
	return c.Window.GetClipboardString()
}

// SetText replaces the clipboard contents.
func (c GLFWClipboard) SetText(text string) {
	c.Window.SetClipboardString(text)
}
