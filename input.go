package imkit

// MouseButton represents a mouse button.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
	MouseButtonCount
)

// Key represents a keyboard key understood by the widgets.
type Key int

const (
	KeyNone Key = iota
	KeyTab
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyDelete
	KeyBackspace
	KeyEnter
	KeyEscape
	KeyA
	KeyC
	KeyV
	KeyCount
)

// buttonState is one mouse button's level and this frame's edges.
type buttonState struct {
	down     bool
	pressed  bool
	released bool
}

// InputState holds input state for the current frame.
// The host fills it from its windowing layer (see backend/opengl).
type InputState struct {
	MouseX, MouseY float32

	buttons [MouseButtonCount]buttonState
	keys    [KeyCount]bool // pressed or auto-repeated this frame

	// Unicode characters typed this frame
	InputChars []rune

	ModCtrl  bool
	ModShift bool
}

// NewInputState creates a new InputState.
func NewInputState() *InputState {
	return &InputState{InputChars: make([]rune, 0, 16)}
}

// Reset drops last frame's edges and typed characters. Held buttons stay
// down. Call it before collecting each frame's input.
func (s *InputState) Reset() {
	for i := range s.buttons {
		s.buttons[i].pressed = false
		s.buttons[i].released = false
	}
	clear(s.keys[:])
	s.InputChars = s.InputChars[:0]
}

// SetMousePos sets the pointer position.
func (s *InputState) SetMousePos(x, y float32) {
	s.MouseX, s.MouseY = x, y
}

// SetMouseButton sets a button's level, recording a press or release edge
// when it changes.
func (s *InputState) SetMouseButton(button MouseButton, down bool) {
	b := s.button(button)
	if b == nil || b.down == down {
		return
	}
	b.down = down
	if down {
		b.pressed = true
	} else {
		b.released = true
	}
}

// SetKey records a key press. Releases carry no state; repeated presses
// while held count as new presses.
func (s *InputState) SetKey(key Key, down bool) {
	if down && key > KeyNone && key < KeyCount {
		s.keys[key] = true
	}
}

// AddInputChar adds a typed character.
func (s *InputState) AddInputChar(ch rune) {
	s.InputChars = append(s.InputChars, ch)
}

// MouseDown reports whether a mouse button is held.
func (s *InputState) MouseDown(button MouseButton) bool {
	b := s.button(button)
	return b != nil && b.down
}

// MouseClicked reports whether a mouse button went down this frame.
func (s *InputState) MouseClicked(button MouseButton) bool {
	b := s.button(button)
	return b != nil && b.pressed
}

// MouseReleased reports whether a mouse button went up this frame.
func (s *InputState) MouseReleased(button MouseButton) bool {
	b := s.button(button)
	return b != nil && b.released
}

// KeyPressed reports whether a key was pressed or auto-repeated this frame.
func (s *InputState) KeyPressed(key Key) bool {
	return key > KeyNone && key < KeyCount && s.keys[key]
}

func (s *InputState) button(b MouseButton) *buttonState {
	if b < 0 || b >= MouseButtonCount {
		return nil
	}
	return &s.buttons[b]
}
