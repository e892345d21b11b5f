package imkit

import (
	"log/slog"
	"unicode/utf8"
)

// Fallback glyph cell size when the renderer reports none.
const (
	defaultCharWidth  = 7
	defaultCharHeight = 13
)

// Context holds all state for UI rendering in a single frame.
// This is NOT context.Context - it is the handle every widget call takes.
// It reaches the session's state store and style registry; it must only be
// used on the goroutine that called Session.Begin.
type Context struct {
	// Drawing output
	DrawList           *DrawList
	ForegroundDrawList *DrawList // Tooltips, drawn over everything else

	// Input (read-only during frame)
	Input *InputState

	// Screen
	DisplaySize Vec2

	// Frame info
	FrameCount uint64
	DeltaTime  float32

	// Input capture flags (output from GUI to application)
	WantCaptureMouse    bool // Pointer is over a control
	WantCaptureKeyboard bool // A text field is being edited

	cursor      Vec2
	layoutStack []*Layout

	idStack   []ID
	idCounter uint32 // Key-less controls drawn this frame

	states    *StateStore
	styles    *StyleRegistry
	atlas     FontAtlas
	clipboard ClipboardProvider
	log       *slog.Logger

	tooltip  string // Set by the hovered control, consumed by showTooltip
	lastItem Rect
}

// NewContext creates a context over an existing state store and style
// registry. Sessions build their own; this is for hosts that drive frames
// without a Session.
func NewContext(states *StateStore, styles *StyleRegistry) *Context {
	if states == nil {
		states = NewStateStore()
	}
	return &Context{
		states:      states,
		styles:      styles,
		layoutStack: make([]*Layout, 0, 16),
		idStack:     make([]ID, 0, 32),
		log:         logger,
	}
}

// Reset prepares the context for a new frame.
func (ctx *Context) Reset(displaySize Vec2, deltaTime float32) {
	ctx.cursor = Vec2{}
	ctx.layoutStack = ctx.layoutStack[:0]
	ctx.idStack = ctx.idStack[:0]
	ctx.idCounter = 0
	ctx.DisplaySize = displaySize
	ctx.DeltaTime = deltaTime
	ctx.FrameCount++
	ctx.tooltip = ""
	ctx.lastItem = Rect{}
	ctx.WantCaptureMouse = false
	ctx.WantCaptureKeyboard = false
}

// States returns the state store backing this context.
func (ctx *Context) States() *StateStore {
	return ctx.states
}

// Styles returns the style registry backing this context.
func (ctx *Context) Styles() *StyleRegistry {
	return ctx.styles
}

// Theme returns the base theme of the style registry.
func (ctx *Context) Theme() Theme {
	if ctx.styles == nil {
		return DefaultTheme()
	}
	return ctx.styles.Theme()
}

// SetFontAtlas sets the glyph atlas used for text.
func (ctx *Context) SetFontAtlas(atlas FontAtlas) {
	ctx.atlas = atlas
}

// Logger returns the logger widgets report to.
func (ctx *Context) Logger() *slog.Logger {
	return ctx.log
}

// style returns a named style, panicking with ErrStylesNotInitialized if the
// registry was never initialized.
func (ctx *Context) style(name string) *WidgetStyle {
	return ctx.styles.mustStyle(name)
}

// requireStyles panics with ErrStylesNotInitialized for widgets that draw
// without a named style.
func (ctx *Context) requireStyles() {
	ctx.styles.mustStyle(StyleButton)
}

// LastItemRect returns the rectangle of the last control drawn.
// For composite rows it is the rectangle of the interactive part.
func (ctx *Context) LastItemRect() Rect {
	return ctx.lastItem
}

// SetCursorPos sets the cursor position for the next widget.
func (ctx *Context) SetCursorPos(x, y float32) {
	ctx.cursor = Vec2{X: x, Y: y}
}

// GetCursorPos returns the current cursor position.
func (ctx *Context) GetCursorPos() Vec2 {
	return ctx.cursor
}

// isHovered returns true if the widget area is under the mouse cursor.
func (ctx *Context) isHovered(rect Rect) bool {
	if ctx.Input == nil {
		return false
	}
	return rect.Contains(Vec2{ctx.Input.MouseX, ctx.Input.MouseY})
}

// isClicked returns true if the widget was clicked this frame.
func (ctx *Context) isClicked(id ID, rect Rect) bool {
	if ctx.Input == nil {
		return false
	}
	hovered := ctx.isHovered(rect)
	clicked := ctx.Input.MouseClicked(MouseButtonLeft)

	if clicked && verbose() {
		if hovered {
			ctx.log.Debug("click detected", "id", id, "rect", rect,
				"mouse", Vec2{ctx.Input.MouseX, ctx.Input.MouseY})
		} else {
			ctx.log.Debug("click missed - not hovered", "id", id, "rect", rect,
				"mouse", Vec2{ctx.Input.MouseX, ctx.Input.MouseY})
		}
	}

	return hovered && clicked
}

// isPressed returns true if the widget is being held down.
func (ctx *Context) isPressed(rect Rect) bool {
	if ctx.Input == nil {
		return false
	}
	return ctx.isHovered(rect) && ctx.Input.MouseDown(MouseButtonLeft)
}

// cellSize returns the unscaled glyph cell size.
func (ctx *Context) cellSize() (w, h float32) {
	w, h = ctx.atlas.CellWidth, ctx.atlas.CellHeight
	if w <= 0 || h <= 0 {
		return defaultCharWidth, defaultCharHeight
	}
	return w, h
}

// LineHeight returns the height of one line of text at the theme scale.
func (ctx *Context) LineHeight() float32 {
	return ctx.lineHeightScaled(ctx.Theme().FontScale)
}

func (ctx *Context) lineHeightScaled(scale float32) float32 {
	_, h := ctx.cellSize()
	return h * scale
}

// MeasureText returns the size of rendered text at the theme scale.
func (ctx *Context) MeasureText(text string) Vec2 {
	return ctx.measureTextScaled(text, ctx.Theme().FontScale)
}

func (ctx *Context) measureTextScaled(text string, scale float32) Vec2 {
	w, h := ctx.cellSize()
	return Vec2{X: float32(utf8.RuneCountInString(text)) * w * scale, Y: h * scale}
}

// addText draws text on dl with the context's font atlas.
func (ctx *Context) addText(dl *DrawList, x, y float32, text string, color uint32, scale float32) {
	atlas := ctx.atlas
	atlas.CellWidth, atlas.CellHeight = ctx.cellSize()
	dl.AddText(x, y, text, color, atlas, scale)
}

// AddText draws text at the theme scale (public API for custom widgets).
func (ctx *Context) AddText(x, y float32, text string, color uint32) {
	ctx.addText(ctx.DrawList, x, y, text, color, ctx.Theme().FontScale)
}
