package imkit

// LayoutType defines the direction of a layout.
type LayoutType uint8

const (
	LayoutVertical   LayoutType = iota // Items stack vertically (default)
	LayoutHorizontal                   // Items stack horizontally
)

// Layout tracks the current layout state.
type Layout struct {
	Type LayoutType

	// Outer top-left, before padding
	OriginX, OriginY float32
	// Content top-left, after padding
	StartX, StartY float32

	Width               float32 // Available width (0 = display width)
	MaxWidth, MaxHeight float32 // Accumulated content size

	Gap     float32 // Space between children
	Padding float32 // Inner padding on every side

	ItemCount int

	box bool // Opened by BeginBox
}

// LayoutOption configures a layout container.
type LayoutOption func(*Layout)

// Gap sets spacing between children.
func Gap(pixels float32) LayoutOption {
	return func(l *Layout) { l.Gap = pixels }
}

// Padding sets inner padding.
func Padding(pixels float32) LayoutOption {
	return func(l *Layout) { l.Padding = pixels }
}

// Width sets a fixed width for the layout.
func Width(w float32) LayoutOption {
	return func(l *Layout) { l.Width = w }
}

// currentLayout returns the current layout or nil.
func (ctx *Context) currentLayout() *Layout {
	if n := len(ctx.layoutStack); n > 0 {
		return ctx.layoutStack[n-1]
	}
	return nil
}

// CurrentLayoutWidth returns the available width in the current layout.
func (ctx *Context) CurrentLayoutWidth() float32 {
	if l := ctx.currentLayout(); l != nil && l.Width > 0 {
		return l.Width
	}
	return ctx.DisplaySize.X - ctx.cursor.X
}

// beginItem applies gap spacing before drawing an item.
func (ctx *Context) beginItem() {
	layout := ctx.currentLayout()
	if layout == nil || layout.ItemCount == 0 {
		return
	}
	if layout.Type == LayoutVertical {
		ctx.cursor.Y += layout.Gap
	} else {
		ctx.cursor.X += layout.Gap
	}
}

// ItemPos returns the position for the next widget with gap applied.
// Widgets call it once, draw, then call advanceCursor with their size.
func (ctx *Context) ItemPos() Vec2 {
	ctx.beginItem()
	return ctx.cursor
}

// advanceCursor moves the cursor after drawing an item.
func (ctx *Context) advanceCursor(size Vec2) {
	layout := ctx.currentLayout()
	if layout == nil {
		ctx.cursor.Y += size.Y + ctx.Theme().ItemSpacing
		return
	}

	if layout.Type == LayoutVertical {
		ctx.cursor.X = layout.StartX
		ctx.cursor.Y += size.Y
		layout.MaxWidth = maxf(layout.MaxWidth, size.X)
		layout.MaxHeight = ctx.cursor.Y - layout.StartY
	} else {
		ctx.cursor.X += size.X
		ctx.cursor.Y = layout.StartY
		layout.MaxWidth = ctx.cursor.X - layout.StartX
		layout.MaxHeight = maxf(layout.MaxHeight, size.Y)
	}

	layout.ItemCount++
}

// AdvanceCursor moves the cursor after drawing an item (public API).
func (ctx *Context) AdvanceCursor(size Vec2) {
	ctx.advanceCursor(size)
}

// pushLayout places layout as the next item of its parent and makes it current.
func (ctx *Context) pushLayout(layout *Layout) {
	ctx.beginItem()
	layout.OriginX, layout.OriginY = ctx.cursor.X, ctx.cursor.Y
	ctx.cursor.X += layout.Padding
	ctx.cursor.Y += layout.Padding
	layout.StartX, layout.StartY = ctx.cursor.X, ctx.cursor.Y
	ctx.layoutStack = append(ctx.layoutStack, layout)
}

// popLayout closes the current layout and advances its parent past it.
// It returns the outer bounds, padding included.
func (ctx *Context) popLayout() (*Layout, Rect) {
	n := len(ctx.layoutStack)
	if n == 0 {
		return nil, Rect{}
	}
	layout := ctx.layoutStack[n-1]
	ctx.layoutStack = ctx.layoutStack[:n-1]

	bounds := Rect{
		X: layout.OriginX,
		Y: layout.OriginY,
		W: layout.MaxWidth + 2*layout.Padding,
		H: layout.MaxHeight + 2*layout.Padding,
	}
	if layout.Width > bounds.W {
		bounds.W = layout.Width
	}

	ctx.cursor = Vec2{X: bounds.X, Y: bounds.Y}
	ctx.advanceCursor(Vec2{X: bounds.W, Y: bounds.H})
	return layout, bounds
}

// VStack creates a vertical layout container.
//
// Usage:
//
//	ctx.VStack(Gap(8))(func() {
//	    ctx.Button("One", "")
//	    ctx.Button("Two", "")
//	})
func (ctx *Context) VStack(opts ...LayoutOption) func(func()) {
	return func(contents func()) {
		layout := &Layout{Type: LayoutVertical, Gap: ctx.Theme().ItemSpacing}
		for _, opt := range opts {
			opt(layout)
		}
		ctx.pushLayout(layout)
		contents()
		ctx.popLayout()
	}
}

// HStack creates a horizontal layout container.
//
// Usage:
//
//	ctx.HStack(Gap(8))(func() {
//	    ctx.Button("Save", "")
//	    ctx.Button("Load", "")
//	})
func (ctx *Context) HStack(opts ...LayoutOption) func(func()) {
	return func(contents func()) {
		layout := &Layout{Type: LayoutHorizontal, Gap: ctx.Theme().ItemSpacing}
		for _, opt := range opts {
			opt(layout)
		}
		ctx.pushLayout(layout)
		contents()
		ctx.popLayout()
	}
}

// BeginBox opens a bounded vertical container drawn with the box style.
// Every BeginBox must be matched by EndBox.
func (ctx *Context) BeginBox(opts ...LayoutOption) {
	theme := ctx.Theme()
	layout := &Layout{
		Type:    LayoutVertical,
		Gap:     theme.ItemSpacing,
		Padding: theme.BoxPadding,
		box:     true,
	}
	for _, opt := range opts {
		opt(layout)
	}
	ctx.pushLayout(layout)
}

// EndBox closes the box opened by BeginBox and draws its background behind
// the contents. It returns the box bounds.
func (ctx *Context) EndBox() Rect {
	if l := ctx.currentLayout(); l == nil || !l.box {
		ctx.log.Warn("EndBox without matching BeginBox")
		return Rect{}
	}
	style := ctx.style(StyleBox)
	_, bounds := ctx.popLayout()
	ctx.DrawList.InsertRect(bounds.X, bounds.Y, bounds.W, bounds.H, style.Normal.Color)
	ctx.DrawList.AddRectOutline(bounds.X, bounds.Y, bounds.W, bounds.H, ctx.Theme().PanelBorderColor, 1)
	return bounds
}

// Spacing adds vertical space.
func (ctx *Context) Spacing(pixels float32) {
	ctx.cursor.Y += pixels
}

// Indent increases the cursor X position.
func (ctx *Context) Indent(pixels float32) {
	ctx.cursor.X += pixels
	if l := ctx.currentLayout(); l != nil && l.Type == LayoutVertical {
		l.StartX += pixels
	}
}

// Unindent decreases the cursor X position.
func (ctx *Context) Unindent(pixels float32) {
	ctx.Indent(-pixels)
}
