package imkit

// Button draws a clickable button and returns true on the frame it is clicked.
// WithStyle selects a registry style; the default is StyleButton.
//
// Usage:
//
//	if ctx.Button("Reset", "Restore defaults") {
//	    cfg.Reset()
//	}
func (ctx *Context) Button(label, tooltip string, opts ...Option) bool {
	o := applyOptions(opts)
	style := ctx.style(optStyle(o, StyleButton))
	id := ctx.controlID(label, o)

	pos := ctx.ItemPos()
	rect := Rect{X: pos.X, Y: pos.Y, W: optWidth(o, buttonWidth), H: ctx.controlHeight(style, o)}

	clicked := ctx.styledButton(ctx.DrawList, id, rect, label, style, false)
	ctx.setTooltip(rect, tooltip)

	ctx.lastItem = rect
	ctx.advanceCursor(Vec2{X: rect.W, Y: rect.H})
	ctx.showTooltip()
	return clicked
}
