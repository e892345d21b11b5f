package imkit

// Toggle draws a labelled YES/NO switch and returns the new value.
// The switch uses the on-variant backgrounds of StyleToggle while value is
// true. It keeps no state between frames.
func (ctx *Context) Toggle(label, tooltip string, value bool, opts ...Option) bool {
	o := applyOptions(opts)
	style := ctx.style(optStyle(o, StyleToggle))
	id := ctx.controlID(label, o)

	pos := ctx.ItemPos()
	lw := optLabelWidth(o)
	h := GetOpt(o, OptHeight)
	if h <= 0 {
		h = toggleHeight
	}
	ctx.drawLabel(pos.X, pos.Y, lw, h, label, tooltip)

	rect := Rect{X: pos.X + lw, Y: pos.Y, W: optWidth(o, toggleWidth), H: h}
	text := "NO"
	if value {
		text = "YES"
	}
	if ctx.styledButton(ctx.DrawList, id, rect, text, style, value) {
		value = !value
		ctx.log.Debug("toggle", "label", label, "id", id, "value", value)
	}
	ctx.setTooltip(rect, tooltip)

	ctx.lastItem = rect
	ctx.advanceCursor(Vec2{X: lw + rect.W, Y: h})
	ctx.showTooltip()
	return value
}
