package imkit

// Accordion draws a collapsible section header. While expanded, body runs
// once inside a bordered box directly below the header; while collapsed body
// is not called. Controls in body are keyed under the accordion's identity,
// so the same label may be reused in different sections.
//
// Usage:
//
//	ctx.Accordion("Graphics", "Rendering options", func() {
//	    vsync = ctx.Toggle("VSync", "", vsync)
//	})
func (ctx *Context) Accordion(label, tooltip string, body func(), opts ...Option) {
	o := applyOptions(opts)
	style := ctx.style(optStyle(o, StyleAccordion))
	id := ctx.controlID(label, o)
	st := ctx.states.GetOrCreate(id)

	pos := ctx.ItemPos()
	rect := Rect{X: pos.X, Y: pos.Y, W: optWidth(o, rowWidth), H: ctx.controlHeight(style, o)}

	arrow := "► "
	if st.Open {
		arrow = "▼ "
	}
	if ctx.styledButton(ctx.DrawList, id, rect, arrow+label, style, st.Open) {
		open := ctx.states.Toggle(id)
		ctx.log.Debug("accordion toggled", "label", label, "id", id, "open", open)
	}
	ctx.setTooltip(rect, tooltip)

	ctx.lastItem = rect
	ctx.advanceCursor(Vec2{X: rect.W, Y: rect.H})
	ctx.showTooltip()

	if !st.Open || body == nil {
		return
	}
	ctx.BeginBox(Width(rect.W))
	ctx.pushScope(id)
	body()
	ctx.PopID()
	ctx.EndBox()
}
