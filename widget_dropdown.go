package imkit

// Dropdown draws a labelled selector over a binding's options and returns the
// selected index.
//
// Clicking the row button opens the option list below it; clicking an option
// selects it, writes it to the binding and closes the list. An out-of-range
// selectedIndex is reset to 0. If the binding's options are invalid nothing is
// drawn and selectedIndex is returned unchanged.
//
// Usage:
//
//	idx = imkit.Dropdown[string](ctx, quality, idx)
func Dropdown[T any](ctx *Context, binding Binding[T], selectedIndex int, opts ...Option) int {
	o := applyOptions(opts)
	style := ctx.style(optStyle(o, StyleDropdown))
	itemStyle := ctx.style(StyleDropdownItem)

	if binding.LogErrorOnceIfOptionsInvalid() {
		return selectedIndex
	}
	choices := binding.Options()
	if len(choices) == 0 {
		return selectedIndex
	}
	if selectedIndex < 0 || selectedIndex >= len(choices) {
		selectedIndex = 0
	}

	label := binding.Name()
	tooltip := binding.Tooltip()
	id := ctx.controlID(label, o)
	st := ctx.states.GetOrCreate(id)

	pos := ctx.ItemPos()
	lw := optLabelWidth(o)
	h := ctx.controlHeight(style, o)
	ctx.drawLabel(pos.X, pos.Y, lw, h, label, tooltip)

	button := Rect{X: pos.X + lw, Y: pos.Y, W: optWidth(o, dropdownWidth), H: h}
	if ctx.styledButton(ctx.DrawList, id, button, optionText(choices[selectedIndex]), style, st.Open) {
		open := ctx.states.Toggle(id)
		ctx.log.Debug("dropdown toggled", "label", label, "id", id, "open", open)
	}
	ctx.setTooltip(button, tooltip)

	size := Vec2{X: lw + button.W, Y: h}
	if st.Open {
		itemH := ctx.controlHeight(itemStyle, options{})
		y := button.Y + button.H
		for i, opt := range choices {
			y += optionGap
			item := Rect{X: button.X, Y: y, W: button.W, H: itemH}
			if ctx.styledButton(ctx.DrawList, id, item, optionText(opt), itemStyle, i == selectedIndex) {
				selectedIndex = i
				binding.SetValue(opt)
				st.Open = false
				ctx.log.Debug("dropdown selected", "label", label, "id", id, "index", i)
			}
			ctx.setTooltip(item, tooltip)
			y += itemH
		}
		size.Y = y - pos.Y
	}

	ctx.lastItem = button
	ctx.advanceCursor(size)
	ctx.showTooltip()
	return selectedIndex
}
