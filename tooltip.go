package imkit

import "strings"

// tooltipMaxWidth bounds tooltip lines before wrapping.
const tooltipMaxWidth = 320

// setTooltip marks text as the active tooltip when rect is hovered.
func (ctx *Context) setTooltip(rect Rect, text string) {
	if text != "" && ctx.isHovered(rect) {
		ctx.tooltip = text
	}
}

// Tooltip returns the tooltip pending for this frame, if any.
func (ctx *Context) Tooltip() string {
	return ctx.tooltip
}

// showTooltip draws and consumes the active tooltip. The box sits above the
// pointer with its bottom-left corner at the mouse position. Every widget
// calls it on exit.
func (ctx *Context) showTooltip() {
	text := ctx.tooltip
	ctx.tooltip = ""
	if text == "" || ctx.Input == nil || ctx.ForegroundDrawList == nil {
		return
	}

	style := ctx.style(StyleTooltip)
	pad := ctx.Theme().InputPadding
	lines := WrapText(ctx, text, tooltipMaxWidth)
	lineH := ctx.lineHeightScaled(style.FontScale)

	var w float32
	for _, line := range lines {
		w = maxf(w, ctx.measureTextScaled(line, style.FontScale).X)
	}
	size := Vec2{X: w + 2*pad, Y: float32(len(lines))*lineH + 2*pad}
	x := ctx.Input.MouseX
	y := ctx.Input.MouseY - size.Y

	dl := ctx.ForegroundDrawList
	dl.AddRect(x, y, size.X, size.Y, style.Normal.Color)
	dl.AddRectOutline(x, y, size.X, size.Y, ctx.Theme().PanelBorderColor, 1)
	for i, line := range lines {
		ctx.addText(dl, x+pad, y+pad+float32(i)*lineH, strings.TrimSpace(line), style.TextColor, style.FontScale)
	}
}
