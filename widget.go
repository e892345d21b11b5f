package imkit

import (
	"fmt"
	"reflect"
)

// Row geometry shared by the labelled widgets.
const (
	labelWidth      = 150 // Label column
	rowSpacing      = 10  // Between label, slider and text mirror
	sliderWidth     = 200
	sliderTextWidth = 50
	textFieldWidth  = 250
	dropdownWidth   = 200
	toggleWidth     = 100
	toggleHeight    = 25
	buttonWidth     = 150
	rowWidth        = labelWidth + rowSpacing + sliderWidth + rowSpacing + sliderTextWidth
	optionGap       = 2 // Between open dropdown options
)

func optWidth(o options, def float32) float32 {
	if w := GetOpt(o, OptWidth); w > 0 {
		return w
	}
	return def
}

func optLabelWidth(o options) float32 {
	if w := GetOpt(o, OptLabelWidth); w > 0 {
		return w
	}
	return labelWidth
}

func optStyle(o options, def string) string {
	if name := GetOpt(o, OptStyle); name != "" {
		return name
	}
	return def
}

// controlHeight returns the height of a control drawn with style.
func (ctx *Context) controlHeight(style *WidgetStyle, o options) float32 {
	if h := GetOpt(o, OptHeight); h > 0 {
		return h
	}
	if style.FixedHeight > 0 {
		return style.FixedHeight
	}
	return ctx.lineHeightScaled(style.FontScale) + 2*ctx.Theme().ButtonPadding
}

// rowHeight is the height of a label + control row without a styled control.
func (ctx *Context) rowHeight(o options) float32 {
	if h := GetOpt(o, OptHeight); h > 0 {
		return h
	}
	return ctx.LineHeight() + 2*ctx.Theme().ButtonPadding
}

// drawLabel draws a row label vertically centered in its column.
// The label carries the row tooltip.
func (ctx *Context) drawLabel(x, y, w, h float32, label, tooltip string) {
	if label != "" {
		scale := ctx.Theme().FontScale
		text := truncateText(ctx, label, w-rowSpacing, scale)
		ty := y + (h-ctx.lineHeightScaled(scale))/2
		ctx.addText(ctx.DrawList, x, ty, text, ctx.Theme().TextColor, scale)
	}
	ctx.setTooltip(Rect{X: x, Y: y, W: w, H: h}, tooltip)
}

func drawBackground(dl *DrawList, rect Rect, bg Background) {
	if bg.Texture != 0 {
		dl.AddImage(rect.X, rect.Y, rect.W, rect.H, bg.Texture, ColorWhite)
		return
	}
	dl.AddRect(rect.X, rect.Y, rect.W, rect.H, bg.Color)
}

// styledButton draws a button with style and reports a click this frame.
// on selects the style's on-variant backgrounds.
func (ctx *Context) styledButton(dl *DrawList, id ID, rect Rect, text string, style *WidgetStyle, on bool) bool {
	hovered := ctx.isHovered(rect)
	pressed := ctx.isPressed(rect)
	clicked := ctx.isClicked(id, rect)
	if hovered {
		ctx.WantCaptureMouse = true
	}

	drawBackground(dl, rect, style.background(on, hovered, pressed))
	ctx.drawStyledText(dl, rect, text, style)
	return clicked
}

func (ctx *Context) drawStyledText(dl *DrawList, rect Rect, text string, style *WidgetStyle) {
	if text == "" {
		return
	}
	pad := ctx.Theme().ButtonPadding
	text = truncateText(ctx, text, rect.W-2*pad, style.FontScale)
	size := ctx.measureTextScaled(text, style.FontScale)

	x := rect.X + pad
	if style.Align == AlignCenter {
		x = rect.X + (rect.W-size.X)/2
	}
	y := rect.Y + (rect.H-size.Y)/2

	ctx.addText(dl, x, y, text, style.TextColor, style.FontScale)
	if style.Bold {
		ctx.addText(dl, x+1, y, text, style.TextColor, style.FontScale)
	}
}

// optionText renders an option value as button text. Nil values render empty.
func optionText[T any](v T) string {
	a := any(v)
	if a == nil {
		return ""
	}
	rv := reflect.ValueOf(a)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		if rv.IsNil() {
			return ""
		}
	}
	return fmt.Sprint(a)
}
