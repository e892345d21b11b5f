package imkit

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// SliderFloat draws a labelled slider with an editable text mirror and
// returns the new value, clamped to [min, max].
//
// The mirror shows the value with WithFormat (default "%.2f"). When its text
// parses as a number, the parsed value (clamped) wins over the slider for
// that frame; unparseable text is ignored.
func (ctx *Context) SliderFloat(label, tooltip string, value, min, max float32, opts ...Option) float32 {
	o := applyOptions(opts)
	ctx.requireStyles()
	id := ctx.controlID(label, o)
	st := ctx.states.GetOrCreate(id)

	format := GetOpt(o, OptFormat)
	if format == "" {
		format = "%.2f"
	}

	track, mirror := ctx.sliderRow(label, tooltip, o)
	value = ctx.sliderTrack(id, st, track, clampf(value, min, max), min, max)

	text := ctx.editField(id, &st.Edit, mirror, fmt.Sprintf(format, value))
	if v, err := strconv.ParseFloat(strings.TrimSpace(text), 32); err == nil && !math.IsNaN(v) {
		value = clampf(float32(v), min, max)
	}

	ctx.endSliderRow(track, mirror, tooltip)
	return value
}

// SliderInt is the integer form of SliderFloat. Slider output is rounded to
// the nearest integer; the mirror defaults to "%d".
func (ctx *Context) SliderInt(label, tooltip string, value, min, max int, opts ...Option) int {
	o := applyOptions(opts)
	ctx.requireStyles()
	id := ctx.controlID(label, o)
	st := ctx.states.GetOrCreate(id)

	format := GetOpt(o, OptFormat)
	if format == "" {
		format = "%d"
	}

	track, mirror := ctx.sliderRow(label, tooltip, o)
	f := ctx.sliderTrack(id, st, track, float32(clampi(value, min, max)), float32(min), float32(max))
	value = clampi(int(math.Round(float64(f))), min, max)

	text := ctx.editField(id, &st.Edit, mirror, fmt.Sprintf(format, value))
	if v, err := strconv.Atoi(strings.TrimSpace(text)); err == nil {
		value = clampi(v, min, max)
	}

	ctx.endSliderRow(track, mirror, tooltip)
	return value
}

// sliderRow draws the label and lays out the track and text mirror.
func (ctx *Context) sliderRow(label, tooltip string, o options) (track, mirror Rect) {
	pos := ctx.ItemPos()
	lw := optLabelWidth(o)
	h := ctx.rowHeight(o)
	ctx.drawLabel(pos.X, pos.Y, lw, h, label, tooltip)

	track = Rect{X: pos.X + lw + rowSpacing, Y: pos.Y, W: optWidth(o, sliderWidth), H: h}
	mirror = Rect{X: track.X + track.W + rowSpacing, Y: pos.Y, W: sliderTextWidth, H: h}
	return track, mirror
}

func (ctx *Context) endSliderRow(track, mirror Rect, tooltip string) {
	ctx.setTooltip(track, tooltip)
	ctx.setTooltip(mirror, tooltip)

	row := ctx.GetCursorPos()
	ctx.lastItem = mirror
	ctx.advanceCursor(Vec2{X: mirror.X + mirror.W - row.X, Y: track.H})
	ctx.showTooltip()
}

// sliderTrack handles dragging and draws the track. value must already be
// within [min, max].
func (ctx *Context) sliderTrack(id ID, st *ControlState, rect Rect, value, min, max float32) float32 {
	theme := ctx.Theme()
	hovered := ctx.isHovered(rect)
	if hovered {
		ctx.WantCaptureMouse = true
	}

	if ctx.Input != nil {
		// A release seen this frame ends the drag even if the button is
		// down again by now.
		if st.Dragging && (ctx.Input.MouseReleased(MouseButtonLeft) || !ctx.Input.MouseDown(MouseButtonLeft)) {
			st.Dragging = false
			ctx.log.Debug("slider drag ended", "id", id)
		}
		if hovered && ctx.Input.MouseClicked(MouseButtonLeft) {
			st.Dragging = true
			ctx.log.Debug("slider drag started", "id", id)
		}
		if st.Dragging && max > min {
			t := clampf((ctx.Input.MouseX-rect.X)/rect.W, 0, 1)
			value = min + t*(max-min)
		}
	}

	t := float32(0)
	if max > min {
		t = (value - min) / (max - min)
	}

	const grabW = 8
	trackH := rect.H / 3
	dl := ctx.DrawList
	dl.AddRect(rect.X, rect.Y+(rect.H-trackH)/2, rect.W, trackH, theme.SliderTrackColor)
	dl.AddRect(rect.X, rect.Y+(rect.H-trackH)/2, rect.W*t, trackH, theme.SliderFillColor)

	grab := theme.SliderGrabColor
	switch {
	case st.Dragging:
		grab = theme.SliderGrabActive
	case hovered:
		grab = theme.SliderGrabHovered
	}
	gx := rect.X + t*(rect.W-grabW)
	dl.AddRect(gx, rect.Y+2, grabW, rect.H-4, grab)
	return value
}
