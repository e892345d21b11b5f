package imkit

import (
	"strings"
	"unicode/utf8"
)

// TextField draws a labelled single-line text field and returns its text.
//
// Clicking the field starts editing with the whole text selected, so typing
// replaces it. While editing the returned text is the live edit buffer.
// Enter, Escape or a click outside the field stop editing.
//
// Keys: Left/Right, Home/End, Backspace/Delete, Ctrl+A (select all),
// Ctrl+C (copy) and Ctrl+V (paste) through the session clipboard.
func (ctx *Context) TextField(label, tooltip, text string, opts ...Option) string {
	o := applyOptions(opts)
	ctx.requireStyles()
	id := ctx.controlID(label, o)
	st := ctx.states.GetOrCreate(id)

	pos := ctx.ItemPos()
	lw := optLabelWidth(o)
	h := ctx.rowHeight(o)
	ctx.drawLabel(pos.X, pos.Y, lw, h, label, tooltip)

	field := Rect{X: pos.X + lw, Y: pos.Y, W: optWidth(o, textFieldWidth), H: h}
	text = ctx.editField(id, &st.Edit, field, text)
	ctx.setTooltip(field, tooltip)

	ctx.lastItem = field
	ctx.advanceCursor(Vec2{X: lw + field.W, Y: h})
	ctx.showTooltip()
	return text
}

// editField runs one frame of an editable text box and returns the text to
// show: the edit buffer while editing, text otherwise.
func (ctx *Context) editField(id ID, e *EditState, rect Rect, text string) string {
	theme := ctx.Theme()
	pad := theme.InputPadding
	charW, _ := ctx.cellSize()
	charW *= theme.FontScale

	hovered := ctx.isHovered(rect)
	if hovered {
		ctx.WantCaptureMouse = true
	}
	if ctx.Input != nil && ctx.Input.MouseClicked(MouseButtonLeft) {
		switch {
		case hovered && !e.Editing:
			e.Editing = true
			e.Buffer = text
			e.CursorPos = utf8.RuneCountInString(text)
			e.SelectAll = true
			ctx.log.Debug("edit started", "id", id)
		case hovered:
			// Place the cursor under the pointer
			col := int((ctx.Input.MouseX-rect.X-pad)/charW + 0.5)
			e.CursorPos = clampi(col, 0, utf8.RuneCountInString(e.Buffer))
			e.SelectAll = false
		case e.Editing:
			e.Editing = false
			e.SelectAll = false
			ctx.log.Debug("edit finished", "id", id, "reason", "click outside")
		}
	}

	if e.Editing {
		ctx.WantCaptureKeyboard = true
		ctx.handleEditKeys(id, e)
		text = e.Buffer
	}

	bg := theme.InputBgColor
	if e.Editing {
		bg = theme.InputFocusedBgColor
	}
	dl := ctx.DrawList
	dl.AddRect(rect.X, rect.Y, rect.W, rect.H, bg)
	dl.AddRectOutline(rect.X, rect.Y, rect.W, rect.H, theme.InputBorderColor, 1)

	lineH := ctx.LineHeight()
	textX := rect.X + pad
	textY := rect.Y + (rect.H-lineH)/2

	dl.PushClipRect(rect.X+1, rect.Y+1, rect.X+rect.W-1, rect.Y+rect.H-1)
	if e.Editing && e.SelectAll && text != "" {
		w := ctx.MeasureText(text).X
		dl.AddRect(textX, textY, w, lineH, theme.SelectedBgColor)
	}
	ctx.addText(dl, textX, textY, text, theme.TextColor, theme.FontScale)
	if e.Editing && !e.SelectAll {
		cx := textX + float32(e.CursorPos)*charW
		dl.AddRect(cx, textY, 1, lineH, theme.TextColor)
	}
	dl.PopClipRect()

	return text
}

// handleEditKeys applies this frame's keyboard input to an edit buffer.
func (ctx *Context) handleEditKeys(id ID, e *EditState) {
	in := ctx.Input
	if in == nil {
		return
	}
	runes := []rune(e.Buffer)
	cur := clampi(e.CursorPos, 0, len(runes))

	clearSelection := func() {
		if e.SelectAll {
			runes = runes[:0]
			cur = 0
			e.SelectAll = false
		}
	}
	insert := func(s []rune) {
		clearSelection()
		out := make([]rune, 0, len(runes)+len(s))
		out = append(out, runes[:cur]...)
		out = append(out, s...)
		out = append(out, runes[cur:]...)
		runes = out
		cur += len(s)
	}

	if in.ModCtrl {
		if in.KeyPressed(KeyA) {
			e.SelectAll = true
		}
		if in.KeyPressed(KeyC) {
			ctx.clipboardSetText(string(runes))
		}
		if in.KeyPressed(KeyV) {
			paste := strings.NewReplacer("\r", "", "\n", " ").Replace(ctx.clipboardGetText())
			if paste != "" {
				insert([]rune(paste))
			}
		}
	}

	for _, r := range in.InputChars {
		if r < 32 || r == 127 {
			continue
		}
		insert([]rune{r})
	}

	switch {
	case in.KeyPressed(KeyBackspace):
		if e.SelectAll {
			clearSelection()
		} else if cur > 0 {
			runes = append(runes[:cur-1], runes[cur:]...)
			cur--
		}
	case in.KeyPressed(KeyDelete):
		if e.SelectAll {
			clearSelection()
		} else if cur < len(runes) {
			runes = append(runes[:cur], runes[cur+1:]...)
		}
	case in.KeyPressed(KeyLeft):
		if e.SelectAll {
			e.SelectAll = false
			cur = 0
		} else if cur > 0 {
			cur--
		}
	case in.KeyPressed(KeyRight):
		if e.SelectAll {
			e.SelectAll = false
			cur = len(runes)
		} else if cur < len(runes) {
			cur++
		}
	case in.KeyPressed(KeyHome):
		e.SelectAll = false
		cur = 0
	case in.KeyPressed(KeyEnd):
		e.SelectAll = false
		cur = len(runes)
	}

	e.Buffer = string(runes)
	e.CursorPos = cur

	if in.KeyPressed(KeyEnter) || in.KeyPressed(KeyEscape) {
		e.Editing = false
		e.SelectAll = false
		ctx.log.Debug("edit finished", "id", id, "reason", "key")
	}
}
