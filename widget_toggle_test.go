package imkit_test

import (
	"testing"

	"github.com/go-theft-auto/imkit"
)

func TestToggleFlipsOnClick(t *testing.T) {
	h := newHarness(t)
	value := false
	var rect imkit.Rect
	draw := func(ctx *imkit.Context) {
		value = ctx.Toggle("VSync", "", value)
		rect = ctx.LastItemRect()
	}

	h.frame(draw)
	if rect.W != 100 || rect.H != 25 {
		t.Errorf("toggle size = %vx%v, want 100x25", rect.W, rect.H)
	}

	h.clickFrame(rect.Center(), draw)
	if !value {
		t.Fatal("first click should turn the toggle on")
	}
	h.frame(draw)
	if !value {
		t.Error("value should hold without a click")
	}
	h.clickFrame(rect.Center(), draw)
	if value {
		t.Error("second click should turn the toggle off")
	}
}

func TestToggleKeepsNoState(t *testing.T) {
	h := newHarness(t)
	h.frame(func(ctx *imkit.Context) {
		ctx.Toggle("A", "", true)
		ctx.Toggle("B", "", false)
	})
	if n := h.ui.States().Len(); n != 0 {
		t.Errorf("toggles stored %d states, want 0", n)
	}
}

func TestToggleUsesOnBackground(t *testing.T) {
	up := &mockUploader{}
	ui, err := imkit.New(up)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	style, _ := ui.Styles().Style(imkit.StyleToggle)

	for _, tt := range []struct {
		value bool
		want  uint32
	}{
		{false, style.Normal.Texture},
		{true, style.OnNormal.Texture},
	} {
		ctx := ui.Begin(imkit.NewInputState(), displaySize, 0.016)
		ctx.Toggle("Flag", "", tt.value)
		found := false
		for _, cmd := range ctx.DrawList.CmdBuffer {
			if cmd.TextureID == tt.want {
				found = true
			}
		}
		if err := ui.End(); err != nil {
			t.Fatal(err)
		}
		if !found {
			t.Errorf("value %v: swatch texture %d not drawn", tt.value, tt.want)
		}
	}
}

func TestButtonClickedOnlyOnPressFrame(t *testing.T) {
	h := newHarness(t)
	clicks := 0
	var rect imkit.Rect
	draw := func(ctx *imkit.Context) {
		if ctx.Button("Save", "") {
			clicks++
		}
		rect = ctx.LastItemRect()
	}

	h.frame(draw)
	h.input.SetMousePos(rect.Center().X, rect.Center().Y)
	h.input.SetMouseButton(imkit.MouseButtonLeft, true)
	h.frame(draw)
	h.frame(draw) // still held
	h.input.SetMouseButton(imkit.MouseButtonLeft, false)
	h.frame(draw)

	if clicks != 1 {
		t.Errorf("clicks = %d, want 1", clicks)
	}
}

func TestButtonStyleOption(t *testing.T) {
	h := newHarness(t)
	h.frame(func(ctx *imkit.Context) {
		ctx.Button("Plain", "")
		plain := ctx.LastItemRect()
		ctx.Button("Header", "", imkit.WithStyle(imkit.StyleAccordion))
		header := ctx.LastItemRect()

		if plain.H != 25 {
			t.Errorf("button height = %v, want 25", plain.H)
		}
		if header.H != 30 {
			t.Errorf("accordion-styled button height = %v, want 30", header.H)
		}
		if plain.W != 150 {
			t.Errorf("button width = %v, want 150", plain.W)
		}
	})
}

func TestButtonUnknownStyleFallsBack(t *testing.T) {
	h := newHarness(t)
	h.frame(func(ctx *imkit.Context) {
		ctx.Button("Odd", "", imkit.WithStyle("no-such-style"))
		if got := ctx.LastItemRect().H; got != 25 {
			t.Errorf("height = %v, want button default 25", got)
		}
	})
}
