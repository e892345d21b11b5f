package imkit_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/go-theft-auto/imkit"
	"github.com/go-theft-auto/imkit/setting"
)

// optionRect returns the rectangle of option i below an open dropdown button.
// Options are 25px tall with a 2px gap, aligned under the button.
func optionRect(button imkit.Rect, i int) imkit.Rect {
	return imkit.Rect{X: button.X, Y: button.Y + button.H + 2 + float32(i)*27, W: button.W, H: 25}
}

func TestDropdownSelectClosesAndWritesBinding(t *testing.T) {
	h := newHarness(t)
	letters := setting.New("Letter", "Pick one", "A", "A", "B", "C")
	idx := 0
	var button imkit.Rect
	var id imkit.ID

	draw := func(ctx *imkit.Context) {
		idx = imkit.Dropdown[string](ctx, letters, idx)
		button = ctx.LastItemRect()
		id = ctx.GetID("Letter")
	}

	h.frame(draw)
	if h.ui.States().IsOpen(id) {
		t.Fatal("dropdown open before any click")
	}

	h.clickFrame(button.Center(), draw)
	if !h.ui.States().IsOpen(id) {
		t.Fatal("dropdown not open after clicking its button")
	}

	h.clickFrame(optionRect(button, 1).Center(), draw)

	if idx != 1 {
		t.Errorf("index = %d, want 1", idx)
	}
	if letters.Value() != "B" {
		t.Errorf("binding value = %q, want B", letters.Value())
	}
	if h.ui.States().IsOpen(id) {
		t.Error("dropdown still open after selecting")
	}
}

func TestDropdownClickButtonAgainCloses(t *testing.T) {
	h := newHarness(t)
	s := setting.New("Mode", "", "x", "x", "y")
	var button imkit.Rect
	var id imkit.ID
	draw := func(ctx *imkit.Context) {
		imkit.Dropdown[string](ctx, s, 0)
		button = ctx.LastItemRect()
		id = ctx.GetID("Mode")
	}

	h.frame(draw)
	h.clickFrame(button.Center(), draw)
	h.clickFrame(button.Center(), draw)

	if h.ui.States().IsOpen(id) {
		t.Error("second click should close the list")
	}
	if s.Value() != "x" {
		t.Errorf("value changed to %q without selecting", s.Value())
	}
}

func TestDropdownIndexSelfHeals(t *testing.T) {
	tests := []struct {
		name string
		in   int
		want int
	}{
		{"in range", 2, 2},
		{"past end", 5, 0},
		{"negative", -1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			s := setting.New("Letter", "", "A", "A", "B", "C")
			var got int
			h.frame(func(ctx *imkit.Context) {
				got = imkit.Dropdown[string](ctx, s, tt.in)
			})
			if got != tt.want {
				t.Errorf("Dropdown(%d) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestDropdownInvalidOptionsDrawsNothing(t *testing.T) {
	var buf bytes.Buffer
	s := setting.New[string]("Empty", "", "").SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	h := newHarness(t)

	for frame := 0; frame < 3; frame++ {
		h.frame(func(ctx *imkit.Context) {
			before := len(ctx.DrawList.VtxBuffer)
			if got := imkit.Dropdown[string](ctx, s, 7); got != 7 {
				t.Errorf("Dropdown() = %d, want unchanged 7", got)
			}
			if len(ctx.DrawList.VtxBuffer) != before {
				t.Error("invalid dropdown emitted geometry")
			}
		})
	}

	if n := strings.Count(buf.String(), "invalid setting options"); n != 1 {
		t.Errorf("logged %d times, want once", n)
	}
	if h.ui.States().Len() != 0 {
		t.Errorf("invalid dropdown created %d states", h.ui.States().Len())
	}
}

func TestDropdownStateSurvivesConditionalControls(t *testing.T) {
	h := newHarness(t)
	s := setting.New("Letter", "", "A", "A", "B")
	showExtra := true
	var button imkit.Rect
	var id imkit.ID

	draw := func(ctx *imkit.Context) {
		if showExtra {
			ctx.Button("", "") // key-less control ahead of the dropdown
		}
		imkit.Dropdown[string](ctx, s, 0)
		button = ctx.LastItemRect()
		id = ctx.GetID("Letter")
	}

	h.frame(draw)
	h.clickFrame(button.Center(), draw)
	if !h.ui.States().IsOpen(id) {
		t.Fatal("dropdown not open")
	}

	showExtra = false
	h.frame(draw)
	if !h.ui.States().IsOpen(id) {
		t.Error("dropdown lost its state when an earlier control was skipped")
	}
}

func TestDropdownNilOptionRendersEmpty(t *testing.T) {
	h := newHarness(t)
	a, b := "a", "b"
	s := setting.New[*string]("Ptr", "", nil, nil, &a, &b)

	h.frame(func(ctx *imkit.Context) {
		if got := imkit.Dropdown[*string](ctx, s, 0); got != 0 {
			t.Errorf("Dropdown() = %d, want 0", got)
		}
	})
}
