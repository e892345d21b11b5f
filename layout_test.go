package imkit_test

import (
	"testing"

	"github.com/go-theft-auto/imkit"
)

func TestVStackPlacesItemsWithGap(t *testing.T) {
	h := newHarness(t)
	h.frame(func(ctx *imkit.Context) {
		var a, b imkit.Rect
		ctx.VStack(imkit.Gap(6))(func() {
			ctx.Button("A", "")
			a = ctx.LastItemRect()
			ctx.Button("B", "")
			b = ctx.LastItemRect()
		})

		if a.X != b.X {
			t.Errorf("items not left-aligned: %v vs %v", a.X, b.X)
		}
		if want := a.Y + a.H + 6; b.Y != want {
			t.Errorf("second item y = %v, want %v", b.Y, want)
		}
	})
}

func TestHStackPlacesItemsSideBySide(t *testing.T) {
	h := newHarness(t)
	h.frame(func(ctx *imkit.Context) {
		var a, b imkit.Rect
		ctx.HStack(imkit.Gap(8))(func() {
			ctx.Button("A", "")
			a = ctx.LastItemRect()
			ctx.Button("B", "")
			b = ctx.LastItemRect()
		})

		if a.Y != b.Y {
			t.Errorf("items not top-aligned: %v vs %v", a.Y, b.Y)
		}
		if want := a.X + a.W + 8; b.X != want {
			t.Errorf("second item x = %v, want %v", b.X, want)
		}

		// The stack advances the cursor below its tallest item
		if got := ctx.GetCursorPos().Y; got < a.Y+a.H {
			t.Errorf("cursor y = %v after HStack, want at least %v", got, a.Y+a.H)
		}
	})
}

func TestBoxPadsContentAndDrawsBehind(t *testing.T) {
	h := newHarness(t)
	h.frame(func(ctx *imkit.Context) {
		ctx.SetCursorPos(10, 20)
		ctx.BeginBox(imkit.Width(300))
		ctx.Button("Inside", "")
		inner := ctx.LastItemRect()
		bounds := ctx.EndBox()

		pad := ctx.Theme().BoxPadding
		if inner.X != 10+pad || inner.Y != 20+pad {
			t.Errorf("content at (%v,%v), want (%v,%v)", inner.X, inner.Y, 10+pad, 20+pad)
		}
		if bounds.W != 300 {
			t.Errorf("box width = %v, want 300", bounds.W)
		}
		if want := inner.H + 2*pad; bounds.H != want {
			t.Errorf("box height = %v, want %v", bounds.H, want)
		}

		// Background is inserted first so it sits behind the button
		first := ctx.DrawList.VtxBuffer[0].Pos
		if first[0] != bounds.X || first[1] != bounds.Y {
			t.Errorf("first vertex %v, want box origin (%v,%v)", first, bounds.X, bounds.Y)
		}
	})
}

func TestEndBoxWithoutBeginBox(t *testing.T) {
	h := newHarness(t)
	h.frame(func(ctx *imkit.Context) {
		if got := ctx.EndBox(); got != (imkit.Rect{}) {
			t.Errorf("EndBox() = %v, want zero rect", got)
		}
	})
}

func TestCursorAdvancesWithoutLayout(t *testing.T) {
	h := newHarness(t)
	h.frame(func(ctx *imkit.Context) {
		ctx.Button("A", "")
		a := ctx.LastItemRect()
		ctx.Button("B", "")
		b := ctx.LastItemRect()

		spacing := ctx.Theme().ItemSpacing
		if want := a.Y + a.H + spacing; b.Y != want {
			t.Errorf("second button y = %v, want %v", b.Y, want)
		}
	})
}
