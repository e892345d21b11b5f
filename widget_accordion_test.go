package imkit_test

import (
	"testing"

	"github.com/go-theft-auto/imkit"
)

func TestAccordionBodyRunsOnlyWhenExpanded(t *testing.T) {
	h := newHarness(t)
	calls := 0
	var header imkit.Rect
	draw := func(ctx *imkit.Context) {
		ctx.Accordion("Graphics", "", func() { calls++ })
		header = ctx.LastItemRect()
	}

	h.frame(draw)
	if calls != 0 {
		t.Fatalf("collapsed body called %d times", calls)
	}
	if header.W != 410 || header.H != 30 {
		t.Errorf("header = %vx%v, want 410x30", header.W, header.H)
	}

	// Expanding takes effect in the same frame
	h.clickFrame(header.Center(), draw)
	if calls != 1 {
		t.Fatalf("body called %d times after expanding, want 1", calls)
	}

	h.frame(draw)
	if calls != 2 {
		t.Errorf("body called %d times after two expanded frames, want 2", calls)
	}

	h.clickFrame(header.Center(), draw)
	h.frame(draw)
	if calls != 2 {
		t.Errorf("body called after collapsing (calls = %d)", calls)
	}
}

func TestAccordionScopesBodyIDs(t *testing.T) {
	h := newHarness(t)
	store := h.ui.States()

	var inA, inB, root imkit.ID
	h.frame(func(ctx *imkit.Context) {
		root = ctx.GetID("Volume")
	})
	idA := imkit.ID(0)
	h.frame(func(ctx *imkit.Context) {
		idA = ctx.GetID("Audio")
		idB := ctx.GetID("Video")
		store.SetOpen(idA, true)
		store.SetOpen(idB, true)
	})

	h.frame(func(ctx *imkit.Context) {
		ctx.Accordion("Audio", "", func() { inA = ctx.CurrentID() })
		ctx.Accordion("Video", "", func() { inB = ctx.CurrentID() })
		if ctx.CurrentID() != 0 {
			t.Error("accordion left its scope pushed")
		}
	})

	if inA != idA {
		t.Errorf("body scope = %v, want accordion ID %v", inA, idA)
	}
	if inA == inB {
		t.Error("sibling accordions share a body scope")
	}

	// Same label in two sections gets two states
	h.frame(func(ctx *imkit.Context) {
		ctx.Accordion("Audio", "", func() { ctx.SliderFloat("Volume", "", 0.5, 0, 1) })
		ctx.Accordion("Video", "", func() { ctx.SliderFloat("Volume", "", 0.5, 0, 1) })
	})
	if _, ok := store.Lookup(root); ok {
		t.Error("scoped slider stored under the root ID")
	}
	// Two accordions and two sliders
	if n := store.Len(); n != 4 {
		t.Errorf("store has %d entries, want 4", n)
	}
}

func TestAccordionBodyDrawsBelowHeader(t *testing.T) {
	h := newHarness(t)
	var header, inner imkit.Rect
	var after imkit.Vec2
	draw := func(ctx *imkit.Context) {
		ctx.Accordion("Section", "", func() {
			header = ctx.LastItemRect()
			ctx.Button("Inside", "")
			inner = ctx.LastItemRect()
		})
		after = ctx.GetCursorPos()
	}
	h.frame(func(ctx *imkit.Context) {
		draw(ctx)
		header = ctx.LastItemRect()
	})
	h.clickFrame(header.Center(), draw)

	if inner.Y < header.Y+header.H {
		t.Errorf("body item at y=%v overlaps the header ending at %v", inner.Y, header.Y+header.H)
	}
	if after.Y <= inner.Y+inner.H {
		t.Errorf("cursor y=%v after accordion, want below body item ending at %v", after.Y, inner.Y+inner.H)
	}
}
