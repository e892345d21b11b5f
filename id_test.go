package imkit_test

import (
	"testing"

	"github.com/go-theft-auto/imkit"
)

func TestGetIDStableAcrossFrames(t *testing.T) {
	h := newHarness(t)
	var first, second imkit.ID
	h.frame(func(ctx *imkit.Context) {
		first = ctx.GetID("Quality")
	})
	h.frame(func(ctx *imkit.Context) {
		ctx.Button("Something else", "")
		second = ctx.GetID("Quality")
	})
	if first != second {
		t.Errorf("GetID changed across frames: %v != %v", first, second)
	}
}

func TestGetIDScopes(t *testing.T) {
	h := newHarness(t)
	h.frame(func(ctx *imkit.Context) {
		root := ctx.GetID("Volume")
		if other := ctx.GetID("Brightness"); other == root {
			t.Error("different keys share an ID")
		}

		ctx.PushID("audio")
		audio := ctx.GetID("Volume")
		ctx.PopID()

		ctx.PushID("music")
		music := ctx.GetID("Volume")
		ctx.PopID()

		if audio == root || music == root || audio == music {
			t.Errorf("scoped IDs collide: root=%v audio=%v music=%v", root, audio, music)
		}
		if ctx.GetID("Volume") != root {
			t.Error("PopID did not restore the root scope")
		}
	})
}

func TestWithIDOverridesLabel(t *testing.T) {
	h := newHarness(t)
	h.frame(func(ctx *imkit.Context) {
		ctx.Accordion("Save", "", nil, imkit.WithID("save"))
	})
	h.frame(func(ctx *imkit.Context) {
		if _, ok := h.ui.States().Lookup(ctx.GetID("save")); !ok {
			t.Error("no state under the explicit key")
		}
		if _, ok := h.ui.States().Lookup(ctx.GetID("Save")); ok {
			t.Error("state stored under the label despite WithID")
		}
	})
}

func TestWithIDKeepsStateAcrossRelabel(t *testing.T) {
	h := newHarness(t)
	title := "Audio"
	var header imkit.Rect
	calls := 0
	draw := func(ctx *imkit.Context) {
		ctx.Accordion(title, "", func() { calls++ }, imkit.WithID("audio-section"))
		if calls == 0 {
			header = ctx.LastItemRect()
		}
	}
	h.frame(draw)
	h.clickFrame(header.Center(), draw)

	title = "Audio (muted)"
	h.frame(draw)
	if calls != 2 {
		t.Errorf("body calls = %d, want 2: section collapsed after relabel", calls)
	}
}

func TestNextIDDependsOnDrawOrder(t *testing.T) {
	h := newHarness(t)
	var a1, b1, a2 imkit.ID
	h.frame(func(ctx *imkit.Context) {
		a1 = ctx.NextID()
		b1 = ctx.NextID()
	})
	h.frame(func(ctx *imkit.Context) {
		a2 = ctx.NextID()
	})

	if a1 == b1 {
		t.Error("NextID repeated within a frame")
	}
	if a1 != a2 {
		t.Error("first positional ID differs between frames")
	}

	h.frame(func(ctx *imkit.Context) {
		if ctx.NextID() == ctx.GetID("") {
			t.Error("positional ID collides with the empty key")
		}
	})
}
