package imkit_test

import (
	"testing"

	"github.com/go-theft-auto/imkit"
)

// textFieldFixture keeps a text field's value across frames the way a caller
// would.
type textFieldFixture struct {
	h     *harness
	text  string
	field imkit.Rect
	id    imkit.ID
}

func newTextFieldFixture(t *testing.T, initial string, opts ...imkit.SessionOption) *textFieldFixture {
	f := &textFieldFixture{h: newHarness(t, opts...), text: initial}
	f.h.frame(f.draw)
	return f
}

func (f *textFieldFixture) draw(ctx *imkit.Context) {
	f.text = ctx.TextField("Name", "Your name", f.text)
	f.field = ctx.LastItemRect()
	f.id = ctx.GetID("Name")
}

func (f *textFieldFixture) editing() bool {
	st, ok := f.h.ui.States().Lookup(f.id)
	return ok && st.Edit.Editing
}

func TestTextFieldTypingReplacesSelection(t *testing.T) {
	f := newTextFieldFixture(t, "Player")

	f.h.clickFrame(f.field.Center(), f.draw)
	if !f.editing() {
		t.Fatal("click should start editing")
	}
	f.h.typeFrame("Niko", f.draw)

	if f.text != "Niko" {
		t.Errorf("text = %q, want Niko", f.text)
	}
}

func TestTextFieldEditingKeys(t *testing.T) {
	f := newTextFieldFixture(t, "abc")
	f.h.clickFrame(f.field.Center(), f.draw)

	f.h.keyFrame(imkit.KeyEnd, false, f.draw)
	f.h.keyFrame(imkit.KeyBackspace, false, f.draw)
	if f.text != "ab" {
		t.Fatalf("after Backspace text = %q, want ab", f.text)
	}

	f.h.keyFrame(imkit.KeyHome, false, f.draw)
	f.h.typeFrame("x", f.draw)
	if f.text != "xab" {
		t.Fatalf("after Home+x text = %q, want xab", f.text)
	}

	f.h.keyFrame(imkit.KeyDelete, false, f.draw)
	if f.text != "xb" {
		t.Fatalf("after Delete text = %q, want xb", f.text)
	}

	f.h.keyFrame(imkit.KeyLeft, false, f.draw)
	f.h.typeFrame("-", f.draw)
	if f.text != "-xb" {
		t.Fatalf("after Left+- text = %q, want -xb", f.text)
	}

	f.h.keyFrame(imkit.KeyEnter, false, f.draw)
	if f.editing() {
		t.Error("Enter should stop editing")
	}
	if f.text != "-xb" {
		t.Errorf("text after Enter = %q, want -xb", f.text)
	}
}

func TestTextFieldClipboard(t *testing.T) {
	clip := &imkit.MemoryClipboard{}
	f := newTextFieldFixture(t, "hello", imkit.WithClipboard(clip))
	f.h.clickFrame(f.field.Center(), f.draw)

	f.h.keyFrame(imkit.KeyC, true, f.draw)
	if got := clip.GetText(); got != "hello" {
		t.Fatalf("clipboard = %q, want hello", got)
	}

	clip.SetText("big\nworld")
	f.h.keyFrame(imkit.KeyEnd, false, f.draw)
	f.h.typeFrame(" ", f.draw)
	f.h.keyFrame(imkit.KeyV, true, f.draw)
	if f.text != "hello big world" {
		t.Errorf("after paste text = %q, want %q", f.text, "hello big world")
	}

	f.h.keyFrame(imkit.KeyA, true, f.draw)
	f.h.keyFrame(imkit.KeyBackspace, false, f.draw)
	if f.text != "" {
		t.Errorf("after Ctrl+A Backspace text = %q, want empty", f.text)
	}
}

func TestTextFieldClickOutsideStopsEditing(t *testing.T) {
	f := newTextFieldFixture(t, "abc")
	f.h.clickFrame(f.field.Center(), f.draw)
	if !f.editing() {
		t.Fatal("expected editing")
	}

	f.h.clickFrame(imkit.Vec2{X: 700, Y: 500}, f.draw)
	if f.editing() {
		t.Error("click outside should stop editing")
	}
}

func TestTextFieldCapturesKeyboardWhileEditing(t *testing.T) {
	f := newTextFieldFixture(t, "abc")
	var captured bool
	draw := func(ctx *imkit.Context) {
		f.draw(ctx)
		captured = ctx.WantCaptureKeyboard
	}

	f.h.frame(draw)
	if captured {
		t.Error("keyboard captured before editing")
	}
	f.h.clickFrame(f.field.Center(), draw)
	if !captured {
		t.Error("keyboard not captured while editing")
	}
}
