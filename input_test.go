package imkit_test

import (
	"testing"

	"github.com/go-theft-auto/imkit"
)

func TestInputMouseEdges(t *testing.T) {
	in := imkit.NewInputState()

	in.SetMouseButton(imkit.MouseButtonLeft, true)
	if !in.MouseClicked(imkit.MouseButtonLeft) || !in.MouseDown(imkit.MouseButtonLeft) {
		t.Error("press should report clicked and down")
	}
	if in.MouseReleased(imkit.MouseButtonLeft) {
		t.Error("press reported a release")
	}

	in.Reset()
	in.SetMouseButton(imkit.MouseButtonLeft, false)
	if !in.MouseReleased(imkit.MouseButtonLeft) {
		t.Error("release not reported")
	}
	if in.MouseDown(imkit.MouseButtonLeft) || in.MouseClicked(imkit.MouseButtonLeft) {
		t.Error("released button still down or clicked")
	}

	in.Reset()
	if in.MouseReleased(imkit.MouseButtonLeft) {
		t.Error("release edge survived Reset")
	}
	in.SetMouseButton(imkit.MouseButtonLeft, false)
	if in.MouseReleased(imkit.MouseButtonLeft) {
		t.Error("release reported for a button that was not down")
	}
	if in.MouseReleased(imkit.MouseButtonCount) {
		t.Error("out-of-range button reported a release")
	}
}
