package imkit_test

import (
	"testing"

	"github.com/go-theft-auto/imkit"
)

func TestTooltipConsumedAndDrawnAbovePointer(t *testing.T) {
	h := newHarness(t)
	h.input.SetMousePos(20, 10)

	h.frame(func(ctx *imkit.Context) {
		ctx.Button("Help", "Opens the manual")

		if got := ctx.Tooltip(); got != "" {
			t.Errorf("tooltip %q still pending after the widget returned", got)
		}
		fg := ctx.ForegroundDrawList
		if len(fg.VtxBuffer) == 0 {
			t.Fatal("no tooltip geometry on the foreground list")
		}

		// One line: 13px glyphs plus 4px padding on each side
		const boxH = 13 + 2*4
		first := fg.VtxBuffer[0].Pos
		if first[0] != 20 || first[1] != 10-boxH {
			t.Errorf("tooltip box origin = %v, want (20, %v)", first, 10-boxH)
		}
	})
}

func TestTooltipOnlyWhenHovered(t *testing.T) {
	h := newHarness(t)
	h.input.SetMousePos(700, 500)

	h.frame(func(ctx *imkit.Context) {
		ctx.Button("Help", "Opens the manual")
		ctx.Toggle("Flag", "Some flag", false)
		if len(ctx.ForegroundDrawList.VtxBuffer) != 0 {
			t.Error("tooltip drawn without hover")
		}
	})
}

func TestTooltipOnRowLabel(t *testing.T) {
	h := newHarness(t)
	// Over the label column of a toggle row
	h.input.SetMousePos(30, 12)

	h.frame(func(ctx *imkit.Context) {
		ctx.Toggle("Flag", "Label help", false)
		if len(ctx.ForegroundDrawList.VtxBuffer) == 0 {
			t.Error("hovering the label should show the row tooltip")
		}
	})
}

func TestTooltipWrapsLongText(t *testing.T) {
	h := newHarness(t)
	h.input.SetMousePos(10, 300)

	long := "This tooltip is long enough that it cannot possibly fit on a single line of three hundred and twenty pixels"
	h.frame(func(ctx *imkit.Context) {
		ctx.Button("Help", long)
		fg := ctx.ForegroundDrawList
		top := fg.VtxBuffer[0].Pos[1]
		if got := 300 - top; got <= 13+2*4 {
			t.Errorf("tooltip height %v, want more than one line", got)
		}
	})
}
