package opengl

import "testing"

func TestBuildFontAtlasLayout(t *testing.T) {
	pix, w, h, atlas := buildFontAtlas()

	if len(pix) != w*h {
		t.Fatalf("len(pix) = %d, want %d", len(pix), w*h)
	}
	if atlas.CellWidth != 7 || atlas.CellHeight != 13 {
		t.Errorf("cell = %vx%v, want 7x13", atlas.CellWidth, atlas.CellHeight)
	}
	if atlas.Columns*int(atlas.CellWidth) != w || atlas.Rows*int(atlas.CellHeight) != h {
		t.Errorf("atlas %dx%d cells does not cover %dx%d texture", atlas.Columns, atlas.Rows, w, h)
	}
}

func TestBuildFontAtlasGlyphs(t *testing.T) {
	pix, w, _, atlas := buildFontAtlas()
	cw, ch := int(atlas.CellWidth), int(atlas.CellHeight)

	coverage := func(r rune) int {
		i := int(r - atlas.First)
		ox, oy := (i%atlas.Columns)*cw, (i/atlas.Columns)*ch
		n := 0
		for y := 0; y < ch; y++ {
			for x := 0; x < cw; x++ {
				if pix[(oy+y)*w+ox+x] > 0 {
					n++
				}
			}
		}
		return n
	}

	if n := coverage(' '); n != 0 {
		t.Errorf("space has %d lit pixels, want 0", n)
	}
	for _, r := range "AZaz09?" {
		if coverage(r) == 0 {
			t.Errorf("glyph %q is blank", r)
		}
	}
	if n := coverage('\x7f'); n != 0 {
		t.Errorf("DEL has %d lit pixels, want 0", n)
	}
}
