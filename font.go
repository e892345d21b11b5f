package imkit

// FontAtlas describes a fixed-cell bitmap font texture supplied by the renderer.
// Glyphs for runes First..Last are laid out row-major, Columns per row.
type FontAtlas struct {
	TextureID  uint32
	CellWidth  float32 // Glyph cell size in pixels
	CellHeight float32
	Columns    int
	Rows       int
	First      rune
	Last       rune
}

// GlyphUV returns the texture coordinates of r's cell.
// Runes outside the atlas are mapped to an ASCII look-alike or '?'.
func (a FontAtlas) GlyphUV(r rune) (u0, v0, u1, v1 float32) {
	if a.Columns <= 0 || a.Rows <= 0 {
		return 0, 0, 0, 0
	}
	r = unicodeFallback(r)
	if r < a.First || r > a.Last {
		r = '?'
		if r < a.First || r > a.Last {
			r = a.First
		}
	}
	idx := int(r - a.First)
	col := float32(idx % a.Columns)
	row := float32(idx / a.Columns)
	cols := float32(a.Columns)
	rows := float32(a.Rows)
	return col / cols, row / rows, (col + 1) / cols, (row + 1) / rows
}

// unicodeFallback maps common symbols to ASCII for the bitmap font.
func unicodeFallback(r rune) rune {
	if r >= 32 && r <= 127 {
		return r
	}
	switch r {
	case '►', '▶', '▸', '→':
		return '>'
	case '◄', '◀', '◂', '←':
		return '<'
	case '▼', '▾', '↓':
		return 'v'
	case '▲', '▴', '↑':
		return '^'
	case '●', '•':
		return '*'
	case '—', '–':
		return '-'
	default:
		return r
	}
}
