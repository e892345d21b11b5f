package opengl

import (
	"image/color"

	"github.com/go-gl/gl/v4.1-core/gl"
	"golang.org/x/image/font/basicfont"

	"github.com/go-theft-auto/imkit"
)

// Atlas layout: printable ASCII plus DEL, 16 glyphs per row.
const (
	atlasFirst   = ' '
	atlasLast    = '\x7f'
	atlasColumns = 16
)

// buildFontAtlas rasterizes basicfont's 7x13 face into a single-channel
// bitmap. Each glyph occupies one Advance x Height cell; DEL stays blank.
func buildFontAtlas() (pix []byte, w, h int, atlas imkit.FontAtlas) {
	face := basicfont.Face7x13
	cellW, cellH := face.Advance, face.Height
	count := int(atlasLast-atlasFirst) + 1
	rows := (count + atlasColumns - 1) / atlasColumns

	w, h = atlasColumns*cellW, rows*cellH
	pix = make([]byte, w*h)

	for i := 0; i < count; i++ {
		r := atlasFirst + rune(i)
		glyph, ok := glyphIndex(face, r)
		if !ok {
			continue
		}
		ox := (i % atlasColumns) * cellW
		oy := (i / atlasColumns) * cellH
		srcY := glyph * face.Height
		for y := 0; y < face.Height; y++ {
			for x := 0; x < face.Width; x++ {
				a := color.AlphaModel.Convert(face.Mask.At(x, srcY+y)).(color.Alpha).A
				pix[(oy+y)*w+ox+face.Left+x] = a
			}
		}
	}

	atlas = imkit.FontAtlas{
		CellWidth:  float32(cellW),
		CellHeight: float32(cellH),
		Columns:    atlasColumns,
		Rows:       rows,
		First:      atlasFirst,
		Last:       atlasLast,
	}
	return pix, w, h, atlas
}

// glyphIndex returns r's position in the face's mask.
func glyphIndex(face *basicfont.Face, r rune) (int, bool) {
	for _, rr := range face.Ranges {
		if r >= rr.Low && r < rr.High {
			return rr.Offset + int(r-rr.Low), true
		}
	}
	return 0, false
}

// uploadFontAtlas uploads the atlas as an alpha-only texture.
func uploadFontAtlas() imkit.FontAtlas {
	pix, w, h, atlas := buildFontAtlas()

	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RED, int32(w), int32(h), 0, gl.RED, gl.UNSIGNED_BYTE, gl.Ptr(pix))
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 4)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	atlas.TextureID = tex
	return atlas
}
