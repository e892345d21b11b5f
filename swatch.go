package imkit

import (
	"image"
	"image/color"
)

// TextureUploader is implemented by renderers that can take procedurally
// generated textures. The style registry uses it for swatch backgrounds.
type TextureUploader interface {
	UploadTexture(img *image.RGBA) (uint32, error)
	ReleaseTexture(id uint32)
}

// NewSwatch returns a 1×1 image filled with a packed color. Stretched over a
// control it acts as a solid background.
func NewSwatch(c uint32) *image.RGBA {
	r, g, b, a := UnpackRGBA(c)
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.SetRGBA(0, 0, color.RGBA{R: r, G: g, B: b, A: a})
	return img
}
