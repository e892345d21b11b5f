// Package opengl provides an OpenGL 4.1 backend for imkit.
package opengl

import (
	"fmt"
	"image"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/imkit"
)

// Renderer draws imkit draw lists with OpenGL. It also uploads the swatch
// textures styled controls use, so it satisfies imkit.TextureUploader.
// All methods must be called on the thread that owns the GL context.
type Renderer struct {
	shader       uint32
	vao, vbo     uint32
	ebo          uint32
	atlas        imkit.FontAtlas
	projLoc      int32
	texLoc       int32
	texModeLoc   int32
	width        int
	height       int
	rgbaTextures map[uint32]bool // swatches; any other texture is the font

}

const vertexShaderSource = `
#version 410 core
layout (location = 0) in vec2 aPos;
layout (location = 1) in vec2 aUV;
layout (location = 2) in vec4 aColor;

out vec2 uv;
out vec4 tint;

uniform mat4 projection;

void main() {
    gl_Position = projection * vec4(aPos, 0.0, 1.0);
    uv = aUV;
    tint = aColor;
}
` + "\x00"

// texMode selects how the fragment shader samples: 0 flat color, 1 the
// alpha-only font atlas (red channel is coverage), 2 an RGBA swatch.
const fragmentShaderSource = `
#version 410 core
in vec2 uv;
in vec4 tint;

out vec4 fragColor;

uniform sampler2D tex;
uniform int texMode;

void main() {
    vec4 s = texture(tex, uv);
    if (texMode == 2) {
        fragColor = s * tint;
    } else if (texMode == 1) {
        fragColor = vec4(tint.rgb, tint.a * s.r);
    } else {
        fragColor = tint;
    }
}
` + "\x00"

const (
	texModeNone int32 = iota
	texModeAlpha
	texModeRGBA
)

// NewRenderer creates a renderer and uploads the font atlas.
// A GL 4.1 context must be current.
func NewRenderer(width, height int) (*Renderer, error) {
	r := &Renderer{
		width:        width,
		height:       height,
		rgbaTextures: make(map[uint32]bool),
	}

	var err error
	if r.shader, err = linkProgram(vertexShaderSource, fragmentShaderSource); err != nil {
		return nil, fmt.Errorf("imkit shader: %w", err)
	}
	r.projLoc = gl.GetUniformLocation(r.shader, gl.Str("projection\x00"))
	r.texLoc = gl.GetUniformLocation(r.shader, gl.Str("tex\x00"))
	r.texModeLoc = gl.GetUniformLocation(r.shader, gl.Str("texMode\x00"))

	gl.GenVertexArrays(1, &r.vao)
	gl.GenBuffers(1, &r.vbo)
	gl.GenBuffers(1, &r.ebo)
	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)

	var v imkit.Vertex
	stride := int32(unsafe.Sizeof(v))
	attribs := []struct {
		size       int32
		xtype      uint32
		normalized bool
		offset     uintptr
	}{
		{2, gl.FLOAT, false, unsafe.Offsetof(v.Pos)},
		{2, gl.FLOAT, false, unsafe.Offsetof(v.TexCoord)},
		{4, gl.UNSIGNED_BYTE, true, unsafe.Offsetof(v.Color)},
	}
	for i, a := range attribs {
		gl.VertexAttribPointerWithOffset(uint32(i), a.size, a.xtype, a.normalized, stride, a.offset)
		gl.EnableVertexAttribArray(uint32(i))
	}
	gl.BindVertexArray(0)

	r.atlas = uploadFontAtlas()
	return r, nil
}

// FontAtlas describes the uploaded glyph atlas.
func (r *Renderer) FontAtlas() imkit.FontAtlas {
	return r.atlas
}

// UploadTexture uploads img as an RGBA texture and returns its ID.
func (r *Renderer) UploadTexture(img *image.RGBA) (uint32, error) {
	b := img.Bounds()
	if b.Empty() {
		return 0, fmt.Errorf("upload texture: empty image %v", b)
	}
	// Rows must be contiguous for TexImage2D
	if img.Stride != 4*b.Dx() {
		packed := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		for y := 0; y < b.Dy(); y++ {
			copy(packed.Pix[y*packed.Stride:(y+1)*packed.Stride], img.Pix[img.PixOffset(b.Min.X, b.Min.Y+y):])
		}
		img = packed
	}

	var tex uint32
	gl.GenTextures(1, &tex)
	if tex == 0 {
		return 0, fmt.Errorf("upload texture: glGenTextures returned 0")
	}
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(b.Dx()), int32(b.Dy()), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.BindTexture(gl.TEXTURE_2D, 0)

	r.rgbaTextures[tex] = true
	return tex, nil
}

// ReleaseTexture deletes a texture created by UploadTexture.
func (r *Renderer) ReleaseTexture(id uint32) {
	if !r.rgbaTextures[id] {
		return
	}
	delete(r.rgbaTextures, id)
	gl.DeleteTextures(1, &id)
}

// Resize updates the viewport size.
func (r *Renderer) Resize(width, height int) {
	r.width = width
	r.height = height
}

// Render draws a finalized DrawList, leaving the caller's GL state as it
// found it.
func (r *Renderer) Render(dl *imkit.DrawList) error {
	if dl == nil || len(dl.VtxBuffer) == 0 {
		return nil
	}

	saved := saveState()
	defer saved.restore()

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.CULL_FACE)
	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.SCISSOR_TEST)

	gl.UseProgram(r.shader)
	proj := orthoMatrix(0, float32(r.width), float32(r.height), 0, -1, 1)
	gl.UniformMatrix4fv(r.projLoc, 1, false, &proj[0])
	gl.ActiveTexture(gl.TEXTURE0)
	gl.Uniform1i(r.texLoc, 0)

	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(dl.VtxBuffer)*int(unsafe.Sizeof(imkit.Vertex{})), gl.Ptr(dl.VtxBuffer), gl.STREAM_DRAW)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(dl.IdxBuffer)*2, gl.Ptr(dl.IdxBuffer), gl.STREAM_DRAW)

	for _, cmd := range dl.CmdBuffer {
		if cmd.ElemCount == 0 {
			continue
		}
		box, ok := scissorBox(cmd.ClipRect, r.height)
		if !ok {
			continue
		}
		gl.Scissor(box[0], box[1], box[2], box[3])
		gl.BindTexture(gl.TEXTURE_2D, cmd.TextureID)
		gl.Uniform1i(r.texModeLoc, r.texMode(cmd.TextureID))
		gl.DrawElementsBaseVertexWithOffset(gl.TRIANGLES, int32(cmd.ElemCount), gl.UNSIGNED_SHORT,
			uintptr(cmd.IndexOffset)*2, int32(cmd.VertexOffset))
	}
	return nil
}

func (r *Renderer) texMode(tex uint32) int32 {
	switch {
	case tex == 0:
		return texModeNone
	case r.rgbaTextures[tex]:
		return texModeRGBA
	default:
		return texModeAlpha
	}
}

// scissorBox converts a top-left origin clip rectangle (x1, y1, x2, y2) into
// a GL scissor box (x, y, w, h) with a bottom-left origin, clamped to the
// screen. ok is false when nothing of the rectangle is visible.
func scissorBox(clip [4]float32, screenH int) (box [4]int32, ok bool) {
	x := int32(clip[0])
	y := int32(float32(screenH) - clip[3])
	w := int32(clip[2] - clip[0])
	h := int32(clip[3] - clip[1])
	if x < 0 {
		w += x
		x = 0
	}
	if y < 0 {
		h += y
		y = 0
	}
	if w <= 0 || h <= 0 {
		return box, false
	}
	return [4]int32{x, y, w, h}, true
}

// glState is the slice of GL state Render touches.
type glState struct {
	program          int32
	blendSrc         int32
	blendDst         int32
	scissor          [4]int32
	vao              int32
	texture          int32
	blend, depth     bool
	cull, scissorsOn bool
}

func saveState() glState {
	var s glState
	gl.GetIntegerv(gl.CURRENT_PROGRAM, &s.program)
	gl.GetIntegerv(gl.BLEND_SRC_ALPHA, &s.blendSrc)
	gl.GetIntegerv(gl.BLEND_DST_ALPHA, &s.blendDst)
	gl.GetIntegerv(gl.SCISSOR_BOX, &s.scissor[0])
	gl.GetIntegerv(gl.VERTEX_ARRAY_BINDING, &s.vao)
	gl.GetIntegerv(gl.TEXTURE_BINDING_2D, &s.texture)
	s.blend = gl.IsEnabled(gl.BLEND)
	s.depth = gl.IsEnabled(gl.DEPTH_TEST)
	s.cull = gl.IsEnabled(gl.CULL_FACE)
	s.scissorsOn = gl.IsEnabled(gl.SCISSOR_TEST)
	return s
}

func (s glState) restore() {
	gl.UseProgram(uint32(s.program))
	gl.BlendFunc(uint32(s.blendSrc), uint32(s.blendDst))
	gl.BindVertexArray(uint32(s.vao))
	gl.BindTexture(gl.TEXTURE_2D, uint32(s.texture))
	setEnabled(gl.BLEND, s.blend)
	setEnabled(gl.DEPTH_TEST, s.depth)
	setEnabled(gl.CULL_FACE, s.cull)
	setEnabled(gl.SCISSOR_TEST, s.scissorsOn)
	gl.Scissor(s.scissor[0], s.scissor[1], s.scissor[2], s.scissor[3])
}

func setEnabled(capability uint32, on bool) {
	if on {
		gl.Enable(capability)
	} else {
		gl.Disable(capability)
	}
}

// Delete releases OpenGL resources.
func (r *Renderer) Delete() {
	for tex := range r.rgbaTextures {
		gl.DeleteTextures(1, &tex)
	}
	clear(r.rgbaTextures)
	if r.atlas.TextureID != 0 {
		gl.DeleteTextures(1, &r.atlas.TextureID)
	}
	if r.ebo != 0 {
		gl.DeleteBuffers(1, &r.ebo)
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.shader != 0 {
		gl.DeleteProgram(r.shader)
	}
}

func linkProgram(vertexSrc, fragmentSrc string) (uint32, error) {
	vs, err := compileShader(gl.VERTEX_SHADER, vertexSrc)
	if err != nil {
		return 0, fmt.Errorf("vertex: %w", err)
	}
	defer gl.DeleteShader(vs)
	fs, err := compileShader(gl.FRAGMENT_SHADER, fragmentSrc)
	if err != nil {
		return 0, fmt.Errorf("fragment: %w", err)
	}
	defer gl.DeleteShader(fs)

	program := gl.CreateProgram()
	gl.AttachShader(program, vs)
	gl.AttachShader(program, fs)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var n int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &n)
		msg := make([]byte, n+1)
		gl.GetProgramInfoLog(program, n, nil, &msg[0])
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("link: %s", msg)
	}
	return program, nil
}

func compileShader(kind uint32, src string) (uint32, error) {
	shader := gl.CreateShader(kind)
	csrc, free := gl.Strs(src)
	gl.ShaderSource(shader, 1, csrc, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var n int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &n)
		msg := make([]byte, n+1)
		gl.GetShaderInfoLog(shader, n, nil, &msg[0])
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compile: %s", msg)
	}
	return shader, nil
}

// orthoMatrix returns a column-major orthographic projection.
func orthoMatrix(left, right, bottom, top, near, far float32) [16]float32 {
	return [16]float32{
		2 / (right - left), 0, 0, 0,
		0, 2 / (top - bottom), 0, 0,
		0, 0, -2 / (far - near), 0,
		-(right + left) / (right - left), -(top + bottom) / (top - bottom), -(far + near) / (far - near), 1,
	}
}
