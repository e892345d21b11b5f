package imkit

import "sync"

// drawListPool reuses DrawList buffers between frames.
var drawListPool = sync.Pool{
	New: func() any {
		return &DrawList{
			VtxBuffer: make([]Vertex, 0, 1024),
			IdxBuffer: make([]uint16, 0, 2048),
			CmdBuffer: make([]DrawCmd, 0, 16),
			clipStack: make([][4]float32, 0, 8),
		}
	},
}

// AcquireDrawList gets a cleared DrawList from the pool.
// Call ReleaseDrawList when done to return it.
func AcquireDrawList() *DrawList {
	dl := drawListPool.Get().(*DrawList)
	dl.Clear()
	return dl
}

// ReleaseDrawList returns a DrawList to the pool for reuse.
func ReleaseDrawList(dl *DrawList) {
	if dl != nil {
		drawListPool.Put(dl)
	}
}

// DrawList accumulates draw commands for a frame.
// Primitives are batched by texture and clip rectangle.
type DrawList struct {
	CmdBuffer []DrawCmd
	VtxBuffer []Vertex
	IdxBuffer []uint16

	clipStack    [][4]float32
	currentClip  [4]float32
	textureID    uint32
	cmdOffset    uint32 // Vertex offset of the open command
	idxCmdOffset uint32 // Index offset of the open command
}

// Clear resets the DrawList for a new frame, keeping allocated capacity.
func (dl *DrawList) Clear() {
	dl.CmdBuffer = dl.CmdBuffer[:0]
	dl.VtxBuffer = dl.VtxBuffer[:0]
	dl.IdxBuffer = dl.IdxBuffer[:0]
	dl.clipStack = dl.clipStack[:0]
	dl.currentClip = [4]float32{-1e9, -1e9, 1e9, 1e9}
	dl.textureID = 0
	dl.cmdOffset = 0
	dl.idxCmdOffset = 0
}

// PushClipRect clips all subsequent primitives to the given rectangle.
func (dl *DrawList) PushClipRect(x1, y1, x2, y2 float32) {
	dl.clipStack = append(dl.clipStack, dl.currentClip)
	dl.currentClip = [4]float32{x1, y1, x2, y2}
	dl.splitDraw()
}

// PopClipRect restores the previous clip rectangle.
func (dl *DrawList) PopClipRect() {
	n := len(dl.clipStack)
	if n > 0 {
		dl.currentClip = dl.clipStack[n-1]
		dl.clipStack = dl.clipStack[:n-1]
		dl.splitDraw()
	}
}

// SetTexture sets the texture for subsequent primitives.
func (dl *DrawList) SetTexture(textureID uint32) {
	if dl.textureID == textureID {
		return
	}
	dl.textureID = textureID
	dl.splitDraw()
}

// splitDraw closes the open command and starts a new one with the current
// texture and clip rectangle.
func (dl *DrawList) splitDraw() {
	if len(dl.CmdBuffer) > 0 {
		last := &dl.CmdBuffer[len(dl.CmdBuffer)-1]
		last.ElemCount = uint32(len(dl.IdxBuffer)) - dl.idxCmdOffset
	}
	dl.CmdBuffer = append(dl.CmdBuffer, DrawCmd{
		ClipRect:     dl.currentClip,
		TextureID:    dl.textureID,
		VertexOffset: uint32(len(dl.VtxBuffer)),
		IndexOffset:  uint32(len(dl.IdxBuffer)),
	})
	dl.cmdOffset = uint32(len(dl.VtxBuffer))
	dl.idxCmdOffset = uint32(len(dl.IdxBuffer))
}

func (dl *DrawList) addQuad(x0, y0, x1, y1, u0, v0, u1, v1 float32, color uint32) {
	if len(dl.CmdBuffer) == 0 {
		dl.splitDraw()
	}
	idx := uint16(len(dl.VtxBuffer) - int(dl.cmdOffset))
	dl.VtxBuffer = append(dl.VtxBuffer,
		Vertex{Pos: [2]float32{x0, y0}, TexCoord: [2]float32{u0, v0}, Color: color},
		Vertex{Pos: [2]float32{x1, y0}, TexCoord: [2]float32{u1, v0}, Color: color},
		Vertex{Pos: [2]float32{x1, y1}, TexCoord: [2]float32{u1, v1}, Color: color},
		Vertex{Pos: [2]float32{x0, y1}, TexCoord: [2]float32{u0, v1}, Color: color},
	)
	dl.IdxBuffer = append(dl.IdxBuffer, idx, idx+1, idx+2, idx, idx+2, idx+3)
}

// AddRect draws a filled rectangle.
func (dl *DrawList) AddRect(x, y, w, h float32, color uint32) {
	if color&0xFF000000 == 0 {
		return
	}
	dl.SetTexture(0)
	dl.addQuad(x, y, x+w, y+h, 0, 0, 0, 0, color)
}

// AddRectOutline draws a rectangle outline.
func (dl *DrawList) AddRectOutline(x, y, w, h float32, color uint32, thickness float32) {
	if color&0xFF000000 == 0 {
		return
	}
	dl.AddRect(x, y, w, thickness, color)
	dl.AddRect(x, y+h-thickness, w, thickness, color)
	dl.AddRect(x, y+thickness, thickness, h-2*thickness, color)
	dl.AddRect(x+w-thickness, y+thickness, thickness, h-2*thickness, color)
}

// AddImage stretches a texture over a rectangle, tinted by color.
// Swatch backgrounds are drawn this way.
func (dl *DrawList) AddImage(x, y, w, h float32, textureID uint32, tint uint32) {
	if textureID == 0 {
		dl.AddRect(x, y, w, h, tint)
		return
	}
	dl.SetTexture(textureID)
	dl.addQuad(x, y, x+w, y+h, 0, 0, 1, 1, tint)
	dl.SetTexture(0)
}

// AddText draws text with the built-in bitmap font described by atlas.
// scale multiplies the atlas cell size.
func (dl *DrawList) AddText(x, y float32, text string, color uint32, atlas FontAtlas, scale float32) {
	if color&0xFF000000 == 0 || len(text) == 0 {
		return
	}
	cw := atlas.CellWidth * scale
	ch := atlas.CellHeight * scale

	dl.SetTexture(atlas.TextureID)
	i := 0
	for _, r := range text {
		u0, v0, u1, v1 := atlas.GlyphUV(r)
		px := x + float32(i)*cw
		dl.addQuad(px, y, px+cw, y+ch, u0, v0, u1, v1, color)
		i++
	}
	dl.SetTexture(0)
}

// InsertRect inserts a rectangle at the beginning of the draw list so it is
// drawn behind everything already recorded. Used for container backgrounds
// whose size is only known after their contents are drawn.
func (dl *DrawList) InsertRect(x, y, w, h float32, color uint32) {
	if color&0xFF000000 == 0 {
		return
	}

	verts := []Vertex{
		{Pos: [2]float32{x, y}, Color: color},
		{Pos: [2]float32{x + w, y}, Color: color},
		{Pos: [2]float32{x + w, y + h}, Color: color},
		{Pos: [2]float32{x, y + h}, Color: color},
	}
	dl.VtxBuffer = append(verts, dl.VtxBuffer...)
	dl.IdxBuffer = append([]uint16{0, 1, 2, 0, 2, 3}, dl.IdxBuffer...)

	// Indices are relative to VertexOffset, so only the offsets shift.
	for i := range dl.CmdBuffer {
		dl.CmdBuffer[i].VertexOffset += 4
		dl.CmdBuffer[i].IndexOffset += 6
	}
	dl.cmdOffset += 4
	dl.idxCmdOffset += 6

	bg := DrawCmd{ElemCount: 6, ClipRect: dl.currentClip}
	dl.CmdBuffer = append([]DrawCmd{bg}, dl.CmdBuffer...)
}

// Finalize closes the last command and drops empty ones.
// Must be called after all primitives are added.
func (dl *DrawList) Finalize() {
	if len(dl.CmdBuffer) > 0 {
		last := &dl.CmdBuffer[len(dl.CmdBuffer)-1]
		last.ElemCount = uint32(len(dl.IdxBuffer)) - dl.idxCmdOffset
	}

	filtered := dl.CmdBuffer[:0]
	for _, cmd := range dl.CmdBuffer {
		if cmd.ElemCount > 0 {
			filtered = append(filtered, cmd)
		}
	}
	dl.CmdBuffer = filtered
}
