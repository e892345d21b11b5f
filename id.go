package imkit

import "hash/fnv"

// ID identifies a control for state persistence.
type ID uint64

// GetID derives a stable ID from an explicit key.
// The result depends only on the key and the enclosing PushID scopes, never on
// how many controls were drawn before it, so conditionally drawn widgets do
// not shift the identity of the ones after them.
func (ctx *Context) GetID(key string) ID {
	h := fnv.New64a()
	var parent [8]byte
	p := uint64(ctx.CurrentID())
	for i := range parent {
		parent[i] = byte(p >> (8 * i))
	}
	h.Write(parent[:])
	h.Write([]byte(key))
	return ID(h.Sum64())
}

// NextID returns an identity derived from draw order: the n-th key-less
// control of a frame always gets the same ID.
//
// This is only stable while the per-frame sequence of key-less controls is
// unchanged. If a control is skipped one frame, every later key-less control
// takes over its predecessor's state. Prefer GetID.
func (ctx *Context) NextID() ID {
	ctx.idCounter++
	return ID(uint64(ctx.CurrentID())<<32 | 1<<31 | uint64(ctx.idCounter))
}

// PushID opens a key scope for nested controls.
// All GetID calls until the matching PopID are relative to it.
func (ctx *Context) PushID(key string) {
	ctx.idStack = append(ctx.idStack, ctx.GetID(key))
}

// pushScope opens a key scope rooted at an already resolved ID.
func (ctx *Context) pushScope(id ID) {
	ctx.idStack = append(ctx.idStack, id)
}

// PopID closes the innermost key scope.
func (ctx *Context) PopID() {
	if len(ctx.idStack) > 0 {
		ctx.idStack = ctx.idStack[:len(ctx.idStack)-1]
	}
}

// CurrentID returns the innermost scope ID, or 0 at the root.
func (ctx *Context) CurrentID() ID {
	if len(ctx.idStack) > 0 {
		return ctx.idStack[len(ctx.idStack)-1]
	}
	return 0
}

// controlID resolves a widget's identity: an explicit WithID key wins, then
// the label, then draw order.
func (ctx *Context) controlID(label string, o options) ID {
	if key := GetOpt(o, OptID); key != "" {
		return ctx.GetID(key)
	}
	if label != "" {
		return ctx.GetID(label)
	}
	return ctx.NextID()
}
