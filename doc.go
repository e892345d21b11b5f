/*
Package imkit provides stateful widgets for an immediate-mode GUI.

# Overview

The UI is rebuilt every frame: each widget call draws into the frame's
DrawList and returns the new logical value. Widgets that need memory between
frames (an open dropdown, an expanded accordion, a text field being edited, a
slider being dragged) keep it in the Session's StateStore, keyed by an ID
derived from the widget's label or an explicit WithID key. The caller never
stores UI state; it only stores the values widgets return.

# Quick Start

	renderer, _ := opengl.NewRenderer(1280, 720)
	ui, err := imkit.New(renderer, imkit.WithTheme(imkit.GTATheme()))
	if err != nil {
	    return err
	}

	for !window.ShouldClose() {
	    ctx := ui.Begin(input, imkit.Vec2{X: 1280, Y: 720}, dt)

	    idx = imkit.Dropdown[string](ctx, quality, idx)
	    volume = ctx.SliderFloat("Volume", "Master volume", volume, 0, 1)
	    vsync = ctx.Toggle("VSync", "Wait for vertical blank", vsync)
	    ctx.Accordion("Advanced", "", func() {
	        name = ctx.TextField("Name", "Profile name", name)
	    })

	    if err := ui.End(); err != nil {
	        return err
	    }
	    window.SwapBuffers()
	}

# Identity

A widget's ID is the FNV-1a hash of its key (WithID, else its label) under the
enclosing PushID scopes. It does not depend on draw order, so widgets drawn
conditionally do not disturb the state of the widgets after them. Two widgets
with the same key in the same scope share state; give one of them WithID or
wrap it in PushID/PopID. Accordion bodies are scoped under the accordion.

Widgets with neither label nor key fall back to NextID, which numbers key-less
widgets in draw order. That identity is only stable while the draw sequence is
unchanged.

# Styles

Styles are immutable WidgetStyle values built from a Theme by
StyleRegistry.InitializeStyles, which New calls once. Drawing through a
Context whose registry was never initialized panics with
ErrStylesNotInitialized. Session.ReinitializeStyles rebuilds them, replacing
the swatch textures uploaded for the toggle backgrounds.

# Text field keys

	Left / Right     Move cursor
	Home / End       Jump to start / end
	Backspace        Delete before cursor (or the selection)
	Delete           Delete after cursor (or the selection)
	Ctrl+A           Select all
	Ctrl+C           Copy the field to the clipboard
	Ctrl+V           Paste at the cursor
	Enter / Escape   Stop editing

# Concurrency

A Session and everything reached through its Context belong to the goroutine
that calls Begin and End.
*/
package imkit
