package imkit

// ClipboardProvider abstracts system clipboard access.
// Implement it with platform-specific clipboard APIs; backend/opengl ships a
// GLFW implementation. Install it on a session with WithClipboard.
type ClipboardProvider interface {
	// GetText retrieves text from the system clipboard.
	// Returns empty string if clipboard is empty or contains non-text data.
	GetText() string

	// SetText copies text to the system clipboard.
	SetText(text string)
}

// MemoryClipboard is a process-local ClipboardProvider, useful for tests and
// headless hosts.
type MemoryClipboard struct {
	text string
}

// GetText returns the stored text.
func (c *MemoryClipboard) GetText() string { return c.text }

// SetText stores text.
func (c *MemoryClipboard) SetText(text string) { c.text = text }

// clipboardGetText retrieves text from the session clipboard.
// Returns empty string if no clipboard provider is set.
func (ctx *Context) clipboardGetText() string {
	if ctx.clipboard != nil {
		return ctx.clipboard.GetText()
	}
	return ""
}

// clipboardSetText copies text to the session clipboard, if any.
func (ctx *Context) clipboardSetText(text string) {
	if ctx.clipboard != nil {
		ctx.clipboard.SetText(text)
	}
}
