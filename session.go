package imkit

import (
	"fmt"
	"log/slog"
)

// Renderer is the interface for rendering GUI draw data.
// Renderers that also implement TextureUploader get textured swatch
// backgrounds for styled controls.
type Renderer interface {
	Render(dl *DrawList) error
	FontAtlas() FontAtlas
	Resize(width, height int)
}

// Session owns everything that outlives a frame: the renderer, the control
// state store, the style registry and the per-frame Context.
// It is not safe for concurrent use.
type Session struct {
	renderer  Renderer
	states    *StateStore
	theme     Theme
	styles    *StyleRegistry
	clipboard ClipboardProvider
	log       *slog.Logger
	ctx       *Context
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithTheme sets the base theme styles are built from.
func WithTheme(theme Theme) SessionOption {
	return func(s *Session) { s.theme = theme }
}

// WithLogger sets the logger for widget events. A nil logger keeps the
// package logger.
func WithLogger(l *slog.Logger) SessionOption {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// WithClipboard sets the clipboard used by text fields.
func WithClipboard(cp ClipboardProvider) SessionOption {
	return func(s *Session) { s.clipboard = cp }
}

// WithStateStore sets a pre-populated state store.
func WithStateStore(store *StateStore) SessionOption {
	return func(s *Session) { s.states = store }
}

// New creates a session and initializes its styles.
func New(renderer Renderer, opts ...SessionOption) (*Session, error) {
	s := &Session{
		renderer: renderer,
		states:   NewStateStore(),
		theme:    DefaultTheme(),
		log:      logger,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.styles = NewStyleRegistry(s.theme)
	if err := s.styles.InitializeStyles(s.uploader()); err != nil {
		return nil, fmt.Errorf("initialize styles: %w", err)
	}

	s.ctx = NewContext(s.states, s.styles)
	s.ctx.clipboard = s.clipboard
	s.ctx.log = s.log
	return s, nil
}

func (s *Session) uploader() TextureUploader {
	if up, ok := s.renderer.(TextureUploader); ok {
		return up
	}
	return nil
}

// Begin starts a new frame and returns the GUI context.
// Call this at the start of each frame before drawing any UI.
func (s *Session) Begin(input *InputState, displaySize Vec2, deltaTime float32) *Context {
	ctx := s.ctx

	ctx.DrawList = AcquireDrawList()
	ctx.ForegroundDrawList = AcquireDrawList()

	ctx.Input = input
	ctx.SetFontAtlas(s.renderer.FontAtlas())
	ctx.Reset(displaySize, deltaTime)

	return ctx
}

// End finishes the frame and renders the UI.
// Call this after all UI drawing is complete.
func (s *Session) End() error {
	ctx := s.ctx
	if ctx.DrawList == nil {
		return nil
	}

	ctx.DrawList.Finalize()
	err := s.renderer.Render(ctx.DrawList)

	// Foreground (tooltips, open lists) goes on top
	if err == nil && ctx.ForegroundDrawList != nil {
		ctx.ForegroundDrawList.Finalize()
		if len(ctx.ForegroundDrawList.CmdBuffer) > 0 {
			err = s.renderer.Render(ctx.ForegroundDrawList)
		}
	}

	ReleaseDrawList(ctx.DrawList)
	ctx.DrawList = nil
	if ctx.ForegroundDrawList != nil {
		ReleaseDrawList(ctx.ForegroundDrawList)
		ctx.ForegroundDrawList = nil
	}

	if err != nil {
		return fmt.Errorf("render frame %d: %w", ctx.FrameCount, err)
	}
	return nil
}

// ReinitializeStyles rebuilds every named style and its swatch textures.
// Existing style pointers held by callers keep the old values.
func (s *Session) ReinitializeStyles() error {
	if err := s.styles.InitializeStyles(s.uploader()); err != nil {
		return fmt.Errorf("reinitialize styles: %w", err)
	}
	return nil
}

// SetTheme swaps the base theme and rebuilds the styles from it. On failure
// the previous theme and styles stay in effect.
func (s *Session) SetTheme(theme Theme) error {
	prev := s.theme
	s.theme = theme
	s.styles.theme = theme
	if err := s.ReinitializeStyles(); err != nil {
		s.theme = prev
		s.styles.theme = prev
		return err
	}
	return nil
}

// Context returns the session's context.
// Only valid for drawing between Begin and End.
func (s *Session) Context() *Context {
	return s.ctx
}

// States returns the session's control state store.
func (s *Session) States() *StateStore {
	return s.states
}

// Styles returns the session's style registry.
func (s *Session) Styles() *StyleRegistry {
	return s.styles
}

// Resize notifies the renderer of a display size change.
func (s *Session) Resize(width, height int) {
	s.renderer.Resize(width, height)
}
