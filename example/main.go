// Example shows every imkit widget bound to settings that persist to a TOML
// config file.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
//
// Settings are read from ~/.config/imkit/config.toml (or $IMKIT_CONFIG) and
// written back when "Save" is clicked. Any key can be overridden from the
// environment, e.g. IMKIT_UI_THEME=light.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/imkit"
	"github.com/go-theft-auto/imkit/backend/opengl"
	"github.com/go-theft-auto/imkit/internal/config"
	"github.com/go-theft-auto/imkit/setting"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// model is the application state the widgets edit.
type model struct {
	cfg config.Config

	quality      *setting.Setting[string]
	qualityIndex int
	theme        *setting.Setting[string]
	themeIndex   int

	dirty        bool
	pendingTheme string // Applied after End
}

func newModel(cfg config.Config, logger *slog.Logger) *model {
	m := &model{cfg: cfg}
	m.quality = setting.New("Quality", "Overall rendering quality", cfg.Settings.Quality,
		"Low", "Medium", "High", "Ultra").SetLogger(logger)
	m.quality.OnChange(func(v string) {
		m.cfg.Settings.Quality = v
		m.dirty = true
	})
	m.qualityIndex = imkit.FindIndex[string](m.quality)

	m.theme = setting.New("Theme", "Color theme", cfg.UI.Theme,
		"default", "gta", "light").SetLogger(logger)
	m.themeIndex = imkit.FindIndex[string](m.theme)
	return m
}

func run() error {
	cfg, err := config.Load("")
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	imkit.SetVerbose(cfg.UI.Verbose)
	level := slog.LevelInfo
	if cfg.UI.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(cfg.Window.Width, cfg.Window.Height, cfg.Window.Title, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	if cfg.Settings.VSync {
		glfw.SwapInterval(1)
	}

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(cfg.Window.Width, cfg.Window.Height)
	if err != nil {
		return fmt.Errorf("imkit renderer: %w", err)
	}
	defer renderer.Delete()

	inputAdapter := opengl.NewGLFWInputAdapter(window)

	theme, ok := imkit.ThemeByName(cfg.UI.Theme)
	if !ok {
		logger.Warn("unknown theme, using default", "theme", cfg.UI.Theme)
		theme = imkit.DefaultTheme()
	}
	ui, err := imkit.New(renderer,
		imkit.WithTheme(theme),
		imkit.WithLogger(logger),
		imkit.WithClipboard(opengl.GLFWClipboard{Window: window}),
	)
	if err != nil {
		return fmt.Errorf("imkit session: %w", err)
	}

	window.SetFramebufferSizeCallback(func(_ *glfw.Window, w, h int) {
		ui.Resize(w, h)
	})

	m := newModel(cfg, logger)
	last := glfw.GetTime()

	for !window.ShouldClose() {
		input := inputAdapter.Update()

		now := glfw.GetTime()
		dt := float32(now - last)
		last = now

		w, h := window.GetFramebufferSize()
		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		ctx := ui.Begin(input, imkit.Vec2{X: float32(w), Y: float32(h)}, dt)
		ctx.SetCursorPos(16, 16)
		m.draw(ctx)
		if err := ui.End(); err != nil {
			return fmt.Errorf("imkit render: %w", err)
		}
		m.applyTheme(ui)

		window.SwapBuffers()
	}

	return nil
}

// draw lays out one frame of the settings screen.
func (m *model) draw(ctx *imkit.Context) {
	s := &m.cfg.Settings

	ctx.VStack(imkit.Gap(6))(func() {
		m.qualityIndex = imkit.Dropdown[string](ctx, m.quality, m.qualityIndex)

		if v := ctx.SliderFloat("Volume", "Master volume", s.Volume, 0, 1); v != s.Volume {
			s.Volume, m.dirty = v, true
		}
		if v := ctx.SliderInt("Field of view", "Camera field of view in degrees", s.FOV, 60, 120); v != s.FOV {
			s.FOV, m.dirty = v, true
		}
		if v := ctx.Toggle("VSync", "Wait for vertical blank (applies on restart)", s.VSync); v != s.VSync {
			s.VSync, m.dirty = v, true
		}
		if v := ctx.TextField("Player name", "Shown to other players", s.PlayerName); v != s.PlayerName {
			s.PlayerName, m.dirty = v, true
		}

		ctx.Accordion("Display", "Appearance options", func() {
			idx := imkit.Dropdown[string](ctx, m.theme, m.themeIndex)
			if idx != m.themeIndex {
				m.themeIndex = idx
				m.cfg.UI.Theme = m.theme.Value()
				m.dirty = true
				m.pendingTheme = m.cfg.UI.Theme
			}
			if v := ctx.SliderFloat("Brightness", "Gamma multiplier", s.Brightness, 0.5, 2, imkit.WithFormat("%.1f")); v != s.Brightness {
				s.Brightness, m.dirty = v, true
			}
		})

		ctx.HStack()(func() {
			label := "Save"
			if m.dirty {
				label = "Save *"
			}
			if ctx.Button(label, "Write settings to "+config.Path(), imkit.WithID("save")) {
				if err := config.Save("", m.cfg); err != nil {
					ctx.Logger().Error("save config", "err", err)
				} else {
					m.dirty = false
				}
			}
			if ctx.Button("Reload styles", "Rebuild widget styles", imkit.WithStyle(imkit.StyleAccordion)) {
				m.pendingTheme = m.cfg.UI.Theme
			}
		})
	})
}

// applyTheme rebuilds the session styles after a theme change.
func (m *model) applyTheme(ui *imkit.Session) {
	if m.pendingTheme == "" {
		return
	}
	name := m.pendingTheme
	m.pendingTheme = ""

	t, ok := imkit.ThemeByName(name)
	if !ok {
		return
	}
	if err := ui.SetTheme(t); err != nil {
		ui.Context().Logger().Error("set theme", "theme", name, "err", err)
	}
}
