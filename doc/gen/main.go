// Command gen renders every imkit widget with sample data, captures the
// framebuffer and saves JPEG screenshots to doc/imgs/.
//
// Usage:
//
//	devbox shell
//	go run ./doc/gen/
package main

import (
	"fmt"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/imkit"
	"github.com/go-theft-auto/imkit/backend/opengl"
	"github.com/go-theft-auto/imkit/setting"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// screenshot defines a single widget screenshot to capture.
type screenshot struct {
	name   string                   // filename without extension
	width  int                      // viewport width
	height int                      // viewport height
	draw   func(ctx *imkit.Context) // widget drawing function
	hover  *imkit.Vec2              // pointer position, for tooltips
}

func run() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Visible, glfw.False)

	window, err := glfw.CreateWindow(800, 600, "screenshot-gen", nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(800, 600)
	if err != nil {
		return fmt.Errorf("imkit renderer: %w", err)
	}
	defer renderer.Delete()

	outDir := filepath.Join("doc", "imgs")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	shots := buildScreenshots()
	for _, s := range shots {
		if err := capture(renderer, s, outDir); err != nil {
			return fmt.Errorf("capture %s: %w", s.name, err)
		}
		fmt.Printf("  %s.jpg (%dx%d)\n", s.name, s.width, s.height)
	}

	fmt.Printf("\nGenerated %d screenshots in %s/\n", len(shots), outDir)
	return nil
}

func capture(renderer *opengl.Renderer, s screenshot, outDir string) error {
	// Only the projection changes; the hidden window stays 800x600, which is
	// larger than every screenshot.
	renderer.Resize(s.width, s.height)

	// Fresh session per screenshot so no state leaks between captures
	ui, err := imkit.New(renderer, imkit.WithTheme(imkit.GTATheme()))
	if err != nil {
		return err
	}

	input := imkit.NewInputState()
	if s.hover != nil {
		input.SetMousePos(s.hover.X, s.hover.Y)
	} else {
		input.SetMousePos(-1, -1)
	}

	gl.Viewport(0, 0, int32(s.width), int32(s.height))
	gl.ClearColor(0.12, 0.12, 0.14, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	displaySize := imkit.Vec2{X: float32(s.width), Y: float32(s.height)}
	ctx := ui.Begin(input, displaySize, 1.0/60.0)
	ctx.SetCursorPos(12, 12)
	s.draw(ctx)
	if err := ui.End(); err != nil {
		return err
	}

	pixels := make([]byte, s.width*s.height*4)
	gl.ReadPixels(0, 0, int32(s.width), int32(s.height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	// Flip vertically (OpenGL origin is bottom-left)
	rowLen := s.width * 4
	tmp := make([]byte, rowLen)
	for y := 0; y < s.height/2; y++ {
		top := y * rowLen
		bot := (s.height - 1 - y) * rowLen
		copy(tmp, pixels[top:top+rowLen])
		copy(pixels[top:top+rowLen], pixels[bot:bot+rowLen])
		copy(pixels[bot:bot+rowLen], tmp)
	}

	img := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	copy(img.Pix, pixels)

	path := filepath.Join(outDir, s.name+".jpg")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
}

// buildScreenshots returns the list of all widget screenshots to generate.
func buildScreenshots() []screenshot {
	quality := setting.New("Quality", "Overall rendering quality", "High", "Low", "Medium", "High", "Ultra")
	qualityIdx := imkit.FindIndex[string](quality)

	return []screenshot{
		{
			name: "dropdown", width: 400, height: 60,
			draw: func(ctx *imkit.Context) {
				imkit.Dropdown[string](ctx, quality, qualityIdx)
			},
		},
		{
			name: "dropdown_open", width: 400, height: 160,
			draw: func(ctx *imkit.Context) {
				ctx.States().SetOpen(ctx.GetID(quality.Name()), true)
				imkit.Dropdown[string](ctx, quality, qualityIdx)
			},
		},
		{
			name: "slider", width: 450, height: 90,
			draw: func(ctx *imkit.Context) {
				ctx.VStack(imkit.Gap(6))(func() {
					ctx.SliderFloat("Volume", "", 0.65, 0, 1)
					ctx.SliderInt("Field of view", "", 90, 60, 120)
				})
			},
		},
		{
			name: "text_field", width: 450, height: 60,
			draw: func(ctx *imkit.Context) {
				ctx.TextField("Player name", "", "Niko")
			},
		},
		{
			name: "toggle", width: 300, height: 90,
			draw: func(ctx *imkit.Context) {
				ctx.VStack(imkit.Gap(6))(func() {
					ctx.Toggle("VSync", "", true)
					ctx.Toggle("Motion blur", "", false)
				})
			},
		},
		{
			name: "button", width: 350, height: 60,
			draw: func(ctx *imkit.Context) {
				ctx.HStack(imkit.Gap(8))(func() {
					ctx.Button("Save", "")
					ctx.Button("Reset", "")
				})
			},
		},
		{
			name: "accordion", width: 450, height: 160,
			draw: func(ctx *imkit.Context) {
				ctx.States().SetOpen(ctx.GetID("Display"), true)
				ctx.VStack(imkit.Gap(6))(func() {
					ctx.Accordion("Display", "", func() {
						ctx.Toggle("Fullscreen", "", true)
						ctx.SliderFloat("Brightness", "", 1.2, 0.5, 2, imkit.WithFormat("%.1f"))
					})
					ctx.Accordion("Audio", "", func() {})
				})
			},
		},
		{
			name: "tooltip", width: 400, height: 120,
			hover: &imkit.Vec2{X: 60, Y: 96},
			draw: func(ctx *imkit.Context) {
				ctx.SetCursorPos(12, 80)
				ctx.Toggle("VSync", "Wait for vertical blank", true)
			},
		},
	}
}
