package imkit

import (
	"errors"
	"fmt"
)

// ErrStylesNotInitialized is the panic value raised when a widget is drawn
// before InitializeStyles has run on the context's registry.
var ErrStylesNotInitialized = errors.New("imkit: styles not initialized")

// Names of the styles built by InitializeStyles.
const (
	StyleButton       = "button"
	StyleDropdown     = "dropdown"
	StyleDropdownItem = "dropdown-item"
	StyleToggle       = "toggle"
	StyleAccordion    = "accordion"
	StyleTooltip      = "tooltip"
	StyleBox          = "box"
)

// Theme is the base palette and metrics every named style is derived from.
type Theme struct {
	Name string

	TextColor         uint32
	TextDisabledColor uint32

	PanelColor       uint32
	PanelBorderColor uint32

	ButtonColor        uint32
	ButtonHoveredColor uint32
	ButtonActiveColor  uint32

	InputBgColor        uint32
	InputFocusedBgColor uint32
	InputBorderColor    uint32
	SelectedBgColor     uint32

	SliderTrackColor  uint32
	SliderFillColor   uint32
	SliderGrabColor   uint32
	SliderGrabHovered uint32
	SliderGrabActive  uint32

	ToggleOffColor uint32
	ToggleOnColor  uint32

	FontScale     float32
	ItemSpacing   float32
	ButtonPadding float32
	InputPadding  float32
	BoxPadding    float32
}

// DefaultTheme returns a neutral dark theme.
func DefaultTheme() Theme {
	return Theme{
		Name:              "default",
		TextColor:         ColorWhite,
		TextDisabledColor: ColorGray,

		PanelColor:       RGBA(20, 20, 20, 230),
		PanelBorderColor: RGBA(80, 80, 80, 255),

		ButtonColor:        RGBA(50, 50, 50, 255),
		ButtonHoveredColor: RGBA(70, 70, 70, 255),
		ButtonActiveColor:  RGBA(90, 90, 90, 255),

		InputBgColor:        RGBA(30, 30, 30, 255),
		InputFocusedBgColor: RGBA(40, 40, 50, 255),
		InputBorderColor:    RGBA(100, 100, 100, 255),
		SelectedBgColor:     RGBA(50, 100, 150, 255),

		SliderTrackColor:  RGBA(40, 40, 40, 255),
		SliderFillColor:   RGBA(50, 100, 150, 255),
		SliderGrabColor:   RGBA(100, 100, 100, 255),
		SliderGrabHovered: RGBA(120, 120, 120, 255),
		SliderGrabActive:  RGBA(140, 140, 140, 255),

		ToggleOffColor: ColorGray,
		ToggleOnColor:  ColorRed,

		FontScale:     1.0,
		ItemSpacing:   4,
		ButtonPadding: 6,
		InputPadding:  4,
		BoxPadding:    6,
	}
}

// GTATheme returns a dark theme with cyan/yellow accents.
func GTATheme() Theme {
	t := DefaultTheme()
	t.Name = "gta"
	t.PanelColor = RGBA(0, 0, 0, 220)
	t.PanelBorderColor = RGBA(0, 100, 150, 255)
	t.ButtonColor = RGBA(40, 40, 40, 255)
	t.ButtonHoveredColor = RGBA(60, 80, 100, 255)
	t.ButtonActiveColor = RGBA(0, 150, 200, 255)
	t.InputBorderColor = RGBA(0, 150, 200, 255)
	t.SelectedBgColor = RGBA(0, 120, 180, 255)
	t.SliderFillColor = RGBA(0, 120, 180, 255)
	t.SliderGrabColor = RGBA(0, 150, 200, 255)
	t.SliderGrabHovered = RGBA(0, 180, 230, 255)
	t.SliderGrabActive = RGBA(0, 200, 255, 255)
	t.ItemSpacing = 6
	return t
}

// LightTheme returns a light theme.
func LightTheme() Theme {
	t := DefaultTheme()
	t.Name = "light"
	t.TextColor = RGBA(20, 20, 20, 255)
	t.TextDisabledColor = RGBA(150, 150, 150, 255)
	t.PanelColor = RGBA(245, 245, 245, 250)
	t.PanelBorderColor = RGBA(200, 200, 200, 255)
	t.ButtonColor = RGBA(220, 220, 220, 255)
	t.ButtonHoveredColor = RGBA(200, 200, 200, 255)
	t.ButtonActiveColor = RGBA(180, 180, 180, 255)
	t.InputBgColor = ColorWhite
	t.InputFocusedBgColor = ColorWhite
	t.InputBorderColor = RGBA(150, 150, 150, 255)
	t.SelectedBgColor = RGBA(0, 120, 215, 255)
	t.SliderTrackColor = RGBA(220, 220, 220, 255)
	t.SliderFillColor = RGBA(0, 120, 215, 255)
	t.SliderGrabColor = RGBA(180, 180, 180, 255)
	t.SliderGrabHovered = RGBA(160, 160, 160, 255)
	t.SliderGrabActive = RGBA(140, 140, 140, 255)
	return t
}

// ThemeByName returns a built-in theme.
func ThemeByName(name string) (Theme, bool) {
	switch name {
	case "", "default":
		return DefaultTheme(), true
	case "gta":
		return GTATheme(), true
	case "light":
		return LightTheme(), true
	}
	return Theme{}, false
}

// TextAlign controls horizontal text placement inside a styled button.
type TextAlign uint8

const (
	AlignLeft TextAlign = iota
	AlignCenter
)

// Background is one visual state of a styled control. A non-zero Texture is
// stretched over the control; otherwise Color is filled.
type Background struct {
	Color   uint32
	Texture uint32
}

// WidgetStyle is an immutable, named visual descriptor shared by every widget
// of one kind. Build it through InitializeStyles; never modify it.
type WidgetStyle struct {
	Name        string
	Align       TextAlign
	FixedHeight float32 // 0 = derived from text height and padding
	FontScale   float32
	Bold        bool
	TextColor   uint32

	Normal, Hover, Active       Background
	OnNormal, OnHover, OnActive Background
}

// background picks the visual state for a control.
func (s *WidgetStyle) background(on, hovered, pressed bool) Background {
	switch {
	case on && pressed:
		return s.OnActive
	case on && hovered:
		return s.OnHover
	case on:
		return s.OnNormal
	case pressed:
		return s.Active
	case hovered:
		return s.Hover
	default:
		return s.Normal
	}
}

// StyleRegistry holds the session's named styles and the swatch textures
// generated for them.
type StyleRegistry struct {
	theme       Theme
	styles      map[string]*WidgetStyle
	swatches    []uint32
	uploader    TextureUploader
	initialized bool
}

// NewStyleRegistry creates an uninitialized registry for theme.
func NewStyleRegistry(theme Theme) *StyleRegistry {
	return &StyleRegistry{theme: theme}
}

// Theme returns the registry's base theme.
func (r *StyleRegistry) Theme() Theme {
	return r.theme
}

// Initialized reports whether InitializeStyles has completed at least once.
func (r *StyleRegistry) Initialized() bool {
	return r.initialized
}

// InitializeStyles (re)builds every named style from the theme.
//
// It is not guarded: each successful call releases the swatch textures of
// the previous build. A failed call releases whatever it uploaded and leaves
// the previous build in place. uploader may be nil, in which case styles use
// flat colors only.
func (r *StyleRegistry) InitializeStyles(uploader TextureUploader) error {
	t := r.theme
	b := &swatchBuild{uploader: uploader}
	flat := func(c uint32) Background { return Background{Color: c} }
	buttonStates := func(s *WidgetStyle) {
		s.Normal = flat(t.ButtonColor)
		s.Hover = flat(t.ButtonHoveredColor)
		s.Active = flat(t.ButtonActiveColor)
		s.OnNormal, s.OnHover, s.OnActive = s.Normal, s.Hover, s.Active
	}

	button := &WidgetStyle{Name: StyleButton, Align: AlignCenter, FontScale: t.FontScale, TextColor: t.TextColor}
	buttonStates(button)

	dropdown := &WidgetStyle{Name: StyleDropdown, Align: AlignLeft, FixedHeight: 25, FontScale: t.FontScale, TextColor: t.TextColor}
	buttonStates(dropdown)

	item := &WidgetStyle{Name: StyleDropdownItem, Align: AlignLeft, FixedHeight: 25, FontScale: t.FontScale, TextColor: t.TextColor}
	buttonStates(item)
	item.Normal = flat(t.InputBgColor)
	item.Hover = flat(t.SelectedBgColor)
	item.OnNormal = flat(t.ButtonActiveColor)
	item.OnHover = flat(t.SelectedBgColor)

	accordion := &WidgetStyle{Name: StyleAccordion, Align: AlignLeft, FixedHeight: 30, FontScale: t.FontScale * 16 / 13, Bold: true, TextColor: t.TextColor}
	buttonStates(accordion)

	toggle := &WidgetStyle{Name: StyleToggle, Align: AlignCenter, FixedHeight: 25, FontScale: t.FontScale * 14 / 13, Bold: true, TextColor: ColorWhite}
	off, err := b.swatch(t.ToggleOffColor)
	if err != nil {
		b.release()
		return fmt.Errorf("toggle off swatch: %w", err)
	}
	on, err := b.swatch(t.ToggleOnColor)
	if err != nil {
		b.release()
		return fmt.Errorf("toggle on swatch: %w", err)
	}
	toggle.Normal, toggle.Hover, toggle.Active = off[0], off[1], off[2]
	toggle.OnNormal, toggle.OnHover, toggle.OnActive = on[0], on[1], on[2]

	tooltip := &WidgetStyle{Name: StyleTooltip, Align: AlignLeft, FontScale: t.FontScale, TextColor: t.TextColor}
	tooltip.Normal = flat(t.PanelColor)

	box := &WidgetStyle{Name: StyleBox, FontScale: t.FontScale, TextColor: t.TextColor}
	box.Normal = flat(t.PanelColor)

	(&swatchBuild{uploader: r.uploader, textures: r.swatches}).release()
	r.uploader = uploader
	r.swatches = b.textures
	r.styles = map[string]*WidgetStyle{
		StyleButton:       button,
		StyleDropdown:     dropdown,
		StyleDropdownItem: item,
		StyleToggle:       toggle,
		StyleAccordion:    accordion,
		StyleTooltip:      tooltip,
		StyleBox:          box,
	}
	r.initialized = true
	logger.Debug("styles initialized", "theme", t.Name, "swatches", len(r.swatches))
	return nil
}

// swatchBuild tracks the textures uploaded for one style build.
type swatchBuild struct {
	uploader TextureUploader
	textures []uint32
}

// swatch uploads one solid texture per button state (normal, hover, active).
func (b *swatchBuild) swatch(color uint32) ([3]Background, error) {
	var out [3]Background
	for i := range out {
		out[i] = Background{Color: color}
		if b.uploader == nil {
			continue
		}
		tex, err := b.uploader.UploadTexture(NewSwatch(color))
		if err != nil {
			return out, err
		}
		b.textures = append(b.textures, tex)
		out[i].Texture = tex
	}
	return out, nil
}

func (b *swatchBuild) release() {
	if b.uploader != nil {
		for _, tex := range b.textures {
			b.uploader.ReleaseTexture(tex)
		}
	}
	b.textures = nil
}

// Style returns a named style.
func (r *StyleRegistry) Style(name string) (*WidgetStyle, bool) {
	s, ok := r.styles[name]
	return s, ok
}

// mustStyle returns a named style, falling back to the button style for
// unknown names. It panics with ErrStylesNotInitialized if the registry was
// never initialized.
func (r *StyleRegistry) mustStyle(name string) *WidgetStyle {
	if r == nil || !r.initialized {
		panic(ErrStylesNotInitialized)
	}
	if s, ok := r.styles[name]; ok {
		return s
	}
	return r.styles[StyleButton]
}
