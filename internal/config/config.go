// Package config loads and saves the example application's settings.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Window   WindowConfig
	UI       UIConfig
	Settings SettingsConfig
}

// WindowConfig holds the window geometry.
type WindowConfig struct {
	Width  int
	Height int
	Title  string
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Theme   string
	Verbose bool
}

// SettingsConfig holds the values edited through the widgets.
type SettingsConfig struct {
	Quality    string
	Volume     float32
	FOV        int
	VSync      bool    `mapstructure:"vsync"`
	PlayerName string  `mapstructure:"player_name"`
	Brightness float32 `mapstructure:"brightness"`
}

// Path returns the config file location: $IMKIT_CONFIG, else
// ~/.config/imkit/config.toml.
func Path() string {
	if p := os.Getenv("IMKIT_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "imkit", "config.toml")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("window.width", 1280)
	v.SetDefault("window.height", 720)
	v.SetDefault("window.title", "imkit example")
	v.SetDefault("ui.theme", "default")
	v.SetDefault("ui.verbose", false)
	v.SetDefault("settings.quality", "High")
	v.SetDefault("settings.volume", 0.8)
	v.SetDefault("settings.fov", 90)
	v.SetDefault("settings.vsync", true)
	v.SetDefault("settings.player_name", "Player")
	v.SetDefault("settings.brightness", 1.0)
}

// Load reads configuration from path (Path() if empty) and env. Env var
// overrides use prefix IMKIT_, e.g. IMKIT_UI_THEME. A missing file is not an
// error.
func Load(path string) (Config, error) {
	if path == "" {
		path = Path()
	}

	v := viper.New()
	setDefaults(v)
	v.SetConfigType("toml")
	v.SetConfigFile(path)

	v.SetEnvPrefix("IMKIT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if _, err := os.Stat(path); err == nil {
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("stat config: %w", err)
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Save writes cfg to path (Path() if empty), creating the directory if needed.
func Save(path string, cfg Config) error {
	if path == "" {
		path = Path()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("window.width", cfg.Window.Width)
	v.Set("window.height", cfg.Window.Height)
	v.Set("window.title", cfg.Window.Title)
	v.Set("ui.theme", cfg.UI.Theme)
	v.Set("ui.verbose", cfg.UI.Verbose)
	v.Set("settings.quality", cfg.Settings.Quality)
	v.Set("settings.volume", cfg.Settings.Volume)
	v.Set("settings.fov", cfg.Settings.FOV)
	v.Set("settings.vsync", cfg.Settings.VSync)
	v.Set("settings.player_name", cfg.Settings.PlayerName)
	v.Set("settings.brightness", cfg.Settings.Brightness)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
