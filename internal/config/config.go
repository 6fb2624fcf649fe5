// Package config loads runtime settings from defaults, an optional config
// file and ARCHGLOBE_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const EnvPrefix = "ARCHGLOBE"

var (
	ErrInterval = errors.New("interval must be positive")
	ErrCamera   = errors.New("invalid camera bounds")
	ErrRadius   = errors.New("hit radius must be positive")
)

type ThemeConfig struct {
	Dark bool `mapstructure:"dark"`
}

type FrameConfig struct {
	Interval time.Duration `mapstructure:"interval"`
}

type ClickConfig struct {
	Window time.Duration `mapstructure:"window"`
}

type GlobeConfig struct {
	// Texture is a GeoJSON or image path; empty uses the built-in land mask.
	Texture string `mapstructure:"texture"`
}

type CatalogConfig struct {
	Builtin bool     `mapstructure:"builtin"`
	Paths   []string `mapstructure:"paths"`
}

type MarkersConfig struct {
	HitRadius float64 `mapstructure:"hitRadius"`
}

type CameraConfig struct {
	Distance    float64 `mapstructure:"distance"`
	Fov         float64 `mapstructure:"fov"`
	MinDistance float64 `mapstructure:"minDistance"`
	MaxDistance float64 `mapstructure:"maxDistance"`
	Damping     float64 `mapstructure:"damping"`
}

type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

type Config struct {
	Theme   ThemeConfig   `mapstructure:"theme"`
	Frame   FrameConfig   `mapstructure:"frame"`
	Click   ClickConfig   `mapstructure:"click"`
	Globe   GlobeConfig   `mapstructure:"globe"`
	Catalog CatalogConfig `mapstructure:"catalog"`
	Markers MarkersConfig `mapstructure:"markers"`
	Camera  CameraConfig  `mapstructure:"camera"`
	Log     LogConfig     `mapstructure:"log"`
}

// SetDefaults registers every key with its default value.
func SetDefaults() {
	viper.SetDefault("theme.dark", true)
	viper.SetDefault("frame.interval", 33*time.Millisecond)
	viper.SetDefault("click.window", 100*time.Millisecond)
	viper.SetDefault("globe.texture", "")
	viper.SetDefault("catalog.builtin", true)
	viper.SetDefault("catalog.paths", []string{})
	// 0.1 picks exactly the drawn marker spheres
	viper.SetDefault("markers.hitRadius", 0.2)

	viper.SetDefault("camera.distance", 15.0)
	viper.SetDefault("camera.fov", 45.0)
	viper.SetDefault("camera.minDistance", 7.0)
	viper.SetDefault("camera.maxDistance", 20.0)
	viper.SetDefault("camera.damping", 0.25)

	viper.SetDefault("log.file", "archglobe.log")
	viper.SetDefault("log.level", "info")
}

// Load reads path (if any) over the defaults, applies environment
// overrides and returns the validated result. The file format follows the
// extension.
func Load(path string) (Config, error) {
	SetDefaults()

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if path != "" {
		viper.SetConfigFile(path)
		if err := viper.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Default returns the defaults without touching files or the environment.
func Default() Config {
	return Config{
		Theme:   ThemeConfig{Dark: true},
		Frame:   FrameConfig{Interval: 33 * time.Millisecond},
		Click:   ClickConfig{Window: 100 * time.Millisecond},
		Catalog: CatalogConfig{Builtin: true},
		Markers: MarkersConfig{HitRadius: 0.2},
		Camera: CameraConfig{
			Distance:    15,
			Fov:         45,
			MinDistance: 7,
			MaxDistance: 20,
			Damping:     0.25,
		},
		Log: LogConfig{File: "archglobe.log", Level: "info"},
	}
}

func (c Config) Validate() error {
	if c.Frame.Interval <= 0 {
		return fmt.Errorf("frame.interval: %w", ErrInterval)
	}
	if c.Click.Window <= 0 {
		return fmt.Errorf("click.window: %w", ErrInterval)
	}
	if c.Markers.HitRadius <= 0 {
		return fmt.Errorf("markers.hitRadius: %w", ErrRadius)
	}
	cam := c.Camera
	switch {
	case cam.MinDistance <= 0 || cam.MaxDistance < cam.MinDistance:
		return fmt.Errorf("%w: distance range [%g, %g]", ErrCamera, cam.MinDistance, cam.MaxDistance)
	case cam.Fov <= 0 || cam.Fov >= 180:
		return fmt.Errorf("%w: fov %g", ErrCamera, cam.Fov)
	case cam.Damping < 0 || cam.Damping > 1:
		return fmt.Errorf("%w: damping %g", ErrCamera, cam.Damping)
	}
	return nil
}
