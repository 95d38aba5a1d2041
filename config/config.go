package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/lixenwraith/arena3d/parameter"
	"gopkg.in/yaml.v3"
)

const (
	SurfaceTerminal = "terminal"
	SurfaceWindow   = "window"
)

var (
	ErrInterval = errors.New("interval must be positive")
	ErrSurface  = errors.New("unknown surface")
	ErrWindow   = errors.New("window size must be positive")
	ErrAsset    = errors.New("mesh and texture paths must be set together")
)

// Duration wraps time.Duration for YAML strings such as "450ms"
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	if s == "" {
		return nil
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// Duration returns the time.Duration value
func (d Duration) Duration() time.Duration {
	return time.Duration(d)
}

// ModelAssets names the mesh JSON and texture image of one model
// Both empty selects the built-in asset
type ModelAssets struct {
	Mesh    string `yaml:"mesh"`
	Texture string `yaml:"texture"`
}

// Builtin reports whether the generated asset is used
func (m ModelAssets) Builtin() bool {
	return m.Mesh == "" && m.Texture == ""
}

// Assets groups the per-model asset paths
type Assets struct {
	Player     ModelAssets `yaml:"player"`
	Projectile ModelAssets `yaml:"projectile"`
	Enemy      ModelAssets `yaml:"enemy"`
}

// Window is the initial window surface size in pixels
type Window struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Config is the run configuration
type Config struct {
	Surface       string   `yaml:"surface"`
	FrameInterval Duration `yaml:"frame_interval"`
	SpawnInterval Duration `yaml:"spawn_interval"`
	Seed          uint64   `yaml:"seed"` // 0 seeds from the clock
	Window        Window   `yaml:"window"`
	Assets        Assets   `yaml:"assets"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Surface:       SurfaceTerminal,
		FrameInterval: Duration(parameter.FrameUpdateInterval),
		SpawnInterval: Duration(parameter.EnemySpawnInterval),
		Window: Window{
			Width:  parameter.WindowWidth,
			Height: parameter.WindowHeight,
		},
	}
}

// Load reads path over the defaults
// Empty path or a missing file yields the defaults; a malformed file is an error
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects values the game loop cannot run with
func (c *Config) Validate() error {
	switch c.Surface {
	case SurfaceTerminal, SurfaceWindow:
	default:
		return fmt.Errorf("%w: %q", ErrSurface, c.Surface)
	}
	if c.FrameInterval <= 0 {
		return fmt.Errorf("frame_interval %v: %w", c.FrameInterval.Duration(), ErrInterval)
	}
	if c.SpawnInterval <= 0 {
		return fmt.Errorf("spawn_interval %v: %w", c.SpawnInterval.Duration(), ErrInterval)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrWindow, c.Window.Width, c.Window.Height)
	}
	for name, m := range map[string]ModelAssets{
		"player":     c.Assets.Player,
		"projectile": c.Assets.Projectile,
		"enemy":      c.Assets.Enemy,
	} {
		if (m.Mesh == "") != (m.Texture == "") {
			return fmt.Errorf("assets.%s: %w", name, ErrAsset)
		}
	}
	return nil
}
