package theme

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/motion/pkg/animation"
	"github.com/go-drift/motion/pkg/graphics"
)

// Config represents the optional motion.yaml configuration.
type Config struct {
	Animation AnimationConfig `yaml:"animation"`
	Colors    ColorsConfig    `yaml:"colors"`
	Engine    EngineConfig    `yaml:"engine"`
}

// AnimationConfig contains feedback timing settings.
type AnimationConfig struct {
	Effect     string   `yaml:"effect,omitempty"`
	ForwardMS  *int     `yaml:"forward_ms,omitempty"`
	BackwardMS *int     `yaml:"backward_ms,omitempty"`
	Multiplier *float64 `yaml:"multiplier,omitempty"`
}

// ColorsConfig contains the interaction colors. Values are SVG color names
// or #RRGGBB / #AARRGGBB hex strings.
type ColorsConfig struct {
	Base    string `yaml:"base,omitempty"`
	Hovered string `yaml:"hovered,omitempty"`
	Pressed string `yaml:"pressed,omitempty"`
}

// EngineConfig contains engine settings.
type EngineConfig struct {
	Version string `yaml:"version,omitempty"`
}

// LoadOptional reads motion.yaml if present. A missing file is not an
// error; it yields an empty config that resolves to the default theme.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, "motion.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read motion.yaml: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse motion.yaml: %w", err)
	}

	return &cfg, nil
}

// Resolve validates the config and merges it over the default feedback
// theme. Unset fields keep their defaults.
func (c *Config) Resolve() (FeedbackThemeData, error) {
	data := DefaultFeedbackTheme()

	if c.Engine.Version != "" && !semver.IsValid(c.Engine.Version) {
		return data, fmt.Errorf("invalid engine version %q: must be a semantic version like v0.1.0", c.Engine.Version)
	}

	if c.Animation.Effect != "" {
		effect, err := parseEffect(c.Animation.Effect)
		if err != nil {
			return data, err
		}
		data.Effect = effect
	}
	if c.Animation.ForwardMS != nil {
		if *c.Animation.ForwardMS < 0 {
			return data, fmt.Errorf("invalid forward_ms %d: must not be negative", *c.Animation.ForwardMS)
		}
		data.ForwardDuration = time.Duration(*c.Animation.ForwardMS) * time.Millisecond
	}
	if c.Animation.BackwardMS != nil {
		if *c.Animation.BackwardMS < 0 {
			return data, fmt.Errorf("invalid backward_ms %d: must not be negative", *c.Animation.BackwardMS)
		}
		data.BackwardDuration = time.Duration(*c.Animation.BackwardMS) * time.Millisecond
	}
	if c.Animation.Multiplier != nil {
		if *c.Animation.Multiplier < 0 {
			return data, fmt.Errorf("invalid multiplier %g: must not be negative", *c.Animation.Multiplier)
		}
		data.Multiplier = *c.Animation.Multiplier
	}

	if err := assignColor(&data.Base, c.Colors.Base, "base"); err != nil {
		return data, err
	}
	if err := assignColor(&data.Hovered, c.Colors.Hovered, "hovered"); err != nil {
		return data, err
	}
	if err := assignColor(&data.Pressed, c.Colors.Pressed, "pressed"); err != nil {
		return data, err
	}

	return data, nil
}

// LoadFeedbackTheme loads motion.yaml from dir (if present) and resolves it.
func LoadFeedbackTheme(dir string) (FeedbackThemeData, error) {
	cfg, err := LoadOptional(dir)
	if err != nil {
		return DefaultFeedbackTheme(), err
	}
	return cfg.Resolve()
}

func parseEffect(name string) (animation.Effect, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "linear":
		return animation.EffectLinear, nil
	case "ease-out", "easeout":
		return animation.EffectEaseOut, nil
	case "none":
		return animation.EffectNone, nil
	default:
		return animation.EffectLinear, fmt.Errorf("unknown animation effect %q: want linear, ease-out, or none", name)
	}
}

func assignColor(dst *graphics.Color, value, field string) error {
	if value == "" {
		return nil
	}
	c, err := parseColor(value)
	if err != nil {
		return fmt.Errorf("invalid %s color: %w", field, err)
	}
	*dst = c
	return nil
}

// parseColor accepts an SVG 1.1 color name or a #RRGGBB / #AARRGGBB hex string.
func parseColor(value string) (graphics.Color, error) {
	value = strings.TrimSpace(value)
	if hex, ok := strings.CutPrefix(value, "#"); ok {
		switch len(hex) {
		case 6:
			n, err := strconv.ParseUint(hex, 16, 32)
			if err != nil {
				return 0, fmt.Errorf("malformed hex color %q", value)
			}
			return graphics.Color(0xFF000000 | uint32(n)), nil
		case 8:
			n, err := strconv.ParseUint(hex, 16, 32)
			if err != nil {
				return 0, fmt.Errorf("malformed hex color %q", value)
			}
			return graphics.Color(uint32(n)), nil
		default:
			return 0, fmt.Errorf("malformed hex color %q: want #RRGGBB or #AARRGGBB", value)
		}
	}
	if c, ok := graphics.ColorByName(value); ok {
		return c, nil
	}
	return 0, fmt.Errorf("unknown color name %q", value)
}
