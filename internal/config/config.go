// Package config loads the application configuration: deck location,
// gesture and animation constants, and per-category palette overrides.
// The historical source of these constants disagreed with itself across
// iterations; the defaults here are the canonical set, and everything is
// data rather than code so decks can retune without a rebuild.
package config

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/talvid/swipedeck/internal/nav"
	"github.com/talvid/swipedeck/internal/palette"
	"github.com/talvid/swipedeck/internal/slide"
	swipederrors "github.com/talvid/swipedeck/pkg/errors"
)

// Config is the root configuration document.
type Config struct {
	Deck      string                   `yaml:"deck"`
	Layout    string                   `yaml:"layout" validate:"omitempty,oneof=auto compact extended"`
	Log       LogConfig                `yaml:"log"`
	Gesture   GestureConfig            `yaml:"gesture"`
	Animation AnimationConfig          `yaml:"animation"`
	Card      CardConfig               `yaml:"card"`
	Palettes  map[string]PaletteConfig `yaml:"palettes" validate:"omitempty,dive"`
}

// LogConfig controls the file-backed logger.
type LogConfig struct {
	Level string `yaml:"level" validate:"omitempty,oneof=trace debug info warn error"`
	File  string `yaml:"file"`
}

// GestureConfig holds pointer gesture constants.
type GestureConfig struct {
	// ThresholdPx is the release offset beyond which a drag commits.
	ThresholdPx float64 `yaml:"threshold_px" validate:"gte=20,lte=200"`
	// EdgeTapZonePx is the width of the tap-to-navigate zones at the
	// viewport edges.
	EdgeTapZonePx float64 `yaml:"edge_tap_zone_px" validate:"gte=0,lte=400"`
}

// AnimationConfig holds transition timing and pose constants.
type AnimationConfig struct {
	ScaleFloor       float64 `yaml:"scale_floor" validate:"gte=0.5,lte=1"`
	MaxAngleDeg      float64 `yaml:"max_angle_deg" validate:"gte=0,lte=45"`
	CommitMsCompact  int     `yaml:"commit_ms_compact" validate:"gte=50,lte=2000"`
	CommitMsExtended int     `yaml:"commit_ms_extended" validate:"gte=50,lte=2000"`
	SnapBackMs       int     `yaml:"snap_back_ms" validate:"gte=50,lte=2000"`
	FPS              int     `yaml:"fps" validate:"gte=15,lte=120"`
}

// CardConfig holds card sizing used for layout and text fitting.
type CardConfig struct {
	WidthPx    float64 `yaml:"width_px" validate:"gte=100,lte=2000"`
	FontSizePx float64 `yaml:"font_size_px" validate:"gte=8,lte=64"`
	FontFamily string  `yaml:"font_family"`
	BufferPx   float64 `yaml:"buffer_px" validate:"gte=0,lte=100"`
}

// PaletteConfig overrides one category's base colors.
type PaletteConfig struct {
	Strip string `yaml:"strip" validate:"hexcolor"`
	From  string `yaml:"from" validate:"hexcolor"`
	To    string `yaml:"to" validate:"hexcolor"`
}

// Default returns the canonical configuration.
func Default() *Config {
	return &Config{
		Layout: "auto",
		Log:    LogConfig{Level: "info"},
		Gesture: GestureConfig{
			ThresholdPx:   60,
			EdgeTapZonePx: 80,
		},
		Animation: AnimationConfig{
			ScaleFloor:       0.9,
			MaxAngleDeg:      5,
			CommitMsCompact:  300,
			CommitMsExtended: 400,
			SnapBackMs:       250,
			FPS:              60,
		},
		Card: CardConfig{
			WidthPx:    300,
			FontSizePx: 16,
			FontFamily: "Inter",
			BufferPx:   8,
		},
	}
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	yamlLineRegex = regexp.MustCompile(`line (\d+)`)
)

// validatorInstance configures and returns the shared validator used by
// the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		validateInst = validator.New()
	})
	return validateInst
}

// Load reads a configuration file, layers it over the defaults, and
// validates the result. An empty path returns the defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, swipederrors.NewParseError(path, 0, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, swipederrors.NewParseError(path, extractLine(err), err)
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks a configuration against the schema rules.
func Validate(cfg *Config) error {
	if err := validatorInstance().Struct(cfg); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
			first := errs[0]
			return swipederrors.NewValidationError(first.Namespace(), fmt.Sprintf("failed %q rule", first.Tag()), err)
		}
		return swipederrors.NewValidationError("", err.Error(), err)
	}
	return nil
}

// NavConfig derives the navigation machine constants for a layout. The
// compact (touch-sized) layout uses the shorter commit duration.
func (c *Config) NavConfig(layout slide.Layout) nav.Config {
	commitMs := c.Animation.CommitMsExtended
	if layout == slide.LayoutCompact {
		commitMs = c.Animation.CommitMsCompact
	}
	return nav.Config{
		ThresholdPx:      c.Gesture.ThresholdPx,
		CommitDuration:   time.Duration(commitMs) * time.Millisecond,
		SnapBackDuration: time.Duration(c.Animation.SnapBackMs) * time.Millisecond,
	}
}

// SlideConfig derives the transform calculator constants.
func (c *Config) SlideConfig() slide.Config {
	return slide.Config{
		ScaleFloor:  c.Animation.ScaleFloor,
		MaxAngleDeg: c.Animation.MaxAngleDeg,
	}
}

// PaletteOverrides converts the configured palette overrides into the
// resolver's base type.
func (c *Config) PaletteOverrides() map[string]palette.Base {
	if len(c.Palettes) == 0 {
		return nil
	}
	out := make(map[string]palette.Base, len(c.Palettes))
	for category, p := range c.Palettes {
		out[category] = palette.Base{Strip: p.Strip, From: p.From, To: p.To}
	}
	return out
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}
	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}
	line, scanErr := strconv.Atoi(matches[1])
	if scanErr != nil {
		return 0
	}
	return line
}
