// Package config holds the settings shared by every output mode.
package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"sankey/internal/layout"
	"sankey/internal/model"
	"sankey/internal/render"
)

// Config is the tool's configuration. Keys missing from a file keep their
// defaults. SANKEY_* environment variables override the file and
// command-line flags override both.
type Config struct {
	Width    int          `yaml:"width" validate:"gte=200"`
	Height   int          `yaml:"height" validate:"gte=140"`
	Curve    render.Curve `yaml:"curve"`
	FontSize float64      `yaml:"font_size" validate:"gt=0"`
	Output   string       `yaml:"output"`
	Addr     string       `yaml:"addr" validate:"required"`

	// Palette lists fallback colours as "#rrggbb". Empty means the built-in
	// 22-colour palette.
	Palette []string `yaml:"palette" validate:"omitempty,dive,hexcolor"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report fields by their YAML keys.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("yaml"), ",")
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return v
}

// Default returns the reference configuration.
func Default() Config {
	return Config{
		Width:    layout.ReferenceWidth,
		Height:   layout.ReferenceHeight,
		Curve:    render.Sine,
		FontSize: 14,
		Addr:     ":8080",
	}
}

// Load reads a YAML file over the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks that every value can be used for rendering.
func (c Config) Validate() error {
	var errs []error
	if err := validate.Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return fmt.Errorf("%w: %w", model.ErrInvalidConfig, err)
		}
		for _, fe := range fieldErrs {
			errs = append(errs, fmt.Errorf("%s: %s (got %v)", fe.Field(), fieldMessage(fe), fe.Value()))
		}
	}
	// hexcolor admits short and alpha forms the palette cannot use.
	if len(errs) == 0 {
		if _, err := c.ColorPalette(); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", model.ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "gte":
		return "must be at least " + fe.Param()
	case "gt":
		return "must be greater than " + fe.Param()
	case "required":
		return "is required"
	case "hexcolor":
		return "must be a colour like #rrggbb"
	default:
		return "failed " + fe.Tag()
	}
}

// Environment variables read by ApplyEnv.
const (
	EnvWidth    = "SANKEY_WIDTH"
	EnvHeight   = "SANKEY_HEIGHT"
	EnvCurve    = "SANKEY_CURVE"
	EnvFontSize = "SANKEY_FONT_SIZE"
	EnvOutput   = "SANKEY_OUTPUT"
	EnvAddr     = "SANKEY_ADDR"
)

// ApplyEnv overrides cfg with SANKEY_* environment variables. Variables
// from dotenv are loaded first when that file exists; variables already set
// in the environment win over the file.
func ApplyEnv(cfg *Config, dotenv string) error {
	if dotenv != "" {
		if err := godotenv.Load(dotenv); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("load %s: %w", dotenv, err)
		}
	}

	var errs []error
	envInt := func(key string, dst *int) {
		if v := os.Getenv(key); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %q is not an integer", key, v))
				return
			}
			*dst = n
		}
	}
	envInt(EnvWidth, &cfg.Width)
	envInt(EnvHeight, &cfg.Height)

	if v := os.Getenv(EnvFontSize); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %q is not a number", EnvFontSize, v))
		} else {
			cfg.FontSize = f
		}
	}
	if v := os.Getenv(EnvCurve); v != "" {
		c, err := render.ParseCurve(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", EnvCurve, err))
		} else {
			cfg.Curve = c
		}
	}
	if v := os.Getenv(EnvOutput); v != "" {
		cfg.Output = v
	}
	if v := os.Getenv(EnvAddr); v != "" {
		cfg.Addr = v
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", model.ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

// ColorPalette parses Palette. It returns the default palette when none is
// configured.
func (c Config) ColorPalette() (model.Palette, error) {
	if len(c.Palette) == 0 {
		return model.DefaultPalette(), nil
	}
	p := make(model.Palette, 0, len(c.Palette))
	for _, s := range c.Palette {
		col, err := model.ParseHex(s)
		if err != nil {
			return nil, err
		}
		p = append(p, col)
	}
	return p, nil
}

// Geometry returns the canvas geometry for the configured size.
func (c Config) Geometry() layout.Geometry {
	return layout.ForCanvas(c.Width, c.Height)
}
