package encode

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/riverspiral/pkg/errors"
)

// Config holds the constants of the data-to-visual mappings.
type Config struct {
	// ColdColor and WarmColor are the stroke colours at the lowest and
	// highest average temperature in the dataset.
	ColdColor string `toml:"cold_color" json:"cold_color"`
	WarmColor string `toml:"warm_color" json:"warm_color"`

	MinStroke float64 `toml:"min_stroke" json:"min_stroke"`
	MaxStroke float64 `toml:"max_stroke" json:"max_stroke"`

	// Length domain mapped onto the step range. Lengths outside the domain
	// are clamped.
	MinLength float64 `toml:"min_length" json:"min_length"`
	MaxLength float64 `toml:"max_length" json:"max_length"`
	MinSteps  float64 `toml:"min_steps" json:"min_steps"`
	MaxSteps  float64 `toml:"max_steps" json:"max_steps"`

	AngleStep float64 `toml:"angle_step" json:"angle_step"` // radians per step
}

// DefaultConfig returns the poster encoding: blue fading from (0,127,255) to
// (0,127,150) with temperature, strokes of 1 to 3.5 px, and 100 to 1000
// spiral steps over river lengths of 0 to 10000 km.
func DefaultConfig() Config {
	return Config{
		ColdColor: "#007fff",
		WarmColor: "#007f96",
		MinStroke: 1,
		MaxStroke: 3.5,
		MinLength: 0,
		MaxLength: 10000,
		MinSteps:  100,
		MaxSteps:  1000,
		AngleStep: 0.1,
	}
}

// Validate checks colours, domains and ranges.
func (c Config) Validate() error {
	if _, err := colorful.Hex(c.ColdColor); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "cold_color %q", c.ColdColor)
	}
	if _, err := colorful.Hex(c.WarmColor); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "warm_color %q", c.WarmColor)
	}
	for _, chk := range []struct {
		field string
		v     float64
	}{
		{"min_stroke", c.MinStroke},
		{"max_stroke", c.MaxStroke},
		{"min_steps", c.MinSteps},
		{"max_steps", c.MaxSteps},
		{"angle_step", c.AngleStep},
	} {
		if err := errors.ValidatePositive(chk.field, chk.v); err != nil {
			return err
		}
	}
	if err := errors.ValidateSpacing("min_length", c.MinLength); err != nil {
		return err
	}
	if !(c.MinLength < c.MaxLength) {
		return errors.New(errors.ErrCodeInvalidConfig,
			"length domain [%v, %v] is empty", c.MinLength, c.MaxLength)
	}
	if c.MaxStroke < c.MinStroke {
		return errors.New(errors.ErrCodeInvalidConfig,
			"max_stroke %v is below min_stroke %v", c.MaxStroke, c.MinStroke)
	}
	if c.MaxSteps < c.MinSteps {
		return errors.New(errors.ErrCodeInvalidConfig,
			"max_steps %v is below min_steps %v", c.MaxSteps, c.MinSteps)
	}
	return nil
}
