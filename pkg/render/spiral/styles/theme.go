// Package styles holds the visual theme of the river poster and the text
// measurement used to wrap river names inside their cells.
package styles

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/riverspiral/pkg/errors"
)

// Theme defines colours and type sizes shared by all sinks.
type Theme struct {
	Background string  `toml:"background" json:"background"`
	Text       string  `toml:"text" json:"text"`
	FontFamily string  `toml:"font_family" json:"font_family"`
	TitleSize  float64 `toml:"title_size" json:"title_size"`
	LabelSize  float64 `toml:"label_size" json:"label_size"`
	NameSize   float64 `toml:"name_size" json:"name_size"`
	LineHeight float64 `toml:"line_height" json:"line_height"` // multiple of the font size
}

// DefaultTheme is cream paper with black Arial text.
func DefaultTheme() Theme {
	return Theme{
		Background: "#fffdf0",
		Text:       "#000000",
		FontFamily: "Arial, Helvetica, sans-serif",
		TitleSize:  32,
		LabelSize:  16,
		NameSize:   10,
		LineHeight: 1.2,
	}
}

// Validate checks colours and sizes.
func (t Theme) Validate() error {
	if _, err := colorful.Hex(t.Background); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "theme background %q", t.Background)
	}
	if _, err := colorful.Hex(t.Text); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "theme text %q", t.Text)
	}
	for _, chk := range []struct {
		field string
		v     float64
	}{
		{"title_size", t.TitleSize},
		{"label_size", t.LabelSize},
		{"name_size", t.NameSize},
		{"line_height", t.LineHeight},
	} {
		if err := errors.ValidatePositive(chk.field, chk.v); err != nil {
			return err
		}
	}
	return nil
}

// BackgroundColor returns the parsed background colour, or white when the
// theme has not been validated.
func (t Theme) BackgroundColor() colorful.Color {
	return parseOr(t.Background, colorful.Color{R: 1, G: 1, B: 1})
}

// TextColor returns the parsed text colour, or black when the theme has not
// been validated.
func (t Theme) TextColor() colorful.Color { return parseOr(t.Text, colorful.Color{}) }

// NameLineHeight is the distance between wrapped river name lines.
func (t Theme) NameLineHeight() float64 { return t.NameSize * t.LineHeight }

func parseOr(hex string, fallback colorful.Color) colorful.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return fallback
	}
	return c
}
