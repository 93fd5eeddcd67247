// Package encode maps river attributes to drawing parameters.
//
// An [Encoder] is built once per dataset from its global [dataset.Ranges] and
// then applied to every grid placement:
//
//	enc, err := encode.New(ranges, encode.DefaultConfig())
//	for _, p := range l.Cells {
//	    cmd := enc.Encode(p, l.Config.SpiralPadding)
//	    for pt := range cmd.Spiral.Points() {
//	        // draw
//	    }
//	}
//
// Temperature drives the stroke colour, discharge the stroke width and
// length the number of spiral steps. When every record shares the same
// temperature or discharge the mapping falls back to its low end.
package encode

import (
	"github.com/aclements/go-moremath/scale"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/riverspiral/pkg/dataset"
	"github.com/matzehuels/riverspiral/pkg/render/spiral/layout"
)

// DrawCommand is everything a sink needs to draw one river.
type DrawCommand struct {
	Name        string
	Center      Point
	Spiral      Spiral
	Color       colorful.Color
	StrokeWidth float64
}

// Encoder applies the visual mappings for one dataset. It is a value type
// with no side effects.
type Encoder struct {
	Ranges dataset.Ranges
	Config Config

	cold, warm colorful.Color
}

// New validates cfg and returns an encoder for the given ranges.
func New(ranges dataset.Ranges, cfg Config) (Encoder, error) {
	if err := cfg.Validate(); err != nil {
		return Encoder{}, err
	}
	cold, _ := colorful.Hex(cfg.ColdColor)
	warm, _ := colorful.Hex(cfg.WarmColor)
	return Encoder{Ranges: ranges, Config: cfg, cold: cold, warm: warm}, nil
}

// TempFraction returns avgTemp's position in the dataset's temperature range
// in [0, 1]. A degenerate range returns 0.
func (e Encoder) TempFraction(avgTemp float64) float64 {
	if e.Ranges.DegenerateTemp() {
		return 0
	}
	return scale.Linear{Min: e.Ranges.MinTemp, Max: e.Ranges.MaxTemp, Clamp: true}.Map(avgTemp)
}

// DischargeFraction returns discharge's position in the dataset's discharge
// range in [0, 1]. A degenerate range returns 0.
func (e Encoder) DischargeFraction(discharge float64) float64 {
	if e.Ranges.DegenerateDischarge() {
		return 0
	}
	return scale.Linear{Min: e.Ranges.MinDischarge, Max: e.Ranges.MaxDischarge, Clamp: true}.Map(discharge)
}

// Color returns the stroke colour for an average temperature.
func (e Encoder) Color(avgTemp float64) colorful.Color {
	return e.cold.BlendRgb(e.warm, e.TempFraction(avgTemp))
}

// StrokeWidth returns the stroke width for a discharge.
func (e Encoder) StrokeWidth(discharge float64) float64 {
	f := e.DischargeFraction(discharge)
	return e.Config.MinStroke + f*(e.Config.MaxStroke-e.Config.MinStroke)
}

// Steps returns the fractional spiral step count for a river length.
func (e Encoder) Steps(length float64) float64 {
	f := scale.Linear{Min: e.Config.MinLength, Max: e.Config.MaxLength, Clamp: true}.Map(length)
	return e.Config.MinSteps + f*(e.Config.MaxSteps-e.Config.MinSteps)
}

// Encode produces the draw command for one placement. The spiral is centred
// in the cell and stays padding pixels inside its edge.
func (e Encoder) Encode(p layout.Placement, padding float64) DrawCommand {
	center := Point{X: p.CenterX(), Y: p.CenterY()}
	return DrawCommand{
		Name:   p.Record.Name,
		Center: center,
		Spiral: Spiral{
			Center:    center,
			MaxRadius: max(0, p.CellSize/2-padding),
			Steps:     e.Steps(p.Record.Length),
			AngleStep: e.Config.AngleStep,
		},
		Color:       e.Color(p.Record.AvgTemp),
		StrokeWidth: e.StrokeWidth(p.Record.Discharge),
	}
}

// EncodeAll encodes every cell of a layout in order.
func (e Encoder) EncodeAll(l layout.Layout) []DrawCommand {
	cmds := make([]DrawCommand, len(l.Cells))
	for i, p := range l.Cells {
		cmds[i] = e.Encode(p, l.Config.SpiralPadding)
	}
	return cmds
}
