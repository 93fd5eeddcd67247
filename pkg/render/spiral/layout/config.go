package layout

import (
	"github.com/matzehuels/riverspiral/pkg/errors"
)

// PxPerCm converts centimetres to CSS pixels at 96 DPI.
const PxPerCm = 96 / 2.54

// Config holds the grid geometry. All lengths are in pixels.
type Config struct {
	Columns       int     `toml:"columns" json:"columns"`
	CellSpacing   float64 `toml:"cell_spacing" json:"cell_spacing"`
	OuterMargin   float64 `toml:"outer_margin" json:"outer_margin"`
	BottomMargin  float64 `toml:"bottom_margin" json:"bottom_margin"`
	TitleHeight   float64 `toml:"title_height" json:"title_height"`
	IntroGap      float64 `toml:"intro_gap" json:"intro_gap"`
	RowGap        float64 `toml:"row_gap" json:"row_gap"`
	GroupGap      float64 `toml:"group_gap" json:"group_gap"`
	LabelOffset   float64 `toml:"label_offset" json:"label_offset"`
	NameGap       float64 `toml:"name_gap" json:"name_gap"`
	SpiralPadding float64 `toml:"spiral_padding" json:"spiral_padding"`
}

// DefaultConfig returns the poster geometry: ten columns, half a centimetre
// between cells and two centimetre margins.
func DefaultConfig() Config {
	return Config{
		Columns:       10,
		CellSpacing:   0.5 * PxPerCm,
		OuterMargin:   2 * PxPerCm,
		BottomMargin:  2 * PxPerCm,
		TitleHeight:   80,
		IntroGap:      40,
		RowGap:        40,
		GroupGap:      40,
		LabelOffset:   20,
		NameGap:       5,
		SpiralPadding: 10,
	}
}

// Validate checks that the configuration describes a drawable grid.
func (c Config) Validate() error {
	if c.Columns <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "columns must be positive, got %d", c.Columns)
	}
	checks := []struct {
		field string
		v     float64
	}{
		{"cell_spacing", c.CellSpacing},
		{"outer_margin", c.OuterMargin},
		{"bottom_margin", c.BottomMargin},
		{"title_height", c.TitleHeight},
		{"intro_gap", c.IntroGap},
		{"row_gap", c.RowGap},
		{"group_gap", c.GroupGap},
		{"label_offset", c.LabelOffset},
		{"name_gap", c.NameGap},
		{"spiral_padding", c.SpiralPadding},
	}
	for _, chk := range checks {
		if err := errors.ValidateSpacing(chk.field, chk.v); err != nil {
			return err
		}
	}
	return nil
}

// CellSize returns the side of a square cell for the given canvas width.
// It returns INVALID_CONFIG when the configuration or width leaves no room
// for a cell.
func CellSize(cfg Config, width float64) (float64, error) {
	if err := cfg.Validate(); err != nil {
		return 0, err
	}
	if err := errors.ValidatePositive("width", width); err != nil {
		return 0, err
	}
	cols := float64(cfg.Columns)
	size := (width - 2*cfg.OuterMargin - (cols-1)*cfg.CellSpacing) / cols
	if size <= 0 {
		return 0, errors.New(errors.ErrCodeInvalidConfig,
			"width %.1f leaves no room for %d columns (cell size %.2f)", width, cfg.Columns, size)
	}
	return size, nil
}

// RowPitch is the vertical distance between the tops of consecutive rows.
func (c Config) RowPitch(cellSize float64) float64 {
	return cellSize + c.CellSpacing + c.RowGap
}

// ContentTop is the y coordinate of the first continent block.
func (c Config) ContentTop() float64 {
	return c.OuterMargin + c.TitleHeight + c.IntroGap
}
