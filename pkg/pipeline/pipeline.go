// Package pipeline provides the river poster pipeline shared by every command.
//
// This package implements the complete load → prepare → layout → render
// pipeline. By centralizing this logic the render, inspect and preview
// commands stay consistent with each other.
//
// # Architecture
//
// The pipeline consists of four stages:
//
//  1. Load: Read river records from a CSV or JSON file
//  2. Prepare: Group rivers by continent, sort them, compute global ranges
//  3. Layout: Place cells for a canvas width and encode every river
//  4. Render: Generate output in various formats (SVG, PNG, PDF, JSON)
//
// Prepare depends only on the data. Layout depends on the canvas width and
// is the only stage repeated when the width changes.
//
// # Usage
//
// Run the complete pipeline:
//
//	runner := pipeline.NewRunner(logger)
//	opts := pipeline.DefaultOptions()
//	opts.Input = "rivers.csv"
//	opts.Formats = []string{"svg", "png"}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// Re-run layout for a new width:
//
//	prepared, err := runner.Prepare(ctx, ds, opts)
//	frame, err := runner.Relayout(ctx, prepared, opts, 1600)
package pipeline

import (
	"time"

	"github.com/matzehuels/riverspiral/pkg/errors"
	"github.com/matzehuels/riverspiral/pkg/render/spiral"
	"github.com/matzehuels/riverspiral/pkg/render/spiral/encode"
	"github.com/matzehuels/riverspiral/pkg/render/spiral/layout"
	"github.com/matzehuels/riverspiral/pkg/render/spiral/ordering"
	"github.com/matzehuels/riverspiral/pkg/render/spiral/styles"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultWidth is the default canvas width in pixels.
	DefaultWidth = 1200.0

	// DefaultScale is the default PNG scale factor.
	DefaultScale = 2.0

	// DefaultTitle is the poster heading.
	DefaultTitle = spiral.DefaultTitle
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the pipeline. It decodes from TOML
// (see [LoadConfig]) and serializes to JSON.
type Options struct {
	// Input options
	Input string `toml:"input" json:"input,omitempty"`

	// Layout options
	Title    string        `toml:"title" json:"title,omitempty"`
	Width    float64       `toml:"width" json:"width,omitempty"`
	TieBreak string        `toml:"tie_break" json:"tie_break,omitempty"` // alphabetical or first-seen
	Layout   layout.Config `toml:"layout" json:"layout"`
	Encode   encode.Config `toml:"encode" json:"encode"`
	Theme    styles.Theme  `toml:"theme" json:"theme"`

	// Render options
	Formats    []string `toml:"formats" json:"formats,omitempty"`
	Scale      float64  `toml:"scale" json:"scale,omitempty"`             // PNG scale factor
	Outlines   bool     `toml:"outlines" json:"outlines,omitempty"`       // draw cell outlines
	HideNames  bool     `toml:"hide_names" json:"hide_names,omitempty"`   // omit river names
	Rsvg       bool     `toml:"rsvg" json:"rsvg,omitempty"`               // rasterise PNG with rsvg-convert
	JSONPoints bool     `toml:"json_points" json:"json_points,omitempty"` // include spiral points in JSON

	// validated tracks whether ValidateAndSetDefaults has succeeded.
	validated bool
}

// DefaultOptions returns options with every default applied.
func DefaultOptions() Options {
	var o Options
	o.SetDefaults()
	return o
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Prepared holds the grouped records and global ranges.
	Prepared *Prepared

	// Frame is the layout and scene at the requested width.
	Frame Frame

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Records    int
	Continents int
	Height     float64
	LoadTime   time.Duration
	LayoutTime time.Duration
	RenderTime time.Duration
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: svg, png, pdf, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// SetDefaults fills unset fields. Sub-configs are replaced wholesale when
// they are entirely zero.
func (o *Options) SetDefaults() {
	if o.Title == "" {
		o.Title = DefaultTitle
	}
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.TieBreak == "" {
		o.TieBreak = ordering.TieAlphabetical.String()
	}
	if o.Layout == (layout.Config{}) {
		o.Layout = layout.DefaultConfig()
	}
	if o.Encode == (encode.Config{}) {
		o.Encode = encode.DefaultConfig()
	}
	if o.Theme == (styles.Theme{}) {
		o.Theme = styles.DefaultTheme()
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
}

// Validate checks every option. It does not apply defaults.
func (o *Options) Validate() error {
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if _, err := o.Tie(); err != nil {
		return err
	}
	if err := errors.ValidatePositive("width", o.Width); err != nil {
		return err
	}
	if err := errors.ValidatePositive("scale", o.Scale); err != nil {
		return err
	}
	if err := o.Layout.Validate(); err != nil {
		return err
	}
	if err := o.Encode.Validate(); err != nil {
		return err
	}
	return o.Theme.Validate()
}

// ValidateAndSetDefaults applies defaults and validates.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	o.SetDefaults()
	if err := o.Validate(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// Tie parses the configured continent tie-break.
func (o *Options) Tie() (ordering.TieBreak, error) {
	tie, err := ordering.ParseTieBreak(o.TieBreak)
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeInvalidConfig, err, "tie_break")
	}
	return tie, nil
}
