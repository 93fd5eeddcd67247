package pipeline

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/riverspiral/pkg/dataset"
	"github.com/matzehuels/riverspiral/pkg/errors"
	rio "github.com/matzehuels/riverspiral/pkg/io"
	"github.com/matzehuels/riverspiral/pkg/observability"
	"github.com/matzehuels/riverspiral/pkg/render/spiral"
	"github.com/matzehuels/riverspiral/pkg/render/spiral/encode"
	"github.com/matzehuels/riverspiral/pkg/render/spiral/layout"
	"github.com/matzehuels/riverspiral/pkg/render/spiral/ordering"
)

// Runner executes pipeline stages and logs their progress.
//
// The Runner is stateless except for the logger - it doesn't store pipeline
// results. Width-independent work is returned as a [Prepared] value that
// callers hand back to [Runner.Relayout].
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. If logger is nil, output is discarded.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Runner{Logger: logger}
}

// Prepared is the width-independent result of the prepare stage.
type Prepared struct {
	Dataset *dataset.Dataset
	Groups  []ordering.ContinentGroup
	Ranges  dataset.Ranges
	Encoder encode.Encoder

	// Empty is set when the dataset has no records. Layout still runs and
	// produces a canvas with only the title.
	Empty bool
}

// Frame is the output of one layout pass.
type Frame struct {
	Layout layout.Layout
	Scene  spiral.Scene
}

// Execute runs the complete load → prepare → layout → render pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{}

	// Stage 1: Load
	loadStart := time.Now()
	ds, err := r.Load(ctx, opts.Input)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	result.Stats.LoadTime = time.Since(loadStart)

	// Stage 2: Prepare
	prepared, err := r.Prepare(ctx, ds, opts)
	if err != nil {
		return nil, fmt.Errorf("prepare: %w", err)
	}
	result.Prepared = prepared
	result.Stats.Records = ds.Len()
	result.Stats.Continents = len(prepared.Groups)

	// Stage 3: Layout
	layoutStart := time.Now()
	frame, err := r.Relayout(ctx, prepared, opts, opts.Width)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	result.Frame = frame
	result.Stats.Height = frame.Layout.Height
	result.Stats.LayoutTime = time.Since(layoutStart)

	// Stage 4: Render
	renderStart := time.Now()
	artifacts, err := r.Render(ctx, frame.Scene, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Load reads the dataset at path.
func (r *Runner) Load(ctx context.Context, path string) (*dataset.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	hooks := observability.Pipeline()
	hooks.OnLoadStart(ctx, path)
	start := time.Now()

	ds, err := rio.Import(path)
	hooks.OnLoadComplete(ctx, path, ds.Len(), time.Since(start), err)
	if err != nil {
		return nil, err
	}

	r.Logger.Info("loaded rivers",
		"source", path,
		"records", ds.Len(),
		"continents", len(ds.Continents()),
		"duration", time.Since(start))
	return ds, nil
}

// Prepare groups and sorts the records and computes the global ranges.
// An empty dataset is not an error: it is logged and flagged on the result.
func (r *Runner) Prepare(ctx context.Context, ds *dataset.Dataset, opts Options) (*Prepared, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	tie, err := opts.Tie()
	if err != nil {
		return nil, err
	}

	records := ds.Records()
	p := &Prepared{
		Dataset: ds,
		Groups:  ordering.Group(records, tie),
	}

	p.Ranges, err = dataset.ComputeRanges(records)
	switch {
	case errors.IsFatal(err):
		return nil, err
	case err != nil:
		r.Logger.Warn("dataset is empty, rendering title only")
		p.Empty = true
	}

	if !p.Empty {
		if p.Ranges.DegenerateTemp() {
			r.Logger.Warn("all rivers share one average temperature, using the cold colour",
				"avg_temp", p.Ranges.MinTemp)
		}
		if p.Ranges.DegenerateDischarge() {
			r.Logger.Warn("all rivers share one discharge, using the minimum stroke",
				"discharge", p.Ranges.MinDischarge)
		}
	}

	p.Encoder, err = encode.New(p.Ranges, opts.Encode)
	if err != nil {
		return nil, err
	}

	r.Logger.Debug("prepared groups",
		"continents", len(p.Groups),
		"order", continentNames(p.Groups),
		"sizes", ordering.Sizes(p.Groups),
		"tie_break", tie)
	return p, nil
}

// Relayout computes the layout and scene for width. It reuses the grouping
// and ranges in p, so only width-dependent work is repeated.
func (r *Runner) Relayout(ctx context.Context, p *Prepared, opts Options, width float64) (Frame, error) {
	if err := ctx.Err(); err != nil {
		return Frame{}, err
	}
	hooks := observability.Pipeline()
	hooks.OnLayoutStart(ctx, width, p.Dataset.Len())
	start := time.Now()

	l, err := layout.Compute(p.Groups, opts.Layout, width)
	if err != nil {
		hooks.OnLayoutComplete(ctx, 0, time.Since(start), err)
		return Frame{}, err
	}
	scene := spiral.Build(l, p.Encoder, opts.Theme, opts.Title)
	hooks.OnLayoutComplete(ctx, l.Height, time.Since(start), nil)

	r.Logger.Debug("computed layout",
		"width", width,
		"height", l.Height,
		"cell", l.CellSize,
		"duration", time.Since(start))
	return Frame{Layout: l, Scene: scene}, nil
}

func continentNames(groups []ordering.ContinentGroup) []string {
	names := make([]string, len(groups))
	for i, g := range groups {
		names[i] = g.Continent
	}
	return names
}
