package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/matzehuels/riverspiral/pkg/observability"
	"github.com/matzehuels/riverspiral/pkg/render/spiral"
	"github.com/matzehuels/riverspiral/pkg/render/spiral/sink"
)

// Render generates output artifacts in the requested formats.
func (r *Runner) Render(ctx context.Context, scene spiral.Scene, opts Options) (map[string][]byte, error) {
	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.Formats)
	start := time.Now()

	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		if err := ctx.Err(); err != nil {
			hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
			return nil, err
		}
		t := time.Now()
		data, err := RenderFormat(scene, format, opts)
		if err != nil {
			err = fmt.Errorf("render %s: %w", format, err)
			hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
			return nil, err
		}
		observability.Artifact().OnArtifact(ctx, format, len(data), time.Since(t))
		r.Logger.Debugf("Generated %s: %d bytes", format, len(data))
		artifacts[format] = data
	}

	hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), nil)
	return artifacts, nil
}

// RenderFormat draws scene in a single format.
func RenderFormat(scene spiral.Scene, format string, opts Options) ([]byte, error) {
	svgOpts := buildSVGOptions(opts)
	switch format {
	case FormatSVG:
		return sink.RenderSVG(scene, svgOpts...), nil
	case FormatPNG:
		pngOpts := []sink.PNGOption{sink.WithScale(opts.Scale), sink.WithPNGNames(!opts.HideNames)}
		if opts.Rsvg {
			pngOpts = append(pngOpts, sink.WithRsvg(svgOpts...))
		}
		return sink.RenderPNG(scene, pngOpts...)
	case FormatPDF:
		return sink.RenderPDF(scene, sink.WithPDFSVGOptions(svgOpts...))
	case FormatJSON:
		var jsonOpts []sink.JSONOption
		if opts.JSONPoints {
			jsonOpts = append(jsonOpts, sink.WithJSONPoints())
		}
		return sink.RenderJSON(scene, jsonOpts...)
	default:
		return nil, ValidateFormat(format)
	}
}

func buildSVGOptions(opts Options) []sink.SVGOption {
	var result []sink.SVGOption
	if opts.Outlines {
		result = append(result, sink.WithCellOutlines())
	}
	if opts.HideNames {
		result = append(result, sink.WithoutNames())
	}
	return result
}
