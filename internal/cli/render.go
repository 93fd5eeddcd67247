package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/riverspiral/pkg/errors"
	"github.com/matzehuels/riverspiral/pkg/pipeline"
)

// renderFlags holds the flags specific to the render command.
type renderFlags struct {
	optionFlags
	output     string
	formats    string
	scale      float64
	outlines   bool
	noNames    bool
	rsvg       bool
	jsonPoints bool
}

// renderCommand creates the render command for drawing the poster.
func (c *CLI) renderCommand() *cobra.Command {
	var f renderFlags

	cmd := &cobra.Command{
		Use:   "render [rivers.csv]",
		Short: "Render a river dataset to SVG, PNG, PDF or JSON",
		Long: `Render a river dataset to SVG, PNG, PDF or JSON.

The input is a CSV file with the columns name, length, discharge, continent
and avg_temp, or a JSON array of the same records. The input may also be set
with 'input' in the config file.

With a single format the output goes to --output (use '-' for stdout). With
several formats --output is a base path and each file gets its format's
extension.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := f.renderOptions(cmd, args)
			if err != nil {
				return err
			}
			return c.runRender(cmd.Context(), opts, f.output)
		},
	}

	f.register(cmd)
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&f.formats, "format", "f", "", "output format(s): svg (default), png, pdf, json (comma-separated)")
	cmd.Flags().Float64Var(&f.scale, "scale", pipeline.DefaultScale, "PNG scale factor")
	cmd.Flags().BoolVar(&f.outlines, "outlines", false, "draw cell outlines")
	cmd.Flags().BoolVar(&f.noNames, "no-names", false, "omit river names")
	cmd.Flags().BoolVar(&f.rsvg, "rsvg", false, "rasterise PNG with rsvg-convert instead of the built-in renderer")
	cmd.Flags().BoolVar(&f.jsonPoints, "json-points", false, "include sampled spiral points in JSON output")

	return cmd
}

// renderOptions merges the config file with the shared and render flags.
func (f *renderFlags) renderOptions(cmd *cobra.Command, args []string) (pipeline.Options, error) {
	var input string
	if len(args) == 1 {
		input = args[0]
	}
	opts, err := f.options(cmd, input)
	if err != nil {
		return pipeline.Options{}, err
	}
	if opts.Input == "" {
		return pipeline.Options{}, errors.New(errors.ErrCodeInvalidPath, "no input file given")
	}

	flags := cmd.Flags()
	if flags.Changed("format") {
		opts.Formats = parseFormats(f.formats)
	}
	if flags.Changed("scale") {
		opts.Scale = f.scale
	}
	if flags.Changed("outlines") {
		opts.Outlines = f.outlines
	}
	if flags.Changed("no-names") {
		opts.HideNames = f.noNames
	}
	if flags.Changed("rsvg") {
		opts.Rsvg = f.rsvg
	}
	if flags.Changed("json-points") {
		opts.JSONPoints = f.jsonPoints
	}

	if err := pipeline.ValidateFormats(opts.Formats); err != nil {
		return pipeline.Options{}, err
	}
	if f.output == "-" && len(opts.Formats) > 1 {
		return pipeline.Options{}, errors.New(errors.ErrCodeInvalidPath, "cannot write %d formats to stdout", len(opts.Formats))
	}
	return opts, nil
}

// runRender executes the pipeline and writes one file per format.
func (c *CLI) runRender(ctx context.Context, opts pipeline.Options, output string) error {
	toStdout := output == "-"

	var spinner *Spinner
	if !toStdout && needsRaster(opts.Formats) {
		spinner = newSpinnerWithContext(ctx, "Rendering poster...")
		spinner.Start()
	}

	result, err := c.newRunner().Execute(ctx, opts)
	if err != nil {
		if spinner != nil {
			spinner.StopWithError("Render failed")
		}
		return err
	}
	if spinner != nil {
		spinner.Stop()
	}

	paths, err := writeArtifacts(result.Artifacts, opts.Formats, opts.Input, output)
	if err != nil {
		return err
	}
	if toStdout {
		return nil
	}

	printSuccess("Rendered %d rivers on %d continents", result.Stats.Records, result.Stats.Continents)
	printStats(result.Stats)
	for _, p := range paths {
		printFile(p)
	}
	printNewline()
	printNextStep("Try other widths", appName+" preview "+opts.Input)
	return nil
}

// needsRaster reports whether formats include an output slow enough to
// warrant a spinner.
func needsRaster(formats []string) bool {
	return slices.Contains(formats, pipeline.FormatPNG) || slices.Contains(formats, pipeline.FormatPDF)
}

// writeArtifacts writes each artifact and returns the paths written, in
// format order. Writing to stdout returns no paths.
func writeArtifacts(artifacts map[string][]byte, formats []string, input, output string) ([]string, error) {
	if output == "-" {
		if len(formats) != 1 {
			return nil, fmt.Errorf("stdout takes exactly one format, got %d", len(formats))
		}
		return nil, writeOutput(nopCloser{os.Stdout}, artifacts[formats[0]])
	}

	var paths []string
	for _, format := range formats {
		path := outputPath(output, input, format, len(formats))
		out, err := openOutput(path)
		if err != nil {
			return paths, err
		}
		if err := writeOutput(out, artifacts[format]); err != nil {
			return paths, fmt.Errorf("write %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// outputPath returns the file for format. A single format uses output as-is
// when given; otherwise the format extension is appended to the base path.
func outputPath(output, input, format string, count int) string {
	if count == 1 && output != "" {
		return output
	}
	return basePath(output, input) + "." + format
}

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input.
// If output has a format extension (.svg, .pdf, etc.), it strips that extension.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

func writeOutput(out io.WriteCloser, data []byte) error {
	if _, err := out.Write(data); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// nopCloser wraps an io.Writer with a no-op Close method.
// It is used to make os.Stdout compatible with io.WriteCloser.
type nopCloser struct{ io.Writer }

// Close implements io.Closer with a no-op.
func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for the given path.
// If path is empty, it returns os.Stdout wrapped in nopCloser.
// Otherwise, it creates the file at path, overwriting if it exists.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}
