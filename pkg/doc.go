// Package pkg provides the core libraries for riverspiral poster rendering.
//
// # Overview
//
// Riverspiral turns a table of rivers into a poster: rivers are grouped by
// continent, laid out on a grid, and each one is drawn as an Archimedean
// spiral. The spiral's path length follows the river's length, its colour
// the average temperature along the river, and its stroke width the
// discharge at the mouth.
//
// # Architecture
//
// The data flow through riverspiral:
//
//	CSV / JSON records
//	         ↓
//	    [io] package (ingest and validate)
//	         ↓
//	    [dataset] package (records + global ranges)
//	         ↓
//	    [render/spiral/ordering] (group by continent, sort by length)
//	         ↓
//	    [render/spiral/layout] (grid geometry, canvas height)
//	         ↓
//	    [render/spiral/encode] (colour, stroke, spiral steps)
//	         ↓
//	    [render/spiral] scene → [render/spiral/sink] SVG/PNG/PDF/JSON
//
// # Quick Start
//
// Render a dataset by hand:
//
//	ds, _ := io.ImportCSV("rivers.csv")
//	records := ds.Records()
//
//	groups := ordering.Group(records, ordering.TieAlphabetical)
//	ranges, _ := dataset.ComputeRanges(records)
//	enc, _ := encode.New(ranges, encode.DefaultConfig())
//
//	l, _ := layout.Compute(groups, layout.DefaultConfig(), 1200)
//	scene := spiral.Build(l, enc, styles.DefaultTheme(), spiral.DefaultTitle)
//	svg := sink.RenderSVG(scene)
//
// Or let [pipeline] run every stage with logging and validation:
//
//	runner := pipeline.NewRunner(logger)
//	opts := pipeline.DefaultOptions()
//	opts.Input = "rivers.csv"
//	opts.Formats = []string{"svg", "png"}
//	result, err := runner.Execute(ctx, opts)
//
// # Main Packages
//
// [dataset] - The river record model, dataset ownership, and the global
// temperature and discharge ranges used to normalise the encodings.
//
// [io] - CSV and JSON ingestion with per-line error reporting, and JSON export.
//
// [render/spiral] - Scene assembly: the title, continent labels, and one glyph
// per river with its wrapped name.
//
//   - [render/spiral/ordering]: Continent grouping and ordering
//   - [render/spiral/layout]: Grid geometry and dynamic canvas height
//   - [render/spiral/encode]: Data-to-visual mappings and spiral sampling
//   - [render/spiral/styles]: Theme colours, font sizes, text measuring
//   - [render/spiral/sink]: Output formats (SVG, PNG, PDF, JSON)
//
// [render] - Format conversion through rsvg-convert (SVG to PDF/PNG).
//
// [pipeline] - Options, TOML config files, and the Runner that executes
// load → prepare → layout → render. [pipeline.Runner.Relayout] recomputes
// only width-dependent work.
//
// [observability] - Hooks for pipeline and artifact events.
//
// [errors] - Structured error codes shared by every package.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...                    # All tests
//	go test ./pkg/render/spiral/...      # Specific package
//	go test -run Example ./pkg/...       # Examples only
//
// [dataset]: https://pkg.go.dev/github.com/matzehuels/riverspiral/pkg/dataset
// [io]: https://pkg.go.dev/github.com/matzehuels/riverspiral/pkg/io
// [render]: https://pkg.go.dev/github.com/matzehuels/riverspiral/pkg/render
// [render/spiral]: https://pkg.go.dev/github.com/matzehuels/riverspiral/pkg/render/spiral
// [render/spiral/ordering]: https://pkg.go.dev/github.com/matzehuels/riverspiral/pkg/render/spiral/ordering
// [render/spiral/layout]: https://pkg.go.dev/github.com/matzehuels/riverspiral/pkg/render/spiral/layout
// [render/spiral/encode]: https://pkg.go.dev/github.com/matzehuels/riverspiral/pkg/render/spiral/encode
// [render/spiral/styles]: https://pkg.go.dev/github.com/matzehuels/riverspiral/pkg/render/spiral/styles
// [render/spiral/sink]: https://pkg.go.dev/github.com/matzehuels/riverspiral/pkg/render/spiral/sink
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/riverspiral/pkg/pipeline
// [pipeline.Runner.Relayout]: https://pkg.go.dev/github.com/matzehuels/riverspiral/pkg/pipeline#Runner.Relayout
// [observability]: https://pkg.go.dev/github.com/matzehuels/riverspiral/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/riverspiral/pkg/errors
package pkg
