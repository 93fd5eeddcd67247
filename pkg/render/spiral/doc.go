// Package spiral assembles the river poster: a title, one block per
// continent and one spiral glyph per river.
//
// # Pipeline
//
// The subpackages run in order:
//
//   - [ordering]: group rivers by continent and sort them
//   - [layout]: place groups and cells on a canvas of a given width
//   - [encode]: map each river to a spiral, colour and stroke width
//   - [styles]: theme and name wrapping
//   - [sink]: draw a [Scene] as SVG, PNG, PDF or JSON
//
// [Build] joins the layout, the encoder and the theme into a [Scene], the
// format-neutral description every sink consumes:
//
//	groups := ordering.Group(ds.Records(), ordering.TieAlphabetical)
//	l, _ := layout.Compute(groups, layout.DefaultConfig(), 1200)
//	enc, _ := encode.New(ranges, encode.DefaultConfig())
//	scene := spiral.Build(l, enc, styles.DefaultTheme(), "Rivers in the World")
//	svg := sink.RenderSVG(scene)
//
// [ordering]: github.com/matzehuels/riverspiral/pkg/render/spiral/ordering
// [layout]: github.com/matzehuels/riverspiral/pkg/render/spiral/layout
// [encode]: github.com/matzehuels/riverspiral/pkg/render/spiral/encode
// [styles]: github.com/matzehuels/riverspiral/pkg/render/spiral/styles
// [sink]: github.com/matzehuels/riverspiral/pkg/render/spiral/sink
package spiral
