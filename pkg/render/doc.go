// Package render holds the river poster renderer and the format conversion
// it shares with its sinks.
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg):
//
//	svg := sink.RenderSVG(scene)
//	pdf, err := render.ToPDF(svg)
//
// The poster itself lives in the [spiral] subpackage.
//
// [spiral]: github.com/matzehuels/riverspiral/pkg/render/spiral
package render
