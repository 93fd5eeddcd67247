// Package sink draws a [spiral.Scene] in a concrete output format.
//
//   - SVG: vector output written directly ([RenderSVG])
//   - PNG: raster output drawn with gg ([RenderPNG])
//   - PDF: print output via rsvg-convert ([RenderPDF])
//   - JSON: scene geometry for external tools ([RenderJSON])
//
// Every sink draws spirals as open, unfilled polylines in scene order, so the
// formats agree on what is drawn and differ only in how.
//
//	svg := sink.RenderSVG(scene, sink.WithCellOutlines())
//	png, err := sink.RenderPNG(scene, sink.WithScale(3))
//
// [spiral.Scene]: github.com/matzehuels/riverspiral/pkg/render/spiral.Scene
package sink
