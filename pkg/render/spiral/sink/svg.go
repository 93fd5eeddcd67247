package sink

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/matzehuels/riverspiral/pkg/render/spiral"
	"github.com/matzehuels/riverspiral/pkg/render/spiral/styles"
)

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	outlines  bool
	hideNames bool
	precision int
}

// WithCellOutlines draws a faint rectangle around every cell.
func WithCellOutlines() SVGOption { return func(r *svgRenderer) { r.outlines = true } }

// WithoutNames omits the river names below the cells.
func WithoutNames() SVGOption { return func(r *svgRenderer) { r.hideNames = true } }

// WithPrecision sets the number of decimals written for spiral coordinates.
func WithPrecision(digits int) SVGOption {
	return func(r *svgRenderer) { r.precision = max(0, digits) }
}

// RenderSVG renders the scene as a standalone SVG document. Each river is an
// open, unfilled polyline with a <title> naming the river and its continent.
func RenderSVG(s spiral.Scene, opts ...SVGOption) []byte {
	r := svgRenderer{precision: 2}
	for _, opt := range opts {
		opt(&r)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		s.Width, s.Height, s.Width, s.Height)
	fmt.Fprintf(&buf, `  <rect width="100%%" height="100%%" fill="%s"/>`+"\n", s.Theme.BackgroundColor().Hex())

	fmt.Fprintf(&buf, `  <g font-family="%s" fill="%s">`+"\n",
		styles.EscapeXML(s.Theme.FontFamily), s.Theme.TextColor().Hex())
	if s.Title.Content != "" {
		writeText(&buf, s.Title, "title")
	}
	for _, lb := range s.Labels {
		writeText(&buf, lb, "continent")
	}
	buf.WriteString("  </g>\n")

	for i, g := range s.Glyphs {
		fmt.Fprintf(&buf, `  <g class="river" id="river-%d">`+"\n", i)
		if r.outlines {
			c := g.Cell
			fmt.Fprintf(&buf, `    <rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="none" stroke="#cccccc" stroke-width="0.5"/>`+"\n",
				c.X, c.Y, c.CellSize, c.CellSize)
		}
		r.writeSpiral(&buf, g)
		if !r.hideNames && len(g.Name) > 0 {
			fmt.Fprintf(&buf, `    <g font-family="%s" fill="%s">`+"\n",
				styles.EscapeXML(s.Theme.FontFamily), s.Theme.TextColor().Hex())
			for _, ln := range g.Name {
				buf.WriteString("  ")
				writeText(&buf, ln, "name")
			}
			buf.WriteString("    </g>\n")
		}
		buf.WriteString("  </g>\n")
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func (r svgRenderer) writeSpiral(buf *bytes.Buffer, g spiral.Glyph) {
	cmd := g.Command
	buf.WriteString(`    <polyline points="`)
	first := true
	for p := range cmd.Spiral.Points() {
		if !first {
			buf.WriteByte(' ')
		}
		first = false
		buf.WriteString(strconv.FormatFloat(p.X, 'f', r.precision, 64))
		buf.WriteByte(',')
		buf.WriteString(strconv.FormatFloat(p.Y, 'f', r.precision, 64))
	}
	fmt.Fprintf(buf, `" fill="none" stroke="%s" stroke-width="%.3f" stroke-linecap="round" stroke-linejoin="round">`,
		cmd.Color.Hex(), cmd.StrokeWidth)
	fmt.Fprintf(buf, `<title>%s (%s)</title></polyline>`+"\n", styles.EscapeXML(cmd.Name), styles.EscapeXML(g.Continent))
}

func writeText(buf *bytes.Buffer, t spiral.Text, class string) {
	anchor := "start"
	if t.Anchor == spiral.AnchorMiddle {
		anchor = "middle"
	}
	baseline := "alphabetic"
	switch t.Baseline {
	case spiral.BaselineMiddle:
		baseline = "middle"
	case spiral.BaselineTop:
		baseline = "hanging"
	}
	fmt.Fprintf(buf, `    <text class="%s" x="%.2f" y="%.2f" font-size="%.1f" text-anchor="%s" dominant-baseline="%s">%s</text>`+"\n",
		class, t.X, t.Y, t.Size, anchor, baseline, styles.EscapeXML(t.Content))
}
