package sink

import (
	"bytes"
	"math"

	"github.com/fogleman/gg"

	"github.com/matzehuels/riverspiral/pkg/errors"
	"github.com/matzehuels/riverspiral/pkg/render"
	"github.com/matzehuels/riverspiral/pkg/render/spiral"
	"github.com/matzehuels/riverspiral/pkg/render/spiral/styles"
)

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	svgOpts   []SVGOption
	scale     float64
	rsvg      bool
	hideNames bool
}

// WithScale sets the PNG scale factor (default 2.0 for 2x resolution).
func WithScale(s float64) PNGOption {
	return func(r *pngRenderer) { r.scale = s }
}

// WithRsvg rasterises the SVG output with rsvg-convert instead of drawing
// natively. Text then uses the theme's font family rather than Go Regular.
func WithRsvg(opts ...SVGOption) PNGOption {
	return func(r *pngRenderer) { r.rsvg = true; r.svgOpts = opts }
}

// WithPNGNames toggles river names in native PNG output.
func WithPNGNames(show bool) PNGOption {
	return func(r *pngRenderer) { r.hideNames = !show }
}

// RenderPNG renders the scene as PNG.
func RenderPNG(s spiral.Scene, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{scale: 2.0}
	for _, opt := range opts {
		opt(&r)
	}
	if math.IsNaN(r.scale) || r.scale <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "png scale must be positive, got %v", r.scale)
	}
	if r.rsvg {
		return render.ToPNG(RenderSVG(s, r.svgOpts...), r.scale)
	}
	return r.draw(s)
}

func (r pngRenderer) draw(s spiral.Scene) ([]byte, error) {
	k := r.scale
	w := int(math.Ceil(s.Width * k))
	h := int(math.Ceil(s.Height * k))
	if w <= 0 || h <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "canvas %vx%v is empty", s.Width, s.Height)
	}

	dc := gg.NewContext(w, h)
	dc.SetColor(s.Theme.BackgroundColor())
	dc.Clear()

	dc.SetLineCapRound()
	dc.SetLineJoinRound()
	for _, g := range s.Glyphs {
		cmd := g.Command
		dc.NewSubPath()
		first := true
		for p := range cmd.Spiral.Points() {
			if first {
				dc.MoveTo(p.X*k, p.Y*k)
				first = false
				continue
			}
			dc.LineTo(p.X*k, p.Y*k)
		}
		dc.SetColor(cmd.Color)
		dc.SetLineWidth(cmd.StrokeWidth * k)
		dc.Stroke()
	}

	dc.SetColor(s.Theme.TextColor())
	texts := s.Texts()
	if r.hideNames {
		texts = texts[:1+len(s.Labels)]
	}
	for _, t := range texts {
		if t.Content == "" {
			continue
		}
		face, err := styles.Face(t.Size * k)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "load font")
		}
		dc.SetFontFace(face)
		ax, ay := anchors(t)
		dc.DrawStringAnchored(t.Content, t.X*k, t.Y*k, ax, ay)
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode png")
	}
	return buf.Bytes(), nil
}

// anchors converts text alignment to gg's fractional anchor offsets.
func anchors(t spiral.Text) (ax, ay float64) {
	if t.Anchor == spiral.AnchorMiddle {
		ax = 0.5
	}
	switch t.Baseline {
	case spiral.BaselineMiddle:
		ay = 0.5
	case spiral.BaselineTop:
		ay = 1
	}
	return ax, ay
}
