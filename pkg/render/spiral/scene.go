package spiral

import (
	"github.com/matzehuels/riverspiral/pkg/render/spiral/encode"
	"github.com/matzehuels/riverspiral/pkg/render/spiral/layout"
	"github.com/matzehuels/riverspiral/pkg/render/spiral/styles"
)

// DefaultTitle is the poster heading used when none is configured.
const DefaultTitle = "Rivers in the World"

// Anchor is the horizontal alignment of a text run relative to its X.
type Anchor int

const (
	AnchorStart Anchor = iota
	AnchorMiddle
)

// Baseline is the vertical alignment of a text run relative to its Y.
type Baseline int

const (
	BaselineAlphabetic Baseline = iota
	BaselineMiddle
	BaselineTop
)

// Text is a single positioned line of text.
type Text struct {
	Content  string
	X, Y     float64
	Size     float64
	Anchor   Anchor
	Baseline Baseline
}

// Glyph is one river: its spiral and its wrapped name.
type Glyph struct {
	Continent string
	Cell      layout.Placement
	Command   encode.DrawCommand
	Name      []Text
}

// Scene is everything needed to draw the poster at one canvas width.
type Scene struct {
	Width, Height float64
	Theme         styles.Theme
	Title         Text
	Labels        []Text
	Glyphs        []Glyph
}

// Build assembles a scene. The title is centred in the title band, continent
// labels sit at the left margin on each group's label line, and river names
// are centred below their cells, wrapped to the cell width.
func Build(l layout.Layout, enc encode.Encoder, theme styles.Theme, title string) Scene {
	cfg := l.Config
	s := Scene{
		Width:  l.Width,
		Height: l.Height,
		Theme:  theme,
		Title: Text{
			Content:  title,
			X:        l.Width / 2,
			Y:        cfg.OuterMargin + cfg.TitleHeight/2,
			Size:     theme.TitleSize,
			Anchor:   AnchorMiddle,
			Baseline: BaselineMiddle,
		},
		Labels: make([]Text, len(l.Groups)),
		Glyphs: make([]Glyph, len(l.Cells)),
	}

	for i, g := range l.Groups {
		s.Labels[i] = Text{
			Content: g.Continent,
			X:       cfg.OuterMargin,
			Y:       g.LabelY,
			Size:    theme.LabelSize,
		}
	}

	lineHeight := theme.NameLineHeight()
	for i, p := range l.Cells {
		lines := styles.WrapText(p.Record.Name, p.CellSize, theme.NameSize)
		names := make([]Text, len(lines))
		for j, line := range lines {
			names[j] = Text{
				Content:  line,
				X:        p.CenterX(),
				Y:        p.Bottom() + cfg.NameGap + float64(j)*lineHeight,
				Size:     theme.NameSize,
				Anchor:   AnchorMiddle,
				Baseline: BaselineTop,
			}
		}
		s.Glyphs[i] = Glyph{
			Continent: p.Record.Continent,
			Cell:      p,
			Command:   enc.Encode(p, cfg.SpiralPadding),
			Name:      names,
		}
	}
	return s
}

// Texts returns every text run in drawing order: title, labels, then names.
func (s Scene) Texts() []Text {
	out := []Text{s.Title}
	out = append(out, s.Labels...)
	for _, g := range s.Glyphs {
		out = append(out, g.Name...)
	}
	return out
}
