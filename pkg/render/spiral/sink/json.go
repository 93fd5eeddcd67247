package sink

import (
	"encoding/json"

	"github.com/matzehuels/riverspiral/pkg/render/spiral"
	"github.com/matzehuels/riverspiral/pkg/render/spiral/styles"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	points bool
	indent bool
}

// WithJSONPoints includes every spiral point. Without it only the spiral
// parameters are written and consumers regenerate the points.
func WithJSONPoints() JSONOption { return func(r *jsonRenderer) { r.points = true } }

// WithJSONIndent pretty-prints the output.
func WithJSONIndent() JSONOption { return func(r *jsonRenderer) { r.indent = true } }

type jsonOutput struct {
	Width  float64      `json:"width"`
	Height float64      `json:"height"`
	Title  string       `json:"title,omitempty"`
	Theme  styles.Theme `json:"theme"`
	Groups []jsonGroup  `json:"groups"`
	Rivers []jsonRiver  `json:"rivers"`
}

type jsonGroup struct {
	Continent string  `json:"continent"`
	LabelX    float64 `json:"label_x"`
	LabelY    float64 `json:"label_y"`
}

type jsonRiver struct {
	Name        string     `json:"name"`
	Continent   string     `json:"continent"`
	X           float64    `json:"x"`
	Y           float64    `json:"y"`
	Size        float64    `json:"size"`
	Row         int        `json:"row"`
	Column      int        `json:"column"`
	Color       string     `json:"color"`
	StrokeWidth float64    `json:"stroke_width"`
	Spiral      jsonSpiral `json:"spiral"`
	NameLines   []string   `json:"name_lines,omitempty"`
}

type jsonSpiral struct {
	CenterX   float64      `json:"center_x"`
	CenterY   float64      `json:"center_y"`
	MaxRadius float64      `json:"max_radius"`
	Extent    float64      `json:"extent"`
	Steps     float64      `json:"steps"`
	AngleStep float64      `json:"angle_step"`
	Points    [][2]float64 `json:"points,omitempty"`
}

// RenderJSON exports the scene geometry and styling.
func RenderJSON(s spiral.Scene, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	out := jsonOutput{
		Width:  s.Width,
		Height: s.Height,
		Title:  s.Title.Content,
		Theme:  s.Theme,
		Groups: make([]jsonGroup, len(s.Labels)),
		Rivers: make([]jsonRiver, len(s.Glyphs)),
	}
	for i, lb := range s.Labels {
		out.Groups[i] = jsonGroup{Continent: lb.Content, LabelX: lb.X, LabelY: lb.Y}
	}
	for i, g := range s.Glyphs {
		cmd := g.Command
		river := jsonRiver{
			Name:        cmd.Name,
			Continent:   g.Continent,
			X:           g.Cell.X,
			Y:           g.Cell.Y,
			Size:        g.Cell.CellSize,
			Row:         g.Cell.Row,
			Column:      g.Cell.Column,
			Color:       cmd.Color.Hex(),
			StrokeWidth: cmd.StrokeWidth,
			Spiral: jsonSpiral{
				CenterX:   cmd.Spiral.Center.X,
				CenterY:   cmd.Spiral.Center.Y,
				MaxRadius: cmd.Spiral.MaxRadius,
				Extent:    cmd.Spiral.Extent(),
				Steps:     cmd.Spiral.Steps,
				AngleStep: cmd.Spiral.AngleStep,
			},
		}
		for _, ln := range g.Name {
			river.NameLines = append(river.NameLines, ln.Content)
		}
		if r.points {
			river.Spiral.Points = make([][2]float64, 0, cmd.Spiral.Len())
			for p := range cmd.Spiral.Points() {
				river.Spiral.Points = append(river.Spiral.Points, [2]float64{p.X, p.Y})
			}
		}
		out.Rivers[i] = river
	}

	if r.indent {
		return json.MarshalIndent(out, "", "  ")
	}
	return json.Marshal(out)
}
