package encode

import (
	"math"
	"testing"

	"github.com/matzehuels/riverspiral/pkg/dataset"
	"github.com/matzehuels/riverspiral/pkg/errors"
	"github.com/matzehuels/riverspiral/pkg/render/spiral/layout"
)

var exampleRanges = dataset.Ranges{MinTemp: 25, MaxTemp: 27, MinDischarge: 2830, MaxDischarge: 209000}

func newEncoder(t *testing.T, rg dataset.Ranges) Encoder {
	t.Helper()
	enc, err := New(rg, DefaultConfig())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return enc
}

func rgb255(t *testing.T, enc Encoder, temp float64) (uint8, uint8, uint8) {
	t.Helper()
	return enc.Color(temp).RGB255()
}

func TestColorEndpoints(t *testing.T) {
	enc := newEncoder(t, exampleRanges)

	tests := []struct {
		name    string
		temp    float64
		r, g, b uint8
	}{
		{"coldest", 25, 0, 127, 255},
		{"warmest", 27, 0, 127, 150},
		{"below range clamps", 10, 0, 127, 255},
		{"above range clamps", 40, 0, 127, 150},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b := rgb255(t, enc, tt.temp)
			if r != tt.r || g != tt.g || b != tt.b {
				t.Errorf("Color(%v) = (%d,%d,%d), want (%d,%d,%d)", tt.temp, r, g, b, tt.r, tt.g, tt.b)
			}
		})
	}

	// Midpoint lands halfway between 255 and 150.
	if _, _, b := rgb255(t, enc, 26); b < 202 || b > 203 {
		t.Errorf("Color(26) blue = %d, want 202 or 203", b)
	}
}

func TestColorMonotonic(t *testing.T) {
	enc := newEncoder(t, exampleRanges)
	prevB := uint8(255)
	for temp := 25.0; temp <= 27.0; temp += 0.1 {
		_, _, b := rgb255(t, enc, temp)
		if b > prevB {
			t.Errorf("Color(%v) blue %d brighter than colder value %d", temp, b, prevB)
		}
		prevB = b
	}
}

func TestStrokeWidth(t *testing.T) {
	enc := newEncoder(t, exampleRanges)

	if got := enc.StrokeWidth(2830); got != 1 {
		t.Errorf("StrokeWidth(min) = %v, want 1", got)
	}
	if got := enc.StrokeWidth(209000); got != 3.5 {
		t.Errorf("StrokeWidth(max) = %v, want 3.5", got)
	}

	prev := 0.0
	for _, d := range []float64{2830, 10000, 41200, 100000, 209000} {
		w := enc.StrokeWidth(d)
		if w < prev {
			t.Errorf("StrokeWidth(%v) = %v, below previous %v", d, w, prev)
		}
		if w < 1 || w > 3.5 {
			t.Errorf("StrokeWidth(%v) = %v outside [1, 3.5]", d, w)
		}
		prev = w
	}
}

func TestDegenerateRanges(t *testing.T) {
	rg := dataset.Ranges{MinTemp: 20, MaxTemp: 20, MinDischarge: 500, MaxDischarge: 500}
	enc := newEncoder(t, rg)

	r, g, b := rgb255(t, enc, 20)
	if r != 0 || g != 127 || b != 255 {
		t.Errorf("Color() = (%d,%d,%d), want low end (0,127,255)", r, g, b)
	}
	if w := enc.StrokeWidth(500); w != 1 {
		t.Errorf("StrokeWidth() = %v, want 1", w)
	}
	if f := enc.TempFraction(20); math.IsNaN(f) {
		t.Error("TempFraction returned NaN")
	}
}

func TestSteps(t *testing.T) {
	enc := newEncoder(t, exampleRanges)

	tests := []struct {
		length float64
		want   float64
	}{
		{0, 100},
		{5000, 550},
		{10000, 1000},
		{6650, 698.5},
		{20000, 1000},
	}
	for _, tt := range tests {
		if got := enc.Steps(tt.length); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Steps(%v) = %v, want %v", tt.length, got, tt.want)
		}
	}
}

func TestEncode(t *testing.T) {
	enc := newEncoder(t, exampleRanges)
	p := layout.Placement{
		Record:   dataset.Record{Name: "Nile", Length: 6650, Discharge: 2830, AvgTemp: 26, Continent: "Africa"},
		X:        100,
		Y:        200,
		CellSize: 80,
	}

	cmd := enc.Encode(p, 10)
	if cmd.Name != "Nile" {
		t.Errorf("Name = %q", cmd.Name)
	}
	if cmd.Center != (Point{140, 240}) {
		t.Errorf("Center = %v, want {140 240}", cmd.Center)
	}
	if cmd.Spiral.MaxRadius != 30 {
		t.Errorf("MaxRadius = %v, want 30", cmd.Spiral.MaxRadius)
	}
	if cmd.Spiral.Len() != 699 {
		t.Errorf("Spiral.Len() = %d, want 699", cmd.Spiral.Len())
	}
	if cmd.StrokeWidth != 1 {
		t.Errorf("StrokeWidth = %v, want 1", cmd.StrokeWidth)
	}

	small := enc.Encode(layout.Placement{CellSize: 10}, 10)
	if small.Spiral.MaxRadius != 0 {
		t.Errorf("MaxRadius for tiny cell = %v, want 0", small.Spiral.MaxRadius)
	}
}

func TestEncodeAll(t *testing.T) {
	enc := newEncoder(t, exampleRanges)
	l := layout.Layout{
		Config: layout.DefaultConfig(),
		Cells: []layout.Placement{
			{Record: dataset.Record{Name: "a"}, CellSize: 50},
			{Record: dataset.Record{Name: "b"}, CellSize: 50},
		},
	}
	cmds := enc.EncodeAll(l)
	if len(cmds) != 2 || cmds[0].Name != "a" || cmds[1].Name != "b" {
		t.Errorf("EncodeAll() = %+v", cmds)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"bad cold color", func(c *Config) { c.ColdColor = "blue" }},
		{"bad warm color", func(c *Config) { c.WarmColor = "#12" }},
		{"zero min stroke", func(c *Config) { c.MinStroke = 0 }},
		{"inverted stroke", func(c *Config) { c.MaxStroke = 0.5 }},
		{"empty length domain", func(c *Config) { c.MaxLength = c.MinLength }},
		{"negative min length", func(c *Config) { c.MinLength = -1 }},
		{"zero steps", func(c *Config) { c.MinSteps = 0 }},
		{"inverted steps", func(c *Config) { c.MaxSteps = 50 }},
		{"zero angle", func(c *Config) { c.AngleStep = 0 }},
	}

	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() = %v", err)
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)
			if err := cfg.Validate(); !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("Validate() = %v, want INVALID_CONFIG", err)
			}
			if _, err := New(exampleRanges, cfg); err == nil {
				t.Error("New() accepted invalid config")
			}
		})
	}
}
