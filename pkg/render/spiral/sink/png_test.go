package sink

import (
	"bytes"
	"image/png"
	"math"
	"testing"

	"github.com/matzehuels/riverspiral/pkg/errors"
	"github.com/matzehuels/riverspiral/pkg/render/spiral"
)

func TestRenderPNG(t *testing.T) {
	s := testScene(t)

	tests := []struct {
		name  string
		opts  []PNGOption
		scale float64
	}{
		{"default scale", nil, 2},
		{"scale 1", []PNGOption{WithScale(1)}, 1},
		{"without names", []PNGOption{WithScale(1), WithPNGNames(false)}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := RenderPNG(s, tt.opts...)
			if err != nil {
				t.Fatalf("RenderPNG() error = %v", err)
			}
			img, err := png.Decode(bytes.NewReader(data))
			if err != nil {
				t.Fatalf("png.Decode() error = %v", err)
			}
			b := img.Bounds()
			if want := int(math.Ceil(s.Width * tt.scale)); b.Dx() != want {
				t.Errorf("width = %d, want %d", b.Dx(), want)
			}
			if want := int(math.Ceil(s.Height * tt.scale)); b.Dy() != want {
				t.Errorf("height = %d, want %d", b.Dy(), want)
			}

			// Corner pixel is the cream background.
			r, g, bl, _ := img.At(0, 0).RGBA()
			if r>>8 != 255 || g>>8 != 253 || bl>>8 != 240 {
				t.Errorf("background = (%d,%d,%d), want (255,253,240)", r>>8, g>>8, bl>>8)
			}
		})
	}
}

func TestRenderPNGInvalid(t *testing.T) {
	s := testScene(t)
	if _, err := RenderPNG(s, WithScale(0)); !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("scale 0 error = %v, want INVALID_CONFIG", err)
	}
	if _, err := RenderPNG(spiral.Scene{}); !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("empty canvas error = %v, want INVALID_CONFIG", err)
	}
}

func TestAnchors(t *testing.T) {
	tests := []struct {
		text   spiral.Text
		ax, ay float64
	}{
		{spiral.Text{}, 0, 0},
		{spiral.Text{Anchor: spiral.AnchorMiddle, Baseline: spiral.BaselineMiddle}, 0.5, 0.5},
		{spiral.Text{Anchor: spiral.AnchorMiddle, Baseline: spiral.BaselineTop}, 0.5, 1},
	}
	for _, tt := range tests {
		if ax, ay := anchors(tt.text); ax != tt.ax || ay != tt.ay {
			t.Errorf("anchors(%+v) = (%v, %v), want (%v, %v)", tt.text, ax, ay, tt.ax, tt.ay)
		}
	}
}
