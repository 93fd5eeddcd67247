package render

import (
	"testing"

	"github.com/matzehuels/riverspiral/pkg/errors"
)

func TestRsvgMissing(t *testing.T) {
	orig := rsvgBinary
	rsvgBinary = "rsvg-convert-does-not-exist"
	t.Cleanup(func() { rsvgBinary = orig })

	if Available() {
		t.Fatal("Available() = true for missing binary")
	}
	if _, err := ToPDF([]byte("<svg/>")); !errors.Is(err, errors.ErrCodeUnsupported) {
		t.Errorf("ToPDF() error = %v, want UNSUPPORTED", err)
	}
	if _, err := ToPNG([]byte("<svg/>"), 2); !errors.Is(err, errors.ErrCodeUnsupported) {
		t.Errorf("ToPNG() error = %v, want UNSUPPORTED", err)
	}
}

func TestToPDF(t *testing.T) {
	if !Available() {
		t.Skip("rsvg-convert not installed")
	}
	pdf, err := ToPDF([]byte(`<svg xmlns="http://www.w3.org/2000/svg" width="10" height="10"/>`))
	if err != nil {
		t.Fatalf("ToPDF() error = %v", err)
	}
	if len(pdf) < 4 || string(pdf[:4]) != "%PDF" {
		t.Errorf("output does not start with %%PDF")
	}
}
