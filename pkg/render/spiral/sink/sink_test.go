package sink

import (
	"testing"

	"github.com/matzehuels/riverspiral/pkg/dataset"
	"github.com/matzehuels/riverspiral/pkg/render/spiral"
	"github.com/matzehuels/riverspiral/pkg/render/spiral/encode"
	"github.com/matzehuels/riverspiral/pkg/render/spiral/layout"
	"github.com/matzehuels/riverspiral/pkg/render/spiral/ordering"
	"github.com/matzehuels/riverspiral/pkg/render/spiral/styles"
)

func testScene(t *testing.T) spiral.Scene {
	t.Helper()
	recs := []dataset.Record{
		{Name: "Nile", Length: 6650, Discharge: 2830, Continent: "Africa", AvgTemp: 26},
		{Name: "Congo", Length: 4700, Discharge: 41200, Continent: "Africa", AvgTemp: 25},
		{Name: "Amazon", Length: 6400, Discharge: 209000, Continent: "South America", AvgTemp: 27},
		{Name: "Tigris & Euphrates", Length: 1900, Discharge: 1014, Continent: "Asia", AvgTemp: 20},
	}
	groups := ordering.Group(recs, ordering.TieAlphabetical)
	l, err := layout.Compute(groups, layout.DefaultConfig(), 800)
	if err != nil {
		t.Fatalf("layout.Compute() error = %v", err)
	}
	rg, err := dataset.ComputeRanges(recs)
	if err != nil {
		t.Fatalf("ComputeRanges() error = %v", err)
	}
	enc, err := encode.New(rg, encode.DefaultConfig())
	if err != nil {
		t.Fatalf("encode.New() error = %v", err)
	}
	return spiral.Build(l, enc, styles.DefaultTheme(), spiral.DefaultTitle)
}
