package dataset

import (
	"testing"

	"github.com/matzehuels/riverspiral/pkg/errors"
)

func TestComputeRanges(t *testing.T) {
	r, err := ComputeRanges(sampleRecords())
	if err != nil {
		t.Fatalf("ComputeRanges() error: %v", err)
	}

	want := Ranges{MinTemp: 25, MaxTemp: 27, MinDischarge: 2830, MaxDischarge: 209000}
	if r != want {
		t.Errorf("ComputeRanges() = %+v, want %+v", r, want)
	}
}

func TestComputeRangesContainsEveryRecord(t *testing.T) {
	recs := append(sampleRecords(),
		Record{Name: "Lena", Length: 4400, Discharge: 17000, Continent: "Asia", AvgTemp: -3},
		Record{Name: "Thames", Length: 346, Discharge: 65.8, Continent: "Europe", AvgTemp: 11},
	)

	r, err := ComputeRanges(recs)
	if err != nil {
		t.Fatalf("ComputeRanges() error: %v", err)
	}
	for _, rec := range recs {
		if !r.Contains(rec) {
			t.Errorf("ranges %+v do not contain %s", r, rec)
		}
	}
	if r.MinTemp != -3 {
		t.Errorf("MinTemp = %v, want -3", r.MinTemp)
	}
	if r.MinDischarge != 65.8 {
		t.Errorf("MinDischarge = %v, want 65.8", r.MinDischarge)
	}
}

func TestComputeRangesEmpty(t *testing.T) {
	_, err := ComputeRanges(nil)
	if err == nil {
		t.Fatal("expected error for empty dataset")
	}
	if !errors.Is(err, errors.ErrCodeEmptyDataset) {
		t.Errorf("code = %v, want %v", errors.GetCode(err), errors.ErrCodeEmptyDataset)
	}
}

func TestRangesDegenerate(t *testing.T) {
	tests := []struct {
		name          string
		records       []Record
		wantTemp      bool
		wantDischarge bool
	}{
		{
			name:    "varied",
			records: sampleRecords(),
		},
		{
			name:          "single record",
			records:       sampleRecords()[:1],
			wantTemp:      true,
			wantDischarge: true,
		},
		{
			name: "equal temperatures",
			records: []Record{
				{Name: "a", AvgTemp: 10, Discharge: 1},
				{Name: "b", AvgTemp: 10, Discharge: 2},
			},
			wantTemp: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := ComputeRanges(tt.records)
			if err != nil {
				t.Fatalf("ComputeRanges() error: %v", err)
			}
			if got := r.DegenerateTemp(); got != tt.wantTemp {
				t.Errorf("DegenerateTemp() = %v, want %v", got, tt.wantTemp)
			}
			if got := r.DegenerateDischarge(); got != tt.wantDischarge {
				t.Errorf("DegenerateDischarge() = %v, want %v", got, tt.wantDischarge)
			}
		})
	}
}
