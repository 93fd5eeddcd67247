package dataset

import (
	"github.com/aclements/go-moremath/stats"

	"github.com/matzehuels/riverspiral/pkg/errors"
)

// Ranges holds the dataset-wide bounds used for linear normalization.
type Ranges struct {
	MinTemp      float64 `json:"min_temp"`
	MaxTemp      float64 `json:"max_temp"`
	MinDischarge float64 `json:"min_discharge"`
	MaxDischarge float64 `json:"max_discharge"`
}

// ComputeRanges returns the minimum and maximum temperature and discharge
// across records. It returns an EMPTY_DATASET error when records is empty.
func ComputeRanges(records []Record) (Ranges, error) {
	if len(records) == 0 {
		return Ranges{}, errors.New(errors.ErrCodeEmptyDataset, "no records to compute ranges from")
	}

	temps := make([]float64, len(records))
	discharges := make([]float64, len(records))
	for i, r := range records {
		temps[i] = r.AvgTemp
		discharges[i] = r.Discharge
	}

	var rg Ranges
	rg.MinTemp, rg.MaxTemp = stats.Bounds(temps)
	rg.MinDischarge, rg.MaxDischarge = stats.Bounds(discharges)
	return rg, nil
}

// DegenerateTemp reports whether every record has the same temperature.
func (r Ranges) DegenerateTemp() bool { return r.MinTemp == r.MaxTemp }

// DegenerateDischarge reports whether every record has the same discharge.
func (r Ranges) DegenerateDischarge() bool { return r.MinDischarge == r.MaxDischarge }

// Contains reports whether rec lies within the ranges on both metrics.
func (r Ranges) Contains(rec Record) bool {
	return r.MinTemp <= rec.AvgTemp && rec.AvgTemp <= r.MaxTemp &&
		r.MinDischarge <= rec.Discharge && rec.Discharge <= r.MaxDischarge
}
