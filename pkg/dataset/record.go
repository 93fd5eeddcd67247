package dataset

import (
	"fmt"
	"slices"

	"github.com/matzehuels/riverspiral/pkg/errors"
)

// Record is a single river's attributes.
type Record struct {
	Name      string  `json:"name"`
	Length    float64 `json:"length"`    // km
	Discharge float64 `json:"discharge"` // m³/s
	AvgTemp   float64 `json:"avg_temp"`  // °C
	Continent string  `json:"continent"`
}

// Validate checks the numeric invariants of a record: length and discharge
// are finite and non-negative, temperature is finite.
func (r Record) Validate() error {
	if err := errors.ValidateNonNegative("length", r.Length); err != nil {
		return err
	}
	if err := errors.ValidateNonNegative("discharge", r.Discharge); err != nil {
		return err
	}
	return errors.ValidateFinite("avg_temp", r.AvgTemp)
}

// String returns a short human-readable description of the record.
func (r Record) String() string {
	return fmt.Sprintf("%s (%s, %.0f km)", r.Name, r.Continent, r.Length)
}

// Dataset is the owning collection of records loaded from a single source.
type Dataset struct {
	Source  string
	records []Record
}

// New creates a dataset from records. Every record is validated; the first
// failing record aborts construction with an INGESTION_ERROR naming its index.
func New(source string, records []Record) (*Dataset, error) {
	for i, r := range records {
		if err := r.Validate(); err != nil {
			return nil, errors.Wrap(errors.ErrCodeIngestion, err, "record %d (%s)", i, r.Name)
		}
	}
	return &Dataset{Source: source, records: slices.Clone(records)}, nil
}

// Len returns the number of records.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.records)
}

// Records returns a copy of the records in load order.
func (d *Dataset) Records() []Record {
	if d == nil {
		return nil
	}
	return slices.Clone(d.records)
}

// Continents returns the distinct continent names in order of first appearance.
func (d *Dataset) Continents() []string {
	if d == nil {
		return nil
	}
	seen := make(map[string]struct{})
	var out []string
	for _, r := range d.records {
		if _, ok := seen[r.Continent]; ok {
			continue
		}
		seen[r.Continent] = struct{}{}
		out = append(out, r.Continent)
	}
	return out
}
