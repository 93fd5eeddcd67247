// Package dataset holds the river records an infographic is built from.
//
// A [Record] is one river: its name, length (km), discharge (m³/s), average
// temperature (°C), and the continent it belongs to. Records are immutable once
// loaded; a [Dataset] owns them and hands out copies so that derived views
// (continent groups, layouts, encodings) can never mutate the source data.
//
// # Ranges
//
// [ComputeRanges] makes a single pass over the dataset and returns the global
// minimum and maximum temperature and discharge used to normalize stroke
// color and width:
//
//	r, err := dataset.ComputeRanges(ds.Records())
//	if errors.Is(err, errors.ErrCodeEmptyDataset) {
//	    // nothing to normalize against
//	}
//	if r.DegenerateTemp() {
//	    // every river has the same temperature; the encoder falls back
//	    // to the low-end color
//	}
//
// Ranges are never NaN: an empty input returns an EMPTY_DATASET error instead.
package dataset
