package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/riverspiral/pkg/dataset"
)

// WriteJSON encodes the dataset's records as an indented JSON array.
// The output can be re-imported with [ReadJSON].
func WriteJSON(ds *dataset.Dataset, w io.Writer) error {
	records := ds.Records()
	if records == nil {
		records = []dataset.Record{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes the dataset as JSON to the file at path.
func ExportJSON(ds *dataset.Dataset, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteJSON(ds, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
