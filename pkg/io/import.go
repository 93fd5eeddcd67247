package io

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/matzehuels/riverspiral/pkg/dataset"
	"github.com/matzehuels/riverspiral/pkg/errors"
)

// Column names of the CSV schema.
const (
	ColName      = "name"
	ColLength    = "length"
	ColDischarge = "discharge"
	ColContinent = "continent"
	ColAvgTemp   = "avg_temp"
)

// RequiredColumns lists the header names every CSV input must provide.
var RequiredColumns = []string{ColName, ColLength, ColDischarge, ColContinent, ColAvgTemp}

// ReadCSV decodes a CSV table with a header row from r.
//
// The returned dataset is independent of r. ReadCSV does not close r.
func ReadCSV(r io.Reader, source string) (*dataset.Dataset, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if stderrors.Is(err, io.EOF) {
		return nil, errors.New(errors.ErrCodeIngestion, "%s: missing header row", source)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeIngestion, err, "%s: read header", source)
	}

	cols, err := indexColumns(header)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeIngestion, err, "%s", source)
	}

	var records []dataset.Record
	for {
		row, err := cr.Read()
		if stderrors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeIngestion, err, "%s", source)
		}
		line, _ := cr.FieldPos(0)

		rec, err := parseRow(row, cols)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeIngestion, err, "%s: line %d", source, line)
		}
		records = append(records, rec)
	}

	return dataset.New(source, records)
}

// indexColumns maps each required column to its position in header.
func indexColumns(header []string) (map[string]int, error) {
	cols := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		if _, dup := cols[h]; !dup {
			cols[h] = i
		}
	}

	var missing []string
	for _, c := range RequiredColumns {
		if _, ok := cols[c]; !ok {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required column(s): %s", strings.Join(missing, ", "))
	}
	return cols, nil
}

func parseRow(row []string, cols map[string]int) (dataset.Record, error) {
	rec := dataset.Record{
		Name:      strings.TrimSpace(row[cols[ColName]]),
		Continent: strings.TrimSpace(row[cols[ColContinent]]),
	}

	numeric := []struct {
		col string
		dst *float64
	}{
		{ColLength, &rec.Length},
		{ColDischarge, &rec.Discharge},
		{ColAvgTemp, &rec.AvgTemp},
	}
	for _, f := range numeric {
		raw := strings.TrimSpace(row[cols[f.col]])
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return rec, fmt.Errorf("column %q: %q is not a number", f.col, raw)
		}
		*f.dst = v
	}

	if err := rec.Validate(); err != nil {
		return rec, err
	}
	return rec, nil
}

// ReadJSON decodes a JSON array of records from r.
//
// Every object must carry all of RequiredColumns as keys; unknown keys are
// ignored. Records are validated with the same rules as CSV input. ReadJSON
// does not close r.
func ReadJSON(r io.Reader, source string) (*dataset.Dataset, error) {
	var objs []map[string]json.RawMessage
	if err := json.NewDecoder(r).Decode(&objs); err != nil {
		return nil, errors.Wrap(errors.ErrCodeIngestion, err, "%s: decode", source)
	}

	records := make([]dataset.Record, 0, len(objs))
	for i, obj := range objs {
		rec, err := decodeRecord(obj)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeIngestion, err, "%s: record %d", source, i)
		}
		records = append(records, rec)
	}
	return dataset.New(source, records)
}

func decodeRecord(obj map[string]json.RawMessage) (dataset.Record, error) {
	var missing []string
	for _, key := range RequiredColumns {
		if v, ok := obj[key]; !ok || bytes.Equal(bytes.TrimSpace(v), []byte("null")) {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return dataset.Record{}, fmt.Errorf("missing required key(s): %s", strings.Join(missing, ", "))
	}

	var rec dataset.Record
	fields := []struct {
		key string
		dst any
	}{
		{ColName, &rec.Name},
		{ColLength, &rec.Length},
		{ColDischarge, &rec.Discharge},
		{ColContinent, &rec.Continent},
		{ColAvgTemp, &rec.AvgTemp},
	}
	for _, f := range fields {
		if err := json.Unmarshal(obj[f.key], f.dst); err != nil {
			return rec, fmt.Errorf("key %q: %w", f.key, err)
		}
	}
	rec.Name = strings.TrimSpace(rec.Name)
	rec.Continent = strings.TrimSpace(rec.Continent)

	if err := rec.Validate(); err != nil {
		return rec, err
	}
	return rec, nil
}

// ImportCSV reads the CSV file at path.
func ImportCSV(path string) (*dataset.Dataset, error) {
	return importFile(path, ReadCSV)
}

// ImportJSON reads the JSON file at path.
func ImportJSON(path string) (*dataset.Dataset, error) {
	return importFile(path, ReadJSON)
}

// Import reads path as JSON when it has a ".json" extension and as CSV otherwise.
func Import(path string) (*dataset.Dataset, error) {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return ImportJSON(path)
	}
	return ImportCSV(path)
}

func importFile(path string, read func(io.Reader, string) (*dataset.Dataset, error)) (*dataset.Dataset, error) {
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeIngestion, err, "open %s", path)
	}
	defer f.Close()
	return read(f, filepath.Base(path))
}
