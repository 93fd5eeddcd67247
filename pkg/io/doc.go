// Package io provides import and export functions for river datasets.
//
// # Import Formats
//
// The primary input is CSV with a header row. The required columns are:
//
//	name,length,discharge,continent,avg_temp
//
// Column order is free, header names are matched case-insensitively after
// trimming whitespace, and extra columns are ignored. [ReadCSV] fails with an
// INGESTION_ERROR naming the line and column when:
//
//   - A required column is missing from the header
//   - A row has the wrong number of fields
//   - A numeric field is not a finite number
//   - Length or discharge is negative
//
// No partially loaded dataset is ever returned: malformed input aborts before
// any layout work starts, so a bad cell can never surface as a NaN-shaped
// hole in the rendered grid.
//
// JSON input is an array of records using the same field names:
//
//	[
//	  {"name": "Nile", "length": 6650, "discharge": 2830, "continent": "Africa", "avg_temp": 26}
//	]
//
// [Import] dispatches on the file extension (".json" → JSON, anything else → CSV).
//
// # Export
//
// [WriteJSON] and [ExportJSON] write a dataset in the JSON import format, so
// a cleaned CSV can be round-tripped through JSON.
package io
