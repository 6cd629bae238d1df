// Package export serializes in-memory tables into downloadable encodings.
package export

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"io"
)

// ErrNoData is returned when there are no rows to export; no output is
// written in that case.
var ErrNoData = errors.New("no data to export")

// CSV writes a header row followed by the data rows. Column order is fixed
// by the caller and every row must match it; values containing commas,
// quotes, or newlines get standard CSV quoting.
func CSV(w io.Writer, columns []string, rows [][]string) error {
	if len(rows) == 0 {
		return ErrNoData
	}

	cw := csv.NewWriter(w)
	err := cw.Write(columns)
	if err != nil {
		return err
	}

	for _, row := range rows {
		err = cw.Write(row)
		if err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// JSON writes v with 2-space indentation.
func JSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
