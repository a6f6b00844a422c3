package unilang

import (
	"encoding/csv"
	"io"

	"github.com/gocarina/gocsv"
)

type overlayRow struct {
	Code     string `csv:"code"`
	Internal string `csv:"internal"`
}

// LoadOverlayCSV parses an ops-supplied overlay table ("code,internal" with
// a header row) into mappings usable in a Registration. Row order is kept,
// so the file controls reverse-map tie-breaking the same way literal tables
// do.
func LoadOverlayCSV(input []byte, separator rune) ([]Mapping, error) {
	gocsv.SetCSVReader(func(in io.Reader) gocsv.CSVReader {
		r := csv.NewReader(in)
		r.Comma = separator
		return r
	})

	var rows []overlayRow
	if err := gocsv.UnmarshalBytes(input, &rows); err != nil {
		return nil, err
	}

	out := make([]Mapping, 0, len(rows))
	for _, row := range rows {
		out = append(out, Mapping{Code: row.Code, Internal: row.Internal})
	}
	return out, nil
}
