package fetcher

import (
	"encoding/csv"
	"io"

	"github.com/jszwec/csvutil"
	"github.com/rotisserie/eris"
)

// DecodeCSV reads a CSV stream with a header row and decodes every record
// into T using its csv struct tags. Columns not mapped by T are ignored, so
// additive schema drift in the remote dataset does not break decoding.
func DecodeCSV[T any](r io.Reader) ([]T, error) {
	cr := csv.NewReader(r)
	cr.LazyQuotes = true

	dec, err := csvutil.NewDecoder(cr)
	if err != nil {
		if err == io.EOF {
			return nil, eris.New("csv: empty input, missing header row")
		}
		return nil, eris.Wrap(err, "csv: read header")
	}

	var rows []T
	for {
		var rec T
		if err := dec.Decode(&rec); err == io.EOF {
			break
		} else if err != nil {
			return nil, eris.Wrap(err, "csv: decode row")
		}
		rows = append(rows, rec)
	}

	return rows, nil
}
