// Package export serializes the combined analysis table and summary
// statistics to delimited text, JSON, XLSX, and YAML. The CSV form is a
// lossless round-trip of the combined schema: header row equal to the
// field names, empty cells for absent expert-side values.
package export

import (
	"encoding/csv"
	"io"

	"github.com/jszwec/csvutil"
	"github.com/rotisserie/eris"

	"github.com/salt-nlp/workbank-cli/internal/model"
)

// WriteCSV writes the combined table as CSV, header included even when the
// table is empty.
func WriteCSV(w io.Writer, rows []model.CombinedRow) error {
	cw := csv.NewWriter(w)
	enc := csvutil.NewEncoder(cw)

	if err := enc.EncodeHeader(model.CombinedRow{}); err != nil {
		return eris.Wrap(err, "export: write csv header")
	}
	for _, r := range rows {
		if err := enc.Encode(r); err != nil {
			return eris.Wrapf(err, "export: write csv row %s", r.TaskID)
		}
	}

	cw.Flush()
	return eris.Wrap(cw.Error(), "export: flush csv")
}

// ReadCSV parses a previously exported combined table. Empty expert-side
// cells come back as nil, matching what WriteCSV produced.
func ReadCSV(r io.Reader) ([]model.CombinedRow, error) {
	cr := csv.NewReader(r)

	dec, err := csvutil.NewDecoder(cr)
	if err != nil {
		if err == io.EOF {
			return nil, eris.New("export: csv input missing header row")
		}
		return nil, eris.Wrap(err, "export: read csv header")
	}

	var rows []model.CombinedRow
	for {
		var row model.CombinedRow
		if err := dec.Decode(&row); err == io.EOF {
			break
		} else if err != nil {
			return nil, eris.Wrap(err, "export: decode csv row")
		}
		rows = append(rows, row)
	}

	return rows, nil
}
