package export

import (
	"encoding/json"
	"io"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"

	"github.com/salt-nlp/workbank-cli/internal/model"
)

// WriteJSON writes the combined table as indented JSON.
func WriteJSON(w io.Writer, rows []model.CombinedRow) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return eris.Wrap(enc.Encode(rows), "export: write json")
}

// WriteStatsJSON writes summary statistics as indented JSON.
func WriteStatsJSON(w io.Writer, stats model.Stats) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return eris.Wrap(enc.Encode(stats), "export: write stats json")
}

// WriteStatsYAML writes summary statistics as YAML.
func WriteStatsYAML(w io.Writer, stats model.Stats) error {
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(stats); err != nil {
		return eris.Wrap(err, "export: write stats yaml")
	}
	return eris.Wrap(enc.Close(), "export: close yaml encoder")
}
