package main

import (
	"io"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/salt-nlp/workbank-cli/internal/analysis"
	"github.com/salt-nlp/workbank-cli/internal/export"
)

var (
	analyzeDomains     []string
	analyzeOccupations []string
	analyzeMinDesire   float64
	analyzeMaxDesire   float64
	analyzeSearch      string
	analyzeSort        string
	analyzeAscending   bool
	analyzeLimit       int
	analyzeOutput      string
	analyzeFormat      string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Build the combined analysis table",
	Long: `Aggregates worker responses per task, joins them with expert ratings and
task metadata, derives automation readiness and the desire-capability gap,
and writes the combined table.

Examples:
  # Full table as CSV to stdout
  workbank analyze

  # Healthcare tasks sorted by readiness, top 20, as JSON
  workbank analyze --domain Healthcare --sort readiness --limit 20 --format json

  # XLSX workbook
  workbank analyze --format xlsx --output combined.xlsx`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		snap := newLoader().Load(cmd.Context())

		rows, err := analysis.Prepare(snap.Tables.Workers, snap.Tables.Experts, snap.Tables.Tasks)
		if err != nil {
			return eris.Wrap(err, "analyze: prepare")
		}

		rows = analysis.Filter(rows, analysis.FilterOptions{
			Domains:     analyzeDomains,
			Occupations: analyzeOccupations,
			MinDesire:   analyzeMinDesire,
			MaxDesire:   analyzeMaxDesire,
			Search:      analyzeSearch,
		})

		if analyzeSort != "" {
			key, err := analysis.ParseSortKey(analyzeSort)
			if err != nil {
				return err
			}
			rows = analysis.SortRows(rows, key, !analyzeAscending)
		}

		if analyzeLimit > 0 && analyzeLimit < len(rows) {
			rows = rows[:analyzeLimit]
		}

		zap.L().Info("analysis prepared",
			zap.String("source", string(snap.Source)),
			zap.Int("rows", len(rows)),
		)

		w, closeFn, err := openOutput(analyzeOutput)
		if err != nil {
			return err
		}
		defer closeFn()

		switch analyzeFormat {
		case "csv":
			return export.WriteCSV(w, rows)
		case "json":
			return export.WriteJSON(w, rows)
		case "xlsx":
			return export.WriteXLSX(w, rows)
		default:
			return eris.Errorf("analyze: unknown format %q (csv, json, xlsx)", analyzeFormat)
		}
	},
}

func init() {
	analyzeCmd.Flags().StringSliceVar(&analyzeDomains, "domain", nil, "filter by domain (repeatable)")
	analyzeCmd.Flags().StringSliceVar(&analyzeOccupations, "occupation", nil, "filter by occupation (repeatable)")
	analyzeCmd.Flags().Float64Var(&analyzeMinDesire, "min-desire", 0, "minimum automation desire rating")
	analyzeCmd.Flags().Float64Var(&analyzeMaxDesire, "max-desire", 0, "maximum automation desire rating")
	analyzeCmd.Flags().StringVar(&analyzeSearch, "search", "", "substring match on task text")
	analyzeCmd.Flags().StringVar(&analyzeSort, "sort", "", "sort key: desire, capability, readiness, gap, workers")
	analyzeCmd.Flags().BoolVar(&analyzeAscending, "asc", false, "sort ascending (default descending)")
	analyzeCmd.Flags().IntVar(&analyzeLimit, "limit", 0, "max rows to write (0 = all)")
	analyzeCmd.Flags().StringVar(&analyzeOutput, "output", "", "output file (default: stdout)")
	analyzeCmd.Flags().StringVar(&analyzeFormat, "format", "csv", "output format: csv, json, or xlsx")
	rootCmd.AddCommand(analyzeCmd)
}

// openOutput returns the output writer and a close func. Stdout is never
// closed.
func openOutput(path string) (io.Writer, func(), error) {
	if path == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, eris.Wrapf(err, "create output file %s", path)
	}
	return f, func() { _ = f.Close() }, nil
}
