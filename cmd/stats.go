package main

import (
	"fmt"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/salt-nlp/workbank-cli/internal/analysis"
	"github.com/salt-nlp/workbank-cli/internal/export"
)

var statsFormat string

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print summary statistics over the combined table",
	RunE: func(cmd *cobra.Command, _ []string) error {
		snap := newLoader().Load(cmd.Context())

		rows, err := analysis.Prepare(snap.Tables.Workers, snap.Tables.Experts, snap.Tables.Tasks)
		if err != nil {
			return eris.Wrap(err, "stats: prepare")
		}
		stats := analysis.Summarize(rows)

		switch statsFormat {
		case "text":
			p := message.NewPrinter(language.English)
			p.Printf("Source:                  %s\n", snap.Source)
			p.Printf("Total tasks:             %d\n", stats.TotalTasks)
			p.Printf("Total workers surveyed:  %d\n", stats.TotalWorkers)
			p.Printf("Avg automation desire:   %.1f/5.0\n", stats.AvgAutomationDesire)
			p.Printf("Avg AI capability:       %.1f/5.0\n", stats.AvgExpertCapability)
			p.Printf("Avg automation readiness: %.1f/5.0\n", stats.AvgAutomationReadiness)
			p.Printf("Desire-capability gap:   %+.1f\n", stats.DesireCapabilityGap())
			p.Printf("Unique occupations:      %d\n", stats.UniqueOccupations)
			p.Printf("Unique domains:          %d\n", stats.UniqueDomains)
			return nil
		case "json":
			return export.WriteStatsJSON(os.Stdout, stats)
		case "yaml":
			return export.WriteStatsYAML(os.Stdout, stats)
		default:
			return fmt.Errorf("stats: unknown format %q (text, json, yaml)", statsFormat)
		}
	},
}

func init() {
	statsCmd.Flags().StringVar(&statsFormat, "format", "text", "output format: text, json, or yaml")
	rootCmd.AddCommand(statsCmd)
}
