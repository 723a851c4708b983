package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/salt-nlp/workbank-cli/internal/config"
	"github.com/salt-nlp/workbank-cli/internal/fetcher"
	"github.com/salt-nlp/workbank-cli/internal/loader"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "workbank",
	Short: "WORKBank survey analysis pipeline",
	Long:  "Loads worker desire, expert capability, and task metadata tables from the WORKBank dataset, joins them into a combined analysis table, and serves statistics, exports, and a dashboard API.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

// newLoader wires the HTTP fetcher and dataset loader from config.
func newLoader() *loader.Loader {
	f := fetcher.NewHTTPFetcher(fetcher.HTTPOptions{
		UserAgent:  cfg.Fetch.UserAgent,
		Timeout:    cfg.Fetch.Timeout(),
		MaxRetries: cfg.Fetch.MaxRetries,
	})
	return loader.New(f, cfg.Dataset)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
