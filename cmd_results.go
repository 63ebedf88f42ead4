package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/milk9111/skybound/common"
	"github.com/milk9111/skybound/storage"
)

var flagLimit int

var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "Show recent session results",
	Long: `List the most recent finished sessions, newest first.

Examples:
  skybound results
  skybound results --db ~/.skybound/results.db --limit 20`,
	Args: cobra.NoArgs,
	RunE: runResults,
}

func init() {
	resultsCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of results to show")
}

func runResults(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings(false)
	if err != nil {
		return err
	}
	if cfg.Results.DBPath == "" {
		return fmt.Errorf("no results database: set results.db_path or pass --db")
	}

	store, err := storage.Open(cfg.Results.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	results, err := store.RecentResults(flagLimit)
	if err != nil {
		return err
	}
	printResults(cmd.OutOrStdout(), results)
	return nil
}

func printResults(out io.Writer, results []storage.Result) {
	if len(results) == 0 {
		fmt.Fprintln(out, "No results recorded yet.")
		return
	}

	fmt.Fprintf(out, "  %-10s  %-10s  %-8s  %-6s  %s\n", "Level", "Outcome", "Time", "Health", "Date")
	fmt.Fprintf(out, "  %-10s  %-10s  %-8s  %-6s  %s\n", "-----", "-------", "----", "------", "----")
	for _, r := range results {
		played := common.TickDuration * time.Duration(r.Ticks)
		fmt.Fprintf(out, "  %-10s  %-10s  %-8s  %-6d  %s\n",
			r.Level, r.Outcome, played.Round(time.Second), r.HealthLeft, r.CreatedAt.Format("2006-01-02 15:04"))
	}
}
