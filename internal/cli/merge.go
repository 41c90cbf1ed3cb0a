package cli

import (
	"fmt"

	"github.com/ppiankov/connectives/internal/logger"
	"github.com/ppiankov/connectives/internal/pipeline"
	"github.com/spf13/cobra"
)

// mergeCmd represents the merge command
var mergeCmd = &cobra.Command{
	Use:   "merge <summary>...",
	Short: "Stack summary tables into the merged table read by check",
	Long: `Merge concatenates summary tables vertically and prepends a source_file
column holding each table's base file name. Columns are the union of all
headers in first-seen order; cells a table does not have are left empty.

Extra columns such as a hand-annotated "negation" column are carried along.

Example:
  connectives merge summaries/*_summary.csv
  connectives merge Hausa_summary.csv Hindi_summary.csv --out merged.csv`,
	Args: cobra.MinimumNArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return bindFlags(cmd.Flags(), map[string]string{
			"out": "input.merged",
		})
	},
	RunE: runMerge,
}

func init() {
	rootCmd.AddCommand(mergeCmd)

	mergeCmd.Flags().String("out", "", "merged output path (default merged_output_vertical.csv)")
}

func runMerge(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log := logger.ForRun("merge")
	p := pipeline.NewPipeline(cfg, log)

	rows, err := p.WriteMerged(args, cfg.Input.Merged)
	if err != nil {
		return err
	}
	log.Infow("merged table written", "path", cfg.Input.Merged, "files", len(args), "rows", rows)

	fmt.Printf("✓ Merged %d rows from %d files into %s\n", rows, len(args), cfg.Input.Merged)
	return nil
}
