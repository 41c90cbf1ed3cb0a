package cli

import (
	"os"

	"github.com/ppiankov/connectives/internal/logger"
	"github.com/ppiankov/connectives/internal/pipeline"
	"github.com/spf13/cobra"
)

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Report per-language coverage of the merged table",
	Long: `Stats prints, for every source file of the merged table, its row count,
distinct forms and the share of conflicting (?) verdicts, followed by the
mean and median number of rows per form across the dataset.

Example:
  connectives stats
  connectives stats --input merged.csv`,
	Args: cobra.NoArgs,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return bindFlags(cmd.Flags(), map[string]string{
			"input": "input.merged",
		})
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		p := pipeline.NewPipeline(cfg, logger.ForRun("stats"))
		cov, err := p.Coverage(cfg.Input.Merged)
		if err != nil {
			return err
		}
		return pipeline.NewRenderer(!noColor).RenderCoverage(os.Stdout, cov)
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)

	statsCmd.Flags().String("input", "", "merged summary table (default merged_output_vertical.csv)")
}
