package cli

import (
	"os"

	"github.com/ppiankov/connectives/internal/logger"
	"github.com/ppiankov/connectives/internal/model"
	"github.com/ppiankov/connectives/internal/pipeline"
	"github.com/spf13/cobra"
)

var onlyChecks []string

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Test cross-linguistic generalizations on the merged table",
	Long: `Check tests four generalizations against the merged summary table and
prints a report section for each:

  nand           no connective has the NAND profile
  negation       forms compatible with kneither involve negation
  juxtaposition  juxtaposition does not express disjunction
  xor            exclusive disjunctions are morphologically complex

A failing generalization lists its apparent counterexamples. The exit code
does not depend on the findings.

Example:
  connectives check
  connectives check --input merged.csv --only nand,xor`,
	Args: cobra.NoArgs,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return bindFlags(cmd.Flags(), map[string]string{
			"input": "input.merged",
		})
	},
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().String("input", "", "merged summary table (default merged_output_vertical.csv)")
	checkCmd.Flags().StringSliceVar(&onlyChecks, "only", nil, "run only these checks (nand, negation, juxtaposition, xor)")
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	names := make([]model.CheckName, 0, len(onlyChecks))
	for _, name := range onlyChecks {
		names = append(names, model.CheckName(name))
	}

	p := pipeline.NewPipeline(cfg, logger.ForRun("check"))
	results, err := p.Check(cfg.Input.Merged, names...)
	if err != nil {
		return err
	}

	return pipeline.NewRenderer(!noColor).RenderChecks(os.Stdout, results)
}
