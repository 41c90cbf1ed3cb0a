package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/ppiankov/connectives/internal/errors"
	"github.com/ppiankov/connectives/internal/logger"
	"github.com/ppiankov/connectives/internal/pipeline"
	"github.com/ppiankov/connectives/internal/worker"
	"github.com/spf13/cobra"
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <manifest>",
	Short: "Summarize several languages listed in a manifest",
	Long: `Batch aggregates several languages against one questionnaire:
- Read languages from the manifest, one "name,examples,evidence" line each
- Parse the questionnaire once and reuse it for every language
- Write <output-dir>/<name>_summary.csv per language
- Report a failing language and continue with the next

Relative paths in the manifest are resolved against the manifest's directory.

Example:
  connectives batch languages.txt
  connectives batch languages.txt --output-dir ./summaries --strict`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return bindFlags(cmd.Flags(), map[string]string{
			"questionnaire": "input.questionnaire",
			"output-dir":    "output.dir",
			"strict":        "aggregate.strict",
			"evidence-ref":  "aggregate.evidence_ref_column",
		})
	},
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().String("questionnaire", "", "context definitions table shared by all languages")
	batchCmd.Flags().String("output-dir", "", "output directory for summaries (default ./summaries)")
	batchCmd.Flags().String("evidence-ref", "", "evidence row identifier column (default ref)")
	batchCmd.Flags().Bool("strict", false, "fail a language when a group disagrees on a context property")
	batchCmd.Flags().Bool("no-cache", false, "re-read the questionnaire for every language")
}

func runBatch(cmd *cobra.Command, args []string) error {
	manifest := args[0]

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if noCache, _ := cmd.Flags().GetBool("no-cache"); noCache {
		cfg.Cache.Enabled = false
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	log := logger.ForRun("batch")
	log.Debugw("batch starting", "manifest", manifest, "output_dir", cfg.Output.Dir, "cache", cfg.Cache.Enabled)

	p := pipeline.NewPipeline(cfg, log)
	processor := worker.NewBatchProcessor(p, cfg.Output.Dir)

	results, err := processor.ProcessFile(ctx, manifest)
	if err != nil {
		return errors.Wrap(err, "read manifest")
	}

	renderer := pipeline.NewRenderer(!noColor)
	var first *worker.LanguageResult
	for _, result := range results {
		if result.Error != nil {
			if first == nil {
				first = result
			}
			fmt.Fprintf(os.Stdout, "✗ %s: %v\n", result.Language.Name, result.Error)
			continue
		}
		renderer.RenderSummary(os.Stdout, result.Summary, result.Path)
	}

	failed := worker.Failed(results)
	fmt.Fprintf(os.Stdout, "\n%d languages, %d succeeded, %d failed (output: %s)\n",
		len(results), len(results)-failed, failed, cfg.Output.Dir)

	if first != nil {
		return errors.Wrapf(first.Error, "%d of %d languages failed, first was %s", failed, len(results), first.Language.Name)
	}
	return nil
}
