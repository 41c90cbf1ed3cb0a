package cli

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/ppiankov/connectives/internal/logger"
	"github.com/ppiankov/connectives/internal/model"
	"github.com/ppiankov/connectives/internal/pipeline"
	"github.com/spf13/cobra"
)

var languageName string

// summarizeCmd represents the summarize command
var summarizeCmd = &cobra.Command{
	Use:   "summarize",
	Short: "Aggregate one language's judgments into a summary table",
	Long: `Summarize joins a language's evidence with its examples and the shared
questionnaire, maps each context to its shorthand class, and resolves the
judgments of every (expression, full_form, shorthand) group into a single
can_express value:

  1  every judgment accepted the form
  0  every judgment rejected it
  ?  judgments were uncertain or conflicting

Rows are sorted by key and written with a fixed column order; null cells
are written as NaN. Inputs may be .csv or .xlsx.

Example:
  connectives summarize
  connectives summarize --examples Hausa_examples.csv --evidence Hausa_evidence.csv --out Hausa_summary.csv
  connectives summarize --strict`,
	Args: cobra.NoArgs,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return bindFlags(cmd.Flags(), map[string]string{
			"questionnaire": "input.questionnaire",
			"examples":      "input.examples",
			"evidence":      "input.evidence",
			"out":           "output.summary",
			"strict":        "aggregate.strict",
			"evidence-ref":  "aggregate.evidence_ref_column",
			"null-marker":   "output.null_marker",
		})
	},
	RunE: runSummarize,
}

func init() {
	rootCmd.AddCommand(summarizeCmd)

	// Input flags
	summarizeCmd.Flags().String("questionnaire", "", "context definitions table (default questionnaire_table.csv)")
	summarizeCmd.Flags().String("examples", "", "example table (default examples.csv)")
	summarizeCmd.Flags().String("evidence", "", "evidence table (default evidence.csv)")
	summarizeCmd.Flags().String("evidence-ref", "", "evidence row identifier column (default ref)")
	summarizeCmd.Flags().StringVar(&languageName, "name", "", "language label for logs (default: derived from the examples file)")

	// Output flags
	summarizeCmd.Flags().String("out", "", "summary output path (default summary_generated.csv)")
	summarizeCmd.Flags().String("null-marker", "", "text written for null cells (default NaN)")
	summarizeCmd.Flags().Bool("strict", false, "fail when a group disagrees on a context property")
}

func runSummarize(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	lang := model.Language{
		Name:     languageName,
		Examples: cfg.Input.Examples,
		Evidence: cfg.Input.Evidence,
	}
	if lang.Name == "" {
		lang.Name = languageFromPath(cfg.Input.Examples)
	}

	log := logger.ForRun("summarize")
	log.Debugw("summarizing",
		"questionnaire", cfg.Input.Questionnaire,
		"examples", lang.Examples,
		"evidence", lang.Evidence,
		"strict", cfg.Aggregate.Strict)

	p := pipeline.NewPipeline(cfg, log)

	summary, err := p.SummarizeLanguage(lang)
	if err != nil {
		return err
	}
	if err := p.WriteSummary(summary, cfg.Output.Summary); err != nil {
		return err
	}

	pipeline.NewRenderer(!noColor).RenderSummary(os.Stdout, summary, cfg.Output.Summary)
	return nil
}

// languageFromPath derives a language label from an input file name,
// e.g. "data/Hausa_examples.csv" -> "Hausa"
func languageFromPath(path string) string {
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if i := strings.LastIndex(name, "_"); i > 0 {
		return name[:i]
	}
	return name
}
