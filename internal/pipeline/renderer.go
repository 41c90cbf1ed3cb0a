package pipeline

import (
	"fmt"
	"io"
	"strings"

	"github.com/ppiankov/connectives/internal/model"
	"github.com/ppiankov/connectives/internal/validate"
	"github.com/pterm/pterm"
)

var separator = strings.Repeat("-", 70)

// Renderer prints human-readable reports
type Renderer struct{}

// NewRenderer creates a renderer. Without color, pterm styling is disabled globally.
func NewRenderer(color bool) *Renderer {
	if !color {
		pterm.DisableColor()
	}
	return &Renderer{}
}

// RenderChecks prints one section per check result
func (r *Renderer) RenderChecks(w io.Writer, results []model.CheckResult) error {
	for i, res := range results {
		fmt.Fprintf(w, "--- %d. Checking Generalization: %s ---\n", i+1, res.Title)

		if len(res.Matches) > 0 {
			fmt.Fprintln(w, res.MatchesMessage)
			if err := r.renderFindings(w, res.Matches, false); err != nil {
				return err
			}
			fmt.Fprintln(w)
		}

		fmt.Fprintln(w, res.Message)
		if len(res.Counterexamples) > 0 {
			if err := r.renderFindings(w, res.Counterexamples, res.WithShorthand); err != nil {
				return err
			}
		}
		fmt.Fprintln(w, separator)
	}
	return nil
}

func (r *Renderer) renderFindings(w io.Writer, findings []model.Finding, withShorthand bool) error {
	header := []string{"source_file", "full_form"}
	if withShorthand {
		header = append(header, "shorthand")
	}

	data := pterm.TableData{header}
	for _, f := range findings {
		row := []string{f.SourceFile, f.FullForm}
		if withShorthand {
			row = append(row, f.Shorthand)
		}
		data = append(data, row)
	}

	out, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return fmt.Errorf("render table: %w", err)
	}
	fmt.Fprintln(w, out)
	return nil
}

// RenderSummary prints what an aggregation run did
func (r *Renderer) RenderSummary(w io.Writer, summary *model.Summary, path string) {
	s := summary.Stats
	name := summary.Language
	if name == "" {
		name = "summary"
	}

	fmt.Fprintf(w, "✓ %s: %d groups (%d conflicting) from %d evidence rows\n", name, s.Groups, s.Conflicts, s.EvidenceRows)
	if s.Unmapped > 0 || s.Unkeyed > 0 {
		fmt.Fprintf(w, "  dropped: %d outside the study, %d without a form\n", s.Unmapped, s.Unkeyed)
	}
	for _, warning := range summary.Warnings {
		fmt.Fprintf(w, "  ⚠ %s\n", validate.Describe(warning))
	}
	if path != "" {
		fmt.Fprintf(w, "  written to %s\n", path)
	}
}

// RenderCoverage prints per-language coverage statistics
func (r *Renderer) RenderCoverage(w io.Writer, cov model.Coverage) error {
	data := pterm.TableData{{"source_file", "rows", "forms", "conflicts", "conflict_rate"}}
	for _, s := range cov.Sources {
		data = append(data, []string{
			s.SourceFile,
			fmt.Sprintf("%d", s.Rows),
			fmt.Sprintf("%d", s.Forms),
			fmt.Sprintf("%d", s.Conflicts),
			fmt.Sprintf("%.1f%%", s.ConflictRate*100),
		})
	}

	out, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return fmt.Errorf("render table: %w", err)
	}
	fmt.Fprintln(w, out)
	fmt.Fprintf(w, "\n%d rows, %d distinct forms\n", cov.Rows, cov.Forms)
	fmt.Fprintf(w, "rows per form: mean %.2f, median %.1f\n", cov.MeanRowsPerForm, cov.MedianRowsPerForm)
	return nil
}
