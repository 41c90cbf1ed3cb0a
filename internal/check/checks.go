// Package check tests cross-linguistic generalizations against a merged
// summary table. Every check is a pure function of the rows.
package check

import (
	"sort"
	"strings"

	"github.com/ppiankov/connectives/internal/errors"
	"github.com/ppiankov/connectives/internal/model"
)

var (
	yes       = model.Expressible.String()
	no        = model.Inexpressible.String()
	uncertain = model.Uncertain.String()
)

// juxtapositionForms are the full forms that mark a bare juxtaposition
var juxtapositionForms = map[string]struct{}{"juxtaposition": {}, "∅": {}}

// Func is a generalization check
type Func func(rows []model.MergedRow) model.CheckResult

var registry = map[model.CheckName]Func{
	model.CheckNAND:          NAND,
	model.CheckNegation:      NegationForKneither,
	model.CheckJuxtaposition: JuxtapositionDisjunction,
	model.CheckXOR:           XORComplexity,
}

// RunAll runs the named checks in report order. No names means all checks.
func RunAll(rows []model.MergedRow, names ...model.CheckName) ([]model.CheckResult, error) {
	if len(names) == 0 {
		names = model.AllChecks
	}
	want := make(map[model.CheckName]bool, len(names))
	for _, name := range names {
		if _, ok := registry[name]; !ok {
			return nil, errors.WithHintf(errors.Newf("unknown check %q", name),
				"available checks: nand, negation, juxtaposition, xor")
		}
		want[name] = true
	}

	var results []model.CheckResult
	for _, name := range model.AllChecks {
		if want[name] {
			results = append(results, registry[name](rows))
		}
	}
	return results, nil
}

// NAND looks for forms compatible with Kp and with kneither (outside the
// "negative" class) yet never compatible with kboth.
func NAND(rows []model.MergedRow) model.CheckResult {
	result := model.CheckResult{
		Name:  model.CheckNAND,
		Title: "No NAND connectives",
	}

	withKp := formsWhere(rows, func(r model.MergedRow) bool {
		return r.CanExpress == yes && r.Kp == yes
	})
	withKneither := formsWhere(rows, func(r model.MergedRow) bool {
		return r.CanExpress == yes && r.Kneither == yes && r.Shorthand != "negative"
	})
	withKboth := formsWhere(rows, func(r model.MergedRow) bool {
		return r.CanExpress == yes && r.Kboth == yes
	})

	nand := make(map[string]struct{})
	for form := range withKp {
		_, kneither := withKneither[form]
		_, kboth := withKboth[form]
		if kneither && !kboth {
			nand[form] = struct{}{}
		}
	}

	if len(nand) == 0 {
		result.Holds = true
		result.Message = "Generalization HOLDS: no full form expresses NAND."
		return result
	}

	result.Message = "Apparent counterexamples. These forms can express NAND:"
	result.Counterexamples = formFindings(rows, nand)
	return result
}

// NegationForKneither requires every form accepted in a kneither context
// (outside the "negative" class) to involve morphosyntactic negation.
func NegationForKneither(rows []model.MergedRow) model.CheckResult {
	result := model.CheckResult{
		Name:          model.CheckNegation,
		Title:         "NOR implies morphosyntactic negation",
		WithShorthand: true,
	}

	var counter []model.MergedRow
	for _, r := range rows {
		if r.CanExpress == yes && r.Kneither == yes && r.Shorthand != "negative" && r.Negation == "neither" {
			counter = append(counter, r)
		}
	}

	if len(counter) == 0 {
		result.Holds = true
		result.Message = "Generalization HOLDS: every form compatible with kneither=1 involves negation."
		return result
	}

	result.Message = "Apparent counterexamples:"
	result.Counterexamples = rowFindings(counter)
	return result
}

// JuxtapositionDisjunction requires juxtaposition never to be accepted in a
// disjunctive, non-question context (kboth=0, kneither=0, question=0).
func JuxtapositionDisjunction(rows []model.MergedRow) model.CheckResult {
	result := model.CheckResult{
		Name:          model.CheckJuxtaposition,
		Title:         "Juxtaposition and disjunction",
		WithShorthand: true,
	}

	var counter []model.MergedRow
	for _, r := range rows {
		if _, ok := juxtapositionForms[r.FullForm]; !ok {
			continue
		}
		if r.CanExpress == yes && r.Kboth == no && r.Kneither == no && r.Question == no {
			counter = append(counter, r)
		}
	}

	if len(counter) == 0 {
		result.Holds = true
		result.Message = "Generalization HOLDS: juxtaposition does not express disjunction in this dataset."
		return result
	}

	result.Message = "Cases where juxtaposition expresses disjunction:"
	result.Counterexamples = rowFindings(counter)
	return result
}

// XORComplexity identifies exclusive disjunctions and requires them to be
// morphologically complex.
//
// A candidate form is rejected in at least one kboth="?" context. It
// qualifies as exclusive when it is accepted somewhere and every accepted
// row has kboth=0 and kneither=0. A qualifying form is simple when its text
// has no space, ellipsis or hyphen.
func XORComplexity(rows []model.MergedRow) model.CheckResult {
	result := model.CheckResult{
		Name:  model.CheckXOR,
		Title: "Morphological complexity of XOR",
	}

	candidates := formsWhere(rows, func(r model.MergedRow) bool {
		return r.Kboth == uncertain && r.CanExpress == no
	})

	accepted := make(map[string]int)
	inclusive := make(map[string]bool)
	for _, r := range rows {
		if _, ok := candidates[r.FullForm]; !ok || r.CanExpress != yes {
			continue
		}
		accepted[r.FullForm]++
		if r.Kboth != no || r.Kneither != no {
			inclusive[r.FullForm] = true
		}
	}

	exclusive := make(map[string]struct{})
	simple := make(map[string]struct{})
	for form := range candidates {
		if accepted[form] == 0 || inclusive[form] {
			continue
		}
		exclusive[form] = struct{}{}
		if IsSimpleForm(form) {
			simple[form] = struct{}{}
		}
	}

	if len(exclusive) == 0 {
		result.Holds = true
		result.Message = "No connectives match the strict exclusive disjunction definition."
		return result
	}

	result.MatchesMessage = "Exclusive disjunction connectives:"
	result.Matches = formFindings(rows, exclusive)

	if len(simple) == 0 {
		result.Holds = true
		result.Message = "Generalization HOLDS: all identified exclusive disjunctions appear morphologically complex."
		return result
	}

	result.Message = "Apparent counterexamples. These exclusive disjunctions appear morphologically simple:"
	result.Counterexamples = formFindings(rows, simple)
	return result
}

// IsSimpleForm reports whether a full form has no space, ellipsis or hyphen
func IsSimpleForm(form string) bool {
	return !strings.ContainsAny(form, " …-")
}

// formsWhere collects the full forms of rows matching pred
func formsWhere(rows []model.MergedRow, pred func(model.MergedRow) bool) map[string]struct{} {
	forms := make(map[string]struct{})
	for _, r := range rows {
		if pred(r) {
			forms[r.FullForm] = struct{}{}
		}
	}
	return forms
}

// formFindings lists the distinct (source_file, full_form) pairs of rows whose form is in forms
func formFindings(rows []model.MergedRow, forms map[string]struct{}) []model.Finding {
	var matched []model.MergedRow
	for _, r := range rows {
		if _, ok := forms[r.FullForm]; ok {
			matched = append(matched, model.MergedRow{SourceFile: r.SourceFile, FullForm: r.FullForm})
		}
	}
	return rowFindings(matched)
}

// rowFindings lists distinct (source_file, full_form, shorthand) triples, sorted
func rowFindings(rows []model.MergedRow) []model.Finding {
	seen := make(map[model.Finding]struct{})
	var findings []model.Finding
	for _, r := range rows {
		f := model.Finding{SourceFile: r.SourceFile, FullForm: r.FullForm, Shorthand: r.Shorthand}
		if _, dup := seen[f]; dup {
			continue
		}
		seen[f] = struct{}{}
		findings = append(findings, f)
	}

	sort.Slice(findings, func(i, j int) bool {
		a, b := findings[i], findings[j]
		if a.SourceFile != b.SourceFile {
			return a.SourceFile < b.SourceFile
		}
		if a.FullForm != b.FullForm {
			return a.FullForm < b.FullForm
		}
		return a.Shorthand < b.Shorthand
	})
	return findings
}
