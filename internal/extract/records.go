package extract

import (
	"strings"

	"github.com/ppiankov/connectives/internal/model"
	"github.com/ppiankov/connectives/internal/table"
)

// RecordExtractor turns loaded tables into typed records.
// Cells matching a null token read as "" (null); no other cleaning is applied
// except in ExtractMerged, which also trims.
type RecordExtractor struct {
	evidenceRefColumn string
	nulls             map[string]struct{}
}

// NewRecordExtractor creates an extractor. evidenceRefColumn names the
// evidence row identifier column ("ref" when empty).
func NewRecordExtractor(evidenceRefColumn string) *RecordExtractor {
	if evidenceRefColumn == "" {
		evidenceRefColumn = "ref"
	}
	nulls := make(map[string]struct{}, len(table.PandasNullTokens))
	for _, tok := range table.PandasNullTokens {
		nulls[tok] = struct{}{}
	}
	return &RecordExtractor{
		evidenceRefColumn: evidenceRefColumn,
		nulls:             nulls,
	}
}

// Key columns every table must carry. Context property columns are optional
// and read as null when absent.
var (
	ContextColumns = []string{"ref"}
	ExampleColumns = []string{"ref", "expression", "full_form"}
)

// EvidenceColumns returns the columns an evidence table must carry
func (e *RecordExtractor) EvidenceColumns() []string {
	return []string{e.evidenceRefColumn, "example", "context", "judgment"}
}

// ExtractContexts reads the questionnaire table
func (e *RecordExtractor) ExtractContexts(t *table.Table) []model.Context {
	contexts := make([]model.Context, 0, t.Len())
	for i := 0; i < t.Len(); i++ {
		c := model.Context{Ref: e.cell(t, i, "ref")}
		for _, col := range model.PropertyColumns {
			c.Properties.Set(col, e.cell(t, i, col))
		}
		contexts = append(contexts, c)
	}
	return contexts
}

// ExtractExamples reads an example table
func (e *RecordExtractor) ExtractExamples(t *table.Table) []model.Example {
	examples := make([]model.Example, 0, t.Len())
	for i := 0; i < t.Len(); i++ {
		examples = append(examples, model.Example{
			Ref:        e.cell(t, i, "ref"),
			Expression: e.cell(t, i, "expression"),
			FullForm:   e.cell(t, i, "full_form"),
		})
	}
	return examples
}

// ExtractEvidence reads an evidence table
func (e *RecordExtractor) ExtractEvidence(t *table.Table) []model.Evidence {
	evidence := make([]model.Evidence, 0, t.Len())
	for i := 0; i < t.Len(); i++ {
		evidence = append(evidence, model.Evidence{
			Ref:      e.cell(t, i, e.evidenceRefColumn),
			Example:  e.cell(t, i, "example"),
			Context:  e.cell(t, i, "context"),
			Judgment: e.cell(t, i, "judgment"),
		})
	}
	return evidence
}

// ExtractMerged reads the merged cross-language summary. Values are trimmed;
// absent columns and null cells read as "".
func (e *RecordExtractor) ExtractMerged(t *table.Table) []model.MergedRow {
	rows := make([]model.MergedRow, 0, t.Len())
	for i := 0; i < t.Len(); i++ {
		get := func(col string) string {
			return strings.TrimSpace(e.cell(t, i, col))
		}
		rows = append(rows, model.MergedRow{
			SourceFile: get("source_file"),
			FullForm:   get("full_form"),
			CanExpress: get("can_express"),
			Kp:         get("Kp"),
			Kneither:   get("kneither"),
			Kboth:      get("kboth"),
			Shorthand:  get("shorthand"),
			Negation:   get("negation"),
			Question:   get("question"),
		})
	}
	return rows
}

func (e *RecordExtractor) cell(t *table.Table, i int, col string) string {
	v := t.Get(i, col)
	if _, ok := e.nulls[strings.TrimSpace(v)]; ok {
		return ""
	}
	return v
}
