package model

// ConflictComment marks summary rows whose judgments could not be resolved
const ConflictComment = "Conflicting evidence."

// SummaryColumns is the fixed column order of a summary table
var SummaryColumns = []string{
	"expression", "full_form", "shorthand",
	"kboth", "kneither", "contrast", "stative", "negated_p", "Kp", "question", "fc",
	"can_express", "evidence", "comments",
}

// GroupKey identifies one summary row
type GroupKey struct {
	Expression string `json:"expression"`
	FullForm   string `json:"full_form"`
	Shorthand  string `json:"shorthand"`
}

// Less orders keys by expression, full form, then shorthand
func (k GroupKey) Less(o GroupKey) bool {
	if k.Expression != o.Expression {
		return k.Expression < o.Expression
	}
	if k.FullForm != o.FullForm {
		return k.FullForm < o.FullForm
	}
	return k.Shorthand < o.Shorthand
}

// SummaryRow is the aggregated verdict for one (expression, full_form, shorthand) group
type SummaryRow struct {
	GroupKey
	Properties Properties `json:"properties"`  // First non-null value per property within the group
	CanExpress Ternary    `json:"can_express"` // Resolved verdict
	Evidence   string     `json:"evidence"`    // Sorted, deduplicated, comma-joined evidence refs
	Comments   string     `json:"comments"`
}

// Values renders the row in SummaryColumns order. Null properties become nullMarker.
func (r SummaryRow) Values(nullMarker string) []string {
	out := make([]string, 0, len(SummaryColumns))
	out = append(out, r.Expression, r.FullForm, r.Shorthand)
	for _, col := range PropertyColumns {
		v := r.Properties.Get(col)
		if v == "" {
			v = nullMarker
		}
		out = append(out, v)
	}
	out = append(out, r.CanExpress.String(), r.Evidence, r.Comments)
	return out
}

// AggregateStats counts what happened to the evidence rows during one aggregation
type AggregateStats struct {
	EvidenceRows int `json:"evidence_rows"` // Rows read from the evidence table
	Unmapped     int `json:"unmapped"`      // Dropped: context ref has no shorthand
	Unkeyed      int `json:"unkeyed"`       // Dropped: no expression or full form after the join
	Groups       int `json:"groups"`        // Summary rows produced
	Conflicts    int `json:"conflicts"`     // Summary rows resolved to "?"
}

// CountRows records the number of groups and conflicts in rows
func (s *AggregateStats) CountRows(rows []SummaryRow) {
	s.Groups = len(rows)
	s.Conflicts = 0
	for _, row := range rows {
		if row.CanExpress == Uncertain {
			s.Conflicts++
		}
	}
}

// Summary is the result of one aggregation run
type Summary struct {
	Language string                      `json:"language,omitempty"`
	Rows     []SummaryRow                `json:"rows"`
	Warnings []HeterogeneousGroupWarning `json:"warnings,omitempty"`
	Stats    AggregateStats              `json:"stats"`
}

// HeterogeneousGroupWarning reports a group whose rows disagree on a context property.
// The summary still carries Reported (the first non-null value).
type HeterogeneousGroupWarning struct {
	Key      GroupKey `json:"key"`
	Property string   `json:"property"`
	Reported string   `json:"reported"`
	Seen     []string `json:"seen"` // Distinct non-null values in input order
}

// Observation is one evidence row after joining, mapping and normalization
type Observation struct {
	Key         GroupKey   `json:"key"`
	EvidenceRef string     `json:"evidence_ref"`
	Properties  Properties `json:"properties"`
	Judgment    Ternary    `json:"judgment"`
}
