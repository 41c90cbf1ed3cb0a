package model

// CheckName identifies one generalization check
type CheckName string

const (
	CheckNAND          CheckName = "nand"          // No connective has the NAND profile
	CheckNegation      CheckName = "negation"      // kneither compatibility implies negation
	CheckJuxtaposition CheckName = "juxtaposition" // Juxtaposition never expresses disjunction
	CheckXOR           CheckName = "xor"           // Exclusive disjunction is morphologically complex
)

// AllChecks lists the checks in report order
var AllChecks = []CheckName{CheckNAND, CheckNegation, CheckJuxtaposition, CheckXOR}

// MergedRow is one row of the merged, cross-language summary table.
// All values are trimmed text; absent cells are "".
type MergedRow struct {
	SourceFile string `json:"source_file"`
	FullForm   string `json:"full_form"`
	CanExpress string `json:"can_express"`
	Kp         string `json:"Kp"`
	Kneither   string `json:"kneither"`
	Kboth      string `json:"kboth"`
	Shorthand  string `json:"shorthand"`
	Negation   string `json:"negation"`
	Question   string `json:"question"`
}

// MergedColumns are the columns the checker reads
var MergedColumns = []string{"source_file", "full_form", "can_express", "Kp", "kneither", "kboth", "shorthand", "negation", "question"}

// Finding is a (source file, form) pair reported by a check
type Finding struct {
	SourceFile string `json:"source_file"`
	FullForm   string `json:"full_form"`
	Shorthand  string `json:"shorthand,omitempty"` // Only set by row-level checks
}

// CheckResult is the outcome of one generalization check
type CheckResult struct {
	Name            CheckName `json:"name"`
	Title           string    `json:"title"`
	Holds           bool      `json:"holds"`
	Message         string    `json:"message"`                   // Holds confirmation or counterexample lead-in
	WithShorthand   bool      `json:"with_shorthand"`            // Findings carry a shorthand column
	Matches         []Finding `json:"matches,omitempty"`         // Forms identified by the check (XOR only)
	MatchesMessage  string    `json:"matches_message,omitempty"` // Lead-in for Matches
	Counterexamples []Finding `json:"counterexamples,omitempty"`
}

// SourceCoverage summarizes one language in a merged table
type SourceCoverage struct {
	SourceFile   string  `json:"source_file"`
	Rows         int     `json:"rows"`
	Forms        int     `json:"forms"`
	Conflicts    int     `json:"conflicts"`
	ConflictRate float64 `json:"conflict_rate"`
}

// Coverage summarizes a merged table
type Coverage struct {
	Sources           []SourceCoverage `json:"sources"`
	Rows              int              `json:"rows"`
	Forms             int              `json:"forms"`
	MeanRowsPerForm   float64          `json:"mean_rows_per_form"`
	MedianRowsPerForm float64          `json:"median_rows_per_form"`
}
