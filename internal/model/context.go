package model

// Context is a questionnaire item together with its logical properties.
// Property values are kept as text exactly as loaded; "" means null.
type Context struct {
	Ref        string     `json:"ref"`
	Properties Properties `json:"properties"`
}

// Properties are the logical flags of a discourse context
type Properties struct {
	Kboth    string `json:"kboth"`     // Both propositions hold
	Kneither string `json:"kneither"`  // Neither proposition holds
	Contrast string `json:"contrast"`  // Contrastive context
	Stative  string `json:"stative"`   // Stative (vs epistemic) context
	NegatedP string `json:"negated_p"` // First proposition negated
	Kp       string `json:"Kp"`        // Only the first proposition holds
	Question string `json:"question"`  // Interrogative context
	FC       string `json:"fc"`        // Free-choice context
}

// PropertyColumns lists the property column names in output order
var PropertyColumns = []string{"kboth", "kneither", "contrast", "stative", "negated_p", "Kp", "question", "fc"}

// Get returns a property by column name
func (p Properties) Get(column string) string {
	switch column {
	case "kboth":
		return p.Kboth
	case "kneither":
		return p.Kneither
	case "contrast":
		return p.Contrast
	case "stative":
		return p.Stative
	case "negated_p":
		return p.NegatedP
	case "Kp":
		return p.Kp
	case "question":
		return p.Question
	case "fc":
		return p.FC
	default:
		return ""
	}
}

// Set assigns a property by column name. Unknown columns are ignored.
func (p *Properties) Set(column, value string) {
	switch column {
	case "kboth":
		p.Kboth = value
	case "kneither":
		p.Kneither = value
	case "contrast":
		p.Contrast = value
	case "stative":
		p.Stative = value
	case "negated_p":
		p.NegatedP = value
	case "Kp":
		p.Kp = value
	case "question":
		p.Question = value
	case "fc":
		p.FC = value
	}
}

// Example is a linguistic form realizing an expression
type Example struct {
	Ref        string `json:"ref"`
	Expression string `json:"expression"` // Connective or strategy
	FullForm   string `json:"full_form"`  // Surface form, e.g. "either…or"
}

// Evidence is one raw judgment of an example in a context
type Evidence struct {
	Ref      string `json:"ref"`      // Row identifier, concatenated into the summary
	Example  string `json:"example"`  // -> Example.Ref
	Context  string `json:"context"`  // -> Context.Ref
	Judgment string `json:"judgment"` // Raw symbol: "felicitous", "#", "?", ""
}
