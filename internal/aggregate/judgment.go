package aggregate

import (
	"strings"

	"github.com/ppiankov/connectives/internal/model"
)

var (
	yesTokens  = map[string]struct{}{"felicitous": {}, "✓": {}}
	noTokens   = map[string]struct{}{"infelicitous": {}, "#": {}}
	nullTokens = map[string]struct{}{"": {}, "nan": {}, "none": {}}
)

// NormalizeJudgment maps a raw judgment symbol to a ternary value.
// It is total: unrecognized symbols count as expressible, and so does an
// empty cell (no rejection mark).
func NormalizeJudgment(raw string) model.Ternary {
	val := strings.ToLower(strings.TrimSpace(raw))

	if _, ok := yesTokens[val]; ok {
		return model.Expressible
	}
	if _, ok := noTokens[val]; ok {
		return model.Inexpressible
	}
	if _, ok := nullTokens[val]; ok {
		return model.Expressible
	}
	if strings.Contains(val, "?") || strings.Contains(val, "#/*") {
		return model.Uncertain
	}
	return model.Expressible
}

// Resolve collapses the judgments of one group into a single verdict.
// Any uncertain judgment, a mix of yes and no, or no judgments at all resolve to Uncertain.
func Resolve(judgments []model.Ternary) model.Ternary {
	var yes, no bool
	for _, j := range judgments {
		switch j {
		case model.Uncertain:
			return model.Uncertain
		case model.Expressible:
			yes = true
		case model.Inexpressible:
			no = true
		}
	}

	switch {
	case yes && no:
		return model.Uncertain
	case yes:
		return model.Expressible
	case no:
		return model.Inexpressible
	default:
		return model.Uncertain
	}
}
