package aggregate

import (
	"sort"
	"strings"

	"github.com/ppiankov/connectives/internal/model"
)

// Aggregator resolves raw evidence into per-group summary rows
type Aggregator struct{}

// NewAggregator creates a new aggregator
func NewAggregator() *Aggregator {
	return &Aggregator{}
}

// Aggregate joins, normalizes and groups the evidence of one language
func (a *Aggregator) Aggregate(contexts []model.Context, examples []model.Example, evidence []model.Evidence) *model.Summary {
	observations, stats := a.Join(contexts, examples, evidence)
	rows := a.Summarize(observations)

	stats.CountRows(rows)

	return &model.Summary{
		Rows:  rows,
		Stats: stats,
	}
}

// Join attaches example and context data to each evidence row, maps the
// context ref to its shorthand class and normalizes the judgment.
//
// The joins are left joins: when a ref repeats in the example or context
// table, the evidence row yields one observation per matching row, in table
// order. Unjoined contexts leave all properties null.
// Evidence whose context ref has no shorthand is dropped (Unmapped). An
// observation without an expression or full form has no group key and is
// dropped too (Unkeyed).
func (a *Aggregator) Join(contexts []model.Context, examples []model.Example, evidence []model.Evidence) ([]model.Observation, model.AggregateStats) {
	contextsByRef := make(map[string][]model.Context, len(contexts))
	for _, c := range contexts {
		if c.Ref != "" {
			contextsByRef[c.Ref] = append(contextsByRef[c.Ref], c)
		}
	}
	examplesByRef := make(map[string][]model.Example, len(examples))
	for _, ex := range examples {
		if ex.Ref != "" {
			examplesByRef[ex.Ref] = append(examplesByRef[ex.Ref], ex)
		}
	}

	stats := model.AggregateStats{EvidenceRows: len(evidence)}
	observations := make([]model.Observation, 0, len(evidence))

	for _, ev := range evidence {
		shorthand, ok := Shorthand(ev.Context)
		if !ok {
			stats.Unmapped++
			continue
		}

		matchedExamples := examplesByRef[ev.Example]
		if len(matchedExamples) == 0 {
			matchedExamples = []model.Example{{}}
		}
		matchedContexts := contextsByRef[ev.Context]
		if len(matchedContexts) == 0 {
			matchedContexts = []model.Context{{}}
		}
		judgment := NormalizeJudgment(ev.Judgment)

		for _, ex := range matchedExamples {
			if ex.Expression == "" || ex.FullForm == "" {
				stats.Unkeyed += len(matchedContexts)
				continue
			}
			for _, c := range matchedContexts {
				observations = append(observations, model.Observation{
					Key: model.GroupKey{
						Expression: ex.Expression,
						FullForm:   ex.FullForm,
						Shorthand:  shorthand,
					},
					EvidenceRef: ev.Ref,
					Properties:  c.Properties,
					Judgment:    judgment,
				})
			}
		}
	}

	return observations, stats
}

type group struct {
	properties model.Properties
	judgments  []model.Ternary
	refs       map[string]struct{}
}

// Summarize groups observations by key and resolves each group.
// Each property takes the first non-null value seen in the group; rows of
// one shorthand class are assumed to agree (see validate.Validator).
// Rows come back sorted by key.
func (a *Aggregator) Summarize(observations []model.Observation) []model.SummaryRow {
	groups := make(map[model.GroupKey]*group)
	var keys []model.GroupKey

	for _, obs := range observations {
		g, ok := groups[obs.Key]
		if !ok {
			g = &group{refs: make(map[string]struct{})}
			groups[obs.Key] = g
			keys = append(keys, obs.Key)
		}

		for _, col := range model.PropertyColumns {
			if g.properties.Get(col) == "" {
				g.properties.Set(col, obs.Properties.Get(col))
			}
		}
		g.judgments = append(g.judgments, obs.Judgment)
		if obs.EvidenceRef != "" {
			g.refs[obs.EvidenceRef] = struct{}{}
		}
	}

	sort.Slice(keys, func(i, j int) bool { return keys[i].Less(keys[j]) })

	rows := make([]model.SummaryRow, 0, len(keys))
	for _, key := range keys {
		g := groups[key]
		canExpress := Resolve(g.judgments)

		row := model.SummaryRow{
			GroupKey:   key,
			Properties: g.properties,
			CanExpress: canExpress,
			Evidence:   joinRefs(g.refs),
		}
		if canExpress == model.Uncertain {
			row.Comments = model.ConflictComment
		}
		rows = append(rows, row)
	}

	return rows
}

// joinRefs returns the refs sorted and comma-joined
func joinRefs(refs map[string]struct{}) string {
	sorted := make([]string, 0, len(refs))
	for ref := range refs {
		sorted = append(sorted, ref)
	}
	sort.Strings(sorted)
	return strings.Join(sorted, ",")
}
