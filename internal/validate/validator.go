package validate

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ppiankov/connectives/internal/errors"
	"github.com/ppiankov/connectives/internal/model"
)

// Validator checks that every summary group agrees on its context properties.
// The aggregator reports the first non-null value of each property; when
// rows of one group disagree that value hides a data problem, so it is
// reported here instead of being silently chosen.
type Validator struct {
	strict bool
}

// NewValidator creates a new validator. In strict mode Err returns an error
// for any heterogeneous group.
func NewValidator(strict bool) *Validator {
	return &Validator{strict: strict}
}

// Validate returns one warning per (group, property) with more than one
// distinct non-null value, ordered by group key then property column.
func (v *Validator) Validate(observations []model.Observation) []model.HeterogeneousGroupWarning {
	type seenValues struct {
		values []string
		set    map[string]struct{}
	}
	seen := make(map[model.GroupKey]map[string]*seenValues)
	var keys []model.GroupKey

	for _, obs := range observations {
		byProp, ok := seen[obs.Key]
		if !ok {
			byProp = make(map[string]*seenValues)
			seen[obs.Key] = byProp
			keys = append(keys, obs.Key)
		}
		for _, col := range model.PropertyColumns {
			val := obs.Properties.Get(col)
			if val == "" {
				continue
			}
			sv, ok := byProp[col]
			if !ok {
				sv = &seenValues{set: make(map[string]struct{})}
				byProp[col] = sv
			}
			if _, dup := sv.set[val]; !dup {
				sv.set[val] = struct{}{}
				sv.values = append(sv.values, val)
			}
		}
	}

	sort.Slice(keys, func(i, j int) bool { return keys[i].Less(keys[j]) })

	var warnings []model.HeterogeneousGroupWarning
	for _, key := range keys {
		for _, col := range model.PropertyColumns {
			sv, ok := seen[key][col]
			if !ok || len(sv.values) < 2 {
				continue
			}
			warnings = append(warnings, model.HeterogeneousGroupWarning{
				Key:      key,
				Property: col,
				Reported: sv.values[0],
				Seen:     sv.values,
			})
		}
	}
	return warnings
}

// Err returns an ErrHeterogeneousGroup error describing warnings when the
// validator is strict, nil otherwise.
func (v *Validator) Err(warnings []model.HeterogeneousGroupWarning) error {
	if !v.strict || len(warnings) == 0 {
		return nil
	}

	lines := make([]string, 0, len(warnings))
	for _, w := range warnings {
		lines = append(lines, Describe(w))
	}
	err := errors.Newf("%d heterogeneous group properties", len(warnings))
	err = errors.WithDetail(err, strings.Join(lines, "\n"))
	err = errors.WithHint(err, "fix the questionnaire or rerun without --strict to keep the first value")
	return errors.Mark(err, errors.ErrHeterogeneousGroup)
}

// Describe renders a warning for humans
func Describe(w model.HeterogeneousGroupWarning) string {
	return fmt.Sprintf("%s / %s / %s: %s has values %s (reporting %q)",
		w.Key.Expression, w.Key.FullForm, w.Key.Shorthand,
		w.Property, strings.Join(w.Seen, ", "), w.Reported)
}
