package check

import (
	"testing"

	"github.com/ppiankov/connectives/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func row(source, form string, mods ...func(*model.MergedRow)) model.MergedRow {
	r := model.MergedRow{SourceFile: source, FullForm: form}
	for _, m := range mods {
		m(&r)
	}
	return r
}

func can(v string) func(*model.MergedRow)       { return func(r *model.MergedRow) { r.CanExpress = v } }
func kp(v string) func(*model.MergedRow)        { return func(r *model.MergedRow) { r.Kp = v } }
func kboth(v string) func(*model.MergedRow)     { return func(r *model.MergedRow) { r.Kboth = v } }
func kneither(v string) func(*model.MergedRow)  { return func(r *model.MergedRow) { r.Kneither = v } }
func shorthand(v string) func(*model.MergedRow) { return func(r *model.MergedRow) { r.Shorthand = v } }
func negation(v string) func(*model.MergedRow)  { return func(r *model.MergedRow) { r.Negation = v } }
func question(v string) func(*model.MergedRow)  { return func(r *model.MergedRow) { r.Question = v } }

func TestNAND_SoleCounterexample(t *testing.T) {
	rows := []model.MergedRow{
		row("Toy.csv", "nand-form", can("1"), kp("1")),
		row("Toy.csv", "nand-form", can("1"), kneither("1"), shorthand("disj-nspk-epi")),
		row("Toy.csv", "nand-form", can("0"), kboth("1")),

		// Kp and kneither, but also kboth: not NAND
		row("Toy.csv", "or", can("1"), kp("1")),
		row("Toy.csv", "or", can("1"), kneither("1"), shorthand("disj-nspk-epi")),
		row("Toy.csv", "or", can("1"), kboth("1")),

		// kneither only inside the negative class
		row("Toy.csv", "neg-only", can("1"), kp("1")),
		row("Toy.csv", "neg-only", can("1"), kneither("1"), shorthand("negative")),

		// never Kp
		row("Toy.csv", "nor", can("1"), kneither("1"), shorthand("neither-sta")),
	}

	result := NAND(rows)
	assert.False(t, result.Holds)
	assert.Equal(t, []model.Finding{{SourceFile: "Toy.csv", FullForm: "nand-form"}}, result.Counterexamples)
}

func TestNAND_Holds(t *testing.T) {
	rows := []model.MergedRow{
		row("A.csv", "and", can("1"), kboth("1")),
		row("A.csv", "or", can("1"), kp("1")),
		row("A.csv", "or", can("?"), kneither("1"), shorthand("disj-nspk-epi")),
	}

	result := NAND(rows)
	assert.True(t, result.Holds)
	assert.Empty(t, result.Counterexamples)
	assert.Contains(t, result.Message, "HOLDS")
}

func TestNAND_ListsEveryLanguage(t *testing.T) {
	rows := []model.MergedRow{
		row("B.csv", "x", can("1"), kp("1"), kneither("1"), shorthand("neither-sta")),
		row("A.csv", "x", can("1"), kp("1")),
		row("A.csv", "x", can("1"), kneither("1"), shorthand("neither-epi")),
		row("A.csv", "x", can("0"), kboth("1")),
	}

	result := NAND(rows)
	assert.Equal(t, []model.Finding{
		{SourceFile: "A.csv", FullForm: "x"},
		{SourceFile: "B.csv", FullForm: "x"},
	}, result.Counterexamples)
}

func TestNegationForKneither(t *testing.T) {
	counter := row("Toy.csv", "nor", can("1"), kneither("1"), shorthand("neither-sta"), negation("neither"))
	fine := row("Toy.csv", "nor", can("1"), kneither("1"), shorthand("neither-sta"), negation("overt"))

	result := NegationForKneither([]model.MergedRow{counter})
	assert.False(t, result.Holds)
	assert.True(t, result.WithShorthand)
	assert.Equal(t, []model.Finding{{SourceFile: "Toy.csv", FullForm: "nor", Shorthand: "neither-sta"}}, result.Counterexamples)

	result = NegationForKneither([]model.MergedRow{fine})
	assert.True(t, result.Holds)
}

func TestNegationForKneither_Filters(t *testing.T) {
	rows := []model.MergedRow{
		row("Toy.csv", "a", can("0"), kneither("1"), shorthand("neither-sta"), negation("neither")),
		row("Toy.csv", "b", can("1"), kneither("0"), shorthand("neither-sta"), negation("neither")),
		row("Toy.csv", "c", can("1"), kneither("1"), shorthand("negative"), negation("neither")),
		row("Toy.csv", "d", can("?"), kneither("1"), shorthand("neither-epi"), negation("neither")),
	}

	assert.True(t, NegationForKneither(rows).Holds)
}

func TestJuxtapositionDisjunction(t *testing.T) {
	counter := row("Toy.csv", "juxtaposition", can("1"), kboth("0"), kneither("0"), question("0"), shorthand("disj-spk"))
	withKboth := row("Toy.csv", "juxtaposition", can("1"), kboth("1"), kneither("0"), question("0"), shorthand("conj-nocontrast-sta"))

	result := JuxtapositionDisjunction([]model.MergedRow{counter, withKboth})
	assert.False(t, result.Holds)
	assert.Equal(t, []model.Finding{{SourceFile: "Toy.csv", FullForm: "juxtaposition", Shorthand: "disj-spk"}}, result.Counterexamples)

	assert.True(t, JuxtapositionDisjunction([]model.MergedRow{withKboth}).Holds)
}

func TestJuxtapositionDisjunction_EmptyConnective(t *testing.T) {
	rows := []model.MergedRow{
		row("Toy.csv", "∅", can("1"), kboth("0"), kneither("0"), question("0"), shorthand("disj-nspk-epi")),
		row("Toy.csv", "∅", can("1"), kboth("0"), kneither("0"), question("1"), shorthand("disj-nspk-q-exc")),
		row("Toy.csv", "ko", can("1"), kboth("0"), kneither("0"), question("0"), shorthand("disj-spk")),
	}

	result := JuxtapositionDisjunction(rows)
	require.Len(t, result.Counterexamples, 1)
	assert.Equal(t, "∅", result.Counterexamples[0].FullForm)
	assert.Equal(t, "disj-nspk-epi", result.Counterexamples[0].Shorthand)
}

func TestXORComplexity_SimpleAndComplex(t *testing.T) {
	rows := []model.MergedRow{
		row("Toy.csv", "X", kboth("?"), can("0")),
		row("Toy.csv", "X", can("1"), kboth("0"), kneither("0")),
		row("Toy.csv", "either…or", kboth("?"), can("0")),
		row("Toy.csv", "either…or", can("1"), kboth("0"), kneither("0")),
	}

	result := XORComplexity(rows)
	assert.False(t, result.Holds)
	assert.Equal(t, []model.Finding{
		{SourceFile: "Toy.csv", FullForm: "X"},
		{SourceFile: "Toy.csv", FullForm: "either…or"},
	}, result.Matches)
	assert.Equal(t, []model.Finding{{SourceFile: "Toy.csv", FullForm: "X"}}, result.Counterexamples)
}

func TestXORComplexity_ComplexOnly(t *testing.T) {
	rows := []model.MergedRow{
		row("Toy.csv", "either…or", kboth("?"), can("0")),
		row("Toy.csv", "either…or", can("1"), kboth("0"), kneither("0")),
		row("Toy.csv", "ya-da", kboth("?"), can("0")),
		row("Toy.csv", "ya-da", can("1"), kboth("0"), kneither("0")),
	}

	result := XORComplexity(rows)
	assert.True(t, result.Holds)
	assert.Len(t, result.Matches, 2)
	assert.Empty(t, result.Counterexamples)
}

func TestXORComplexity_NotExclusive(t *testing.T) {
	rows := []model.MergedRow{
		// accepted under kboth: inclusive
		row("Toy.csv", "or", kboth("?"), can("0")),
		row("Toy.csv", "or", can("1"), kboth("0"), kneither("0")),
		row("Toy.csv", "or", can("1"), kboth("1"), kneither("0")),
		// accepted under kneither
		row("Toy.csv", "nor", kboth("?"), can("0")),
		row("Toy.csv", "nor", can("1"), kboth("0"), kneither("1")),
		// never accepted anywhere
		row("Toy.csv", "never", kboth("?"), can("0")),
		row("Toy.csv", "never", can("0"), kboth("0"), kneither("0")),
		// no rejection under uncertain kboth
		row("Toy.csv", "ko", kboth("?"), can("?")),
		row("Toy.csv", "ko", can("1"), kboth("0"), kneither("0")),
	}

	result := XORComplexity(rows)
	assert.True(t, result.Holds)
	assert.Empty(t, result.Matches)
	assert.Contains(t, result.Message, "No connectives")
}

func TestIsSimpleForm(t *testing.T) {
	assert.True(t, IsSimpleForm("X"))
	assert.True(t, IsSimpleForm("yoxsa"))
	assert.False(t, IsSimpleForm("either…or"))
	assert.False(t, IsSimpleForm("ya-da"))
	assert.False(t, IsSimpleForm("ya da"))
}

func TestRunAll(t *testing.T) {
	results, err := RunAll(nil)
	require.NoError(t, err)
	require.Len(t, results, 4)
	for i, name := range model.AllChecks {
		assert.Equal(t, name, results[i].Name)
		assert.True(t, results[i].Holds, "empty table has no counterexamples")
	}

	results, err = RunAll(nil, model.CheckXOR, model.CheckNAND)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, model.CheckNAND, results[0].Name, "report order is fixed")
	assert.Equal(t, model.CheckXOR, results[1].Name)

	_, err = RunAll(nil, "nor")
	assert.Error(t, err)
}

func TestChecks_EmptyCellsNeverMatch(t *testing.T) {
	rows := []model.MergedRow{
		row("", "juxtaposition"),
		row("", ""),
	}
	results, err := RunAll(rows)
	require.NoError(t, err)
	for _, r := range results {
		assert.True(t, r.Holds, r.Title)
	}
}

func TestCoverage(t *testing.T) {
	rows := []model.MergedRow{
		row("A.csv", "da", can("1")),
		row("A.csv", "da", can("?")),
		row("A.csv", "ko", can("0")),
		row("B.csv", "ve", can("?")),
	}

	cov := Coverage(rows)
	assert.Equal(t, 4, cov.Rows)
	assert.Equal(t, 3, cov.Forms)
	require.Len(t, cov.Sources, 2)
	assert.Equal(t, model.SourceCoverage{SourceFile: "A.csv", Rows: 3, Forms: 2, Conflicts: 1, ConflictRate: 1.0 / 3.0}, cov.Sources[0])
	assert.Equal(t, 1.0, cov.Sources[1].ConflictRate)
	assert.InDelta(t, 4.0/3.0, cov.MeanRowsPerForm, 1e-9)
	assert.Equal(t, 1.0, cov.MedianRowsPerForm)
}

func TestCoverage_Empty(t *testing.T) {
	cov := Coverage(nil)
	assert.Equal(t, 0, cov.Rows)
	assert.Empty(t, cov.Sources)
	assert.Equal(t, 0.0, cov.MeanRowsPerForm)
}
