package check

import (
	"sort"

	"github.com/montanaflynn/stats"
	"github.com/ppiankov/connectives/internal/model"
)

// Coverage summarizes how much judgment data each language contributes
func Coverage(rows []model.MergedRow) model.Coverage {
	type acc struct {
		rows      int
		conflicts int
		forms     map[string]struct{}
	}
	bySource := make(map[string]*acc)
	rowsPerForm := make(map[string]int)

	for _, r := range rows {
		a, ok := bySource[r.SourceFile]
		if !ok {
			a = &acc{forms: make(map[string]struct{})}
			bySource[r.SourceFile] = a
		}
		a.rows++
		a.forms[r.FullForm] = struct{}{}
		if r.CanExpress == uncertain {
			a.conflicts++
		}
		rowsPerForm[r.FullForm]++
	}

	cov := model.Coverage{Rows: len(rows), Forms: len(rowsPerForm)}
	for source, a := range bySource {
		cov.Sources = append(cov.Sources, model.SourceCoverage{
			SourceFile:   source,
			Rows:         a.rows,
			Forms:        len(a.forms),
			Conflicts:    a.conflicts,
			ConflictRate: float64(a.conflicts) / float64(a.rows),
		})
	}
	sort.Slice(cov.Sources, func(i, j int) bool { return cov.Sources[i].SourceFile < cov.Sources[j].SourceFile })

	counts := make(stats.Float64Data, 0, len(rowsPerForm))
	for _, n := range rowsPerForm {
		counts = append(counts, float64(n))
	}
	if len(counts) > 0 {
		// Errors only occur for empty input
		cov.MeanRowsPerForm, _ = counts.Mean()
		cov.MedianRowsPerForm, _ = counts.Median()
	}

	return cov
}
