package pipeline

import (
	"strings"
	"time"

	"github.com/ppiankov/connectives/internal/aggregate"
	"github.com/ppiankov/connectives/internal/cache"
	"github.com/ppiankov/connectives/internal/check"
	"github.com/ppiankov/connectives/internal/errors"
	"github.com/ppiankov/connectives/internal/extract"
	"github.com/ppiankov/connectives/internal/model"
	"github.com/ppiankov/connectives/internal/table"
	"github.com/ppiankov/connectives/internal/validate"
	"go.uber.org/zap"
)

// Pipeline orchestrates loading, aggregation, validation and checking
type Pipeline struct {
	loader     *table.Loader
	extractor  *extract.RecordExtractor
	aggregator *aggregate.Aggregator
	validator  *validate.Validator
	config     *model.Config
	log        *zap.SugaredLogger
}

// NewPipeline creates a new pipeline with the given configuration
func NewPipeline(cfg *model.Config, log *zap.SugaredLogger) *Pipeline {
	var c cache.Cache
	if cfg.Cache.Enabled {
		c = cache.NewMemoryCache(cfg.Cache.TTL, time.Minute)
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	return &Pipeline{
		loader:     table.NewLoader(c, log),
		extractor:  extract.NewRecordExtractor(cfg.Aggregate.EvidenceRefColumn),
		aggregator: aggregate.NewAggregator(),
		validator:  validate.NewValidator(cfg.Aggregate.Strict),
		config:     cfg,
		log:        log,
	}
}

// SummarizeLanguage aggregates the evidence of one language against the shared questionnaire.
// Nothing is written; see WriteSummary.
func (p *Pipeline) SummarizeLanguage(lang model.Language) (*model.Summary, error) {
	log := p.log.With("language", lang.Name)
	loader := p.loader.WithLogger(log)

	// 1. Load tables
	questionnaire, err := loadWithColumns(loader, p.config.Input.Questionnaire, extract.ContextColumns)
	if err != nil {
		return nil, errors.Wrap(err, "questionnaire")
	}
	examples, err := loadWithColumns(loader, lang.Examples, extract.ExampleColumns)
	if err != nil {
		return nil, errors.Wrap(err, "examples")
	}
	evidence, err := loadWithColumns(loader, lang.Evidence, p.extractor.EvidenceColumns())
	if err != nil {
		return nil, errors.Wrap(err, "evidence")
	}
	log.Debugw("tables loaded",
		"contexts", questionnaire.Len(),
		"examples", examples.Len(),
		"evidence", evidence.Len())

	// 2. Join, map shorthands, normalize judgments
	observations, stats := p.aggregator.Join(
		p.extractor.ExtractContexts(questionnaire),
		p.extractor.ExtractExamples(examples),
		p.extractor.ExtractEvidence(evidence),
	)

	// 3. Check that groups agree on their context properties
	warnings := p.validator.Validate(observations)
	for _, w := range warnings {
		log.Warnw("heterogeneous group",
			"expression", w.Key.Expression,
			"full_form", w.Key.FullForm,
			"shorthand", w.Key.Shorthand,
			"property", w.Property,
			"values", w.Seen,
			"reported", w.Reported)
	}
	if err := p.validator.Err(warnings); err != nil {
		return nil, err
	}

	// 4. Group and resolve
	rows := p.aggregator.Summarize(observations)
	stats.CountRows(rows)

	log.Infow("summary built",
		"evidence_rows", stats.EvidenceRows,
		"unmapped", stats.Unmapped,
		"unkeyed", stats.Unkeyed,
		"groups", stats.Groups,
		"conflicts", stats.Conflicts)

	return &model.Summary{
		Language: lang.Name,
		Rows:     rows,
		Warnings: warnings,
		Stats:    stats,
	}, nil
}

// loadWithColumns loads path and fails with ErrUnexpected when a required column is absent
func loadWithColumns(loader *table.Loader, path string, required []string) (*table.Table, error) {
	t, err := loader.Load(path)
	if err != nil {
		return nil, err
	}
	for _, col := range required {
		if !t.Has(col) {
			return nil, errors.Mark(
				errors.WithHintf(errors.Newf("%s lacks column %q", path, col),
					"required columns: %s", strings.Join(required, ", ")),
				errors.ErrUnexpected)
		}
	}
	return t, nil
}

// WriteSummary writes a summary table to path in the fixed column order
func (p *Pipeline) WriteSummary(summary *model.Summary, path string) error {
	rows := make([][]string, 0, len(summary.Rows))
	for _, row := range summary.Rows {
		rows = append(rows, row.Values(p.config.Output.NullMarker))
	}
	if err := table.WriteFile(path, model.SummaryColumns, rows); err != nil {
		return errors.Mark(errors.Wrapf(err, "write summary %s", path), errors.ErrUnexpected)
	}
	p.log.Infow("summary written", "path", path, "rows", len(rows))
	return nil
}

// LoadMerged reads the merged cross-language summary table
func (p *Pipeline) LoadMerged(path string) ([]model.MergedRow, error) {
	t, err := p.loader.Load(path)
	if err != nil {
		return nil, errors.Wrap(err, "merged summary")
	}
	for _, col := range model.MergedColumns {
		if !t.Has(col) {
			p.log.Warnw("merged summary lacks column, reading it as empty", "path", path, "column", col)
		}
	}
	return p.extractor.ExtractMerged(t), nil
}

// Check runs the named generalization checks (all when none are named) over the merged table
func (p *Pipeline) Check(path string, names ...model.CheckName) ([]model.CheckResult, error) {
	rows, err := p.LoadMerged(path)
	if err != nil {
		return nil, err
	}
	p.log.Debugw("merged summary loaded", "path", path, "rows", len(rows))

	results, err := check.RunAll(rows, names...)
	if err != nil {
		return nil, err
	}
	for _, r := range results {
		p.log.Debugw("check finished", "check", r.Name, "holds", r.Holds, "counterexamples", len(r.Counterexamples))
	}
	return results, nil
}

// Coverage computes per-language coverage statistics of the merged table
func (p *Pipeline) Coverage(path string) (model.Coverage, error) {
	rows, err := p.LoadMerged(path)
	if err != nil {
		return model.Coverage{}, err
	}
	return check.Coverage(rows), nil
}
