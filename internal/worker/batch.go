package worker

import (
	"bufio"
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/ppiankov/connectives/internal/errors"
	"github.com/ppiankov/connectives/internal/logger"
	"github.com/ppiankov/connectives/internal/model"
)

// SummaryFileSuffix is appended to a language name to form its output file
const SummaryFileSuffix = "_summary.csv"

// Summarizer defines the interface for aggregating one language
type Summarizer interface {
	SummarizeLanguage(lang model.Language) (*model.Summary, error)
	WriteSummary(summary *model.Summary, path string) error
}

// LanguageJob aggregates one language and writes its summary table
type LanguageJob struct {
	Language   model.Language
	Path       string
	Summarizer Summarizer
}

// Execute executes the language job
func (j *LanguageJob) Execute(ctx context.Context) Result {
	summary, err := j.Summarizer.SummarizeLanguage(j.Language)
	if err != nil {
		return &LanguageResult{Language: j.Language, Error: err}
	}
	if err := j.Summarizer.WriteSummary(summary, j.Path); err != nil {
		return &LanguageResult{Language: j.Language, Summary: summary, Error: err}
	}
	return &LanguageResult{
		Language: j.Language,
		Path:     j.Path,
		Summary:  summary,
	}
}

// LanguageResult represents the result of a language job
type LanguageResult struct {
	Language model.Language
	Path     string // Empty unless the summary was written
	Summary  *model.Summary
	Error    error
}

// GetError returns the error from the language result
func (r *LanguageResult) GetError() error {
	return r.Error
}

// BatchProcessor aggregates several languages against one questionnaire.
// Languages run sequentially; a failing language does not stop the batch.
type BatchProcessor struct {
	summarizer Summarizer
	outputDir  string
}

// NewBatchProcessor creates a new batch processor writing into outputDir
func NewBatchProcessor(summarizer Summarizer, outputDir string) *BatchProcessor {
	return &BatchProcessor{
		summarizer: summarizer,
		outputDir:  outputDir,
	}
}

// OutputPath returns where the summary of the named language is written
func (b *BatchProcessor) OutputPath(name string) string {
	return filepath.Join(b.outputDir, name+SummaryFileSuffix)
}

// ProcessLanguages aggregates every language in order
func (b *BatchProcessor) ProcessLanguages(ctx context.Context, langs []model.Language) []*LanguageResult {
	if len(langs) == 0 {
		return []*LanguageResult{}
	}

	queue := NewQueue()
	for _, lang := range langs {
		queue.Submit(&LanguageJob{
			Language:   lang,
			Path:       b.OutputPath(lang.Name),
			Summarizer: b.summarizer,
		})
	}

	results := queue.Run(ctx, func(job Job, err error) Result {
		return &LanguageResult{
			Language: job.(*LanguageJob).Language,
			Error:    errors.Wrap(err, "batch interrupted"),
		}
	})

	langResults := make([]*LanguageResult, len(results))
	for i, result := range results {
		langResults[i] = result.(*LanguageResult)
		if err := result.GetError(); err != nil {
			logger.Logger.Errorw("language failed", "language", langResults[i].Language.Name, "error", err)
		}
	}
	return langResults
}

// ProcessFile reads a manifest and aggregates the languages it lists
func (b *BatchProcessor) ProcessFile(ctx context.Context, manifestPath string) ([]*LanguageResult, error) {
	langs, err := ReadManifest(manifestPath)
	if err != nil {
		return nil, err
	}
	return b.ProcessLanguages(ctx, langs), nil
}

// Failed counts the results that carry an error
func Failed(results []*LanguageResult) int {
	n := 0
	for _, r := range results {
		if r.Error != nil {
			n++
		}
	}
	return n
}

// ReadManifest reads a batch manifest: one "name,examples_path,evidence_path"
// line per language. Blank lines and # comments are skipped, and a language
// listed twice keeps its first line. Relative paths are resolved against
// the manifest's directory.
func ReadManifest(manifestPath string) ([]model.Language, error) {
	file, err := os.Open(manifestPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Mark(errors.Wrapf(err, "open manifest %s", manifestPath), errors.ErrMissingInputFile)
		}
		return nil, errors.Mark(errors.Wrapf(err, "open manifest %s", manifestPath), errors.ErrUnexpected)
	}
	defer func() { _ = file.Close() }()

	base := filepath.Dir(manifestPath)
	resolve := func(p string) string {
		if filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(base, p)
	}

	var langs []model.Language
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())

		// Skip empty lines and comments
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Split(line, ",")
		if len(fields) != 3 {
			return nil, errors.Mark(
				errors.WithHint(
					errors.Newf("%s:%d: expected 3 fields, got %d", manifestPath, lineNo, len(fields)),
					"manifest lines look like: Hausa,data/Hausa_examples.csv,data/Hausa_evidence.csv"),
				errors.ErrUnexpected)
		}
		for i := range fields {
			fields[i] = strings.TrimSpace(fields[i])
		}
		if fields[0] == "" || fields[1] == "" || fields[2] == "" {
			return nil, errors.Mark(errors.Newf("%s:%d: empty field", manifestPath, lineNo), errors.ErrUnexpected)
		}

		// Deduplicate languages
		if seen[fields[0]] {
			logger.Logger.Warnw("duplicate manifest entry ignored", "language", fields[0], "line", lineNo)
			continue
		}
		seen[fields[0]] = true
		langs = append(langs, model.Language{
			Name:     fields[0],
			Examples: resolve(fields[1]),
			Evidence: resolve(fields[2]),
		})
	}

	if err := scanner.Err(); err != nil {
		return nil, errors.Mark(errors.Wrap(err, "scan manifest"), errors.ErrUnexpected)
	}

	return langs, nil
}
