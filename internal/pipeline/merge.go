package pipeline

import (
	"path/filepath"

	"github.com/ppiankov/connectives/internal/errors"
	"github.com/ppiankov/connectives/internal/table"
)

// SourceFileColumn tags each merged row with the file it came from
const SourceFileColumn = "source_file"

// Merge concatenates summary tables vertically, prefixing each row with the
// base name of its file. Columns are the union of all headers in first-seen
// order; cells a file does not have are empty.
func (p *Pipeline) Merge(paths []string) (*table.Table, error) {
	if len(paths) == 0 {
		return nil, errors.Mark(errors.New("no summary files to merge"), errors.ErrUnexpected)
	}

	header := []string{SourceFileColumn}
	seen := map[string]bool{SourceFileColumn: true}
	loaded := make([]*table.Table, 0, len(paths))

	for _, path := range paths {
		t, err := p.loader.Load(path)
		if err != nil {
			return nil, err
		}
		loaded = append(loaded, t)
		for _, col := range t.Header {
			if !seen[col] {
				seen[col] = true
				header = append(header, col)
			}
		}
	}

	var rows [][]string
	for i, t := range loaded {
		source := filepath.Base(paths[i])
		for r := 0; r < t.Len(); r++ {
			row := make([]string, len(header))
			row[0] = source
			for j, col := range header[1:] {
				row[j+1] = t.Get(r, col)
			}
			rows = append(rows, row)
		}
		p.log.Debugw("summary merged", "source_file", source, "rows", t.Len())
	}

	return table.New(header, rows), nil
}

// WriteMerged merges paths and writes the result to out
func (p *Pipeline) WriteMerged(paths []string, out string) (int, error) {
	merged, err := p.Merge(paths)
	if err != nil {
		return 0, err
	}
	if err := table.WriteFile(out, merged.Header, merged.Rows); err != nil {
		return 0, errors.Mark(errors.Wrapf(err, "write merged %s", out), errors.ErrUnexpected)
	}
	return merged.Len(), nil
}
