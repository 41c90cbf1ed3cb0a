package table

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ppiankov/connectives/internal/errors"
	"github.com/xuri/excelize/v2"
)

const utf8BOM = "\ufeff"

// Load reads a table from a .csv or .xlsx file.
// A file that does not exist yields ErrMissingInputFile; any other failure ErrUnexpected.
func Load(path string) (*Table, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Mark(errors.Wrapf(err, "load %s", path), errors.ErrMissingInputFile)
		}
		return nil, errors.Mark(errors.Wrapf(err, "stat %s", path), errors.ErrUnexpected)
	}

	var (
		t   *Table
		err error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		t, err = loadXLSX(path)
	default:
		t, err = loadCSV(path)
	}
	if err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "load %s", path), errors.ErrUnexpected)
	}
	return t, nil
}

func loadCSV(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	return ReadCSV(f)
}

// ReadCSV parses CSV with a header row. Short rows are allowed; rows with
// more fields than the header are malformed.
func ReadCSV(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, errors.New("no columns to parse from file")
	}
	if err != nil {
		return nil, errors.Wrap(err, "read header")
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], utf8BOM)
	}

	var rows [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "read row")
		}
		if len(record) > len(header) {
			line, _ := reader.FieldPos(0)
			return nil, errors.Newf("line %d: expected %d fields, saw %d", line, len(header), len(record))
		}
		if isBlank(record) {
			continue
		}
		rows = append(rows, record)
	}

	return New(header, rows), nil
}

func loadXLSX(path string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "open workbook")
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, errors.Wrapf(err, "read sheet %s", sheets[0])
	}
	if len(rows) == 0 {
		return nil, errors.New("no columns to parse from file")
	}

	header := rows[0]
	var data [][]string
	for _, row := range rows[1:] {
		if len(row) > len(header) {
			row = row[:len(header)]
		}
		if isBlank(row) {
			continue
		}
		data = append(data, row)
	}
	return New(header, data), nil
}

func isBlank(record []string) bool {
	for _, cell := range record {
		if cell != "" {
			return false
		}
	}
	return true
}
