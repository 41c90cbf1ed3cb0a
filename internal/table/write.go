package table

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"

	"github.com/ppiankov/connectives/internal/errors"
)

// WriteCSV writes header and rows as CSV
func WriteCSV(w io.Writer, header []string, rows [][]string) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(header); err != nil {
		return errors.Wrap(err, "write header")
	}
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return errors.Wrap(err, "write row")
		}
	}
	writer.Flush()
	return writer.Error()
}

// WriteFile writes a CSV file atomically: the rows go to a temp file in the
// same directory, which is renamed over path only when complete.
func WriteFile(path string, header []string, rows [][]string) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrap(err, "create output directory")
	}

	tmp, err := os.CreateTemp(dir, ".connectives-*.csv")
	if err != nil {
		return errors.Wrap(err, "create temp file")
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if err = WriteCSV(tmp, header, rows); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return errors.Wrap(err, "close temp file")
	}
	if err = os.Chmod(tmp.Name(), 0644); err != nil {
		return errors.Wrap(err, "chmod output")
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return errors.Wrap(err, "rename output")
	}
	return nil
}
