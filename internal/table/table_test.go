package table

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ppiankov/connectives/internal/cache"
	"github.com/ppiankov/connectives/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestReadCSV_Basic(t *testing.T) {
	tbl, err := ReadCSV(strings.NewReader("\ufeffref,expression,full_form\nex1,and,na\nex2,or,ko\n"))
	require.NoError(t, err)

	assert.Equal(t, []string{"ref", "expression", "full_form"}, tbl.Header)
	assert.Equal(t, 2, tbl.Len())
	assert.Equal(t, "ko", tbl.Get(1, "full_form"))
	assert.True(t, tbl.Has("ref"), "BOM must be stripped from the first column name")
}

func TestReadCSV_ShortRowsReadAsEmpty(t *testing.T) {
	tbl, err := ReadCSV(strings.NewReader("a,b,c\n1\n"))
	require.NoError(t, err)

	assert.Equal(t, "1", tbl.Get(0, "a"))
	assert.Equal(t, "", tbl.Get(0, "c"))
	assert.Equal(t, "", tbl.Get(0, "missing"))
	assert.Equal(t, "", tbl.Get(5, "a"))
}

func TestReadCSV_Malformed(t *testing.T) {
	_, err := ReadCSV(strings.NewReader("a,b\n1,2,3\n"))
	assert.Error(t, err)

	_, err = ReadCSV(strings.NewReader(""))
	assert.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "Hausa_evidence.csv"))
	require.Error(t, err)
	assert.Equal(t, errors.ErrMissingInputFile, errors.Kind(err))
	assert.Contains(t, err.Error(), "Hausa_evidence.csv")
}

func TestLoad_MalformedIsUnexpected(t *testing.T) {
	path := writeFile(t, t.TempDir(), "bad.csv", "a,b\n\"unterminated,2\n")
	_, err := Load(path)
	require.Error(t, err)
	assert.Equal(t, errors.ErrUnexpected, errors.Kind(err))
}

func TestLoad_XLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "questionnaire.xlsx")

	f := excelize.NewFile()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]interface{}{"ref", "kboth", "kneither"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]interface{}{"neither-sta", "0", "1"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A3", &[]interface{}{"disj-spk-1", "?", "0"}))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	tbl, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, tbl.Len())
	assert.Equal(t, "1", tbl.Get(0, "kneither"))
	assert.Equal(t, "?", tbl.Get(1, "kboth"))
}

func TestHas(t *testing.T) {
	tbl := New([]string{"a", "b"}, [][]string{{"1", "2"}, {"3"}})

	assert.True(t, tbl.Has("b"))
	assert.False(t, tbl.Has("negation"))
	assert.Equal(t, "", tbl.Get(1, "b"))
}

func TestWriteFile_Atomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out", "summary.csv")

	require.NoError(t, WriteFile(path, []string{"a", "b"}, [][]string{{"1", "x,y"}}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a,b\n1,\"x,y\"\n", string(data))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file must not be left behind")
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, []string{"full_form"}, [][]string{{"either…or"}}))
	assert.Equal(t, "full_form\neither…or\n", buf.String())
}

func TestLoader_CachesUnchangedFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "q.csv", "ref,kboth\nfc,0\n")

	mem := cache.NewMemoryCache(time.Minute, time.Minute)
	loader := NewLoader(mem, nil)

	first, err := loader.Load(path)
	require.NoError(t, err)
	second, err := loader.Load(path)
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, 1, mem.Len())
}

func TestLoader_MissingFileWithCache(t *testing.T) {
	loader := NewLoader(cache.NewMemoryCache(time.Minute, time.Minute), nil)
	_, err := loader.Load(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Equal(t, errors.ErrMissingInputFile, errors.Kind(err))
}

func TestLoader_NoCache(t *testing.T) {
	path := writeFile(t, t.TempDir(), "q.csv", "ref\nfc\n")
	loader := NewLoader(nil, nil)

	first, err := loader.Load(path)
	require.NoError(t, err)
	second, err := loader.Load(path)
	require.NoError(t, err)
	assert.NotSame(t, first, second)
}

func TestLoader_LogsThroughRunLogger(t *testing.T) {
	path := writeFile(t, t.TempDir(), "q.csv", "ref\nfc\n")
	core, logs := observer.New(zapcore.DebugLevel)
	runLog := zap.New(core).Sugar().With("run_id", "run-1", "language", "Hausa")

	shared := NewLoader(cache.NewMemoryCache(time.Minute, time.Minute), nil)
	_, err := shared.Load(path)
	require.NoError(t, err)

	_, err = shared.WithLogger(runLog).Load(path)
	require.NoError(t, err)

	hits := logs.FilterMessage("table cache hit").All()
	require.Len(t, hits, 1, "cache is shared with the derived loader")
	fields := hits[0].ContextMap()
	assert.Equal(t, "run-1", fields["run_id"])
	assert.Equal(t, "Hausa", fields["language"])
	assert.Equal(t, path, fields["path"])
}
