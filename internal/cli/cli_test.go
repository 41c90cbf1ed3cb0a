package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ppiankov/connectives/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLanguageFromPath(t *testing.T) {
	assert.Equal(t, "Hausa", languageFromPath("data/Hausa_examples.csv"))
	assert.Equal(t, "Old_Irish", languageFromPath("Old_Irish_examples.xlsx"))
	assert.Equal(t, "examples", languageFromPath("examples.csv"))
}

func TestReportError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "missing file",
			err:  errors.Mark(errors.New("open evidence.csv"), errors.ErrMissingInputFile),
			want: "✗ Missing input file: open evidence.csv",
		},
		{
			name: "heterogeneous",
			err:  errors.Mark(errors.New("1 heterogeneous group"), errors.ErrHeterogeneousGroup),
			want: "✗ Heterogeneous groups: 1 heterogeneous group",
		},
		{
			name: "other",
			err:  errors.New("boom"),
			want: "✗ Error: boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			ReportError(&buf, tt.err)
			assert.Equal(t, tt.want, strings.TrimSpace(buf.String()))
		})
	}
}

func TestReportError_Hint(t *testing.T) {
	var buf bytes.Buffer
	ReportError(&buf, errors.WithHint(errors.New("unknown check"), "available checks: nand"))
	assert.Contains(t, buf.String(), "hint: available checks: nand")

	buf.Reset()
	ReportError(&buf, nil)
	assert.Empty(t, buf.String())
}

func TestWriteDefaultConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".connectives", "config.yaml")

	require.NoError(t, writeDefaultConfig(path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# connectives configuration file")
	assert.Contains(t, string(data), "questionnaire: questionnaire_table.csv")
	assert.Contains(t, string(data), "null_marker: NaN")

	err = writeDefaultConfig(path)
	assert.Error(t, err, "an existing config must not be overwritten")
}

func TestSummarizeCommand(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)

	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
		return path
	}
	q := write("questionnaire_table.csv", "ref,kboth,kneither,contrast,stative,negated_p,Kp,question,fc\nneither-sta,0,1,0,1,0,0,0,0\n")
	ex := write("Hausa_examples.csv", "ref,expression,full_form\nex-1,neg,ba…ba\n")
	ev := write("Hausa_evidence.csv", "ref,example,context,judgment\nev-1,ex-1,neither-sta,felicitous\n")
	out := filepath.Join(dir, "out", "Hausa_summary.csv")

	rootCmd.SetArgs([]string{"summarize", "--questionnaire", q, "--examples", ex, "--evidence", ev, "--out", out, "--no-color"})
	require.NoError(t, Execute())

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t,
		"expression,full_form,shorthand,kboth,kneither,contrast,stative,negated_p,Kp,question,fc,can_express,evidence,comments\n"+
			"neg,ba…ba,neither-sta,0,1,0,1,0,0,0,0,1,ev-1,\n",
		string(data))
}
