package report_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/asciipath/pathfinder"
	"github.com/katalvlaran/asciipath/report"
)

func sampleReports(t *testing.T) []report.Report {
	t.Helper()
	ok := report.New("basic", &pathfinder.Result{Path: "@-A-x", Letters: "A", Steps: 4}, nil)
	bad := report.New("broken", &pathfinder.Result{Path: "@-", Steps: 1}, errors.New("dead end"))
	return []report.Report{ok, bad}
}

// TestNew checks field mapping, ID generation and nil results.
func TestNew(t *testing.T) {
	r := report.New("m", &pathfinder.Result{Path: "@x", Letters: "", Steps: 1}, nil)
	_, err := uuid.Parse(r.ID)
	require.NoError(t, err)
	assert.Equal(t, "@x", r.Path)
	assert.Equal(t, 1, r.Steps)
	assert.False(t, r.Failed())

	r2 := report.New("m", nil, pathfinder.ErrInvalidInput)
	assert.NotEqual(t, r.ID, r2.ID)
	assert.True(t, r2.Failed())
	assert.Empty(t, r2.Path)
	assert.Equal(t, pathfinder.ErrInvalidInput.Error(), r2.Error)
}

// TestParseFormat covers known, mixed-case and unknown names.
func TestParseFormat(t *testing.T) {
	for _, f := range report.Formats {
		got, err := report.ParseFormat(string(f))
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}
	got, err := report.ParseFormat(" JSON ")
	require.NoError(t, err)
	assert.Equal(t, report.JSON, got)

	_, err = report.ParseFormat("xml")
	assert.ErrorIs(t, err, report.ErrUnknownFormat)
}

// TestWriteText checks the line-oriented layout.
func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, report.Text, sampleReports(t)...))
	assert.Equal(t,
		"== basic\nLetters: A\nPath: @-A-x\n\n== broken\nLetters: \nPath: @-\nError: dead end\n",
		buf.String())
}

// TestWriteJSON checks that JSON output decodes back to the same reports.
func TestWriteJSON(t *testing.T) {
	in := sampleReports(t)
	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, report.JSON, in...))

	var out []report.Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, in, out)
	assert.NotContains(t, buf.String()[:bytes.Index(buf.Bytes(), []byte("broken"))], `"error"`,
		"a successful report omits the error key")
}

// TestWriteYAML checks that YAML output decodes back to the same reports.
func TestWriteYAML(t *testing.T) {
	in := sampleReports(t)
	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, report.YAML, in...))

	var out []report.Report
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, in, out)
}

// TestWriteEmptyList checks that no reports still yields a list.
func TestWriteEmptyList(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, report.JSON))
	assert.JSONEq(t, "[]", buf.String())
}

// TestWriteTable checks that the table carries a header and each report.
func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, report.Table, sampleReports(t)...))
	out := buf.String()
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "basic")
	assert.Contains(t, out, "@-A-x")
	assert.Contains(t, out, "dead end")
}

// TestWriteUnknown checks the error for an unsupported format.
func TestWriteUnknown(t *testing.T) {
	err := report.Write(&bytes.Buffer{}, report.Format("xml"))
	assert.ErrorIs(t, err, report.ErrUnknownFormat)
}
