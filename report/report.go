// Package report turns walk results into printable reports.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/asciipath/pathfinder"
)

// Format selects how reports are rendered.
type Format string

// Supported formats.
const (
	Text  Format = "text"
	JSON  Format = "json"
	YAML  Format = "yaml"
	Table Format = "table"
)

// Formats lists every supported format.
var Formats = []Format{Text, JSON, YAML, Table}

// ErrUnknownFormat indicates a format name outside Formats.
var ErrUnknownFormat = errors.New("report: unknown output format")

// ParseFormat validates a format name, case-insensitively.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w %q, the possible values are %v", ErrUnknownFormat, s, Formats)
}

// Report is the outcome of walking one map.
type Report struct {
	ID      string `json:"id" yaml:"id"`
	Name    string `json:"name" yaml:"name"`
	Letters string `json:"letters" yaml:"letters"`
	Path    string `json:"path" yaml:"path"`
	Steps   int    `json:"steps" yaml:"steps"`
	Error   string `json:"error,omitempty" yaml:"error,omitempty"`
}

// New builds a report with a fresh ID. res may be nil when the map could not
// be loaded; err may be nil on success.
func New(name string, res *pathfinder.Result, err error) Report {
	r := Report{ID: uuid.NewString(), Name: name}
	if res != nil {
		r.Letters = res.Letters
		r.Path = res.Path
		r.Steps = res.Steps
	}
	if err != nil {
		r.Error = err.Error()
	}
	return r
}

// Failed reports whether the walk ended in an error.
func (r Report) Failed() bool { return r.Error != "" }

// Write renders reports to w in format f.
// JSON and YAML always emit a list so that the shape does not depend on the
// number of maps walked.
func Write(w io.Writer, f Format, reports ...Report) error {
	if reports == nil {
		reports = []Report{}
	}
	switch f {
	case Text:
		return writeText(w, reports)
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(reports)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(reports); err != nil {
			return err
		}
		return enc.Close()
	case Table:
		writeTable(w, reports)
		return nil
	default:
		return fmt.Errorf("%w %q", ErrUnknownFormat, string(f))
	}
}

func writeText(w io.Writer, reports []Report) error {
	for i, r := range reports {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "== %s\nLetters: %s\nPath: %s\n", r.Name, r.Letters, r.Path); err != nil {
			return err
		}
		if r.Failed() {
			if _, err := fmt.Fprintf(w, "Error: %s\n", r.Error); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeTable(w io.Writer, reports []Report) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"name", "letters", "steps", "path", "error"})
	table.SetAutoWrapText(false)
	for _, r := range reports {
		table.Append([]string{r.Name, r.Letters, strconv.Itoa(r.Steps), r.Path, r.Error})
	}
	table.Render()
}
