// Package samples ships a small catalogue of well-formed diagrams used by
// the pathwalk CLI and the HTTP server, and as fixtures in tests.
package samples

import (
	"errors"
	"sort"
)

// ErrUnknownSample indicates a name not present in the catalogue.
var ErrUnknownSample = errors.New("samples: unknown sample")

// Sample is a named diagram together with the walk it must produce.
type Sample struct {
	Name        string
	Description string
	Map         string
	// Letters and Path are the expected walk results.
	Letters string
	Path    string
}

var catalogue = map[string]Sample{
	"basic": {
		Name:        "basic",
		Description: "a simple loop with three letters",
		Map: `
@---A---+
        |
x-B-+   C
    |   |
    +---+
`,
		Letters: "ACB",
		Path:    "@---A---+|C|+---+|+-B-x",
	},
	"crossing": {
		Name:        "crossing",
		Description: "the route runs straight through intersections",
		Map: `
  @
  | +-C--+
  A |    |
  +---B--+
    |      x
    |      |
    +---D--+
`,
		Letters: "ABCD",
		Path:    "@|A+---B--+|+--C-+|-||+---D--+|x",
	},
	"letters-on-turns": {
		Name:        "letters-on-turns",
		Description: "a letter can sit where the route turns",
		Map: `
  @---A---+
          |
  x-B-+   |
      |   |
      +---C
`,
		Letters: "ACB",
		Path:    "@---A---+|||C---+|+-B-x",
	},
	"repeated-letters": {
		Name:        "repeated-letters",
		Description: "a letter crossed twice is collected once",
		Map: `
     +-O-N-+
     |     |
     |   +-I-+
 @-G-O-+ | | |
     | | +-+ E
     +-+     S
             |
             x
`,
		Letters: "GOONIES",
		Path:    "@-G-O-+|+-+|O||+-O-N-+|I|+-+|+-I-+|ES|x",
	},
	"after-end": {
		Name:        "after-end",
		Description: "anything past the end marker is ignored",
		Map: `
  @-A--+
       |
       +-B--x-C--D
`,
		Letters: "AB",
		Path:    "@-A--+|+-B--x",
	},
}

// Names returns the sample names in lexical order.
func Names() []string {
	names := make([]string, 0, len(catalogue))
	for name := range catalogue {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All returns every sample, ordered by name.
func All() []Sample {
	out := make([]Sample, 0, len(catalogue))
	for _, name := range Names() {
		out = append(out, catalogue[name])
	}
	return out
}

// Get returns the sample called name, or ErrUnknownSample.
func Get(name string) (Sample, error) {
	s, ok := catalogue[name]
	if !ok {
		return Sample{}, ErrUnknownSample
	}
	return s, nil
}
