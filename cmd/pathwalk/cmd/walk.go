package cmd

import (
	"context"
	"io"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/asciipath/asciimap"
	"github.com/katalvlaran/asciipath/config"
	"github.com/katalvlaran/asciipath/pathfinder"
	"github.com/katalvlaran/asciipath/report"
	"github.com/katalvlaran/asciipath/samples"
)

const stdinName = "-"

var exampleForWalkCmd = `
walk a map file:
  pathwalk walk route.txt

walk built-in samples as a table:
  pathwalk walk --sample basic --sample crossing -o table

walk a map from stdin:
  cat route.txt | pathwalk walk -
`

// source is one map to walk: a file, stdin or a built-in sample.
type source struct {
	name string
	read func() (string, error)
}

func newWalkCmd(a *app) *cobra.Command {
	var sampleNames []string

	walkCmd := &cobra.Command{
		Use:     "walk [FILE...]",
		Short:   "Walk the route drawn in each map and print what was collected",
		Example: exampleForWalkCmd,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && len(sampleNames) == 0 {
				return errors.New("no maps given: pass files, '-' for stdin, or --sample NAME")
			}
			format, err := report.ParseFormat(a.cfg.Output)
			if err != nil {
				return err
			}

			sources := fileSources(args, cmd.InOrStdin())
			for _, name := range sampleNames {
				sources = append(sources, sampleSource(name))
			}

			var (
				multiE  *multierror.Error
				reports []report.Report
			)
			for _, src := range sources {
				text, err := src.read()
				if err != nil {
					multiE = multierror.Append(multiE, errors.Wrapf(err, "failed to read map %s", src.name))
					continue
				}
				rep, err := a.walkOne(cmd.Context(), src.name, text)
				reports = append(reports, rep)
				if err != nil {
					multiE = multierror.Append(multiE, errors.Wrapf(err, "failed to walk %s", src.name))
				}
			}

			if err := report.Write(cmd.OutOrStdout(), format, reports...); err != nil {
				return errors.Wrap(err, "failed to write reports")
			}
			return multiE.ErrorOrNil()
		},
	}

	walkCmd.Flags().StringSliceVarP(&sampleNames, "sample", "s", nil, "walk a built-in sample, may be repeated (list them with: pathwalk samples)")
	walkCmd.Flags().StringP("output", "o", string(report.Text), "output format: text, json, yaml or table")
	walkCmd.Flags().Bool("check", false, "warn when a map holds more than one disconnected drawing")
	_ = a.v.BindPFlag(config.KeyOutput, walkCmd.Flags().Lookup("output"))
	_ = a.v.BindPFlag(config.KeyCheck, walkCmd.Flags().Lookup("check"))

	return walkCmd
}

func fileSources(paths []string, stdin io.Reader) []source {
	out := make([]source, 0, len(paths))
	for _, p := range paths {
		if p == stdinName {
			out = append(out, source{name: "stdin", read: func() (string, error) {
				b, err := io.ReadAll(stdin)
				return string(b), err
			}})
			continue
		}
		p := p // per-iteration copy; go directive is 1.21 (pre-1.22 loop semantics)
		out = append(out, source{name: p, read: func() (string, error) {
			b, err := os.ReadFile(p)
			return string(b), err
		}})
	}
	return out
}

func sampleSource(name string) source {
	return source{name: name, read: func() (string, error) {
		s, err := samples.Get(name)
		return s.Map, err
	}}
}

// walkOne walks text with the configured policy, bounded by ctx.
func (a *app) walkOne(ctx context.Context, name, text string) (report.Report, error) {
	logger := a.log.WithField("map", name)
	opts := []pathfinder.Option{pathfinder.WithContext(ctx)}
	if a.cfg.Lenient {
		opts = append(opts, pathfinder.WithLenientPathChars())
	}
	if a.log.IsLevelEnabled(logrus.DebugLevel) {
		opts = append(opts, pathfinder.WithOnStep(func(s pathfinder.Step) error {
			logger.Debugf("%-5s -> %q at %v", s.Direction, s.Char, s.To)
			return nil
		}))
	}
	if a.cfg.Check {
		a.check(logger, text)
	}

	res, err := pathfinder.WalkText(text, opts...)
	rep := report.New(name, res, err)
	if err == nil {
		logger.WithField("report", rep.ID).Infof("collected %q in %d steps", rep.Letters, rep.Steps)
	}
	return rep, err
}

// check warns about drawings the walk can never reach.
func (a *app) check(logger logrus.FieldLogger, text string) {
	m, err := asciimap.Parse(text)
	if err != nil {
		return
	}
	if comps := m.PathComponents(pathfinder.PathCharFunc(a.cfg.Lenient)); len(comps) > 1 {
		logger.Warnf("map holds %d disconnected drawings, only the one containing the start is walked", len(comps))
	}
}
