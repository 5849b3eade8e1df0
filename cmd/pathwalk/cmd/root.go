package cmd

import (
	"context"
	"io"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/asciipath/config"
)

type rootOpts struct {
	cfgFile     string
	envFile     string
	debugModeOn bool
	hideLogTime bool
}

// app carries what every subcommand needs once flags are parsed.
type app struct {
	opts rootOpts
	v    *viper.Viper
	log  *logrus.Logger
	cfg  config.Config
}

var longRootCmdDescription = `pathwalk follows the route drawn in an ASCII diagram from its start
marker '@' to its end marker 'x', and reports every character passed and
the letters collected on the way.
`

// NewRootCmd builds the command tree writing results to out and logs to errOut.
func NewRootCmd(out, errOut io.Writer) *cobra.Command {
	rootCmd, _ := newRootCmd(out, errOut)
	return rootCmd
}

func newRootCmd(out, errOut io.Writer) (*cobra.Command, *app) {
	a := &app{v: viper.New(), log: logrus.New()}
	a.log.SetOutput(errOut)

	rootCmd := &cobra.Command{
		Use:           "pathwalk",
		Short:         "Walk routes drawn in ASCII diagrams.",
		Long:          longRootCmdDescription,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
	}
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.opts.cfgFile, "config", "", "config file (default is .pathwalk.yaml in the working or home directory)")
	flags.StringVar(&a.opts.envFile, "env-file", ".env", "dotenv file to load before reading PATHWALK_* variables")
	flags.BoolVarP(&a.opts.debugModeOn, "debug", "d", false, "turn on debug mode, logging every step")
	flags.BoolVar(&a.opts.hideLogTime, "hide-time", false, "hide the log time")
	flags.Bool("lenient", false, "treat any non-blank character as part of the route")
	_ = a.v.BindPFlag(config.KeyLenient, flags.Lookup("lenient"))

	rootCmd.AddCommand(newWalkCmd(a), newSamplesCmd(), newServeCmd(a), newVersionCmd())
	rootCmd.DisableAutoGenTag = true
	return rootCmd, a
}

// init loads configuration and sets up the logger.
// The formatter is set first so that configuration errors honor --hide-time.
func (a *app) init() error {
	a.log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: a.opts.hideLogTime,
		FullTimestamp:    true,
	})
	cfg, err := config.Load(a.v, config.LoadOptions{
		ConfigFile: a.opts.cfgFile,
		EnvFile:    a.opts.envFile,
	})
	if err != nil {
		return err
	}
	if a.opts.debugModeOn {
		cfg.LogLevel = logrus.DebugLevel.String()
	}
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	a.log.SetLevel(level)
	a.cfg = cfg
	return nil
}

// Execute runs the command tree and exits non-zero on failure.
// An interrupt cancels a walk in progress.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := execute(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

// execute runs args and logs a failure through the configured logger.
func execute(ctx context.Context, args []string, out, errOut io.Writer) error {
	rootCmd, a := newRootCmd(out, errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		a.log.Errorf("pathwalk-%s: %v", Version, err)
	}
	return err
}
