package main

import (
	"io"
	"log/slog"

	"github.com/katalvlaran/pairwise/config"
	"github.com/spf13/cobra"
)

// app carries what every subcommand needs once the root pre-run has loaded
// the configuration.
type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	configPath string
	envFile    string
	logLevel   string
	logFormat  string

	cfg    config.Config
	logger *slog.Logger
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdin: stdin, stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:   "pairwise",
		Short: "Generate pairwise (2-wise) covering test suites",
		Long: `pairwise builds small test suites in which every pair of values of
every two parameters appears in at least one test case.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.load,
	}
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML configuration file")
	pf.StringVar(&a.envFile, "env-file", ".env", "dotenv file with PAIRWISE_* overrides (skipped when missing)")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug|info|warn|error")
	pf.StringVar(&a.logFormat, "log-format", "", "log format: text|json")

	root.AddCommand(
		a.generateCmd(),
		a.verifyCmd(),
		a.templateCmd(),
		a.serveCmd(),
	)
	return root
}

// load resolves configuration: file, dotenv, environment, then flags.
func (a *app) load(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath, a.envFile)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Logging.Level = a.logLevel
	}
	if a.logFormat != "" {
		cfg.Logging.Format = a.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = cfg.Logging.NewLogger(a.stderr)
	return nil
}
