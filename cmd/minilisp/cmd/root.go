package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/xiam/minilisp"
	"github.com/xiam/minilisp/ast"
	"github.com/xiam/minilisp/internal/config"
)

type options struct {
	cfgFile string
	debug   bool

	cfg    *config.Config
	logger *slog.Logger
}

// Execute runs the minilisp command line
func Execute() error {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		printError(rootCmd, err)
		return err
	}
	return nil
}

func printError(cmd *cobra.Command, err error) {
	fmt.Fprintf(cmd.ErrOrStderr(), "error: %v\n", err)
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "minilisp",
		Short: "Reader for a small Lisp-like language",
		Long: `minilisp parses scripts made of parenthesized lists, symbols,
floats, integers and booleans.

Commands:
  check  - validate scripts
  ast    - dump the syntax tree of a script
  repl   - parse expressions interactively
  stats  - count the nodes of a script`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file (default: $"+config.EnvConfig+")")
	rootCmd.PersistentFlags().BoolVarP(&opts.debug, "debug", "d", false, "debug output")

	rootCmd.AddCommand(
		newCheckCmd(opts),
		newASTCmd(opts),
		newREPLCmd(opts),
		newStatsCmd(opts),
	)

	return rootCmd
}

func (opts *options) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(opts.cfgFile)
	if err != nil {
		return err
	}
	opts.cfg = cfg

	level := cfg.SlogLevel()
	if opts.debug {
		level = slog.LevelDebug
	}
	opts.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: level,
	}))

	opts.logger.Debug("configuration loaded",
		"config", opts.cfgFile,
		"format", cfg.Output.Format,
		"prompt", cfg.REPL.Prompt,
	)
	return nil
}

// parseFile reads and parses a script, "-" reads from in.
func parseFile(path string, in io.Reader) (*ast.Script, error) {
	if path == "-" {
		return minilisp.NewReader(in).Parse()
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	script, err := minilisp.NewReader(f).Parse()
	if err != nil {
		return nil, fmt.Errorf("%s:%w", path, err)
	}
	return script, nil
}
