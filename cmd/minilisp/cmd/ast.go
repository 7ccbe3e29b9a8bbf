package cmd

import (
	"github.com/spf13/cobra"
	"github.com/xiam/minilisp/internal/dump"
)

func newASTCmd(opts *options) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "ast <file>",
		Short: "Dump the syntax tree of a script",
		Long:  `Parses a script and writes its syntax tree as text, encode, yaml or json. Use "-" to read from stdin.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			script, err := parseFile(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}

			if format == "" {
				format = opts.cfg.Output.Format
			}
			opts.logger.Debug("dumping tree", "path", args[0], "format", format, "exprs", script.Len())

			return dump.Write(cmd.OutOrStdout(), script, format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: text, encode, yaml or json (default from config)")

	return cmd
}
