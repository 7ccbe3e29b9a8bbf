package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCheckCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>...",
		Short: "Validate scripts",
		Long:  `Parses every given file and reports the position of the first error in each of them. Use "-" to read from stdin.`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			failed := 0
			for _, path := range args {
				script, err := parseFile(path, cmd.InOrStdin())
				if err != nil {
					failed++
					fmt.Fprintln(cmd.ErrOrStderr(), err)
					continue
				}
				opts.logger.Debug("script parsed", "path", path, "exprs", script.Len())
				fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", path)
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d file(s) failed to parse", failed, len(args))
			}
			return nil
		},
	}
}
