package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/xiam/minilisp/ast"
	"github.com/xiam/minilisp/parser"
)

type replStyles struct {
	prompt lipgloss.Style
	result lipgloss.Style
	err    lipgloss.Style
}

func newREPLStyles(w io.Writer, color bool) replStyles {
	r := lipgloss.NewRenderer(w)
	if !color {
		return replStyles{
			prompt: r.NewStyle(),
			result: r.NewStyle(),
			err:    r.NewStyle(),
		}
	}
	return replStyles{
		prompt: r.NewStyle().Foreground(lipgloss.Color("#7D56F4")).Bold(true),
		result: r.NewStyle().Foreground(lipgloss.Color("#04B575")),
		err:    r.NewStyle().Foreground(lipgloss.Color("#FF5F87")).Bold(true),
	}
}

func newREPLCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Parse expressions interactively",
		Long:  `Reads one line at a time, parses it and prints the canonical form of every expression found. With --debug the tree is printed too.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runREPL(opts, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

func runREPL(opts *options, in io.Reader, out io.Writer) error {
	styles := newREPLStyles(out, opts.cfg.REPL.Color)
	// lines have no length limit, unlike bufio.Scanner
	reader := bufio.NewReader(in)

	for {
		fmt.Fprint(out, styles.prompt.Render(opts.cfg.REPL.Prompt))

		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			fmt.Fprintln(out)
			return err
		}
		if err != nil && line == "" {
			fmt.Fprintln(out)
			return nil
		}

		line = strings.TrimRight(line, "\r\n")
		if strings.TrimSpace(line) == "" {
			continue
		}

		script, err := parser.ParseString(line)
		if err != nil {
			opts.logger.Debug("parse failed", "input", line, "error", err)
			fmt.Fprintln(out, styles.err.Render("error: "+err.Error()))
			continue
		}

		for _, expr := range script.Exprs {
			fmt.Fprintln(out, styles.result.Render("=> "+ast.Encode(expr)))
			if opts.debug {
				if err := ast.Print(out, expr); err != nil {
					return err
				}
			}
		}
	}
}
