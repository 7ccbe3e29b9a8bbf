package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/xiam/minilisp/ast"
)

var statsNodeTypes = []ast.NodeType{
	ast.NodeTypeList,
	ast.NodeTypeSymbol,
	ast.NodeTypeInteger,
	ast.NodeTypeFloat,
	ast.NodeTypeBool,
}

type scriptStats struct {
	exprs int
	nodes int
	depth int
	count map[ast.NodeType]int
}

func collectStats(script *ast.Script) scriptStats {
	st := scriptStats{
		exprs: script.Len(),
		count: map[ast.NodeType]int{},
	}
	for _, expr := range script.Exprs {
		ast.Walk(expr, func(e ast.Expr, level int) bool {
			st.nodes++
			st.count[e.Type()]++
			if e.Type().IsVector() && level+1 > st.depth {
				st.depth = level + 1
			}
			return true
		})
	}
	return st
}

func (st scriptStats) write(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "exprs: %d\nnodes: %d\ndepth: %d\n", st.exprs, st.nodes, st.depth); err != nil {
		return err
	}
	for _, nt := range statsNodeTypes {
		if _, err := fmt.Fprintf(w, "%s: %d\n", nt, st.count[nt]); err != nil {
			return err
		}
	}
	return nil
}

func newStatsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "stats <file>",
		Short: "Count the nodes of a script",
		Long:  `Parses a script and prints how many top-level expressions and nodes of each type it holds, plus the deepest list nesting. Use "-" to read from stdin.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			script, err := parseFile(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}
			st := collectStats(script)
			opts.logger.Debug("script stats", "path", args[0], "nodes", st.nodes, "depth", st.depth)
			return st.write(cmd.OutOrStdout())
		},
	}
}
