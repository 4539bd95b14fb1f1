package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/you-not-fish/minijs/internal/syntax"
)

func newStatsCmd(a *app) *cobra.Command {
	var sample bool

	cmd := &cobra.Command{
		Use:   "stats [file|-]",
		Short: "Parse a program and count its nodes by type",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prog, err := a.load(args, sample)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			counts, total := countNodes(prog)
			for _, c := range counts {
				fmt.Fprintf(w, "%-22s %5d\n", c.typ, c.n)
			}
			fmt.Fprintf(w, "%-22s %5d\n", "total", total)
			return nil
		},
	}

	addSampleFlag(cmd, &sample)
	return cmd
}

type nodeCount struct {
	typ string
	n   int
}

// countNodes walks prog and returns per-type counts, most frequent first
// with ties in name order, and the total number of nodes.
func countNodes(prog *syntax.Program) ([]nodeCount, int) {
	byType := map[string]int{}
	total := 0
	syntax.Inspect(prog, func(n syntax.Node) bool {
		byType[syntax.NodeType(n)]++
		total++
		return true
	})

	counts := make([]nodeCount, 0, len(byType))
	for typ, n := range byType {
		counts = append(counts, nodeCount{typ, n})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].n != counts[j].n {
			return counts[i].n > counts[j].n
		}
		return counts[i].typ < counts[j].typ
	})
	return counts, total
}
