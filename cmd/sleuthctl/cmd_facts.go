package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func newFactsCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "facts SUSPECT",
		Short: "List the facts recorded about a suspect",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := flags.openEngine(cmd)
			if err != nil {
				return err
			}

			facts := e.FactsForSuspect(args[0])
			if len(facts) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No facts about %s\n", args[0])
				return nil
			}

			t := newTable()
			t.AppendHeader(table.Row{"Crime", "Evidence"})
			for _, f := range facts {
				t.AppendRow(table.Row{f.Crime, f.Kind})
			}
			flags.render(cmd.OutOrStdout(), t)
			return nil
		},
	}
}
