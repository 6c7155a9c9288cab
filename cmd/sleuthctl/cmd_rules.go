package main

import (
	"sleuth/internal/evidence"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func newRulesCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List the rules in resolution order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := flags.openEngine(cmd)
			if err != nil {
				return err
			}

			t := newTable()
			t.AppendHeader(table.Row{"Rule", "Crime", "Conditions", "Special"})
			for _, r := range e.Rules() {
				crime := r.Crime
				if crime == "" {
					crime = "~ " + r.Conclusion
				}
				special := ""
				if r.Special != nil {
					special = string(r.Special.Kind) + " when " + r.Special.When
				}
				t.AppendRow(table.Row{r.Name, crime, evidence.Join(r.Conditions), special})
			}
			flags.render(cmd.OutOrStdout(), t)
			return nil
		},
	}
}
