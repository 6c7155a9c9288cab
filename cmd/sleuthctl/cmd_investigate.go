package main

import (
	"fmt"
	"sleuth/internal/evidence"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
)

func newInvestigateCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "investigate",
		Short: "Evaluate every suspect against every crime and rank the results",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := flags.openEngine(cmd)
			if err != nil {
				return err
			}
			report := e.InvestigateAll()

			t := newTable()
			t.AppendHeader(table.Row{"#", "Suspect", "Crime", "Guilty", "Confidence", "Evidence"})
			for i, r := range report.Results {
				guilty := "no"
				switch {
				case r.Overridden:
					guilty = "yes (override)"
				case r.Guilty:
					guilty = "yes"
				}
				t.AppendRow(table.Row{
					i + 1,
					r.Suspect,
					r.Crime,
					guilty,
					fmt.Sprintf("%.2f", r.Confidence),
					evidence.Join(r.Evidence),
				})
			}
			t.SetColumnConfigs([]table.ColumnConfig{
				{Number: 5, Align: text.AlignRight},
				{Number: 6, WidthMax: 60},
			})
			flags.render(cmd.OutOrStdout(), t)

			s := report.Statistics
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Investigation %s\n", report.ID)
			fmt.Fprintf(out, "Retained: %d of %d pairs\n", s.Retained, s.PossiblePairs)
			fmt.Fprintf(out, "Guilty:   %d\n", s.Guilty)
			fmt.Fprintf(out, "Evidence: %d\n", s.TotalEvidence)
			fmt.Fprintf(out, "Resolution rate: %.1f%%\n", s.ResolutionRate*100)
			return nil
		},
	}
}
