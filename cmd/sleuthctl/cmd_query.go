package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newQueryCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "query SUSPECT CRIME",
		Short: "Check whether a suspect is guilty of a crime",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := flags.openEngine(cmd)
			if err != nil {
				return err
			}

			result, err := e.IsGuilty(args[0], args[1])
			if err != nil {
				return err
			}

			verdict := "not guilty"
			switch {
			case result.Overridden:
				verdict = "guilty (override)"
			case result.Guilty:
				verdict = "guilty"
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Suspect:    %s\n", result.Suspect)
			fmt.Fprintf(out, "Crime:      %s\n", result.Crime)
			if result.Rule != "" {
				fmt.Fprintf(out, "Rule:       %s\n", result.Rule)
			}
			fmt.Fprintf(out, "Verdict:    %s\n", verdict)
			fmt.Fprintf(out, "Confidence: %.2f\n", result.Confidence)
			fmt.Fprintf(out, "Reasoning:\n")
			for _, line := range result.Reasoning {
				fmt.Fprintf(out, "  %s\n", line)
			}
			return nil
		},
	}
}
