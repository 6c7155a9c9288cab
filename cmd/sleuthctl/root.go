package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sleuth/internal/corpus"
	"sleuth/internal/engine"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags.
var version = "dev"

type rootFlags struct {
	corpus   string
	strict   bool
	markdown bool
	verbose  bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	cmd := &cobra.Command{
		Use:           "sleuthctl",
		Short:         "Evaluate suspects against crimes",
		Long:          "sleuthctl checks rule conditions against the facts of a corpus\nand ranks every suspect and crime pair by evidence.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
	}

	f := cmd.PersistentFlags()
	f.StringVar(&flags.corpus, "corpus", os.Getenv("SLEUTH_CORPUS"), "corpus YAML file (built-in corpus when empty)")
	f.BoolVar(&flags.strict, "strict", false, "reject unknown suspects and crimes")
	f.BoolVar(&flags.markdown, "markdown", false, "render tables as Markdown")
	f.BoolVarP(&flags.verbose, "verbose", "v", false, "log engine activity to stderr")

	cmd.AddCommand(
		newQueryCmd(flags),
		newInvestigateCmd(flags),
		newFactsCmd(flags),
		newRulesCmd(flags),
	)
	return cmd
}

// openEngine loads the corpus selected by flags and builds an engine over it.
func (f *rootFlags) openEngine(cmd *cobra.Command) (*engine.Engine, error) {
	c, err := corpus.Open(f.corpus)
	if err != nil {
		return nil, fmt.Errorf("load corpus: %w", err)
	}

	level := slog.LevelWarn
	if f.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	return engine.New(c,
		engine.WithStrictIdentifiers(f.strict),
		engine.WithLogger(logger),
	), nil
}

// newTable returns a table writer styled for terminal output.
func newTable() table.Writer {
	w := table.NewWriter()
	w.SetStyle(table.StyleLight)
	return w
}

// render writes t to out as a terminal table or as Markdown.
func (f *rootFlags) render(out io.Writer, t table.Writer) {
	if f.markdown {
		fmt.Fprintln(out, t.RenderMarkdown())
		return
	}
	fmt.Fprintln(out, t.Render())
}
