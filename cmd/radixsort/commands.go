package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/npillmayer/schuko/tracing"
	"github.com/spf13/cobra"

	radixsort "github.com/NarmeenMousa31/Radix-Sort"
	"github.com/NarmeenMousa31/Radix-Sort/config"
	"github.com/NarmeenMousa31/Radix-Sort/metrics"
	"github.com/NarmeenMousa31/Radix-Sort/wordcheck"
	"github.com/NarmeenMousa31/Radix-Sort/wordfile"
	"github.com/NarmeenMousa31/Radix-Sort/wordindex"
)

var traceKeys = []string{
	"radixsort",
	"radixsort.wordcheck",
	"radixsort.wordfile",
	"radixsort.wordindex",
}

// rootOptions are the persistent flags shared by all subcommands.
type rootOptions struct {
	configPath string
	maxLen     int
	trace      string
}

// app is the wiring built from the effective configuration.
type app struct {
	cfg       config.Config
	checker   *wordcheck.Checker
	collector *metrics.Collector
}

func (o *rootOptions) setup() (*app, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, err
	}
	if o.maxLen != 0 {
		cfg.MaxWordLength = o.maxLen
	}
	if o.trace != "" {
		cfg.TraceLevel = o.trace
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	setTraceLevel(cfg.TraceLevel)
	return &app{
		cfg:       cfg,
		checker:   wordcheck.New(cfg.MaxWordLength),
		collector: metrics.New(),
	}, nil
}

func setTraceLevel(level string) {
	l := tracing.LevelError
	switch level {
	case "debug":
		l = tracing.LevelDebug
	case "info":
		l = tracing.LevelInfo
	}
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(l)
	}
}

func (a *app) newList() *radixsort.List {
	return radixsort.New(
		radixsort.WithMaxLen(a.cfg.MaxWordLength),
		radixsort.WithObserver(a.collector),
	)
}

// load reads path into list and prints a note for every refused line.
func (a *app) load(out io.Writer, list *radixsort.List, path string) error {
	report, err := wordfile.LoadFile(list, path, a.checker)
	if err != nil {
		return err
	}
	printReport(out, report, a.cfg.MaxWordLength)
	return nil
}

func printReport(out io.Writer, report wordfile.Report, maxLen int) {
	if report.Overlong > 0 {
		fmt.Fprintf(out, "Note: There are strings longer than %d characters. Skipping.\n", maxLen)
	}
	for _, rej := range report.Rejected {
		fmt.Fprintf(out, "Note: %v. Skipping.\n", rej.Err)
	}
}

func printWords(out io.Writer, title string, list *radixsort.List) {
	if list.Len() == 0 {
		fmt.Fprintln(out, "The list is empty.")
		return
	}
	fmt.Fprintln(out, title)
	for w := range list.All() {
		fmt.Fprintln(out, w)
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	rootCmd := &cobra.Command{
		Use:   "radixsort",
		Short: "Sort word lists with a linked-list radix sort",
		Long: `radixsort loads words (ASCII letters, digits and '_', not starting
with a digit, at most --max-len bytes), sorts them with an LSD radix sort
over a doubly linked list and prints or saves them.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "YAML configuration file")
	rootCmd.PersistentFlags().IntVar(&opts.maxLen, "max-len", 0, "maximum word length in bytes (default from config, 30)")
	rootCmd.PersistentFlags().StringVar(&opts.trace, "trace", "", "trace level: debug, info or error")

	rootCmd.AddCommand(newSortCmd(opts), newLookupCmd(opts), newMenuCmd(opts))
	return rootCmd
}

func newSortCmd(opts *rootOptions) *cobra.Command {
	var output string
	var stats bool
	cmd := &cobra.Command{
		Use:   "sort [file]",
		Short: "Load a word file, sort it and print or save the result",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.setup()
			if err != nil {
				return err
			}
			input := a.cfg.InputFile
			if len(args) == 1 {
				input = args[0]
			}
			if input == "" {
				return errors.New("no input file given")
			}
			if output == "" {
				output = a.cfg.OutputFile
			}
			out := cmd.OutOrStdout()
			list := a.newList()
			if err := a.load(out, list, input); err != nil {
				return err
			}
			list.Sort()
			if output != "" {
				if err := wordfile.SaveFile(output, list); err != nil {
					return err
				}
				fmt.Fprintf(out, "Sorted strings have been successfully saved to %s.\n", output)
			} else {
				printWords(out, "Sorted strings:", list)
			}
			if stats {
				s, err := a.collector.Snapshot()
				if err != nil {
					return err
				}
				fmt.Fprintln(out, s)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "write sorted words to this file instead of stdout")
	cmd.Flags().BoolVar(&stats, "stats", false, "print sort metrics")
	return cmd
}

func newLookupCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "lookup file prefix",
		Short: "Print the sorted distinct words of a file that start with prefix",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.setup()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			list := a.newList()
			if err := a.load(out, list, args[0]); err != nil {
				return err
			}
			idx := wordindex.Build(list)
			matches := idx.Prefix(args[1])
			if len(matches) == 0 {
				fmt.Fprintf(out, "No word starts with %q.\n", args[1])
				return nil
			}
			for _, w := range matches {
				fmt.Fprintf(out, "%s\t%d\n", w, idx.Count(w))
			}
			return nil
		},
	}
}

func newMenuCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Interactive menu: load, print, sort, add, delete and save words",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.setup()
			if err != nil {
				return err
			}
			return newMenu(a, cmd.InOrStdin(), cmd.OutOrStdout()).run()
		},
	}
}
