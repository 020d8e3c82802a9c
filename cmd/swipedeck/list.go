package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/muesli/reflow/truncate"

	"github.com/talvid/swipedeck/internal/deck"
)

type listOptions struct {
	jsonOutput bool
	questions  bool
}

func newListCmd(flags *rootFlags) *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list [deck.yaml]",
		Short: "List a deck's categories and question counts",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags, args)
			if err != nil {
				return err
			}
			d, err := deck.Load(cfg.Deck)
			if err != nil {
				return err
			}
			return runList(cmd, d, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")
	cmd.Flags().BoolVar(&opts.questions, "questions", false, "List every question instead of category totals")

	return cmd
}

type categorySummary struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

func summarize(d *deck.Deck) []categorySummary {
	counts := make(map[string]int, d.Len())
	for i := 0; i < d.Len(); i++ {
		counts[d.Category(i)]++
	}
	categories := d.Categories()
	out := make([]categorySummary, 0, len(categories))
	for _, cat := range categories {
		out = append(out, categorySummary{Category: cat, Count: counts[cat]})
	}
	return out
}

func runList(cmd *cobra.Command, d *deck.Deck, opts *listOptions) error {
	if opts.questions {
		return renderQuestions(cmd, d, opts)
	}

	summaries := summarize(d)
	if opts.jsonOutput {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(summaries)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "CATEGORY\tQUESTIONS\n")
	for _, s := range summaries {
		fmt.Fprintf(w, "%s\t%d\n", s.Category, s.Count)
	}
	fmt.Fprintf(w, "total\t%d\n", d.Len())
	return w.Flush()
}

type questionRow struct {
	Number   int    `json:"number"`
	Category string `json:"category"`
	Text     string `json:"text"`
}

func renderQuestions(cmd *cobra.Command, d *deck.Deck, opts *listOptions) error {
	rows := make([]questionRow, 0, d.Len())
	for i := 0; i < d.Len(); i++ {
		rec := d.At(i)
		rows = append(rows, questionRow{Number: i + 1, Category: rec.Category, Text: rec.Text})
	}

	if opts.jsonOutput {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	}

	width := terminalWidth()
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	for _, row := range rows {
		text := row.Text
		if max := width - 20; max > 10 {
			text = truncate.StringWithTail(text, uint(max), "…")
		}
		fmt.Fprintf(w, "%d\t%s\t%s\n", row.Number, row.Category, text)
	}
	return w.Flush()
}

// terminalWidth reports the width of stdout, or a conservative default
// when the output is not a terminal.
func terminalWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 80
	}
	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return 80
	}
	return width
}
