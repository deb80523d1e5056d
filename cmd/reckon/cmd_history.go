package main

import (
	"fmt"
	"io"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/JackWReid/reckon/internal/store"
)

func newHistoryCmd(opts *options) *cobra.Command {
	var limit int
	var clearAll bool
	var showPath bool

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List or clear evaluation history",
		Long: `List recorded evaluations, newest first.

Examples:
  reckon history
  reckon history --limit 5
  reckon history --clear
  reckon history --path`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			kv, err := opts.openKV()
			if err != nil {
				return err
			}
			if showPath {
				fmt.Fprintln(cmd.OutOrStdout(), storageLocation(kv))
				return nil
			}
			prefs := store.NewPrefs(kv)
			if clearAll {
				if err := prefs.ClearHistory(); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "History cleared")
				return nil
			}
			return writeHistory(cmd.OutOrStdout(), prefs.LoadHistory(), limit)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "number of entries to show (0 for all)")
	cmd.Flags().BoolVar(&clearAll, "clear", false, "delete all history")
	cmd.Flags().BoolVar(&showPath, "path", false, "print where history is stored")

	return cmd
}

func writeHistory(w io.Writer, entries []store.HistoryEntry, limit int) error {
	if len(entries) == 0 {
		_, err := fmt.Fprintln(w, "No history")
		return err
	}
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	_, err := fmt.Fprintln(w, historyTable(entries).Render())
	return err
}

// historyTable returns a configured table.Writer for the entries.
func historyTable(entries []store.HistoryEntry) table.Writer {
	tw := table.NewWriter()
	tw.AppendHeader(table.Row{"#", "EXPRESSION", "RESULT", "WHEN"})
	for i, e := range entries {
		tw.AppendRow(table.Row{
			i + 1,
			e.Expression,
			e.Result,
			formatWhen(e.Timestamp),
		})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 2, Align: text.AlignLeft},
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignLeft},
	})
	tw.SetStyle(table.StyleLight)
	return tw
}

func formatWhen(ms int64) string {
	if ms == 0 {
		return "-"
	}
	return time.UnixMilli(ms).Local().Format("2006-01-02 15:04")
}
