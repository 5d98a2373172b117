package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/kubepick/kubepick/internal/domain"
	"github.com/kubepick/kubepick/internal/history"
)

// NewHistoryCmd creates the history subcommand.
func NewHistoryCmd() *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent dispatches",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := history.New(history.DBPath())
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			return printHistory(cmd.OutOrStdout(), store, count)
		},
	}

	cmd.Flags().IntVarP(&count, "count", "c", 20, "number of entries to show")

	return cmd
}

// printHistory renders records newest first, one line per dispatch.
func printHistory(out io.Writer, store domain.HistoryStore, limit int) error {
	records, err := store.Recent(limit)
	if err != nil {
		return err
	}

	if len(records) == 0 {
		fmt.Fprintln(out, "no dispatches recorded")
		return nil
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for _, rec := range records {
		key := rec.AcceptKey
		if key == "" {
			key = "enter"
		}
		target := rec.ResourceType
		if rec.Namespace != "" {
			target = rec.Namespace + "/" + rec.ResourceType
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d selected\t%s\n",
			humanize.Time(rec.CreatedAt), rec.Action, key, rec.Selected, target)
	}
	return tw.Flush()
}
