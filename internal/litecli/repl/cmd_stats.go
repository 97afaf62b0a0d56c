package repl

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/nsqlite/litedb/internal/litecli/styled"
	"github.com/nsqlite/litedb/internal/util/numutil"
)

func cmdStats(r *Repl) {
	stats := r.db.Stats()

	tw := styled.NewTableWriter()
	tw.AppendHeader(table.Row{"Reads", "Mutations", "Commits", "Failures"})
	tw.AppendRow(table.Row{
		numutil.IntWithCommas(stats.Reads),
		numutil.IntWithCommas(stats.Mutations),
		numutil.IntWithCommas(stats.Commits),
		numutil.IntWithCommas(stats.Failures),
	})

	fmt.Fprintln(r.out, tw.Render())
	styled.DimmedColor().Fprintf(r.out, "Database: %s\n", r.db.Name())
	styled.DimmedColor().Fprintf(r.out, "Driver: %s\n", r.db.Driver().Value)
	if stats.LastFailure != "" {
		styled.DimmedColor().Fprintf(
			r.out, "Last failure at %s: %s\n",
			stats.LastFailureAt.Format("2006-01-02 15:04:05"), stats.LastFailure,
		)
	}
	fmt.Fprintln(r.out)
}
