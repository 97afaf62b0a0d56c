package repl

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/nsqlite/litedb/internal/litecli/styled"
)

func cmdTables(r *Repl) {
	tables, err := r.db.TableNames(r.ctx)
	if err != nil {
		printError(r, err)
		return
	}

	if len(tables) == 0 {
		styled.DimmedColor().Fprintln(r.out, "No tables found")
		return
	}

	tw := styled.NewTableWriter()
	tw.AppendHeader(table.Row{"Table"})
	for _, name := range tables {
		tw.AppendRow(table.Row{name})
	}
	fmt.Fprintln(r.out, tw.Render())
}

const usageColumns = ".columns <table>"

func cmdColumns(r *Repl, args string) {
	name, rest := cutWord(args)
	if name == "" || rest != "" {
		printError(r, usageError{usageColumns})
		return
	}

	columns, err := r.db.GetTable(name).Columns(r.ctx)
	if err != nil {
		printError(r, err)
		return
	}

	if len(columns) == 0 {
		styled.DimmedColor().Fprintf(r.out, "Table %s not found\n", name)
		return
	}

	tw := styled.NewTableWriter()
	tw.AppendHeader(table.Row{"Column", "Type"})
	for _, col := range columns {
		tw.AppendRow(table.Row{col.Name, col.Type})
	}
	fmt.Fprintln(r.out, tw.Render())
}
