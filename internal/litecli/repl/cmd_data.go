package repl

import (
	"errors"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/nsqlite/litedb"
	"github.com/nsqlite/litedb/internal/litecli/styled"
	"github.com/nsqlite/litedb/internal/util/numutil"
)

func cmdCreate(r *Repl, args string) {
	parsed, err := parseCreate(args)
	if err != nil {
		printError(r, err)
		return
	}

	t, err := r.db.CreateTable(r.ctx, parsed.table, parsed.columns)
	if err != nil {
		printError(r, err)
		return
	}
	printOK(r, fmt.Sprintf("Table %s created", t.Name()))
}

func cmdAppend(r *Repl, args string) {
	parsed, err := parseAppend(args)
	if err != nil {
		printError(r, err)
		return
	}

	if err := r.db.GetTable(parsed.table).Append(r.ctx, parsed.values...); err != nil {
		printError(r, err)
		return
	}
	printOK(r, "Row appended")
}

func cmdUpdate(r *Repl, args string) {
	parsed, err := parseUpdate(args)
	if err != nil {
		printError(r, err)
		return
	}

	err = r.db.UpdateData(r.ctx, parsed.table, parsed.column, parsed.value, parsed.filter)
	if err != nil {
		printError(r, err)
		return
	}
	printOK(r, "Rows updated")
}

func cmdDelete(r *Repl, args string) {
	parsed, err := parseTableFilter(args, usageDelete)
	if err != nil {
		printError(r, err)
		return
	}

	if err := r.db.DeleteData(r.ctx, parsed.table, parsed.filter); err != nil {
		printError(r, err)
		return
	}
	printOK(r, "Rows deleted")
}

func cmdGet(r *Repl, args string) {
	parsed, err := parseGet(args)
	if err != nil {
		printError(r, err)
		return
	}

	res, err := r.db.GetData(r.ctx, parsed.table, parsed.number, parsed.columns, parsed.filter)
	if err != nil {
		printError(r, err)
		return
	}

	if res.Len() == 0 {
		styled.DimmedColor().Fprintln(r.out, "No rows found")
		return
	}

	tw := styled.NewTableWriter()
	header := table.Row{}
	for _, col := range res.Columns() {
		header = append(header, col)
	}
	tw.AppendHeader(header)

	for _, row := range res.All() {
		values := table.Row{}
		for _, value := range row {
			values = append(values, displayValue(value))
		}
		tw.AppendRow(values)
	}

	fmt.Fprintln(r.out, tw.Render())
	styled.DimmedColor().Fprintf(r.out, "%s row(s)\n", numutil.IntWithCommas(res.Len()))
}

func cmdCount(r *Repl, args string) {
	parsed, err := parseTableFilter(args, usageCount)
	if err != nil {
		printError(r, err)
		return
	}

	n, err := r.db.GetTable(parsed.table).Count(r.ctx, parsed.filter)
	if err != nil {
		printError(r, err)
		return
	}

	tw := styled.NewTableWriter()
	tw.AppendHeader(table.Row{"Count"})
	tw.AppendRow(table.Row{numutil.IntWithCommas(n)})
	fmt.Fprintln(r.out, tw.Render())
}

// displayValue renders a driver value for the result table.
func displayValue(value any) string {
	switch v := value.(type) {
	case nil:
		return "NULL"
	case []byte:
		return fmt.Sprintf("X'%X'", v)
	default:
		return fmt.Sprint(v)
	}
}

func printOK(r *Repl, msg string) {
	tw := styled.NewTableWriter()
	tw.AppendHeader(table.Row{"OK"})
	tw.AppendRow(table.Row{msg})
	fmt.Fprintln(r.out, tw.Render())
}

// printError shows usage errors as a hint and everything else as a table
// with the error class.
func printError(r *Repl, err error) {
	var usage usageError
	if errors.As(err, &usage) {
		styled.ErrorColor().Fprintln(r.out, usage.Error())
		return
	}

	tw := styled.NewTableWriter()
	tw.AppendHeader(table.Row{"Error", "Class"})
	tw.AppendRow(table.Row{err.Error(), litedb.Classify(err).Value})
	fmt.Fprintln(r.out, tw.Render())
}
