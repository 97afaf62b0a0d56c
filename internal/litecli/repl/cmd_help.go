package repl

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/nsqlite/litedb/internal/litecli/styled"
)

type dotCmd struct {
	name         string
	autocomplete string
	help         string
	args         string
}

func cmdHelpCommands() []dotCmd {
	cmds := []dotCmd{
		{name: usageCreate, autocomplete: ".create ", help: "Create a table", args: "table, then column definitions"},
		{name: usageAppend, autocomplete: ".append ", help: "Insert a row, strings must be quoted", args: "table, then values"},
		{name: usageUpdate, autocomplete: ".update ", help: "Set a column, every row when no filter is given", args: "filter (optional)"},
		{name: usageDelete, autocomplete: ".delete ", help: "Delete rows, every row when no filter is given", args: "filter (optional)"},
		{name: usageGet, autocomplete: ".get ", help: "Show rows of a table", args: "N (optional, default all)"},
		{name: usageCount, autocomplete: ".count ", help: "Count the rows of a table", args: "filter (optional)"},
		{name: ".columns <table>", autocomplete: ".columns ", help: "List all columns in a table", args: "table (required)"},

		{name: ".tables", autocomplete: ".tables", help: "List all tables in the database"},
		{name: ".stats", autocomplete: ".stats", help: "Show the statement counters of this session"},
		{name: ".clear", autocomplete: ".clear", help: "Clear the terminal screen"},
		{name: ".help", autocomplete: ".help", help: "Show the help message"},
		{name: ".quit", autocomplete: ".quit", help: "Exit the application"},
		{name: ".exit", autocomplete: ".exit", help: "Exit the application"},
		{name: "CTRL+c", help: "Exit the application"},
	}

	sort.Slice(cmds, func(i, j int) bool {
		return cmds[i].name < cmds[j].name
	})

	return cmds
}

func cmdHelp(w io.Writer) {
	fmt.Fprintln(w, "Available commands:")
	cmds := cmdHelpCommands()

	tw := styled.NewTableWriter()
	tw.AppendHeader(table.Row{"Command", "Description", "Arguments"})

	for _, cmd := range cmds {
		tw.AppendRow(table.Row{cmd.name, cmd.help, cmd.args})
	}

	fmt.Fprintln(w, tw.Render())
}

func takesTable(cmd string) bool {
	switch strings.ToLower(cmd) {
	case ".append", ".update", ".delete", ".get", ".count", ".columns":
		return true
	}
	return false
}

// completer suggests commands, and table names once a command that takes a
// table has been typed.
func (r *Repl) completer(line string) []string {
	results := []string{}

	name, rest := cutWord(line)
	if rest == "" && strings.HasSuffix(line, " ") && takesTable(name) {
		r.mu.Lock()
		defer r.mu.Unlock()
		if r.stopped {
			return results
		}

		tables, err := r.db.TableNames(r.ctx)
		if err != nil {
			return results
		}
		for _, t := range tables {
			results = append(results, name+" "+t+" ")
		}
		return results
	}

	for _, cmd := range cmdHelpCommands() {
		if cmd.autocomplete == "" {
			continue
		}
		if strings.HasPrefix(strings.ToLower(cmd.autocomplete), strings.ToLower(line)) {
			results = append(results, cmd.autocomplete)
		}
	}

	return results
}
