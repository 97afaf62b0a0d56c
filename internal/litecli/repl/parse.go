package repl

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/nsqlite/litedb"
)

// usageError is returned when a command does not match its syntax.
type usageError struct {
	usage string
}

func (e usageError) Error() string {
	return "usage: " + e.usage
}

// scanTopLevel calls fn with the index of every byte of s that is outside
// quotes and parentheses. Returning false stops the scan.
func scanTopLevel(s string, fn func(i int) bool) {
	var quote byte
	depth := 0

	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
			continue
		case c == '\'' || c == '"' || c == '`':
			quote = c
			continue
		case c == '(':
			depth++
			continue
		case c == ')':
			if depth > 0 {
				depth--
			}
			continue
		}

		if depth == 0 && !fn(i) {
			return
		}
	}
}

// splitList splits s on the commas that are outside quotes and parentheses.
func splitList(s string) []string {
	items := []string{}
	start := 0
	scanTopLevel(s, func(i int) bool {
		if s[i] == ',' {
			items = append(items, strings.TrimSpace(s[start:i]))
			start = i + 1
		}
		return true
	})

	last := strings.TrimSpace(s[start:])
	if last != "" || len(items) > 0 {
		items = append(items, last)
	}
	return items
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

// splitKeyword splits s around the first top-level occurrence of keyword as
// a whole word, ignoring case.
func splitKeyword(s, keyword string) (before string, after string, found bool) {
	lower := strings.ToLower(s)
	idx := -1
	scanTopLevel(s, func(i int) bool {
		if !strings.HasPrefix(lower[i:], keyword) {
			return true
		}
		end := i + len(keyword)
		if (i == 0 || isSpace(s[i-1])) && (end == len(s) || isSpace(s[end])) {
			idx = i
			return false
		}
		return true
	})

	if idx < 0 {
		return strings.TrimSpace(s), "", false
	}
	return strings.TrimSpace(s[:idx]), strings.TrimSpace(s[idx+len(keyword):]), true
}

// cutWord splits s into its first whitespace separated word and the rest.
func cutWord(s string) (string, string) {
	s = strings.TrimSpace(s)
	i := strings.IndexFunc(s, unicode.IsSpace)
	if i < 0 {
		return s, ""
	}
	return s[:i], strings.TrimSpace(s[i:])
}

// parseFilterOnly parses an optional "where <filter>" suffix with nothing
// before it.
func parseFilterOnly(rest string, usage string) (string, error) {
	if rest == "" {
		return "", nil
	}

	head, filter, found := splitKeyword(rest, "where")
	if !found || head != "" || filter == "" {
		return "", usageError{usage}
	}
	return filter, nil
}

type createArgs struct {
	table   string
	columns litedb.ColumnDefs
}

const usageCreate = ".create <table> <column> <definition>, ..."

func parseCreate(args string) (createArgs, error) {
	table, rest := cutWord(args)
	if table == "" || rest == "" {
		return createArgs{}, usageError{usageCreate}
	}

	columns := litedb.ColumnDefs{}
	for _, item := range splitList(rest) {
		name, def := cutWord(item)
		if name == "" {
			return createArgs{}, errors.New("empty column definition")
		}
		columns = append(columns, litedb.ColumnDef{Name: name, Definition: def})
	}

	return createArgs{table: table, columns: columns}, nil
}

type appendArgs struct {
	table  string
	values []any
}

const usageAppend = ".append <table> <value>, ..."

func parseAppend(args string) (appendArgs, error) {
	table, rest := cutWord(args)
	if table == "" || rest == "" {
		return appendArgs{}, usageError{usageAppend}
	}

	items := splitList(rest)
	values := make([]any, len(items))
	for i, item := range items {
		if item == "" {
			return appendArgs{}, fmt.Errorf("value %d is empty", i+1)
		}
		values[i] = item
	}

	return appendArgs{table: table, values: values}, nil
}

type updateArgs struct {
	table  string
	column string
	value  string
	filter string
}

const usageUpdate = ".update <table> <column> = <value> [where <filter>]"

func parseUpdate(args string) (updateArgs, error) {
	table, rest := cutWord(args)
	head, filter, found := splitKeyword(rest, "where")
	if table == "" || (found && filter == "") {
		return updateArgs{}, usageError{usageUpdate}
	}

	column, value, ok := strings.Cut(head, "=")
	column, value = strings.TrimSpace(column), strings.TrimSpace(value)
	if !ok || column == "" || value == "" {
		return updateArgs{}, usageError{usageUpdate}
	}

	return updateArgs{table: table, column: column, value: value, filter: filter}, nil
}

type filterArgs struct {
	table  string
	filter string
}

const (
	usageDelete = ".delete <table> [where <filter>]"
	usageCount  = ".count <table> [where <filter>]"
)

func parseTableFilter(args string, usage string) (filterArgs, error) {
	table, rest := cutWord(args)
	if table == "" {
		return filterArgs{}, usageError{usage}
	}

	filter, err := parseFilterOnly(rest, usage)
	if err != nil {
		return filterArgs{}, err
	}
	return filterArgs{table: table, filter: filter}, nil
}

type getArgs struct {
	table   string
	number  int
	columns litedb.Columns
	filter  string
}

const usageGet = ".get <table> [N] [cols <column>, ...] [where <filter>]"

// parseGet parses the .get command. Without N every matching row is shown.
func parseGet(args string) (getArgs, error) {
	table, rest := cutWord(args)
	head, filter, found := splitKeyword(rest, "where")
	if table == "" || (found && filter == "") {
		return getArgs{}, usageError{usageGet}
	}

	parsed := getArgs{table: table, columns: litedb.AllColumns(), filter: filter}

	word, remaining := cutWord(head)
	if n, err := strconv.Atoi(word); err == nil {
		parsed.number = n
		head = remaining
	}

	if head != "" {
		keyword, list := cutWord(head)
		if strings.ToLower(keyword) != "cols" || list == "" {
			return getArgs{}, usageError{usageGet}
		}
		parsed.columns = litedb.ColumnList(splitList(list)...)
	}

	return parsed, nil
}
