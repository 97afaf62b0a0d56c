package repl

import (
	"testing"

	"github.com/nsqlite/litedb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitList(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "empty", input: "", want: []string{}},
		{name: "single", input: "1", want: []string{"1"}},
		{name: "trimmed", input: " 1 ,  'a' ", want: []string{"1", "'a'"}},
		{name: "comma in quotes", input: "'a, b', 2", want: []string{"'a, b'", "2"}},
		{name: "comma in parentheses", input: "price DECIMAL(10, 2), name TEXT", want: []string{"price DECIMAL(10, 2)", "name TEXT"}},
		{name: "trailing comma", input: "1,", want: []string{"1", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, splitList(tt.input))
		})
	}
}

func TestSplitKeyword(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantBefore string
		wantAfter  string
		wantFound  bool
	}{
		{name: "absent", input: "age = 3", wantBefore: "age = 3"},
		{name: "present", input: "age = 3 where id = 1", wantBefore: "age = 3", wantAfter: "id = 1", wantFound: true},
		{name: "upper case", input: "WHERE id = 1", wantAfter: "id = 1", wantFound: true},
		{name: "inside quotes", input: "name = 'x where y'", wantBefore: "name = 'x where y'"},
		{name: "part of word", input: "nowhere = 1", wantBefore: "nowhere = 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before, after, found := splitKeyword(tt.input, "where")
			assert.Equal(t, tt.wantBefore, before)
			assert.Equal(t, tt.wantAfter, after)
			assert.Equal(t, tt.wantFound, found)
		})
	}
}

func TestParseCreate(t *testing.T) {
	got, err := parseCreate("users id INTEGER PRIMARY KEY, name TEXT NOT NULL, price DECIMAL(10, 2)")
	require.NoError(t, err)
	assert.Equal(t, "users", got.table)
	assert.Equal(t, litedb.ColumnDefs{
		{Name: "id", Definition: "INTEGER PRIMARY KEY"},
		{Name: "name", Definition: "TEXT NOT NULL"},
		{Name: "price", Definition: "DECIMAL(10, 2)"},
	}, got.columns)

	_, err = parseCreate("users")
	assert.ErrorContains(t, err, "usage: .create")

	_, err = parseCreate("users id INT,")
	assert.ErrorContains(t, err, "empty column definition")
}

func TestParseAppend(t *testing.T) {
	got, err := parseAppend("users 1, 'it''s, here', NULL")
	require.NoError(t, err)
	assert.Equal(t, "users", got.table)
	assert.Equal(t, []any{"1", "'it''s, here'", "NULL"}, got.values)

	_, err = parseAppend("users")
	assert.ErrorContains(t, err, "usage: .append")

	_, err = parseAppend("users 1,,2")
	assert.ErrorContains(t, err, "value 2 is empty")
}

func TestParseUpdate(t *testing.T) {
	got, err := parseUpdate("users name = 'a=b' where id = 1")
	require.NoError(t, err)
	assert.Equal(t, updateArgs{table: "users", column: "name", value: "'a=b'", filter: "id = 1"}, got)

	got, err = parseUpdate("users age=age + 1")
	require.NoError(t, err)
	assert.Equal(t, updateArgs{table: "users", column: "age", value: "age + 1"}, got)

	for _, input := range []string{"", "users", "users age", "users age =", "users age = 1 where"} {
		_, err := parseUpdate(input)
		assert.ErrorContains(t, err, "usage: .update", input)
	}
}

func TestParseTableFilter(t *testing.T) {
	got, err := parseTableFilter("users", usageDelete)
	require.NoError(t, err)
	assert.Equal(t, filterArgs{table: "users"}, got)

	got, err = parseTableFilter("users where age > 3", usageDelete)
	require.NoError(t, err)
	assert.Equal(t, filterArgs{table: "users", filter: "age > 3"}, got)

	_, err = parseTableFilter("users age > 3", usageCount)
	assert.ErrorContains(t, err, "usage: .count")

	_, err = parseTableFilter("", usageDelete)
	assert.ErrorContains(t, err, "usage: .delete")
}

func TestParseGet(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  getArgs
	}{
		{
			name:  "table only",
			input: "users",
			want:  getArgs{table: "users", columns: litedb.AllColumns()},
		},
		{
			name:  "number",
			input: "users 1",
			want:  getArgs{table: "users", number: 1, columns: litedb.AllColumns()},
		},
		{
			name:  "columns and filter",
			input: "users 5 cols id, name where age > 3",
			want: getArgs{
				table:   "users",
				number:  5,
				columns: litedb.ColumnList("id", "name"),
				filter:  "age > 3",
			},
		},
		{
			name:  "columns without number",
			input: "users COLS name",
			want:  getArgs{table: "users", columns: litedb.ColumnList("name")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseGet(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	for _, input := range []string{"", "users cols", "users fields id", "users where"} {
		_, err := parseGet(input)
		assert.ErrorContains(t, err, "usage: .get", input)
	}
}
