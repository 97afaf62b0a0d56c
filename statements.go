package litedb

import (
	"fmt"
	"strings"
)

func whereClause(filter string) string {
	if filter == "" {
		return ""
	}
	return " WHERE " + filter
}

func buildCreateTable(name string, columns ColumnDefs) string {
	defs := make([]string, len(columns))
	for i, col := range columns {
		defs[i] = fmt.Sprintf("%s %s", col.Name, col.Definition)
	}
	return fmt.Sprintf("CREATE TABLE %s (%s)", name, strings.Join(defs, ", "))
}

func buildInsert(table string, values []any) string {
	return fmt.Sprintf("INSERT INTO %s VALUES (%s)", table, formatLiterals(values))
}

func buildInsertPlaceholders(table string, arity int) string {
	placeholders := make([]string, arity)
	for i := range placeholders {
		placeholders[i] = "?"
	}
	return fmt.Sprintf("INSERT INTO %s VALUES (%s)", table, strings.Join(placeholders, ", "))
}

func buildUpdate(table, column string, newValue any, filter string) string {
	return fmt.Sprintf("UPDATE %s SET %s=%s", table, column, formatLiteral(newValue)) +
		whereClause(filter)
}

func buildDelete(table, filter string) string {
	return fmt.Sprintf("DELETE FROM %s", table) + whereClause(filter)
}

func buildSelect(table string, columns Columns, filter string) string {
	return fmt.Sprintf("SELECT %s FROM %s", columns, table) + whereClause(filter)
}
