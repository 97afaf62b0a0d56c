package litedb

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// Quote returns s as a SQL string literal, doubling any single quote.
//
//	Quote("O'Brien") -> 'O''Brien'
func Quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// formatLiteral renders v for verbatim interpolation into statement text.
// Strings are written as given and are expected to be pre-formatted by the
// caller.
func formatLiteral(v any) string {
	switch val := v.(type) {
	case nil:
		return "NULL"
	case string:
		return val
	case bool:
		if val {
			return "1"
		}
		return "0"
	case []byte:
		return "X'" + strings.ToUpper(hex.EncodeToString(val)) + "'"
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprint(val)
	}
}

// formatLiterals renders every value with formatLiteral, comma separated.
func formatLiterals(values []any) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = formatLiteral(v)
	}
	return strings.Join(parts, ", ")
}
