package app

import "strings"

// Span attribute budget for formatted SQL.
const tracedQueryLimit = 512

// formatDBQueryForTrace collapses multiline SQL into a single line so span
// attributes stay readable, truncating anything past the budget.
func formatDBQueryForTrace(query string) string {
	fields := strings.Fields(query)
	if len(fields) == 0 {
		return ""
	}

	flat := strings.Join(fields, " ")
	if len(flat) > tracedQueryLimit {
		return flat[:tracedQueryLimit] + "..."
	}
	return flat
}
