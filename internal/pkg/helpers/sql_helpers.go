package helpers

import (
	"database/sql"
	"fmt"
	"strings"
)

// UpdateSet accumulates column assignments for a partial UPDATE. Only
// fields present in the request are added, so the generated SET clause
// touches nothing else.
type UpdateSet struct {
	columns []string
	values  []interface{}
}

// Add records one column assignment. Column names come from fixed
// allow-lists in the callers, never from request data.
func (u *UpdateSet) Add(column string, value interface{}) {
	u.columns = append(u.columns, column)
	u.values = append(u.values, value)
}

// Empty reports whether no fields were added.
func (u *UpdateSet) Empty() bool {
	return len(u.columns) == 0
}

// Clause renders the SET clause with positional placeholders starting at
// $start and returns the bound values in order.
func (u *UpdateSet) Clause(start int) (string, []interface{}) {
	assignments := make([]string, len(u.columns))
	for i, col := range u.columns {
		assignments[i] = fmt.Sprintf("%s = $%d", col, start+i)
	}
	return strings.Join(assignments, ", "), u.values
}

// NextPlaceholder returns the placeholder index following the bound values.
func (u *UpdateSet) NextPlaceholder(start int) int {
	return start + len(u.columns)
}

// GetNullString converts a string pointer to sql.NullString. A nil pointer
// becomes an empty NullString.
func GetNullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
