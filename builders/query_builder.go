package builders

import (
	"strings"
)

// SortSpec is the effective (key, direction) pair for an ORDER BY clause.
// Key is always a member of the allow-list it was parsed against.
type SortSpec struct {
	Key       string
	Direction string
}

// ParseSort parses a "key:direction" specifier against an allow-list of
// sortable keys. Unrecognized keys fall back to fallbackKey, anything other
// than asc/desc falls back to asc. Parsing never fails.
func ParseSort(raw string, allowedKeys []string, fallbackKey string) SortSpec {
	spec := SortSpec{Key: fallbackKey, Direction: "asc"}
	if raw == "" {
		return spec
	}

	key, dir, _ := strings.Cut(raw, ":")
	for _, allowed := range allowedKeys {
		if key == allowed {
			spec.Key = key
			break
		}
	}
	if strings.EqualFold(dir, "desc") {
		spec.Direction = "desc"
	}
	return spec
}

// OrderExpr renders the spec against a map of sort key -> column reference.
// Columns come from the caller's fixed map, never from request input.
func (s SortSpec) OrderExpr(columns map[string]string) string {
	column, ok := columns[s.Key]
	if !ok {
		column = s.Key
	}
	return column + " " + strings.ToUpper(s.Direction)
}

// ListQuery collects parameterized WHERE fragments for a list endpoint.
// Fragments are joined with AND; every value is bound, never interpolated.
type ListQuery struct {
	clauses []string
	params  []interface{}
}

func NewListQuery() *ListQuery {
	return &ListQuery{}
}

// Match adds a case-insensitive substring condition on a single column.
// Empty values are ignored.
func (q *ListQuery) Match(column, value string) *ListQuery {
	value = strings.TrimSpace(value)
	if value == "" {
		return q
	}
	q.clauses = append(q.clauses, column+" ILIKE ?")
	q.params = append(q.params, like(value))
	return q
}

// Equal adds an exact-match condition. Empty values are ignored.
func (q *ListQuery) Equal(column, value string) *ListQuery {
	if value == "" {
		return q
	}
	q.clauses = append(q.clauses, column+" = ?")
	q.params = append(q.params, value)
	return q
}

// Search adds a free-text condition: the term matches if any of the given
// columns contains it as a substring. Columns are ORed inside one group so
// the group still ANDs with the field filters.
func (q *ListQuery) Search(value string, columns ...string) *ListQuery {
	value = strings.TrimSpace(value)
	if value == "" || len(columns) == 0 {
		return q
	}
	parts := make([]string, 0, len(columns))
	for _, column := range columns {
		parts = append(parts, column+" ILIKE ?")
		q.params = append(q.params, like(value))
	}
	q.clauses = append(q.clauses, "("+strings.Join(parts, " OR ")+")")
	return q
}

// Build returns the WHERE fragment (without the WHERE keyword) and the bound
// parameters. An empty fragment means no conditions were added.
func (q *ListQuery) Build() (string, []interface{}) {
	if len(q.clauses) == 0 {
		return "", nil
	}
	return strings.Join(q.clauses, " AND "), q.params
}

func like(value string) string {
	return "%" + value + "%"
}
