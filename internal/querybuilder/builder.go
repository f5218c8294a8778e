// Package querybuilder turns loosely-typed field/filter mappings into
// parameterized SQL fragments. All client-supplied values are emitted as
// $N bind parameters; only fixed, builder-owned identifiers and literal
// predicate text ever appear in the statement itself.
package querybuilder

import (
	"fmt"
	"sort"
	"strings"
)

// BaseQuery is the fixed skeleton a filter query is assembled around: the
// aliased projection with its FROM clause, and the natural sort column.
type BaseQuery struct {
	Select  string
	OrderBy string
}

// FilterRule describes how one recognized filter key renders into a
// predicate. A rule with Literal set splices that text verbatim and binds
// nothing; every other rule binds the filter value at the next placeholder
// as `column Op $n`. Substring rules wrap the value in % wildcards and rely
// on a case-insensitive Op (ILIKE).
type FilterRule struct {
	Column    string
	Op        string
	Literal   string
	Substring bool
}

// Vocabulary is the fixed set of filter keys a resource recognizes.
type Vocabulary map[string]FilterRule

// BuildPartialUpdate renders the SET fragment of a single-row update from a
// field→value mapping. Column names are resolved through colNames, falling
// back to the field name itself. Placeholders start at $1, so the caller can
// continue the sequence at $len(values)+1 for its own lookup key.
//
//	BuildPartialUpdate(
//	    map[string]any{"firstName": "Aliya", "age": 32},
//	    map[string]string{"firstName": "first_name"})
//	=> `"age"=$1, "first_name"=$2`, []any{32, "Aliya"}
func BuildPartialUpdate(data map[string]any, colNames map[string]string) (string, []any, error) {
	if len(data) == 0 {
		return "", nil, ErrNoData
	}

	keys := sortedKeys(data)

	assignments := make([]string, 0, len(data))
	values := make([]any, 0, len(data))
	for _, key := range keys {
		col, ok := colNames[key]
		if !ok {
			col = key
		}
		assignments = append(assignments, fmt.Sprintf(`%q=$%d`, col, len(values)+1))
		values = append(values, data[key])
	}

	return strings.Join(assignments, ", "), values, nil
}

// BuildFilterQuery assembles a full SELECT statement from the fixed base and
// zero or more recognized filters, AND-combined. With no filters the
// statement carries no WHERE clause at all. A key outside the vocabulary
// fails with an UnknownFilterError naming that key.
func BuildFilterQuery(base BaseQuery, vocab Vocabulary, filters map[string]any) (string, []any, error) {
	keys := sortedKeys(filters)

	clauses := make([]string, 0, len(filters))
	values := make([]any, 0, len(filters))
	for _, key := range keys {
		rule, ok := vocab[key]
		if !ok {
			return "", nil, &UnknownFilterError{Key: key}
		}

		value := filters[key]
		if rule.Literal != "" {
			// A false flag is "no filter", not "filter for the opposite".
			if enabled, isBool := value.(bool); isBool && !enabled {
				continue
			}
			clauses = append(clauses, rule.Literal)
			continue
		}

		if rule.Substring {
			value = "%" + fmt.Sprint(value) + "%"
		}
		values = append(values, value)
		clauses = append(clauses, fmt.Sprintf("%s %s $%d", rule.Column, rule.Op, len(values)))
	}

	var stmt strings.Builder
	stmt.WriteString(base.Select)
	if len(clauses) > 0 {
		stmt.WriteString(" WHERE ")
		stmt.WriteString(strings.Join(clauses, " AND "))
	}
	stmt.WriteString(" ORDER BY ")
	stmt.WriteString(base.OrderBy)

	return stmt.String(), values, nil
}

// sortedKeys fixes an iteration order so assignments and values always line
// up index-for-index, regardless of map randomization.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
