package querybuilder

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testVocab = Vocabulary{
	"title":     {Column: "title", Op: "ILIKE", Substring: true},
	"minSalary": {Column: "salary", Op: ">="},
	"hasEquity": {Literal: "equity > 0"},
}

var testBase = BaseQuery{
	Select:  `SELECT id, title, salary, equity FROM jobs`,
	OrderBy: "title",
}

func TestBuildPartialUpdate_SingleField(t *testing.T) {
	assignments, values, err := BuildPartialUpdate(
		map[string]any{"firstName": "Aliya"},
		map[string]string{"firstName": "first_name"},
	)

	require.NoError(t, err)
	assert.Equal(t, `"first_name"=$1`, assignments)
	assert.Equal(t, []any{"Aliya"}, values)
}

func TestBuildPartialUpdate_TwoFields(t *testing.T) {
	assignments, values, err := BuildPartialUpdate(
		map[string]any{"firstName": "Aliya", "age": 32},
		map[string]string{"firstName": "first_name", "age": "age"},
	)

	require.NoError(t, err)
	require.Len(t, values, 2)

	// Clause order is not pinned down; what matters is that each clause's
	// placeholder index points at that field's value.
	clauses := strings.Split(assignments, ", ")
	require.Len(t, clauses, 2)
	byColumn := map[string]any{}
	for _, clause := range clauses {
		col, idx := parseAssignment(t, clause)
		byColumn[col] = values[idx-1]
	}
	assert.Equal(t, "Aliya", byColumn["first_name"])
	assert.Equal(t, 32, byColumn["age"])
}

func TestBuildPartialUpdate_EmptyData(t *testing.T) {
	for _, colNames := range []map[string]string{
		nil,
		{},
		{"firstName": "first_name"},
	} {
		_, _, err := BuildPartialUpdate(map[string]any{}, colNames)
		assert.ErrorIs(t, err, ErrNoData)
	}
}

func TestBuildPartialUpdate_UntranslatedKeyPassesThrough(t *testing.T) {
	assignments, values, err := BuildPartialUpdate(
		map[string]any{"description": "text"},
		map[string]string{"numEmployees": "num_employees"},
	)

	require.NoError(t, err)
	assert.Equal(t, `"description"=$1`, assignments)
	assert.Equal(t, []any{"text"}, values)
}

func TestBuildPartialUpdate_PlaceholdersSequential(t *testing.T) {
	data := map[string]any{"a": 1, "b": 2, "c": 3, "d": 4}
	assignments, values, err := BuildPartialUpdate(data, nil)

	require.NoError(t, err)
	require.Len(t, values, len(data))
	for i := 1; i <= len(data); i++ {
		assert.Contains(t, assignments, "$"+strconv.Itoa(i))
	}
	// Callers append their lookup key at the next index.
	assert.NotContains(t, assignments, "$"+strconv.Itoa(len(data)+1))
}

func TestBuildFilterQuery_NoFilters(t *testing.T) {
	stmt, values, err := BuildFilterQuery(testBase, testVocab, map[string]any{})

	require.NoError(t, err)
	assert.Equal(t, `SELECT id, title, salary, equity FROM jobs ORDER BY title`, stmt)
	assert.Empty(t, values)
}

func TestBuildFilterQuery_TitleAndMinSalary(t *testing.T) {
	stmt, values, err := BuildFilterQuery(testBase, testVocab, map[string]any{
		"title":     "test",
		"minSalary": 80000,
	})

	require.NoError(t, err)
	assert.Equal(t,
		`SELECT id, title, salary, equity FROM jobs WHERE salary >= $1 AND title ILIKE $2 ORDER BY title`,
		stmt)
	assert.Equal(t, []any{80000, "%test%"}, values)
}

func TestBuildFilterQuery_LiteralPredicateBindsNothing(t *testing.T) {
	stmt, values, err := BuildFilterQuery(testBase, testVocab, map[string]any{
		"title":     "test",
		"minSalary": 75000,
		"hasEquity": true,
	})

	require.NoError(t, err)
	assert.Contains(t, stmt, "equity > 0")
	assert.Len(t, values, 2)
	assert.NotContains(t, stmt, "$3")

	where := stmt[strings.Index(stmt, "WHERE"):]
	assert.Len(t, strings.Split(where, " AND "), 3)
}

func TestBuildFilterQuery_FalseFlagIsNoFilter(t *testing.T) {
	stmt, values, err := BuildFilterQuery(testBase, testVocab, map[string]any{
		"hasEquity": false,
	})

	require.NoError(t, err)
	assert.NotContains(t, stmt, "WHERE")
	assert.NotContains(t, stmt, "equity")
	assert.Empty(t, values)
}

func TestBuildFilterQuery_UnknownKey(t *testing.T) {
	_, _, err := BuildFilterQuery(testBase, testVocab, map[string]any{
		"title":          "test",
		"fakeQueryField": 1,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownFilter)

	var unknownErr *UnknownFilterError
	require.True(t, errors.As(err, &unknownErr))
	assert.Equal(t, "fakeQueryField", unknownErr.Key)
	assert.Contains(t, err.Error(), "fakeQueryField")
}

func TestBuildFilterQuery_PlaceholdersGapless(t *testing.T) {
	vocab := Vocabulary{
		"name":         {Column: "name", Op: "ILIKE", Substring: true},
		"minEmployees": {Column: "num_employees", Op: ">="},
		"maxEmployees": {Column: "num_employees", Op: "<="},
	}
	base := BaseQuery{Select: `SELECT handle, name FROM companies`, OrderBy: "name"}

	stmt, values, err := BuildFilterQuery(base, vocab, map[string]any{
		"name":         "net",
		"minEmployees": 10,
		"maxEmployees": 500,
	})

	require.NoError(t, err)
	placeholders := regexp.MustCompile(`\$(\d+)`).FindAllStringSubmatch(stmt, -1)
	require.Len(t, placeholders, len(values))
	for i, match := range placeholders {
		n, convErr := strconv.Atoi(match[1])
		require.NoError(t, convErr)
		assert.Equal(t, i+1, n)
	}
}

func TestBuildFilterQuery_ValuesNeverInlined(t *testing.T) {
	stmt, _, err := BuildFilterQuery(testBase, testVocab, map[string]any{
		"title":     "'; DROP TABLE jobs; --",
		"minSalary": 90000,
	})

	require.NoError(t, err)
	assert.NotContains(t, stmt, "DROP TABLE")
	assert.NotContains(t, stmt, "90000")
}

// parseAssignment splits `"col"=$N` into its column and placeholder index.
func parseAssignment(t *testing.T, clause string) (string, int) {
	t.Helper()
	match := regexp.MustCompile(`^"([^"]+)"=\$(\d+)$`).FindStringSubmatch(clause)
	require.NotNil(t, match, "malformed assignment clause: %s", clause)
	idx, err := strconv.Atoi(match[2])
	require.NoError(t, err)
	return match[1], idx
}
