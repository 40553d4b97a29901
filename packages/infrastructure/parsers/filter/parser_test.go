package filterparser

import (
	"testing"
	Error "warehouse/packages/common/errors"
	"warehouse/packages/core/filter"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFilter(t *testing.T) {
	t.Run("errors", func(t *testing.T) {
		cases := map[string]*Error.Status{
			"":                    Error.InvalidQuery,
			"   ":                 Error.InvalidQuery,
			"[{":                  Error.MalformedJSON,
			"not json":            Error.MalformedJSON,
			"[]":                  Error.EmptyOrNonArrayFilter,
			`{"key":"name"}`:      Error.EmptyOrNonArrayFilter,
			`"name"`:              Error.EmptyOrNonArrayFilter,
			`[1, 2]`:              Error.EmptyOrNonArrayFilter,
			`[{"key":"a"}, null]`: Error.EmptyOrNonArrayFilter,
		}

		for raw, expected := range cases {
			predicates, err := ParseFilter(raw)
			assert.Equal(t, expected, err, raw)
			assert.Nil(t, predicates, raw)
		}
	})

	t.Run("predicates", func(t *testing.T) {
		predicates, err := ParseFilter(`[
			{"key": "name", "value": "Bob", "query": "IsEqual"},
			{"value": 1709287200000, "query": "Before"},
			{"key": 42, "value": "x", "query": "IsEqual"},
			{"key": "role", "value": "Picker", "query": 7}
		]`)
		require.Nil(t, err)
		require.Len(t, predicates, 4)

		require.True(t, predicates[0].HasKey())
		assert.Equal(t, "name", *predicates[0].Key)
		assert.Equal(t, "Bob", predicates[0].Value)
		assert.Equal(t, filter.Equal, predicates[0].Operator)

		assert.False(t, predicates[1].HasKey())
		assert.Equal(t, float64(1709287200000), predicates[1].Value)
		assert.Equal(t, filter.Before, predicates[1].Operator)

		assert.Equal(t, "42", *predicates[2].Key)

		_, known := predicates[3].Operator.Normalize()
		assert.False(t, known)
	})
}

func TestParseSort(t *testing.T) {
	sort, err := ParseSort("")
	assert.Nil(t, err)
	assert.Nil(t, sort)

	sort, err = ParseSort("null")
	assert.Nil(t, err)
	assert.Nil(t, sort)

	_, err = ParseSort("{key")
	assert.Equal(t, Error.MalformedJSON, err)

	sort, err = ParseSort(`{"key": "Price", "type": "Descending"}`)
	require.Nil(t, err)
	assert.Equal(t, &filter.Sort{Key: filter.PriceSortKey, Direction: filter.Descending}, sort)

	sort, err = ParseSort(`["Price"]`)
	require.Nil(t, err)
	require.NotNil(t, sort)
	assert.Empty(t, sort.Key)
}

func TestParse(t *testing.T) {
	_, err := Parse(`[{"key":"status","value":"Done","query":"IsEqual"}]`, "{")
	assert.Equal(t, Error.MalformedJSON, err)

	q, err := Parse(`[{"key":"status","value":"Done","query":"IsEqual"}]`, "")
	require.Nil(t, err)
	assert.Equal(t, filter.ListAction, q.Action)
	assert.Len(t, q.Filters, 1)
	assert.Nil(t, q.Sort)
}

func TestParseBody(t *testing.T) {
	t.Run("find with sort", func(t *testing.T) {
		q, err := ParseBody([]byte(`{
			"action": "Find",
			"filter": [{"key": "status", "value": "Done", "query": "IsEqual"}],
			"sort": {"key": "Timestamp", "type": "Ascending"}
		}`))
		require.Nil(t, err)
		assert.Equal(t, filter.FindAction, q.Action)
		assert.Len(t, q.Filters, 1)
		assert.Equal(t, filter.TimestampSortKey, q.Sort.Key)
	})

	t.Run("list by default", func(t *testing.T) {
		q, err := ParseBody([]byte(`{"filter": [{"value": "2024-03", "query": "SameMonth"}], "sort": null}`))
		require.Nil(t, err)
		assert.Equal(t, filter.ListAction, q.Action)
		assert.Nil(t, q.Sort)
	})

	t.Run("errors", func(t *testing.T) {
		_, err := ParseBody([]byte(`{"filter": `))
		assert.Equal(t, Error.MalformedJSON, err)

		_, err = ParseBody([]byte(`{"action": "List"}`))
		assert.Equal(t, Error.InvalidQuery, err)

		_, err = ParseBody([]byte(`{"filter": {}}`))
		assert.Equal(t, Error.EmptyOrNonArrayFilter, err)
	})
}
