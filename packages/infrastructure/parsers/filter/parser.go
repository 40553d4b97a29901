package filterparser

import (
	"fmt"
	"strings"
	Error "warehouse/packages/common/errors"
	"warehouse/packages/core/filter"
	parser "warehouse/packages/infrastructure/parsers"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Parses filter predicates from the raw JSON array.
//
// Each element must be an object in a following format:
//
//	{"key": <property>, "value": <value>, "query": <operator>}
//
// Key may be omitted. Operators and keys aren't validated here,
// that's done right before predicate is applied.
func ParseFilter(rawFilter string) ([]filter.Predicate, *Error.Status) {
	parser.Log.Trace("Parsing filter "+rawFilter+"...", nil)

	if strings.TrimSpace(rawFilter) == "" {
		parser.Log.Error("Failed to parse filter", "filter is empty", nil)
		return nil, Error.InvalidQuery
	}

	predicates, err := parsePredicates([]byte(rawFilter))
	if err != nil {
		parser.Log.Error("Failed to parse filter "+rawFilter, err.Error(), nil)
		return nil, err
	}

	parser.Log.Trace("Parsing filter "+rawFilter+": OK", nil)

	return predicates, nil
}

func parsePredicates(raw []byte) ([]filter.Predicate, *Error.Status) {
	var decoded any

	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, Error.MalformedJSON
	}

	elems, ok := decoded.([]any)
	if !ok || len(elems) == 0 {
		return nil, Error.EmptyOrNonArrayFilter
	}

	predicates := make([]filter.Predicate, len(elems))

	for i, elem := range elems {
		obj, ok := elem.(map[string]any)
		if !ok {
			return nil, Error.EmptyOrNonArrayFilter
		}
		predicates[i] = toPredicate(obj)
	}

	return predicates, nil
}

func toPredicate(obj map[string]any) filter.Predicate {
	p := filter.Predicate{
		Value: obj["value"],
	}

	switch k := obj["key"].(type) {
	case nil:
	case string:
		p.Key = &k
	default:
		// Can't match any property, will be rejected on evaluation
		s := fmt.Sprint(k)
		p.Key = &s
	}

	if op, ok := obj["query"].(string); ok {
		p.Operator = filter.Operator(op)
	}

	return p
}

// Parses optional sort object. Returns nil if rawSort is empty or null.
func ParseSort(rawSort string) (*filter.Sort, *Error.Status) {
	if strings.TrimSpace(rawSort) == "" {
		return nil, nil
	}

	parser.Log.Trace("Parsing sort "+rawSort+"...", nil)

	sort, err := parseSort([]byte(rawSort))
	if err != nil {
		parser.Log.Error("Failed to parse sort "+rawSort, err.Error(), nil)
		return nil, err
	}

	parser.Log.Trace("Parsing sort "+rawSort+": OK", nil)

	return sort, nil
}

func parseSort(raw []byte) (*filter.Sort, *Error.Status) {
	var decoded any

	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, Error.MalformedJSON
	}

	if decoded == nil {
		return nil, nil
	}

	sort := new(filter.Sort)

	// Anything except object has no key, hence it will be rejected as unknown sort key
	if obj, ok := decoded.(map[string]any); ok {
		if key, ok := obj["key"].(string); ok {
			sort.Key = filter.SortKey(key)
		}
		if direction, ok := obj["type"].(string); ok {
			sort.Direction = filter.Direction(direction)
		}
	}

	return sort, nil
}

// Parses query from URL parameters.
func Parse(rawFilter string, rawSort string) (*filter.Query, *Error.Status) {
	predicates, err := ParseFilter(rawFilter)
	if err != nil {
		return nil, err
	}

	sort, err := ParseSort(rawSort)
	if err != nil {
		return nil, err
	}

	return &filter.Query{
		Action:  filter.ListAction,
		Filters: predicates,
		Sort:    sort,
	}, nil
}

type body struct {
	Action string              `json:"action"`
	Filter jsoniter.RawMessage `json:"filter"`
	Sort   jsoniter.RawMessage `json:"sort"`
}

// Parses query from request body:
//
//	{"action": "List" | "Find", "filter": [...], "sort": {...} | null}
//
// Action is optional, "List" is used by default.
func ParseBody(rawBody []byte) (*filter.Query, *Error.Status) {
	parser.Log.Trace("Parsing query body...", nil)

	var b body

	if err := json.Unmarshal(rawBody, &b); err != nil {
		parser.Log.Error("Failed to parse query body", err.Error(), nil)
		return nil, Error.MalformedJSON
	}

	if len(b.Filter) == 0 || string(b.Filter) == "null" {
		parser.Log.Error("Failed to parse query body", "filter is missing", nil)
		return nil, Error.InvalidQuery
	}

	predicates, err := parsePredicates(b.Filter)
	if err != nil {
		parser.Log.Error("Failed to parse query body", err.Error(), nil)
		return nil, err
	}

	var sort *filter.Sort
	if len(b.Sort) != 0 {
		if sort, err = parseSort(b.Sort); err != nil {
			parser.Log.Error("Failed to parse query body", err.Error(), nil)
			return nil, err
		}
	}

	action := filter.ListAction
	if filter.Action(b.Action) == filter.FindAction {
		action = filter.FindAction
	}

	parser.Log.Trace("Parsing query body: OK", nil)

	return &filter.Query{
		Action:  action,
		Filters: predicates,
		Sort:    sort,
	}, nil
}
