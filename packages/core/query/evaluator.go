package query

import (
	"slices"
	"time"
	Error "warehouse/packages/common/errors"
	"warehouse/packages/core/filter"
)

// Returns predicate which must be applied to each record.
// Returns nil if operator is unknown.
func (i *Interpreter[T]) matcher(p filter.Predicate) func(T) bool {
	op, ok := p.Operator.Normalize()
	if !ok {
		return nil
	}

	if op == filter.Equal {
		field := i.schema.Fields[*p.Key]
		return func(record T) bool {
			return strictEqual(field(record), p.Value)
		}
	}

	probe, ok := ParseInstant(p.Value, i.location)
	if !ok {
		return func(T) bool { return false }
	}

	if op == filter.Available {
		return func(record T) bool {
			if i.schema.Windows == nil {
				return false
			}
			for _, w := range i.schema.Windows(record) {
				if w.Start.Before(probe) && probe.Before(w.End) {
					return true
				}
			}
			return false
		}
	}

	var cmp func(t time.Time) bool

	switch op {
	case filter.Before:
		cmp = func(t time.Time) bool { return t.Before(probe) }
	case filter.After:
		cmp = func(t time.Time) bool { return t.After(probe) }
	case filter.SameDate:
		cmp = func(t time.Time) bool { return sameDate(t, probe, i.location) }
	case filter.SameMonth:
		cmp = func(t time.Time) bool { return sameMonth(t, probe, i.location) }
	case filter.SameYear:
		cmp = func(t time.Time) bool { return sameYear(t, probe, i.location) }
	case filter.SameDateTime:
		cmp = func(t time.Time) bool { return sameDateTime(t, probe) }
	}

	key := ""
	if p.HasKey() {
		key = *p.Key
	}

	// any instant is enough
	return func(record T) bool {
		return slices.ContainsFunc(i.schema.Instants(record, key), cmp)
	}
}

// Applies single predicate to the records.
// Records are never modified, new slice is returned.
func (i *Interpreter[T]) apply(records []T, p filter.Predicate) ([]T, *Error.Status) {
	// Key is validated even if there are no records left
	if p.HasKey() {
		if err := i.schema.ValidateFilterKey(*p.Key); err != nil {
			Log.Error("Invalid filter key in "+i.schema.Entity+" query", "key: "+*p.Key, nil)
			return nil, err
		}
	} else if op, _ := p.Operator.Normalize(); op == filter.Equal {
		Log.Error("Invalid filter key in "+i.schema.Entity+" query", "key is missing", nil)
		return nil, Error.UnknownFilterKey
	}

	match := i.matcher(p)
	if match == nil {
		Log.Warning("Unknown filter operator '"+string(p.Operator)+"', result is empty", nil)
		return []T{}, nil
	}

	out := make([]T, 0, len(records))
	for _, record := range records {
		if match(record) {
			out = append(out, record)
		}
	}

	return out, nil
}

// No coercion: string is equal only to string and number only to number.
func strictEqual(field any, value any) bool {
	switch f := field.(type) {
	case string:
		v, ok := value.(string)
		return ok && f == v
	case float64:
		v, ok := toFloat(value)
		return ok && f == v
	case bool:
		v, ok := value.(bool)
		return ok && f == v
	}
	return false
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}
