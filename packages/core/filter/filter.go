// Entity filter
package filter

// Filter operator, as it's written in the query.
type Operator string

const (
	Equal        Operator = "IsEqual"
	Before       Operator = "Before"
	After        Operator = "After"
	SameDate     Operator = "SameDate"
	SameMonth    Operator = "SameMonth"
	SameYear     Operator = "SameYear"
	SameDateTime Operator = "SameDateTime"
	Available    Operator = "Available"
)

// Alternative spelling of Equal
const equalAlias Operator = "Equals"

// Returns canonical form of the operator and true if operator is known.
func (o Operator) Normalize() (Operator, bool) {
	switch o {
	case Equal, equalAlias:
		return Equal, true
	case Before, After, SameDate, SameMonth, SameYear, SameDateTime, Available:
		return o, true
	}
	return o, false
}

// Single filter condition.
//
// Key is optional: predicates on dates may omit it,
// in that case entity's default time field is used.
type Predicate struct {
	Key      *string  `json:"key,omitempty"`
	Value    any      `json:"value"`
	Operator Operator `json:"query"`
}

func (p Predicate) HasKey() bool {
	return p.Key != nil && *p.Key != ""
}

type SortKey string

const (
	TimestampSortKey   SortKey = "Timestamp"
	PriceSortKey       SortKey = "Price"
	OrderNumberSortKey SortKey = "OrderNumber"
	TotalSortKey       SortKey = "Total"
)

type Direction string

const (
	Ascending  Direction = "Ascending"
	Descending Direction = "Descending"
)

type Sort struct {
	Key       SortKey   `json:"key"`
	Direction Direction `json:"type"`
}

type Action string

const (
	// Return all matched entities
	ListAction Action = "List"
	// Return only first matched entity
	FindAction Action = "Find"
)

// Query is a parsed set of filters with optional sort.
type Query struct {
	Action  Action
	Filters []Predicate
	Sort    *Sort
}
