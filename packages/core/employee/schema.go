package employee

import (
	"time"
	"warehouse/packages/core/filter"
	"warehouse/packages/core/query"
)

var Schema = &query.Schema[*Employee]{
	Entity: "employee",
	FilterKeys: []string{
		string(NameProperty),
		string(RoleProperty),
	},
	Fields: map[string]query.Field[*Employee]{
		string(IdProperty):       func(e *Employee) any { return e.ID.Hex() },
		string(NameProperty):     func(e *Employee) any { return e.Name },
		string(RoleProperty):     func(e *Employee) any { return string(e.Role) },
		string(ScheduleProperty): func(e *Employee) any { return e.Schedule },
	},
	// Date operators always test shift starts, whatever key is.
	Instants: func(e *Employee, _ string) []time.Time {
		starts := make([]time.Time, len(e.Schedule))
		for i, shift := range e.Schedule {
			starts[i] = shift.Start
		}
		return starts
	},
	Windows: func(e *Employee) []query.Window {
		windows := make([]query.Window, len(e.Schedule))
		for i, shift := range e.Schedule {
			windows[i] = query.Window{Start: shift.Start, End: shift.End}
		}
		return windows
	},
	SortKeys: map[filter.SortKey]func(*Employee) float64{},
}
