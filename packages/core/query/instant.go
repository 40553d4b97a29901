package query

import (
	"time"
)

// Layouts are tried in order, first matched wins.
var instantLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.000",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	time.DateOnly,
	"2006-01",
}

// Converts predicate value to the instant.
//
// Supported values: time.Time, string in one of the instantLayouts
// (layouts without zone are interpreted in loc) and number of milliseconds since epoch.
func ParseInstant(value any, loc *time.Location) (time.Time, bool) {
	switch v := value.(type) {
	case time.Time:
		return v, true
	case string:
		for _, layout := range instantLayouts {
			if t, err := time.ParseInLocation(layout, v, loc); err == nil {
				return t, true
			}
		}
	case float64:
		return time.UnixMilli(int64(v)), true
	case int64:
		return time.UnixMilli(v), true
	case int:
		return time.UnixMilli(int64(v)), true
	}
	return time.Time{}, false
}

func sameDate(a, b time.Time, loc *time.Location) bool {
	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.In(loc).Date()
	return ay == by && am == bm && ad == bd
}

func sameMonth(a, b time.Time, loc *time.Location) bool {
	ay, am, _ := a.In(loc).Date()
	by, bm, _ := b.In(loc).Date()
	return ay == by && am == bm
}

func sameYear(a, b time.Time, loc *time.Location) bool {
	return a.In(loc).Year() == b.In(loc).Year()
}

func sameDateTime(a, b time.Time) bool {
	return a.UnixMilli() == b.UnixMilli()
}
