package game

import "strconv"

// Markers the feed writes when a statistic was not tracked for a game.
const (
	NotAvailableMarker = "N/A"
	DashMarker         = "-"
)

// Value is a single statistic as read from the feed. A missing Value stands
// for an absent, blank, or not-available field and is distinct from "0".
type Value struct {
	Raw     string
	Missing bool
}

// Missing is the sentinel for a statistic that could not be resolved.
var Missing = Value{Missing: true}

// ValueOf normalizes a raw feed string into a Value.
func ValueOf(raw string) Value {
	if raw == "" || raw == NotAvailableMarker || raw == DashMarker {
		return Missing
	}
	return Value{Raw: raw}
}

func (v Value) String() string {
	if v.Missing {
		return NotAvailableMarker
	}
	return v.Raw
}

// Int parses the value on demand. Missing values and non-numeric text report
// ok=false; the raw string is never mutated.
func (v Value) Int() (int, bool) {
	if v.Missing {
		return 0, false
	}
	n, err := strconv.Atoi(v.Raw)
	if err != nil {
		return 0, false
	}
	return n, true
}

// IntOrZero is for aggregations that treat unparsable periods as zero.
func (v Value) IntOrZero() int {
	n, _ := v.Int()
	return n
}
