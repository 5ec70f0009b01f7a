package date

import "time"

// Range represents an inclusive range of dates. A date equal to either
// boundary is inside the range.
type Range struct{ From, To Date }

// NewRange returns the range [from, to].
func NewRange(from, to Date) Range { return Range{From: from, To: to} }

// Month returns the range covering the whole given month.
func Month(year int, month time.Month) Range {
	return Range{From: StartOfMonth(year, month), To: EndOfMonth(year, month)}
}

// Contains reports whether the date is included in the range (boundaries included).
func (r Range) Contains(d Date) bool { return !d.Before(r.From) && !d.After(r.To) }

// IsEmpty reports whether the range contains no day at all.
func (r Range) IsEmpty() bool { return r.To.Before(r.From) }

// Days returns the number of days in the range, boundaries included.
// An empty range has 0 days.
func (r Range) Days() int {
	if r.IsEmpty() {
		return 0
	}
	return int(r.To.time().Sub(r.From.time())/Day) + 1
}

// Day is the duration of one civil day.
const Day = 24 * time.Hour

// Intersect returns the overlap of the two ranges. The result IsEmpty when
// the ranges do not overlap.
func (r Range) Intersect(o Range) Range {
	return Range{From: Max(r.From, o.From), To: Min(r.To, o.To)}
}
