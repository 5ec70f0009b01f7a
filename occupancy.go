package rentfolio

import (
	"time"

	"github.com/jpcaulfield/rentfolio/date"
)

// This file aggregates revenue and expenses over a sub-period of a calendar
// year, prorating across partial months and tenant turnover.

// RevenueBetween computes the rent earned for the months [m1, m2] of the
// given year, prorated day-by-day against each tenant lease.
//
// A lease overlapping a month contributes rent × overlapDays/daysInMonth for
// that month. An active lease (no recorded end) runs until asOf. When the
// period falls in asOf's year and reaches into the future, it is clamped to
// asOf. A reversed month range yields zero.
func (p *Property) RevenueBetween(year int, m1, m2 time.Month, asOf date.Date) Money {
	if m2 < m1 {
		return p.money(0)
	}
	period := date.NewRange(date.StartOfMonth(year, m1), date.EndOfMonth(year, m2))
	if year == asOf.Year() && period.To.After(asOf) {
		period.To = asOf
	}

	total := 0.0
	for _, lease := range p.Tenants {
		span := lease.activeRange(asOf).Intersect(period)
		if span.IsEmpty() {
			continue
		}
		// Split the overlap month by month: each month prorates on its own
		// day count.
		for m := m1; m <= m2; m++ {
			month := date.Month(year, m)
			overlap := span.Intersect(month)
			if overlap.IsEmpty() {
				continue
			}
			fraction := float64(overlap.Days()) / float64(month.Days())
			total += lease.Rent.AsFloat() * fraction
		}
	}
	return p.money(total)
}

// ExpensesBetween computes the operating expenses attributable to the months
// [m1, m2] of the given year.
//
// Annual expenses (see ExpenseRecord.Annual) are spread over twelve months
// and charged amount/12 per month in the period. Every other expense is
// included in full when its month falls inside the period — no partial-month
// proration. When the period falls in asOf's year, months after asOf are
// dropped. A reversed month range yields zero.
func (p *Property) ExpensesBetween(year int, m1, m2 time.Month, asOf date.Date) Money {
	if m2 < m1 {
		return p.money(0)
	}
	endMonth := m2
	if year == asOf.Year() && endMonth > asOf.Month() {
		endMonth = asOf.Month()
	}

	total := 0.0
	for _, e := range p.Expenses {
		if e.Date.Year() != year {
			continue
		}
		if e.Annual() {
			months := int(endMonth) - int(m1) + 1
			if months < 0 {
				months = 0
			}
			total += e.Amount.AsFloat() / 12 * float64(months)
		} else if e.Date.Month() >= m1 && e.Date.Month() <= endMonth {
			total += e.Amount.AsFloat()
		}
	}
	return p.money(total)
}
