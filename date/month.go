package date

import "time"

// DaysIn returns the number of days in the given month of the given year.
func DaysIn(year int, month time.Month) int {
	// day 0 of the next month normalizes to the last day of this month.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// StartOfMonth returns the first day of the given month.
func StartOfMonth(year int, month time.Month) Date { return New(year, month, 1) }

// EndOfMonth returns the last day of the given month.
func EndOfMonth(year int, month time.Month) Date {
	return New(year, month, DaysIn(year, month))
}

// MonthsBetween returns the number of whole calendar months elapsed from
// 'from' to 'to'. A partially elapsed month does not count. The result is
// negative when 'to' is before 'from'.
func MonthsBetween(from, to Date) int {
	months := (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
	if to.Day() < from.Day() {
		months--
	}
	return months
}
