package rentfolio

import (
	"math"

	"github.com/jpcaulfield/rentfolio/date"
)

// This file implements the amortization math: periodic payment, the
// principal/interest split at a given point of the schedule, and the
// outstanding balance as of a date.
//
// None of these functions ever fails: an incomplete mortgage (missing
// principal or amortization length) degrades to documented fallbacks — a zero
// payment and an untouched principal balance — so that a partially entered
// property still renders a report.

// annuityPayment is the standard fixed-payment formula P = A·r/(1-(1+r)^-n).
// A zero rate degenerates to a straight-line principal split.
func annuityPayment(principal, r float64, n int) float64 {
	if n <= 0 || principal <= 0 {
		return 0
	}
	if r == 0 {
		return principal / float64(n)
	}
	return principal * r / (1 - math.Pow(1+r, -float64(n)))
}

// outstanding is the balance after k payments of 'payment' on a loan of
// 'principal' at periodic rate r: B = A·(1+r)^k − P·((1+r)^k − 1)/r.
// The result is clamped to [0, principal].
func outstanding(principal, r, payment float64, k int) float64 {
	if k <= 0 {
		return principal
	}
	var b float64
	if r == 0 {
		b = principal - payment*float64(k)
	} else {
		growth := math.Pow(1+r, float64(k))
		b = principal*growth - payment*(growth-1)/r
	}
	return math.Min(math.Max(b, 0), principal)
}

// periodicRate is the nominal annual rate divided by the payment count.
func (m *Mortgage) periodicRate() float64 {
	return m.InterestRate / float64(m.Frequency.PaymentsPerYear())
}

// totalPeriods is the full amortization length in payments.
func (m *Mortgage) totalPeriods() int {
	return m.AmortizationYears * m.Frequency.PaymentsPerYear()
}

// monthlyEquivalentPayment is the payment the same loan would carry on a
// monthly schedule. It anchors both the accelerated payment convention and
// the as-of-date balance math.
func (m *Mortgage) monthlyEquivalentPayment() float64 {
	return annuityPayment(m.OriginalAmount.AsFloat(), m.InterestRate/12, m.AmortizationYears*12)
}

// PeriodicPayment returns the scheduled payment for the mortgage's frequency.
//
// Accelerated frequencies do not recompute the annuity over their own period
// count: by convention they take the monthly-equivalent payment and halve it
// (accelerated bi-weekly) or quarter it (accelerated weekly), which is what
// makes them pay the loan down faster.
func (m *Mortgage) PeriodicPayment() Money {
	if !m.Complete() {
		return M(0, m.currency())
	}
	if divisor, ok := m.Frequency.accelerated(); ok {
		return M(m.monthlyEquivalentPayment()/divisor, m.currency())
	}
	p := annuityPayment(m.OriginalAmount.AsFloat(), m.periodicRate(), m.totalPeriods())
	return M(p, m.currency())
}

// PeriodicInterest returns the interest share of the payment due after
// elapsedPeriods payments have been made (0-based period index).
func (m *Mortgage) PeriodicInterest(elapsedPeriods int) Money {
	if !m.Complete() {
		return M(0, m.currency())
	}
	r := m.periodicRate()
	b := outstanding(m.OriginalAmount.AsFloat(), r, m.PeriodicPayment().AsFloat(), elapsedPeriods)
	return M(b*r, m.currency())
}

// PeriodicPrincipal returns the principal share of the payment due after
// elapsedPeriods payments have been made.
func (m *Mortgage) PeriodicPrincipal(elapsedPeriods int) Money {
	if !m.Complete() {
		return M(0, m.currency())
	}
	return m.PeriodicPayment().Sub(m.PeriodicInterest(elapsedPeriods))
}

// MonthlyPayment returns the monthly-equivalent total payment, whatever the
// scheduled frequency.
func (m *Mortgage) MonthlyPayment() Money {
	return m.monthlyFigure(func(k int) Money { return m.PeriodicPayment() }, 0)
}

// MonthlyInterest returns the monthly-equivalent interest figure after the
// given number of elapsed months.
func (m *Mortgage) MonthlyInterest(elapsedMonths int) Money {
	return m.monthlyFigure(m.PeriodicInterest, elapsedMonths)
}

// MonthlyPrincipal returns the monthly-equivalent principal figure after the
// given number of elapsed months.
func (m *Mortgage) MonthlyPrincipal(elapsedMonths int) Money {
	return m.monthlyFigure(m.PeriodicPrincipal, elapsedMonths)
}

// monthlyFigure converts a per-period figure to its monthly equivalent by
// scaling with paymentsPerYear/12, translating elapsed months to the
// corresponding elapsed period index first.
func (m *Mortgage) monthlyFigure(periodic func(int) Money, elapsedMonths int) Money {
	if !m.Complete() {
		return M(0, m.currency())
	}
	ppy := m.Frequency.PaymentsPerYear()
	elapsedPeriods := elapsedMonths * ppy / 12
	return periodic(elapsedPeriods).Scale(float64(ppy) / 12)
}

// BalanceAfterMonths returns the outstanding balance once k whole months have
// elapsed since the start of the mortgage, on the monthly-equivalent
// schedule. A recorded RemainingBalance is authoritative and returned
// unchanged; an incomplete mortgage degrades to its untouched principal.
func (m *Mortgage) BalanceAfterMonths(k int) Money {
	if m == nil {
		return Money{}
	}
	if m.RemainingBalance != nil {
		return *m.RemainingBalance
	}
	if !m.Complete() {
		return m.OriginalAmount
	}
	if k < 0 {
		k = 0
	}
	n := m.AmortizationYears * 12
	if k >= n {
		return M(0, m.currency())
	}
	b := outstanding(m.OriginalAmount.AsFloat(), m.InterestRate/12, m.monthlyEquivalentPayment(), k)
	return M(b, m.currency())
}

// Balance returns the outstanding balance as of the given date.
func (m *Mortgage) Balance(on date.Date) Money {
	if m == nil {
		return Money{}
	}
	if m.RemainingBalance != nil {
		return *m.RemainingBalance
	}
	if !m.Complete() {
		return m.OriginalAmount
	}
	return m.BalanceAfterMonths(date.MonthsBetween(m.StartDate, on))
}

// ScheduleRow is one month of the amortization schedule.
type ScheduleRow struct {
	Month     int // 1-based month number
	Payment   Money
	Interest  Money
	Principal Money
	Balance   Money // after the payment
}

// Schedule returns the first n months of the monthly-equivalent amortization
// schedule, or the full schedule if n exceeds it. It returns nil for an
// incomplete mortgage.
func (m *Mortgage) Schedule(n int) []ScheduleRow {
	if !m.Complete() {
		return nil
	}
	total := m.AmortizationYears * 12
	if n > total {
		n = total
	}
	rm := m.InterestRate / 12
	payment := m.monthlyEquivalentPayment()
	principal := m.OriginalAmount.AsFloat()

	rows := make([]ScheduleRow, 0, n)
	for k := 0; k < n; k++ {
		b := outstanding(principal, rm, payment, k)
		interest := b * rm
		rows = append(rows, ScheduleRow{
			Month:     k + 1,
			Payment:   M(payment, m.currency()),
			Interest:  M(interest, m.currency()),
			Principal: M(payment-interest, m.currency()),
			Balance:   M(outstanding(principal, rm, payment, k+1), m.currency()),
		})
	}
	return rows
}

// currency is the mortgage's currency, borrowed from its principal.
func (m *Mortgage) currency() string {
	if m == nil {
		return ""
	}
	return m.OriginalAmount.Currency()
}
