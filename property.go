package rentfolio

import (
	"github.com/jpcaulfield/rentfolio/date"
)

// Property is the record of a single rental property: its acquisition facts,
// financing, leases and expense history. It is assembled by replaying a
// ledger (see Portfolio) or constructed directly by callers; the calculation
// code never mutates it.
type Property struct {
	ID       string
	Name     string
	Currency string

	PurchasePrice      Money
	PurchaseDate       date.Date
	ClosingCosts       Money
	InitialRenovations Money
	SquareFootage      float64

	// marketValue is the latest appraised value. Zero means unknown, in
	// which case MarketValue falls back to the purchase price.
	marketValue Money

	// Mortgage is nil for an unfinanced property.
	Mortgage *Mortgage

	// MonthlyRent is the advertised rent. It is only used as a revenue
	// fallback when no tenant lease is on record.
	MonthlyRent Money

	Tenants  []TenantLease
	Expenses []ExpenseRecord

	// CachedMonthlyExpenses carries figures computed by an earlier import
	// or by the surrounding application. The debt-service calculation falls
	// back on it when the mortgage record is incomplete.
	CachedMonthlyExpenses *MonthlyExpenseCache
}

// MonthlyExpenseCache is an externally supplied snapshot of monthly outflows.
type MonthlyExpenseCache struct {
	Total             Money
	MortgagePrincipal Money
	MortgageInterest  Money
}

// MarketValue returns the current market value, falling back to the purchase
// price when no appraisal has been recorded.
func (p *Property) MarketValue() Money {
	if p.marketValue.IsPositive() {
		return p.marketValue
	}
	return p.PurchasePrice
}

// SetMarketValue records a new appraised value.
func (p *Property) SetMarketValue(v Money) { p.marketValue = v }

// money builds a Money in the property's currency.
func (p *Property) money(v float64) Money { return M(v, p.Currency) }

// Mortgage describes the financing of a property. All rates are nominal
// annual fractions (0.052 for 5.2%), never percentages.
type Mortgage struct {
	OriginalAmount    Money
	InterestRate      float64
	AmortizationYears int
	TermMonths        int // renewal term; does not affect the amortization math
	StartDate         date.Date
	Frequency         PaymentFrequency
	RateType          RateType

	// RemainingBalance, when set, is the authoritative current balance and
	// shortcuts any recomputation in Balance.
	RemainingBalance *Money
}

// Complete reports whether the mortgage carries enough data to amortize.
// A zero interest rate is a valid degenerate case (straight-line principal),
// so only the principal and the amortization length are required.
func (m *Mortgage) Complete() bool {
	return m != nil && m.OriginalAmount.IsPositive() && m.AmortizationYears > 0
}

// TenantLease is one tenant's occupancy of the property. A zero LeaseEnd
// means the lease is still active and runs until the evaluation date.
type TenantLease struct {
	Tenant     string
	Rent       Money // monthly amount
	LeaseStart date.Date
	LeaseEnd   date.Date
}

// Active reports whether the lease has no recorded end.
func (l TenantLease) Active() bool { return l.LeaseEnd.IsZero() }

// activeRange returns the inclusive day range the lease covers, closing an
// active lease at the evaluation date.
func (l TenantLease) activeRange(asOf date.Date) date.Range {
	end := l.LeaseEnd
	if l.Active() {
		end = asOf
	}
	return date.NewRange(l.LeaseStart, end)
}

// Categories whose expenses are booked once a year and must be spread over
// twelve months when reporting on a sub-period.
const (
	CategoryPropertyTax = "Property Tax"
	CategoryInsurance   = "Insurance"
)

// annualExpenseThreshold is the amount above which an uncategorized expense
// is assumed to be an annual bill rather than a monthly one.
const annualExpenseThreshold = 1000.0

// ExpenseRecord is a single dated operating expense.
type ExpenseRecord struct {
	Date     date.Date
	Category string
	Amount   Money
}

// Annual reports whether the expense is treated as a yearly bill to prorate
// across twelve months: property tax, insurance, or any amount over the
// annual threshold.
func (e ExpenseRecord) Annual() bool {
	if e.Category == CategoryPropertyTax || e.Category == CategoryInsurance {
		return true
	}
	return e.Amount.AsFloat() > annualExpenseThreshold
}
