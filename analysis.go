package rentfolio

import (
	"time"

	"github.com/jpcaulfield/rentfolio/date"
)

// Analysis derives the investment metrics of a property as seen on a given
// evaluation date. All "annual" figures cover the trailing twelve calendar
// months ending at the evaluation month.
//
// Every method resolves missing or degenerate input to a documented fallback
// value instead of failing: a dashboard built on these numbers must keep
// rendering on partial data.
type Analysis struct {
	p    *Property
	on   date.Date
	proj Projection
}

// AnalysisOn returns the analysis of the property as of the given date,
// using the default projection constants.
func (p *Property) AnalysisOn(on date.Date) *Analysis {
	return &Analysis{p: p, on: on, proj: DefaultProjection}
}

// WithProjection overrides the projection constants used by IRR.
func (a *Analysis) WithProjection(proj Projection) *Analysis {
	a.proj = proj
	return a
}

// On returns the evaluation date.
func (a *Analysis) On() date.Date { return a.on }

// Property returns the property under analysis.
func (a *Analysis) Property() *Property { return a.p }

// trailingYear sums an aggregator over the trailing twelve months ending at
// the evaluation month, split across the year boundary.
func (a *Analysis) trailingYear(f func(year int, m1, m2 time.Month, asOf date.Date) Money) Money {
	y, m := a.on.Year(), a.on.Month()
	if m == time.December {
		return f(y, time.January, time.December, a.on)
	}
	past := f(y-1, m+1, time.December, a.on)
	return past.Add(f(y, time.January, m, a.on))
}

// AnnualRevenue is the rent earned over the trailing twelve months. With no
// tenant lease on record it degrades to twelve times the advertised monthly
// rent.
func (a *Analysis) AnnualRevenue() Money {
	if len(a.p.Tenants) == 0 {
		return a.p.MonthlyRent.Scale(12)
	}
	return a.trailingYear(a.p.RevenueBetween)
}

// AnnualOperatingExpenses is the operating expense total over the trailing
// twelve months. Debt service is not an operating expense.
func (a *Analysis) AnnualOperatingExpenses() Money {
	return a.trailingYear(a.p.ExpensesBetween)
}

// NOI is the net operating income: revenue minus operating expenses,
// excluding debt service.
func (a *Analysis) NOI() Money {
	return a.AnnualRevenue().Sub(a.AnnualOperatingExpenses())
}

// CapRate is NOI over current market value, in percentage points.
// A non-positive value yields 0.
func (a *Analysis) CapRate() Percent {
	value := a.p.MarketValue().AsFloat()
	if value <= 0 {
		return 0
	}
	return Percent(a.NOI().AsFloat() / value * 100)
}

// elapsedMonths is the number of whole months since the mortgage started,
// clamped to zero.
func (a *Analysis) elapsedMonths() int {
	k := date.MonthsBetween(a.p.Mortgage.StartDate, a.on)
	if k < 0 {
		k = 0
	}
	return k
}

// AnnualDebtService is twelve times the monthly principal and interest.
// Without a mortgage it is 0; with an incomplete mortgage it falls back to
// the cached monthly expense figures when those are present.
func (a *Analysis) AnnualDebtService() Money {
	m := a.p.Mortgage
	if m == nil {
		return a.p.money(0)
	}
	if !m.Complete() {
		if c := a.p.CachedMonthlyExpenses; c != nil {
			return c.MortgagePrincipal.Add(c.MortgageInterest).Scale(12)
		}
		return a.p.money(0)
	}
	k := a.elapsedMonths()
	return m.MonthlyPrincipal(k).Add(m.MonthlyInterest(k)).Scale(12)
}

// DSCR is NOI over annual debt service. A non-positive debt service yields 0
// rather than infinity.
func (a *Analysis) DSCR() float64 {
	ds := a.AnnualDebtService().AsFloat()
	if ds <= 0 {
		return 0
	}
	return a.NOI().AsFloat() / ds
}

// Equity is market value minus outstanding mortgage balance, never negative.
func (a *Analysis) Equity() Money {
	equity := a.p.MarketValue().Sub(a.p.Mortgage.Balance(a.on))
	if equity.IsNegative() {
		return a.p.money(0)
	}
	return equity
}

// LTV is the outstanding balance over market value, in percentage points.
// A non-positive value yields 0.
func (a *Analysis) LTV() Percent {
	value := a.p.MarketValue().AsFloat()
	if value <= 0 {
		return 0
	}
	return Percent(a.p.Mortgage.Balance(a.on).AsFloat() / value * 100)
}

// TotalCashInvested is the down payment plus closing costs and initial
// renovations. Without a mortgage the whole purchase price was cash.
func (a *Analysis) TotalCashInvested() Money {
	financed := a.p.money(0)
	if a.p.Mortgage != nil {
		financed = a.p.Mortgage.OriginalAmount
	}
	return a.p.PurchasePrice.Sub(financed).Add(a.p.ClosingCosts).Add(a.p.InitialRenovations)
}

// AnnualCashFlow is NOI net of debt service.
func (a *Analysis) AnnualCashFlow() Money {
	return a.NOI().Sub(a.AnnualDebtService())
}

// CashOnCashReturn is annual cash flow over total cash invested, in
// percentage points. A non-positive investment yields 0.
func (a *Analysis) CashOnCashReturn() Percent {
	invested := a.TotalCashInvested().AsFloat()
	if invested <= 0 {
		return 0
	}
	return Percent(a.AnnualCashFlow().AsFloat() / invested * 100)
}

// Margin is net cash flow over annual revenue, as a decimal fraction — not a
// percentage; callers format it differently from the Percent-valued ratios.
// ok is false when revenue is non-positive and no margin can be stated.
func (a *Analysis) Margin() (margin float64, ok bool) {
	revenue := a.AnnualRevenue().AsFloat()
	if revenue <= 0 {
		return 0, false
	}
	return a.AnnualCashFlow().AsFloat() / revenue, true
}

// PricePerSquareFoot is a convenience figure for reports; 0 when the area is
// unknown.
func (a *Analysis) PricePerSquareFoot() Money {
	if a.p.SquareFootage <= 0 {
		return a.p.money(0)
	}
	return a.p.money(a.p.MarketValue().AsFloat() / a.p.SquareFootage)
}
