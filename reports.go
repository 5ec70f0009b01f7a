package rentfolio

import (
	"fmt"

	"github.com/jpcaulfield/rentfolio/date"
)

// scheduleExcerptMonths is how much of the amortization schedule a property
// report carries.
const scheduleExcerptMonths = 12

// PropertyReport is the full metrics view of one property on a given date,
// ready for rendering.
type PropertyReport struct {
	ID       string
	Name     string
	Date     date.Date
	Currency string

	PurchasePrice Money
	PurchaseDate  date.Date
	MarketValue   Money
	SquareFootage float64
	PricePerSqFt  Money

	AnnualRevenue           Money
	AnnualOperatingExpenses Money
	NOI                     Money
	AnnualDebtService       Money
	AnnualCashFlow          Money
	TotalCashInvested       Money
	Equity                  Money

	CapRate    Percent
	CashOnCash Percent
	LTV        Percent
	DSCR       float64
	// Margin is a decimal fraction, not a percentage. MarginKnown is false
	// when revenue is zero and no margin can be stated.
	Margin      float64
	MarginKnown bool

	// IRR per holding horizon, percentage points.
	IRR5  Percent
	IRR10 Percent

	Mortgage       *Mortgage
	MonthlyPayment Money
	Balance        Money
	Schedule       []ScheduleRow
}

// NewPropertyReport computes the report for a property as of the given date.
func NewPropertyReport(p *Property, on date.Date) *PropertyReport {
	a := p.AnalysisOn(on)
	margin, ok := a.Margin()

	r := &PropertyReport{
		ID:       p.ID,
		Name:     p.Name,
		Date:     on,
		Currency: p.Currency,

		PurchasePrice: p.PurchasePrice,
		PurchaseDate:  p.PurchaseDate,
		MarketValue:   p.MarketValue(),
		SquareFootage: p.SquareFootage,
		PricePerSqFt:  a.PricePerSquareFoot(),

		AnnualRevenue:           a.AnnualRevenue(),
		AnnualOperatingExpenses: a.AnnualOperatingExpenses(),
		NOI:                     a.NOI(),
		AnnualDebtService:       a.AnnualDebtService(),
		AnnualCashFlow:          a.AnnualCashFlow(),
		TotalCashInvested:       a.TotalCashInvested(),
		Equity:                  a.Equity(),

		CapRate:     a.CapRate(),
		CashOnCash:  a.CashOnCashReturn(),
		LTV:         a.LTV(),
		DSCR:        a.DSCR(),
		Margin:      margin,
		MarginKnown: ok,

		IRR5:  a.IRR(5),
		IRR10: a.IRR(10),
	}

	if p.Mortgage != nil {
		r.Mortgage = p.Mortgage
		r.MonthlyPayment = p.Mortgage.MonthlyPayment()
		r.Balance = p.Mortgage.Balance(on)
		r.Schedule = p.Mortgage.Schedule(scheduleExcerptMonths)
	}
	return r
}

// MarginString formats the margin as a plain decimal, or "N/A" when no
// margin can be stated.
func (r *PropertyReport) MarginString() string {
	if !r.MarginKnown {
		return "N/A"
	}
	return fmt.Sprintf("%.2f", r.Margin)
}

// SummaryRow is one property line of the portfolio summary.
type SummaryRow struct {
	ID             string
	Name           string
	MarketValue    Money
	NOI            Money
	AnnualCashFlow Money
	Equity         Money
	CapRate        Percent
	DSCR           float64
}

// PortfolioSummary is the at-a-glance view of every property on a date.
// Totals assume a single-currency portfolio.
type PortfolioSummary struct {
	Date date.Date
	Rows []SummaryRow

	TotalValue    Money
	TotalNOI      Money
	TotalCashFlow Money
	TotalEquity   Money
}

// NewPortfolioSummary computes the summary of the whole portfolio as of the
// given date, in declaration order.
func NewPortfolioSummary(pf *Portfolio, on date.Date) *PortfolioSummary {
	s := &PortfolioSummary{Date: on}
	for _, p := range pf.Properties() {
		a := p.AnalysisOn(on)
		row := SummaryRow{
			ID:             p.ID,
			Name:           p.Name,
			MarketValue:    p.MarketValue(),
			NOI:            a.NOI(),
			AnnualCashFlow: a.AnnualCashFlow(),
			Equity:         a.Equity(),
			CapRate:        a.CapRate(),
			DSCR:           a.DSCR(),
		}
		s.Rows = append(s.Rows, row)
		s.TotalValue = s.TotalValue.Add(row.MarketValue)
		s.TotalNOI = s.TotalNOI.Add(row.NOI)
		s.TotalCashFlow = s.TotalCashFlow.Add(row.AnnualCashFlow)
		s.TotalEquity = s.TotalEquity.Add(row.Equity)
	}
	return s
}
