package renderer

import (
	"fmt"

	"github.com/jpcaulfield/rentfolio"
)

// PropertyReportView is the render-ready form of a property report: every
// figure pre-formatted as a string so the templates stay free of formatting
// logic.
type PropertyReportView struct {
	ID       string
	Name     string
	Date     string
	Currency string

	PurchasePrice string
	PurchaseDate  string
	MarketValue   string
	SquareFootage string // empty when unknown
	PricePerSqFt  string

	AnnualRevenue     string
	OperatingExpenses string
	NOI               string
	DebtService       string
	CashFlow          string
	CashInvested      string
	Equity            string

	CapRate    string
	CashOnCash string
	LTV        string
	DSCR       string
	Margin     string
	IRR5       string
	IRR10      string

	HasMortgage    bool
	LoanAmount     string
	InterestRate   string
	Amortization   string
	Frequency      string
	RateType       string
	MonthlyPayment string
	Balance        string
	Schedule       []ScheduleRowView
}

// ScheduleRowView is one pre-formatted line of the amortization excerpt.
type ScheduleRowView struct {
	Month     int
	Payment   string
	Interest  string
	Principal string
	Balance   string
}

// NewPropertyReportView formats a computed report for rendering.
func NewPropertyReportView(r *rentfolio.PropertyReport) *PropertyReportView {
	v := &PropertyReportView{
		ID:       r.ID,
		Name:     r.Name,
		Date:     r.Date.String(),
		Currency: r.Currency,

		PurchasePrice: r.PurchasePrice.String(),
		PurchaseDate:  r.PurchaseDate.String(),
		MarketValue:   r.MarketValue.String(),

		AnnualRevenue:     r.AnnualRevenue.String(),
		OperatingExpenses: r.AnnualOperatingExpenses.String(),
		NOI:               r.NOI.String(),
		DebtService:       r.AnnualDebtService.String(),
		CashFlow:          r.AnnualCashFlow.SignedString(),
		CashInvested:      r.TotalCashInvested.String(),
		Equity:            r.Equity.String(),

		CapRate:    r.CapRate.String(),
		CashOnCash: r.CashOnCash.String(),
		LTV:        r.LTV.String(),
		DSCR:       fmt.Sprintf("%.2f", r.DSCR),
		Margin:     r.MarginString(),
		IRR5:       r.IRR5.String(),
		IRR10:      r.IRR10.String(),
	}

	if r.SquareFootage > 0 {
		v.SquareFootage = fmt.Sprintf("%.0f sqft", r.SquareFootage)
		v.PricePerSqFt = r.PricePerSqFt.String()
	}

	if r.Mortgage != nil {
		m := r.Mortgage
		v.HasMortgage = true
		v.LoanAmount = m.OriginalAmount.String()
		v.InterestRate = fmt.Sprintf("%.2f%%", m.InterestRate*100)
		v.Amortization = fmt.Sprintf("%d years", m.AmortizationYears)
		v.Frequency = m.Frequency.String()
		v.RateType = m.RateType.String()
		v.MonthlyPayment = r.MonthlyPayment.String()
		v.Balance = r.Balance.String()
		for _, row := range r.Schedule {
			v.Schedule = append(v.Schedule, ScheduleRowView{
				Month:     row.Month,
				Payment:   row.Payment.String(),
				Interest:  row.Interest.String(),
				Principal: row.Principal.String(),
				Balance:   row.Balance.String(),
			})
		}
	}
	return v
}
