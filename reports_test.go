package rentfolio

import (
	"math"
	"testing"

	"github.com/jpcaulfield/rentfolio/date"
)

func TestNewPropertyReport(t *testing.T) {
	p := financedProperty()
	a := p.AnalysisOn(endOf2024)
	r := NewPropertyReport(p, endOf2024)

	if r.ID != "oak-7" || r.Name != "7 Oak Avenue" || r.Currency != "USD" {
		t.Errorf("identity fields = %q %q %q", r.ID, r.Name, r.Currency)
	}
	if !r.NOI.Equal(a.NOI()) {
		t.Errorf("NOI = %v, want %v", r.NOI, a.NOI())
	}
	if !r.CapRate.Equal(a.CapRate()) {
		t.Errorf("CapRate = %v, want %v", r.CapRate, a.CapRate())
	}
	if math.Abs(r.DSCR-a.DSCR()) > 1e-12 {
		t.Errorf("DSCR = %v, want %v", r.DSCR, a.DSCR())
	}
	if !r.IRR5.Equal(a.IRR(5)) || !r.IRR10.Equal(a.IRR(10)) {
		t.Errorf("IRR = %v/%v, want %v/%v", r.IRR5, r.IRR10, a.IRR(5), a.IRR(10))
	}

	if r.Mortgage == nil {
		t.Fatal("report lost the mortgage")
	}
	if !r.Balance.Equal(p.Mortgage.Balance(endOf2024)) {
		t.Errorf("Balance = %v", r.Balance)
	}
	if len(r.Schedule) != scheduleExcerptMonths {
		t.Errorf("schedule rows = %d, want %d", len(r.Schedule), scheduleExcerptMonths)
	}
	if !r.MarginKnown {
		t.Error("margin should be known with revenue on record")
	}
}

func TestPropertyReport_UnfinancedHasNoSchedule(t *testing.T) {
	p := financedProperty()
	p.Mortgage = nil
	r := NewPropertyReport(p, endOf2024)

	if r.Mortgage != nil || r.Schedule != nil {
		t.Error("unfinanced report must carry no mortgage section")
	}
	if !r.MonthlyPayment.IsZero() || !r.Balance.IsZero() {
		t.Errorf("payment/balance = %v/%v, want zero", r.MonthlyPayment, r.Balance)
	}
}

func TestPropertyReport_MarginString(t *testing.T) {
	r := &PropertyReport{Margin: 0.3375, MarginKnown: true}
	if got := r.MarginString(); got != "0.34" {
		t.Errorf("MarginString = %q, want 0.34", got)
	}
	r = &PropertyReport{MarginKnown: false}
	if got := r.MarginString(); got != "N/A" {
		t.Errorf("MarginString = %q, want N/A", got)
	}
}

func TestNewPortfolioSummary(t *testing.T) {
	pf := NewPortfolio()
	err := pf.Append(
		NewDeclare(date.New(2023, 6, 1), "b", "Second", "USD", USD(200000), Money{}, Money{}, 0),
		NewDeclare(date.New(2022, 1, 1), "a", "First", "USD", USD(300000), Money{}, Money{}, 0),
		NewSetValue(date.New(2024, 5, 1), "a", USD(350000)),
	)
	if err != nil {
		t.Fatal(err)
	}

	s := NewPortfolioSummary(pf, endOf2024)
	if len(s.Rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(s.Rows))
	}
	// Rows follow declaration order, not date order.
	if s.Rows[0].ID != "b" || s.Rows[1].ID != "a" {
		t.Errorf("row order = %q, %q", s.Rows[0].ID, s.Rows[1].ID)
	}

	if !s.TotalValue.Equal(USD(550000)) {
		t.Errorf("TotalValue = %v, want 550000", s.TotalValue)
	}
	wantEquity := s.Rows[0].Equity.Add(s.Rows[1].Equity)
	if !s.TotalEquity.Equal(wantEquity) {
		t.Errorf("TotalEquity = %v, want %v", s.TotalEquity, wantEquity)
	}
	wantNOI := s.Rows[0].NOI.Add(s.Rows[1].NOI)
	if !s.TotalNOI.Equal(wantNOI) {
		t.Errorf("TotalNOI = %v, want %v", s.TotalNOI, wantNOI)
	}
}
