package renderer

import (
	"strings"
	"testing"
	"text/template"

	"github.com/jpcaulfield/rentfolio"
	"github.com/jpcaulfield/rentfolio/date"
)

func fixtureProperty() *rentfolio.Property {
	p := &rentfolio.Property{
		ID:            "elm-12",
		Name:          "12 Elm Street",
		Currency:      "USD",
		PurchasePrice: rentfolio.M(400000, "USD"),
		PurchaseDate:  date.New(2020, 1, 1),
		ClosingCosts:  rentfolio.M(8000, "USD"),
		SquareFootage: 1800,
		Mortgage: &rentfolio.Mortgage{
			OriginalAmount:    rentfolio.M(300000, "USD"),
			InterestRate:      0.04,
			AmortizationYears: 30,
			StartDate:         date.New(2020, 1, 1),
			Frequency:         rentfolio.Monthly,
			RateType:          rentfolio.Fixed,
		},
		Tenants: []rentfolio.TenantLease{
			{Tenant: "unit-a", Rent: rentfolio.M(2500, "USD"), LeaseStart: date.New(2022, 1, 1)},
		},
		Expenses: []rentfolio.ExpenseRecord{
			{Date: date.New(2024, 2, 10), Category: rentfolio.CategoryPropertyTax, Amount: rentfolio.M(4800, "USD")},
		},
	}
	p.SetMarketValue(rentfolio.M(500000, "USD"))
	return p
}

func TestRenderPropertyReport(t *testing.T) {
	report := rentfolio.NewPropertyReport(fixtureProperty(), date.New(2024, 12, 31))
	out := RenderPropertyReport(NewPropertyReportView(report))

	if strings.Contains(out, "error") {
		t.Fatalf("render failed:\n%s", out)
	}
	for _, want := range []string{
		"# 12 Elm Street on 2024-12-31",
		"## Acquisition",
		"## Trailing Twelve Months",
		"## Ratios",
		"## Mortgage",
		"| Cap Rate | 5.04% |",
		"1800 sqft",
		"### Schedule (next 12 months)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q in:\n%s", want, out)
		}
	}
	// 12 schedule rows rendered.
	if got := strings.Count(out, "\n| 1"); got < 4 {
		t.Errorf("schedule looks truncated:\n%s", out)
	}
}

func TestRenderPropertyReport_Unfinanced(t *testing.T) {
	p := fixtureProperty()
	p.Mortgage = nil
	report := rentfolio.NewPropertyReport(p, date.New(2024, 12, 31))
	out := RenderPropertyReport(NewPropertyReportView(report))

	if strings.Contains(out, "## Mortgage") {
		t.Errorf("unfinanced report must not carry a mortgage section:\n%s", out)
	}
}

// Every embedded template must at least parse: a typo in a partial should be
// caught here, not at render time in production.
func TestTemplatesParse(t *testing.T) {
	entries, err := templates.ReadDir(".")
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) == 0 {
		t.Fatal("no templates embedded")
	}
	for _, e := range entries {
		content, err := templates.ReadFile(e.Name())
		if err != nil {
			t.Fatal(err)
		}
		if _, err := template.New(e.Name()).Parse(string(content)); err != nil {
			t.Errorf("template %s does not parse: %v", e.Name(), err)
		}
	}
}

func TestSummaryMarkdown(t *testing.T) {
	pf := rentfolio.NewPortfolio()
	err := pf.Append(
		rentfolio.NewDeclare(date.New(2020, 1, 1), "a", "First", "USD", rentfolio.M(300000, "USD"), rentfolio.Money{}, rentfolio.Money{}, 0),
		rentfolio.NewDeclare(date.New(2021, 1, 1), "b", "Second", "USD", rentfolio.M(200000, "USD"), rentfolio.Money{}, rentfolio.Money{}, 0),
	)
	if err != nil {
		t.Fatal(err)
	}

	out := SummaryMarkdown(rentfolio.NewPortfolioSummary(pf, date.New(2024, 12, 31)))
	for _, want := range []string{
		"# Portfolio Summary on 2024-12-31",
		"| First |",
		"| Second |",
		"**Total**",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q in:\n%s", want, out)
		}
	}
	// Rows keep declaration order.
	if strings.Index(out, "First") > strings.Index(out, "Second") {
		t.Error("summary rows out of declaration order")
	}
}

func TestLogMarkdown(t *testing.T) {
	out := LogMarkdown(fixtureProperty())
	for _, want := range []string{"## Leases", "| unit-a |", "Active", "## Expenses", "annual"} {
		if !strings.Contains(out, want) {
			t.Errorf("log missing %q in:\n%s", want, out)
		}
	}

	// Empty sections are dropped entirely.
	bare := &rentfolio.Property{ID: "bare", Currency: "USD"}
	out = LogMarkdown(bare)
	if strings.Contains(out, "## Leases") || strings.Contains(out, "## Expenses") {
		t.Errorf("empty sections must be omitted:\n%s", out)
	}
}
