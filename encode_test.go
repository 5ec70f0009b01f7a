package rentfolio

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jpcaulfield/rentfolio/date"
)

// sampleLedger builds a small but complete ledger covering every entry type.
func sampleLedger(t *testing.T) *Portfolio {
	t.Helper()
	pf := NewPortfolio()
	err := pf.Append(
		NewDeclare(date.New(2023, 6, 1), "elm-12", "12 Elm Street", "USD", USD(400000), USD(8000), USD(12000), 1800),
		NewSetMortgage(date.New(2023, 6, 1), "elm-12", USD(300000), 0.052, 25, 60, Monthly, Fixed),
		NewSetValue(date.New(2024, 1, 15), "elm-12", USD(450000)),
		NewSetRent(date.New(2024, 1, 15), "elm-12", USD(2400)),
		NewLease(date.New(2024, 2, 1), "elm-12", "unit-a", USD(2500), date.Date{}),
		NewExpense(date.New(2024, 2, 10), "elm-12", CategoryPropertyTax, USD(4800)),
		NewEndLease(date.New(2024, 11, 30), "elm-12", "unit-a"),
	)
	if err != nil {
		t.Fatal(err)
	}
	return pf
}

func TestLedger_RoundTrip(t *testing.T) {
	pf := sampleLedger(t)

	var buf bytes.Buffer
	if err := EncodePortfolio(&buf, pf); err != nil {
		t.Fatal(err)
	}
	back, err := DecodePortfolio(&buf)
	if err != nil {
		t.Fatal(err)
	}

	if got, want := len(back.Entries()), len(pf.Entries()); got != want {
		t.Fatalf("round trip kept %d entries, want %d", got, want)
	}
	p := back.Property("elm-12")
	if p == nil {
		t.Fatal("property lost in round trip")
	}
	if p.Currency != "USD" || p.Name != "12 Elm Street" {
		t.Errorf("declaration fields lost: %q %q", p.Name, p.Currency)
	}
	if !p.PurchasePrice.Equal(USD(400000)) {
		t.Errorf("PurchasePrice = %v", p.PurchasePrice)
	}
	if !p.MarketValue().Equal(USD(450000)) {
		t.Errorf("MarketValue = %v", p.MarketValue())
	}
	if !p.Mortgage.Complete() {
		t.Error("mortgage lost in round trip")
	}
	if p.Mortgage.InterestRate != 0.052 || p.Mortgage.AmortizationYears != 25 {
		t.Errorf("mortgage terms lost: %v", p.Mortgage)
	}
	if len(p.Tenants) != 1 {
		t.Fatalf("tenants = %d, want 1", len(p.Tenants))
	}
	// The end-lease entry closed the lease at replay time.
	if lease := p.Tenants[0]; lease.Active() || lease.LeaseEnd != date.New(2024, 11, 30) {
		t.Errorf("lease end = %v, want 2024-11-30", lease.LeaseEnd)
	}
	if len(p.Expenses) != 1 || !p.Expenses[0].Amount.Equal(USD(4800)) {
		t.Errorf("expenses = %v", p.Expenses)
	}
}

func TestDecode_ActiveLeaseSentinel(t *testing.T) {
	ledger := strings.Join([]string{
		`{"command":"declare","property":"a","date":"2024-01-01","purchasePrice":100000}`,
		`{"command":"lease","property":"a","date":"2024-02-01","tenant":"t1","rent":1500,"end":"Active"}`,
		`{"command":"lease","property":"a","date":"2024-03-01","tenant":"t2","rent":900,"end":""}`,
	}, "\n")

	pf, err := DecodePortfolio(strings.NewReader(ledger))
	if err != nil {
		t.Fatal(err)
	}
	p := pf.Property("a")
	if len(p.Tenants) != 2 {
		t.Fatalf("tenants = %d, want 2", len(p.Tenants))
	}
	for _, lease := range p.Tenants {
		if !lease.Active() {
			t.Errorf("lease of %q should be active, end = %v", lease.Tenant, lease.LeaseEnd)
		}
	}
	// Omitted currency defaults to USD.
	if p.Currency != "USD" {
		t.Errorf("Currency = %q, want the USD default", p.Currency)
	}
}

func TestDecode_BlankLinesIgnored(t *testing.T) {
	ledger := "\n" +
		`{"command":"declare","property":"a","date":"2024-01-01","purchasePrice":100000}` +
		"\n\n   \n"
	pf, err := DecodePortfolio(strings.NewReader(ledger))
	if err != nil {
		t.Fatal(err)
	}
	if len(pf.Entries()) != 1 {
		t.Errorf("entries = %d, want 1", len(pf.Entries()))
	}
}

func TestDecode_UnknownCommand(t *testing.T) {
	_, err := DecodePortfolio(strings.NewReader(`{"command":"transmogrify","property":"a","date":"2024-01-01"}`))
	if err == nil {
		t.Fatal("unknown command must not decode")
	}
}

func TestAppend_Errors(t *testing.T) {
	pf := NewPortfolio()
	declare := NewDeclare(date.New(2024, 1, 1), "a", "", "USD", USD(1000), Money{}, Money{}, 0)
	if err := pf.Append(declare); err != nil {
		t.Fatal(err)
	}

	if err := pf.Append(declare); err == nil {
		t.Error("duplicate declaration must fail")
	}
	if err := pf.Append(NewExpense(date.New(2024, 2, 1), "ghost", "Repairs", USD(50))); err == nil {
		t.Error("entry against an undeclared property must fail")
	}
	if err := pf.Append(NewEndLease(date.New(2024, 3, 1), "a", "nobody")); err == nil {
		t.Error("ending a lease that was never opened must fail")
	}
}

func TestPortfolio_Fmt(t *testing.T) {
	pf := NewPortfolio()
	err := pf.Append(
		NewDeclare(date.New(2024, 1, 1), "a", "", "USD", USD(1000), Money{}, Money{}, 0),
		NewExpense(date.New(2024, 6, 1), "a", "Repairs", USD(50)),
		NewSetValue(date.New(2024, 3, 1), "a", USD(1200)),
	)
	if err != nil {
		t.Fatal(err)
	}

	sorted, err := pf.Fmt()
	if err != nil {
		t.Fatal(err)
	}
	entries := sorted.Entries()
	for i := 1; i < len(entries); i++ {
		if entries[i].When().Before(entries[i-1].When()) {
			t.Fatalf("entry %d (%s) precedes entry %d (%s)", i, entries[i].When(), i-1, entries[i-1].When())
		}
	}
	// Formatting must not change the replayed state.
	if got := sorted.Property("a").MarketValue(); !got.Equal(USD(1200)) {
		t.Errorf("MarketValue after Fmt = %v, want 1200", got)
	}
}

func TestLoadPortfolio_MissingFile(t *testing.T) {
	pf, err := LoadPortfolio(filepath.Join(t.TempDir(), "no-such.jsonl"))
	if err != nil {
		t.Fatalf("missing ledger must load empty, got %v", err)
	}
	if len(pf.Entries()) != 0 {
		t.Errorf("entries = %d, want 0", len(pf.Entries()))
	}
}

func TestSaveAndLoadPortfolio(t *testing.T) {
	pf := sampleLedger(t)
	path := filepath.Join(t.TempDir(), "ledger.jsonl")

	if err := SavePortfolio(path, pf); err != nil {
		t.Fatal(err)
	}
	// Appending after a save must extend, not clobber.
	if err := AppendEntry(path, NewExpense(date.New(2024, 12, 1), "elm-12", "Utilities", USD(80))); err != nil {
		t.Fatal(err)
	}

	back, err := LoadPortfolio(path)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := len(back.Entries()), len(pf.Entries())+1; got != want {
		t.Errorf("entries = %d, want %d", got, want)
	}
	if got := len(back.Property("elm-12").Expenses); got != 2 {
		t.Errorf("expenses = %d, want 2", got)
	}
}
