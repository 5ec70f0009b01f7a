package rentfolio

import (
	"fmt"
	"slices"

	"github.com/jpcaulfield/rentfolio/date"
)

// EntryType identifies a ledger entry kind.
type EntryType string

const (
	CmdDeclare  EntryType = "declare"
	CmdSetValue EntryType = "set-value"
	CmdSetRent  EntryType = "set-rent"
	CmdMortgage EntryType = "mortgage"
	CmdLease    EntryType = "lease"
	CmdEndLease EntryType = "end-lease"
	CmdExpense  EntryType = "expense"
)

// Entry is a single ledger line. Entries are immutable once appended; the
// portfolio state is whatever their replay produces.
type Entry interface {
	What() EntryType
	When() date.Date
	PropertyID() string
}

// baseEntry carries the fields shared by all entries.
type baseEntry struct {
	Command  EntryType `json:"command"`
	Property string    `json:"property"`
	Date     date.Date `json:"date"`
}

func (e baseEntry) What() EntryType    { return e.Command }
func (e baseEntry) When() date.Date    { return e.Date }
func (e baseEntry) PropertyID() string { return e.Property }

// Declare introduces a new property.
type Declare struct {
	baseEntry
	Name          string  `json:"name,omitempty"`
	Currency      string  `json:"currency,omitempty"`
	PurchasePrice Money   `json:"purchasePrice"`
	ClosingCosts  Money   `json:"closingCosts,omitzero"`
	Renovations   Money   `json:"renovations,omitzero"`
	SquareFootage float64 `json:"squareFootage,omitempty"`
}

// NewDeclare creates a property declaration. The entry date is the purchase
// date.
func NewDeclare(on date.Date, id, name, currency string, price, closing, renovations Money, sqft float64) Declare {
	return Declare{
		baseEntry:     baseEntry{Command: CmdDeclare, Property: id, Date: on},
		Name:          name,
		Currency:      currency,
		PurchasePrice: price,
		ClosingCosts:  closing,
		Renovations:   renovations,
		SquareFootage: sqft,
	}
}

// SetValue records a new appraised market value.
type SetValue struct {
	baseEntry
	Value Money `json:"value"`
}

func NewSetValue(on date.Date, id string, value Money) SetValue {
	return SetValue{baseEntry{CmdSetValue, id, on}, value}
}

// SetRent records the advertised monthly rent, used as a revenue fallback
// when no lease is on record.
type SetRent struct {
	baseEntry
	Monthly Money `json:"monthly"`
}

func NewSetRent(on date.Date, id string, monthly Money) SetRent {
	return SetRent{baseEntry{CmdSetRent, id, on}, monthly}
}

// SetMortgage records the property financing. The entry date is the mortgage
// start date.
type SetMortgage struct {
	baseEntry
	Amount            Money            `json:"amount"`
	Rate              float64          `json:"rate"`
	AmortizationYears int              `json:"amortizationYears"`
	TermMonths        int              `json:"termMonths,omitempty"`
	Frequency         PaymentFrequency `json:"frequency"`
	RateType          RateType         `json:"rateType"`
	RemainingBalance  *Money           `json:"remainingBalance,omitempty"`
}

func NewSetMortgage(on date.Date, id string, amount Money, rate float64, years, termMonths int, freq PaymentFrequency, rt RateType) SetMortgage {
	return SetMortgage{
		baseEntry:         baseEntry{Command: CmdMortgage, Property: id, Date: on},
		Amount:            amount,
		Rate:              rate,
		AmortizationYears: years,
		TermMonths:        termMonths,
		Frequency:         freq,
		RateType:          rt,
	}
}

// Lease records a tenant moving in. The entry date is the lease start; a
// zero End means the lease is active.
type Lease struct {
	baseEntry
	Tenant string    `json:"tenant"`
	Rent   Money     `json:"rent"`
	End    date.Date `json:"end,omitzero"`
}

func NewLease(start date.Date, id, tenant string, rent Money, end date.Date) Lease {
	return Lease{baseEntry{CmdLease, id, start}, tenant, rent, end}
}

// EndLease closes the tenant's active lease at the entry date.
type EndLease struct {
	baseEntry
	Tenant string `json:"tenant"`
}

func NewEndLease(on date.Date, id, tenant string) EndLease {
	return EndLease{baseEntry{CmdEndLease, id, on}, tenant}
}

// Expense records one dated operating expense.
type Expense struct {
	baseEntry
	Category string `json:"category"`
	Amount   Money  `json:"amount"`
}

func NewExpense(on date.Date, id, category string, amount Money) Expense {
	return Expense{baseEntry{CmdExpense, id, on}, category, amount}
}

// Portfolio is the replayed state of a ledger: every declared property with
// its financing, leases and expenses.
type Portfolio struct {
	entries    []Entry
	properties map[string]*Property
	order      []string // declaration order
}

// NewPortfolio creates an empty portfolio.
func NewPortfolio() *Portfolio {
	return &Portfolio{properties: make(map[string]*Property)}
}

// Entries returns the ledger entries in append order.
func (pf *Portfolio) Entries() []Entry { return pf.entries }

// Property returns the property with this id, or nil if unknown.
func (pf *Portfolio) Property(id string) *Property { return pf.properties[id] }

// Properties returns all properties in declaration order.
func (pf *Portfolio) Properties() []*Property {
	out := make([]*Property, 0, len(pf.order))
	for _, id := range pf.order {
		out = append(out, pf.properties[id])
	}
	return out
}

// Append validates and applies entries one by one. On error the portfolio
// keeps the entries applied so far and reports which entry failed.
func (pf *Portfolio) Append(entries ...Entry) error {
	for _, e := range entries {
		if err := pf.apply(e); err != nil {
			return fmt.Errorf("invalid %s entry on %s: %w", e.What(), e.When(), err)
		}
		pf.entries = append(pf.entries, e)
	}
	return nil
}

// inCurrency rebinds a decoded amount to the property currency. Amounts are
// persisted as bare decimals; the currency lives on the property.
func inCurrency(m Money, currency string) Money {
	return M(m.value, currency)
}

func (pf *Portfolio) apply(e Entry) error {
	if e.PropertyID() == "" {
		return fmt.Errorf("missing property id")
	}

	if d, ok := e.(Declare); ok {
		if _, exists := pf.properties[d.Property]; exists {
			return fmt.Errorf("property %q already declared", d.Property)
		}
		currency := d.Currency
		if currency == "" {
			currency = "USD"
		}
		pf.properties[d.Property] = &Property{
			ID:                 d.Property,
			Name:               d.Name,
			Currency:           currency,
			PurchasePrice:      inCurrency(d.PurchasePrice, currency),
			PurchaseDate:       d.Date,
			ClosingCosts:       inCurrency(d.ClosingCosts, currency),
			InitialRenovations: inCurrency(d.Renovations, currency),
			SquareFootage:      d.SquareFootage,
		}
		pf.order = append(pf.order, d.Property)
		return nil
	}

	p, ok := pf.properties[e.PropertyID()]
	if !ok {
		return fmt.Errorf("unknown property %q", e.PropertyID())
	}

	switch v := e.(type) {
	case SetValue:
		p.SetMarketValue(inCurrency(v.Value, p.Currency))
	case SetRent:
		p.MonthlyRent = inCurrency(v.Monthly, p.Currency)
	case SetMortgage:
		m := &Mortgage{
			OriginalAmount:    inCurrency(v.Amount, p.Currency),
			InterestRate:      v.Rate,
			AmortizationYears: v.AmortizationYears,
			TermMonths:        v.TermMonths,
			StartDate:         v.Date,
			Frequency:         v.Frequency,
			RateType:          v.RateType,
		}
		if v.RemainingBalance != nil {
			b := inCurrency(*v.RemainingBalance, p.Currency)
			m.RemainingBalance = &b
		}
		p.Mortgage = m
	case Lease:
		p.Tenants = append(p.Tenants, TenantLease{
			Tenant:     v.Tenant,
			Rent:       inCurrency(v.Rent, p.Currency),
			LeaseStart: v.Date,
			LeaseEnd:   v.End,
		})
	case EndLease:
		closed := false
		for i := len(p.Tenants) - 1; i >= 0; i-- {
			if p.Tenants[i].Tenant == v.Tenant && p.Tenants[i].Active() {
				p.Tenants[i].LeaseEnd = v.Date
				closed = true
				break
			}
		}
		if !closed {
			return fmt.Errorf("tenant %q has no active lease on %q", v.Tenant, p.ID)
		}
	case Expense:
		p.Expenses = append(p.Expenses, ExpenseRecord{
			Date:     v.Date,
			Category: v.Category,
			Amount:   inCurrency(v.Amount, p.Currency),
		})
	default:
		return fmt.Errorf("unsupported entry type %T", e)
	}
	return nil
}

// Fmt returns a new portfolio with the same entries in canonical
// chronological order (stable for same-day entries).
func (pf *Portfolio) Fmt() (*Portfolio, error) {
	sorted := slices.Clone(pf.entries)
	slices.SortStableFunc(sorted, func(a, b Entry) int {
		switch {
		case a.When().Before(b.When()):
			return -1
		case a.When().After(b.When()):
			return 1
		default:
			return 0
		}
	})
	out := NewPortfolio()
	if err := out.Append(sorted...); err != nil {
		return nil, err
	}
	return out, nil
}
