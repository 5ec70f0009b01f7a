package rentfolio

import (
	"fmt"
	"strings"
)

// PaymentFrequency defines how often a mortgage payment is due.
type PaymentFrequency int

const (
	Monthly PaymentFrequency = iota
	SemiMonthly
	BiWeekly
	AcceleratedBiWeekly
	Weekly
	AcceleratedWeekly
)

func (f PaymentFrequency) String() string {
	switch f {
	case Monthly:
		return "monthly"
	case SemiMonthly:
		return "semi-monthly"
	case BiWeekly:
		return "bi-weekly"
	case AcceleratedBiWeekly:
		return "accelerated-bi-weekly"
	case Weekly:
		return "weekly"
	case AcceleratedWeekly:
		return "accelerated-weekly"
	default:
		return "unknown"
	}
}

// ParsePaymentFrequency parses a string into a PaymentFrequency.
func ParsePaymentFrequency(s string) (PaymentFrequency, error) {
	switch strings.ToLower(s) {
	case "monthly", "":
		return Monthly, nil
	case "semi-monthly", "semimonthly":
		return SemiMonthly, nil
	case "bi-weekly", "biweekly":
		return BiWeekly, nil
	case "accelerated-bi-weekly", "accelerated-biweekly":
		return AcceleratedBiWeekly, nil
	case "weekly":
		return Weekly, nil
	case "accelerated-weekly":
		return AcceleratedWeekly, nil
	default:
		return Monthly, fmt.Errorf("unknown payment frequency %q", s)
	}
}

// PaymentsPerYear returns the number of scheduled payments per year.
//
// The accelerated variants keep the same payment count as their regular
// counterpart: they differ only in how the payment amount is derived (the
// monthly-equivalent payment halved or quartered), not in the period count.
func (f PaymentFrequency) PaymentsPerYear() int {
	switch f {
	case Monthly:
		return 12
	case SemiMonthly:
		return 24
	case BiWeekly, AcceleratedBiWeekly:
		return 26
	case Weekly, AcceleratedWeekly:
		return 52
	default:
		return 12
	}
}

// accelerated reports whether the frequency uses the accelerated payment
// convention, and the divisor applied to the monthly-equivalent payment.
func (f PaymentFrequency) accelerated() (divisor float64, ok bool) {
	switch f {
	case AcceleratedBiWeekly:
		return 2, true
	case AcceleratedWeekly:
		return 4, true
	default:
		return 0, false
	}
}

func (f PaymentFrequency) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", f.String())), nil
}

func (f *PaymentFrequency) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	v, err := ParsePaymentFrequency(s)
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// RateType distinguishes fixed from variable rate mortgages. It is carried
// through for reporting; the amortization math treats both as fixed at the
// current rate.
type RateType int

const (
	Fixed RateType = iota
	Variable
)

func (r RateType) String() string {
	switch r {
	case Fixed:
		return "fixed"
	case Variable:
		return "variable"
	default:
		return "unknown"
	}
}

// ParseRateType parses a string into a RateType.
func ParseRateType(s string) (RateType, error) {
	switch strings.ToLower(s) {
	case "fixed", "":
		return Fixed, nil
	case "variable":
		return Variable, nil
	default:
		return Fixed, fmt.Errorf("unknown rate type %q", s)
	}
}

func (r RateType) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", r.String())), nil
}

func (r *RateType) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	v, err := ParseRateType(s)
	if err != nil {
		return err
	}
	*r = v
	return nil
}
