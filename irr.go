package rentfolio

import "math"

// Projection holds the constants behind the IRR projection: how the sale is
// modelled and how the Newton-Raphson solver is bounded. Tests override it
// through Analysis.WithProjection.
type Projection struct {
	// AppreciationRate is the assumed constant annual appreciation applied
	// to the market value over the holding period.
	AppreciationRate float64
	// SellingCostRate is the fraction of the sale price lost to agent fees
	// and closing costs.
	SellingCostRate float64
	// InitialGuess is the solver's starting discount rate.
	InitialGuess float64
	// Tolerance on |NPV| below which the solver accepts the rate.
	Tolerance float64
	// DerivativeEpsilon guards against a stalled (near-zero) derivative.
	DerivativeEpsilon float64
	// MaxIterations bounds the solver; exceeding it means non-convergence.
	MaxIterations int
}

// DefaultProjection carries the standard modelling assumptions: 3% annual
// appreciation and a 5% selling cost.
var DefaultProjection = Projection{
	AppreciationRate:  0.03,
	SellingCostRate:   0.05,
	InitialGuess:      0.10,
	Tolerance:         1e-6,
	DerivativeEpsilon: 1e-10,
	MaxIterations:     100,
}

// IRR returns the internal rate of return of holding the property for the
// given number of years, in percentage points (12.5 means 12.5%).
//
// The cash-flow series is: the total cash invested up front, the current
// annual cash flow held constant for every holding year, and in the final
// year the net sale proceeds — the appreciated market value less selling
// costs and the remaining mortgage payoff.
//
// Every failure mode — non-positive holding period, nothing invested, a
// stalled or non-converging solver — resolves to 0, never to NaN or an
// extreme rate.
func (a *Analysis) IRR(holdingYears int) Percent {
	if holdingYears <= 0 {
		return 0
	}
	invested := a.TotalCashInvested().AsFloat()
	if invested <= 0 {
		return 0
	}

	annual := a.AnnualCashFlow().AsFloat()
	sale := a.p.MarketValue().AsFloat() * math.Pow(1+a.proj.AppreciationRate, float64(holdingYears))
	payoff := 0.0
	if a.p.Mortgage != nil {
		payoff = a.p.Mortgage.BalanceAfterMonths(holdingYears * 12).AsFloat()
	}
	netSaleProceeds := sale*(1-a.proj.SellingCostRate) - payoff

	flows := make([]float64, holdingYears+1)
	flows[0] = -invested
	for t := 1; t < holdingYears; t++ {
		flows[t] = annual
	}
	flows[holdingYears] = annual + netSaleProceeds

	return Percent(100 * internalRate(flows, a.proj))
}

// internalRate finds the discount rate that zeroes the net present value of
// the cash-flow series, by Newton-Raphson from cfg.InitialGuess. It returns
// 0 when the solver stalls, diverges or fails to converge within
// cfg.MaxIterations.
func internalRate(flows []float64, cfg Projection) float64 {
	rate := cfg.InitialGuess
	for i := 0; i < cfg.MaxIterations; i++ {
		npv, derivative := netPresentValue(flows, rate)
		if math.Abs(npv) < cfg.Tolerance {
			return rate
		}
		if math.Abs(derivative) < cfg.DerivativeEpsilon {
			return 0
		}
		rate -= npv / derivative
		if math.IsNaN(rate) || math.IsInf(rate, 0) {
			return 0
		}
	}
	return 0
}

// netPresentValue evaluates NPV(rate) = Σ CF[t]/(1+rate)^t and its analytic
// derivative Σ −t·CF[t]/(1+rate)^(t+1).
func netPresentValue(flows []float64, rate float64) (npv, derivative float64) {
	for t, cf := range flows {
		discount := math.Pow(1+rate, float64(t))
		npv += cf / discount
		derivative -= float64(t) * cf / math.Pow(1+rate, float64(t+1))
	}
	return npv, derivative
}
