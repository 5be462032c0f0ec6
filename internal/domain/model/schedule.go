package model

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/bribank/origination/internal/domain/valueobject"
)

// Installment is an immutable value object representing one period of an
// amortization schedule.
type Installment struct {
	Number    int             `json:"number"`
	Interest  decimal.Decimal `json:"interest"`
	Principal decimal.Decimal `json:"principal"`
	Total     decimal.Decimal `json:"total"`
	Remaining decimal.Decimal `json:"remaining"`
}

// ComputeSchedule computes a constant-installment (French) amortization
// schedule from the given terms.
//
// The calculation uses the nominal-rate convention:
//
//	r = annualRate / 100
//	i = r / periodsPerYear
//	A = P * i / (1 - (1+i)^-N)
//
// Monetary fields are rounded half-up to two decimals; the final row is
// adjusted so the remaining principal reaches exactly zero. Invalid terms
// (non-positive rate, principal, or duration) yield a nil schedule rather
// than an error: the caller simply has nothing to display.
//
// The computation is pure and deterministic. A server-stored schedule for
// the same terms is byte-for-byte identical to a fresh preview.
func ComputeSchedule(terms valueobject.LoanTerms) []Installment {
	if terms.Principal.LessThanOrEqual(decimal.Zero) ||
		terms.AnnualRate.LessThanOrEqual(decimal.Zero) ||
		terms.DurationYears <= 0 {
		return nil
	}

	n := terms.Installments()
	if n <= 0 {
		return nil
	}

	// Periodic rate and annuity payment via float64 for the power term,
	// then back to decimal for monetary arithmetic.
	annualRate := terms.AnnualRate.InexactFloat64() / 100.0
	periodicRate := annualRate / float64(n/terms.DurationYears)

	payment := terms.Principal.InexactFloat64() *
		periodicRate / (1 - math.Pow(1+periodicRate, -float64(n)))
	annuity := decimal.NewFromFloat(payment).Round(2)

	periodicRateDec := decimal.NewFromFloat(periodicRate)
	remaining := terms.Principal

	schedule := make([]Installment, 0, n)
	for period := 1; period <= n; period++ {
		interest := remaining.Mul(periodicRateDec).Round(2)
		principalPart := annuity.Sub(interest)
		total := annuity

		// Final row absorbs the rounding drift so the balance closes at zero.
		if period == n {
			principalPart = remaining
			total = principalPart.Add(interest)
		}

		remaining = remaining.Sub(principalPart)
		if remaining.IsNegative() {
			remaining = decimal.Zero
		}

		schedule = append(schedule, Installment{
			Number:    period,
			Interest:  interest,
			Principal: principalPart.Round(2),
			Total:     total.Round(2),
			Remaining: remaining.Round(2),
		})
	}

	return schedule
}
