package valueobject

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// MinimumPrincipal is the smallest amount the bank finances.
var MinimumPrincipal = decimal.NewFromInt(50_000)

// LoanTerms captures the financial terms of a mortgage request. The spread is
// not stored here: it derives from the loan type and is looked up on demand.
type LoanTerms struct {
	Principal     decimal.Decimal
	AnnualRate    decimal.Decimal // nominal percentage, e.g. 5 means 5%
	DurationYears int
	Cadence       Cadence
	LoanTypeID    int
	PropertyValue decimal.Decimal
}

// Validate checks the terms against the product catalogs and the invariants
// enforced at creation and submission time. All failures wrap ErrValidation.
func (t LoanTerms) Validate() error {
	if t.Principal.LessThan(MinimumPrincipal) {
		return fmt.Errorf("%w: principal must be at least %s", ErrValidation, MinimumPrincipal)
	}
	if t.AnnualRate.IsNegative() {
		return fmt.Errorf("%w: annual rate must not be negative", ErrValidation)
	}
	if !IsValidDuration(t.DurationYears) {
		return fmt.Errorf("%w: duration %d years is not offered", ErrValidation, t.DurationYears)
	}
	if t.Cadence.IsZero() {
		return fmt.Errorf("%w: cadence is required", ErrValidation)
	}
	if _, ok := LoanTypeByID(t.LoanTypeID); !ok {
		return fmt.Errorf("%w: unknown loan type %d", ErrValidation, t.LoanTypeID)
	}
	if t.PropertyValue.LessThanOrEqual(t.Principal) {
		return fmt.Errorf("%w: property value must exceed the requested principal", ErrValidation)
	}
	return nil
}

// Installments returns the total installment count implied by the terms.
func (t LoanTerms) Installments() int {
	return t.Cadence.Installments(t.DurationYears)
}

// Spread returns the annual markup derived from the loan type.
func (t LoanTerms) Spread() decimal.Decimal {
	lt, ok := LoanTypeByID(t.LoanTypeID)
	if !ok {
		return decimal.Zero
	}
	return lt.Spread
}

// Equal reports whether two term sets are identical. Schedule generation is
// idempotent for equal terms.
func (t LoanTerms) Equal(other LoanTerms) bool {
	return t.Principal.Equal(other.Principal) &&
		t.AnnualRate.Equal(other.AnnualRate) &&
		t.DurationYears == other.DurationYears &&
		t.Cadence.Equal(other.Cadence) &&
		t.LoanTypeID == other.LoanTypeID &&
		t.PropertyValue.Equal(other.PropertyValue)
}
