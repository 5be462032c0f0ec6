package valueobject

import "fmt"

// ---------------------------------------------------------------------------
// Cadence – immutable value object
// ---------------------------------------------------------------------------

// Cadence is the installment payment frequency of a mortgage.
type Cadence struct {
	value string
}

const (
	cadenceMonthly    = "MONTHLY"
	cadenceQuarterly  = "QUARTERLY"
	cadenceSemiannual = "SEMIANNUAL"
	cadenceAnnual     = "ANNUAL"
)

var (
	CadenceMonthly    = Cadence{value: cadenceMonthly}
	CadenceQuarterly  = Cadence{value: cadenceQuarterly}
	CadenceSemiannual = Cadence{value: cadenceSemiannual}
	CadenceAnnual     = Cadence{value: cadenceAnnual}
)

var validCadences = map[string]Cadence{
	cadenceMonthly:    CadenceMonthly,
	cadenceQuarterly:  CadenceQuarterly,
	cadenceSemiannual: CadenceSemiannual,
	cadenceAnnual:     CadenceAnnual,
}

// NewCadence creates a Cadence from a raw string.
func NewCadence(s string) (Cadence, error) {
	v, ok := validCadences[s]
	if !ok {
		return Cadence{}, fmt.Errorf("invalid cadence: %q", s)
	}
	return v, nil
}

// String returns the string representation of the cadence.
func (c Cadence) String() string { return c.value }

// IsZero returns true if the cadence has not been initialised.
func (c Cadence) IsZero() bool { return c.value == "" }

// Equal returns true when both cadences carry the same value.
func (c Cadence) Equal(other Cadence) bool { return c.value == other.value }

// PeriodsPerYear returns the number of installments falling due per year.
// An unrecognised (zero) cadence falls back to one annual installment.
func (c Cadence) PeriodsPerYear() int {
	switch c.value {
	case cadenceMonthly:
		return 12
	case cadenceQuarterly:
		return 4
	case cadenceSemiannual:
		return 2
	default:
		return 1
	}
}

// Installments returns the total installment count over the given duration.
func (c Cadence) Installments(durationYears int) int {
	return durationYears * c.PeriodsPerYear()
}
