package valueobject_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bribank/origination/internal/domain/valueobject"
)

func baseTerms() valueobject.LoanTerms {
	return valueobject.LoanTerms{
		Principal:     decimal.NewFromInt(100_000),
		AnnualRate:    decimal.NewFromFloat(5),
		DurationYears: 20,
		Cadence:       valueobject.CadenceMonthly,
		LoanTypeID:    1,
		PropertyValue: decimal.NewFromInt(180_000),
	}
}

func TestLoanTerms_Validate(t *testing.T) {
	t.Run("valid terms pass", func(t *testing.T) {
		require.NoError(t, baseTerms().Validate())
	})

	t.Run("principal below minimum", func(t *testing.T) {
		terms := baseTerms()
		terms.Principal = decimal.NewFromInt(49_999)
		terms.PropertyValue = decimal.NewFromInt(100_000)
		require.ErrorIs(t, terms.Validate(), valueobject.ErrValidation)
	})

	t.Run("minimum principal is accepted", func(t *testing.T) {
		terms := baseTerms()
		terms.Principal = valueobject.MinimumPrincipal
		require.NoError(t, terms.Validate())
	})

	t.Run("negative rate", func(t *testing.T) {
		terms := baseTerms()
		terms.AnnualRate = decimal.NewFromFloat(-0.5)
		require.ErrorIs(t, terms.Validate(), valueobject.ErrValidation)
	})

	t.Run("duration outside the catalog", func(t *testing.T) {
		terms := baseTerms()
		terms.DurationYears = 17
		require.ErrorIs(t, terms.Validate(), valueobject.ErrValidation)
	})

	t.Run("missing cadence", func(t *testing.T) {
		terms := baseTerms()
		terms.Cadence = valueobject.Cadence{}
		require.ErrorIs(t, terms.Validate(), valueobject.ErrValidation)
	})

	t.Run("unknown loan type", func(t *testing.T) {
		terms := baseTerms()
		terms.LoanTypeID = 99
		require.ErrorIs(t, terms.Validate(), valueobject.ErrValidation)
	})

	t.Run("property value equal to principal", func(t *testing.T) {
		terms := baseTerms()
		terms.PropertyValue = terms.Principal
		require.ErrorIs(t, terms.Validate(), valueobject.ErrValidation)
	})
}

func TestLoanTerms_Spread(t *testing.T) {
	terms := baseTerms()
	assert.True(t, terms.Spread().Equal(decimal.NewFromFloat(1.20)))

	terms.LoanTypeID = 2
	assert.True(t, terms.Spread().Equal(decimal.NewFromFloat(0.90)))

	terms.LoanTypeID = 99
	assert.True(t, terms.Spread().Equal(decimal.Zero))
}

func TestCadence_Installments(t *testing.T) {
	cases := []struct {
		cadence valueobject.Cadence
		years   int
		want    int
	}{
		{valueobject.CadenceMonthly, 20, 240},
		{valueobject.CadenceQuarterly, 20, 80},
		{valueobject.CadenceSemiannual, 20, 40},
		{valueobject.CadenceAnnual, 20, 20},
	}
	for _, tc := range cases {
		t.Run(tc.cadence.String(), func(t *testing.T) {
			assert.Equal(t, tc.want, tc.cadence.Installments(tc.years))
		})
	}
}

func TestNewCadence(t *testing.T) {
	c, err := valueobject.NewCadence("MONTHLY")
	require.NoError(t, err)
	assert.Equal(t, valueobject.CadenceMonthly, c)

	_, err = valueobject.NewCadence("WEEKLY")
	require.Error(t, err)
}

func TestCatalogs(t *testing.T) {
	t.Run("durations", func(t *testing.T) {
		assert.Equal(t, []int{5, 10, 15, 20, 25, 30}, valueobject.Durations())
		assert.True(t, valueobject.IsValidDuration(25))
		assert.False(t, valueobject.IsValidDuration(12))
	})

	t.Run("mandatory document categories", func(t *testing.T) {
		assert.Equal(t, []int{11, 12, 13, 14}, valueobject.MandatoryDocumentTypeIDs())

		optional, ok := valueobject.DocumentTypeByID(15)
		require.True(t, ok)
		assert.False(t, optional.Mandatory)
	})

	t.Run("loan types", func(t *testing.T) {
		assert.Len(t, valueobject.LoanTypes(), 4)
		_, ok := valueobject.LoanTypeByID(3)
		assert.True(t, ok)
		_, ok = valueobject.LoanTypeByID(0)
		assert.False(t, ok)
	})
}
