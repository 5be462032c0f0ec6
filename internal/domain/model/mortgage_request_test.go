package model_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bribank/origination/internal/domain/model"
	"github.com/bribank/origination/internal/domain/valueobject"
)

var testNow = time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

func validTerms() valueobject.LoanTerms {
	return valueobject.LoanTerms{
		Principal:     decimal.NewFromInt(120_000),
		AnnualRate:    decimal.NewFromFloat(4.5),
		DurationYears: 20,
		Cadence:       valueobject.CadenceMonthly,
		LoanTypeID:    1,
		PropertyValue: decimal.NewFromInt(200_000),
	}
}

func validParties() []model.Party {
	return []model.Party{
		{
			PersonID:   "person-001",
			FiscalCode: "RSSMRA80A01H501U",
			FirstName:  "Mario",
			LastName:   "Rossi",
			Role:       valueobject.PartyRoleIntestatario,
		},
		{
			PersonID:   "person-002",
			FiscalCode: "VRDLGI82B02H501V",
			FirstName:  "Luigi",
			LastName:   "Verdi",
			Role:       valueobject.PartyRoleGarante,
		},
	}
}

func newDraft(t *testing.T) model.MortgageRequest {
	t.Helper()
	req, err := model.NewMortgageRequest("branch-01", "officer-01", validTerms(), validParties(), testNow)
	require.NoError(t, err)
	return req.ClearEvents()
}

func allMandatoryDocs() []int {
	return valueobject.MandatoryDocumentTypeIDs()
}

func TestNewMortgageRequest(t *testing.T) {
	t.Run("creates a draft with a created event", func(t *testing.T) {
		req, err := model.NewMortgageRequest("branch-01", "officer-01", validTerms(), validParties(), testNow)
		require.NoError(t, err)

		assert.NotEmpty(t, req.ID())
		assert.Equal(t, valueobject.RequestStatusDraft, req.Status())
		assert.False(t, req.Deleted())
		assert.Equal(t, 1, req.Version())
		assert.Len(t, req.DomainEvents(), 1)
	})

	t.Run("rejects principal below the minimum", func(t *testing.T) {
		terms := validTerms()
		terms.Principal = decimal.NewFromInt(49_999)
		_, err := model.NewMortgageRequest("branch-01", "officer-01", terms, validParties(), testNow)
		require.ErrorIs(t, err, valueobject.ErrValidation)
	})

	t.Run("rejects property value not exceeding the principal", func(t *testing.T) {
		terms := validTerms()
		terms.PropertyValue = terms.Principal
		_, err := model.NewMortgageRequest("branch-01", "officer-01", terms, validParties(), testNow)
		require.ErrorIs(t, err, valueobject.ErrValidation)
	})

	t.Run("rejects parties without a primary holder", func(t *testing.T) {
		parties := validParties()
		parties[0].Role = valueobject.PartyRoleCointestatario
		_, err := model.NewMortgageRequest("branch-01", "officer-01", validTerms(), parties, testNow)
		require.ErrorIs(t, err, valueobject.ErrValidation)
	})

	t.Run("rejects duplicate fiscal codes regardless of case", func(t *testing.T) {
		parties := validParties()
		parties[1].FiscalCode = "rssmra80a01h501u"
		_, err := model.NewMortgageRequest("branch-01", "officer-01", validTerms(), parties, testNow)
		require.ErrorIs(t, err, valueobject.ErrValidation)
	})
}

func TestMortgageRequest_Submit(t *testing.T) {
	t.Run("draft submits", func(t *testing.T) {
		req := newDraft(t)
		next, err := req.Submit(testNow)
		require.NoError(t, err)
		assert.Equal(t, valueobject.RequestStatusSubmitted, next.Status())
		// Original copy is untouched.
		assert.Equal(t, valueobject.RequestStatusDraft, req.Status())
	})

	t.Run("rejected request resubmits and clears the note", func(t *testing.T) {
		req := newDraft(t)
		req, err := req.Submit(testNow)
		require.NoError(t, err)
		req, err = req.Reject("missing income proof", testNow)
		require.NoError(t, err)
		require.Equal(t, "missing income proof", req.RejectionNote())

		next, err := req.Submit(testNow)
		require.NoError(t, err)
		assert.Equal(t, valueobject.RequestStatusSubmitted, next.Status())
		assert.Empty(t, next.RejectionNote())
	})

	t.Run("submitted request cannot submit again", func(t *testing.T) {
		req := newDraft(t)
		req, err := req.Submit(testNow)
		require.NoError(t, err)
		_, err = req.Submit(testNow)
		require.ErrorIs(t, err, valueobject.ErrIllegalTransition)
	})
}

func TestMortgageRequest_ForwardToValidation(t *testing.T) {
	t.Run("forwards when all mandatory documents are present", func(t *testing.T) {
		req := newDraft(t)
		req, err := req.Submit(testNow)
		require.NoError(t, err)

		next, err := req.ForwardToValidation(allMandatoryDocs(), testNow)
		require.NoError(t, err)
		assert.Equal(t, valueobject.RequestStatusValidation, next.Status())
	})

	t.Run("reports missing mandatory categories", func(t *testing.T) {
		req := newDraft(t)
		req, err := req.Submit(testNow)
		require.NoError(t, err)

		docs := allMandatoryDocs()
		_, err = req.ForwardToValidation(docs[:len(docs)-1], testNow)
		require.ErrorIs(t, err, valueobject.ErrPreconditionNotMet)
	})

	t.Run("extra optional documents do not interfere", func(t *testing.T) {
		req := newDraft(t)
		req, err := req.Submit(testNow)
		require.NoError(t, err)

		_, err = req.ForwardToValidation(append(allMandatoryDocs(), 15), testNow)
		require.NoError(t, err)
	})

	t.Run("cannot forward from draft", func(t *testing.T) {
		req := newDraft(t)
		_, err := req.ForwardToValidation(allMandatoryDocs(), testNow)
		require.ErrorIs(t, err, valueobject.ErrIllegalTransition)
	})
}

func TestMortgageRequest_Reject(t *testing.T) {
	t.Run("requires a non-blank note", func(t *testing.T) {
		req := newDraft(t)
		req, err := req.Submit(testNow)
		require.NoError(t, err)

		_, err = req.Reject("   ", testNow)
		require.ErrorIs(t, err, valueobject.ErrValidation)
	})

	t.Run("rejects from validation", func(t *testing.T) {
		req := newDraft(t)
		req, err := req.Submit(testNow)
		require.NoError(t, err)
		req, err = req.ForwardToValidation(allMandatoryDocs(), testNow)
		require.NoError(t, err)

		next, err := req.Reject("appraisal too low", testNow)
		require.NoError(t, err)
		assert.Equal(t, valueobject.RequestStatusRejected, next.Status())
		assert.Equal(t, "appraisal too low", next.RejectionNote())
		assert.True(t, next.Status().IsEditable())
	})
}

func TestMortgageRequest_Validate(t *testing.T) {
	req := newDraft(t)
	req, err := req.Submit(testNow)
	require.NoError(t, err)
	req, err = req.ForwardToValidation(allMandatoryDocs(), testNow)
	require.NoError(t, err)

	next, err := req.Validate("validator-01", testNow)
	require.NoError(t, err)
	assert.Equal(t, valueobject.RequestStatusValidated, next.Status())
	assert.True(t, next.Status().IsTerminal())

	// Terminal state: nothing moves anymore.
	_, err = next.Submit(testNow)
	require.ErrorIs(t, err, valueobject.ErrIllegalTransition)
	_, err = next.Reject("no", testNow)
	require.ErrorIs(t, err, valueobject.ErrIllegalTransition)
	_, err = next.SoftDelete(testNow)
	require.ErrorIs(t, err, valueobject.ErrIllegalTransition)
}

func TestMortgageRequest_UpdateTerms(t *testing.T) {
	t.Run("editable request accepts new terms", func(t *testing.T) {
		req := newDraft(t)
		terms := validTerms()
		terms.Principal = decimal.NewFromInt(150_000)

		next, err := req.UpdateTerms(terms, testNow)
		require.NoError(t, err)
		assert.True(t, next.Terms().Principal.Equal(decimal.NewFromInt(150_000)))
	})

	t.Run("terms are frozen after submission", func(t *testing.T) {
		req := newDraft(t)
		req, err := req.Submit(testNow)
		require.NoError(t, err)

		_, err = req.UpdateTerms(validTerms(), testNow)
		require.ErrorIs(t, err, valueobject.ErrIllegalTransition)
	})
}

func TestMortgageRequest_SoftDeleteAndRestore(t *testing.T) {
	t.Run("round trip preserves status and fields", func(t *testing.T) {
		req := newDraft(t)

		deleted, err := req.SoftDelete(testNow)
		require.NoError(t, err)
		assert.True(t, deleted.Deleted())
		assert.Equal(t, valueobject.RequestStatusDraft, deleted.Status())

		restored, err := deleted.Restore(testNow)
		require.NoError(t, err)
		assert.False(t, restored.Deleted())
		assert.Equal(t, valueobject.RequestStatusDraft, restored.Status())
		assert.True(t, restored.Terms().Equal(req.Terms()))
	})

	t.Run("submitted request cannot be deleted", func(t *testing.T) {
		req := newDraft(t)
		req, err := req.Submit(testNow)
		require.NoError(t, err)

		_, err = req.SoftDelete(testNow)
		require.ErrorIs(t, err, valueobject.ErrIllegalTransition)
	})

	t.Run("deleted request blocks transitions until restored", func(t *testing.T) {
		req := newDraft(t)
		deleted, err := req.SoftDelete(testNow)
		require.NoError(t, err)

		_, err = deleted.Submit(testNow)
		require.ErrorIs(t, err, valueobject.ErrIllegalTransition)
		_, err = deleted.SoftDelete(testNow)
		require.ErrorIs(t, err, valueobject.ErrIllegalTransition)
	})
}
