package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bribank/origination/internal/domain/service"
	"github.com/bribank/origination/internal/domain/valueobject"
)

func TestLifecycle_Authorize(t *testing.T) {
	lc := service.NewLifecycle()

	t.Run("officer submits a draft with no precondition", func(t *testing.T) {
		pre, err := lc.Authorize(valueobject.RequestStatusDraft, valueobject.RequestStatusSubmitted, valueobject.RoleOfficer)
		require.NoError(t, err)
		assert.Equal(t, service.PreconditionNone, pre)
	})

	t.Run("officer forwarding to validation is gated on documents", func(t *testing.T) {
		pre, err := lc.Authorize(valueobject.RequestStatusSubmitted, valueobject.RequestStatusValidation, valueobject.RoleOfficer)
		require.NoError(t, err)
		assert.Equal(t, service.PreconditionMandatoryDocuments, pre)
	})

	t.Run("validator approving requires validation status", func(t *testing.T) {
		pre, err := lc.Authorize(valueobject.RequestStatusValidation, valueobject.RequestStatusValidated, valueobject.RoleValidator)
		require.NoError(t, err)
		assert.Equal(t, service.PreconditionNone, pre)
	})

	t.Run("rejection from either stage requires a note", func(t *testing.T) {
		pre, err := lc.Authorize(valueobject.RequestStatusSubmitted, valueobject.RequestStatusRejected, valueobject.RoleOfficer)
		require.NoError(t, err)
		assert.Equal(t, service.PreconditionRejectionNote, pre)

		pre, err = lc.Authorize(valueobject.RequestStatusValidation, valueobject.RequestStatusRejected, valueobject.RoleValidator)
		require.NoError(t, err)
		assert.Equal(t, service.PreconditionRejectionNote, pre)
	})

	t.Run("wrong role on a legal pair is refused", func(t *testing.T) {
		_, err := lc.Authorize(valueobject.RequestStatusValidation, valueobject.RequestStatusValidated, valueobject.RoleOfficer)
		require.ErrorIs(t, err, valueobject.ErrIllegalTransition)

		_, err = lc.Authorize(valueobject.RequestStatusDraft, valueobject.RequestStatusSubmitted, valueobject.RoleValidator)
		require.ErrorIs(t, err, valueobject.ErrIllegalTransition)
	})

	t.Run("pairs outside the table are refused", func(t *testing.T) {
		_, err := lc.Authorize(valueobject.RequestStatusDraft, valueobject.RequestStatusValidated, valueobject.RoleValidator)
		require.ErrorIs(t, err, valueobject.ErrIllegalTransition)

		_, err = lc.Authorize(valueobject.RequestStatusValidated, valueobject.RequestStatusSubmitted, valueobject.RoleOfficer)
		require.ErrorIs(t, err, valueobject.ErrIllegalTransition)
	})

	t.Run("rejected request may be resubmitted by an officer", func(t *testing.T) {
		pre, err := lc.Authorize(valueobject.RequestStatusRejected, valueobject.RequestStatusSubmitted, valueobject.RoleOfficer)
		require.NoError(t, err)
		assert.Equal(t, service.PreconditionNone, pre)
	})
}

func TestLifecycle_AllowedTargets(t *testing.T) {
	lc := service.NewLifecycle()

	t.Run("officer on a submitted request", func(t *testing.T) {
		targets := lc.AllowedTargets(valueobject.RequestStatusSubmitted, valueobject.RoleOfficer)
		assert.ElementsMatch(t, []valueobject.RequestStatus{
			valueobject.RequestStatusValidation,
			valueobject.RequestStatusRejected,
		}, targets)
	})

	t.Run("validator on a submitted request has nothing to do", func(t *testing.T) {
		targets := lc.AllowedTargets(valueobject.RequestStatusSubmitted, valueobject.RoleValidator)
		assert.Empty(t, targets)
	})

	t.Run("terminal status has no targets", func(t *testing.T) {
		assert.Empty(t, lc.AllowedTargets(valueobject.RequestStatusValidated, valueobject.RoleOfficer))
		assert.Empty(t, lc.AllowedTargets(valueobject.RequestStatusValidated, valueobject.RoleValidator))
	})
}

func TestLifecycle_CanSoftDelete(t *testing.T) {
	lc := service.NewLifecycle()

	assert.True(t, lc.CanSoftDelete(valueobject.RequestStatusDraft, valueobject.RoleOfficer))
	assert.True(t, lc.CanSoftDelete(valueobject.RequestStatusRejected, valueobject.RoleOfficer))
	assert.False(t, lc.CanSoftDelete(valueobject.RequestStatusSubmitted, valueobject.RoleOfficer))
	assert.False(t, lc.CanSoftDelete(valueobject.RequestStatusValidated, valueobject.RoleOfficer))
	assert.False(t, lc.CanSoftDelete(valueobject.RequestStatusDraft, valueobject.RoleValidator))
}
