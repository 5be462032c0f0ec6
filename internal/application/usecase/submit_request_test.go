package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bribank/origination/internal/application/dto"
	"github.com/bribank/origination/internal/application/usecase"
	"github.com/bribank/origination/internal/domain/model"
	"github.com/bribank/origination/internal/domain/port"
	"github.com/bribank/origination/internal/domain/service"
	"github.com/bribank/origination/internal/domain/valueobject"
)

func TestSubmitRequest_Execute(t *testing.T) {
	lifecycle := service.NewLifecycle()

	t.Run("officer submits a draft", func(t *testing.T) {
		repo := repoReturning(fixtureRequest(valueobject.RequestStatusDraft))
		publisher := &mockEventPublisher{}
		uc := usecase.NewSubmitRequestUseCase(repo, lifecycle, publisher)

		resp, err := uc.Execute(context.Background(), dto.TransitionRequest{Actor: officerActor, RequestID: "req-001"})

		require.NoError(t, err)
		assert.Equal(t, "SUBMITTED", resp.Status)
		require.Len(t, repo.savedRequests, 1)
		require.Len(t, publisher.publishedEvents, 1)
		assert.Equal(t, "origination.request.submitted", publisher.publishedEvents[0].EventType())
	})

	t.Run("a rejected request resubmits", func(t *testing.T) {
		repo := repoReturning(fixtureRequest(valueobject.RequestStatusRejected))
		uc := usecase.NewSubmitRequestUseCase(repo, lifecycle, &mockEventPublisher{})

		resp, err := uc.Execute(context.Background(), dto.TransitionRequest{Actor: officerActor, RequestID: "req-001"})

		require.NoError(t, err)
		assert.Equal(t, "SUBMITTED", resp.Status)
	})

	t.Run("validator may not submit", func(t *testing.T) {
		repo := repoReturning(fixtureRequest(valueobject.RequestStatusDraft))
		uc := usecase.NewSubmitRequestUseCase(repo, lifecycle, &mockEventPublisher{})

		_, err := uc.Execute(context.Background(), dto.TransitionRequest{Actor: validatorActor, RequestID: "req-001"})

		require.ErrorIs(t, err, valueobject.ErrIllegalTransition)
	})
}

func TestValidateRequest_Execute(t *testing.T) {
	lifecycle := service.NewLifecycle()

	t.Run("validator approves a request under validation", func(t *testing.T) {
		repo := repoReturning(fixtureRequest(valueobject.RequestStatusValidation))
		publisher := &mockEventPublisher{}
		uc := usecase.NewValidateRequestUseCase(repo, lifecycle, publisher)

		resp, err := uc.Execute(context.Background(), dto.TransitionRequest{Actor: validatorActor, RequestID: "req-001"})

		require.NoError(t, err)
		assert.Equal(t, "VALIDATED", resp.Status)
		require.Len(t, publisher.publishedEvents, 1)
		assert.Equal(t, "origination.request.validated", publisher.publishedEvents[0].EventType())
	})

	t.Run("officer may not approve", func(t *testing.T) {
		repo := repoReturning(fixtureRequest(valueobject.RequestStatusValidation))
		uc := usecase.NewValidateRequestUseCase(repo, lifecycle, &mockEventPublisher{})

		_, err := uc.Execute(context.Background(), dto.TransitionRequest{Actor: officerActor, RequestID: "req-001"})

		require.ErrorIs(t, err, valueobject.ErrIllegalTransition)
	})
}

func TestSearchRequests_Execute(t *testing.T) {
	var captured port.RequestSearch
	repo := &mockRequestRepository{
		searchFunc: func(_ context.Context, branchID string, filter port.RequestSearch) ([]model.MortgageRequest, error) {
			captured = filter
			return []model.MortgageRequest{fixtureRequest(valueobject.RequestStatusSubmitted)}, nil
		},
	}
	uc := usecase.NewSearchRequestsUseCase(repo)

	resp, err := uc.Execute(context.Background(), dto.SearchRequestsRequest{
		Actor:      officerActor,
		LastName:   "Ros",
		Status:     "SUBMITTED",
		FiscalCode: "RSSMRA",
	})

	require.NoError(t, err)
	require.Len(t, resp, 1)
	assert.Equal(t, "SUBMITTED", resp[0].Status)
	assert.Equal(t, "Ros", captured.LastName)
	assert.Equal(t, "RSSMRA", captured.FiscalCode)
	assert.False(t, captured.IncludeDeleted)
}
