package usecase_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bribank/origination/internal/application/dto"
	"github.com/bribank/origination/internal/application/usecase"
	"github.com/bribank/origination/internal/domain/model"
	"github.com/bribank/origination/internal/domain/port"
	"github.com/bribank/origination/internal/domain/valueobject"
)

func TestGenerateSchedule_Execute(t *testing.T) {
	t.Run("computes, stores, and returns the schedule", func(t *testing.T) {
		repo := repoReturning(fixtureRequest(valueobject.RequestStatusSubmitted))
		schedules := newMockScheduleRepository()
		publisher := &mockEventPublisher{}
		uc := usecase.NewGenerateScheduleUseCase(repo, schedules, publisher)

		resp, err := uc.Execute(context.Background(), dto.TransitionRequest{Actor: officerActor, RequestID: "req-001"})

		require.NoError(t, err)
		assert.Equal(t, "req-001", resp.RequestID)
		// 20 years, monthly.
		assert.Len(t, resp.Installments, 240)
		assert.Equal(t, 240, schedules.replacedRows)
		require.Len(t, publisher.publishedEvents, 1)
		assert.Equal(t, "origination.schedule.generated", publisher.publishedEvents[0].EventType())
	})

	t.Run("regeneration for unchanged terms is idempotent", func(t *testing.T) {
		repo := repoReturning(fixtureRequest(valueobject.RequestStatusSubmitted))
		schedules := newMockScheduleRepository()
		uc := usecase.NewGenerateScheduleUseCase(repo, schedules, &mockEventPublisher{})

		first, err := uc.Execute(context.Background(), dto.TransitionRequest{Actor: officerActor, RequestID: "req-001"})
		require.NoError(t, err)
		second, err := uc.Execute(context.Background(), dto.TransitionRequest{Actor: officerActor, RequestID: "req-001"})
		require.NoError(t, err)

		assert.Equal(t, first.Installments, second.Installments)
	})

	t.Run("storage outage surfaces as upstream unavailable", func(t *testing.T) {
		repo := repoReturning(fixtureRequest(valueobject.RequestStatusSubmitted))
		schedules := newMockScheduleRepository()
		schedules.replaceFunc = func(_ context.Context, _ string, _ []model.Installment) error {
			return fmt.Errorf("disk full")
		}
		uc := usecase.NewGenerateScheduleUseCase(repo, schedules, &mockEventPublisher{})

		_, err := uc.Execute(context.Background(), dto.TransitionRequest{Actor: officerActor, RequestID: "req-001"})

		require.ErrorIs(t, err, valueobject.ErrUpstreamUnavailable)
	})
}

func TestExportSchedule_Execute(t *testing.T) {
	t.Run("prefers the stored schedule", func(t *testing.T) {
		request := fixtureRequest(valueobject.RequestStatusValidated)
		stored := model.ComputeSchedule(request.Terms())

		repo := repoReturning(request)
		schedules := newMockScheduleRepository()
		schedules.stored[request.ID()] = stored

		var rendered []model.Installment
		exporter := &mockScheduleExporter{
			renderFunc: func(_ string, schedule []model.Installment, _ port.ExportFormat) ([]byte, string, error) {
				rendered = schedule
				return []byte("%PDF"), "application/pdf", nil
			},
		}
		uc := usecase.NewExportScheduleUseCase(repo, schedules, exporter)

		resp, err := uc.Execute(context.Background(), dto.ExportScheduleRequest{
			Actor:     officerActor,
			RequestID: "req-001",
			Format:    "pdf",
		})

		require.NoError(t, err)
		assert.Equal(t, stored, rendered)
		assert.Equal(t, "application/pdf", resp.ContentType)
		assert.Equal(t, "amortization_schedule_req-001.pdf", resp.FileName)
		assert.NotEmpty(t, resp.Content)
	})

	t.Run("falls back to a fresh computation when nothing is stored", func(t *testing.T) {
		repo := repoReturning(fixtureRequest(valueobject.RequestStatusDraft))
		schedules := newMockScheduleRepository()

		var rendered []model.Installment
		exporter := &mockScheduleExporter{
			renderFunc: func(_ string, schedule []model.Installment, _ port.ExportFormat) ([]byte, string, error) {
				rendered = schedule
				return []byte("xlsx"), "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", nil
			},
		}
		uc := usecase.NewExportScheduleUseCase(repo, schedules, exporter)

		resp, err := uc.Execute(context.Background(), dto.ExportScheduleRequest{
			Actor:     officerActor,
			RequestID: "req-001",
			Format:    "excel",
		})

		require.NoError(t, err)
		assert.Len(t, rendered, 240)
		assert.Equal(t, "amortization_schedule_req-001.xlsx", resp.FileName)
	})

	t.Run("unknown format is a validation error", func(t *testing.T) {
		uc := usecase.NewExportScheduleUseCase(&mockRequestRepository{}, newMockScheduleRepository(), &mockScheduleExporter{})

		_, err := uc.Execute(context.Background(), dto.ExportScheduleRequest{
			Actor:     officerActor,
			RequestID: "req-001",
			Format:    "csv",
		})

		require.ErrorIs(t, err, valueobject.ErrValidation)
	})
}
