package usecase

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/bribank/origination/internal/application/dto"
	"github.com/bribank/origination/internal/domain/event"
	"github.com/bribank/origination/internal/domain/model"
	"github.com/bribank/origination/internal/domain/port"
	"github.com/bribank/origination/internal/domain/valueobject"
)

// GenerateScheduleUseCase computes and stores the authoritative amortization
// schedule of a request. The computation is deterministic, so repeating it for
// unchanged terms replaces the stored schedule with an identical one.
type GenerateScheduleUseCase struct {
	requestRepo  port.MortgageRequestRepository
	scheduleRepo port.ScheduleRepository
	publisher    port.EventPublisher
}

// NewGenerateScheduleUseCase wires dependencies.
func NewGenerateScheduleUseCase(
	requestRepo port.MortgageRequestRepository,
	scheduleRepo port.ScheduleRepository,
	publisher port.EventPublisher,
) *GenerateScheduleUseCase {
	return &GenerateScheduleUseCase{
		requestRepo:  requestRepo,
		scheduleRepo: scheduleRepo,
		publisher:    publisher,
	}
}

// Execute computes, persists, and returns the schedule.
func (uc *GenerateScheduleUseCase) Execute(ctx context.Context, req dto.TransitionRequest) (dto.ScheduleResponse, error) {
	request, err := uc.requestRepo.FindByID(ctx, req.Actor.BranchID, req.RequestID)
	if err != nil {
		return dto.ScheduleResponse{}, fmt.Errorf("find request: %w", err)
	}

	schedule := model.ComputeSchedule(request.Terms())
	if len(schedule) == 0 {
		return dto.ScheduleResponse{}, fmt.Errorf("%w: terms do not produce a schedule",
			valueobject.ErrValidation)
	}

	if err := uc.scheduleRepo.Replace(ctx, request.ID(), schedule); err != nil {
		return dto.ScheduleResponse{}, fmt.Errorf("%w: store schedule: %v",
			valueobject.ErrUpstreamUnavailable, err)
	}

	annuity := decimal.Zero
	if len(schedule) > 0 {
		annuity = schedule[0].Total
	}
	generated := event.NewScheduleGenerated(request.ID(), request.BranchID(), len(schedule), annuity)
	if err := uc.publisher.Publish(ctx, generated); err != nil {
		return dto.ScheduleResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return toScheduleResponse(request.ID(), schedule), nil
}
