package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/bribank/origination/internal/application/dto"
	"github.com/bribank/origination/internal/domain/port"
	"github.com/bribank/origination/internal/domain/service"
	"github.com/bribank/origination/internal/domain/valueobject"
)

// RejectRequestUseCase rejects a SUBMITTED request (officer) or one under
// VALIDATION (validator) with a mandatory note. The request becomes editable
// again and may be resubmitted.
type RejectRequestUseCase struct {
	requestRepo port.MortgageRequestRepository
	lifecycle   *service.Lifecycle
	publisher   port.EventPublisher
}

// NewRejectRequestUseCase wires dependencies.
func NewRejectRequestUseCase(
	requestRepo port.MortgageRequestRepository,
	lifecycle *service.Lifecycle,
	publisher port.EventPublisher,
) *RejectRequestUseCase {
	return &RejectRequestUseCase{
		requestRepo: requestRepo,
		lifecycle:   lifecycle,
		publisher:   publisher,
	}
}

// Execute rejects the request, persisting the note.
func (uc *RejectRequestUseCase) Execute(ctx context.Context, req dto.RejectRequestRequest) (dto.RequestResponse, error) {
	now := time.Now().UTC()

	request, err := uc.requestRepo.FindByID(ctx, req.Actor.BranchID, req.RequestID)
	if err != nil {
		return dto.RequestResponse{}, fmt.Errorf("find request: %w", err)
	}

	if _, err := uc.lifecycle.Authorize(request.Status(), valueobject.RequestStatusRejected, req.Actor.Role); err != nil {
		return dto.RequestResponse{}, err
	}

	request, err = request.Reject(req.Note, now)
	if err != nil {
		return dto.RequestResponse{}, err
	}

	if err := uc.requestRepo.Save(ctx, request); err != nil {
		return dto.RequestResponse{}, fmt.Errorf("save request: %w", err)
	}

	if err := uc.publisher.Publish(ctx, request.DomainEvents()...); err != nil {
		return dto.RequestResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return toRequestResponse(request), nil
}
