package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/bribank/origination/internal/application/dto"
	"github.com/bribank/origination/internal/domain/port"
	"github.com/bribank/origination/internal/domain/valueobject"
)

// UpdateTermsUseCase replaces the loan terms of an editable request. A stored
// schedule no longer derives from the terms, so it is dropped.
type UpdateTermsUseCase struct {
	requestRepo  port.MortgageRequestRepository
	scheduleRepo port.ScheduleRepository
	publisher    port.EventPublisher
}

// NewUpdateTermsUseCase wires dependencies.
func NewUpdateTermsUseCase(
	requestRepo port.MortgageRequestRepository,
	scheduleRepo port.ScheduleRepository,
	publisher port.EventPublisher,
) *UpdateTermsUseCase {
	return &UpdateTermsUseCase{
		requestRepo:  requestRepo,
		scheduleRepo: scheduleRepo,
		publisher:    publisher,
	}
}

// Execute updates the terms and invalidates any stored schedule.
func (uc *UpdateTermsUseCase) Execute(ctx context.Context, req dto.UpdateTermsRequest) (dto.RequestResponse, error) {
	if !req.Actor.Role.Equal(valueobject.RoleOfficer) {
		return dto.RequestResponse{}, fmt.Errorf("%w: only an officer may edit terms",
			valueobject.ErrIllegalTransition)
	}

	now := time.Now().UTC()

	request, err := uc.requestRepo.FindByID(ctx, req.Actor.BranchID, req.RequestID)
	if err != nil {
		return dto.RequestResponse{}, fmt.Errorf("find request: %w", err)
	}

	terms, err := termsFromPayload(req.Terms)
	if err != nil {
		return dto.RequestResponse{}, err
	}

	request, err = request.UpdateTerms(terms, now)
	if err != nil {
		return dto.RequestResponse{}, err
	}

	// The stored schedule goes first: dropping a schedule that still matches
	// the old terms is harmless, while saving terms next to a stale schedule
	// is not.
	if err := uc.scheduleRepo.DeleteByRequestID(ctx, request.ID()); err != nil {
		return dto.RequestResponse{}, fmt.Errorf("%w: drop stale schedule: %v",
			valueobject.ErrUpstreamUnavailable, err)
	}

	if err := uc.requestRepo.Save(ctx, request); err != nil {
		return dto.RequestResponse{}, fmt.Errorf("save request: %w", err)
	}

	if err := uc.publisher.Publish(ctx, request.DomainEvents()...); err != nil {
		return dto.RequestResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return toRequestResponse(request), nil
}
