package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/bribank/origination/internal/application/dto"
	"github.com/bribank/origination/internal/domain/model"
	"github.com/bribank/origination/internal/domain/port"
	"github.com/bribank/origination/internal/domain/valueobject"
)

// CreateRequestUseCase creates a new mortgage request in DRAFT after
// resolving the selected persons into request parties.
type CreateRequestUseCase struct {
	requestRepo port.MortgageRequestRepository
	personRepo  port.PersonRepository
	publisher   port.EventPublisher
}

// NewCreateRequestUseCase wires dependencies.
func NewCreateRequestUseCase(
	requestRepo port.MortgageRequestRepository,
	personRepo port.PersonRepository,
	publisher port.EventPublisher,
) *CreateRequestUseCase {
	return &CreateRequestUseCase{
		requestRepo: requestRepo,
		personRepo:  personRepo,
		publisher:   publisher,
	}
}

// Execute validates terms and parties and persists the new request.
func (uc *CreateRequestUseCase) Execute(ctx context.Context, req dto.CreateRequestRequest) (dto.RequestResponse, error) {
	if !req.Actor.Role.Equal(valueobject.RoleOfficer) {
		return dto.RequestResponse{}, fmt.Errorf("%w: only an officer may create a request",
			valueobject.ErrIllegalTransition)
	}

	now := time.Now().UTC()

	terms, err := termsFromPayload(req.Terms)
	if err != nil {
		return dto.RequestResponse{}, err
	}

	// Resolve person records into parties.
	parties := make([]model.Party, 0, len(req.Parties))
	for _, p := range req.Parties {
		role, err := valueobject.NewPartyRole(p.Role)
		if err != nil {
			return dto.RequestResponse{}, fmt.Errorf("%w: %v", valueobject.ErrValidation, err)
		}
		person, err := uc.personRepo.FindByID(ctx, req.Actor.BranchID, p.PersonID)
		if err != nil {
			return dto.RequestResponse{}, fmt.Errorf("resolve party %s: %w", p.PersonID, err)
		}
		parties = append(parties, model.Party{
			PersonID:   person.ID,
			FiscalCode: person.FiscalCode,
			FirstName:  person.FirstName,
			LastName:   person.LastName,
			Role:       role,
		})
	}

	request, err := model.NewMortgageRequest(req.Actor.BranchID, req.Actor.UserID, terms, parties, now)
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
