package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bribank/origination/internal/application/dto"
	"github.com/bribank/origination/internal/domain/event"
	"github.com/bribank/origination/internal/domain/model"
	"github.com/bribank/origination/internal/domain/port"
	"github.com/bribank/origination/internal/domain/valueobject"
)

// RegisterPersonUseCase adds an applicant identity record to the registry.
// Fiscal codes are unique per branch.
type RegisterPersonUseCase struct {
	personRepo port.PersonRepository
	publisher  port.EventPublisher
}

// NewRegisterPersonUseCase wires dependencies.
func NewRegisterPersonUseCase(personRepo port.PersonRepository, publisher port.EventPublisher) *RegisterPersonUseCase {
	return &RegisterPersonUseCase{personRepo: personRepo, publisher: publisher}
}

// Execute validates and stores the person record.
func (uc *RegisterPersonUseCase) Execute(ctx context.Context, req dto.RegisterPersonRequest) (dto.PersonResponse, error) {
	now := time.Now().UTC()

	person, err := model.NewPerson(req.Actor.BranchID, req.FirstName, req.LastName, req.FiscalCode, req.BirthDate, now)
	if err != nil {
		return dto.PersonResponse{}, err
	}

	// Reject duplicates up front for a clearer error than the unique index.
	if existing, err := uc.personRepo.FindByFiscalCode(ctx, req.Actor.BranchID, person.FiscalCode); err == nil && existing.ID != "" {
		return dto.PersonResponse{}, fmt.Errorf("%w: fiscal code %s is already registered",
			valueobject.ErrValidation, person.FiscalCode)
	} else if err != nil && !errors.Is(err, valueobject.ErrNotFound) {
		return dto.PersonResponse{}, fmt.Errorf("%w: check fiscal code: %v",
			valueobject.ErrUpstreamUnavailable, err)
	}

	if err := uc.personRepo.Save(ctx, person); err != nil {
		return dto.PersonResponse{}, fmt.Errorf("save person: %w", err)
	}

	registered := event.NewPersonRegistered(person.ID, person.BranchID, person.FiscalCode)
	if err := uc.publisher.Publish(ctx, registered); err != nil {
		return dto.PersonResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return toPersonResponse(person), nil
}

// SearchPersonsUseCase searches the registry by name or fiscal code fragment.
type SearchPersonsUseCase struct {
	personRepo port.PersonRepository
}

// NewSearchPersonsUseCase wires dependencies.
func NewSearchPersonsUseCase(personRepo port.PersonRepository) *SearchPersonsUseCase {
	return &SearchPersonsUseCase{personRepo: personRepo}
}

// Execute runs the partial-match search within the actor's branch.
func (uc *SearchPersonsUseCase) Execute(ctx context.Context, actor dto.Actor, query string) ([]dto.PersonResponse, error) {
	persons, err := uc.personRepo.Search(ctx, actor.BranchID, query)
	if err != nil {
		return nil, fmt.Errorf("search persons: %w", err)
	}

	responses := make([]dto.PersonResponse, 0, len(persons))
	for _, p := range persons {
		responses = append(responses, toPersonResponse(p))
	}
	return responses, nil
}
