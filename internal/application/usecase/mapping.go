package usecase

import (
	"fmt"

	"github.com/bribank/origination/internal/application/dto"
	"github.com/bribank/origination/internal/domain/model"
	"github.com/bribank/origination/internal/domain/valueobject"
)

func termsFromPayload(p dto.TermsPayload) (valueobject.LoanTerms, error) {
	cadence, err := valueobject.NewCadence(p.Cadence)
	if err != nil {
		return valueobject.LoanTerms{}, fmt.Errorf("%w: %v", valueobject.ErrValidation, err)
	}
	return valueobject.LoanTerms{
		Principal:     p.Principal,
		AnnualRate:    p.AnnualRate,
		DurationYears: p.DurationYears,
		Cadence:       cadence,
		LoanTypeID:    p.LoanTypeID,
		PropertyValue: p.PropertyValue,
	}, nil
}

func toRequestResponse(req model.MortgageRequest) dto.RequestResponse {
	terms := req.Terms()
	parties := req.Parties()

	partyResponses := make([]dto.PartyResponse, 0, len(parties))
	for _, p := range parties {
		partyResponses = append(partyResponses, dto.PartyResponse{
			PersonID:   p.PersonID,
			FiscalCode: p.FiscalCode,
			FirstName:  p.FirstName,
			LastName:   p.LastName,
			Role:       p.Role.String(),
		})
	}

	return dto.RequestResponse{
		ID:            req.ID(),
		BranchID:      req.BranchID(),
		OfficerID:     req.OfficerID(),
		Principal:     terms.Principal,
		AnnualRate:    terms.AnnualRate,
		DurationYears: terms.DurationYears,
		Cadence:       terms.Cadence.String(),
		LoanTypeID:    terms.LoanTypeID,
		Spread:        terms.Spread(),
		PropertyValue: terms.PropertyValue,
		Parties:       partyResponses,
		Status:        req.Status().String(),
		RejectionNote: req.RejectionNote(),
		Deleted:       req.Deleted(),
		Version:       req.Version(),
		CreatedAt:     req.CreatedAt(),
		UpdatedAt:     req.UpdatedAt(),
	}
}

func toScheduleResponse(requestID string, schedule []model.Installment) dto.ScheduleResponse {
	rows := make([]dto.InstallmentResponse, 0, len(schedule))
	for _, inst := range schedule {
		rows = append(rows, dto.InstallmentResponse{
			Number:    inst.Number,
			Interest:  inst.Interest,
			Principal: inst.Principal,
			Total:     inst.Total,
			Remaining: inst.Remaining,
		})
	}
	return dto.ScheduleResponse{RequestID: requestID, Installments: rows}
}

func toPersonResponse(p model.Person) dto.PersonResponse {
	return dto.PersonResponse{
		ID:         p.ID,
		BranchID:   p.BranchID,
		FirstName:  p.FirstName,
		LastName:   p.LastName,
		FiscalCode: p.FiscalCode,
		BirthDate:  p.BirthDate,
		CreatedAt:  p.CreatedAt,
	}
}

func toDocumentResponse(d model.Document) dto.DocumentResponse {
	return dto.DocumentResponse{
		ID:         d.ID,
		RequestID:  d.RequestID,
		TypeID:     d.TypeID,
		FileName:   d.FileName,
		UploadedBy: d.UploadedBy,
		UploadedAt: d.UploadedAt,
	}
}
