package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/bribank/origination/internal/domain/model"
	"github.com/bribank/origination/internal/domain/port"
	"github.com/bribank/origination/internal/domain/valueobject"
	pkgpostgres "github.com/bribank/origination/pkg/postgres"
)

// MortgageRequestRepo implements port.MortgageRequestRepository.
type MortgageRequestRepo struct {
	pool *pgxpool.Pool
}

// NewMortgageRequestRepo creates a new repository backed by PostgreSQL.
func NewMortgageRequestRepo(pool *pgxpool.Pool) *MortgageRequestRepo {
	return &MortgageRequestRepo{pool: pool}
}

// Save persists a request and its parties (upsert by ID with optimistic
// locking; parties are replaced wholesale).
func (r *MortgageRequestRepo) Save(ctx context.Context, req model.MortgageRequest) error {
	return pkgpostgres.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		terms := req.Terms()
		query := `
			INSERT INTO mortgage_requests (
				id, branch_id, officer_id, principal, annual_rate,
				duration_years, cadence, loan_type_id, property_value,
				status, rejection_note, deleted, version, created_at, updated_at
			) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)
			ON CONFLICT (id) DO UPDATE SET
				principal      = EXCLUDED.principal,
				annual_rate    = EXCLUDED.annual_rate,
				duration_years = EXCLUDED.duration_years,
				cadence        = EXCLUDED.cadence,
				loan_type_id   = EXCLUDED.loan_type_id,
				property_value = EXCLUDED.property_value,
				status         = EXCLUDED.status,
				rejection_note = EXCLUDED.rejection_note,
				deleted        = EXCLUDED.deleted,
				version        = mortgage_requests.version + 1,
				updated_at     = EXCLUDED.updated_at
			WHERE mortgage_requests.version = $13
		`
		tag, err := tx.Exec(ctx, query,
			req.ID(), req.BranchID(), req.OfficerID(),
			terms.Principal, terms.AnnualRate,
			terms.DurationYears, terms.Cadence.String(), terms.LoanTypeID, terms.PropertyValue,
			req.Status().String(), req.RejectionNote(), req.Deleted(),
			req.Version(), req.CreatedAt(), req.UpdatedAt(),
		)
		if err != nil {
			return fmt.Errorf("save mortgage request: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return errors.New("optimistic locking conflict on mortgage request")
		}

		if _, err := tx.Exec(ctx, `DELETE FROM request_parties WHERE request_id = $1`, req.ID()); err != nil {
			return fmt.Errorf("clear request parties: %w", err)
		}
		for _, p := range req.Parties() {
			_, err := tx.Exec(ctx, `
				INSERT INTO request_parties (request_id, person_id, fiscal_code, first_name, last_name, role)
				VALUES ($1,$2,$3,$4,$5,$6)
			`, req.ID(), p.PersonID, p.FiscalCode, p.FirstName, p.LastName, p.Role.String())
			if err != nil {
				return fmt.Errorf("save request party: %w", err)
			}
		}
		return nil
	})
}

// FindByID retrieves a single request with its parties.
func (r *MortgageRequestRepo) FindByID(ctx context.Context, branchID, id string) (model.MortgageRequest, error) {
	query := selectRequests + ` WHERE branch_id = $1 AND id = $2`
	row := r.pool.QueryRow(ctx, query, branchID, id)

	req, err := scanRequest(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.MortgageRequest{}, fmt.Errorf("%w: mortgage request %s", valueobject.ErrNotFound, id)
		}
		return model.MortgageRequest{}, err
	}
	return r.attachParties(ctx, req)
}

// Search retrieves requests matching the filter with partial-match semantics
// on names, fiscal codes, and ids.
func (r *MortgageRequestRepo) Search(ctx context.Context, branchID string, filter port.RequestSearch) ([]model.MortgageRequest, error) {
	var (
		conds = []string{"branch_id = $1"}
		args  = []any{branchID}
	)

	addPartyCond := func(column, value string) {
		args = append(args, "%"+value+"%")
		conds = append(conds, fmt.Sprintf(
			`EXISTS (SELECT 1 FROM request_parties p WHERE p.request_id = mortgage_requests.id AND p.%s ILIKE $%d)`,
			column, len(args)))
	}
	if filter.FirstName != "" {
		addPartyCond("first_name", filter.FirstName)
	}
	if filter.LastName != "" {
		addPartyCond("last_name", filter.LastName)
	}
	if filter.FiscalCode != "" {
		addPartyCond("fiscal_code", filter.FiscalCode)
	}
	if filter.RequestID != "" {
		args = append(args, "%"+filter.RequestID+"%")
		conds = append(conds, fmt.Sprintf("id::text ILIKE $%d", len(args)))
	}
	if filter.Status != "" {
		args = append(args, strings.ToUpper(filter.Status))
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if !filter.IncludeDeleted {
		conds = append(conds, "deleted = FALSE")
	}

	query := selectRequests + " WHERE " + strings.Join(conds, " AND ") + " ORDER BY created_at DESC"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("search mortgage requests: %w", err)
	}
	defer rows.Close()

	var result []model.MortgageRequest
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, req)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i, req := range result {
		withParties, err := r.attachParties(ctx, req)
		if err != nil {
			return nil, err
		}
		result[i] = withParties
	}
	return result, nil
}

// ---------------------------------------------------------------------------
// scan helpers
// ---------------------------------------------------------------------------

const selectRequests = `
	SELECT id, branch_id, officer_id, principal, annual_rate,
	       duration_years, cadence, loan_type_id, property_value,
	       status, rejection_note, deleted, version, created_at, updated_at
	FROM mortgage_requests
`

type scannable interface {
	Scan(dest ...any) error
}

func scanRequest(s scannable) (model.MortgageRequest, error) {
	var (
		id, branchID, officerID  string
		principal, annualRate    decimal.Decimal
		durationYears            int
		cadenceStr               string
		loanTypeID               int
		propertyValue            decimal.Decimal
		statusStr, rejectionNote string
		deleted                  bool
		version                  int
		createdAt, updatedAt     time.Time
	)

	err := s.Scan(
		&id, &branchID, &officerID, &principal, &annualRate,
		&durationYears, &cadenceStr, &loanTypeID, &propertyValue,
		&statusStr, &rejectionNote, &deleted, &version, &createdAt, &updatedAt,
	)
	if err != nil {
		return model.MortgageRequest{}, fmt.Errorf("scan mortgage request: %w", err)
	}

	status, err := valueobject.NewRequestStatus(statusStr)
	if err != nil {
		return model.MortgageRequest{}, fmt.Errorf("parse status: %w", err)
	}
	cadence, err := valueobject.NewCadence(cadenceStr)
	if err != nil {
		return model.MortgageRequest{}, fmt.Errorf("parse cadence: %w", err)
	}

	terms := valueobject.LoanTerms{
		Principal:     principal,
		AnnualRate:    annualRate,
		DurationYears: durationYears,
		Cadence:       cadence,
		LoanTypeID:    loanTypeID,
		PropertyValue: propertyValue,
	}

	return model.ReconstructMortgageRequest(
		id, branchID, officerID, terms, nil,
		status, rejectionNote, deleted, version, createdAt, updatedAt,
	), nil
}

func (r *MortgageRequestRepo) attachParties(ctx context.Context, req model.MortgageRequest) (model.MortgageRequest, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT person_id, fiscal_code, first_name, last_name, role
		FROM request_parties
		WHERE request_id = $1
		ORDER BY role, fiscal_code
	`, req.ID())
	if err != nil {
		return model.MortgageRequest{}, fmt.Errorf("load request parties: %w", err)
	}
	defer rows.Close()

	var parties []model.Party
	for rows.Next() {
		var (
			p       model.Party
			roleStr string
		)
		if err := rows.Scan(&p.PersonID, &p.FiscalCode, &p.FirstName, &p.LastName, &roleStr); err != nil {
			return model.MortgageRequest{}, fmt.Errorf("scan request party: %w", err)
		}
		role, err := valueobject.NewPartyRole(roleStr)
		if err != nil {
			return model.MortgageRequest{}, fmt.Errorf("parse party role: %w", err)
		}
		p.Role = role
		parties = append(parties, p)
	}
	if err := rows.Err(); err != nil {
		return model.MortgageRequest{}, err
	}

	return model.ReconstructMortgageRequest(
		req.ID(), req.BranchID(), req.OfficerID(), req.Terms(), parties,
		req.Status(), req.RejectionNote(), req.Deleted(), req.Version(),
		req.CreatedAt(), req.UpdatedAt(),
	), nil
}
