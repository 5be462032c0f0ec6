package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bribank/origination/internal/domain/model"
	"github.com/bribank/origination/internal/domain/valueobject"
)

// PersonRepo implements port.PersonRepository.
type PersonRepo struct {
	pool *pgxpool.Pool
}

// NewPersonRepo creates a new repository backed by PostgreSQL.
func NewPersonRepo(pool *pgxpool.Pool) *PersonRepo {
	return &PersonRepo{pool: pool}
}

const selectPersons = `
	SELECT id, branch_id, first_name, last_name, fiscal_code, birth_date, created_at
	FROM persons
`

// Save persists a person record.
func (r *PersonRepo) Save(ctx context.Context, p model.Person) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO persons (id, branch_id, first_name, last_name, fiscal_code, birth_date, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		ON CONFLICT (id) DO UPDATE SET
			first_name = EXCLUDED.first_name,
			last_name  = EXCLUDED.last_name,
			birth_date = EXCLUDED.birth_date
	`, p.ID, p.BranchID, p.FirstName, p.LastName, p.FiscalCode, p.BirthDate, p.CreatedAt)
	if err != nil {
		return fmt.Errorf("save person: %w", err)
	}
	return nil
}

// FindByID retrieves a person record.
func (r *PersonRepo) FindByID(ctx context.Context, branchID, id string) (model.Person, error) {
	row := r.pool.QueryRow(ctx, selectPersons+` WHERE branch_id = $1 AND id = $2`, branchID, id)
	return scanPerson(row, id)
}

// FindByFiscalCode retrieves a person record by exact fiscal code.
func (r *PersonRepo) FindByFiscalCode(ctx context.Context, branchID, fiscalCode string) (model.Person, error) {
	row := r.pool.QueryRow(ctx, selectPersons+` WHERE branch_id = $1 AND fiscal_code = $2`, branchID, fiscalCode)
	return scanPerson(row, fiscalCode)
}

// Search retrieves persons whose name or fiscal code contains the query.
func (r *PersonRepo) Search(ctx context.Context, branchID, query string) ([]model.Person, error) {
	rows, err := r.pool.Query(ctx, selectPersons+`
		WHERE branch_id = $1
		  AND (first_name ILIKE $2 OR last_name ILIKE $2 OR fiscal_code ILIKE $2)
		ORDER BY last_name, first_name
	`, branchID, "%"+query+"%")
	if err != nil {
		return nil, fmt.Errorf("search persons: %w", err)
	}
	defer rows.Close()

	var result []model.Person
	for rows.Next() {
		p, err := scanPerson(rows, "")
		if err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	return result, rows.Err()
}

func scanPerson(s scannable, key string) (model.Person, error) {
	var p model.Person
	err := s.Scan(&p.ID, &p.BranchID, &p.FirstName, &p.LastName, &p.FiscalCode, &p.BirthDate, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Person{}, fmt.Errorf("%w: person %s", valueobject.ErrNotFound, key)
		}
		return model.Person{}, fmt.Errorf("scan person: %w", err)
	}
	return p, nil
}
