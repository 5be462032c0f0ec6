package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bribank/origination/internal/domain/model"
	pkgpostgres "github.com/bribank/origination/pkg/postgres"
)

// ScheduleRepo implements port.ScheduleRepository. Schedules are replaced
// wholesale: there are no row-level edits.
type ScheduleRepo struct {
	pool *pgxpool.Pool
}

// NewScheduleRepo creates a new repository backed by PostgreSQL.
func NewScheduleRepo(pool *pgxpool.Pool) *ScheduleRepo {
	return &ScheduleRepo{pool: pool}
}

// Replace atomically swaps the stored schedule of a request.
func (r *ScheduleRepo) Replace(ctx context.Context, requestID string, schedule []model.Installment) error {
	return pkgpostgres.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM schedule_installments WHERE request_id = $1`, requestID); err != nil {
			return fmt.Errorf("clear schedule: %w", err)
		}
		for _, inst := range schedule {
			_, err := tx.Exec(ctx, `
				INSERT INTO schedule_installments (request_id, number, interest, principal, total, remaining)
				VALUES ($1,$2,$3,$4,$5,$6)
			`, requestID, inst.Number, inst.Interest, inst.Principal, inst.Total, inst.Remaining)
			if err != nil {
				return fmt.Errorf("insert installment %d: %w", inst.Number, err)
			}
		}
		return nil
	})
}

// FindByRequestID loads the stored schedule; an empty slice means none exists.
func (r *ScheduleRepo) FindByRequestID(ctx context.Context, requestID string) ([]model.Installment, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT number, interest, principal, total, remaining
		FROM schedule_installments
		WHERE request_id = $1
		ORDER BY number
	`, requestID)
	if err != nil {
		return nil, fmt.Errorf("query schedule: %w", err)
	}
	defer rows.Close()

	var schedule []model.Installment
	for rows.Next() {
		var inst model.Installment
		if err := rows.Scan(&inst.Number, &inst.Interest, &inst.Principal, &inst.Total, &inst.Remaining); err != nil {
			return nil, fmt.Errorf("scan installment: %w", err)
		}
		schedule = append(schedule, inst)
	}
	return schedule, rows.Err()
}

// DeleteByRequestID drops the stored schedule of a request.
func (r *ScheduleRepo) DeleteByRequestID(ctx context.Context, requestID string) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM schedule_installments WHERE request_id = $1`, requestID); err != nil {
		return fmt.Errorf("delete schedule: %w", err)
	}
	return nil
}
