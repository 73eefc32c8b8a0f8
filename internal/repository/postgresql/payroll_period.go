package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/workstream-hr/payroll-backend-go/internal/domain/payroll"
	"github.com/workstream-hr/payroll-backend-go/internal/pkg/database"
)

type periodRepository struct {
	db *database.DB
}

func NewPeriodRepository(db *database.DB) payroll.PeriodRepository {
	return &periodRepository{db: db}
}

func (r *periodRepository) Create(ctx context.Context, period payroll.PayrollPeriod) (payroll.PayrollPeriod, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll_periods (start_date, end_date, status)
		VALUES ($1, $2, $3)
		RETURNING id, start_date, end_date, status, processed_date, created_at, updated_at
	`

	var p payroll.PayrollPeriod
	err := q.QueryRow(ctx, query, period.StartDate, period.EndDate, payroll.PeriodStatusDraft).Scan(
		&p.ID, &p.StartDate, &p.EndDate, &p.Status, &p.ProcessedDate, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if database.IsUniqueViolation(err, "uk_payroll_periods_range") {
			return payroll.PayrollPeriod{}, payroll.ErrPeriodExists
		}
		return payroll.PayrollPeriod{}, fmt.Errorf("failed to create payroll period: %w", err)
	}

	return p, nil
}

func (r *periodRepository) GetByID(ctx context.Context, id string) (payroll.PayrollPeriod, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, start_date, end_date, status, processed_date, created_at, updated_at
		FROM payroll_periods
		WHERE id = $1
	`

	var p payroll.PayrollPeriod
	err := q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.StartDate, &p.EndDate, &p.Status, &p.ProcessedDate, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.PayrollPeriod{}, payroll.ErrPeriodNotFound
		}
		return payroll.PayrollPeriod{}, fmt.Errorf("failed to get payroll period: %w", err)
	}

	return p, nil
}

func (r *periodRepository) List(ctx context.Context) ([]payroll.PayrollPeriod, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, start_date, end_date, status, processed_date, created_at, updated_at
		FROM payroll_periods
		ORDER BY start_date DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll periods: %w", err)
	}
	defer rows.Close()

	var periods []payroll.PayrollPeriod
	for rows.Next() {
		var p payroll.PayrollPeriod
		if err := rows.Scan(&p.ID, &p.StartDate, &p.EndDate, &p.Status, &p.ProcessedDate, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan payroll period: %w", err)
		}
		periods = append(periods, p)
	}

	return periods, rows.Err()
}

func (r *periodRepository) SetStatus(ctx context.Context, id string, from, to payroll.PeriodStatus, processedDate *time.Time) error {
	q := GetQuerier(ctx, r.db)

	// The status guard makes the transition a compare-and-swap: a row already
	// moved by a concurrent caller matches zero rows.
	query := `
		UPDATE payroll_periods
		SET status = $1,
			processed_date = COALESCE($2, processed_date),
			updated_at = NOW()
		WHERE id = $3 AND status = $4
	`

	tag, err := q.Exec(ctx, query, to, processedDate, id, from)
	if err != nil {
		return fmt.Errorf("failed to set payroll period status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		if _, getErr := r.GetByID(ctx, id); getErr != nil {
			return getErr
		}
		return payroll.ErrInvalidPeriod
	}

	return nil
}
