package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/workstream-hr/payroll-backend-go/internal/domain/approval"
	"github.com/workstream-hr/payroll-backend-go/internal/pkg/database"
)

type approvalRepository struct {
	db *database.DB
}

func NewApprovalRepository(db *database.DB) approval.ApprovalRepository {
	return &approvalRepository{db: db}
}

const approvalColumns = `
	a.id, a.employee_id, a.type, a.status, a.hours, a.start_date, a.end_date,
	a.amount, a.notes, a.rejected_reason, a.decided_by, a.decided_at,
	a.created_at, a.updated_at, e.full_name AS employee_name
`

func scanApproval(row pgx.Row) (approval.Approval, error) {
	var a approval.Approval
	err := row.Scan(
		&a.ID, &a.EmployeeID, &a.Type, &a.Status, &a.Hours, &a.StartDate, &a.EndDate,
		&a.Amount, &a.Notes, &a.RejectedReason, &a.DecidedBy, &a.DecidedAt,
		&a.CreatedAt, &a.UpdatedAt, &a.EmployeeName,
	)
	return a, err
}

func (r *approvalRepository) Create(ctx context.Context, a approval.Approval) (approval.Approval, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO approvals (employee_id, type, status, hours, start_date, end_date, amount, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`

	created := a
	created.Status = approval.StatusPending
	err := q.QueryRow(ctx, query,
		a.EmployeeID, a.Type, approval.StatusPending, a.Hours, a.StartDate, a.EndDate, a.Amount, a.Notes,
	).Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		return approval.Approval{}, fmt.Errorf("failed to create approval: %w", err)
	}

	return created, nil
}

func (r *approvalRepository) GetByID(ctx context.Context, id string) (approval.Approval, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + approvalColumns + `
		FROM approvals a
		JOIN employees e ON e.id = a.employee_id
		WHERE a.id = $1
	`

	a, err := scanApproval(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return approval.Approval{}, approval.ErrApprovalNotFound
		}
		return approval.Approval{}, fmt.Errorf("failed to get approval: %w", err)
	}

	return a, nil
}

func (r *approvalRepository) List(ctx context.Context, filter approval.ApprovalFilter) ([]approval.Approval, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []interface{}{}
	argPos := 1

	if filter.EmployeeID != nil {
		conditions = append(conditions, fmt.Sprintf("a.employee_id = $%d", argPos))
		args = append(args, *filter.EmployeeID)
		argPos++
	}
	if filter.Type != nil {
		conditions = append(conditions, fmt.Sprintf("a.type = $%d", argPos))
		args = append(args, *filter.Type)
		argPos++
	}
	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("a.status = $%d", argPos))
		args = append(args, *filter.Status)
		argPos++
	}

	query := `
		SELECT ` + approvalColumns + `
		FROM approvals a
		JOIN employees e ON e.id = a.employee_id
		WHERE ` + strings.Join(conditions, " AND ") + `
		ORDER BY a.created_at DESC
	`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list approvals: %w", err)
	}
	defer rows.Close()

	var approvals []approval.Approval
	for rows.Next() {
		a, err := scanApproval(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan approval: %w", err)
		}
		approvals = append(approvals, a)
	}

	return approvals, rows.Err()
}

func (r *approvalRepository) Transition(ctx context.Context, id string, to approval.Status, decidedBy string, reason *string) (approval.Approval, error) {
	q := GetQuerier(ctx, r.db)

	// The status = 'pending' guard is the compare-and-swap. A row already
	// decided by a concurrent caller matches nothing, so the second decision
	// comes back as ErrAlreadyProcessed instead of silently overwriting.
	query := `
		UPDATE approvals
		SET status = $1,
			rejected_reason = $2,
			decided_by = $3,
			decided_at = NOW(),
			updated_at = NOW()
		WHERE id = $4 AND status = 'pending'
		RETURNING id, employee_id, type, status, hours, start_date, end_date,
			amount, notes, rejected_reason, decided_by, decided_at,
			created_at, updated_at
	`

	var a approval.Approval
	err := q.QueryRow(ctx, query, to, reason, decidedBy, id).Scan(
		&a.ID, &a.EmployeeID, &a.Type, &a.Status, &a.Hours, &a.StartDate, &a.EndDate,
		&a.Amount, &a.Notes, &a.RejectedReason, &a.DecidedBy, &a.DecidedAt,
		&a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			if _, getErr := r.GetByID(ctx, id); getErr != nil {
				return approval.Approval{}, getErr
			}
			return approval.Approval{}, approval.ErrAlreadyProcessed
		}
		return approval.Approval{}, fmt.Errorf("failed to transition approval: %w", err)
	}

	return a, nil
}

func (r *approvalRepository) SumApprovedOvertimeHours(ctx context.Context, employeeID string, start, end time.Time) (decimal.Decimal, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(SUM(hours), 0)
		FROM approvals
		WHERE employee_id = $1
		  AND type = 'overtime'
		  AND status = 'approved'
		  AND start_date BETWEEN $2 AND $3
	`

	var total decimal.Decimal
	if err := q.QueryRow(ctx, query, employeeID, start, end).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum approved overtime hours: %w", err)
	}

	return total, nil
}
