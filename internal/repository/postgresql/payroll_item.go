package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/workstream-hr/payroll-backend-go/internal/domain/payroll"
	"github.com/workstream-hr/payroll-backend-go/internal/pkg/database"
)

type itemRepository struct {
	db *database.DB
}

func NewItemRepository(db *database.DB) payroll.ItemRepository {
	return &itemRepository{db: db}
}

const itemColumns = `
	i.id, i.payroll_period_id, i.employee_id, i.basic_salary, i.hours_worked,
	i.overtime_hours, i.overtime_amount, i.gross_pay, i.tax_amount,
	i.other_deductions, i.net_pay, i.status, i.created_at, i.updated_at,
	e.full_name AS employee_name, e.employee_code
`

func scanItem(row pgx.Row) (payroll.PayrollItem, error) {
	var i payroll.PayrollItem
	err := row.Scan(
		&i.ID, &i.PayrollPeriodID, &i.EmployeeID, &i.BasicSalary, &i.HoursWorked,
		&i.OvertimeHours, &i.OvertimeAmount, &i.GrossPay, &i.TaxAmount,
		&i.OtherDeductions, &i.NetPay, &i.Status, &i.CreatedAt, &i.UpdatedAt,
		&i.EmployeeName, &i.EmployeeCode,
	)
	return i, err
}

func (r *itemRepository) CreateWithLines(ctx context.Context, item payroll.PayrollItem, deductions []payroll.Deduction, allowances []payroll.Allowance) (payroll.PayrollItem, error) {
	created := item

	err := WithTransaction(ctx, r.db, func(ctx context.Context) error {
		q := GetQuerier(ctx, r.db)

		query := `
			INSERT INTO payroll_items (
				payroll_period_id, employee_id, basic_salary, hours_worked,
				overtime_hours, overtime_amount, gross_pay, tax_amount,
				other_deductions, net_pay, status
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			RETURNING id, created_at, updated_at
		`

		err := q.QueryRow(ctx, query,
			item.PayrollPeriodID, item.EmployeeID, item.BasicSalary, item.HoursWorked,
			item.OvertimeHours, item.OvertimeAmount, item.GrossPay, item.TaxAmount,
			item.OtherDeductions, item.NetPay, payroll.ItemStatusPending,
		).Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt)
		if err != nil {
			if database.IsUniqueViolation(err, "uk_payroll_items_period_employee") {
				return payroll.ErrPayrollItemExists
			}
			return fmt.Errorf("failed to create payroll item: %w", err)
		}
		created.Status = payroll.ItemStatusPending

		for _, d := range deductions {
			_, err := q.Exec(ctx, `
				INSERT INTO payroll_deductions (payroll_item_id, deduction_type_id, name, amount, is_tax)
				VALUES ($1, $2, $3, $4, $5)
			`, created.ID, d.DeductionTypeID, d.Name, d.Amount, d.IsTax)
			if err != nil {
				return fmt.Errorf("failed to create deduction line: %w", err)
			}
		}

		for _, a := range allowances {
			_, err := q.Exec(ctx, `
				INSERT INTO payroll_allowances (payroll_item_id, allowance_type_id, name, amount, is_taxable)
				VALUES ($1, $2, $3, $4, $5)
			`, created.ID, a.AllowanceTypeID, a.Name, a.Amount, a.IsTaxable)
			if err != nil {
				return fmt.Errorf("failed to create allowance line: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return payroll.PayrollItem{}, err
	}

	return created, nil
}

func (r *itemRepository) GetByID(ctx context.Context, id string) (payroll.PayrollItem, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + itemColumns + `
		FROM payroll_items i
		JOIN employees e ON e.id = i.employee_id
		WHERE i.id = $1
	`

	i, err := scanItem(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.PayrollItem{}, payroll.ErrPayrollItemNotFound
		}
		return payroll.PayrollItem{}, fmt.Errorf("failed to get payroll item: %w", err)
	}

	return i, nil
}

func (r *itemRepository) GetByPeriodAndEmployee(ctx context.Context, periodID, employeeID string) (payroll.PayrollItem, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + itemColumns + `
		FROM payroll_items i
		JOIN employees e ON e.id = i.employee_id
		WHERE i.payroll_period_id = $1 AND i.employee_id = $2
	`

	i, err := scanItem(q.QueryRow(ctx, query, periodID, employeeID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.PayrollItem{}, payroll.ErrPayrollItemNotFound
		}
		return payroll.PayrollItem{}, fmt.Errorf("failed to get payroll item: %w", err)
	}

	return i, nil
}

func (r *itemRepository) ListByPeriod(ctx context.Context, periodID string) ([]payroll.PayrollItem, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + itemColumns + `
		FROM payroll_items i
		JOIN employees e ON e.id = i.employee_id
		WHERE i.payroll_period_id = $1
		ORDER BY e.employee_code
	`

	rows, err := q.Query(ctx, query, periodID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll items: %w", err)
	}
	defer rows.Close()

	var items []payroll.PayrollItem
	for rows.Next() {
		i, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll item: %w", err)
		}
		items = append(items, i)
	}

	return items, rows.Err()
}

func (r *itemRepository) ListDeductions(ctx context.Context, itemID string) ([]payroll.Deduction, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, payroll_item_id, deduction_type_id, name, amount, is_tax, created_at
		FROM payroll_deductions
		WHERE payroll_item_id = $1
		ORDER BY name
	`

	rows, err := q.Query(ctx, query, itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to list deductions: %w", err)
	}
	defer rows.Close()

	var deductions []payroll.Deduction
	for rows.Next() {
		var d payroll.Deduction
		if err := rows.Scan(&d.ID, &d.PayrollItemID, &d.DeductionTypeID, &d.Name, &d.Amount, &d.IsTax, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan deduction: %w", err)
		}
		deductions = append(deductions, d)
	}

	return deductions, rows.Err()
}

func (r *itemRepository) ListAllowances(ctx context.Context, itemID string) ([]payroll.Allowance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, payroll_item_id, allowance_type_id, name, amount, is_taxable, created_at
		FROM payroll_allowances
		WHERE payroll_item_id = $1
		ORDER BY name
	`

	rows, err := q.Query(ctx, query, itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to list allowances: %w", err)
	}
	defer rows.Close()

	var allowances []payroll.Allowance
	for rows.Next() {
		var a payroll.Allowance
		if err := rows.Scan(&a.ID, &a.PayrollItemID, &a.AllowanceTypeID, &a.Name, &a.Amount, &a.IsTaxable, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan allowance: %w", err)
		}
		allowances = append(allowances, a)
	}

	return allowances, rows.Err()
}

func (r *itemRepository) DeleteWithLines(ctx context.Context, id string) error {
	return WithTransaction(ctx, r.db, func(ctx context.Context) error {
		q := GetQuerier(ctx, r.db)

		if _, err := q.Exec(ctx, `DELETE FROM payroll_deductions WHERE payroll_item_id = $1`, id); err != nil {
			return fmt.Errorf("failed to delete deduction lines: %w", err)
		}
		if _, err := q.Exec(ctx, `DELETE FROM payroll_allowances WHERE payroll_item_id = $1`, id); err != nil {
			return fmt.Errorf("failed to delete allowance lines: %w", err)
		}

		tag, err := q.Exec(ctx, `DELETE FROM payroll_items WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("failed to delete payroll item: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return payroll.ErrPayrollItemNotFound
		}

		return nil
	})
}

func (r *itemRepository) SetStatus(ctx context.Context, ids []string, status payroll.ItemStatus) error {
	if len(ids) == 0 {
		return nil
	}

	q := GetQuerier(ctx, r.db)

	placeholders := make([]string, len(ids))
	args := make([]interface{}, 0, len(ids)+1)
	args = append(args, status)
	for i, id := range ids {
		placeholders[i] = fmt.Sprintf("$%d", i+2)
		args = append(args, id)
	}

	query := fmt.Sprintf(`
		UPDATE payroll_items
		SET status = $1, updated_at = NOW()
		WHERE id IN (%s)
	`, strings.Join(placeholders, ", "))

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to set payroll item status: %w", err)
	}
	if tag.RowsAffected() != int64(len(ids)) {
		return payroll.ErrPayrollItemNotFound
	}

	return nil
}

func (r *itemRepository) GetPeriodSummary(ctx context.Context, periodID string) (payroll.PeriodSummaryResponse, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COUNT(*),
			COALESCE(SUM(i.gross_pay), 0),
			COALESCE(SUM(i.tax_amount), 0),
			COALESCE(SUM(i.other_deductions), 0) + COALESCE((
				SELECT SUM(d.amount) FROM payroll_deductions d
				JOIN payroll_items pi ON pi.id = d.payroll_item_id
				WHERE pi.payroll_period_id = $1
			), 0),
			COALESCE(SUM(i.net_pay), 0),
			COUNT(*) FILTER (WHERE i.status = 'pending'),
			COUNT(*) FILTER (WHERE i.status = 'approved'),
			COUNT(*) FILTER (WHERE i.status = 'paid')
		FROM payroll_items i
		WHERE i.payroll_period_id = $1
	`

	summary := payroll.PeriodSummaryResponse{PayrollPeriodID: periodID}
	err := q.QueryRow(ctx, query, periodID).Scan(
		&summary.TotalEmployees, &summary.TotalGrossPay, &summary.TotalTaxAmount,
		&summary.TotalDeductions, &summary.TotalNetPay,
		&summary.PendingCount, &summary.ApprovedCount, &summary.PaidCount,
	)
	if err != nil {
		return payroll.PeriodSummaryResponse{}, fmt.Errorf("failed to get period summary: %w", err)
	}

	return summary, nil
}
