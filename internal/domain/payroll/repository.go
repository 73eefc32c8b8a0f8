package payroll

import (
	"context"
	"time"
)

type PeriodRepository interface {
	// Create relies on the (start_date, end_date) unique constraint and
	// returns ErrPeriodExists on a duplicate range.
	Create(ctx context.Context, period PayrollPeriod) (PayrollPeriod, error)
	GetByID(ctx context.Context, id string) (PayrollPeriod, error)
	List(ctx context.Context) ([]PayrollPeriod, error)
	// SetStatus performs a conditional transition: the update only applies
	// when the row is still in fromStatus, and zero affected rows surface as
	// an error so concurrent transitions cannot both succeed. The processed
	// transition stamps processed_date exactly once.
	SetStatus(ctx context.Context, id string, from, to PeriodStatus, processedDate *time.Time) error
}

type ItemRepository interface {
	// CreateWithLines persists the item and its deduction/allowance lines in
	// one transaction. The (payroll_period_id, employee_id) unique constraint
	// turns a concurrent duplicate into ErrPayrollItemExists.
	CreateWithLines(ctx context.Context, item PayrollItem, deductions []Deduction, allowances []Allowance) (PayrollItem, error)
	GetByID(ctx context.Context, id string) (PayrollItem, error)
	GetByPeriodAndEmployee(ctx context.Context, periodID, employeeID string) (PayrollItem, error)
	ListByPeriod(ctx context.Context, periodID string) ([]PayrollItem, error)
	ListDeductions(ctx context.Context, itemID string) ([]Deduction, error)
	ListAllowances(ctx context.Context, itemID string) ([]Allowance, error)
	// DeleteWithLines removes an item and its lines; used only by explicit
	// recompute+replace on a non-processed period.
	DeleteWithLines(ctx context.Context, id string) error
	SetStatus(ctx context.Context, ids []string, status ItemStatus) error
	GetPeriodSummary(ctx context.Context, periodID string) (PeriodSummaryResponse, error)
}

type CatalogRepository interface {
	CreateDeductionType(ctx context.Context, dt DeductionType) (DeductionType, error)
	GetDeductionType(ctx context.Context, id string) (DeductionType, error)
	ListDeductionTypes(ctx context.Context, activeOnly bool) ([]DeductionType, error)
	UpdateDeductionType(ctx context.Context, req UpdateDeductionTypeRequest) error

	CreateAllowanceType(ctx context.Context, at AllowanceType) (AllowanceType, error)
	GetAllowanceType(ctx context.Context, id string) (AllowanceType, error)
	ListAllowanceTypes(ctx context.Context, activeOnly bool) ([]AllowanceType, error)
	UpdateAllowanceType(ctx context.Context, req UpdateAllowanceTypeRequest) error
}

type SettingsRepository interface {
	// ListSettings returns all override rows in one query so a computation
	// reads a consistent snapshot.
	ListSettings(ctx context.Context) ([]Setting, error)
	UpsertSetting(ctx context.Context, key, value string) (Setting, error)
}
