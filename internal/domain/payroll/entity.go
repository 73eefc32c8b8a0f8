package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// PeriodStatus enum
type PeriodStatus string

const (
	PeriodStatusDraft      PeriodStatus = "draft"
	PeriodStatusProcessing PeriodStatus = "processing"
	PeriodStatusProcessed  PeriodStatus = "processed"
)

// PayrollPeriod - the date range payroll is computed over. (start_date,
// end_date) is unique; ProcessedDate is set exactly once, when the period
// moves from processing to processed.
type PayrollPeriod struct {
	ID            string
	StartDate     time.Time
	EndDate       time.Time
	Status        PeriodStatus
	ProcessedDate *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ItemStatus enum
type ItemStatus string

const (
	ItemStatusPending  ItemStatus = "pending"
	ItemStatusApproved ItemStatus = "approved"
	ItemStatusPaid     ItemStatus = "paid"
)

// PayrollItem - the computed payroll result for one employee in one period.
// One per (payroll_period_id, employee_id). The compensation inputs used are
// stored alongside the outputs so the item stays reproducible after the
// employee record or the catalogs change.
type PayrollItem struct {
	ID              string
	PayrollPeriodID string
	EmployeeID      string
	BasicSalary     decimal.Decimal
	HoursWorked     decimal.Decimal
	OvertimeHours   decimal.Decimal
	OvertimeAmount  decimal.Decimal
	GrossPay        decimal.Decimal
	TaxAmount       decimal.Decimal
	OtherDeductions decimal.Decimal
	NetPay          decimal.Decimal
	Status          ItemStatus
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// Joined fields
	EmployeeName *string
	EmployeeCode *string
}

// DeductionType - catalog entry describing a reusable deduction kind. A
// percentage type resolves to gross * default_value/100; a flat type resolves
// to default_value verbatim. At most one active required type should carry
// IsTax; it supplies the item's tax amount.
type DeductionType struct {
	ID           string
	Name         string
	IsPercentage bool
	DefaultValue decimal.Decimal
	IsRequired   bool
	IsTax        bool
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// AllowanceType - catalog entry describing a reusable allowance kind.
// Taxable allowances enter gross pay; non-taxable ones are paid post-tax.
type AllowanceType struct {
	ID           string
	Name         string
	IsPercentage bool
	DefaultValue decimal.Decimal
	IsRequired   bool
	IsTaxable    bool
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Deduction - a resolved line item on a PayrollItem. DeductionTypeID is nil
// for the synthetic tax line emitted when no income-tax type is configured.
type Deduction struct {
	ID              string
	PayrollItemID   string
	DeductionTypeID *string
	Name            string
	Amount          decimal.Decimal
	IsTax           bool
	CreatedAt       time.Time
}

// Allowance - a resolved line item on a PayrollItem. AllowanceTypeID is nil
// for ad hoc allowances supplied by the caller.
type Allowance struct {
	ID              string
	PayrollItemID   string
	AllowanceTypeID *string
	Name            string
	Amount          decimal.Decimal
	IsTaxable       bool
	CreatedAt       time.Time
}

// Setting - a raw override row. Known keys are listed in settings.go;
// anything else is ignored at resolution time.
type Setting struct {
	Key       string
	Value     string
	UpdatedAt time.Time
}
