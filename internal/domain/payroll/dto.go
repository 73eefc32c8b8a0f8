package payroll

import (
	"github.com/shopspring/decimal"
	"github.com/workstream-hr/payroll-backend-go/internal/pkg/validator"
)

// ========== PERIOD DTOs ==========

type CreatePeriodRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

func (r *CreatePeriodRequest) Validate() error {
	var errs validator.ValidationErrors

	start, okStart := validator.IsValidDate(r.StartDate)
	if !okStart {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	end, okEnd := validator.IsValidDate(r.EndDate)
	if !okEnd {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if okStart && okEnd && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must not be before start_date"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PeriodResponse struct {
	ID            string  `json:"id"`
	StartDate     string  `json:"start_date"`
	EndDate       string  `json:"end_date"`
	Status        string  `json:"status"`
	ProcessedDate *string `json:"processed_date,omitempty"`
}

// ========== COMPUTATION DTOs ==========

// ManualAllowance is an ad hoc, non-catalog allowance supplied by the caller.
type ManualAllowance struct {
	Name      string          `json:"name"`
	Amount    decimal.Decimal `json:"amount"`
	IsTaxable bool            `json:"is_taxable"`
}

// ComputePayrollItemRequest drives a single-item computation. Hours and
// overtime are normally derived from attendance and approved overtime
// requests; the explicit fields override that derivation when present.
type ComputePayrollItemRequest struct {
	PayrollPeriodID string            `json:"-"`
	EmployeeID      string            `json:"employee_id"`
	HoursWorked     *decimal.Decimal  `json:"hours_worked,omitempty"`
	OvertimeHours   *decimal.Decimal  `json:"overtime_hours,omitempty"`
	OtherDeductions *decimal.Decimal  `json:"other_deductions,omitempty"`
	AdHocAllowances []ManualAllowance `json:"ad_hoc_allowances,omitempty"`
	// Replace discards the existing item (and its lines) before computing.
	// Without it a second computation fails instead of overwriting.
	Replace bool `json:"replace,omitempty"`
}

func (r *ComputePayrollItemRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if !validator.IsNonNegative(r.HoursWorked) {
		errs = append(errs, validator.ValidationError{Field: "hours_worked", Message: "must be non-negative"})
	}
	if !validator.IsNonNegative(r.OvertimeHours) {
		errs = append(errs, validator.ValidationError{Field: "overtime_hours", Message: "must be non-negative"})
	}
	if !validator.IsNonNegative(r.OtherDeductions) {
		errs = append(errs, validator.ValidationError{Field: "other_deductions", Message: "must be non-negative"})
	}
	for _, a := range r.AdHocAllowances {
		if validator.IsEmpty(a.Name) {
			errs = append(errs, validator.ValidationError{Field: "ad_hoc_allowances", Message: "every allowance needs a name"})
			break
		}
		if a.Amount.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: "ad_hoc_allowances", Message: "amounts must be non-negative"})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DeductionLineResponse struct {
	ID              string          `json:"id"`
	DeductionTypeID *string         `json:"deduction_type_id,omitempty"`
	Name            string          `json:"name"`
	Amount          decimal.Decimal `json:"amount"`
	IsTax           bool            `json:"is_tax"`
}

type AllowanceLineResponse struct {
	ID              string          `json:"id"`
	AllowanceTypeID *string         `json:"allowance_type_id,omitempty"`
	Name            string          `json:"name"`
	Amount          decimal.Decimal `json:"amount"`
	IsTaxable       bool            `json:"is_taxable"`
}

type PayrollItemResponse struct {
	ID              string                  `json:"id"`
	PayrollPeriodID string                  `json:"payroll_period_id"`
	EmployeeID      string                  `json:"employee_id"`
	EmployeeName    string                  `json:"employee_name,omitempty"`
	EmployeeCode    string                  `json:"employee_code,omitempty"`
	BasicSalary     decimal.Decimal         `json:"basic_salary"`
	HoursWorked     decimal.Decimal         `json:"hours_worked"`
	OvertimeHours   decimal.Decimal         `json:"overtime_hours"`
	OvertimeAmount  decimal.Decimal         `json:"overtime_amount"`
	GrossPay        decimal.Decimal         `json:"gross_pay"`
	TaxAmount       decimal.Decimal         `json:"tax_amount"`
	OtherDeductions decimal.Decimal         `json:"other_deductions"`
	NetPay          decimal.Decimal         `json:"net_pay"`
	Status          string                  `json:"status"`
	Deductions      []DeductionLineResponse `json:"deductions,omitempty"`
	Allowances      []AllowanceLineResponse `json:"allowances,omitempty"`
}

type FinalizeItemsRequest struct {
	ItemIDs []string `json:"item_ids"`
	Status  string   `json:"status"` // "approved" or "paid"
}

func (r *FinalizeItemsRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.ItemIDs) == 0 {
		errs = append(errs, validator.ValidationError{Field: "item_ids", Message: "at least one item is required"})
	}
	if !validator.IsInSlice(r.Status, []string{string(ItemStatusApproved), string(ItemStatusPaid)}) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be 'approved' or 'paid'"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ========== CATALOG DTOs ==========

type CreateDeductionTypeRequest struct {
	Name         string          `json:"name"`
	IsPercentage bool            `json:"is_percentage"`
	DefaultValue decimal.Decimal `json:"default_value"`
	IsRequired   bool            `json:"is_required"`
	IsTax        bool            `json:"is_tax"`
}

func (r *CreateDeductionTypeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if r.DefaultValue.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "default_value", Message: "must be non-negative"})
	}
	if r.IsPercentage && r.DefaultValue.GreaterThan(decimal.NewFromInt(100)) {
		errs = append(errs, validator.ValidationError{Field: "default_value", Message: "percentage must not exceed 100"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateDeductionTypeRequest struct {
	ID           string
	Name         *string          `json:"name,omitempty"`
	IsPercentage *bool            `json:"is_percentage,omitempty"`
	DefaultValue *decimal.Decimal `json:"default_value,omitempty"`
	IsRequired   *bool            `json:"is_required,omitempty"`
	IsTax        *bool            `json:"is_tax,omitempty"`
	IsActive     *bool            `json:"is_active,omitempty"`
}

type DeductionTypeResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	IsPercentage bool            `json:"is_percentage"`
	DefaultValue decimal.Decimal `json:"default_value"`
	IsRequired   bool            `json:"is_required"`
	IsTax        bool            `json:"is_tax"`
	IsActive     bool            `json:"is_active"`
}

type CreateAllowanceTypeRequest struct {
	Name         string          `json:"name"`
	IsPercentage bool            `json:"is_percentage"`
	DefaultValue decimal.Decimal `json:"default_value"`
	IsRequired   bool            `json:"is_required"`
	IsTaxable    bool            `json:"is_taxable"`
}

func (r *CreateAllowanceTypeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if r.DefaultValue.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "default_value", Message: "must be non-negative"})
	}
	if r.IsPercentage && r.DefaultValue.GreaterThan(decimal.NewFromInt(100)) {
		errs = append(errs, validator.ValidationError{Field: "default_value", Message: "percentage must not exceed 100"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateAllowanceTypeRequest struct {
	ID           string
	Name         *string          `json:"name,omitempty"`
	IsPercentage *bool            `json:"is_percentage,omitempty"`
	DefaultValue *decimal.Decimal `json:"default_value,omitempty"`
	IsRequired   *bool            `json:"is_required,omitempty"`
	IsTaxable    *bool            `json:"is_taxable,omitempty"`
	IsActive     *bool            `json:"is_active,omitempty"`
}

type AllowanceTypeResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	IsPercentage bool            `json:"is_percentage"`
	DefaultValue decimal.Decimal `json:"default_value"`
	IsRequired   bool            `json:"is_required"`
	IsTaxable    bool            `json:"is_taxable"`
	IsActive     bool            `json:"is_active"`
}

// ========== SETTINGS DTOs ==========

type UpdateSettingRequest struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

func (r *UpdateSettingRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Key, []string{
		SettingKeyTaxRate, SettingKeyOvertimeMultiplier, SettingKeyStandardMonthlyHours,
	}) {
		errs = append(errs, validator.ValidationError{Field: "key", Message: "is not a recognized setting"})
	}
	if _, err := decimal.NewFromString(r.Value); err != nil {
		errs = append(errs, validator.ValidationError{Field: "value", Message: "must be a decimal number"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SettingResponse struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// ========== SUMMARY DTOs ==========

// ProcessPeriodResponse reports a batch run. Skipped employees carry the
// reason computation failed for them; they never abort the batch.
type ProcessPeriodResponse struct {
	PayrollPeriodID string                `json:"payroll_period_id"`
	Computed        []PayrollItemResponse `json:"computed"`
	Skipped         []SkippedEmployee     `json:"skipped,omitempty"`
}

type SkippedEmployee struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeCode string `json:"employee_code"`
	Reason       string `json:"reason"`
}

type PeriodSummaryResponse struct {
	PayrollPeriodID string          `json:"payroll_period_id"`
	TotalEmployees  int             `json:"total_employees"`
	TotalGrossPay   decimal.Decimal `json:"total_gross_pay"`
	TotalTaxAmount  decimal.Decimal `json:"total_tax_amount"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`
	TotalNetPay     decimal.Decimal `json:"total_net_pay"`
	PendingCount    int             `json:"pending_count"`
	ApprovedCount   int             `json:"approved_count"`
	PaidCount       int             `json:"paid_count"`
}
