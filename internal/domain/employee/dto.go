package employee

import (
	"github.com/shopspring/decimal"
	"github.com/workstream-hr/payroll-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	DepartmentID          string           `json:"department_id"`
	EmployeeCode          string           `json:"employee_code"`
	FullName              string           `json:"full_name"`
	Email                 string           `json:"email"`
	BasicSalary           *decimal.Decimal `json:"basic_salary,omitempty"`
	HourlyRate            *decimal.Decimal `json:"hourly_rate,omitempty"`
	HireDate              string           `json:"hire_date"`
	BankName              string           `json:"bank_name"`
	BankAccountNumber     string           `json:"bank_account_number"`
	BankAccountHolderName *string          `json:"bank_account_holder_name,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.DepartmentID) {
		errs = append(errs, validator.ValidationError{Field: "department_id", Message: "is required"})
	}
	if !validator.IsValidEmployeeCode(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{Field: "employee_code", Message: "must match the pattern AA-0000"})
	}
	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "is required"})
	}
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "must be a valid email address"})
	}
	if !validator.IsNonNegative(r.BasicSalary) {
		errs = append(errs, validator.ValidationError{Field: "basic_salary", Message: "must be non-negative"})
	}
	if !validator.IsNonNegative(r.HourlyRate) {
		errs = append(errs, validator.ValidationError{Field: "hourly_rate", Message: "must be non-negative"})
	}
	if _, ok := validator.IsValidDate(r.HireDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "hire_date", Message: "must be a valid date (YYYY-MM-DD)"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateEmployeeRequest lists exactly the fields mutable after creation.
// Compensation fields stay editable here; the payroll engine snapshots them
// per computation, so edits never rewrite already-computed items.
type UpdateEmployeeRequest struct {
	ID                    string
	DepartmentID          *string          `json:"department_id,omitempty"`
	FullName              *string          `json:"full_name,omitempty"`
	Email                 *string          `json:"email,omitempty"`
	BasicSalary           *decimal.Decimal `json:"basic_salary,omitempty"`
	HourlyRate            *decimal.Decimal `json:"hourly_rate,omitempty"`
	BankName              *string          `json:"bank_name,omitempty"`
	BankAccountNumber     *string          `json:"bank_account_number,omitempty"`
	BankAccountHolderName *string          `json:"bank_account_holder_name,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "must be a valid email address"})
	}
	if !validator.IsNonNegative(r.BasicSalary) {
		errs = append(errs, validator.ValidationError{Field: "basic_salary", Message: "must be non-negative"})
	}
	if !validator.IsNonNegative(r.HourlyRate) {
		errs = append(errs, validator.ValidationError{Field: "hourly_rate", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ChangeStatusRequest struct {
	ID     string
	Status string `json:"status"`
}

func (r *ChangeStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Status, []string{
		string(EmploymentStatusActive),
		string(EmploymentStatusOnLeave),
		string(EmploymentStatusTerminated),
	}) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be 'active', 'on_leave' or 'terminated'"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID                    string           `json:"id"`
	DepartmentID          string           `json:"department_id"`
	DepartmentName        *string          `json:"department_name,omitempty"`
	EmployeeCode          string           `json:"employee_code"`
	FullName              string           `json:"full_name"`
	Email                 string           `json:"email"`
	EmploymentStatus      string           `json:"employment_status"`
	BasicSalary           *decimal.Decimal `json:"basic_salary,omitempty"`
	HourlyRate            *decimal.Decimal `json:"hourly_rate,omitempty"`
	HireDate              string           `json:"hire_date"`
	BankName              string           `json:"bank_name"`
	BankAccountNumber     string           `json:"bank_account_number"`
	BankAccountHolderName *string          `json:"bank_account_holder_name,omitempty"`
}

type EmployeeFilter struct {
	DepartmentID *string
	Status       *string
	Page         int
	Limit        int
}
