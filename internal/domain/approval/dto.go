package approval

import (
	"github.com/shopspring/decimal"
	"github.com/workstream-hr/payroll-backend-go/internal/pkg/validator"
)

type SubmitApprovalRequest struct {
	EmployeeID string           `json:"employee_id"`
	Type       string           `json:"type"`
	Hours      *decimal.Decimal `json:"hours,omitempty"`
	StartDate  *string          `json:"start_date,omitempty"`
	EndDate    *string          `json:"end_date,omitempty"`
	Amount     *decimal.Decimal `json:"amount,omitempty"`
	Notes      *string          `json:"notes,omitempty"`
}

// Validate enforces the payload shape per type: overtime needs positive
// hours and a start date, leave needs an ordered date range, reimbursement
// needs a positive amount and notes.
func (r *SubmitApprovalRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}

	switch Type(r.Type) {
	case TypeOvertime:
		if r.Hours == nil || !r.Hours.IsPositive() {
			errs = append(errs, validator.ValidationError{Field: "hours", Message: "must be a positive number of hours"})
		}
		if r.StartDate == nil {
			errs = append(errs, validator.ValidationError{Field: "start_date", Message: "is required for overtime requests"})
		} else if _, ok := validator.IsValidDate(*r.StartDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be a valid date (YYYY-MM-DD)"})
		}
	case TypeLeave:
		var start, end bool
		if r.StartDate == nil {
			errs = append(errs, validator.ValidationError{Field: "start_date", Message: "is required for leave requests"})
		} else if _, ok := validator.IsValidDate(*r.StartDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be a valid date (YYYY-MM-DD)"})
		} else {
			start = true
		}
		if r.EndDate == nil {
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: "is required for leave requests"})
		} else if _, ok := validator.IsValidDate(*r.EndDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be a valid date (YYYY-MM-DD)"})
		} else {
			end = true
		}
		if start && end {
			startDate, _ := validator.IsValidDate(*r.StartDate)
			endDate, _ := validator.IsValidDate(*r.EndDate)
			if endDate.Before(startDate) {
				errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must not be before start_date"})
			}
		}
	case TypeReimbursement:
		if r.Amount == nil || !r.Amount.IsPositive() {
			errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be a positive amount"})
		}
		if r.Notes == nil || validator.IsEmpty(*r.Notes) {
			errs = append(errs, validator.ValidationError{Field: "notes", Message: "are required for reimbursement requests"})
		}
	default:
		errs = append(errs, validator.ValidationError{Field: "type", Message: "must be 'overtime', 'leave' or 'reimbursement'"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RejectApprovalRequest struct {
	ID     string
	Reason string `json:"reason"`
}

type ApprovalResponse struct {
	ID             string           `json:"id"`
	EmployeeID     string           `json:"employee_id"`
	EmployeeName   *string          `json:"employee_name,omitempty"`
	Type           string           `json:"type"`
	Status         string           `json:"status"`
	Hours          *decimal.Decimal `json:"hours,omitempty"`
	StartDate      *string          `json:"start_date,omitempty"`
	EndDate        *string          `json:"end_date,omitempty"`
	Amount         *decimal.Decimal `json:"amount,omitempty"`
	Notes          *string          `json:"notes,omitempty"`
	RejectedReason *string          `json:"rejected_reason,omitempty"`
	DecidedBy      *string          `json:"decided_by,omitempty"`
	DecidedAt      *string          `json:"decided_at,omitempty"`
}

type ApprovalFilter struct {
	EmployeeID *string
	Type       *string
	Status     *string
}
