package attendance

import (
	"github.com/shopspring/decimal"
	"github.com/workstream-hr/payroll-backend-go/internal/pkg/validator"
)

type CheckInRequest struct {
	EmployeeID string  `json:"employee_id"`
	TimeIn     string  `json:"time_in"`
	Status     *string `json:"status,omitempty"` // defaults to "present"
}

func (r *CheckInRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if _, ok := validator.IsValidClockTime(r.TimeIn); !ok {
		errs = append(errs, validator.ValidationError{Field: "time_in", Message: "must be an RFC3339 timestamp"})
	}
	if r.Status != nil && !validator.IsInSlice(*r.Status, []string{
		string(StatusPresent), string(StatusLate), string(StatusHalfDay), string(StatusLeave),
	}) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be 'present', 'late', 'half_day' or 'leave'"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CheckOutRequest struct {
	ID      string
	TimeOut string `json:"time_out"`
}

func (r *CheckOutRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidClockTime(r.TimeOut); !ok {
		errs = append(errs, validator.ValidationError{Field: "time_out", Message: "must be an RFC3339 timestamp"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AttendanceResponse struct {
	ID           string           `json:"id"`
	EmployeeID   string           `json:"employee_id"`
	EmployeeName *string          `json:"employee_name,omitempty"`
	Date         string           `json:"date"`
	TimeIn       string           `json:"time_in"`
	TimeOut      *string          `json:"time_out,omitempty"`
	Status       string           `json:"status"`
	WorkedHours  *decimal.Decimal `json:"worked_hours,omitempty"`
}

type AttendanceFilter struct {
	EmployeeID string
	StartDate  string
	EndDate    string
}

func (f *AttendanceFilter) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(f.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	start, okStart := validator.IsValidDate(f.StartDate)
	if !okStart {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	end, okEnd := validator.IsValidDate(f.EndDate)
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
