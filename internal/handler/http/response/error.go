package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/workstream-hr/payroll-backend-go/internal/domain/approval"
	"github.com/workstream-hr/payroll-backend-go/internal/domain/attendance"
	"github.com/workstream-hr/payroll-backend-go/internal/domain/department"
	"github.com/workstream-hr/payroll-backend-go/internal/domain/employee"
	"github.com/workstream-hr/payroll-backend-go/internal/domain/payroll"
	"github.com/workstream-hr/payroll-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		Conflict(w, "Employee code already exists")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, employee.ErrEmployeeTerminated):
		Conflict(w, "Employee is terminated")
	case errors.Is(err, employee.ErrInvalidStatus):
		BadRequest(w, "Invalid employment status", nil)

	// Department domain errors
	case errors.Is(err, department.ErrDepartmentNotFound):
		NotFound(w, "Department not found")
	case errors.Is(err, department.ErrDepartmentNameExists):
		Conflict(w, "Department name already exists")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, "Employee already checked in for this date")
	case errors.Is(err, attendance.ErrAlreadyCheckedOut):
		Conflict(w, "Attendance record already has a check-out time")
	case errors.Is(err, attendance.ErrCheckOutBeforeIn):
		BadRequest(w, "Check-out time is before check-in time", nil)

	// Payroll domain errors
	case errors.Is(err, payroll.ErrPeriodNotFound):
		NotFound(w, "Payroll period not found")
	case errors.Is(err, payroll.ErrPeriodExists):
		Conflict(w, "Payroll period already exists for this date range")
	case errors.Is(err, payroll.ErrPeriodProcessed):
		Conflict(w, "Payroll period already processed")
	case errors.Is(err, payroll.ErrPeriodNotProcessing):
		Conflict(w, "Payroll period is not being processed")
	case errors.Is(err, payroll.ErrPayrollItemNotFound):
		NotFound(w, "Payroll item not found")
	case errors.Is(err, payroll.ErrPayrollItemExists):
		Conflict(w, "Payroll item already exists for this period and employee")
	case errors.Is(err, payroll.ErrPayrollItemPaid):
		Conflict(w, "Payroll item already paid")
	case errors.Is(err, payroll.ErrMissingCompensationBasis):
		BadRequest(w, "Employee has neither basic salary nor hourly rate configured", nil)
	case errors.Is(err, payroll.ErrNegativeNetPay):
		UnprocessableEntity(w, "Computed net pay is negative")
	case errors.Is(err, payroll.ErrInvalidInput):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, payroll.ErrInvalidPeriod):
		Conflict(w, "Payroll period is not in the expected state")
	case errors.Is(err, payroll.ErrDeductionTypeNotFound):
		NotFound(w, "Deduction type not found")
	case errors.Is(err, payroll.ErrDeductionTypeNameExists):
		Conflict(w, "Deduction type name already exists")
	case errors.Is(err, payroll.ErrAllowanceTypeNotFound):
		NotFound(w, "Allowance type not found")
	case errors.Is(err, payroll.ErrAllowanceTypeNameExists):
		Conflict(w, "Allowance type name already exists")
	case errors.Is(err, payroll.ErrInvalidSetting):
		BadRequest(w, err.Error(), nil)

	// Approval domain errors
	case errors.Is(err, approval.ErrApprovalNotFound):
		NotFound(w, "Approval request not found")
	case errors.Is(err, approval.ErrAlreadyProcessed):
		Conflict(w, "Approval request already processed")
	case errors.Is(err, approval.ErrMissingReason):
		BadRequest(w, "Rejection reason is required", nil)
	case errors.Is(err, approval.ErrInvalidPayload):
		BadRequest(w, "Approval payload does not match its type", nil)
	case errors.Is(err, approval.ErrInvalidType):
		BadRequest(w, "Invalid approval type", nil)

	default:
		slog.Error("unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
