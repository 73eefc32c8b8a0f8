package payroll

import "errors"

var (
	ErrPeriodNotFound      = errors.New("payroll period not found")
	ErrPeriodExists        = errors.New("payroll period already exists for this date range")
	ErrPeriodProcessed     = errors.New("payroll period already processed, items are frozen")
	ErrPeriodNotProcessing = errors.New("payroll period is not in processing state")
	ErrInvalidPeriod       = errors.New("invalid payroll period")

	ErrPayrollItemNotFound = errors.New("payroll item not found")
	ErrPayrollItemExists   = errors.New("payroll item already exists for this period and employee")
	ErrPayrollItemPaid     = errors.New("payroll item already paid, cannot modify")

	ErrInvalidInput             = errors.New("invalid payroll input")
	ErrMissingCompensationBasis = errors.New("employee has neither basic salary nor hourly rate configured")
	ErrNegativeNetPay           = errors.New("computed net pay is negative")

	ErrDeductionTypeNotFound   = errors.New("deduction type not found")
	ErrDeductionTypeNameExists = errors.New("deduction type name already exists")
	ErrAllowanceTypeNotFound   = errors.New("allowance type not found")
	ErrAllowanceTypeNameExists = errors.New("allowance type name already exists")

	ErrInvalidSetting = errors.New("invalid payroll setting")
)
