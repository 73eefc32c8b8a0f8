package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID                    string
	DepartmentID          string
	EmployeeCode          string
	FullName              string
	Email                 string
	EmploymentStatus      EmploymentStatus
	BasicSalary           *decimal.Decimal
	HourlyRate            *decimal.Decimal
	HireDate              time.Time
	BankName              string
	BankAccountNumber     string
	BankAccountHolderName *string
	CreatedAt             time.Time
	UpdatedAt             time.Time

	// Joined fields
	DepartmentName *string
}

type EmploymentStatus string

const (
	EmploymentStatusActive     EmploymentStatus = "active"
	EmploymentStatusOnLeave    EmploymentStatus = "on_leave"
	EmploymentStatusTerminated EmploymentStatus = "terminated"
)

// IsHourly reports whether pay is hours-driven. An employee with an hourly
// rate is paid from worked hours even when a basic salary is also on file.
func (e Employee) IsHourly() bool {
	return e.HourlyRate != nil && e.HourlyRate.IsPositive()
}
