package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

type Attendance struct {
	ID         string
	EmployeeID string
	Date       time.Time
	TimeIn     time.Time
	TimeOut    *time.Time
	Status     Status
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Joined fields
	EmployeeName *string
}

type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
	StatusLate    Status = "late"
	StatusHalfDay Status = "half_day"
	StatusLeave   Status = "leave"
)

// WorkedHours derives hours from the in/out pair, rounded to two decimals.
// Undefined (nil) until the employee has checked out.
func (a Attendance) WorkedHours() *decimal.Decimal {
	if a.TimeOut == nil {
		return nil
	}
	hours := decimal.NewFromFloat(a.TimeOut.Sub(a.TimeIn).Hours()).Round(2)
	if hours.IsNegative() {
		hours = decimal.Zero
	}
	return &hours
}
