package approval

import (
	"time"

	"github.com/shopspring/decimal"
)

type Type string

const (
	TypeOvertime      Type = "overtime"
	TypeLeave         Type = "leave"
	TypeReimbursement Type = "reimbursement"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Approval - an employee-initiated request gating payroll inputs. Status
// moves exactly once from pending to a terminal state; terminal rows are
// never mutated again.
type Approval struct {
	ID         string
	EmployeeID string
	Type       Type
	Status     Status

	// Type-specific payload. Overtime carries Hours + StartDate, leave
	// carries StartDate + EndDate, reimbursement carries Amount + Notes.
	Hours     *decimal.Decimal
	StartDate *time.Time
	EndDate   *time.Time
	Amount    *decimal.Decimal
	Notes     *string

	RejectedReason *string
	DecidedBy      *string
	DecidedAt      *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// Joined fields
	EmployeeName *string
}

// Terminal reports whether the approval has been decided.
func (a Approval) Terminal() bool {
	return a.Status == StatusApproved || a.Status == StatusRejected
}
