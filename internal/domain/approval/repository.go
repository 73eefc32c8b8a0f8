package approval

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type ApprovalRepository interface {
	Create(ctx context.Context, a Approval) (Approval, error)
	GetByID(ctx context.Context, id string) (Approval, error)
	List(ctx context.Context, filter ApprovalFilter) ([]Approval, error)
	// Transition is the compare-and-swap on status: the UPDATE carries a
	// `status = 'pending'` guard and zero affected rows come back as
	// ErrAlreadyProcessed, so concurrent decisions cannot both land.
	Transition(ctx context.Context, id string, to Status, decidedBy string, reason *string) (Approval, error)
	// SumApprovedOvertimeHours aggregates hours from approved overtime
	// approvals whose start date falls inside [start, end]. Pending and
	// rejected requests never count.
	SumApprovedOvertimeHours(ctx context.Context, employeeID string, start, end time.Time) (decimal.Decimal, error)
}
