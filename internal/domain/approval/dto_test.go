package approval

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workstream-hr/payroll-backend-go/internal/pkg/validator"
)

func strPtr(s string) *string { return &s }

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestSubmitApprovalRequest_Overtime(t *testing.T) {
	req := SubmitApprovalRequest{
		EmployeeID: "emp-1",
		Type:       string(TypeOvertime),
		Hours:      decPtr("4"),
		StartDate:  strPtr("2025-06-10"),
	}
	assert.NoError(t, req.Validate())
}

func TestSubmitApprovalRequest_OvertimeMissingHours(t *testing.T) {
	req := SubmitApprovalRequest{
		EmployeeID: "emp-1",
		Type:       string(TypeOvertime),
		StartDate:  strPtr("2025-06-10"),
	}

	err := req.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "hours")
}

func TestSubmitApprovalRequest_OvertimeZeroHours(t *testing.T) {
	req := SubmitApprovalRequest{
		EmployeeID: "emp-1",
		Type:       string(TypeOvertime),
		Hours:      decPtr("0"),
		StartDate:  strPtr("2025-06-10"),
	}
	assert.Error(t, req.Validate())
}

func TestSubmitApprovalRequest_Leave(t *testing.T) {
	req := SubmitApprovalRequest{
		EmployeeID: "emp-1",
		Type:       string(TypeLeave),
		StartDate:  strPtr("2025-06-10"),
		EndDate:    strPtr("2025-06-12"),
	}
	assert.NoError(t, req.Validate())
}

func TestSubmitApprovalRequest_LeaveReversedRange(t *testing.T) {
	req := SubmitApprovalRequest{
		EmployeeID: "emp-1",
		Type:       string(TypeLeave),
		StartDate:  strPtr("2025-06-12"),
		EndDate:    strPtr("2025-06-10"),
	}

	err := req.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "end_date")
}

func TestSubmitApprovalRequest_Reimbursement(t *testing.T) {
	req := SubmitApprovalRequest{
		EmployeeID: "emp-1",
		Type:       string(TypeReimbursement),
		Amount:     decPtr("125.50"),
		Notes:      strPtr("Taxi to client site"),
	}
	assert.NoError(t, req.Validate())
}

func TestSubmitApprovalRequest_ReimbursementMissingNotes(t *testing.T) {
	req := SubmitApprovalRequest{
		EmployeeID: "emp-1",
		Type:       string(TypeReimbursement),
		Amount:     decPtr("125.50"),
	}
	assert.Error(t, req.Validate())
}

func TestSubmitApprovalRequest_UnknownType(t *testing.T) {
	req := SubmitApprovalRequest{
		EmployeeID: "emp-1",
		Type:       "vacation",
	}

	err := req.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "type")
}

func TestApproval_Terminal(t *testing.T) {
	assert.False(t, Approval{Status: StatusPending}.Terminal())
	assert.True(t, Approval{Status: StatusApproved}.Terminal())
	assert.True(t, Approval{Status: StatusRejected}.Terminal())
}
