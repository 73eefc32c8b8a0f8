package postgresql_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workstream-hr/payroll-backend-go/internal/domain/approval"
	"github.com/workstream-hr/payroll-backend-go/internal/repository/postgresql"
)

func createOvertimeApproval(t *testing.T, ctx context.Context, employeeID, hours string, startDate time.Time) approval.Approval {
	t.Helper()

	repo := postgresql.NewApprovalRepository(testDB)
	h := decimal.RequireFromString(hours)
	a, err := repo.Create(ctx, approval.Approval{
		EmployeeID: employeeID,
		Type:       approval.TypeOvertime,
		Hours:      &h,
		StartDate:  &startDate,
	})
	require.NoError(t, err)
	return a
}

func TestApprovalRepository_Transition_ApprovesPending(t *testing.T) {
	requireTestDB(t)

	ctx := context.Background()
	deptID := createTestDepartment(t, ctx)
	emp := createTestEmployee(t, ctx, deptID, "EN-0001")
	a := createOvertimeApproval(t, ctx, emp.ID, "4", time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC))

	repo := postgresql.NewApprovalRepository(testDB)
	decided, err := repo.Transition(ctx, a.ID, approval.StatusApproved, "manager-1", nil)
	require.NoError(t, err)

	assert.Equal(t, approval.StatusApproved, decided.Status)
	require.NotNil(t, decided.DecidedBy)
	assert.Equal(t, "manager-1", *decided.DecidedBy)
	assert.NotNil(t, decided.DecidedAt)
}

func TestApprovalRepository_Transition_SecondDecisionRejected(t *testing.T) {
	requireTestDB(t)

	ctx := context.Background()
	deptID := createTestDepartment(t, ctx)
	emp := createTestEmployee(t, ctx, deptID, "EN-0001")
	a := createOvertimeApproval(t, ctx, emp.ID, "4", time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC))

	repo := postgresql.NewApprovalRepository(testDB)
	_, err := repo.Transition(ctx, a.ID, approval.StatusApproved, "manager-1", nil)
	require.NoError(t, err)

	reason := "budget exceeded"
	_, err = repo.Transition(ctx, a.ID, approval.StatusRejected, "manager-2", &reason)
	assert.ErrorIs(t, err, approval.ErrAlreadyProcessed)

	// The first decision must survive untouched.
	stored, err := repo.GetByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, approval.StatusApproved, stored.Status)
	assert.Nil(t, stored.RejectedReason)
}

func TestApprovalRepository_Transition_PersistsRejectedReason(t *testing.T) {
	requireTestDB(t)

	ctx := context.Background()
	deptID := createTestDepartment(t, ctx)
	emp := createTestEmployee(t, ctx, deptID, "EN-0001")
	a := createOvertimeApproval(t, ctx, emp.ID, "4", time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC))

	repo := postgresql.NewApprovalRepository(testDB)
	reason := "not pre-authorized"
	decided, err := repo.Transition(ctx, a.ID, approval.StatusRejected, "manager-1", &reason)
	require.NoError(t, err)

	assert.Equal(t, approval.StatusRejected, decided.Status)
	require.NotNil(t, decided.RejectedReason)
	assert.Equal(t, reason, *decided.RejectedReason)
}

func TestApprovalRepository_Transition_NotFound(t *testing.T) {
	requireTestDB(t)

	ctx := context.Background()
	repo := postgresql.NewApprovalRepository(testDB)

	_, err := repo.Transition(ctx, uuid.NewString(), approval.StatusApproved, "manager-1", nil)
	assert.ErrorIs(t, err, approval.ErrApprovalNotFound)
}

func TestApprovalRepository_SumApprovedOvertimeHours(t *testing.T) {
	requireTestDB(t)

	ctx := context.Background()
	deptID := createTestDepartment(t, ctx)
	emp := createTestEmployee(t, ctx, deptID, "EN-0001")
	repo := postgresql.NewApprovalRepository(testDB)

	inRange1 := createOvertimeApproval(t, ctx, emp.ID, "3", time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC))
	inRange2 := createOvertimeApproval(t, ctx, emp.ID, "2", time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC))
	outOfRange := createOvertimeApproval(t, ctx, emp.ID, "8", time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC))
	// This one stays pending and must not count.
	createOvertimeApproval(t, ctx, emp.ID, "4", time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC))

	for _, id := range []string{inRange1.ID, inRange2.ID, outOfRange.ID} {
		_, err := repo.Transition(ctx, id, approval.StatusApproved, "manager-1", nil)
		require.NoError(t, err)
	}

	total, err := repo.SumApprovedOvertimeHours(ctx, emp.ID,
		time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.RequireFromString("5")), "total = %s", total)
}
