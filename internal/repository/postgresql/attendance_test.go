package postgresql_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workstream-hr/payroll-backend-go/internal/domain/attendance"
	"github.com/workstream-hr/payroll-backend-go/internal/domain/employee"
	"github.com/workstream-hr/payroll-backend-go/internal/repository/postgresql"
)

func checkIn(t *testing.T, ctx context.Context, employeeID string, day time.Time) attendance.Attendance {
	t.Helper()

	repo := postgresql.NewAttendanceRepository(testDB)
	att, err := repo.Create(ctx, attendance.Attendance{
		EmployeeID: employeeID,
		Date:       day,
		TimeIn:     day.Add(9 * time.Hour),
		Status:     attendance.StatusPresent,
	})
	require.NoError(t, err)
	return att
}

func TestAttendanceRepository_DuplicateCheckInRejected(t *testing.T) {
	requireTestDB(t)

	ctx := context.Background()
	deptID := createTestDepartment(t, ctx)
	emp := createTestEmployee(t, ctx, deptID, "EN-0001")
	day := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	checkIn(t, ctx, emp.ID, day)

	repo := postgresql.NewAttendanceRepository(testDB)
	_, err := repo.Create(ctx, attendance.Attendance{
		EmployeeID: emp.ID,
		Date:       day,
		TimeIn:     day.Add(10 * time.Hour),
		Status:     attendance.StatusPresent,
	})
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)
}

func TestAttendanceRepository_SetTimeOut(t *testing.T) {
	requireTestDB(t)

	ctx := context.Background()
	deptID := createTestDepartment(t, ctx)
	emp := createTestEmployee(t, ctx, deptID, "EN-0001")
	day := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	att := checkIn(t, ctx, emp.ID, day)

	repo := postgresql.NewAttendanceRepository(testDB)
	updated, err := repo.SetTimeOut(ctx, att.ID, day.Add(17*time.Hour))
	require.NoError(t, err)
	require.NotNil(t, updated.TimeOut)

	// Second check-out hits zero rows because time_out is no longer NULL.
	_, err = repo.SetTimeOut(ctx, att.ID, day.Add(18*time.Hour))
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedOut)
}

func TestAttendanceRepository_SetTimeOut_NotFound(t *testing.T) {
	requireTestDB(t)

	ctx := context.Background()
	repo := postgresql.NewAttendanceRepository(testDB)

	_, err := repo.SetTimeOut(ctx, uuid.NewString(), time.Now().UTC())
	assert.ErrorIs(t, err, attendance.ErrAttendanceNotFound)
}

func TestAttendanceRepository_ListByEmployeeAndRange(t *testing.T) {
	requireTestDB(t)

	ctx := context.Background()
	deptID := createTestDepartment(t, ctx)
	emp := createTestEmployee(t, ctx, deptID, "EN-0001")

	checkIn(t, ctx, emp.ID, time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC))
	checkIn(t, ctx, emp.ID, time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC))
	checkIn(t, ctx, emp.ID, time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC))

	repo := postgresql.NewAttendanceRepository(testDB)
	records, err := repo.ListByEmployeeAndRange(ctx, emp.ID,
		time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestAttendanceRepository_MarkAbsent(t *testing.T) {
	requireTestDB(t)

	ctx := context.Background()
	deptID := createTestDepartment(t, ctx)
	present := createTestEmployee(t, ctx, deptID, "EN-0001")
	absent := createTestEmployee(t, ctx, deptID, "EN-0002")
	terminated := createTestEmployee(t, ctx, deptID, "EN-0003")

	empRepo := postgresql.NewEmployeeRepository(testDB)
	require.NoError(t, empRepo.SetStatus(ctx, terminated.ID, employee.EmploymentStatusTerminated))

	day := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	checkIn(t, ctx, present.ID, day)

	repo := postgresql.NewAttendanceRepository(testDB)
	marked, err := repo.MarkAbsent(ctx, day)
	require.NoError(t, err)
	assert.Equal(t, int64(1), marked)

	records, err := repo.ListByEmployeeAndRange(ctx, absent.ID, day, day)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, attendance.StatusAbsent, records[0].Status)

	// Rerunning the job must not create duplicates.
	marked, err = repo.MarkAbsent(ctx, day)
	require.NoError(t, err)
	assert.Equal(t, int64(0), marked)
}
