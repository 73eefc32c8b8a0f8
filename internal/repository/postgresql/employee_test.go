package postgresql_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workstream-hr/payroll-backend-go/internal/domain/employee"
	"github.com/workstream-hr/payroll-backend-go/internal/repository/postgresql"
)

func TestEmployeeRepository_DuplicateCodeRejected(t *testing.T) {
	requireTestDB(t)

	ctx := context.Background()
	deptID := createTestDepartment(t, ctx)
	createTestEmployee(t, ctx, deptID, "EN-0001")

	repo := postgresql.NewEmployeeRepository(testDB)
	salary := decimal.RequireFromString("4000")
	_, err := repo.Create(ctx, employee.Employee{
		DepartmentID:      deptID,
		EmployeeCode:      "EN-0001",
		FullName:          "Someone Else",
		Email:             "someone@example.com",
		EmploymentStatus:  employee.EmploymentStatusActive,
		BasicSalary:       &salary,
		HireDate:          time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		BankName:          "Test Bank",
		BankAccountNumber: "0002",
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeCodeExists)
}

func TestEmployeeRepository_DuplicateEmailRejected(t *testing.T) {
	requireTestDB(t)

	ctx := context.Background()
	deptID := createTestDepartment(t, ctx)
	existing := createTestEmployee(t, ctx, deptID, "EN-0001")

	repo := postgresql.NewEmployeeRepository(testDB)
	salary := decimal.RequireFromString("4000")
	_, err := repo.Create(ctx, employee.Employee{
		DepartmentID:      deptID,
		EmployeeCode:      "EN-0002",
		FullName:          "Someone Else",
		Email:             existing.Email,
		EmploymentStatus:  employee.EmploymentStatusActive,
		BasicSalary:       &salary,
		HireDate:          time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		BankName:          "Test Bank",
		BankAccountNumber: "0002",
	})
	assert.ErrorIs(t, err, employee.ErrEmailExists)
}

func TestEmployeeRepository_ListActiveExcludesTerminated(t *testing.T) {
	requireTestDB(t)

	ctx := context.Background()
	deptID := createTestDepartment(t, ctx)
	active := createTestEmployee(t, ctx, deptID, "EN-0001")
	terminated := createTestEmployee(t, ctx, deptID, "EN-0002")

	repo := postgresql.NewEmployeeRepository(testDB)
	require.NoError(t, repo.SetStatus(ctx, terminated.ID, employee.EmploymentStatusTerminated))

	employees, err := repo.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, employees, 1)
	assert.Equal(t, active.ID, employees[0].ID)
}

func TestEmployeeRepository_ListFiltersByDepartmentAndStatus(t *testing.T) {
	requireTestDB(t)

	ctx := context.Background()
	deptID := createTestDepartment(t, ctx)
	createTestEmployee(t, ctx, deptID, "EN-0001")
	onLeave := createTestEmployee(t, ctx, deptID, "EN-0002")

	repo := postgresql.NewEmployeeRepository(testDB)
	require.NoError(t, repo.SetStatus(ctx, onLeave.ID, employee.EmploymentStatusOnLeave))

	status := string(employee.EmploymentStatusOnLeave)
	employees, total, err := repo.List(ctx, employee.EmployeeFilter{
		DepartmentID: &deptID,
		Status:       &status,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, employees, 1)
	assert.Equal(t, onLeave.ID, employees[0].ID)
	require.NotNil(t, employees[0].DepartmentName)
	assert.Equal(t, "Engineering", *employees[0].DepartmentName)
}
