package payroll

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workstream-hr/payroll-backend-go/internal/config"
	"github.com/workstream-hr/payroll-backend-go/internal/domain/approval"
	"github.com/workstream-hr/payroll-backend-go/internal/domain/attendance"
	"github.com/workstream-hr/payroll-backend-go/internal/domain/employee"
	"github.com/workstream-hr/payroll-backend-go/internal/domain/payroll"
)

// ========== IN-MEMORY FAKES ==========

type fakePeriodRepo struct {
	periods map[string]payroll.PayrollPeriod
}

func (f *fakePeriodRepo) Create(_ context.Context, p payroll.PayrollPeriod) (payroll.PayrollPeriod, error) {
	p.ID = fmt.Sprintf("period-%d", len(f.periods)+1)
	p.Status = payroll.PeriodStatusDraft
	f.periods[p.ID] = p
	return p, nil
}

func (f *fakePeriodRepo) GetByID(_ context.Context, id string) (payroll.PayrollPeriod, error) {
	p, ok := f.periods[id]
	if !ok {
		return payroll.PayrollPeriod{}, payroll.ErrPeriodNotFound
	}
	return p, nil
}

func (f *fakePeriodRepo) List(_ context.Context) ([]payroll.PayrollPeriod, error) {
	var out []payroll.PayrollPeriod
	for _, p := range f.periods {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakePeriodRepo) SetStatus(_ context.Context, id string, from, to payroll.PeriodStatus, processedDate *time.Time) error {
	p, ok := f.periods[id]
	if !ok {
		return payroll.ErrPeriodNotFound
	}
	if p.Status != from {
		return payroll.ErrInvalidPeriod
	}
	p.Status = to
	if processedDate != nil {
		p.ProcessedDate = processedDate
	}
	f.periods[id] = p
	return nil
}

type fakeItemRepo struct {
	items      map[string]payroll.PayrollItem
	deductions map[string][]payroll.Deduction
	allowances map[string][]payroll.Allowance
	nextID     int
}

func newFakeItemRepo() *fakeItemRepo {
	return &fakeItemRepo{
		items:      map[string]payroll.PayrollItem{},
		deductions: map[string][]payroll.Deduction{},
		allowances: map[string][]payroll.Allowance{},
	}
}

func (f *fakeItemRepo) CreateWithLines(_ context.Context, item payroll.PayrollItem, deductions []payroll.Deduction, allowances []payroll.Allowance) (payroll.PayrollItem, error) {
	for _, existing := range f.items {
		if existing.PayrollPeriodID == item.PayrollPeriodID && existing.EmployeeID == item.EmployeeID {
			return payroll.PayrollItem{}, payroll.ErrPayrollItemExists
		}
	}
	f.nextID++
	item.ID = fmt.Sprintf("item-%d", f.nextID)
	item.Status = payroll.ItemStatusPending
	f.items[item.ID] = item
	f.deductions[item.ID] = deductions
	f.allowances[item.ID] = allowances
	return item, nil
}

func (f *fakeItemRepo) GetByID(_ context.Context, id string) (payroll.PayrollItem, error) {
	item, ok := f.items[id]
	if !ok {
		return payroll.PayrollItem{}, payroll.ErrPayrollItemNotFound
	}
	return item, nil
}

func (f *fakeItemRepo) GetByPeriodAndEmployee(_ context.Context, periodID, employeeID string) (payroll.PayrollItem, error) {
	for _, item := range f.items {
		if item.PayrollPeriodID == periodID && item.EmployeeID == employeeID {
			return item, nil
		}
	}
	return payroll.PayrollItem{}, payroll.ErrPayrollItemNotFound
}

func (f *fakeItemRepo) ListByPeriod(_ context.Context, periodID string) ([]payroll.PayrollItem, error) {
	var out []payroll.PayrollItem
	for _, item := range f.items {
		if item.PayrollPeriodID == periodID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (f *fakeItemRepo) ListDeductions(_ context.Context, itemID string) ([]payroll.Deduction, error) {
	return f.deductions[itemID], nil
}

func (f *fakeItemRepo) ListAllowances(_ context.Context, itemID string) ([]payroll.Allowance, error) {
	return f.allowances[itemID], nil
}

func (f *fakeItemRepo) DeleteWithLines(_ context.Context, id string) error {
	if _, ok := f.items[id]; !ok {
		return payroll.ErrPayrollItemNotFound
	}
	delete(f.items, id)
	delete(f.deductions, id)
	delete(f.allowances, id)
	return nil
}

func (f *fakeItemRepo) SetStatus(_ context.Context, ids []string, status payroll.ItemStatus) error {
	for _, id := range ids {
		item, ok := f.items[id]
		if !ok {
			return payroll.ErrPayrollItemNotFound
		}
		item.Status = status
		f.items[id] = item
	}
	return nil
}

func (f *fakeItemRepo) GetPeriodSummary(_ context.Context, periodID string) (payroll.PeriodSummaryResponse, error) {
	summary := payroll.PeriodSummaryResponse{PayrollPeriodID: periodID}
	for _, item := range f.items {
		if item.PayrollPeriodID != periodID {
			continue
		}
		summary.TotalEmployees++
		summary.TotalGrossPay = summary.TotalGrossPay.Add(item.GrossPay)
		summary.TotalTaxAmount = summary.TotalTaxAmount.Add(item.TaxAmount)
		summary.TotalNetPay = summary.TotalNetPay.Add(item.NetPay)
		switch item.Status {
		case payroll.ItemStatusPending:
			summary.PendingCount++
		case payroll.ItemStatusApproved:
			summary.ApprovedCount++
		case payroll.ItemStatusPaid:
			summary.PaidCount++
		}
	}
	return summary, nil
}

type fakeCatalogRepo struct {
	deductionTypes []payroll.DeductionType
	allowanceTypes []payroll.AllowanceType
}

func (f *fakeCatalogRepo) CreateDeductionType(_ context.Context, dt payroll.DeductionType) (payroll.DeductionType, error) {
	dt.ID = fmt.Sprintf("dt-%d", len(f.deductionTypes)+1)
	dt.IsActive = true
	f.deductionTypes = append(f.deductionTypes, dt)
	return dt, nil
}

func (f *fakeCatalogRepo) GetDeductionType(_ context.Context, id string) (payroll.DeductionType, error) {
	for _, dt := range f.deductionTypes {
		if dt.ID == id {
			return dt, nil
		}
	}
	return payroll.DeductionType{}, payroll.ErrDeductionTypeNotFound
}

func (f *fakeCatalogRepo) ListDeductionTypes(_ context.Context, activeOnly bool) ([]payroll.DeductionType, error) {
	var out []payroll.DeductionType
	for _, dt := range f.deductionTypes {
		if activeOnly && !dt.IsActive {
			continue
		}
		out = append(out, dt)
	}
	return out, nil
}

func (f *fakeCatalogRepo) UpdateDeductionType(_ context.Context, _ payroll.UpdateDeductionTypeRequest) error {
	return nil
}

func (f *fakeCatalogRepo) CreateAllowanceType(_ context.Context, at payroll.AllowanceType) (payroll.AllowanceType, error) {
	at.ID = fmt.Sprintf("at-%d", len(f.allowanceTypes)+1)
	at.IsActive = true
	f.allowanceTypes = append(f.allowanceTypes, at)
	return at, nil
}

func (f *fakeCatalogRepo) GetAllowanceType(_ context.Context, id string) (payroll.AllowanceType, error) {
	for _, at := range f.allowanceTypes {
		if at.ID == id {
			return at, nil
		}
	}
	return payroll.AllowanceType{}, payroll.ErrAllowanceTypeNotFound
}

func (f *fakeCatalogRepo) ListAllowanceTypes(_ context.Context, activeOnly bool) ([]payroll.AllowanceType, error) {
	var out []payroll.AllowanceType
	for _, at := range f.allowanceTypes {
		if activeOnly && !at.IsActive {
			continue
		}
		out = append(out, at)
	}
	return out, nil
}

func (f *fakeCatalogRepo) UpdateAllowanceType(_ context.Context, _ payroll.UpdateAllowanceTypeRequest) error {
	return nil
}

type fakeSettingsRepo struct {
	rows []payroll.Setting
}

func (f *fakeSettingsRepo) ListSettings(_ context.Context) ([]payroll.Setting, error) {
	return f.rows, nil
}

func (f *fakeSettingsRepo) UpsertSetting(_ context.Context, key, value string) (payroll.Setting, error) {
	for i, row := range f.rows {
		if row.Key == key {
			f.rows[i].Value = value
			return f.rows[i], nil
		}
	}
	row := payroll.Setting{Key: key, Value: value}
	f.rows = append(f.rows, row)
	return row, nil
}

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (f *fakeEmployeeRepo) Create(_ context.Context, e employee.Employee) (employee.Employee, error) {
	f.employees[e.ID] = e
	return e, nil
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	e, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (f *fakeEmployeeRepo) GetByCode(_ context.Context, code string) (employee.Employee, error) {
	for _, e := range f.employees {
		if e.EmployeeCode == code {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) List(_ context.Context, _ employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	var out []employee.Employee
	for _, e := range f.employees {
		out = append(out, e)
	}
	return out, int64(len(out)), nil
}

func (f *fakeEmployeeRepo) ListActive(_ context.Context) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, e := range f.employees {
		if e.EmploymentStatus == employee.EmploymentStatusActive {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEmployeeRepo) Update(_ context.Context, _ employee.UpdateEmployeeRequest) error {
	return nil
}

func (f *fakeEmployeeRepo) SetStatus(_ context.Context, id string, status employee.EmploymentStatus) error {
	e, ok := f.employees[id]
	if !ok {
		return employee.ErrEmployeeNotFound
	}
	e.EmploymentStatus = status
	f.employees[id] = e
	return nil
}

type fakeAttendanceRepo struct {
	records map[string][]attendance.Attendance
}

func (f *fakeAttendanceRepo) Create(_ context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	f.records[a.EmployeeID] = append(f.records[a.EmployeeID], a)
	return a, nil
}

func (f *fakeAttendanceRepo) GetByID(_ context.Context, _ string) (attendance.Attendance, error) {
	return attendance.Attendance{}, attendance.ErrAttendanceNotFound
}

func (f *fakeAttendanceRepo) SetTimeOut(_ context.Context, _ string, _ time.Time) (attendance.Attendance, error) {
	return attendance.Attendance{}, attendance.ErrAttendanceNotFound
}

func (f *fakeAttendanceRepo) ListByEmployeeAndRange(_ context.Context, employeeID string, _, _ time.Time) ([]attendance.Attendance, error) {
	return f.records[employeeID], nil
}

func (f *fakeAttendanceRepo) MarkAbsent(_ context.Context, _ time.Time) (int64, error) {
	return 0, nil
}

type fakeApprovalRepo struct {
	overtimeHours map[string]decimal.Decimal
}

func (f *fakeApprovalRepo) Create(_ context.Context, a approval.Approval) (approval.Approval, error) {
	return a, nil
}

func (f *fakeApprovalRepo) GetByID(_ context.Context, _ string) (approval.Approval, error) {
	return approval.Approval{}, approval.ErrApprovalNotFound
}

func (f *fakeApprovalRepo) List(_ context.Context, _ approval.ApprovalFilter) ([]approval.Approval, error) {
	return nil, nil
}

func (f *fakeApprovalRepo) Transition(_ context.Context, _ string, _ approval.Status, _ string, _ *string) (approval.Approval, error) {
	return approval.Approval{}, approval.ErrApprovalNotFound
}

func (f *fakeApprovalRepo) SumApprovedOvertimeHours(_ context.Context, employeeID string, _, _ time.Time) (decimal.Decimal, error) {
	if hours, ok := f.overtimeHours[employeeID]; ok {
		return hours, nil
	}
	return decimal.Zero, nil
}

type fakeRecorder struct {
	actions []string
}

func (f *fakeRecorder) Record(_ context.Context, action, _, _, _ string) {
	f.actions = append(f.actions, action)
}

// ========== FIXTURE ==========

type fixture struct {
	svc        payroll.PayrollService
	periodRepo *fakePeriodRepo
	itemRepo   *fakeItemRepo
	recorder   *fakeRecorder
	periodID   string
}

func newFixture(t *testing.T, employees map[string]employee.Employee, attendances map[string][]attendance.Attendance, overtime map[string]decimal.Decimal) *fixture {
	t.Helper()

	periodRepo := &fakePeriodRepo{periods: map[string]payroll.PayrollPeriod{}}
	itemRepo := newFakeItemRepo()
	recorder := &fakeRecorder{}

	svc := NewPayrollService(
		config.PayrollDefaults{
			TaxRate:              decimal.RequireFromString("0.15"),
			OvertimeMultiplier:   decimal.RequireFromString("1.5"),
			StandardMonthlyHours: decimal.RequireFromString("160"),
		},
		periodRepo,
		itemRepo,
		&fakeCatalogRepo{},
		&fakeSettingsRepo{},
		&fakeEmployeeRepo{employees: employees},
		&fakeAttendanceRepo{records: attendances},
		&fakeApprovalRepo{overtimeHours: overtime},
		recorder,
	)

	period, err := svc.CreatePeriod(context.Background(), payroll.CreatePeriodRequest{
		StartDate: "2025-06-01",
		EndDate:   "2025-06-30",
	})
	require.NoError(t, err)

	return &fixture{
		svc:        svc,
		periodRepo: periodRepo,
		itemRepo:   itemRepo,
		recorder:   recorder,
		periodID:   period.ID,
	}
}

func activeEmployee(id, code, salary string) employee.Employee {
	basic := decimal.RequireFromString(salary)
	return employee.Employee{
		ID:               id,
		EmployeeCode:     code,
		FullName:         "Test " + code,
		EmploymentStatus: employee.EmploymentStatusActive,
		BasicSalary:      &basic,
	}
}

func activeHourlyEmployee(id, code, rate string) employee.Employee {
	hourly := decimal.RequireFromString(rate)
	return employee.Employee{
		ID:               id,
		EmployeeCode:     code,
		FullName:         "Test " + code,
		EmploymentStatus: employee.EmploymentStatusActive,
		HourlyRate:       &hourly,
	}
}

func dayWorked(employeeID string, day, hours int) attendance.Attendance {
	timeIn := time.Date(2025, 6, day, 9, 0, 0, 0, time.UTC)
	timeOut := timeIn.Add(time.Duration(hours) * time.Hour)
	return attendance.Attendance{
		EmployeeID: employeeID,
		Date:       time.Date(2025, 6, day, 0, 0, 0, 0, time.UTC),
		TimeIn:     timeIn,
		TimeOut:    &timeOut,
		Status:     attendance.StatusPresent,
	}
}

// ========== TESTS ==========

func TestComputeItem_DerivesHoursFromAttendanceAndOvertime(t *testing.T) {
	attendances := map[string][]attendance.Attendance{
		"emp-1": {dayWorked("emp-1", 2, 8), dayWorked("emp-1", 3, 8)},
	}
	overtime := map[string]decimal.Decimal{
		"emp-1": decimal.RequireFromString("5"),
	}
	f := newFixture(t, map[string]employee.Employee{
		"emp-1": activeHourlyEmployee("emp-1", "EN-0001", "20"),
	}, attendances, overtime)

	item, err := f.svc.ComputeItem(context.Background(), payroll.ComputePayrollItemRequest{
		PayrollPeriodID: f.periodID,
		EmployeeID:      "emp-1",
	})
	require.NoError(t, err)

	// 16h * 20 = 320, overtime 5h * 30 = 150, gross 470, tax 70.50
	assert.True(t, item.HoursWorked.Equal(decimal.RequireFromString("16")))
	assert.True(t, item.OvertimeHours.Equal(decimal.RequireFromString("5")))
	assert.True(t, item.OvertimeAmount.Equal(decimal.RequireFromString("150")))
	assert.True(t, item.GrossPay.Equal(decimal.RequireFromString("470")))
	assert.True(t, item.TaxAmount.Equal(decimal.RequireFromString("70.5")))
	assert.True(t, item.NetPay.Equal(decimal.RequireFromString("399.5")), "net = %s", item.NetPay)
	assert.Contains(t, f.recorder.actions, "computed")
}

func TestComputeItem_OverridesBeatDerivation(t *testing.T) {
	f := newFixture(t, map[string]employee.Employee{
		"emp-1": activeHourlyEmployee("emp-1", "EN-0001", "20"),
	}, map[string][]attendance.Attendance{
		"emp-1": {dayWorked("emp-1", 2, 8)},
	}, nil)

	hours := decimal.RequireFromString("160")
	item, err := f.svc.ComputeItem(context.Background(), payroll.ComputePayrollItemRequest{
		PayrollPeriodID: f.periodID,
		EmployeeID:      "emp-1",
		HoursWorked:     &hours,
	})
	require.NoError(t, err)

	assert.True(t, item.HoursWorked.Equal(decimal.RequireFromString("160")))
	assert.True(t, item.GrossPay.Equal(decimal.RequireFromString("3200")))
}

func TestComputeItem_DuplicateRejectedWithoutReplace(t *testing.T) {
	f := newFixture(t, map[string]employee.Employee{
		"emp-1": activeEmployee("emp-1", "EN-0001", "5000"),
	}, map[string][]attendance.Attendance{}, nil)

	_, err := f.svc.ComputeItem(context.Background(), payroll.ComputePayrollItemRequest{
		PayrollPeriodID: f.periodID,
		EmployeeID:      "emp-1",
	})
	require.NoError(t, err)

	_, err = f.svc.ComputeItem(context.Background(), payroll.ComputePayrollItemRequest{
		PayrollPeriodID: f.periodID,
		EmployeeID:      "emp-1",
	})
	assert.ErrorIs(t, err, payroll.ErrPayrollItemExists)
}

func TestComputeItem_ReplaceRecomputes(t *testing.T) {
	f := newFixture(t, map[string]employee.Employee{
		"emp-1": activeEmployee("emp-1", "EN-0001", "5000"),
	}, map[string][]attendance.Attendance{}, nil)

	first, err := f.svc.ComputeItem(context.Background(), payroll.ComputePayrollItemRequest{
		PayrollPeriodID: f.periodID,
		EmployeeID:      "emp-1",
	})
	require.NoError(t, err)

	other := decimal.RequireFromString("100")
	second, err := f.svc.ComputeItem(context.Background(), payroll.ComputePayrollItemRequest{
		PayrollPeriodID: f.periodID,
		EmployeeID:      "emp-1",
		OtherDeductions: &other,
		Replace:         true,
	})
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.True(t, second.NetPay.Equal(first.NetPay.Sub(other)), "net = %s", second.NetPay)
	assert.Contains(t, f.recorder.actions, "replaced")

	// Only the replacement remains.
	items, err := f.svc.ListItems(context.Background(), f.periodID)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestComputeItem_PaidItemCannotBeReplaced(t *testing.T) {
	f := newFixture(t, map[string]employee.Employee{
		"emp-1": activeEmployee("emp-1", "EN-0001", "5000"),
	}, map[string][]attendance.Attendance{}, nil)

	item, err := f.svc.ComputeItem(context.Background(), payroll.ComputePayrollItemRequest{
		PayrollPeriodID: f.periodID,
		EmployeeID:      "emp-1",
	})
	require.NoError(t, err)

	require.NoError(t, f.svc.FinalizeItems(context.Background(), payroll.FinalizeItemsRequest{
		ItemIDs: []string{item.ID}, Status: "approved",
	}))
	require.NoError(t, f.svc.FinalizeItems(context.Background(), payroll.FinalizeItemsRequest{
		ItemIDs: []string{item.ID}, Status: "paid",
	}))

	_, err = f.svc.ComputeItem(context.Background(), payroll.ComputePayrollItemRequest{
		PayrollPeriodID: f.periodID,
		EmployeeID:      "emp-1",
		Replace:         true,
	})
	assert.ErrorIs(t, err, payroll.ErrPayrollItemPaid)
}

func TestFinalizeItems_EnforcesStatusOrder(t *testing.T) {
	f := newFixture(t, map[string]employee.Employee{
		"emp-1": activeEmployee("emp-1", "EN-0001", "5000"),
	}, map[string][]attendance.Attendance{}, nil)

	item, err := f.svc.ComputeItem(context.Background(), payroll.ComputePayrollItemRequest{
		PayrollPeriodID: f.periodID,
		EmployeeID:      "emp-1",
	})
	require.NoError(t, err)

	// pending -> paid skips a step
	err = f.svc.FinalizeItems(context.Background(), payroll.FinalizeItemsRequest{
		ItemIDs: []string{item.ID}, Status: "paid",
	})
	assert.ErrorIs(t, err, payroll.ErrInvalidInput)
}

func TestProcessPeriod_ComputesAllActiveAndSkipsBroken(t *testing.T) {
	f := newFixture(t, map[string]employee.Employee{
		"emp-1": activeEmployee("emp-1", "EN-0001", "5000"),
		"emp-2": activeHourlyEmployee("emp-2", "EN-0002", "20"),
		"emp-3": { // no salary, no rate
			ID:               "emp-3",
			EmployeeCode:     "EN-0003",
			FullName:         "Test EN-0003",
			EmploymentStatus: employee.EmploymentStatusActive,
		},
		"emp-4": {
			ID:               "emp-4",
			EmployeeCode:     "EN-0004",
			EmploymentStatus: employee.EmploymentStatusTerminated,
		},
	}, map[string][]attendance.Attendance{
		"emp-2": {dayWorked("emp-2", 2, 8)},
	}, nil)

	result, err := f.svc.ProcessPeriod(context.Background(), f.periodID)
	require.NoError(t, err)

	assert.Len(t, result.Computed, 2)
	require.Len(t, result.Skipped, 1)
	assert.Equal(t, "emp-3", result.Skipped[0].EmployeeID)

	period, err := f.svc.GetPeriod(context.Background(), f.periodID)
	require.NoError(t, err)
	assert.Equal(t, string(payroll.PeriodStatusProcessed), period.Status)
	assert.NotNil(t, period.ProcessedDate)

	// A processed period rejects further computation.
	_, err = f.svc.ComputeItem(context.Background(), payroll.ComputePayrollItemRequest{
		PayrollPeriodID: f.periodID,
		EmployeeID:      "emp-1",
	})
	assert.ErrorIs(t, err, payroll.ErrPeriodProcessed)

	_, err = f.svc.ProcessPeriod(context.Background(), f.periodID)
	assert.ErrorIs(t, err, payroll.ErrPeriodProcessed)
}

func TestProcessPeriod_NothingComputedRevertsToDraft(t *testing.T) {
	f := newFixture(t, map[string]employee.Employee{}, map[string][]attendance.Attendance{}, nil)

	result, err := f.svc.ProcessPeriod(context.Background(), f.periodID)
	require.NoError(t, err)
	assert.Empty(t, result.Computed)

	period, err := f.svc.GetPeriod(context.Background(), f.periodID)
	require.NoError(t, err)
	assert.Equal(t, string(payroll.PeriodStatusDraft), period.Status)
}

// contestedPeriodRepo loses every processing-state handoff, as if another
// worker moved the period while the batch ran.
type contestedPeriodRepo struct {
	*fakePeriodRepo
}

func (c *contestedPeriodRepo) SetStatus(ctx context.Context, id string, from, to payroll.PeriodStatus, processedDate *time.Time) error {
	if from == payroll.PeriodStatusProcessing {
		return payroll.ErrInvalidPeriod
	}
	return c.fakePeriodRepo.SetStatus(ctx, id, from, to, processedDate)
}

func TestProcessPeriod_ContestedHandoffReportsNotProcessing(t *testing.T) {
	periodRepo := &contestedPeriodRepo{&fakePeriodRepo{periods: map[string]payroll.PayrollPeriod{}}}
	svc := NewPayrollService(
		config.PayrollDefaults{
			TaxRate:              decimal.RequireFromString("0.15"),
			OvertimeMultiplier:   decimal.RequireFromString("1.5"),
			StandardMonthlyHours: decimal.RequireFromString("160"),
		},
		periodRepo,
		newFakeItemRepo(),
		&fakeCatalogRepo{},
		&fakeSettingsRepo{},
		&fakeEmployeeRepo{employees: map[string]employee.Employee{
			"emp-1": activeEmployee("emp-1", "EN-0001", "5000"),
		}},
		&fakeAttendanceRepo{records: map[string][]attendance.Attendance{}},
		&fakeApprovalRepo{},
		&fakeRecorder{},
	)

	period, err := svc.CreatePeriod(context.Background(), payroll.CreatePeriodRequest{
		StartDate: "2025-06-01",
		EndDate:   "2025-06-30",
	})
	require.NoError(t, err)

	_, err = svc.ProcessPeriod(context.Background(), period.ID)
	assert.ErrorIs(t, err, payroll.ErrPeriodNotProcessing)
}

func TestCreatePeriod_RejectsReversedRange(t *testing.T) {
	f := newFixture(t, map[string]employee.Employee{}, map[string][]attendance.Attendance{}, nil)

	_, err := f.svc.CreatePeriod(context.Background(), payroll.CreatePeriodRequest{
		StartDate: "2025-07-31",
		EndDate:   "2025-07-01",
	})
	assert.Error(t, err)
}

func TestUpdateSetting_RejectsValueBreakingResolution(t *testing.T) {
	f := newFixture(t, map[string]employee.Employee{}, map[string][]attendance.Attendance{}, nil)

	_, err := f.svc.UpdateSetting(context.Background(), payroll.UpdateSettingRequest{
		Key:   payroll.SettingKeyTaxRate,
		Value: "1.5",
	})
	assert.ErrorIs(t, err, payroll.ErrInvalidSetting)

	updated, err := f.svc.UpdateSetting(context.Background(), payroll.UpdateSettingRequest{
		Key:   payroll.SettingKeyTaxRate,
		Value: "0.2",
	})
	require.NoError(t, err)
	assert.Equal(t, "0.2", updated.Value)
}
