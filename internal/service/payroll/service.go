package payroll

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/workstream-hr/payroll-backend-go/internal/config"
	"github.com/workstream-hr/payroll-backend-go/internal/domain/activity"
	"github.com/workstream-hr/payroll-backend-go/internal/domain/approval"
	"github.com/workstream-hr/payroll-backend-go/internal/domain/attendance"
	"github.com/workstream-hr/payroll-backend-go/internal/domain/employee"
	"github.com/workstream-hr/payroll-backend-go/internal/domain/payroll"
	"github.com/workstream-hr/payroll-backend-go/internal/pkg/validator"
)

type PayrollServiceImpl struct {
	defaults       config.PayrollDefaults
	periodRepo     payroll.PeriodRepository
	itemRepo       payroll.ItemRepository
	catalogRepo    payroll.CatalogRepository
	settingsRepo   payroll.SettingsRepository
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
	approvalRepo   approval.ApprovalRepository
	recorder       activity.Recorder
}

func NewPayrollService(
	defaults config.PayrollDefaults,
	periodRepo payroll.PeriodRepository,
	itemRepo payroll.ItemRepository,
	catalogRepo payroll.CatalogRepository,
	settingsRepo payroll.SettingsRepository,
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	approvalRepo approval.ApprovalRepository,
	recorder activity.Recorder,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		defaults:       defaults,
		periodRepo:     periodRepo,
		itemRepo:       itemRepo,
		catalogRepo:    catalogRepo,
		settingsRepo:   settingsRepo,
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		approvalRepo:   approvalRepo,
		recorder:       recorder,
	}
}

// ========== PERIODS ==========

func (s *PayrollServiceImpl) CreatePeriod(ctx context.Context, req payroll.CreatePeriodRequest) (payroll.PeriodResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PeriodResponse{}, err
	}

	start, _ := validator.IsValidDate(req.StartDate)
	end, _ := validator.IsValidDate(req.EndDate)

	period, err := s.periodRepo.Create(ctx, payroll.PayrollPeriod{
		StartDate: start,
		EndDate:   end,
	})
	if err != nil {
		return payroll.PeriodResponse{}, err
	}

	return toPeriodResponse(period), nil
}

func (s *PayrollServiceImpl) GetPeriod(ctx context.Context, id string) (payroll.PeriodResponse, error) {
	period, err := s.periodRepo.GetByID(ctx, id)
	if err != nil {
		return payroll.PeriodResponse{}, err
	}
	return toPeriodResponse(period), nil
}

func (s *PayrollServiceImpl) ListPeriods(ctx context.Context) ([]payroll.PeriodResponse, error) {
	periods, err := s.periodRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]payroll.PeriodResponse, 0, len(periods))
	for _, p := range periods {
		responses = append(responses, toPeriodResponse(p))
	}
	return responses, nil
}

func (s *PayrollServiceImpl) ProcessPeriod(ctx context.Context, periodID string) (payroll.ProcessPeriodResponse, error) {
	period, err := s.periodRepo.GetByID(ctx, periodID)
	if err != nil {
		return payroll.ProcessPeriodResponse{}, err
	}

	switch period.Status {
	case payroll.PeriodStatusProcessed:
		return payroll.ProcessPeriodResponse{}, payroll.ErrPeriodProcessed
	case payroll.PeriodStatusDraft:
		if err := s.periodRepo.SetStatus(ctx, periodID, payroll.PeriodStatusDraft, payroll.PeriodStatusProcessing, nil); err != nil {
			return payroll.ProcessPeriodResponse{}, err
		}
	case payroll.PeriodStatusProcessing:
		// A previous run was interrupted; resume it.
	}

	snapshot, err := s.loadSnapshot(ctx)
	if err != nil {
		return payroll.ProcessPeriodResponse{}, err
	}

	employees, err := s.employeeRepo.ListActive(ctx)
	if err != nil {
		return payroll.ProcessPeriodResponse{}, err
	}

	existing, err := s.itemRepo.ListByPeriod(ctx, periodID)
	if err != nil {
		return payroll.ProcessPeriodResponse{}, err
	}
	covered := make(map[string]bool, len(existing))
	for _, item := range existing {
		covered[item.EmployeeID] = true
	}

	response := payroll.ProcessPeriodResponse{PayrollPeriodID: periodID}
	for _, emp := range employees {
		if covered[emp.ID] {
			continue
		}

		item, err := s.computeAndStore(ctx, period, emp, payroll.ComputePayrollItemRequest{}, snapshot)
		if err != nil {
			// One bad employee record must not sink the batch.
			response.Skipped = append(response.Skipped, payroll.SkippedEmployee{
				EmployeeID:   emp.ID,
				EmployeeCode: emp.EmployeeCode,
				Reason:       err.Error(),
			})
			continue
		}
		response.Computed = append(response.Computed, item)
	}

	if len(response.Computed)+len(existing) > 0 {
		now := time.Now().UTC()
		if err := s.periodRepo.SetStatus(ctx, periodID, payroll.PeriodStatusProcessing, payroll.PeriodStatusProcessed, &now); err != nil {
			if errors.Is(err, payroll.ErrInvalidPeriod) {
				// Someone else moved the period while the batch ran.
				return payroll.ProcessPeriodResponse{}, payroll.ErrPeriodNotProcessing
			}
			return payroll.ProcessPeriodResponse{}, err
		}
		s.recorder.Record(ctx, activity.ActionProcessed, "payroll_period", periodID,
			fmt.Sprintf("computed %d items, skipped %d", len(response.Computed), len(response.Skipped)))
	} else {
		// Nothing computed at all; hand the period back for another attempt.
		if err := s.periodRepo.SetStatus(ctx, periodID, payroll.PeriodStatusProcessing, payroll.PeriodStatusDraft, nil); err != nil {
			if errors.Is(err, payroll.ErrInvalidPeriod) {
				return payroll.ProcessPeriodResponse{}, payroll.ErrPeriodNotProcessing
			}
			return payroll.ProcessPeriodResponse{}, err
		}
	}

	return response, nil
}

func (s *PayrollServiceImpl) GetPeriodSummary(ctx context.Context, periodID string) (payroll.PeriodSummaryResponse, error) {
	if _, err := s.periodRepo.GetByID(ctx, periodID); err != nil {
		return payroll.PeriodSummaryResponse{}, err
	}
	return s.itemRepo.GetPeriodSummary(ctx, periodID)
}

// ========== ITEMS ==========

func (s *PayrollServiceImpl) ComputeItem(ctx context.Context, req payroll.ComputePayrollItemRequest) (payroll.PayrollItemResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollItemResponse{}, err
	}

	period, err := s.periodRepo.GetByID(ctx, req.PayrollPeriodID)
	if err != nil {
		return payroll.PayrollItemResponse{}, err
	}
	if period.Status == payroll.PeriodStatusProcessed {
		return payroll.PayrollItemResponse{}, payroll.ErrPeriodProcessed
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return payroll.PayrollItemResponse{}, err
	}
	if emp.EmploymentStatus == employee.EmploymentStatusTerminated {
		return payroll.PayrollItemResponse{}, employee.ErrEmployeeTerminated
	}

	snapshot, err := s.loadSnapshot(ctx)
	if err != nil {
		return payroll.PayrollItemResponse{}, err
	}

	action := activity.ActionComputed
	if req.Replace {
		existing, err := s.itemRepo.GetByPeriodAndEmployee(ctx, req.PayrollPeriodID, req.EmployeeID)
		switch {
		case err == nil:
			if existing.Status == payroll.ItemStatusPaid {
				return payroll.PayrollItemResponse{}, payroll.ErrPayrollItemPaid
			}
			if err := s.itemRepo.DeleteWithLines(ctx, existing.ID); err != nil {
				return payroll.PayrollItemResponse{}, err
			}
			action = activity.ActionReplaced
		case errors.Is(err, payroll.ErrPayrollItemNotFound):
			// Nothing to replace; fall through to a plain computation.
		default:
			return payroll.PayrollItemResponse{}, err
		}
	}

	item, err := s.computeAndStore(ctx, period, emp, req, snapshot)
	if err != nil {
		return payroll.PayrollItemResponse{}, err
	}

	s.recorder.Record(ctx, action, "payroll_item", item.ID,
		fmt.Sprintf("employee %s, net pay %s", emp.EmployeeCode, item.NetPay))

	return item, nil
}

func (s *PayrollServiceImpl) GetItem(ctx context.Context, id string) (payroll.PayrollItemResponse, error) {
	item, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		return payroll.PayrollItemResponse{}, err
	}
	return s.toItemResponseWithLines(ctx, item)
}

func (s *PayrollServiceImpl) ListItems(ctx context.Context, periodID string) ([]payroll.PayrollItemResponse, error) {
	if _, err := s.periodRepo.GetByID(ctx, periodID); err != nil {
		return nil, err
	}

	items, err := s.itemRepo.ListByPeriod(ctx, periodID)
	if err != nil {
		return nil, err
	}

	responses := make([]payroll.PayrollItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, toItemResponse(item))
	}
	return responses, nil
}

func (s *PayrollServiceImpl) FinalizeItems(ctx context.Context, req payroll.FinalizeItemsRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	target := payroll.ItemStatus(req.Status)
	for _, id := range req.ItemIDs {
		item, err := s.itemRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		// pending -> approved -> paid, one step at a time.
		switch target {
		case payroll.ItemStatusApproved:
			if item.Status != payroll.ItemStatusPending {
				return fmt.Errorf("%w: item %s is %s, expected pending", payroll.ErrInvalidInput, id, item.Status)
			}
		case payroll.ItemStatusPaid:
			if item.Status != payroll.ItemStatusApproved {
				return fmt.Errorf("%w: item %s is %s, expected approved", payroll.ErrInvalidInput, id, item.Status)
			}
		}
	}

	if err := s.itemRepo.SetStatus(ctx, req.ItemIDs, target); err != nil {
		return err
	}

	for _, id := range req.ItemIDs {
		s.recorder.Record(ctx, activity.ActionFinalized, "payroll_item", id, string(target))
	}

	return nil
}

// ========== COMPUTATION ==========

// computationSnapshot bundles everything resolved once per computation so the
// engine never observes a half-updated catalog or setting.
type computationSnapshot struct {
	settings       payroll.ComputationSettings
	deductionTypes []payroll.DeductionType
	allowanceTypes []payroll.AllowanceType
}

func (s *PayrollServiceImpl) loadSnapshot(ctx context.Context) (computationSnapshot, error) {
	rows, err := s.settingsRepo.ListSettings(ctx)
	if err != nil {
		return computationSnapshot{}, err
	}

	settings, err := payroll.ResolveSettings(payroll.ComputationSettings{
		TaxRate:              s.defaults.TaxRate,
		OvertimeMultiplier:   s.defaults.OvertimeMultiplier,
		StandardMonthlyHours: s.defaults.StandardMonthlyHours,
	}, rows)
	if err != nil {
		return computationSnapshot{}, err
	}

	deductionTypes, err := s.catalogRepo.ListDeductionTypes(ctx, true)
	if err != nil {
		return computationSnapshot{}, err
	}
	allowanceTypes, err := s.catalogRepo.ListAllowanceTypes(ctx, true)
	if err != nil {
		return computationSnapshot{}, err
	}

	return computationSnapshot{
		settings:       settings,
		deductionTypes: deductionTypes,
		allowanceTypes: allowanceTypes,
	}, nil
}

func (s *PayrollServiceImpl) computeAndStore(
	ctx context.Context,
	period payroll.PayrollPeriod,
	emp employee.Employee,
	req payroll.ComputePayrollItemRequest,
	snapshot computationSnapshot,
) (payroll.PayrollItemResponse, error) {
	hoursWorked, err := s.resolveHours(ctx, emp, period, req.HoursWorked)
	if err != nil {
		return payroll.PayrollItemResponse{}, err
	}

	overtimeHours := decimal.Zero
	if req.OvertimeHours != nil {
		overtimeHours = *req.OvertimeHours
	} else {
		overtimeHours, err = s.approvalRepo.SumApprovedOvertimeHours(ctx, emp.ID, period.StartDate, period.EndDate)
		if err != nil {
			return payroll.PayrollItemResponse{}, err
		}
	}

	otherDeductions := decimal.Zero
	if req.OtherDeductions != nil {
		otherDeductions = *req.OtherDeductions
	}

	draft, err := ComputeDraft(EngineInput{
		Employee:        emp,
		HoursWorked:     hoursWorked,
		OvertimeHours:   overtimeHours,
		OtherDeductions: otherDeductions,
		AdHocAllowances: req.AdHocAllowances,
		DeductionTypes:  snapshot.deductionTypes,
		AllowanceTypes:  snapshot.allowanceTypes,
		Settings:        snapshot.settings,
	})
	if err != nil {
		return payroll.PayrollItemResponse{}, err
	}

	item, err := s.itemRepo.CreateWithLines(ctx, payroll.PayrollItem{
		PayrollPeriodID: period.ID,
		EmployeeID:      emp.ID,
		BasicSalary:     draft.BasicSalary,
		HoursWorked:     draft.HoursWorked,
		OvertimeHours:   draft.OvertimeHours,
		OvertimeAmount:  draft.OvertimeAmount,
		GrossPay:        draft.GrossPay,
		TaxAmount:       draft.TaxAmount,
		OtherDeductions: draft.OtherDeductions,
		NetPay:          draft.NetPay,
	}, draft.Deductions, draft.Allowances)
	if err != nil {
		return payroll.PayrollItemResponse{}, err
	}
	item.EmployeeName = &emp.FullName
	item.EmployeeCode = &emp.EmployeeCode

	return s.toItemResponseWithLines(ctx, item)
}

// resolveHours derives worked hours from attendance unless an override is
// given. Salaried employees without attendance-driven pay just get zero; the
// engine ignores hours for them anyway.
func (s *PayrollServiceImpl) resolveHours(ctx context.Context, emp employee.Employee, period payroll.PayrollPeriod, override *decimal.Decimal) (decimal.Decimal, error) {
	if override != nil {
		return *override, nil
	}

	records, err := s.attendanceRepo.ListByEmployeeAndRange(ctx, emp.ID, period.StartDate, period.EndDate)
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, rec := range records {
		if worked := rec.WorkedHours(); worked != nil {
			total = total.Add(*worked)
		}
	}
	return total, nil
}

// ========== CATALOGS ==========

func (s *PayrollServiceImpl) CreateDeductionType(ctx context.Context, req payroll.CreateDeductionTypeRequest) (payroll.DeductionTypeResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.DeductionTypeResponse{}, err
	}

	dt, err := s.catalogRepo.CreateDeductionType(ctx, payroll.DeductionType{
		Name:         req.Name,
		IsPercentage: req.IsPercentage,
		DefaultValue: req.DefaultValue,
		IsRequired:   req.IsRequired,
		IsTax:        req.IsTax,
	})
	if err != nil {
		return payroll.DeductionTypeResponse{}, err
	}

	return toDeductionTypeResponse(dt), nil
}

func (s *PayrollServiceImpl) ListDeductionTypes(ctx context.Context, activeOnly bool) ([]payroll.DeductionTypeResponse, error) {
	types, err := s.catalogRepo.ListDeductionTypes(ctx, activeOnly)
	if err != nil {
		return nil, err
	}

	responses := make([]payroll.DeductionTypeResponse, 0, len(types))
	for _, dt := range types {
		responses = append(responses, toDeductionTypeResponse(dt))
	}
	return responses, nil
}

func (s *PayrollServiceImpl) UpdateDeductionType(ctx context.Context, req payroll.UpdateDeductionTypeRequest) (payroll.DeductionTypeResponse, error) {
	if req.DefaultValue != nil && req.DefaultValue.IsNegative() {
		return payroll.DeductionTypeResponse{}, validator.ValidationErrors{
			{Field: "default_value", Message: "must be non-negative"},
		}
	}

	if err := s.catalogRepo.UpdateDeductionType(ctx, req); err != nil {
		return payroll.DeductionTypeResponse{}, err
	}

	dt, err := s.catalogRepo.GetDeductionType(ctx, req.ID)
	if err != nil {
		return payroll.DeductionTypeResponse{}, err
	}
	return toDeductionTypeResponse(dt), nil
}

func (s *PayrollServiceImpl) CreateAllowanceType(ctx context.Context, req payroll.CreateAllowanceTypeRequest) (payroll.AllowanceTypeResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.AllowanceTypeResponse{}, err
	}

	at, err := s.catalogRepo.CreateAllowanceType(ctx, payroll.AllowanceType{
		Name:         req.Name,
		IsPercentage: req.IsPercentage,
		DefaultValue: req.DefaultValue,
		IsRequired:   req.IsRequired,
		IsTaxable:    req.IsTaxable,
	})
	if err != nil {
		return payroll.AllowanceTypeResponse{}, err
	}

	return toAllowanceTypeResponse(at), nil
}

func (s *PayrollServiceImpl) ListAllowanceTypes(ctx context.Context, activeOnly bool) ([]payroll.AllowanceTypeResponse, error) {
	types, err := s.catalogRepo.ListAllowanceTypes(ctx, activeOnly)
	if err != nil {
		return nil, err
	}

	responses := make([]payroll.AllowanceTypeResponse, 0, len(types))
	for _, at := range types {
		responses = append(responses, toAllowanceTypeResponse(at))
	}
	return responses, nil
}

func (s *PayrollServiceImpl) UpdateAllowanceType(ctx context.Context, req payroll.UpdateAllowanceTypeRequest) (payroll.AllowanceTypeResponse, error) {
	if req.DefaultValue != nil && req.DefaultValue.IsNegative() {
		return payroll.AllowanceTypeResponse{}, validator.ValidationErrors{
			{Field: "default_value", Message: "must be non-negative"},
		}
	}

	if err := s.catalogRepo.UpdateAllowanceType(ctx, req); err != nil {
		return payroll.AllowanceTypeResponse{}, err
	}

	at, err := s.catalogRepo.GetAllowanceType(ctx, req.ID)
	if err != nil {
		return payroll.AllowanceTypeResponse{}, err
	}
	return toAllowanceTypeResponse(at), nil
}

// ========== SETTINGS ==========

func (s *PayrollServiceImpl) ListSettings(ctx context.Context) ([]payroll.SettingResponse, error) {
	rows, err := s.settingsRepo.ListSettings(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]payroll.SettingResponse, 0, len(rows))
	for _, row := range rows {
		responses = append(responses, payroll.SettingResponse{Key: row.Key, Value: row.Value})
	}
	return responses, nil
}

func (s *PayrollServiceImpl) UpdateSetting(ctx context.Context, req payroll.UpdateSettingRequest) (payroll.SettingResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.SettingResponse{}, err
	}

	// Reject values that would make the next computation unresolvable.
	current, err := s.settingsRepo.ListSettings(ctx)
	if err != nil {
		return payroll.SettingResponse{}, err
	}
	proposed := append(current, payroll.Setting{Key: req.Key, Value: req.Value})
	if _, err := payroll.ResolveSettings(payroll.ComputationSettings{
		TaxRate:              s.defaults.TaxRate,
		OvertimeMultiplier:   s.defaults.OvertimeMultiplier,
		StandardMonthlyHours: s.defaults.StandardMonthlyHours,
	}, proposed); err != nil {
		return payroll.SettingResponse{}, err
	}

	setting, err := s.settingsRepo.UpsertSetting(ctx, req.Key, req.Value)
	if err != nil {
		return payroll.SettingResponse{}, err
	}

	return payroll.SettingResponse{Key: setting.Key, Value: setting.Value}, nil
}

// ========== RESPONSE MAPPING ==========

func toPeriodResponse(p payroll.PayrollPeriod) payroll.PeriodResponse {
	resp := payroll.PeriodResponse{
		ID:        p.ID,
		StartDate: p.StartDate.Format("2006-01-02"),
		EndDate:   p.EndDate.Format("2006-01-02"),
		Status:    string(p.Status),
	}
	if p.ProcessedDate != nil {
		formatted := p.ProcessedDate.Format("2006-01-02")
		resp.ProcessedDate = &formatted
	}
	return resp
}

func toItemResponse(item payroll.PayrollItem) payroll.PayrollItemResponse {
	resp := payroll.PayrollItemResponse{
		ID:              item.ID,
		PayrollPeriodID: item.PayrollPeriodID,
		EmployeeID:      item.EmployeeID,
		BasicSalary:     item.BasicSalary,
		HoursWorked:     item.HoursWorked,
		OvertimeHours:   item.OvertimeHours,
		OvertimeAmount:  item.OvertimeAmount,
		GrossPay:        item.GrossPay,
		TaxAmount:       item.TaxAmount,
		OtherDeductions: item.OtherDeductions,
		NetPay:          item.NetPay,
		Status:          string(item.Status),
	}
	if item.EmployeeName != nil {
		resp.EmployeeName = *item.EmployeeName
	}
	if item.EmployeeCode != nil {
		resp.EmployeeCode = *item.EmployeeCode
	}
	return resp
}

func (s *PayrollServiceImpl) toItemResponseWithLines(ctx context.Context, item payroll.PayrollItem) (payroll.PayrollItemResponse, error) {
	resp := toItemResponse(item)

	deductions, err := s.itemRepo.ListDeductions(ctx, item.ID)
	if err != nil {
		return payroll.PayrollItemResponse{}, err
	}
	for _, d := range deductions {
		resp.Deductions = append(resp.Deductions, payroll.DeductionLineResponse{
			ID:              d.ID,
			DeductionTypeID: d.DeductionTypeID,
			Name:            d.Name,
			Amount:          d.Amount,
			IsTax:           d.IsTax,
		})
	}

	allowances, err := s.itemRepo.ListAllowances(ctx, item.ID)
	if err != nil {
		return payroll.PayrollItemResponse{}, err
	}
	for _, a := range allowances {
		resp.Allowances = append(resp.Allowances, payroll.AllowanceLineResponse{
			ID:              a.ID,
			AllowanceTypeID: a.AllowanceTypeID,
			Name:            a.Name,
			Amount:          a.Amount,
			IsTaxable:       a.IsTaxable,
		})
	}

	return resp, nil
}

func toDeductionTypeResponse(dt payroll.DeductionType) payroll.DeductionTypeResponse {
	return payroll.DeductionTypeResponse{
		ID:           dt.ID,
		Name:         dt.Name,
		IsPercentage: dt.IsPercentage,
		DefaultValue: dt.DefaultValue,
		IsRequired:   dt.IsRequired,
		IsTax:        dt.IsTax,
		IsActive:     dt.IsActive,
	}
}

func toAllowanceTypeResponse(at payroll.AllowanceType) payroll.AllowanceTypeResponse {
	return payroll.AllowanceTypeResponse{
		ID:           at.ID,
		Name:         at.Name,
		IsPercentage: at.IsPercentage,
		DefaultValue: at.DefaultValue,
		IsRequired:   at.IsRequired,
		IsTaxable:    at.IsTaxable,
		IsActive:     at.IsActive,
	}
}
