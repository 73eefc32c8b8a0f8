package payroll

import "context"

type PayrollService interface {
	// Periods
	CreatePeriod(ctx context.Context, req CreatePeriodRequest) (PeriodResponse, error)
	GetPeriod(ctx context.Context, id string) (PeriodResponse, error)
	ListPeriods(ctx context.Context) ([]PeriodResponse, error)
	// ProcessPeriod computes an item for every active employee without one,
	// then freezes the period. Employees that fail computation are skipped
	// and reported; any successful computation marks the period processed.
	ProcessPeriod(ctx context.Context, periodID string) (ProcessPeriodResponse, error)
	GetPeriodSummary(ctx context.Context, periodID string) (PeriodSummaryResponse, error)

	// Items
	ComputeItem(ctx context.Context, req ComputePayrollItemRequest) (PayrollItemResponse, error)
	GetItem(ctx context.Context, id string) (PayrollItemResponse, error)
	ListItems(ctx context.Context, periodID string) ([]PayrollItemResponse, error)
	FinalizeItems(ctx context.Context, req FinalizeItemsRequest) error

	// Catalogs
	CreateDeductionType(ctx context.Context, req CreateDeductionTypeRequest) (DeductionTypeResponse, error)
	ListDeductionTypes(ctx context.Context, activeOnly bool) ([]DeductionTypeResponse, error)
	UpdateDeductionType(ctx context.Context, req UpdateDeductionTypeRequest) (DeductionTypeResponse, error)
	CreateAllowanceType(ctx context.Context, req CreateAllowanceTypeRequest) (AllowanceTypeResponse, error)
	ListAllowanceTypes(ctx context.Context, activeOnly bool) ([]AllowanceTypeResponse, error)
	UpdateAllowanceType(ctx context.Context, req UpdateAllowanceTypeRequest) (AllowanceTypeResponse, error)

	// Settings
	ListSettings(ctx context.Context) ([]SettingResponse, error)
	UpdateSetting(ctx context.Context, req UpdateSettingRequest) (SettingResponse, error)
}
