package employee

import (
	"context"

	"github.com/workstream-hr/payroll-backend-go/internal/domain/department"
	"github.com/workstream-hr/payroll-backend-go/internal/domain/employee"
	"github.com/workstream-hr/payroll-backend-go/internal/pkg/validator"
)

type EmployeeServiceImpl struct {
	employeeRepo   employee.EmployeeRepository
	departmentRepo department.DepartmentRepository
}

func NewEmployeeService(
	employeeRepo employee.EmployeeRepository,
	departmentRepo department.DepartmentRepository,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		employeeRepo:   employeeRepo,
		departmentRepo: departmentRepo,
	}
}

func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	dept, err := s.departmentRepo.GetByID(ctx, req.DepartmentID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	hireDate, _ := validator.IsValidDate(req.HireDate)

	created, err := s.employeeRepo.Create(ctx, employee.Employee{
		DepartmentID:          req.DepartmentID,
		EmployeeCode:          req.EmployeeCode,
		FullName:              req.FullName,
		Email:                 req.Email,
		EmploymentStatus:      employee.EmploymentStatusActive,
		BasicSalary:           req.BasicSalary,
		HourlyRate:            req.HourlyRate,
		HireDate:              hireDate,
		BankName:              req.BankName,
		BankAccountNumber:     req.BankAccountNumber,
		BankAccountHolderName: req.BankAccountHolderName,
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	created.EmploymentStatus = employee.EmploymentStatusActive
	created.DepartmentName = &dept.Name

	return toResponse(created), nil
}

func (s *EmployeeServiceImpl) GetByID(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return toResponse(emp), nil
}

func (s *EmployeeServiceImpl) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.EmployeeResponse, int64, error) {
	employees, total, err := s.employeeRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, toResponse(emp))
	}
	return responses, total, nil
}

func (s *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.DepartmentID != nil {
		if _, err := s.departmentRepo.GetByID(ctx, *req.DepartmentID); err != nil {
			return employee.EmployeeResponse{}, err
		}
	}

	if err := s.employeeRepo.Update(ctx, req); err != nil {
		return employee.EmployeeResponse{}, err
	}

	return s.GetByID(ctx, req.ID)
}

func (s *EmployeeServiceImpl) ChangeStatus(ctx context.Context, req employee.ChangeStatusRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if err := s.employeeRepo.SetStatus(ctx, req.ID, employee.EmploymentStatus(req.Status)); err != nil {
		return employee.EmployeeResponse{}, err
	}

	return s.GetByID(ctx, req.ID)
}

func toResponse(e employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:                    e.ID,
		DepartmentID:          e.DepartmentID,
		DepartmentName:        e.DepartmentName,
		EmployeeCode:          e.EmployeeCode,
		FullName:              e.FullName,
		Email:                 e.Email,
		EmploymentStatus:      string(e.EmploymentStatus),
		BasicSalary:           e.BasicSalary,
		HourlyRate:            e.HourlyRate,
		HireDate:              e.HireDate.Format("2006-01-02"),
		BankName:              e.BankName,
		BankAccountNumber:     e.BankAccountNumber,
		BankAccountHolderName: e.BankAccountHolderName,
	}
}
