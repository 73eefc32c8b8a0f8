package attendance

import (
	"context"
	"time"

	"github.com/workstream-hr/payroll-backend-go/internal/domain/attendance"
	"github.com/workstream-hr/payroll-backend-go/internal/domain/employee"
	"github.com/workstream-hr/payroll-backend-go/internal/pkg/validator"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
	}
}

func (s *AttendanceServiceImpl) CheckIn(ctx context.Context, req attendance.CheckInRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if emp.EmploymentStatus == employee.EmploymentStatusTerminated {
		return attendance.AttendanceResponse{}, employee.ErrEmployeeTerminated
	}

	timeIn, _ := validator.IsValidClockTime(req.TimeIn)
	status := attendance.StatusPresent
	if req.Status != nil {
		status = attendance.Status(*req.Status)
	}

	created, err := s.attendanceRepo.Create(ctx, attendance.Attendance{
		EmployeeID: req.EmployeeID,
		Date:       truncateToDate(timeIn),
		TimeIn:     timeIn.UTC(),
		Status:     status,
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	created.EmployeeName = &emp.FullName

	return toResponse(created), nil
}

func (s *AttendanceServiceImpl) CheckOut(ctx context.Context, req attendance.CheckOutRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	timeOut, _ := validator.IsValidClockTime(req.TimeOut)

	current, err := s.attendanceRepo.GetByID(ctx, req.ID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if timeOut.UTC().Before(current.TimeIn) {
		return attendance.AttendanceResponse{}, attendance.ErrCheckOutBeforeIn
	}

	updated, err := s.attendanceRepo.SetTimeOut(ctx, req.ID, timeOut.UTC())
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	updated.EmployeeName = current.EmployeeName

	return toResponse(updated), nil
}

func (s *AttendanceServiceImpl) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.AttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	start, _ := validator.IsValidDate(filter.StartDate)
	end, _ := validator.IsValidDate(filter.EndDate)

	records, err := s.attendanceRepo.ListByEmployeeAndRange(ctx, filter.EmployeeID, start, end)
	if err != nil {
		return nil, err
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, toResponse(rec))
	}
	return responses, nil
}

func truncateToDate(t time.Time) time.Time {
	utc := t.UTC()
	return time.Date(utc.Year(), utc.Month(), utc.Day(), 0, 0, 0, 0, time.UTC)
}

func toResponse(a attendance.Attendance) attendance.AttendanceResponse {
	resp := attendance.AttendanceResponse{
		ID:           a.ID,
		EmployeeID:   a.EmployeeID,
		EmployeeName: a.EmployeeName,
		Date:         a.Date.Format("2006-01-02"),
		TimeIn:       a.TimeIn.Format(time.RFC3339),
		Status:       string(a.Status),
		WorkedHours:  a.WorkedHours(),
	}
	if a.TimeOut != nil {
		formatted := a.TimeOut.Format(time.RFC3339)
		resp.TimeOut = &formatted
	}
	return resp
}
