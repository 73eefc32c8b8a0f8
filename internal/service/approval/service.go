package approval

import (
	"context"
	"fmt"

	"github.com/go-chi/jwtauth/v5"

	"github.com/workstream-hr/payroll-backend-go/internal/domain/activity"
	"github.com/workstream-hr/payroll-backend-go/internal/domain/approval"
	"github.com/workstream-hr/payroll-backend-go/internal/domain/employee"
	"github.com/workstream-hr/payroll-backend-go/internal/pkg/validator"
)

type ApprovalServiceImpl struct {
	approvalRepo approval.ApprovalRepository
	employeeRepo employee.EmployeeRepository
	recorder     activity.Recorder
}

func NewApprovalService(
	approvalRepo approval.ApprovalRepository,
	employeeRepo employee.EmployeeRepository,
	recorder activity.Recorder,
) approval.ApprovalService {
	return &ApprovalServiceImpl{
		approvalRepo: approvalRepo,
		employeeRepo: employeeRepo,
		recorder:     recorder,
	}
}

func (s *ApprovalServiceImpl) Submit(ctx context.Context, req approval.SubmitApprovalRequest) (approval.ApprovalResponse, error) {
	switch approval.Type(req.Type) {
	case approval.TypeOvertime, approval.TypeLeave, approval.TypeReimbursement:
	default:
		return approval.ApprovalResponse{}, approval.ErrInvalidType
	}
	if err := req.Validate(); err != nil {
		return approval.ApprovalResponse{}, fmt.Errorf("%w: %w", approval.ErrInvalidPayload, err)
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return approval.ApprovalResponse{}, err
	}
	if emp.EmploymentStatus == employee.EmploymentStatusTerminated {
		return approval.ApprovalResponse{}, employee.ErrEmployeeTerminated
	}

	entity := approval.Approval{
		EmployeeID: req.EmployeeID,
		Type:       approval.Type(req.Type),
		Hours:      req.Hours,
		Amount:     req.Amount,
		Notes:      req.Notes,
	}
	if req.StartDate != nil {
		start, _ := validator.IsValidDate(*req.StartDate)
		entity.StartDate = &start
	}
	if req.EndDate != nil {
		end, _ := validator.IsValidDate(*req.EndDate)
		entity.EndDate = &end
	}

	created, err := s.approvalRepo.Create(ctx, entity)
	if err != nil {
		return approval.ApprovalResponse{}, err
	}
	created.EmployeeName = &emp.FullName

	s.recorder.Record(ctx, activity.ActionSubmitted, "approval", created.ID,
		fmt.Sprintf("%s request by %s", created.Type, emp.EmployeeCode))

	return toResponse(created), nil
}

func (s *ApprovalServiceImpl) GetByID(ctx context.Context, id string) (approval.ApprovalResponse, error) {
	a, err := s.approvalRepo.GetByID(ctx, id)
	if err != nil {
		return approval.ApprovalResponse{}, err
	}
	return toResponse(a), nil
}

func (s *ApprovalServiceImpl) List(ctx context.Context, filter approval.ApprovalFilter) ([]approval.ApprovalResponse, error) {
	approvals, err := s.approvalRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]approval.ApprovalResponse, 0, len(approvals))
	for _, a := range approvals {
		responses = append(responses, toResponse(a))
	}
	return responses, nil
}

func (s *ApprovalServiceImpl) Approve(ctx context.Context, id string) (approval.ApprovalResponse, error) {
	decided, err := s.approvalRepo.Transition(ctx, id, approval.StatusApproved, decidedByFromContext(ctx), nil)
	if err != nil {
		return approval.ApprovalResponse{}, err
	}

	s.recorder.Record(ctx, activity.ActionApproved, "approval", decided.ID, string(decided.Type))

	return toResponse(decided), nil
}

func (s *ApprovalServiceImpl) Reject(ctx context.Context, req approval.RejectApprovalRequest) (approval.ApprovalResponse, error) {
	if req.Reason == "" {
		return approval.ApprovalResponse{}, approval.ErrMissingReason
	}

	decided, err := s.approvalRepo.Transition(ctx, req.ID, approval.StatusRejected, decidedByFromContext(ctx), &req.Reason)
	if err != nil {
		return approval.ApprovalResponse{}, err
	}

	s.recorder.Record(ctx, activity.ActionRejected, "approval", decided.ID,
		fmt.Sprintf("%s: %s", decided.Type, req.Reason))

	return toResponse(decided), nil
}

func decidedByFromContext(ctx context.Context) string {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "system"
	}
	if userID, ok := claims["user_id"].(string); ok && userID != "" {
		return userID
	}
	return "system"
}

func toResponse(a approval.Approval) approval.ApprovalResponse {
	resp := approval.ApprovalResponse{
		ID:             a.ID,
		EmployeeID:     a.EmployeeID,
		EmployeeName:   a.EmployeeName,
		Type:           string(a.Type),
		Status:         string(a.Status),
		Hours:          a.Hours,
		Amount:         a.Amount,
		Notes:          a.Notes,
		RejectedReason: a.RejectedReason,
		DecidedBy:      a.DecidedBy,
	}
	if a.StartDate != nil {
		formatted := a.StartDate.Format("2006-01-02")
		resp.StartDate = &formatted
	}
	if a.EndDate != nil {
		formatted := a.EndDate.Format("2006-01-02")
		resp.EndDate = &formatted
	}
	if a.DecidedAt != nil {
		formatted := a.DecidedAt.Format("2006-01-02T15:04:05Z07:00")
		resp.DecidedAt = &formatted
	}
	return resp
}
