package approval

import "context"

type ApprovalService interface {
	Submit(ctx context.Context, req SubmitApprovalRequest) (ApprovalResponse, error)
	GetByID(ctx context.Context, id string) (ApprovalResponse, error)
	List(ctx context.Context, filter ApprovalFilter) ([]ApprovalResponse, error)
	// Approve and Reject move a pending request to its terminal state. They
	// fail with ErrAlreadyProcessed once the request has been decided.
	Approve(ctx context.Context, id string) (ApprovalResponse, error)
	Reject(ctx context.Context, req RejectApprovalRequest) (ApprovalResponse, error)
}
