package approval

import "errors"

var (
	ErrApprovalNotFound = errors.New("approval not found")
	ErrInvalidPayload   = errors.New("approval payload does not match its type")
	ErrAlreadyProcessed = errors.New("approval already processed")
	ErrMissingReason    = errors.New("rejection reason is required")
	ErrInvalidType      = errors.New("invalid approval type")
)
