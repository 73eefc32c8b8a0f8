package activity

import "time"

// Activity - append-only audit entry. Never mutated or deleted.
type Activity struct {
	ID         string
	ActorID    string
	Action     string
	EntityType string
	EntityID   string
	Detail     string
	CreatedAt  time.Time
}

// Action verbs recorded by the core services.
const (
	ActionComputed  = "computed"
	ActionReplaced  = "replaced"
	ActionProcessed = "processed"
	ActionApproved  = "approved"
	ActionRejected  = "rejected"
	ActionSubmitted = "submitted"
	ActionFinalized = "finalized"
)
