package activity

import "context"

// Recorder persists audit entries. Recording is best-effort: implementations
// log failures instead of propagating them, so an audit problem never rolls
// back the business operation it describes.
type Recorder interface {
	Record(ctx context.Context, action, entityType, entityID, detail string)
}

type ActivityService interface {
	Recorder
	ListRecent(ctx context.Context, limit int) ([]ActivityResponse, error)
}
