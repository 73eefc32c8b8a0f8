package activity

import "context"

type ActivityRepository interface {
	Create(ctx context.Context, entry Activity) error
	ListRecent(ctx context.Context, limit int) ([]Activity, error)
}
