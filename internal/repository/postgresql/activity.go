package postgresql

import (
	"context"
	"fmt"

	"github.com/workstream-hr/payroll-backend-go/internal/domain/activity"
	"github.com/workstream-hr/payroll-backend-go/internal/pkg/database"
)

type activityRepository struct {
	db *database.DB
}

func NewActivityRepository(db *database.DB) activity.ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) Create(ctx context.Context, entry activity.Activity) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO activity_logs (actor_id, action, entity_type, entity_id, detail)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := q.Exec(ctx, query, entry.ActorID, entry.Action, entry.EntityType, entry.EntityID, entry.Detail)
	if err != nil {
		return fmt.Errorf("failed to create activity log: %w", err)
	}

	return nil
}

func (r *activityRepository) ListRecent(ctx context.Context, limit int) ([]activity.Activity, error) {
	q := GetQuerier(ctx, r.db)

	if limit <= 0 {
		limit = 50
	}

	query := `
		SELECT id, actor_id, action, entity_type, entity_id, detail, created_at
		FROM activity_logs
		ORDER BY created_at DESC
		LIMIT $1
	`

	rows, err := q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list activity logs: %w", err)
	}
	defer rows.Close()

	var entries []activity.Activity
	for rows.Next() {
		var e activity.Activity
		if err := rows.Scan(&e.ID, &e.ActorID, &e.Action, &e.EntityType, &e.EntityID, &e.Detail, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan activity log: %w", err)
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}
