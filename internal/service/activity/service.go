package activity

import (
	"context"
	"log/slog"

	"github.com/go-chi/jwtauth/v5"

	"github.com/workstream-hr/payroll-backend-go/internal/domain/activity"
)

type ActivityServiceImpl struct {
	activityRepo activity.ActivityRepository
}

func NewActivityService(activityRepo activity.ActivityRepository) activity.ActivityService {
	return &ActivityServiceImpl{activityRepo: activityRepo}
}

// Record writes an audit entry. Failures are logged and swallowed: the audit
// trail is best-effort and must never fail the operation it describes.
func (s *ActivityServiceImpl) Record(ctx context.Context, action, entityType, entityID, detail string) {
	entry := activity.Activity{
		ActorID:    actorFromContext(ctx),
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Detail:     detail,
	}

	if err := s.activityRepo.Create(ctx, entry); err != nil {
		slog.Error("failed to record activity",
			"action", action,
			"entity_type", entityType,
			"entity_id", entityID,
			"error", err)
	}
}

func (s *ActivityServiceImpl) ListRecent(ctx context.Context, limit int) ([]activity.ActivityResponse, error) {
	entries, err := s.activityRepo.ListRecent(ctx, limit)
	if err != nil {
		return nil, err
	}

	responses := make([]activity.ActivityResponse, 0, len(entries))
	for _, e := range entries {
		responses = append(responses, activity.ActivityResponse{
			ID:         e.ID,
			ActorID:    e.ActorID,
			Action:     e.Action,
			EntityType: e.EntityType,
			EntityID:   e.EntityID,
			Detail:     e.Detail,
			CreatedAt:  e.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		})
	}
	return responses, nil
}

// actorFromContext pulls the authenticated user from the JWT claims. Batch
// jobs and unauthenticated paths fall back to "system".
func actorFromContext(ctx context.Context) string {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "system"
	}
	if userID, ok := claims["user_id"].(string); ok && userID != "" {
		return userID
	}
	return "system"
}
