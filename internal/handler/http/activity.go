package http

import (
	"net/http"
	"strconv"

	"github.com/workstream-hr/payroll-backend-go/internal/domain/activity"
	"github.com/workstream-hr/payroll-backend-go/internal/handler/http/response"
)

type ActivityHandler interface {
	ListRecent(w http.ResponseWriter, r *http.Request)
}

type activityHandlerImpl struct {
	activityService activity.ActivityService
}

func NewActivityHandler(activityService activity.ActivityService) ActivityHandler {
	return &activityHandlerImpl{activityService: activityService}
}

func (h *activityHandlerImpl) ListRecent(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if l, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && l > 0 {
		limit = l
	}

	results, err := h.activityService.ListRecent(r.Context(), limit)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}
