package handlers

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	domain "github.com/facturio/invoice-price-alerts/pkg/types"
)

// JobsProvider defines the store methods required by the jobs handler.
type JobsProvider interface {
	ListLatestJobRuns(ctx context.Context) ([]domain.JobRun, error)
}

// JobsHandler handles scheduler job history requests.
type JobsHandler struct {
	store JobsProvider
}

// NewJobsHandler creates a new JobsHandler.
func NewJobsHandler(s JobsProvider) *JobsHandler {
	return &JobsHandler{store: s}
}

// List handles GET /api/v1/jobs.
//
// @Summary List latest scheduler job runs
// @Description Returns the most recent run record for each distinct scheduled job.
// @Tags scheduler
// @Produce json
// @Success 200 {array} domain.JobRun
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/jobs [get]
func (h *JobsHandler) List(c echo.Context) error {
	runs, err := h.store.ListLatestJobRuns(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "listing jobs: " + err.Error(),
		})
	}

	if runs == nil {
		runs = []domain.JobRun{}
	}

	return c.JSON(http.StatusOK, runs)
}
