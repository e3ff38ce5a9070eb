package admin

import (
	"github.com/civeni/civeni-api/internal/http/response"
	"github.com/civeni/civeni-api/internal/repository"

	"github.com/gin-gonic/gin"
)

// GetAdminWorks lists work submissions for the back office.
func (h *Handler) GetAdminWorks(c *gin.Context) {
	page, pageSize := parsePagination(c)
	filter := repository.WorkListFilter{
		Page:         page,
		PageSize:     pageSize,
		EventID:      parseUintQuery(c, "event_id"),
		Status:       c.Query("status"),
		ThematicArea: c.Query("thematic_area"),
		Search:       c.Query("search"),
		CreatedFrom:  parseDateQuery(c, "from"),
		CreatedTo:    parseDateQuery(c, "to"),
	}

	works, total, err := h.WorkService.ListAdmin(filter)
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.SuccessWithPage(c, works, buildPagination(page, pageSize, total))
}

// GetAdminWork returns one work submission.
func (h *Handler) GetAdminWork(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	work, err := h.WorkService.Get(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, work)
}

// UpdateWorkStatusRequest is the review payload.
type UpdateWorkStatusRequest struct {
	Status     string `json:"status" binding:"required"`
	ReviewNote string `json:"review_note"`
}

// UpdateWorkStatus moves a submission through the review pipeline.
func (h *Handler) UpdateWorkStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateWorkStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	work, err := h.WorkService.UpdateStatus(id, req.Status, req.ReviewNote)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	requestLog(c).Infow("work_status_updated", "work_id", id, "status", work.Status)
	response.Success(c, work)
}
