package public

import (
	"strconv"

	handlershared "github.com/civeni/civeni-api/internal/http/handlers/shared"
	"github.com/civeni/civeni-api/internal/http/response"

	"github.com/gin-gonic/gin"
)

// GetPublicEvents lists published events.
func (h *Handler) GetPublicEvents(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = handlershared.NormalizePagination(page, pageSize)
	featuredOnly := c.Query("featured") == "true"

	events, total, err := h.EventService.ListPublic(featuredOnly, page, pageSize)
	if err != nil {
		respondError(c, response.CodeInternal, "error.event_fetch_failed", err)
		return
	}
	response.SuccessWithPage(c, events, buildPagination(page, pageSize, total))
}

// GetPublicEvent returns one published event by slug, with translations and
// registration tiers.
func (h *Handler) GetPublicEvent(c *gin.Context) {
	event, err := h.EventService.GetPublicBySlug(c.Param("slug"))
	if err != nil {
		respondError(c, response.CodeInternal, "error.event_fetch_failed", err)
		return
	}
	if event == nil {
		respondError(c, response.CodeNotFound, "error.event_not_found", nil)
		return
	}
	response.Success(c, event)
}

// GetPublicCategories lists the active registration tiers of a published
// event.
func (h *Handler) GetPublicCategories(c *gin.Context) {
	event, err := h.EventService.GetPublicBySlug(c.Param("slug"))
	if err != nil {
		respondError(c, response.CodeInternal, "error.event_fetch_failed", err)
		return
	}
	if event == nil {
		respondError(c, response.CodeNotFound, "error.event_not_found", nil)
		return
	}

	categories, err := h.RegistrationService.ListPublicCategories(event.ID)
	if err != nil {
		respondRegistrationCreateError(c, err)
		return
	}
	response.Success(c, categories)
}

func buildPagination(page, pageSize int, total int64) response.Pagination {
	totalPage := total / int64(pageSize)
	if total%int64(pageSize) != 0 {
		totalPage++
	}
	return response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: totalPage,
	}
}
