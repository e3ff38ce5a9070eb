package admin

import (
	"github.com/civeni/civeni-api/internal/http/response"
	"github.com/civeni/civeni-api/internal/service"

	"github.com/gin-gonic/gin"
)

// GetAdminEvents lists events for the back office.
func (h *Handler) GetAdminEvents(c *gin.Context) {
	page, pageSize := parsePagination(c)

	events, total, err := h.EventService.ListAdmin(c.Query("status"), c.Query("search"), page, pageSize)
	if err != nil {
		respondError(c, response.CodeInternal, "error.event_fetch_failed", err)
		return
	}
	response.SuccessWithPage(c, events, buildPagination(page, pageSize, total))
}

// GetAdminEvent returns one event with translations and tiers.
func (h *Handler) GetAdminEvent(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	event, err := h.EventService.GetAdmin(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, event)
}

// CreateEvent creates an event.
func (h *Handler) CreateEvent(c *gin.Context) {
	var req service.EventInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	event, err := h.EventService.Create(req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	requestLog(c).Infow("event_created", "event_id", event.ID, "slug", event.Slug)
	response.Success(c, event)
}

// UpdateEvent updates an event.
func (h *Handler) UpdateEvent(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req service.EventInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	event, err := h.EventService.Update(id, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, event)
}

// DeleteEvent removes an event.
func (h *Handler) DeleteEvent(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.EventService.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	requestLog(c).Infow("event_deleted", "event_id", id)
	response.Success(c, nil)
}

// SaveEventTranslation creates or replaces one locale of an event.
func (h *Handler) SaveEventTranslation(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req service.TranslationInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	translation, err := h.EventService.SaveTranslation(id, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, translation)
}

// DeleteEventTranslation removes one locale of an event.
func (h *Handler) DeleteEventTranslation(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.EventService.DeleteTranslation(id, c.Param("locale")); err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, nil)
}

// GetEventCertificateConfig returns the certificate settings of an event.
func (h *Handler) GetEventCertificateConfig(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	cfg, err := h.EventService.GetCertificateConfig(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, cfg)
}

// SaveEventCertificateConfig creates or updates the certificate settings of
// an event, keywords included.
func (h *Handler) SaveEventCertificateConfig(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req service.CertificateConfigInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	cfg, err := h.EventService.SaveCertificateConfig(id, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	requestLog(c).Infow("certificate_config_saved", "event_id", id, "enabled", cfg.IsEnabled)
	response.Success(c, cfg)
}
