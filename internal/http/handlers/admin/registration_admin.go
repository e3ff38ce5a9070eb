package admin

import (
	"github.com/civeni/civeni-api/internal/http/response"
	"github.com/civeni/civeni-api/internal/repository"
	"github.com/civeni/civeni-api/internal/service"

	"github.com/gin-gonic/gin"
)

// GetAdminRegistrations lists registrations for the back office.
func (h *Handler) GetAdminRegistrations(c *gin.Context) {
	page, pageSize := parsePagination(c)
	filter := repository.RegistrationListFilter{
		Page:           page,
		PageSize:       pageSize,
		EventID:        parseUintQuery(c, "event_id"),
		CategoryID:     parseUintQuery(c, "category_id"),
		Status:         c.Query("status"),
		Email:          c.Query("email"),
		RegistrationNo: c.Query("registration_no"),
		CreatedFrom:    parseDateQuery(c, "from"),
		CreatedTo:      parseDateQuery(c, "to"),
	}

	registrations, total, err := h.RegistrationService.ListAdmin(filter)
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.SuccessWithPage(c, registrations, buildPagination(page, pageSize, total))
}

// GetAdminRegistration returns one registration.
func (h *Handler) GetAdminRegistration(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	registration, err := h.RegistrationService.Get(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, registration)
}

// UpdateRegistrationStatusRequest is the status-change payload.
type UpdateRegistrationStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateRegistrationStatus sets a registration status. Confirming sends the
// confirmation email.
func (h *Handler) UpdateRegistrationStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateRegistrationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	registration, err := h.RegistrationService.UpdateStatus(id, req.Status)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	requestLog(c).Infow("registration_status_updated",
		"registration_id", id,
		"status", registration.Status,
	)
	response.Success(c, registration)
}

// GetAdminCategories lists the registration tiers of an event.
func (h *Handler) GetAdminCategories(c *gin.Context) {
	eventID := parseUintQuery(c, "event_id")
	if eventID == 0 {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	categories, err := h.RegistrationService.ListCategoriesAdmin(eventID)
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.Success(c, categories)
}

// CreateCategoryRequest is the create-tier payload.
type CreateCategoryRequest struct {
	EventID uint `json:"event_id" binding:"required"`
	service.CategoryInput
}

// CreateAdminCategory creates a registration tier.
func (h *Handler) CreateAdminCategory(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	category, err := h.RegistrationService.CreateCategory(req.EventID, req.CategoryInput)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, category)
}

// UpdateAdminCategory updates a registration tier.
func (h *Handler) UpdateAdminCategory(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req service.CategoryInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	category, err := h.RegistrationService.UpdateCategory(id, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, category)
}

// DeleteAdminCategory removes a registration tier.
func (h *Handler) DeleteAdminCategory(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.RegistrationService.DeleteCategory(id); err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, nil)
}
