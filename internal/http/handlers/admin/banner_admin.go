package admin

import (
	"github.com/civeni/civeni-api/internal/http/response"
	"github.com/civeni/civeni-api/internal/service"

	"github.com/gin-gonic/gin"
)

// GetAdminBanners lists banners for the back office.
func (h *Handler) GetAdminBanners(c *gin.Context) {
	page, pageSize := parsePagination(c)
	var isActive *bool
	if raw := c.Query("is_active"); raw != "" {
		active := raw == "true"
		isActive = &active
	}

	banners, total, err := h.BannerService.ListAdmin(c.Query("position"), c.Query("search"), isActive, page, pageSize)
	if err != nil {
		respondError(c, response.CodeInternal, "error.banner_fetch_failed", err)
		return
	}
	response.SuccessWithPage(c, banners, buildPagination(page, pageSize, total))
}

// GetAdminBanner returns one banner.
func (h *Handler) GetAdminBanner(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	banner, err := h.BannerService.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, banner)
}

// CreateAdminBanner creates a banner.
func (h *Handler) CreateAdminBanner(c *gin.Context) {
	var req service.BannerInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	banner, err := h.BannerService.Create(req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, banner)
}

// UpdateAdminBanner updates a banner.
func (h *Handler) UpdateAdminBanner(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req service.BannerInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	banner, err := h.BannerService.Update(id, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, banner)
}

// DeleteAdminBanner removes a banner.
func (h *Handler) DeleteAdminBanner(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.BannerService.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, nil)
}
