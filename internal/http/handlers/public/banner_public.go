package public

import (
	"strconv"

	"github.com/civeni/civeni-api/internal/constants"
	"github.com/civeni/civeni-api/internal/http/response"

	"github.com/gin-gonic/gin"
)

// GetPublicBanners lists the banners currently valid for a position.
func (h *Handler) GetPublicBanners(c *gin.Context) {
	position := c.DefaultQuery("position", constants.BannerPositionHomeHero)
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if limit <= 0 {
		limit = 10
	}
	if limit > 50 {
		limit = 50
	}

	banners, err := h.BannerService.ListPublic(position, limit)
	if err != nil {
		respondError(c, response.CodeInternal, "error.banner_fetch_failed", err)
		return
	}
	response.Success(c, banners)
}
