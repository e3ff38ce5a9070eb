package public

import (
	"strconv"

	handlershared "github.com/civeni/civeni-api/internal/http/handlers/shared"
	"github.com/civeni/civeni-api/internal/http/response"

	"github.com/gin-gonic/gin"
)

// GetPublicPosts lists published posts, newest first.
func (h *Handler) GetPublicPosts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = handlershared.NormalizePagination(page, pageSize)

	posts, total, err := h.PostService.ListPublic(c.Query("type"), page, pageSize)
	if err != nil {
		respondError(c, response.CodeInternal, "error.post_fetch_failed", err)
		return
	}
	response.SuccessWithPage(c, posts, buildPagination(page, pageSize, total))
}

// GetPublicPost returns one published post by slug.
func (h *Handler) GetPublicPost(c *gin.Context) {
	post, err := h.PostService.GetPublicBySlug(c.Param("slug"))
	if err != nil {
		respondError(c, response.CodeInternal, "error.post_fetch_failed", err)
		return
	}
	if post == nil {
		respondError(c, response.CodeNotFound, "error.post_not_found", nil)
		return
	}
	response.Success(c, post)
}
