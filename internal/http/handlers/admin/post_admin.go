package admin

import (
	"github.com/civeni/civeni-api/internal/http/response"
	"github.com/civeni/civeni-api/internal/service"

	"github.com/gin-gonic/gin"
)

// GetAdminPosts lists posts for the back office.
func (h *Handler) GetAdminPosts(c *gin.Context) {
	page, pageSize := parsePagination(c)

	posts, total, err := h.PostService.ListAdmin(c.Query("type"), c.Query("search"), page, pageSize)
	if err != nil {
		respondError(c, response.CodeInternal, "error.post_fetch_failed", err)
		return
	}
	response.SuccessWithPage(c, posts, buildPagination(page, pageSize, total))
}

// CreateAdminPost creates a post.
func (h *Handler) CreateAdminPost(c *gin.Context) {
	var req service.PostInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	post, err := h.PostService.Create(req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	requestLog(c).Infow("post_created", "post_id", post.ID, "slug", post.Slug)
	response.Success(c, post)
}

// UpdateAdminPost updates a post.
func (h *Handler) UpdateAdminPost(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req service.PostInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	post, err := h.PostService.Update(id, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, post)
}

// DeleteAdminPost removes a post.
func (h *Handler) DeleteAdminPost(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.PostService.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, nil)
}
