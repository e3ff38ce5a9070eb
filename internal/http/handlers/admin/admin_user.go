package admin

import (
	"errors"

	"github.com/civeni/civeni-api/internal/cache"
	"github.com/civeni/civeni-api/internal/http/response"
	"github.com/civeni/civeni-api/internal/service"

	"github.com/gin-gonic/gin"
)

// GetAdminUsers lists back-office administrators with their roles.
func (h *Handler) GetAdminUsers(c *gin.Context) {
	admins, total, err := h.AdminService.List()
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}

	items := make([]gin.H, 0, len(admins))
	for _, admin := range admins {
		roles, roleErr := h.AuthzService.GetAdminRoles(admin.ID)
		if roleErr != nil {
			respondError(c, response.CodeInternal, "error.internal", roleErr)
			return
		}
		items = append(items, gin.H{
			"id":            admin.ID,
			"username":      admin.Username,
			"is_super":      admin.IsSuper,
			"last_login_at": admin.LastLoginAt,
			"created_at":    admin.CreatedAt,
			"roles":         roles,
		})
	}
	response.Success(c, gin.H{"items": items, "total": total})
}

// CreateAdminUserRequest is the create-administrator payload.
type CreateAdminUserRequest struct {
	Username string   `json:"username" binding:"required"`
	Password string   `json:"password" binding:"required"`
	IsSuper  bool     `json:"is_super"`
	Roles    []string `json:"roles"`
}

// CreateAdminUser creates an administrator and assigns its roles.
func (h *Handler) CreateAdminUser(c *gin.Context) {
	var req CreateAdminUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	admin, err := h.AdminService.Create(req.Username, req.Password, req.IsSuper)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if len(req.Roles) > 0 {
		if err := h.AuthzService.SetAdminRoles(admin.ID, req.Roles); err != nil {
			respondError(c, response.CodeBadRequest, "error.role_invalid", err)
			return
		}
	}
	requestLog(c).Infow("admin_user_created",
		"operator_admin_id", currentAdminID(c),
		"admin_id", admin.ID,
		"username", admin.Username,
	)
	response.Success(c, gin.H{
		"id":       admin.ID,
		"username": admin.Username,
		"is_super": admin.IsSuper,
	})
}

// ResetAdminPasswordRequest is the reset-password payload.
type ResetAdminPasswordRequest struct {
	NewPassword string `json:"new_password" binding:"required"`
}

// ResetAdminPassword sets a new password for an administrator and revokes
// their existing tokens.
func (h *Handler) ResetAdminPassword(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req ResetAdminPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	if err := h.AdminService.ResetPassword(id, req.NewPassword); err != nil {
		respondServiceError(c, err)
		return
	}
	_ = cache.DelAdminAuthState(c.Request.Context(), id)
	requestLog(c).Infow("admin_password_reset",
		"operator_admin_id", currentAdminID(c),
		"admin_id", id,
	)
	response.Success(c, nil)
}

// DeleteAdminUser removes a non-super administrator and their role
// assignments.
func (h *Handler) DeleteAdminUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.AdminService.Delete(id); err != nil {
		if errors.Is(err, service.ErrAdminProtected) {
			respondError(c, response.CodeBadRequest, "error.admin_protected", nil)
			return
		}
		respondServiceError(c, err)
		return
	}
	if err := h.AuthzService.SetAdminRoles(id, nil); err != nil {
		requestLog(c).Warnw("admin_roles_cleanup_failed", "admin_id", id, "error", err)
	}
	_ = cache.DelAdminAuthState(c.Request.Context(), id)
	requestLog(c).Infow("admin_user_deleted",
		"operator_admin_id", currentAdminID(c),
		"admin_id", id,
	)
	response.Success(c, nil)
}
