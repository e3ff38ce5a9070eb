package admin

import (
	"github.com/civeni/civeni-api/internal/http/response"
	"github.com/civeni/civeni-api/internal/repository"

	"github.com/gin-gonic/gin"
)

// GetIssuedCertificates lists issued certificates for the back office.
func (h *Handler) GetIssuedCertificates(c *gin.Context) {
	page, pageSize := parsePagination(c)
	filter := repository.IssuedCertificateListFilter{
		Page:        page,
		PageSize:    pageSize,
		EventID:     parseUintQuery(c, "event_id"),
		Email:       c.Query("email"),
		Code:        c.Query("code"),
		CreatedFrom: parseDateQuery(c, "from"),
		CreatedTo:   parseDateQuery(c, "to"),
	}

	certificates, total, err := h.IssuedCertificateRepo.List(filter)
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.SuccessWithPage(c, certificates, buildPagination(page, pageSize, total))
}

// GetCertificateAttempts lists keyword-challenge attempts, the raw material
// behind the per-email rate limit.
func (h *Handler) GetCertificateAttempts(c *gin.Context) {
	page, pageSize := parsePagination(c)
	filter := repository.CertificateAttemptListFilter{
		Page:        page,
		PageSize:    pageSize,
		EventID:     parseUintQuery(c, "event_id"),
		Email:       c.Query("email"),
		CreatedFrom: parseDateQuery(c, "from"),
		CreatedTo:   parseDateQuery(c, "to"),
	}
	if raw := c.Query("succeeded"); raw != "" {
		succeeded := raw == "true"
		filter.Succeeded = &succeeded
	}

	attempts, total, err := h.CertificateAttemptRepo.List(filter)
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.SuccessWithPage(c, attempts, buildPagination(page, pageSize, total))
}
