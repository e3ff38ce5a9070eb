package public

import (
	"github.com/civeni/civeni-api/internal/http/response"
	"github.com/civeni/civeni-api/internal/i18n"
	"github.com/civeni/civeni-api/internal/service"

	"github.com/gin-gonic/gin"
)

// IssueCertificate issues (or re-issues) a participant certificate after
// the keyword challenge. Business failures come back as success=false with
// a localized message.
func (h *Handler) IssueCertificate(c *gin.Context) {
	var req service.IssueInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	req.ClientIP = c.ClientIP()

	result, err := h.CertificateService.Issue(req, i18n.ResolveLocale(c))
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	if result.Success {
		requestLog(c).Infow("certificate_issued",
			"event_id", req.EventID,
			"code", result.Code,
			"already_issued", result.AlreadyIssued,
		)
	}
	response.Success(c, result)
}

// VerifyCertificate checks a verification code and, when the exact code is
// unknown, suggests the closest confusable-character variant.
func (h *Handler) VerifyCertificate(c *gin.Context) {
	code := c.Param("code")
	if code == "" {
		code = c.Query("code")
	}

	result, err := h.CertificateService.Verify(code, i18n.ResolveLocale(c))
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.Success(c, result)
}
