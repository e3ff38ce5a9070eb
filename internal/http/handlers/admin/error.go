package admin

import (
	"errors"
	"strconv"

	handlershared "github.com/civeni/civeni-api/internal/http/handlers/shared"
	"github.com/civeni/civeni-api/internal/http/response"
	"github.com/civeni/civeni-api/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func requestLog(c *gin.Context) *zap.SugaredLogger {
	return handlershared.RequestLog(c)
}

func respondError(c *gin.Context, code int, key string, err error) {
	handlershared.RespondError(c, code, key, err)
}

// respondServiceError maps the shared business sentinels onto API codes;
// anything unmapped becomes an internal error.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		respondError(c, response.CodeNotFound, "error.not_found", nil)
	case errors.Is(err, service.ErrSlugExists):
		respondError(c, response.CodeBadRequest, "error.slug_exists", nil)
	case errors.Is(err, service.ErrInvalidTranslation):
		respondError(c, response.CodeBadRequest, "error.translation_invalid", nil)
	case errors.Is(err, service.ErrCertificateConfigInvalid):
		respondError(c, response.CodeBadRequest, "error.cert_config_invalid", nil)
	case errors.Is(err, service.ErrInvalidStatus):
		respondError(c, response.CodeBadRequest, "error.status_invalid", nil)
	case errors.Is(err, service.ErrInvalidPostType):
		respondError(c, response.CodeBadRequest, "error.post_type_invalid", nil)
	case errors.Is(err, service.ErrInvalidBanner):
		respondError(c, response.CodeBadRequest, "error.banner_invalid", nil)
	case errors.Is(err, service.ErrInvalidPrice):
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
	case errors.Is(err, service.ErrFinanceRangeInvalid):
		respondError(c, response.CodeBadRequest, "error.finance_range_invalid", nil)
	case errors.Is(err, service.ErrInvalidPassword):
		respondError(c, response.CodeBadRequest, "error.password_invalid", nil)
	default:
		respondError(c, response.CodeInternal, "error.internal", err)
	}
}

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	value, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || value == 0 {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return 0, false
	}
	return uint(value), true
}
