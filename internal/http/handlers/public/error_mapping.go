package public

import (
	"errors"

	"github.com/civeni/civeni-api/internal/http/response"
	"github.com/civeni/civeni-api/internal/service"

	"github.com/gin-gonic/gin"
)

// mappedHandlerError maps a business error onto an API error response.
type mappedHandlerError struct {
	target error
	code   int
	key    string
}

func respondWithMappedError(c *gin.Context, err error, rules []mappedHandlerError, fallbackCode int, fallbackKey string) {
	for _, rule := range rules {
		if errors.Is(err, rule.target) {
			respondError(c, rule.code, rule.key, nil)
			return
		}
	}
	respondError(c, fallbackCode, fallbackKey, err)
}

var registrationCreateErrorRules = []mappedHandlerError{
	{target: service.ErrNotFound, code: response.CodeNotFound, key: "error.event_not_found"},
	{target: service.ErrCategoryInactive, code: response.CodeBadRequest, key: "error.category_inactive"},
	{target: service.ErrInvalidEmail, code: response.CodeBadRequest, key: "error.email_invalid"},
	{target: service.ErrInvalidName, code: response.CodeBadRequest, key: "error.name_invalid"},
	{target: service.ErrPaymentNotEnabled, code: response.CodeBadRequest, key: "error.payment_not_enabled"},
}

var workSubmitErrorRules = []mappedHandlerError{
	{target: service.ErrNotFound, code: response.CodeNotFound, key: "error.event_not_found"},
	{target: service.ErrEventNotPublished, code: response.CodeNotFound, key: "error.event_not_found"},
	{target: service.ErrInvalidEmail, code: response.CodeBadRequest, key: "error.email_invalid"},
	{target: service.ErrInvalidName, code: response.CodeBadRequest, key: "error.name_invalid"},
}

func respondRegistrationCreateError(c *gin.Context, err error) {
	respondWithMappedError(c, err, registrationCreateErrorRules, response.CodeInternal, "error.registration_failed")
}

func respondWorkSubmitError(c *gin.Context, err error) {
	respondWithMappedError(c, err, workSubmitErrorRules, response.CodeInternal, "error.work_submit_failed")
}
