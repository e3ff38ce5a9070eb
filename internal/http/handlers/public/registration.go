package public

import (
	"io"
	"strings"

	"github.com/civeni/civeni-api/internal/http/response"
	"github.com/civeni/civeni-api/internal/i18n"
	"github.com/civeni/civeni-api/internal/service"

	"github.com/gin-gonic/gin"
)

// CreateRegistration registers a participant for an event. Free tiers are
// confirmed immediately; paid tiers return a Stripe Checkout URL.
func (h *Handler) CreateRegistration(c *gin.Context) {
	var req service.RegisterInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	req.Locale = i18n.ResolveLocale(c)
	req.ClientIP = c.ClientIP()

	result, err := h.RegistrationService.Register(c.Request.Context(), req)
	if err != nil {
		respondRegistrationCreateError(c, err)
		return
	}
	requestLog(c).Infow("registration_created",
		"event_id", req.EventID,
		"category_id", req.CategoryID,
		"registration_no", result.Registration.RegistrationNo,
		"requires_payment", result.RequiresPayment,
	)
	response.Success(c, result)
}

// VerifyRegistrationSession re-checks a Stripe Checkout session after the
// participant returns from the payment page. Safe to call repeatedly.
func (h *Handler) VerifyRegistrationSession(c *gin.Context) {
	sessionID := strings.TrimSpace(c.Query("session_id"))
	if sessionID == "" {
		var body struct {
			SessionID string `json:"session_id"`
		}
		if err := c.ShouldBindJSON(&body); err == nil {
			sessionID = strings.TrimSpace(body.SessionID)
		}
	}
	if sessionID == "" {
		respondError(c, response.CodeBadRequest, "error.session_missing", nil)
		return
	}

	registration, err := h.RegistrationService.VerifyBySession(c.Request.Context(), sessionID)
	if err != nil {
		respondError(c, response.CodeInternal, "error.payment_gateway_failed", err)
		return
	}
	if registration == nil {
		respondError(c, response.CodeNotFound, "error.registration_not_found", nil)
		return
	}
	response.Success(c, registration)
}

// StripeWebhook receives Stripe event notifications. Signature failures get
// a non-200 so Stripe retries; unmatched registrations are acknowledged.
func (h *Handler) StripeWebhook(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.webhook_invalid", err)
		return
	}
	headers := map[string]string{
		"Stripe-Signature": c.GetHeader("Stripe-Signature"),
	}

	result, err := h.RegistrationService.HandleWebhook(headers, body)
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.webhook_invalid", err)
		return
	}
	requestLog(c).Infow("stripe_webhook_processed",
		"event_type", result.EventType,
		"session_id", result.SessionID,
	)
	response.Success(c, gin.H{"received": true})
}
