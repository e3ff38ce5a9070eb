package stripe

import (
	"encoding/json"
	"testing"
	"time"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg := NewConfig(Config{
		SecretKey:     " sk_test_123 ",
		WebhookSecret: " whsec_123 ",
		SuccessURL:    "https://civeni.example.com/inscricao/sucesso?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:     "https://civeni.example.com/inscricao/cancelado",
	})
	if cfg.SecretKey != "sk_test_123" {
		t.Fatalf("unexpected secret key: %s", cfg.SecretKey)
	}
	if cfg.APIBaseURL != defaultAPIBaseURL {
		t.Fatalf("unexpected default api base url: %s", cfg.APIBaseURL)
	}
	if len(cfg.PaymentMethodTypes) != 1 || cfg.PaymentMethodTypes[0] != "card" {
		t.Fatalf("unexpected payment method types: %v", cfg.PaymentMethodTypes)
	}
	if err := ValidateConfig(cfg); err != nil {
		t.Fatalf("validate config failed: %v", err)
	}
}

func TestVerifyAndParseWebhookCheckoutCompleted(t *testing.T) {
	now := time.Unix(1760000000, 0)
	cfg := &Config{
		WebhookSecret:           "whsec_test_abc",
		WebhookToleranceSeconds: 300,
	}
	payload := map[string]interface{}{
		"id":   "evt_test_1",
		"type": "checkout.session.completed",
		"data": map[string]interface{}{
			"object": map[string]interface{}{
				"object":         "checkout.session",
				"id":             "cs_test_123",
				"payment_status": "paid",
				"currency":       "brl",
				"amount_total":   15000,
				"created":        now.Unix(),
				"metadata": map[string]interface{}{
					"registration_id": "42",
					"registration_no": "CIV-2025-000042",
				},
			},
		},
	}
	body, _ := json.Marshal(payload)
	sig := computeSignature(cfg.WebhookSecret, now.Unix(), body)
	headers := map[string]string{
		"Stripe-Signature": "t=1760000000,v1=" + sig,
	}

	result, err := VerifyAndParseWebhook(cfg, headers, body, now)
	if err != nil {
		t.Fatalf("verify and parse webhook failed: %v", err)
	}
	if result.EventType != "checkout.session.completed" {
		t.Fatalf("unexpected event type: %s", result.EventType)
	}
	if result.RegistrationID != 42 {
		t.Fatalf("unexpected registration id: %d", result.RegistrationID)
	}
	if result.RegistrationNo != "CIV-2025-000042" {
		t.Fatalf("unexpected registration no: %s", result.RegistrationNo)
	}
	if result.ProviderRef != "cs_test_123" {
		t.Fatalf("unexpected provider ref: %s", result.ProviderRef)
	}
	if result.Status != "success" {
		t.Fatalf("unexpected status: %s", result.Status)
	}
	if result.Amount != "150.00" {
		t.Fatalf("unexpected amount: %s", result.Amount)
	}
}

func TestVerifyAndParseWebhookInvalidSignature(t *testing.T) {
	now := time.Unix(1760000000, 0)
	cfg := &Config{
		WebhookSecret:           "whsec_test_abc",
		WebhookToleranceSeconds: 300,
	}
	payload := map[string]interface{}{
		"id":   "evt_test_1",
		"type": "checkout.session.completed",
		"data": map[string]interface{}{
			"object": map[string]interface{}{
				"object": "checkout.session",
				"id":     "cs_test_123",
			},
		},
	}
	body, _ := json.Marshal(payload)
	headers := map[string]string{
		"Stripe-Signature": "t=1760000000,v1=invalid-signature",
	}

	_, err := VerifyAndParseWebhook(cfg, headers, body, now)
	if err == nil {
		t.Fatalf("expected verify error")
	}
}

func TestVerifyAndParseWebhookTimestampTolerance(t *testing.T) {
	now := time.Unix(1760000000, 0)
	cfg := &Config{
		WebhookSecret:           "whsec_test_abc",
		WebhookToleranceSeconds: 300,
	}
	body := []byte(`{"id":"evt_1","type":"checkout.session.completed","data":{"object":{"object":"checkout.session","id":"cs_1"}}}`)
	old := now.Add(-time.Hour)
	sig := computeSignature(cfg.WebhookSecret, old.Unix(), body)
	headers := map[string]string{
		"Stripe-Signature": "t=" + jsonNumber(old.Unix()) + ",v1=" + sig,
	}

	if _, err := VerifyAndParseWebhook(cfg, headers, body, now); err == nil {
		t.Fatalf("expected tolerance error")
	}
}

func jsonNumber(v int64) string {
	b, _ := json.Marshal(v)
	return string(b)
}

func TestMapPaymentIntentStatus(t *testing.T) {
	if got := mapPaymentIntentStatus("succeeded"); got != "success" {
		t.Fatalf("expected success, got %s", got)
	}
	if got := mapPaymentIntentStatus("processing"); got != "pending" {
		t.Fatalf("expected pending, got %s", got)
	}
	if got := mapPaymentIntentStatus("canceled"); got != "failed" {
		t.Fatalf("expected failed, got %s", got)
	}
}

func TestToMinorAmountBRL(t *testing.T) {
	minor, err := toMinorAmount("150.00", "BRL")
	if err != nil {
		t.Fatalf("toMinorAmount error: %v", err)
	}
	if minor != 15000 {
		t.Fatalf("expected 15000, got %d", minor)
	}
}
