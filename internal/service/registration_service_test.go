package service

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/civeni/civeni-api/internal/config"
	"github.com/civeni/civeni-api/internal/constants"
	"github.com/civeni/civeni-api/internal/i18n"
	"github.com/civeni/civeni-api/internal/models"
	"github.com/civeni/civeni-api/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const testWebhookSecret = "whsec_test_secret"

func setupRegistrationServiceTest(t *testing.T, apiBaseURL string) (*RegistrationService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Event{}, &models.EventTranslation{}, &models.EventCertificate{}, &models.RegistrationCategory{}, &models.Registration{}); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}

	cfg := &config.Config{}
	cfg.Site.Name = "CIVENI 2025"
	cfg.Stripe.SecretKey = "sk_test_123"
	cfg.Stripe.WebhookSecret = testWebhookSecret
	cfg.Stripe.SuccessURL = "https://civeni.example.com/inscricao/sucesso?session_id={CHECKOUT_SESSION_ID}"
	cfg.Stripe.CancelURL = "https://civeni.example.com/inscricao/cancelada"
	cfg.Stripe.APIBaseURL = apiBaseURL
	cfg.Stripe.WebhookToleranceSeconds = 300
	cfg.Stripe.PaymentMethodTypes = []string{"card"}

	svc := NewRegistrationService(
		cfg,
		repository.NewEventRepository(db),
		repository.NewRegistrationCategoryRepository(db),
		repository.NewRegistrationRepository(db),
		nil,
	)
	return svc, db
}

func seedRegistrationEvent(t *testing.T, db *gorm.DB, price string, isFree bool) (*models.Event, *models.RegistrationCategory) {
	t.Helper()
	event := &models.Event{Slug: "iii-civeni-2025", Status: constants.EventStatusPublished}
	if err := db.Create(event).Error; err != nil {
		t.Fatalf("seed event failed: %v", err)
	}
	amount, err := decimal.NewFromString(price)
	if err != nil {
		t.Fatalf("bad price: %v", err)
	}
	category := &models.RegistrationCategory{
		EventID:   event.ID,
		TitleJSON: models.JSON{"pt-BR": "Participante"},
		Price:     models.NewMoneyFromDecimal(amount),
		Currency:  "BRL",
		IsFree:    isFree,
		IsActive:  true,
	}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("seed category failed: %v", err)
	}
	return event, category
}

func signWebhook(timestamp int64, body []byte) string {
	mac := hmac.New(sha256.New, []byte(testWebhookSecret))
	fmt.Fprintf(mac, "%d.", timestamp)
	mac.Write(body)
	return fmt.Sprintf("t=%d,v1=%s", timestamp, hex.EncodeToString(mac.Sum(nil)))
}

func TestRegisterFreeTierConfirmsImmediately(t *testing.T) {
	svc, db := setupRegistrationServiceTest(t, "http://127.0.0.1:1")
	event, category := seedRegistrationEvent(t, db, "0", true)

	result, err := svc.Register(context.Background(), RegisterInput{
		EventID:    event.ID,
		CategoryID: category.ID,
		Email:      "Maria@Example.com",
		FullName:   "Maria da Silva",
		Locale:     i18n.LocalePT,
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if result.RequiresPayment || result.CheckoutURL != "" {
		t.Fatalf("free tier asked for payment: %+v", result)
	}
	if result.Registration.Status != constants.RegistrationStatusConfirmed {
		t.Fatalf("status = %q", result.Registration.Status)
	}
	if result.Registration.ConfirmedAt == nil {
		t.Fatalf("confirmed_at not set")
	}
	if result.Registration.Email != "maria@example.com" {
		t.Fatalf("email not normalized: %q", result.Registration.Email)
	}
	if !strings.HasPrefix(result.Registration.RegistrationNo, "CIV") {
		t.Fatalf("registration no = %q", result.Registration.RegistrationNo)
	}
}

func TestRegisterPaidTierCreatesCheckoutSession(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		if err := r.ParseForm(); err != nil {
			t.Errorf("parse form: %v", err)
		}
		if r.Form.Get("mode") != "payment" {
			t.Errorf("mode = %q", r.Form.Get("mode"))
		}
		if r.Form.Get("line_items[0][price_data][currency]") != "brl" {
			t.Errorf("currency = %q", r.Form.Get("line_items[0][price_data][currency]"))
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"id":"cs_test_abc","url":"https://checkout.stripe.com/c/pay/cs_test_abc","status":"open"}`)
	}))
	defer server.Close()

	svc, db := setupRegistrationServiceTest(t, server.URL)
	event, category := seedRegistrationEvent(t, db, "150.00", false)

	result, err := svc.Register(context.Background(), RegisterInput{
		EventID:    event.ID,
		CategoryID: category.ID,
		Email:      "joao@example.com",
		FullName:   "João Souza",
		Locale:     i18n.LocalePT,
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if gotPath != "/v1/checkout/sessions" {
		t.Fatalf("stripe path = %q", gotPath)
	}
	if !result.RequiresPayment {
		t.Fatalf("paid tier marked free")
	}
	if result.CheckoutURL != "https://checkout.stripe.com/c/pay/cs_test_abc" {
		t.Fatalf("checkout url = %q", result.CheckoutURL)
	}
	if result.Registration.Status != constants.RegistrationStatusPending {
		t.Fatalf("status = %q", result.Registration.Status)
	}

	var stored models.Registration
	if err := db.First(&stored, result.Registration.ID).Error; err != nil {
		t.Fatalf("load registration failed: %v", err)
	}
	if stored.StripeSessionID != "cs_test_abc" {
		t.Fatalf("session id = %q", stored.StripeSessionID)
	}
}

func TestRegisterRejectsInactiveCategory(t *testing.T) {
	svc, db := setupRegistrationServiceTest(t, "http://127.0.0.1:1")
	event, category := seedRegistrationEvent(t, db, "50.00", false)
	if err := db.Model(category).Update("is_active", false).Error; err != nil {
		t.Fatalf("deactivate category failed: %v", err)
	}

	_, err := svc.Register(context.Background(), RegisterInput{
		EventID:    event.ID,
		CategoryID: category.ID,
		Email:      "ana@example.com",
		FullName:   "Ana Lima",
	})
	if err != ErrCategoryInactive {
		t.Fatalf("err = %v, want ErrCategoryInactive", err)
	}
}

func TestHandleWebhookConfirmsPendingRegistration(t *testing.T) {
	svc, db := setupRegistrationServiceTest(t, "http://127.0.0.1:1")
	event, category := seedRegistrationEvent(t, db, "150.00", false)

	registration := &models.Registration{
		RegistrationNo:  "CIV20250901120000123456",
		EventID:         event.ID,
		CategoryID:      category.ID,
		Email:           "maria@example.com",
		FullName:        "Maria da Silva",
		Status:          constants.RegistrationStatusPending,
		Amount:          category.Price,
		Currency:        "BRL",
		StripeSessionID: "cs_test_abc",
	}
	if err := db.Create(registration).Error; err != nil {
		t.Fatalf("seed registration failed: %v", err)
	}

	payload := map[string]interface{}{
		"id":   "evt_1",
		"type": "checkout.session.completed",
		"data": map[string]interface{}{
			"object": map[string]interface{}{
				"id":             "cs_test_abc",
				"object":         "checkout.session",
				"payment_status": "paid",
				"status":         "complete",
				"amount_total":   json.Number("15000"),
				"currency":       "brl",
				"metadata": map[string]interface{}{
					"registration_id": fmt.Sprintf("%d", registration.ID),
					"registration_no": registration.RegistrationNo,
				},
			},
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload failed: %v", err)
	}

	headers := map[string]string{"Stripe-Signature": signWebhook(time.Now().Unix(), body)}
	result, err := svc.HandleWebhook(headers, body)
	if err != nil {
		t.Fatalf("webhook failed: %v", err)
	}
	if result.Status != constants.PaymentStatusSuccess {
		t.Fatalf("status = %q", result.Status)
	}

	var stored models.Registration
	if err := db.First(&stored, registration.ID).Error; err != nil {
		t.Fatalf("load registration failed: %v", err)
	}
	if stored.Status != constants.RegistrationStatusConfirmed {
		t.Fatalf("registration status = %q", stored.Status)
	}
	if stored.ConfirmedAt == nil {
		t.Fatalf("confirmed_at not set")
	}

	// Replay is harmless.
	if _, err := svc.HandleWebhook(headers, body); err != nil {
		t.Fatalf("webhook replay failed: %v", err)
	}
}

func TestHandleWebhookRejectsBadSignature(t *testing.T) {
	svc, _ := setupRegistrationServiceTest(t, "http://127.0.0.1:1")

	body := []byte(`{"id":"evt_1","type":"checkout.session.completed","data":{"object":{}}}`)
	headers := map[string]string{"Stripe-Signature": fmt.Sprintf("t=%d,v1=deadbeef", time.Now().Unix())}
	if _, err := svc.HandleWebhook(headers, body); err == nil {
		t.Fatalf("bad signature accepted")
	}
}

func TestVerifyBySessionConfirmsPaidSession(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"id":"cs_test_abc","payment_status":"paid","status":"complete","amount_total":15000,"currency":"brl"}`)
	}))
	defer server.Close()

	svc, db := setupRegistrationServiceTest(t, server.URL)
	event, category := seedRegistrationEvent(t, db, "150.00", false)

	registration := &models.Registration{
		RegistrationNo:  "CIV20250901120000654321",
		EventID:         event.ID,
		CategoryID:      category.ID,
		Email:           "maria@example.com",
		FullName:        "Maria da Silva",
		Status:          constants.RegistrationStatusPending,
		Amount:          category.Price,
		Currency:        "BRL",
		StripeSessionID: "cs_test_abc",
	}
	if err := db.Create(registration).Error; err != nil {
		t.Fatalf("seed registration failed: %v", err)
	}

	got, err := svc.VerifyBySession(context.Background(), "cs_test_abc")
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if got.Status != constants.RegistrationStatusConfirmed {
		t.Fatalf("status = %q", got.Status)
	}
}
