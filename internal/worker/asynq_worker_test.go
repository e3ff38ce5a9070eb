package worker

import (
	"errors"
	"testing"

	"github.com/civeni/civeni-api/internal/models"
	"github.com/civeni/civeni-api/internal/service"
)

func TestEventTitleForEmailNilEvent(t *testing.T) {
	if got := eventTitleForEmail(nil, "pt-BR"); got != "Evento CIVENI" {
		t.Fatalf("expected fallback name for nil event, got %q", got)
	}
}

func TestEventTitleForEmailLocaleMatch(t *testing.T) {
	event := &models.Event{
		Slug: "iii-civeni-2025",
		Translations: []models.EventTranslation{
			{Locale: "pt-BR", Title: "III CIVENI 2025"},
			{Locale: "en-US", Title: "3rd CIVENI 2025"},
		},
	}

	if got := eventTitleForEmail(event, "en"); got != "3rd CIVENI 2025" {
		t.Fatalf("unexpected title for en locale, got %q", got)
	}
	if got := eventTitleForEmail(event, "tr-TR"); got != "III CIVENI 2025" {
		t.Fatalf("expected Portuguese fallback, got %q", got)
	}
}

func TestEventTitleForEmailFallsBackToSlug(t *testing.T) {
	event := &models.Event{
		Slug: "iii-civeni-2025",
		Translations: []models.EventTranslation{
			{Locale: "en-US", Title: "   "},
		},
	}

	if got := eventTitleForEmail(event, "en-US"); got != "iii-civeni-2025" {
		t.Fatalf("expected slug fallback, got %q", got)
	}
}

func TestSkipEmailError(t *testing.T) {
	for _, err := range []error{
		service.ErrEmailServiceDisabled,
		service.ErrEmailServiceNotConfigured,
		service.ErrInvalidEmail,
		service.ErrEmailRecipientRejected,
	} {
		if !skipEmailError(err) {
			t.Fatalf("expected %v to be skipped", err)
		}
	}
	if skipEmailError(errors.New("smtp timeout")) {
		t.Fatalf("transient errors must not be skipped")
	}
}
