package service

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/civeni/civeni-api/internal/constants"
	"github.com/civeni/civeni-api/internal/i18n"
	"github.com/civeni/civeni-api/internal/models"
	"github.com/civeni/civeni-api/internal/repository"
	"github.com/civeni/civeni-api/internal/storage"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupCertificateServiceTest(t *testing.T) (*CertificateService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Event{}, &models.EventTranslation{}, &models.EventCertificate{},
		&models.CertificateAttempt{}, &models.IssuedCertificate{},
	); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}

	store := storage.New(t.TempDir(), "http://localhost:8080/uploads")
	svc := NewCertificateService(
		repository.NewEventRepository(db),
		repository.NewEventCertificateRepository(db),
		repository.NewIssuedCertificateRepository(db),
		repository.NewCertificateAttemptRepository(db),
		store,
		nil,
	)
	return svc, db
}

func seedCertificateEvent(t *testing.T, db *gorm.DB, keywords []string, required int) *models.Event {
	t.Helper()
	event := &models.Event{Slug: "iii-civeni-2025", Status: constants.EventStatusPublished}
	if err := db.Create(event).Error; err != nil {
		t.Fatalf("seed event failed: %v", err)
	}
	tr := &models.EventTranslation{EventID: event.ID, Locale: i18n.LocalePT, Title: "III CIVENI 2025"}
	if err := db.Create(tr).Error; err != nil {
		t.Fatalf("seed translation failed: %v", err)
	}
	cfg := &models.EventCertificate{
		EventID:         event.ID,
		IsEnabled:       true,
		Keywords:        models.StringArray(keywords),
		RequiredCorrect: required,
		Language:        "pt-BR",
		City:            "São Paulo",
		Country:         "Brasil",
		Hours:           20,
	}
	if err := db.Create(cfg).Error; err != nil {
		t.Fatalf("seed certificate config failed: %v", err)
	}
	return event
}

func TestIssueHappyPath(t *testing.T) {
	svc, db := setupCertificateServiceTest(t)
	event := seedCertificateEvent(t, db, []string{"Educação", "Tecnologia", "Inovação"}, 3)

	result, err := svc.Issue(IssueInput{
		EventID:  event.ID,
		Email:    "Maria@Example.com",
		FullName: "  Maria da Silva  ",
		Keywords: []string{"educacao", "tecnologia", "inovacao"},
	}, i18n.LocalePT)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	if !result.Success {
		t.Fatalf("expected success, got message %q", result.Message)
	}
	if result.AlreadyIssued {
		t.Fatalf("first issuance flagged as already issued")
	}
	if len(result.Code) != constants.CertificateCodeLength {
		t.Fatalf("code length = %d, want %d", len(result.Code), constants.CertificateCodeLength)
	}
	if result.Email != "maria@example.com" {
		t.Fatalf("email not normalized: %q", result.Email)
	}
	if result.FullName != "Maria da Silva" {
		t.Fatalf("name not trimmed: %q", result.FullName)
	}
	if !strings.Contains(result.PDFURL, fmt.Sprintf("certificates/%d/%s.pdf", event.ID, result.Code)) {
		t.Fatalf("unexpected pdf url %q", result.PDFURL)
	}
	if result.EventName != "III CIVENI 2025" {
		t.Fatalf("event name = %q", result.EventName)
	}

	var attempt models.CertificateAttempt
	if err := db.First(&attempt).Error; err != nil {
		t.Fatalf("attempt not recorded: %v", err)
	}
	if !attempt.Succeeded || attempt.Matched != 3 {
		t.Fatalf("attempt = %+v", attempt)
	}
}

func TestIssueKeywordMismatchRecordsAttempt(t *testing.T) {
	svc, db := setupCertificateServiceTest(t)
	event := seedCertificateEvent(t, db, []string{"Educação", "Tecnologia", "Inovação"}, 3)

	result, err := svc.Issue(IssueInput{
		EventID:  event.ID,
		Email:    "joao@example.com",
		FullName: "João Souza",
		Keywords: []string{"educacao", "errada", "outra"},
	}, i18n.LocalePT)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	if result.Success {
		t.Fatalf("mismatch accepted")
	}
	if result.Matched != 1 {
		t.Fatalf("matched = %d, want 1", result.Matched)
	}
	if !strings.Contains(result.Message, "1/3") {
		t.Fatalf("message = %q", result.Message)
	}

	var count int64
	if err := db.Model(&models.CertificateAttempt{}).Where("succeeded = ?", false).Count(&count).Error; err != nil {
		t.Fatalf("count attempts failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("failed attempts = %d, want 1", count)
	}

	var issued int64
	if err := db.Model(&models.IssuedCertificate{}).Count(&issued).Error; err != nil {
		t.Fatalf("count issued failed: %v", err)
	}
	if issued != 0 {
		t.Fatalf("certificate issued despite mismatch")
	}
}

func TestIssueRateLimitPerEmail(t *testing.T) {
	svc, db := setupCertificateServiceTest(t)
	event := seedCertificateEvent(t, db, []string{"Educação", "Tecnologia", "Inovação"}, 3)

	for i := 0; i < constants.CertificateAttemptMax; i++ {
		attempt := &models.CertificateAttempt{EventID: event.ID, Email: "ana@example.com", Matched: 0}
		if err := db.Create(attempt).Error; err != nil {
			t.Fatalf("seed attempt failed: %v", err)
		}
	}

	result, err := svc.Issue(IssueInput{
		EventID:  event.ID,
		Email:    "ana@example.com",
		FullName: "Ana Lima",
		Keywords: []string{"educacao", "tecnologia", "inovacao"},
	}, i18n.LocalePT)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	if result.Success {
		t.Fatalf("rate limit not applied")
	}
	if result.Message != i18n.T(i18n.LocalePT, "cert.too_many_attempts") {
		t.Fatalf("message = %q", result.Message)
	}
}

func TestIssueRateLimitIgnoresOldAttempts(t *testing.T) {
	svc, db := setupCertificateServiceTest(t)
	event := seedCertificateEvent(t, db, []string{"Educação", "Tecnologia", "Inovação"}, 3)

	old := time.Now().Add(-2 * time.Hour)
	for i := 0; i < constants.CertificateAttemptMax; i++ {
		attempt := &models.CertificateAttempt{EventID: event.ID, Email: "ana@example.com"}
		if err := db.Create(attempt).Error; err != nil {
			t.Fatalf("seed attempt failed: %v", err)
		}
		if err := db.Model(attempt).UpdateColumn("created_at", old).Error; err != nil {
			t.Fatalf("backdate attempt failed: %v", err)
		}
	}

	result, err := svc.Issue(IssueInput{
		EventID:  event.ID,
		Email:    "ana@example.com",
		FullName: "Ana Lima",
		Keywords: []string{"educacao", "tecnologia", "inovacao"},
	}, i18n.LocalePT)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	if !result.Success {
		t.Fatalf("old attempts still counted: %q", result.Message)
	}
}

func TestIssueIdempotentKeepsCodeAndDate(t *testing.T) {
	svc, db := setupCertificateServiceTest(t)
	event := seedCertificateEvent(t, db, []string{"Educação", "Tecnologia", "Inovação"}, 3)

	input := IssueInput{
		EventID:  event.ID,
		Email:    "maria@example.com",
		FullName: "Maria da Silva",
		Keywords: []string{"educacao", "tecnologia", "inovacao"},
	}
	first, err := svc.Issue(input, i18n.LocalePT)
	if err != nil {
		t.Fatalf("first issue failed: %v", err)
	}
	if !first.Success {
		t.Fatalf("first issue rejected: %q", first.Message)
	}

	input.FullName = "Maria S. da Silva"
	second, err := svc.Issue(input, i18n.LocalePT)
	if err != nil {
		t.Fatalf("second issue failed: %v", err)
	}
	if !second.Success || !second.AlreadyIssued {
		t.Fatalf("second issue = %+v", second)
	}
	if second.Code != first.Code {
		t.Fatalf("code changed on re-issue: %q != %q", second.Code, first.Code)
	}

	var certs []models.IssuedCertificate
	if err := db.Find(&certs).Error; err != nil {
		t.Fatalf("load certs failed: %v", err)
	}
	if len(certs) != 1 {
		t.Fatalf("certificates = %d, want 1", len(certs))
	}
	if certs[0].FullName != "Maria S. da Silva" {
		t.Fatalf("name not refreshed: %q", certs[0].FullName)
	}
}

func TestIssueRejectsUnpublishedOrDisabled(t *testing.T) {
	svc, db := setupCertificateServiceTest(t)
	event := seedCertificateEvent(t, db, []string{"Educação", "Tecnologia", "Inovação"}, 3)

	if err := db.Model(&models.Event{}).Where("id = ?", event.ID).Update("status", constants.EventStatusDraft).Error; err != nil {
		t.Fatalf("update status failed: %v", err)
	}
	result, err := svc.Issue(IssueInput{
		EventID:  event.ID,
		Email:    "maria@example.com",
		FullName: "Maria da Silva",
		Keywords: []string{"educacao", "tecnologia", "inovacao"},
	}, i18n.LocalePT)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	if result.Success {
		t.Fatalf("draft event accepted")
	}

	if err := db.Model(&models.Event{}).Where("id = ?", event.ID).Update("status", constants.EventStatusPublished).Error; err != nil {
		t.Fatalf("update status failed: %v", err)
	}
	if err := db.Model(&models.EventCertificate{}).Where("event_id = ?", event.ID).Update("is_enabled", false).Error; err != nil {
		t.Fatalf("disable config failed: %v", err)
	}
	result, err = svc.Issue(IssueInput{
		EventID:  event.ID,
		Email:    "maria@example.com",
		FullName: "Maria da Silva",
		Keywords: []string{"educacao", "tecnologia", "inovacao"},
	}, i18n.LocalePT)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	if result.Success {
		t.Fatalf("disabled config accepted")
	}
}

func TestIssueValidationFailures(t *testing.T) {
	svc, db := setupCertificateServiceTest(t)
	event := seedCertificateEvent(t, db, []string{"Educação", "Tecnologia", "Inovação"}, 3)

	cases := []struct {
		name  string
		input IssueInput
	}{
		{"missing keywords", IssueInput{EventID: event.ID, Email: "a@example.com", FullName: "Ana", Keywords: []string{"um", "dois"}}},
		{"bad email", IssueInput{EventID: event.ID, Email: "not-an-email", FullName: "Ana", Keywords: []string{"a", "b", "c"}}},
		{"short name", IssueInput{EventID: event.ID, Email: "a@example.com", FullName: "A", Keywords: []string{"a", "b", "c"}}},
	}
	for _, tc := range cases {
		result, err := svc.Issue(tc.input, i18n.LocalePT)
		if err != nil {
			t.Fatalf("%s: issue failed: %v", tc.name, err)
		}
		if result.Success {
			t.Fatalf("%s: accepted", tc.name)
		}
	}
}

func TestVerifyExactMatchCaseInsensitive(t *testing.T) {
	svc, db := setupCertificateServiceTest(t)
	event := seedCertificateEvent(t, db, []string{"Educação", "Tecnologia", "Inovação"}, 3)

	issuedAt := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	cert := &models.IssuedCertificate{
		EventID:  event.ID,
		Email:    "maria@example.com",
		FullName: "Maria da Silva",
		Code:     "AB23CD45EF",
		IssuedAt: issuedAt,
	}
	if err := db.Create(cert).Error; err != nil {
		t.Fatalf("seed cert failed: %v", err)
	}

	result, err := svc.Verify("ab23cd45ef", i18n.LocalePT)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if !result.Valid {
		t.Fatalf("expected valid, got %+v", result)
	}
	if result.HolderName != "Maria da Silva" {
		t.Fatalf("holder = %q", result.HolderName)
	}
	if result.EventSlug != "iii-civeni-2025" {
		t.Fatalf("slug = %q", result.EventSlug)
	}
	if result.IssuedAt == nil || !result.IssuedAt.Equal(issuedAt) {
		t.Fatalf("issued at = %v", result.IssuedAt)
	}
}

func TestVerifySuggestsSimilarCode(t *testing.T) {
	svc, db := setupCertificateServiceTest(t)
	event := seedCertificateEvent(t, db, []string{"Educação", "Tecnologia", "Inovação"}, 3)

	cert := &models.IssuedCertificate{
		EventID:  event.ID,
		Email:    "maria@example.com",
		FullName: "Maria da Silva",
		Code:     "AB23CD45EO",
		IssuedAt: time.Now(),
	}
	if err := db.Create(cert).Error; err != nil {
		t.Fatalf("seed cert failed: %v", err)
	}

	// 0 is confusable with O: the stored code ends in O, the query in 0.
	result, err := svc.Verify("AB23CD45E0", i18n.LocalePT)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if result.Valid {
		t.Fatalf("expected invalid with suggestion")
	}
	if result.SuggestedCode != "AB23CD45EO" {
		t.Fatalf("suggested code = %q", result.SuggestedCode)
	}
	if result.HolderName != "" {
		t.Fatalf("suggestion leaked holder details")
	}
}

func TestVerifyMissAndEmptyCode(t *testing.T) {
	svc, _ := setupCertificateServiceTest(t)

	result, err := svc.Verify("", i18n.LocalePT)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if result.Valid || result.Message != i18n.T(i18n.LocalePT, "cert.code_missing") {
		t.Fatalf("empty code result = %+v", result)
	}

	result, err = svc.Verify("ZZZZZZZZZZ", i18n.LocalePT)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if result.Valid || result.SuggestedCode != "" {
		t.Fatalf("miss result = %+v", result)
	}
}

func TestCertificatePayloadKeys(t *testing.T) {
	issued := time.Date(2025, time.December, 12, 0, 0, 0, 0, time.UTC)
	issue, err := json.Marshal(IssueResult{
		Success:       true,
		Message:       "ok",
		AlreadyIssued: true,
		Code:          "CODE123456",
		PDFURL:        "/uploads/certificates/1/CODE123456.pdf",
		Matched:       3,
		FullName:      "Jane Doe",
		Email:         "jane@example.com",
		EventName:     "III CIVENI 2025",
	})
	if err != nil {
		t.Fatalf("marshal issue result failed: %v", err)
	}
	for _, key := range []string{`"pdfUrl"`, `"fullName"`, `"eventName"`, `"alreadyIssued"`} {
		if !strings.Contains(string(issue), key) {
			t.Fatalf("issue payload missing %s: %s", key, issue)
		}
	}

	verify, err := json.Marshal(VerifyResult{
		Valid:         false,
		Message:       "close match",
		HolderName:    "Jane Doe",
		EventSlug:     "iii-civeni-2025",
		IssuedAt:      &issued,
		Suggestion:    "did you mean",
		SuggestedCode: "CODE12345O",
	})
	if err != nil {
		t.Fatalf("marshal verify result failed: %v", err)
	}
	for _, key := range []string{`"holderName"`, `"eventSlug"`, `"issuedAt"`, `"suggestedCode"`} {
		if !strings.Contains(string(verify), key) {
			t.Fatalf("verify payload missing %s: %s", key, verify)
		}
	}

	var input IssueInput
	request := `{"eventId":7,"email":"jane@example.com","fullName":"Jane Doe","keywords":["a","b","c"]}`
	if err := json.Unmarshal([]byte(request), &input); err != nil {
		t.Fatalf("unmarshal issue request failed: %v", err)
	}
	if input.EventID != 7 || input.FullName != "Jane Doe" || len(input.Keywords) != 3 {
		t.Fatalf("issue request bound incorrectly: %+v", input)
	}
}
