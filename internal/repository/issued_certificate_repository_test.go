package repository

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/civeni/civeni-api/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupCertificateRepositoryTest(t *testing.T) (*GormIssuedCertificateRepository, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Event{}, &models.IssuedCertificate{}); err != nil {
		t.Fatalf("migrate certificate models failed: %v", err)
	}
	return NewIssuedCertificateRepository(db), db
}

func TestUpsertKeepsCodeAndIssueDate(t *testing.T) {
	repo, _ := setupCertificateRepositoryTest(t)

	issuedAt := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	first := &models.IssuedCertificate{
		EventID:  1,
		Email:    "maria@example.com",
		FullName: "Maria da Silva",
		Code:     "AB23CD45EF",
		PDFURL:   "http://localhost/certificates/1/AB23CD45EF.pdf",
		IssuedAt: issuedAt,
	}
	if err := repo.Upsert(first); err != nil {
		t.Fatalf("first upsert failed: %v", err)
	}

	second := &models.IssuedCertificate{
		EventID:  1,
		Email:    "maria@example.com",
		FullName: "Maria S.",
		Code:     "ZZ99ZZ99ZZ",
		PDFURL:   "http://localhost/certificates/1/AB23CD45EF-v2.pdf",
		IssuedAt: time.Now(),
	}
	if err := repo.Upsert(second); err != nil {
		t.Fatalf("second upsert failed: %v", err)
	}

	got, err := repo.GetByEventAndEmail(1, "maria@example.com")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got == nil {
		t.Fatal("expected a row")
	}
	if got.Code != "AB23CD45EF" {
		t.Fatalf("expected code preserved, got %s", got.Code)
	}
	if !got.IssuedAt.Equal(issuedAt) {
		t.Fatalf("expected issue date preserved, got %v", got.IssuedAt)
	}
	if got.FullName != "Maria S." {
		t.Fatalf("expected name refreshed, got %s", got.FullName)
	}
	if !strings.HasSuffix(got.PDFURL, "-v2.pdf") {
		t.Fatalf("expected pdf url refreshed, got %s", got.PDFURL)
	}
}

func TestFindByCodeCaseInsensitive(t *testing.T) {
	repo, db := setupCertificateRepositoryTest(t)

	cert := &models.IssuedCertificate{
		EventID:  2,
		Email:    "joao@example.com",
		FullName: "João Souza",
		Code:     "aB23Cd45Ef",
		IssuedAt: time.Now(),
	}
	if err := db.Create(cert).Error; err != nil {
		t.Fatalf("create failed: %v", err)
	}

	got, err := repo.FindByCode("AB23CD45EF")
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if got == nil {
		t.Fatal("expected a match for case-insensitive lookup")
	}
	if got.Code != "aB23Cd45Ef" {
		t.Fatalf("expected stored code returned, got %s", got.Code)
	}
}

func TestFindFirstByCodes(t *testing.T) {
	repo, db := setupCertificateRepositoryTest(t)

	cert := &models.IssuedCertificate{
		EventID:  3,
		Email:    "ana@example.com",
		FullName: "Ana Lima",
		Code:     "AB23CD45EF",
		IssuedAt: time.Now(),
	}
	if err := db.Create(cert).Error; err != nil {
		t.Fatalf("create failed: %v", err)
	}

	got, err := repo.FindFirstByCodes([]string{"XX23CD45EF", "AB23CD45EF"})
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if got == nil || got.Code != "AB23CD45EF" {
		t.Fatalf("expected suggestion match, got %+v", got)
	}

	miss, err := repo.FindFirstByCodes([]string{"YY23CD45EF"})
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if miss != nil {
		t.Fatalf("expected no match, got %+v", miss)
	}
}

func TestFindByCodeEscapesWildcards(t *testing.T) {
	repo, _ := setupCertificateRepositoryTest(t)

	cert := &models.IssuedCertificate{
		EventID:  1,
		Email:    "ana@example.com",
		FullName: "Ana Souza",
		Code:     "AB23CD45EF",
		PDFURL:   "http://localhost/certificates/1/AB23CD45EF.pdf",
		IssuedAt: time.Now(),
	}
	if err := repo.Upsert(cert); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}

	for _, probe := range []string{"%", "__________", "AB23CD45E_", "%CD45EF"} {
		got, err := repo.FindByCode(probe)
		if err != nil {
			t.Fatalf("find %q failed: %v", probe, err)
		}
		if got != nil {
			t.Fatalf("wildcard input %q should not match, got %s", probe, got.Code)
		}
	}

	got, err := repo.FindByCode("ab23cd45ef")
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if got == nil || got.Code != "AB23CD45EF" {
		t.Fatalf("exact lookup should still match, got %+v", got)
	}
}
