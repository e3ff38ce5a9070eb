package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/civeni/civeni-api/internal/constants"
)

func TestSaveBytesWritesAndBuildsURL(t *testing.T) {
	dir := t.TempDir()
	store := New(dir, "http://localhost:8080/uploads/")

	url, err := store.SaveBytes("certificates/3", "AB23CD45EF.pdf", []byte("%PDF-test"))
	if err != nil {
		t.Fatalf("SaveBytes error: %v", err)
	}
	if url != "http://localhost:8080/uploads/certificates/3/AB23CD45EF.pdf" {
		t.Fatalf("unexpected url: %s", url)
	}

	data, err := os.ReadFile(filepath.Join(dir, "certificates", "3", "AB23CD45EF.pdf"))
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "%PDF-test" {
		t.Fatalf("unexpected content: %s", data)
	}
}

func TestSaveBytesOverwrites(t *testing.T) {
	dir := t.TempDir()
	store := New(dir, "http://localhost:8080/uploads")

	if _, err := store.SaveBytes("certificates/1", "X.pdf", []byte("old")); err != nil {
		t.Fatalf("first write: %v", err)
	}
	if _, err := store.SaveBytes("certificates/1", "X.pdf", []byte("new")); err != nil {
		t.Fatalf("second write: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "certificates", "1", "X.pdf"))
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "new" {
		t.Fatalf("expected overwrite, got %s", data)
	}
}

func TestSaveBytesRejectsEscapingPaths(t *testing.T) {
	store := New(t.TempDir(), "http://localhost:8080/uploads")
	if _, err := store.SaveBytes("certificates", "../../etc/passwd", nil); err == nil {
		t.Fatal("expected error for escaping path")
	}
}

func TestAllowedExtensionsPerBucket(t *testing.T) {
	uploads := allowedExtensions(constants.BucketUploads)
	for _, ext := range []string{".pdf", ".docx", ".jpg", ".png", ".webp"} {
		if _, ok := uploads[ext]; !ok {
			t.Fatalf("uploads bucket should accept %s", ext)
		}
	}
	if _, ok := uploads[".exe"]; ok {
		t.Fatalf("uploads bucket should not accept .exe")
	}

	works := allowedExtensions(constants.BucketWorks)
	for _, ext := range []string{".pdf", ".doc", ".docx"} {
		if _, ok := works[ext]; !ok {
			t.Fatalf("works bucket should accept %s", ext)
		}
	}
	for _, ext := range []string{".jpg", ".png"} {
		if _, ok := works[ext]; ok {
			t.Fatalf("works bucket should not accept %s", ext)
		}
	}
}
