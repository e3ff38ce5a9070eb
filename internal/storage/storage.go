package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/civeni/civeni-api/internal/constants"

	"github.com/google/uuid"
)

// MaxUploadSize caps multipart uploads at 10 MB.
const MaxUploadSize = 10 << 20

var documentExtensions = map[string]struct{}{
	".pdf":  {},
	".doc":  {},
	".docx": {},
}

var imageExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".webp": {},
	".gif":  {},
	".svg":  {},
}

// allowedExtensions returns the per-bucket extension allowlist. Work
// submissions accept documents only; everything else also takes images
// (banners, posts, event art).
func allowedExtensions(bucket string) map[string]struct{} {
	if bucket == constants.BucketWorks {
		return documentExtensions
	}
	merged := make(map[string]struct{}, len(documentExtensions)+len(imageExtensions))
	for ext := range documentExtensions {
		merged[ext] = struct{}{}
	}
	for ext := range imageExtensions {
		merged[ext] = struct{}{}
	}
	return merged
}

// Store writes objects to the local disk and exposes them through a
// public base URL. Paths are bucket-relative, e.g.
// certificates/3/AB23CD45EF.pdf.
type Store struct {
	dir           string
	publicBaseURL string
}

// New creates a Store rooted at dir.
func New(dir, publicBaseURL string) *Store {
	return &Store{
		dir:           dir,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

// Dir returns the local root directory.
func (s *Store) Dir() string {
	return s.dir
}

// SaveBytes writes data at bucket/objectPath, overwriting any previous
// object, and returns the public URL.
func (s *Store) SaveBytes(bucket, objectPath string, data []byte) (string, error) {
	cleaned, err := s.cleanPath(bucket, objectPath)
	if err != nil {
		return "", err
	}
	fullPath := filepath.Join(s.dir, cleaned)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return "", err
	}
	if err := os.WriteFile(fullPath, data, 0644); err != nil {
		return "", err
	}
	return s.PublicURL(cleaned), nil
}

// SaveUpload stores a multipart document upload under bucket with a
// generated name and returns the public URL.
func (s *Store) SaveUpload(file *multipart.FileHeader, bucket string) (string, error) {
	if file.Size > MaxUploadSize {
		return "", fmt.Errorf("file too large: %d bytes (max %d)", file.Size, MaxUploadSize)
	}
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if _, ok := allowedExtensions(bucket)[ext]; !ok {
		return "", fmt.Errorf("file extension not allowed: %s", ext)
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	filename := uuid.New().String() + ext
	cleaned, err := s.cleanPath(bucket, filename)
	if err != nil {
		return "", err
	}
	fullPath := filepath.Join(s.dir, cleaned)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return "", err
	}
	dst, err := os.Create(fullPath)
	if err != nil {
		return "", err
	}
	defer dst.Close()
	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return s.PublicURL(cleaned), nil
}

// PublicURL maps a stored object path to its public URL.
func (s *Store) PublicURL(objectPath string) string {
	return s.publicBaseURL + "/" + filepath.ToSlash(objectPath)
}

// cleanPath joins and validates the object path so it cannot escape the
// storage root.
func (s *Store) cleanPath(bucket, objectPath string) (string, error) {
	joined := filepath.Join(bucket, objectPath)
	cleaned := filepath.Clean(joined)
	if cleaned == "." || strings.HasPrefix(cleaned, "..") || filepath.IsAbs(cleaned) {
		return "", fmt.Errorf("invalid object path: %s", objectPath)
	}
	return cleaned, nil
}
