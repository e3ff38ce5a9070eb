package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/civeni/civeni-api/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

func TestResolveAllowedOrigin(t *testing.T) {
	got := resolveAllowedOrigin("https://civeni.org", []string{"*"}, false)
	if got != "*" {
		t.Fatalf("wildcard without credentials should return *, got %s", got)
	}

	got = resolveAllowedOrigin("https://civeni.org", []string{"*"}, true)
	if got != "https://civeni.org" {
		t.Fatalf("wildcard with credentials should echo origin, got %s", got)
	}

	got = resolveAllowedOrigin("https://a.civeni.org", []string{"https://a.civeni.org", "https://b.civeni.org"}, false)
	if got != "https://a.civeni.org" {
		t.Fatalf("allow-list should return matched origin, got %s", got)
	}

	got = resolveAllowedOrigin("https://x.civeni.org", []string{"https://a.civeni.org"}, false)
	if got != "" {
		t.Fatalf("unmatched origin should be empty, got %s", got)
	}
}

func TestRequestIDMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"request_id": getRequestID(c)})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(requestIDHeader, "req-123")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status want 200 got %d", w.Code)
	}
	if w.Header().Get(requestIDHeader) != "req-123" {
		t.Fatalf("response request id want req-123 got %s", w.Header().Get(requestIDHeader))
	}
	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response failed: %v", err)
	}
	if resp["request_id"] != "req-123" {
		t.Fatalf("context request id want req-123 got %s", resp["request_id"])
	}

	w2 := httptest.NewRecorder()
	req2 := httptest.NewRequest(http.MethodGet, "/ping", nil)
	r.ServeHTTP(w2, req2)
	if strings.TrimSpace(w2.Header().Get(requestIDHeader)) == "" {
		t.Fatalf("generated request id should not be blank")
	}
}

func TestJWTAuthMiddlewareMissingSecret(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(JWTAuthMiddleware("", nil))
	r.GET("/admin/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status want 200 got %d", w.Code)
	}
	var resp struct {
		StatusCode int `json:"status_code"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response failed: %v", err)
	}
	if resp.StatusCode != 401 {
		t.Fatalf("status_code want 401 got %d", resp.StatusCode)
	}
}

func TestJWTAuthMiddlewareRejectsBadHeader(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(JWTAuthMiddleware("test-secret", stubAdminRepo{}))
	r.GET("/admin/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	for _, header := range []string{"", "Token abc", "Bearer not-a-jwt"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		r.ServeHTTP(w, req)

		var resp struct {
			StatusCode int `json:"status_code"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal response failed: %v", err)
		}
		if resp.StatusCode != 401 {
			t.Fatalf("header %q: status_code want 401 got %d", header, resp.StatusCode)
		}
	}
}

type stubAdminRepo struct{}

func (stubAdminRepo) GetByUsername(username string) (*models.Admin, error) { return nil, nil }
func (stubAdminRepo) GetByID(id uint) (*models.Admin, error)              { return nil, nil }
func (stubAdminRepo) List() ([]models.Admin, error)                       { return nil, nil }
func (stubAdminRepo) Count() (int64, error)                               { return 0, nil }
func (stubAdminRepo) Create(admin *models.Admin) error                    { return nil }
func (stubAdminRepo) Update(admin *models.Admin) error                    { return nil }
func (stubAdminRepo) Delete(id uint) error                                { return nil }

func TestContextAdminID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	if got := contextAdminID(c); got != 0 {
		t.Fatalf("missing admin_id want 0 got %d", got)
	}

	c.Set("admin_id", uint(7))
	if got := contextAdminID(c); got != 7 {
		t.Fatalf("uint admin_id want 7 got %d", got)
	}

	c.Set("admin_id", float64(9))
	if got := contextAdminID(c); got != 9 {
		t.Fatalf("float64 admin_id want 9 got %d", got)
	}

	c.Set("admin_id", "nope")
	if got := contextAdminID(c); got != 0 {
		t.Fatalf("string admin_id want 0 got %d", got)
	}
}

func TestIsIssuedAfterInvalidBefore(t *testing.T) {
	now := time.Now()

	if !isIssuedAfterInvalidBefore(nil, nil) {
		t.Fatalf("no revocation mark should accept any token")
	}
	if isIssuedAfterInvalidBefore(nil, &now) {
		t.Fatalf("token without issued-at should be rejected when a mark exists")
	}

	before := jwt.NewNumericDate(now.Add(-time.Minute))
	if isIssuedAfterInvalidBefore(before, &now) {
		t.Fatalf("token issued before the mark should be rejected")
	}

	after := jwt.NewNumericDate(now.Add(time.Minute))
	if !isIssuedAfterInvalidBefore(after, &now) {
		t.Fatalf("token issued after the mark should be accepted")
	}
}

func TestIsIssuedAfterInvalidBeforeUnix(t *testing.T) {
	now := time.Now()

	if !isIssuedAfterInvalidBeforeUnix(nil, 0) {
		t.Fatalf("zero mark should accept any token")
	}
	if isIssuedAfterInvalidBeforeUnix(nil, now.Unix()) {
		t.Fatalf("token without issued-at should be rejected when a mark exists")
	}
	if isIssuedAfterInvalidBeforeUnix(jwt.NewNumericDate(now.Add(-time.Minute)), now.Unix()) {
		t.Fatalf("token issued before the mark should be rejected")
	}
	if !isIssuedAfterInvalidBeforeUnix(jwt.NewNumericDate(now.Add(time.Minute)), now.Unix()) {
		t.Fatalf("token issued after the mark should be accepted")
	}
}
