package i18n

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestNormalize(t *testing.T) {
	cases := map[string]string{
		"":      LocalePT,
		"pt":    LocalePT,
		"pt-BR": LocalePT,
		"en":    LocaleEN,
		"EN-us": LocaleEN,
		"es-ES": LocaleES,
		"tr":    LocaleTR,
		"fr":    LocalePT,
	}
	for input, expected := range cases {
		if got := Normalize(input); got != expected {
			t.Fatalf("Normalize(%q)=%q, expected %q", input, got, expected)
		}
	}
}

func newTestContext(t *testing.T, query, acceptLanguage string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/api/v1/public/events"+query, nil)
	if acceptLanguage != "" {
		c.Request.Header.Set("Accept-Language", acceptLanguage)
	}
	return c
}

func TestResolveLocaleQueryWins(t *testing.T) {
	c := newTestContext(t, "?lang=en", "es-ES,es;q=0.9")
	if got := ResolveLocale(c); got != LocaleEN {
		t.Fatalf("expected %s, got %s", LocaleEN, got)
	}
}

func TestResolveLocaleAcceptLanguage(t *testing.T) {
	c := newTestContext(t, "", "fr-FR,fr;q=0.9,tr-TR;q=0.8")
	if got := ResolveLocale(c); got != LocaleTR {
		t.Fatalf("expected %s, got %s", LocaleTR, got)
	}
}

func TestResolveLocaleDefault(t *testing.T) {
	c := newTestContext(t, "", "")
	if got := ResolveLocale(c); got != LocalePT {
		t.Fatalf("expected %s, got %s", LocalePT, got)
	}
}

func TestTFallsBackToPortuguese(t *testing.T) {
	// error.rate_limit_unavailable is only defined for pt-BR and en-US.
	if got := T(LocaleTR, "error.rate_limit_unavailable"); got != messages[LocalePT]["error.rate_limit_unavailable"] {
		t.Fatalf("expected Portuguese fallback, got %q", got)
	}
}

func TestSprintfKeywordsMismatch(t *testing.T) {
	got := Sprintf(LocaleEN, "cert.keywords_mismatch", 2, 3)
	expected := "You got 2/3 keywords correct. Minimum required: 3/3"
	if got != expected {
		t.Fatalf("got %q, expected %q", got, expected)
	}
}
