package i18n

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
)

// Supported locales. Portuguese is the site default; any unknown value
// resolves to it.
const (
	LocalePT = "pt-BR"
	LocaleEN = "en-US"
	LocaleES = "es-ES"
	LocaleTR = "tr-TR"
)

const queryLangParam = "lang"

// Normalize maps loose locale spellings onto a supported locale.
func Normalize(locale string) string {
	switch strings.ToLower(strings.TrimSpace(locale)) {
	case "en", "en-us", "en_us", "en-gb":
		return LocaleEN
	case "es", "es-es", "es_es", "es-mx", "es-ar":
		return LocaleES
	case "tr", "tr-tr", "tr_tr":
		return LocaleTR
	case "pt", "pt-br", "pt_br", "pt-pt":
		return LocalePT
	default:
		return LocalePT
	}
}

// ResolveLocale picks the request locale: explicit ?lang= wins, then the
// first supported Accept-Language entry, then the default.
func ResolveLocale(c *gin.Context) string {
	if c == nil {
		return LocalePT
	}
	if lang := strings.TrimSpace(c.Query(queryLangParam)); lang != "" {
		return Normalize(lang)
	}
	header := c.GetHeader("Accept-Language")
	for _, part := range strings.Split(header, ",") {
		tag := strings.TrimSpace(strings.SplitN(part, ";", 2)[0])
		if tag == "" {
			continue
		}
		if supportedTag(tag) {
			return Normalize(tag)
		}
	}
	return LocalePT
}

// supportedTag keeps an unknown Accept-Language entry from pinning the
// iteration to the Portuguese fallback.
func supportedTag(tag string) bool {
	prefix := strings.ToLower(strings.TrimSpace(tag))
	if idx := strings.IndexAny(prefix, "-_"); idx > 0 {
		prefix = prefix[:idx]
	}
	switch prefix {
	case "pt", "en", "es", "tr":
		return true
	}
	return false
}

// T returns the message for key in the given locale, falling back to
// Portuguese, then to the key itself.
func T(locale, key string) string {
	normalized := Normalize(locale)
	if catalog, ok := messages[normalized]; ok {
		if msg, ok := catalog[key]; ok {
			return msg
		}
	}
	if msg, ok := messages[LocalePT][key]; ok {
		return msg
	}
	return key
}

// Sprintf formats a parameterized message for the locale.
func Sprintf(locale, key string, args ...interface{}) string {
	return fmt.Sprintf(T(locale, key), args...)
}
