package certificate

import (
	"crypto/rand"
	"math/big"
	"strings"

	"github.com/civeni/civeni-api/internal/constants"
)

// similarChars maps glyphs that users commonly confuse when typing a code.
var similarChars = map[byte][]string{
	'V': {"W", "U"},
	'W': {"V", "VV"},
	'0': {"O", "Q"},
	'O': {"0", "Q"},
	'1': {"I", "L", "l"},
	'I': {"1", "L", "l"},
	'L': {"1", "I", "l"},
	'l': {"1", "I", "L"},
	'8': {"B"},
	'B': {"8"},
	'5': {"S"},
	'S': {"5"},
	'6': {"G"},
	'G': {"6"},
}

// GenerateCode returns a new random verification code.
func GenerateCode() (string, error) {
	alphabet := constants.CertificateCodeAlphabet
	var b strings.Builder
	b.Grow(constants.CertificateCodeLength)
	max := big.NewInt(int64(len(alphabet)))
	for i := 0; i < constants.CertificateCodeLength; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		b.WriteByte(alphabet[n.Int64()])
	}
	return b.String(), nil
}

// SimilarCodes generates every one-position substitution of code over the
// confusable-glyph map, in uppercase, for "did you mean" lookups.
func SimilarCodes(code string) []string {
	upper := strings.ToUpper(strings.TrimSpace(code))
	seen := make(map[string]struct{})
	var out []string
	for i := 0; i < len(upper); i++ {
		subs, ok := similarChars[upper[i]]
		if !ok {
			continue
		}
		for _, s := range subs {
			variant := upper[:i] + s + upper[i+1:]
			if _, dup := seen[variant]; dup {
				continue
			}
			seen[variant] = struct{}{}
			out = append(out, variant)
		}
	}
	return out
}
