package certificate

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/civeni/civeni-api/internal/constants"
)

func TestGenerateCodeAlphabet(t *testing.T) {
	for i := 0; i < 20; i++ {
		code, err := GenerateCode()
		if err != nil {
			t.Fatalf("GenerateCode error: %v", err)
		}
		if len(code) != constants.CertificateCodeLength {
			t.Fatalf("expected %d chars, got %d (%s)", constants.CertificateCodeLength, len(code), code)
		}
		for _, c := range code {
			if !strings.ContainsRune(constants.CertificateCodeAlphabet, c) {
				t.Fatalf("code %s contains %q outside the alphabet", code, c)
			}
		}
	}
}

func TestSimilarCodesSubstitutions(t *testing.T) {
	variants := SimilarCodes("AB5")
	want := map[string]bool{"A85": false, "ABS": false}
	for _, v := range variants {
		if _, ok := want[v]; ok {
			want[v] = true
		}
	}
	for v, found := range want {
		if !found {
			t.Fatalf("expected variant %s in %v", v, variants)
		}
	}
}

func TestSimilarCodesUppercasesInput(t *testing.T) {
	variants := SimilarCodes("ab5")
	for _, v := range variants {
		if v != strings.ToUpper(v) {
			t.Fatalf("expected uppercase variant, got %s", v)
		}
	}
}

func TestSimilarCodesNoConfusables(t *testing.T) {
	if got := SimilarCodes("2347"); len(got) != 0 {
		t.Fatalf("expected no variants, got %v", got)
	}
}

func TestNormalizeKeywordStripsDiacritics(t *testing.T) {
	cases := map[string]string{
		"  Educação ":  "educacao",
		"INOVAÇÃO":     "inovacao",
		"Tecnología":   "tecnologia",
		"pesquisa":     "pesquisa",
		"Ética":        "etica",
	}
	for in, want := range cases {
		if got := NormalizeKeyword(in); got != want {
			t.Fatalf("NormalizeKeyword(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestMatchCountDiacriticInsensitive(t *testing.T) {
	official := []string{"Educação", "Inovação", "Pesquisa"}
	got := MatchCount([]string{"educacao", "INOVAÇÃO", "errada"}, official)
	if got != 2 {
		t.Fatalf("expected 2 matches, got %d", got)
	}
}

func TestMatchCountDuplicatesEachCount(t *testing.T) {
	official := []string{"educacao", "inovacao", "pesquisa"}
	got := MatchCount([]string{"educacao", "educacao", "educacao"}, official)
	if got != 3 {
		t.Fatalf("expected duplicates to each count, got %d", got)
	}
}

func TestMatchCountIgnoresEmptyKeywords(t *testing.T) {
	official := []string{"educacao"}
	got := MatchCount([]string{"  ", "", "educacao"}, official)
	if got != 1 {
		t.Fatalf("expected 1 match, got %d", got)
	}
}

func TestRenderPDFProducesDocument(t *testing.T) {
	out, err := RenderPDF(RenderOptions{
		FullName:  "Maria da Silva",
		EventName: "III CIVENI 2025",
		Language:  "pt-BR",
		IssueDate: time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
		City:      "Fortaleza",
		Country:   "Brasil",
		Hours:     20,
		Code:      "AB23CD45EF",
	})
	if err != nil {
		t.Fatalf("RenderPDF error: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Fatalf("expected a PDF header, got %q", out[:8])
	}
}

func TestRenderPDFUnknownLanguageFallsBack(t *testing.T) {
	opts := RenderOptions{
		FullName:  "John Doe",
		EventName: "CIVENI",
		Language:  "tr-TR",
		IssueDate: time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
		Code:      "AB23CD45EF",
	}
	out, err := RenderPDF(opts)
	if err != nil {
		t.Fatalf("RenderPDF error: %v", err)
	}
	if len(out) == 0 {
		t.Fatal("expected document bytes")
	}
	if s := stringsFor(opts.Language); s.certify != "Certificamos que" {
		t.Fatalf("expected Portuguese fallback, got %q", s.certify)
	}
}
