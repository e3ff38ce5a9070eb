package repository

import (
	"strings"
	"testing"
)

func TestJSONTextExprByDialectSQLite(t *testing.T) {
	got := jsonTextExprByDialect("sqlite", "title_json", "pt-BR")
	want := "json_extract(title_json, '$.\"pt-BR\"')"
	if got != want {
		t.Fatalf("sqlite json expr mismatch, want %s got %s", want, got)
	}
}

func TestJSONTextExprByDialectPostgres(t *testing.T) {
	got := jsonTextExprByDialect("postgres", "title_json", "pt-BR")
	want := "(title_json::jsonb ->> 'pt-BR')"
	if got != want {
		t.Fatalf("postgres json expr mismatch, want %s got %s", want, got)
	}
}

func TestBuildLocalizedLikeCondition(t *testing.T) {
	condition, argCount := buildLocalizedLikeCondition(nil, []string{"slug"}, []string{"title_json"})
	if argCount != 5 {
		t.Fatalf("arg count want 5 got %d", argCount)
	}
	if !strings.Contains(condition, "slug LIKE ?") {
		t.Fatalf("condition should contain slug LIKE, got %s", condition)
	}
	if !strings.Contains(condition, "json_extract(title_json, '$.\"pt-BR\"') LIKE ?") {
		t.Fatalf("condition should contain title pt-BR LIKE, got %s", condition)
	}
	if !strings.Contains(condition, "json_extract(title_json, '$.\"tr-TR\"') LIKE ?") {
		t.Fatalf("condition should contain title tr-TR LIKE, got %s", condition)
	}
}

func TestLikeOperatorByDialect(t *testing.T) {
	if got := likeOperatorByDialect("postgres"); got != "ILIKE" {
		t.Fatalf("postgres operator want ILIKE got %s", got)
	}
	if got := likeOperatorByDialect("sqlite"); got != "LIKE" {
		t.Fatalf("sqlite operator want LIKE got %s", got)
	}
}

func TestEscapeLikePattern(t *testing.T) {
	cases := map[string]string{
		"AB23CD45EF": "AB23CD45EF",
		"%":          `\%`,
		"_":          `\_`,
		`a\b`:        `a\\b`,
		"50%_off":    `50\%\_off`,
	}
	for input, want := range cases {
		if got := escapeLikePattern(input); got != want {
			t.Fatalf("escape %q want %q got %q", input, want, got)
		}
	}
}
