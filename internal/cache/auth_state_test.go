package cache

import (
	"context"
	"testing"
	"time"

	"github.com/civeni/civeni-api/internal/models"
)

func TestBuildAdminAuthState(t *testing.T) {
	if state := BuildAdminAuthState(nil); state != nil {
		t.Fatalf("nil admin should produce nil state, got %+v", state)
	}

	invalidBefore := time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)
	admin := &models.Admin{
		ID:                 7,
		Username:           "editor",
		TokenVersion:       3,
		TokenInvalidBefore: &invalidBefore,
		IsSuper:            true,
	}

	state := BuildAdminAuthState(admin)
	if state == nil {
		t.Fatalf("state should not be nil")
	}
	if state.AdminID != 7 || state.Username != "editor" || state.TokenVersion != 3 || !state.IsSuper {
		t.Fatalf("state fields = %+v", state)
	}
	if state.TokenInvalidBefore != invalidBefore.Unix() {
		t.Fatalf("token_invalid_before want %d got %d", invalidBefore.Unix(), state.TokenInvalidBefore)
	}

	admin.TokenInvalidBefore = nil
	if state := BuildAdminAuthState(admin); state.TokenInvalidBefore != 0 {
		t.Fatalf("unset mark should map to 0, got %d", state.TokenInvalidBefore)
	}
}

func TestAdminAuthStateDisabledCache(t *testing.T) {
	ctx := context.Background()

	state, hit, err := GetAdminAuthState(ctx, 5)
	if err != nil || hit || state != nil {
		t.Fatalf("disabled cache get = (%+v, %v, %v)", state, hit, err)
	}
	if err := SetAdminAuthState(ctx, &AdminAuthState{AdminID: 5}); err != nil {
		t.Fatalf("disabled cache set failed: %v", err)
	}
	if err := DelAdminAuthState(ctx, 5); err != nil {
		t.Fatalf("disabled cache del failed: %v", err)
	}

	if _, hit, err := GetAdminAuthState(ctx, 0); hit || err != nil {
		t.Fatalf("zero admin id should be a silent miss")
	}
	if err := SetAdminAuthState(ctx, nil); err != nil {
		t.Fatalf("nil state set failed: %v", err)
	}
}
