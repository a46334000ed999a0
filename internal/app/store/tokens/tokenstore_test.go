package tokenstore_test

import (
	"context"
	"errors"
	"testing"
	"time"

	tokenstore "github.com/dalemusser/datahub/internal/app/store/tokens"
)

func TestStore_IssueAndValidate(t *testing.T) {
	store := tokenstore.New(time.Hour)
	ctx := context.Background()

	tok, err := store.Issue(ctx, "user-1")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	if tok.Value == "" {
		t.Error("expected token value to be set")
	}
	if !tok.ExpiresAt.After(tok.IssuedAt) {
		t.Error("expected ExpiresAt after IssuedAt")
	}

	got, err := store.Validate(ctx, tok.Value)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if got.UserID != "user-1" {
		t.Errorf("UserID = %q, want %q", got.UserID, "user-1")
	}
}

func TestStore_Issue_OpaqueAndDistinct(t *testing.T) {
	store := tokenstore.New(time.Hour)
	ctx := context.Background()

	a, err := store.Issue(ctx, "user-a")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	b, err := store.Issue(ctx, "user-b")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	if a.Value == b.Value {
		t.Error("expected distinct token values")
	}
	// 32 random bytes base64url-encoded without padding.
	if len(a.Value) != 43 {
		t.Errorf("token length = %d, want 43", len(a.Value))
	}
}

func TestStore_Validate_UnknownToken(t *testing.T) {
	store := tokenstore.New(time.Hour)

	_, err := store.Validate(context.Background(), "no-such-token")
	if !errors.Is(err, tokenstore.ErrInvalidToken) {
		t.Errorf("got %v, want ErrInvalidToken", err)
	}
}

func TestStore_Validate_ExpiredTokenEvicted(t *testing.T) {
	store := tokenstore.New(time.Hour)
	ctx := context.Background()

	now := time.Now().UTC()
	store.Now = func() time.Time { return now }

	tok, err := store.Issue(ctx, "user-1")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	// One second past expiry must already fail.
	store.Now = func() time.Time { return now.Add(time.Hour).Add(time.Second) }

	if _, err := store.Validate(ctx, tok.Value); !errors.Is(err, tokenstore.ErrExpiredToken) {
		t.Fatalf("got %v, want ErrExpiredToken", err)
	}

	// Lazy eviction: a second lookup no longer finds the value at all.
	if _, err := store.Validate(ctx, tok.Value); !errors.Is(err, tokenstore.ErrInvalidToken) {
		t.Errorf("got %v, want ErrInvalidToken after eviction", err)
	}
	if n := store.ActiveCount(ctx); n != 0 {
		t.Errorf("ActiveCount = %d, want 0", n)
	}
}

func TestStore_Validate_BoundaryInstant(t *testing.T) {
	store := tokenstore.New(time.Hour)
	ctx := context.Background()

	now := time.Now().UTC()
	store.Now = func() time.Time { return now }

	tok, err := store.Issue(ctx, "user-1")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	// Exactly at ExpiresAt the token is no longer valid.
	store.Now = func() time.Time { return tok.ExpiresAt }
	if _, err := store.Validate(ctx, tok.Value); !errors.Is(err, tokenstore.ErrExpiredToken) {
		t.Errorf("got %v, want ErrExpiredToken at expiry instant", err)
	}
}

func TestStore_Issue_ReplacesPriorToken(t *testing.T) {
	store := tokenstore.New(time.Hour)
	ctx := context.Background()

	first, err := store.Issue(ctx, "user-1")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	second, err := store.Issue(ctx, "user-1")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	if _, err := store.Validate(ctx, first.Value); !errors.Is(err, tokenstore.ErrInvalidToken) {
		t.Errorf("first token: got %v, want ErrInvalidToken", err)
	}
	if _, err := store.Validate(ctx, second.Value); err != nil {
		t.Errorf("second token: unexpected error %v", err)
	}
	if n := store.ActiveCount(ctx); n != 1 {
		t.Errorf("ActiveCount = %d, want 1", n)
	}
}

func TestStore_Revoke(t *testing.T) {
	store := tokenstore.New(time.Hour)
	ctx := context.Background()

	tok, err := store.Issue(ctx, "user-1")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	store.Revoke(ctx, tok.Value)
	if _, err := store.Validate(ctx, tok.Value); !errors.Is(err, tokenstore.ErrInvalidToken) {
		t.Errorf("got %v, want ErrInvalidToken after revoke", err)
	}

	// Revoking again (or revoking garbage) is a no-op.
	store.Revoke(ctx, tok.Value)
	store.Revoke(ctx, "no-such-token")
}

func TestStore_DefaultTTL(t *testing.T) {
	store := tokenstore.New(0)
	ctx := context.Background()

	tok, err := store.Issue(ctx, "user-1")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	if got := tok.ExpiresAt.Sub(tok.IssuedAt); got != tokenstore.DefaultTTL {
		t.Errorf("TTL = %v, want %v", got, tokenstore.DefaultTTL)
	}
}
