package auth

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/GoArmGo/TaskFlow/internal/domain"
	"github.com/google/uuid"
)

func TestIssueAndVerify_Success(t *testing.T) {
	t.Parallel()

	manager := NewTokenManager([]byte("super-secret"), time.Hour)
	userID := uuid.New()

	token, err := manager.Issue(userID)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}

	gotUserID, err := manager.Verify(token)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if gotUserID != userID {
		t.Fatalf("userID mismatch: got %s want %s", gotUserID, userID)
	}
}

func TestVerify_Expired(t *testing.T) {
	t.Parallel()

	manager := NewTokenManager([]byte("secret"), -1*time.Second)

	token, err := manager.Issue(uuid.New())
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	_, err = manager.Verify(token)
	if err == nil {
		t.Fatal("expected error for expired token, got nil")
	}
	if !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected domain.ErrInvalidToken, got %v", err)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Parallel()

	issuer := NewTokenManager([]byte("right-secret"), time.Hour)
	verifier := NewTokenManager([]byte("wrong-secret"), time.Hour)

	token, err := issuer.Issue(uuid.New())
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	if _, err = verifier.Verify(token); err == nil {
		t.Fatal("expected error for invalid signature, got nil")
	}
}

func TestVerify_TamperedPayload(t *testing.T) {
	t.Parallel()

	manager := NewTokenManager([]byte("secret"), time.Hour)

	token, err := manager.Issue(uuid.New())
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	// Подмена полезной нагрузки обнуляет подпись
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token format: %s", token)
	}
	tampered := parts[0] + ".eyJ1c2VyX2lkIjoiZm9yZ2VkIn0." + parts[2]

	if _, err = manager.Verify(tampered); err == nil {
		t.Fatal("expected error for tampered token, got nil")
	}
}

func TestVerify_MalformedString(t *testing.T) {
	t.Parallel()

	manager := NewTokenManager([]byte("k"), time.Hour)

	if _, err := manager.Verify("not.a.jwt"); err == nil {
		t.Fatal("expected error for malformed token, got nil")
	}
}

func TestVerify_EmptyToken(t *testing.T) {
	t.Parallel()

	manager := NewTokenManager([]byte("k"), time.Hour)

	if _, err := manager.Verify(""); err == nil {
		t.Fatal("expected error for empty token, got nil")
	}
}
