package auth

import (
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", "resumer", 30*time.Minute)

	token, err := issuer.Generate("admin")
	if err != nil {
		t.Fatalf("Failed to generate token: %v", err)
	}
	if token == "" {
		t.Fatal("Expected a non-empty token")
	}

	username, err := issuer.Validate(token)
	if err != nil {
		t.Fatalf("Failed to validate token: %v", err)
	}
	if username != "admin" {
		t.Errorf("Expected subject 'admin', got '%s'", username)
	}
}

func TestTokenWrongSecret(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", "resumer", 30*time.Minute)
	other := NewTokenIssuer("other-secret", "resumer", 30*time.Minute)

	token, err := issuer.Generate("admin")
	if err != nil {
		t.Fatalf("Failed to generate token: %v", err)
	}

	_, err = other.Validate(token)
	if err == nil {
		t.Error("Expected validation to fail with a different secret")
	}
}

func TestTokenExpired(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", "resumer", -1*time.Minute)

	token, err := issuer.Generate("admin")
	if err != nil {
		t.Fatalf("Failed to generate token: %v", err)
	}

	_, err = issuer.Validate(token)
	if err == nil {
		t.Error("Expected validation to fail for an expired token")
	}
}

func TestTokenWrongIssuer(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", "resumer", 30*time.Minute)
	other := NewTokenIssuer("test-secret", "someone-else", 30*time.Minute)

	token, err := other.Generate("admin")
	if err != nil {
		t.Fatalf("Failed to generate token: %v", err)
	}

	_, err = issuer.Validate(token)
	if err == nil {
		t.Error("Expected validation to fail for a different issuer")
	}
}

func TestTokenGarbage(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", "resumer", 30*time.Minute)

	_, err := issuer.Validate("not-a-token")
	if err == nil {
		t.Error("Expected validation to fail for garbage input")
	}
}
