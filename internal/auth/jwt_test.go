package auth

import (
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	authenticator := NewJWTAuthenticator("test-secret", "poolsandpool", "poolsandpool", time.Hour)

	token, err := authenticator.GenerateToken("user-1", "admin")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	claims, err := authenticator.ValidateToken(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.UserID != "user-1" {
		t.Errorf("expected user-1, got %s", claims.UserID)
	}
	if claims.Role != "admin" {
		t.Errorf("expected admin role, got %s", claims.Role)
	}
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	issuer := NewJWTAuthenticator("secret-a", "poolsandpool", "poolsandpool", time.Hour)
	verifier := NewJWTAuthenticator("secret-b", "poolsandpool", "poolsandpool", time.Hour)

	token, err := issuer.GenerateToken("user-1", "admin")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := verifier.ValidateToken(token); err == nil {
		t.Error("expected validation to fail with wrong secret")
	}
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	authenticator := NewJWTAuthenticator("test-secret", "poolsandpool", "poolsandpool", -time.Minute)

	token, err := authenticator.GenerateToken("user-1", "admin")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := authenticator.ValidateToken(token); err == nil {
		t.Error("expected validation to fail for expired token")
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("hunter2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !CheckPassword(hash, "hunter2") {
		t.Error("expected matching password to verify")
	}
	if CheckPassword(hash, "hunter3") {
		t.Error("expected wrong password to fail")
	}
}
