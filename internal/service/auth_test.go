package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestTokenRoundTrip(t *testing.T) {
	svc := NewAuthService(nil, "clave-de-prueba", time.Hour, newTestLogger())
	userID := uuid.New().String()

	token, err := svc.GenerateJWTToken(userID)
	if err != nil {
		t.Fatalf("GenerateJWTToken() error = %v", err)
	}

	parsed, err := svc.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken() error = %v", err)
	}
	if parsed != userID {
		t.Errorf("ParseToken() = %q, want %q", parsed, userID)
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	issuer := NewAuthService(nil, "secreto-a", time.Hour, newTestLogger())
	verifier := NewAuthService(nil, "secreto-b", time.Hour, newTestLogger())

	token, err := issuer.GenerateJWTToken(uuid.New().String())
	if err != nil {
		t.Fatalf("GenerateJWTToken() error = %v", err)
	}

	if _, err := verifier.ParseToken(token); err == nil {
		t.Fatal("ParseToken() debería rechazar un token firmado con otro secreto")
	}
}

func TestParseToken_Expired(t *testing.T) {
	svc := NewAuthService(nil, "clave-de-prueba", -time.Minute, newTestLogger())

	token, err := svc.GenerateJWTToken(uuid.New().String())
	if err != nil {
		t.Fatalf("GenerateJWTToken() error = %v", err)
	}

	if _, err := svc.ParseToken(token); err == nil {
		t.Fatal("ParseToken() debería rechazar un token expirado")
	}
}
