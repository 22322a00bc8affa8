package jwt

import (
	"testing"
)

func TestGenerateAndValidateToken(t *testing.T) {
	token, err := GenerateToken(7, "ops@example.com", "Ops User", "v1")
	if err != nil {
		t.Fatalf("generate token failed: %v", err)
	}

	claims, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("validate token failed: %v", err)
	}

	if claims.UserID != 7 {
		t.Errorf("expected user ID 7, got %d", claims.UserID)
	}
	if claims.Email != "ops@example.com" {
		t.Errorf("unexpected email: %s", claims.Email)
	}
	if claims.TokenVersion != "v1" {
		t.Errorf("unexpected token version: %s", claims.TokenVersion)
	}
	if claims.Issuer != "go-stock-api" {
		t.Errorf("unexpected issuer: %s", claims.Issuer)
	}
}

func TestValidateTamperedToken(t *testing.T) {
	token, err := GenerateToken(7, "ops@example.com", "Ops User", "v1")
	if err != nil {
		t.Fatalf("generate token failed: %v", err)
	}

	tampered := token[:len(token)-2] + "xx"
	if _, err := ValidateToken(tampered); err == nil {
		t.Error("expected tampered token to fail validation")
	}
}

func TestValidateMalformedToken(t *testing.T) {
	if _, err := ValidateToken("definitely.not.ajwt"); err == nil {
		t.Error("expected malformed token to fail validation")
	}
}
