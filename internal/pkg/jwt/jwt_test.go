package jwt

import (
	"errors"
	"testing"
)

const secret = "test-secret"

func TestGenerateAndValidate(t *testing.T) {
	token, err := GenerateToken(7, "Alice", "alice@dimec.com", "INVENTORY_CLERK", secret, 1)
	if err != nil {
		t.Fatal(err)
	}

	claims, err := ValidateToken(token, secret)
	if err != nil {
		t.Fatal(err)
	}
	if claims.UserID != 7 || claims.Name != "Alice" || claims.Email != "alice@dimec.com" || claims.Role != "INVENTORY_CLERK" {
		t.Errorf("claims = %+v", claims)
	}
	if claims.Issuer != "dimec-inventory" || claims.Subject != "alice@dimec.com" {
		t.Errorf("registered claims = %+v", claims.RegisteredClaims)
	}
}

func TestValidateWrongSecret(t *testing.T) {
	token, err := GenerateToken(1, "n", "e", "ADMIN", secret, 1)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ValidateToken(token, "other-secret"); !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("err = %v, want ErrTokenInvalid", err)
	}
}

func TestValidateExpired(t *testing.T) {
	token, err := GenerateToken(1, "n", "e", "ADMIN", secret, -1)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ValidateToken(token, secret); !errors.Is(err, ErrTokenExpired) {
		t.Errorf("err = %v, want ErrTokenExpired", err)
	}
}

func TestValidateGarbage(t *testing.T) {
	if _, err := ValidateToken("not.a.token", secret); !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("err = %v, want ErrTokenInvalid", err)
	}
}
