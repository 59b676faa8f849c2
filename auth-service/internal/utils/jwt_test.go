package utils

import (
	"testing"

	"github.com/golang-jwt/jwt/v4"
)

func TestGenerateAndValidateToken(t *testing.T) {
	util := NewJWTUtil("test-secret")

	tokenStr, err := util.GenerateToken("user-1", "creator")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	token, err := util.ValidateToken(tokenStr)
	if err != nil {
		t.Fatalf("ValidateToken failed: %v", err)
	}
	if !token.Valid {
		t.Fatal("token reported invalid")
	}

	claims := token.Claims.(jwt.MapClaims)
	if claims["user_id"] != "user-1" {
		t.Errorf("user_id claim = %v", claims["user_id"])
	}
	if claims["role"] != "creator" {
		t.Errorf("role claim = %v", claims["role"])
	}
}

func TestValidateToken_WrongSecret(t *testing.T) {
	tokenStr, err := NewJWTUtil("secret-a").GenerateToken("user-1", "patron")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	token, err := NewJWTUtil("secret-b").ValidateToken(tokenStr)
	if err == nil && token.Valid {
		t.Fatal("token signed with another secret must not validate")
	}
}
