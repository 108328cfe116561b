package utils

import "testing"

func TestGenerateAndParseJWT(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateJWT("5f1c7f80-0000-4000-8000-000000000001", "player@example.com")
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	userID, err := ParseJWT(token)
	if err != nil {
		t.Fatalf("ParseJWT: %v", err)
	}
	if userID != "5f1c7f80-0000-4000-8000-000000000001" {
		t.Errorf("userID = %q", userID)
	}
}

func TestParseJWTRejectsGarbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	if _, err := ParseJWT("not.a.token"); err == nil {
		t.Error("expected error for malformed token")
	}
}

func TestParseJWTRejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret-a")
	token, err := GenerateJWT("u1", "a@b.c")
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	t.Setenv("JWT_SECRET", "secret-b")
	if _, err := ParseJWT(token); err == nil {
		t.Error("expected error for token signed with different secret")
	}
}

func TestGenerateJWTRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	if _, err := GenerateJWT("u1", "a@b.c"); err == nil {
		t.Error("expected error when JWT_SECRET unset")
	}
}
