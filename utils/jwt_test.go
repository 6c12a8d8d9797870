package utils

import (
	"testing"
	"time"
)

func TestGenerateAndExtractToken(t *testing.T) {
	token, err := GenerateToken("profile-123", "ada@example.com", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	id, err := ExtractIDFromToken(token)
	if err != nil {
		t.Fatalf("ExtractIDFromToken() error = %v", err)
	}
	if id != "profile-123" {
		t.Errorf("subject = %q, want profile-123", id)
	}
}

func TestExpiredTokenIsRejected(t *testing.T) {
	token, err := GenerateToken("profile-123", "ada@example.com", -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	if _, err := ExtractIDFromToken(token); err == nil {
		t.Fatal("ExtractIDFromToken() should reject an expired token")
	}
}

func TestGarbageTokenIsRejected(t *testing.T) {
	if _, err := ExtractIDFromToken("not.a.token"); err == nil {
		t.Fatal("ExtractIDFromToken() should reject garbage")
	}
}

func TestHashTokenIsStable(t *testing.T) {
	a := HashToken("some-token")
	b := HashToken("some-token")
	if a != b {
		t.Error("HashToken() must be deterministic")
	}
	if a == HashToken("other-token") {
		t.Error("different tokens should hash differently")
	}
	if len(a) != 64 {
		t.Errorf("hash length = %d, want 64 hex chars", len(a))
	}
}
