package auth

import (
	"errors"
	"testing"
	"time"
)

func TestGate_LoginAndValidate(t *testing.T) {
	g := NewGate(HashPassword("opensesame"), time.Minute)

	token, err := g.Login("opensesame")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token == "" {
		t.Fatal("empty token")
	}
	if !g.Valid(token) {
		t.Error("freshly issued token not valid")
	}

	if _, err := g.Login("wrong"); !errors.Is(err, ErrBadPassword) {
		t.Errorf("expected ErrBadPassword, got %v", err)
	}
}

func TestGate_UnknownToken(t *testing.T) {
	g := NewGate(HashPassword("pw"), time.Minute)
	if g.Valid("") || g.Valid("deadbeef") {
		t.Error("unknown tokens must be invalid")
	}
}

func TestGate_Revoke(t *testing.T) {
	g := NewGate(HashPassword("pw"), time.Minute)
	token, err := g.Login("pw")
	if err != nil {
		t.Fatal(err)
	}
	g.Revoke(token)
	if g.Valid(token) {
		t.Error("revoked token still valid")
	}
}

func TestGate_Expiry(t *testing.T) {
	g := NewGate(HashPassword("pw"), 10*time.Millisecond)
	token, err := g.Login("pw")
	if err != nil {
		t.Fatal(err)
	}
	time.Sleep(30 * time.Millisecond)
	if g.Valid(token) {
		t.Error("expired token still valid")
	}
}

func TestGate_TokensAreUnique(t *testing.T) {
	g := NewGate(HashPassword("pw"), time.Minute)
	a, _ := g.Login("pw")
	b, _ := g.Login("pw")
	if a == b {
		t.Error("two logins produced the same token")
	}
}

func TestHashPassword(t *testing.T) {
	// Known SHA-256 vector.
	if got := HashPassword("abc"); got != "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad" {
		t.Errorf("HashPassword(abc) = %s", got)
	}
}
