package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/avelis/daybook/internal/common"
)

func TestTokenCodec_SignAndVerify(t *testing.T) {
	t.Parallel()

	c := NewTokenCodec([]byte("super-secret"), time.Hour)

	tok, err := c.Sign("user-123", "alice")
	if err != nil {
		t.Fatalf("Sign error: %v", err)
	}

	claims, err := c.Verify(tok)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if claims.UserID != "user-123" {
		t.Fatalf("UserID mismatch: got %q want %q", claims.UserID, "user-123")
	}
	if claims.Username != "alice" {
		t.Fatalf("Username mismatch: got %q want %q", claims.Username, "alice")
	}
}

func TestTokenCodec_Expired(t *testing.T) {
	t.Parallel()

	c := NewTokenCodec([]byte("secret"), -1*time.Second)

	tok, err := c.Sign("u1", "u1")
	if err != nil {
		t.Fatalf("Sign error: %v", err)
	}

	_, err = c.Verify(tok)
	if !errors.Is(err, common.ErrTokenExpired) {
		t.Fatalf("expected common.ErrTokenExpired, got %v", err)
	}
}

func TestTokenCodec_WrongSecret(t *testing.T) {
	t.Parallel()

	signer := NewTokenCodec([]byte("right-secret"), time.Hour)
	verifier := NewTokenCodec([]byte("wrong-secret"), time.Hour)

	tok, err := signer.Sign("u2", "u2")
	if err != nil {
		t.Fatalf("Sign error: %v", err)
	}

	_, err = verifier.Verify(tok)
	if !errors.Is(err, common.ErrInvalidSignature) {
		t.Fatalf("expected common.ErrInvalidSignature, got %v", err)
	}
}

func TestTokenCodec_MalformedString(t *testing.T) {
	t.Parallel()

	c := NewTokenCodec([]byte("k"), time.Hour)

	for _, tok := range []string{"", "not.a.jwt", "garbage"} {
		if _, err := c.Verify(tok); !errors.Is(err, common.ErrTokenMalformed) {
			t.Fatalf("token %q: expected common.ErrTokenMalformed, got %v", tok, err)
		}
	}
}

func TestTokenCodec_TruncatedToken(t *testing.T) {
	t.Parallel()

	c := NewTokenCodec([]byte("k"), time.Hour)

	tok, err := c.Sign("u3", "u3")
	if err != nil {
		t.Fatalf("Sign error: %v", err)
	}

	truncated := tok[:len(tok)-10]
	if _, err := c.Verify(truncated); err == nil {
		t.Fatalf("expected error for truncated token, got nil")
	}
}

func TestTokenCodec_RejectsForeignAlgorithm(t *testing.T) {
	t.Parallel()

	secret := []byte("k")
	c := NewTokenCodec(secret, time.Hour)

	// Same secret, but signed with HS512: the codec pins HS256 and must
	// refuse regardless of signature validity.
	foreign := jwt.NewWithClaims(jwt.SigningMethodHS512, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		UserID: "u4",
	})
	tok, err := foreign.SignedString(secret)
	if err != nil {
		t.Fatalf("SignedString error: %v", err)
	}

	_, err = c.Verify(tok)
	if !errors.Is(err, common.ErrInvalidSignature) {
		t.Fatalf("expected common.ErrInvalidSignature, got %v", err)
	}
}

func TestTokenCodec_ValidJustBeforeExpiry(t *testing.T) {
	t.Parallel()

	c := NewTokenCodec([]byte("k"), 2*time.Second)

	tok, err := c.Sign("u5", "u5")
	if err != nil {
		t.Fatalf("Sign error: %v", err)
	}

	// Immediately after issuance the token is comfortably inside its TTL.
	claims, err := c.Verify(tok)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if claims.UserID != "u5" {
		t.Fatalf("UserID mismatch: %q", claims.UserID)
	}
}
