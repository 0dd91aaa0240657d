package identity

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-key"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func TestDecodeExpiry(t *testing.T) {
	t.Parallel()
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	token := signedToken(t, jwt.MapClaims{"exp": exp.Unix()})

	got, ok := DecodeExpiry(token)
	if !ok {
		t.Fatal("DecodeExpiry: got ok = false, want true")
	}
	if !got.Equal(exp) {
		t.Errorf("DecodeExpiry: got %v, want %v", got, exp)
	}
}

func TestDecodeExpiryMalformed(t *testing.T) {
	t.Parallel()
	tokens := []string{
		"",
		"not-a-jwt",
		"only.two",
		"a.b.c",
		"x.!!!.y",
	}
	for _, token := range tokens {
		if _, ok := DecodeExpiry(token); ok {
			t.Errorf("DecodeExpiry(%q): got ok = true, want false", token)
		}
	}
}

func TestDecodeExpiryMissingClaim(t *testing.T) {
	t.Parallel()
	token := signedToken(t, jwt.MapClaims{"sub": "42"})
	if _, ok := DecodeExpiry(token); ok {
		t.Error("DecodeExpiry without exp claim: got ok = true, want false")
	}
}

func TestIsExpired(t *testing.T) {
	t.Parallel()
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	token := signedToken(t, jwt.MapClaims{"exp": exp.Unix()})

	if IsExpired(token, exp.Add(-time.Minute)) {
		t.Error("IsExpired before expiry: got true, want false")
	}
	// Validity is strict: the expiry instant itself is already expired.
	if !IsExpired(token, exp) {
		t.Error("IsExpired at expiry: got false, want true")
	}
	if !IsExpired(token, exp.Add(time.Minute)) {
		t.Error("IsExpired after expiry: got false, want true")
	}
}

func TestIsExpiredMalformed(t *testing.T) {
	t.Parallel()
	now := time.Now()
	for _, token := range []string{"", "garbage", "a.b.c"} {
		if !IsExpired(token, now) {
			t.Errorf("IsExpired(%q): got false, want true", token)
		}
	}
}

func TestIdentityValidate(t *testing.T) {
	t.Parallel()
	if err := (Identity{ID: 1, Nome: "Ana"}).Validate(); err != nil {
		t.Errorf("Validate with id: got %v, want nil", err)
	}
	if err := (Identity{Nome: "Ana"}).Validate(); err != ErrInvalidIdentity {
		t.Errorf("Validate without id: got %v, want ErrInvalidIdentity", err)
	}
}
