package auth

import (
	"strings"
	"testing"
)

func TestHashAndCheckPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
	}{
		{name: "short password", password: "demo123"},
		{name: "unicode password", password: "contraseña-segura"},
		{name: "exactly 72 bytes", password: strings.Repeat("a", 72)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			hash, err := HashPassword(tc.password)
			if err != nil {
				t.Fatalf("HashPassword: %v", err)
			}
			if hash == tc.password {
				t.Fatal("hash must not equal the plaintext password")
			}
			if !CheckPassword(tc.password, hash) {
				t.Fatal("CheckPassword rejected the original password")
			}
			if CheckPassword(tc.password+"x", hash) {
				t.Fatal("CheckPassword accepted a wrong password")
			}
		})
	}
}

func TestCheckPasswordTruncationSymmetry(t *testing.T) {
	long := strings.Repeat("s", 72)

	hash, err := HashPassword(long + "-extra-beyond-72")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}

	// Both inputs share the same first 72 bytes, so they must verify
	// against the same hash.
	if !CheckPassword(long, hash) {
		t.Fatal("72-byte prefix did not verify against hash of longer password")
	}
	if !CheckPassword(long+"-different-tail", hash) {
		t.Fatal("longer password with same prefix did not verify")
	}
}

func TestCheckPasswordRejectsGarbageHash(t *testing.T) {
	if CheckPassword("whatever", "not-a-bcrypt-hash") {
		t.Fatal("CheckPassword accepted a malformed hash")
	}
}
