package auth

import (
	"errors"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/taskvault/taskvault/internal/common"
)

func TestHasher_HashAndCompare(t *testing.T) {
	t.Parallel()

	h := NewHasher(bcrypt.MinCost)

	hash, err := h.Hash("secret1")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	if hash == "secret1" {
		t.Fatalf("hash must not equal the plaintext")
	}
	if !strings.HasPrefix(hash, "$2") {
		t.Fatalf("unexpected hash format: %q", hash)
	}

	if err := h.Compare(hash, "secret1"); err != nil {
		t.Fatalf("Compare with correct password: %v", err)
	}
}

func TestHasher_Compare_Mismatch(t *testing.T) {
	t.Parallel()

	h := NewHasher(bcrypt.MinCost)

	hash, err := h.Hash("secret1")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}

	err = h.Compare(hash, "wrong")
	if !errors.Is(err, common.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestNewHasher_ClampsCost(t *testing.T) {
	t.Parallel()

	if got := NewHasher(-1).cost; got != bcrypt.DefaultCost {
		t.Fatalf("cost = %d, want %d", got, bcrypt.DefaultCost)
	}
	if got := NewHasher(100).cost; got != bcrypt.DefaultCost {
		t.Fatalf("cost = %d, want %d", got, bcrypt.DefaultCost)
	}
	if got := NewHasher(bcrypt.MinCost).cost; got != bcrypt.MinCost {
		t.Fatalf("cost = %d, want %d", got, bcrypt.MinCost)
	}
}

func TestHasher_Compare_GarbageHash(t *testing.T) {
	t.Parallel()

	h := NewHasher(bcrypt.MinCost)

	err := h.Compare("not-a-bcrypt-hash", "secret1")
	if err == nil {
		t.Fatalf("expected error for garbage hash")
	}
	if errors.Is(err, common.ErrInvalidCredentials) {
		t.Fatalf("garbage hash is an infrastructure fault, not a credential mismatch")
	}
}
