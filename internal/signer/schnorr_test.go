package signer

import (
	"crypto/sha256"
	"strings"
	"testing"

	"github.com/btcsuite/btcd/btcec/v2/schnorr"
)

func TestNewSchnorr(t *testing.T) {
	tests := []struct {
		name    string
		privHex string
		wantErr bool
	}{
		{
			name:    "valid key",
			privHex: strings.Repeat("11", 32),
		},
		{
			name:    "not hex",
			privHex: "zz",
			wantErr: true,
		},
		{
			name:    "short key",
			privHex: "aabb",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSchnorr(tt.privHex)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewSchnorr() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSignVerifies(t *testing.T) {
	s, err := NewSchnorr(strings.Repeat("22", 32))
	if err != nil {
		t.Fatalf("NewSchnorr() error = %v", err)
	}

	txID := sha256.Sum256([]byte("unsigned transaction bytes"))
	sigBytes, err := s.Sign(txID[:])
	if err != nil {
		t.Fatalf("Sign() error = %v", err)
	}
	if len(sigBytes) != 64 {
		t.Fatalf("Sign() returned %d bytes, want 64", len(sigBytes))
	}

	sig, err := schnorr.ParseSignature(sigBytes)
	if err != nil {
		t.Fatalf("ParseSignature() error = %v", err)
	}
	pub, err := schnorr.ParsePubKey(s.PublicKey())
	if err != nil {
		t.Fatalf("ParsePubKey() error = %v", err)
	}
	if !sig.Verify(txID[:], pub) {
		t.Error("signature does not verify against own public key")
	}
}

func TestSignRejectsShortDigest(t *testing.T) {
	s, err := NewSchnorr(strings.Repeat("33", 32))
	if err != nil {
		t.Fatalf("NewSchnorr() error = %v", err)
	}
	if _, err := s.Sign([]byte("too short")); err == nil {
		t.Error("Sign() expected error for non-32-byte digest")
	}
}

func TestPublicKeySize(t *testing.T) {
	s, err := NewSchnorr(strings.Repeat("44", 32))
	if err != nil {
		t.Fatalf("NewSchnorr() error = %v", err)
	}
	if got := len(s.PublicKey()); got != 32 {
		t.Errorf("PublicKey() length = %d, want 32", got)
	}
}
