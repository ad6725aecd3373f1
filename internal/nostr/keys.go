// Package nostr normalizes Nostr identities into the raw 32-byte key form
// the address codec consumes. Input-format branching (npub vs hex) lives
// here, never in the codec.
package nostr

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcutil/bech32"
)

// KeySize is the length of an x-only secp256k1 public key.
const KeySize = 32

// npubHRP is the bech32 human-readable part of a Nostr public key.
const npubHRP = "npub"

// DecodePublicKey accepts a Nostr public key as either an npub bech32 string
// or 64 hex characters and returns the raw 32-byte form.
func DecodePublicKey(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(strings.ToLower(s), npubHRP+"1") {
		return decodeNpub(s)
	}
	raw, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("public key is neither npub nor hex: %w", err)
	}
	if len(raw) != KeySize {
		return nil, fmt.Errorf("hex public key must be %d bytes, got %d", KeySize, len(raw))
	}
	return raw, nil
}

func decodeNpub(s string) ([]byte, error) {
	hrp, data, err := bech32.Decode(s)
	if err != nil {
		return nil, fmt.Errorf("decode npub: %w", err)
	}
	if hrp != npubHRP {
		return nil, fmt.Errorf("unexpected bech32 prefix %q", hrp)
	}
	raw, err := bech32.ConvertBits(data, 5, 8, false)
	if err != nil {
		return nil, fmt.Errorf("npub payload: %w", err)
	}
	if len(raw) != KeySize {
		return nil, fmt.Errorf("npub payload must be %d bytes, got %d", KeySize, len(raw))
	}
	return raw, nil
}

// EncodeNpub renders a raw 32-byte public key in npub form.
func EncodeNpub(pub []byte) (string, error) {
	if len(pub) != KeySize {
		return "", fmt.Errorf("public key must be %d bytes, got %d", KeySize, len(pub))
	}
	data, err := bech32.ConvertBits(pub, 8, 5, true)
	if err != nil {
		return "", fmt.Errorf("npub payload: %w", err)
	}
	return bech32.Encode(npubHRP, data)
}
