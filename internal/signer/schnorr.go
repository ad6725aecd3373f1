// Package signer provides the Schnorr signing capability the wallet
// consumes. Private keys stay inside this package; the address codec never
// sees them.
package signer

import (
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/schnorr"
)

// Schnorr signs transaction ids with a single secp256k1 key, BIP-340 style.
type Schnorr struct {
	priv *btcec.PrivateKey
}

// NewSchnorr parses a 32-byte hex private key.
func NewSchnorr(privHex string) (*Schnorr, error) {
	raw, err := hex.DecodeString(privHex)
	if err != nil {
		return nil, fmt.Errorf("decode private key: %w", err)
	}
	if len(raw) != 32 {
		return nil, fmt.Errorf("private key must be 32 bytes, got %d", len(raw))
	}
	priv, _ := btcec.PrivKeyFromBytes(raw)
	return &Schnorr{priv: priv}, nil
}

// Sign produces a 64-byte signature over a 32-byte transaction id.
func (s *Schnorr) Sign(txID []byte) ([]byte, error) {
	sig, err := schnorr.Sign(s.priv, txID)
	if err != nil {
		return nil, fmt.Errorf("sign transaction id: %w", err)
	}
	return sig.Serialize(), nil
}

// PublicKey returns the x-only public key of the signing key.
func (s *Schnorr) PublicKey() []byte {
	return schnorr.SerializePubKey(s.priv.PubKey())
}
