// Package codec maps secp256k1 x-only public keys to Alephium script-hash
// addresses and back, where back is possible at all.
//
// Forward: key -> unlock script -> BLAKE2b-256 -> tag byte -> base58 string.
// The hash step is one-way, so a public key is only recoverable from an
// on-chain revealed unlock script, never from the address string alone; the
// API mirrors that asymmetry. Every operation is pure and safe for
// concurrent use.
package codec

import "errors"

const (
	// PublicKeySize is the length of an x-only secp256k1 public key.
	PublicKeySize = 32
	// HashSize is the length of the address digest.
	HashSize = 32
)

// Params carries the protocol constants of one address-encoding version.
// A version bump to any constant is expressed as a new Params value that
// coexists with the old one, never as an in-place edit.
type Params struct {
	// ScriptPrefix and ScriptSuffix frame the public key inside the
	// serialized single-key unlock script.
	ScriptPrefix []byte
	ScriptSuffix []byte
	// AddressTag is the address-kind byte prepended to the script hash.
	AddressTag byte
	// GroupCount is the number of shard groups on the chain.
	GroupCount uint8
	// Hash is the chain's 256-bit digest. Nil selects BLAKE2b-256.
	Hash func([]byte) [HashSize]byte
}

// MainnetParams returns the constants of the current mainnet protocol.
func MainnetParams() Params {
	return Params{
		ScriptPrefix: []byte{0x01, 0x01, 0x00, 0x00, 0x00, 0x00, 0x04, 0x58, 0x14, 0x40, 0x20},
		ScriptSuffix: []byte{0x86, 0x85},
		AddressTag:   0x02,
		GroupCount:   4,
		Hash:         Blake2b256,
	}
}

// Codec derives addresses for one fixed set of protocol constants.
type Codec struct {
	params Params
}

// New validates params and returns a Codec for them.
func New(params Params) (*Codec, error) {
	if len(params.ScriptPrefix) == 0 {
		return nil, errors.New("script prefix is required")
	}
	if len(params.ScriptSuffix) == 0 {
		return nil, errors.New("script suffix is required")
	}
	if params.GroupCount == 0 {
		return nil, errors.New("group count must be positive")
	}
	if params.Hash == nil {
		params.Hash = Blake2b256
	}
	return &Codec{params: params}, nil
}

// Mainnet returns a Codec configured with MainnetParams.
func Mainnet() *Codec {
	return &Codec{params: MainnetParams()}
}
