package codec

import "github.com/ClaudeMonet1/alph-zap/pkg/base58"

// Derivation is the full result of deriving an address from a public key.
type Derivation struct {
	// Address is the base58 address string.
	Address string
	// Hash is the script digest; group assignment consumes this, not the
	// address string.
	Hash [HashSize]byte
	// Script is the unlock script that hashes to Hash.
	Script []byte
}

// DeriveAddress computes the script-hash address controlled by pub.
func (c *Codec) DeriveAddress(pub []byte) (Derivation, error) {
	script, err := c.BuildScript(pub)
	if err != nil {
		return Derivation{}, err
	}
	hash := c.params.Hash(script)
	body := make([]byte, 0, 1+HashSize)
	body = append(body, c.params.AddressTag)
	body = append(body, hash[:]...)
	return Derivation{
		Address: base58.Encode(body),
		Hash:    hash,
		Script:  script,
	}, nil
}

// AddressHashOf recovers the script hash embedded in an address string.
// The hash does not reveal the unlock script or the public key.
func (c *Codec) AddressHashOf(address string) ([HashSize]byte, error) {
	var hash [HashSize]byte
	body, err := base58.Decode(address)
	if err != nil {
		return hash, err
	}
	if len(body) != 1+HashSize {
		return hash, InvalidLengthError{Len: len(body)}
	}
	if body[0] != c.params.AddressTag {
		return hash, WrongAddressKindError{Tag: body[0]}
	}
	copy(hash[:], body[1:])
	return hash, nil
}
