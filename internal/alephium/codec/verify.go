package codec

// ScriptToPublicKey extracts the public key from an on-chain revealed unlock
// script. A script is required; there is deliberately no operation that
// yields a key from an address string.
func (c *Codec) ScriptToPublicKey(script []byte) ([PublicKeySize]byte, error) {
	return c.ParseScript(script)
}

// Verify reports whether pub derives exactly expectedAddress. The comparison
// is full string equality after re-deriving; there is no partial matching.
func (c *Codec) Verify(pub []byte, expectedAddress string) bool {
	d, err := c.DeriveAddress(pub)
	if err != nil {
		return false
	}
	return d.Address == expectedAddress
}
