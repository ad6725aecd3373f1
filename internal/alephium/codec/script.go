package codec

import "bytes"

// BuildScript serializes the single-key unlock script embedding pub between
// the protocol's fixed prefix and suffix.
func (c *Codec) BuildScript(pub []byte) ([]byte, error) {
	if len(pub) != PublicKeySize {
		return nil, InvalidKeyLengthError{Len: len(pub)}
	}
	script := make([]byte, 0, len(c.params.ScriptPrefix)+PublicKeySize+len(c.params.ScriptSuffix))
	script = append(script, c.params.ScriptPrefix...)
	script = append(script, pub...)
	script = append(script, c.params.ScriptSuffix...)
	return script, nil
}

// ParseScript matches script against the fixed template and returns the
// embedded public key. This is a template match, not a script parser: any
// other shape is rejected whole, never partially interpreted.
func (c *Codec) ParseScript(script []byte) ([PublicKeySize]byte, error) {
	var key [PublicKeySize]byte
	prefix, suffix := c.params.ScriptPrefix, c.params.ScriptSuffix
	if len(script) != len(prefix)+PublicKeySize+len(suffix) {
		return key, MalformedScriptError{Reason: "wrong length", Len: len(script)}
	}
	if !bytes.Equal(script[:len(prefix)], prefix) {
		return key, MalformedScriptError{Reason: "wrong prefix", Len: len(script)}
	}
	if !bytes.Equal(script[len(script)-len(suffix):], suffix) {
		return key, MalformedScriptError{Reason: "wrong suffix", Len: len(script)}
	}
	copy(key[:], script[len(prefix):len(prefix)+PublicKeySize])
	return key, nil
}
