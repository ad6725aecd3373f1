package codec

import "fmt"

// InvalidKeyLengthError reports a public key that is not exactly 32 bytes.
type InvalidKeyLengthError struct {
	Len int
}

func (e InvalidKeyLengthError) Error() string {
	return fmt.Sprintf("public key must be %d bytes, got %d", PublicKeySize, e.Len)
}

// MalformedScriptError reports an unlock script that does not match the
// fixed single-key template.
type MalformedScriptError struct {
	Reason string
	Len    int
}

func (e MalformedScriptError) Error() string {
	return fmt.Sprintf("malformed unlock script (%s), length %d", e.Reason, e.Len)
}

// WrongAddressKindError reports a decoded address whose tag byte is not the
// script-hash kind.
type WrongAddressKindError struct {
	Tag byte
}

func (e WrongAddressKindError) Error() string {
	return fmt.Sprintf("address tag 0x%02x is not the script-hash kind", e.Tag)
}

// InvalidLengthError reports a decoded address body that is not a tag byte
// followed by a 32-byte hash.
type InvalidLengthError struct {
	Len int
}

func (e InvalidLengthError) Error() string {
	return fmt.Sprintf("decoded address is %d bytes, want %d", e.Len, 1+HashSize)
}
