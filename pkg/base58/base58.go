// Package base58 implements the unchecksummed base58 encoding used for
// Alephium addresses. The encoding carries no integrity check; a corrupted
// string that stays inside the alphabet decodes silently.
package base58

import "fmt"

const alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

var decodeMap = buildDecodeMap()

func buildDecodeMap() [256]int8 {
	var m [256]int8
	for i := range m {
		m[i] = -1
	}
	for i := 0; i < len(alphabet); i++ {
		m[alphabet[i]] = int8(i)
	}
	return m
}

// InvalidCharacterError reports a character outside the base58 alphabet.
type InvalidCharacterError struct {
	Char byte
	Pos  int
}

func (e InvalidCharacterError) Error() string {
	return fmt.Sprintf("base58: invalid character %q at position %d", e.Char, e.Pos)
}

// Encode returns the base58 form of b. Leading zero bytes map to leading '1'
// characters one-for-one; the remainder is treated as a big-endian integer
// and converted by repeated division.
func Encode(b []byte) string {
	zeros := 0
	for zeros < len(b) && b[zeros] == 0 {
		zeros++
	}

	// Little-endian base58 digit accumulator.
	digits := make([]byte, 0, len(b)*137/100+1)
	for _, c := range b[zeros:] {
		carry := int(c)
		for i := 0; i < len(digits); i++ {
			carry += int(digits[i]) << 8
			digits[i] = byte(carry % 58)
			carry /= 58
		}
		for carry > 0 {
			digits = append(digits, byte(carry%58))
			carry /= 58
		}
	}

	out := make([]byte, 0, zeros+len(digits))
	for i := 0; i < zeros; i++ {
		out = append(out, alphabet[0])
	}
	for i := len(digits) - 1; i >= 0; i-- {
		out = append(out, alphabet[digits[i]])
	}
	return string(out)
}

// Decode parses a base58 string back into bytes, preserving the leading '1'
// run as zero bytes. It fails with InvalidCharacterError on any character
// outside the alphabet.
func Decode(s string) ([]byte, error) {
	zeros := 0
	for zeros < len(s) && s[zeros] == alphabet[0] {
		zeros++
	}

	// Little-endian base256 accumulator.
	acc := make([]byte, 0, len(s))
	for pos := zeros; pos < len(s); pos++ {
		v := decodeMap[s[pos]]
		if v < 0 {
			return nil, InvalidCharacterError{Char: s[pos], Pos: pos}
		}
		carry := int(v)
		for i := 0; i < len(acc); i++ {
			carry += int(acc[i]) * 58
			acc[i] = byte(carry & 0xff)
			carry >>= 8
		}
		for carry > 0 {
			acc = append(acc, byte(carry&0xff))
			carry >>= 8
		}
	}

	out := make([]byte, zeros+len(acc))
	for i := 0; i < len(acc); i++ {
		out[zeros+len(acc)-1-i] = acc[i]
	}
	return out, nil
}
