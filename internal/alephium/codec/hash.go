package codec

import "golang.org/x/crypto/blake2b"

// Blake2b256 is the digest the chain applies to unlock scripts. It is not
// the SHA-256 that Nostr uses for event ids; the two protocols hash in
// separate domains.
func Blake2b256(b []byte) [HashSize]byte {
	return blake2b.Sum256(b)
}
