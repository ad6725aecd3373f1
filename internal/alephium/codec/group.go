package codec

// GroupOf assigns a script hash to its shard group. The accumulator wraps at
// 32 bits and the fold reads its bytes most significant first; both are
// load-bearing for compatibility with the chain's own assignment.
func (c *Codec) GroupOf(hash [HashSize]byte) uint8 {
	acc := uint32(5381)
	for _, b := range hash {
		acc = (acc << 5) + acc + uint32(b)
	}
	acc |= 1
	folded := byte(acc>>24) ^ byte(acc>>16) ^ byte(acc>>8) ^ byte(acc)
	return folded % c.params.GroupCount
}

// GroupOfAddress assigns an address string to its shard group.
func (c *Codec) GroupOfAddress(address string) (uint8, error) {
	hash, err := c.AddressHashOf(address)
	if err != nil {
		return 0, err
	}
	return c.GroupOf(hash), nil
}
