package codec

import (
	"bytes"
	"testing"
)

func TestScriptToPublicKey(t *testing.T) {
	c := Mainnet()

	key, err := c.ScriptToPublicKey(mustHex(t, vectorScriptHex))
	if err != nil {
		t.Fatalf("ScriptToPublicKey() error = %v", err)
	}
	if !bytes.Equal(key[:], mustHex(t, vectorKeyHex)) {
		t.Errorf("ScriptToPublicKey() got = %x, want %s", key, vectorKeyHex)
	}

	if _, err := c.ScriptToPublicKey([]byte{0x01, 0x02}); err == nil {
		t.Error("ScriptToPublicKey() expected error for malformed script")
	}
}

func TestVerify(t *testing.T) {
	c := Mainnet()
	key := mustHex(t, vectorKeyHex)
	otherKey := mustHex(t, "c88e0a3b7a7d61b7cebec09cfa67be1506de29f25e12c73b6c77deb94b1e6f09")

	tests := []struct {
		name    string
		pub     []byte
		address string
		want    bool
	}{
		{
			name:    "matching key and address",
			pub:     key,
			address: vectorAddress,
			want:    true,
		},
		{
			name:    "different key",
			pub:     otherKey,
			address: vectorAddress,
			want:    false,
		},
		{
			name:    "case differs",
			pub:     key,
			address: "QvegNNcKFBtkMcZTLj42pki2YDYTvHaGyBxBaWrPaHwj",
			want:    false,
		},
		{
			name:    "invalid key length",
			pub:     key[:31],
			address: vectorAddress,
			want:    false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Verify(tt.pub, tt.address); got != tt.want {
				t.Errorf("Verify() got = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVerifyAfterDerive(t *testing.T) {
	c := Mainnet()
	keys := [][]byte{
		mustHex(t, vectorKeyHex),
		mustHex(t, "c88e0a3b7a7d61b7cebec09cfa67be1506de29f25e12c73b6c77deb94b1e6f09"),
		bytes.Repeat([]byte{0x11}, 32),
	}
	for _, key := range keys {
		d, err := c.DeriveAddress(key)
		if err != nil {
			t.Fatalf("DeriveAddress(%x) error = %v", key, err)
		}
		if !c.Verify(key, d.Address) {
			t.Errorf("Verify(%x, own address) = false", key)
		}
	}
}
