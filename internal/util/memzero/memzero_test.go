package memzero_test

import (
	"math/big"
	"testing"

	"tinyrsa/internal/util/memzero"
)

func TestZero(t *testing.T) {
	b := []byte{1, 2, 3, 4}
	memzero.Zero(b)
	for i, v := range b {
		if v != 0 {
			t.Fatalf("byte %d = %d, want 0", i, v)
		}
	}
	memzero.Zero(nil)
}

func TestInt(t *testing.T) {
	z, _ := new(big.Int).SetString("123456789abcdef0123456789abcdef", 16)
	words := z.Bits()
	memzero.Int(z)
	if z.Sign() != 0 {
		t.Fatalf("z = %v, want 0", z)
	}
	for i, w := range words {
		if w != 0 {
			t.Fatalf("word %d = %x, want 0", i, w)
		}
	}
	memzero.Int(nil)
}
