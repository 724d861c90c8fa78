package crypto

import (
	"crypto/rand"
	"errors"
	"io"
	"math/big"
)

// ErrEmptyRange is returned when the open interval (min, max) holds no integer.
var ErrEmptyRange = errors.New("empty sampling range")

var two = big.NewInt(2)

// Reader returns random, or crypto/rand.Reader when random is nil.
func Reader(random io.Reader) io.Reader {
	if random == nil {
		return rand.Reader
	}
	return random
}

// RandomBits returns a uniformly distributed integer in [0, 2^bits).
func RandomBits(random io.Reader, bits int) (*big.Int, error) {
	if bits <= 0 {
		return new(big.Int), nil
	}
	buf := make([]byte, (bits+7)/8)
	if _, err := io.ReadFull(Reader(random), buf); err != nil {
		return nil, err
	}
	// Drop the excess high bits of the first byte.
	if excess := len(buf)*8 - bits; excess > 0 {
		buf[0] &= byte(0xff >> excess)
	}
	return new(big.Int).SetBytes(buf), nil
}

// RandomInRange returns n with min < n < max, drawn uniformly.
//
// Draws max.BitLen() random bits and rejects anything outside the interval.
// Reducing modulo the range width would skew the low end of the interval,
// so out-of-range draws are discarded instead.
func RandomInRange(random io.Reader, min, max *big.Int) (*big.Int, error) {
	if new(big.Int).Sub(max, min).Cmp(two) < 0 {
		return nil, ErrEmptyRange
	}
	bits := max.BitLen()
	for {
		n, err := RandomBits(random, bits)
		if err != nil {
			return nil, err
		}
		if n.Cmp(min) > 0 && n.Cmp(max) < 0 {
			return n, nil
		}
	}
}

// NonZeroBytes fills a new n-byte buffer with bytes uniform over 1..255.
func NonZeroBytes(random io.Reader, n int) ([]byte, error) {
	r := Reader(random)
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, err
	}
	var one [1]byte
	for i := range buf {
		for buf[i] == 0 {
			if _, err := io.ReadFull(r, one[:]); err != nil {
				return nil, err
			}
			buf[i] = one[0]
		}
	}
	return buf, nil
}
