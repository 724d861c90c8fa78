package prime

import (
	"fmt"
	"io"
	"math/big"

	"tinyrsa/internal/crypto"
	"tinyrsa/internal/cryptoerr"
)

// ErrInvalidBits is returned for bit lengths that cannot hold a prime.
var ErrInvalidBits = fmt.Errorf("prime bit length must be at least 2: %w", cryptoerr.ErrInvalidParameter)

var two = big.NewInt(2)

// Generate returns a probable prime of exactly bits bits whose chance of being
// composite is at most 1 - certainty.
func Generate(random io.Reader, bits int, certainty float64) (*big.Int, error) {
	if bits < 2 {
		return nil, ErrInvalidBits
	}
	rounds, err := Rounds(certainty)
	if err != nil {
		return nil, err
	}

	for {
		n, err := crypto.RandomBits(random, bits)
		if err != nil {
			return nil, err
		}
		n.SetBit(n, 0, 1)
		n.SetBit(n, bits-1, 1)

		// Walk odd candidates until one passes or the carry grows the value.
		for n.BitLen() == bits {
			ok, err := probablyPrime(random, n, rounds)
			if err != nil {
				return nil, err
			}
			if ok {
				return n, nil
			}
			n.Add(n, two)
		}
	}
}
