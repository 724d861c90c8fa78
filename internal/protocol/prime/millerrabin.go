package prime

import (
	"fmt"
	"io"
	"math"
	"math/big"

	"tinyrsa/internal/crypto"
	"tinyrsa/internal/cryptoerr"
)

var (
	ErrInvalidCertainty = fmt.Errorf("certainty must lie strictly between 0 and 1: %w", cryptoerr.ErrInvalidParameter)
	ErrNotPositive      = fmt.Errorf("primality candidate must be positive: %w", cryptoerr.ErrInvalidParameter)
)

var one = big.NewInt(1)

// Rounds returns the number of Miller-Rabin rounds needed so that a composite
// passes with probability at most 1 - certainty, using the 4^-t bound.
func Rounds(certainty float64) (int, error) {
	if !(certainty > 0 && certainty < 1) {
		return 0, ErrInvalidCertainty
	}
	t := 1
	for 1-math.Pow(4, -float64(t)) < certainty {
		t++
	}
	return t, nil
}

// MillerRabin runs rounds independent Miller-Rabin rounds on n with bases drawn
// uniformly from (1, n-1). It returns false as soon as one round fails.
//
// Values up to SmallPrimeBound are answered from the sieve.
func MillerRabin(random io.Reader, n *big.Int, rounds int) (bool, error) {
	if n.Sign() <= 0 {
		return false, ErrNotPositive
	}
	if isSmall(n) {
		return smallIsPrime(n), nil
	}
	if n.Bit(0) == 0 {
		return false, nil
	}

	// n-1 = q * 2^k with q odd.
	nm1 := new(big.Int).Sub(n, one)
	k := nm1.TrailingZeroBits()
	q := new(big.Int).Rsh(nm1, k)

	x := new(big.Int)
NextRound:
	for i := 0; i < rounds; i++ {
		a, err := crypto.RandomInRange(random, one, nm1)
		if err != nil {
			return false, err
		}
		x.Exp(a, q, n)
		if x.Cmp(one) == 0 || x.Cmp(nm1) == 0 {
			continue
		}
		// x = a^(q*2^j) for j = 1..k-1.
		for j := uint(1); j < k; j++ {
			x.Mul(x, x).Mod(x, n)
			if x.Cmp(nm1) == 0 {
				continue NextRound
			}
			if x.Cmp(one) == 0 {
				return false, nil
			}
		}
		return false, nil
	}
	return true, nil
}

// IsProbablePrime applies the small-prime filter and Miller-Rabin with the
// round count derived from certainty.
func IsProbablePrime(random io.Reader, n *big.Int, certainty float64) (bool, error) {
	rounds, err := Rounds(certainty)
	if err != nil {
		return false, err
	}
	return probablyPrime(random, n, rounds)
}

func probablyPrime(random io.Reader, n *big.Int, rounds int) (bool, error) {
	if n.Sign() <= 0 {
		return false, ErrNotPositive
	}
	if isSmall(n) {
		return smallIsPrime(n), nil
	}
	if hasSmallFactor(n) {
		return false, nil
	}
	return MillerRabin(random, n, rounds)
}
