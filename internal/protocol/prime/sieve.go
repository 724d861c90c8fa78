package prime

import (
	"math/big"
	"sync"
)

// SmallPrimeBound bounds the trial-division table: every prime p <= SmallPrimeBound
// is in it.
const SmallPrimeBound = 2000

var (
	sieveOnce   sync.Once
	smallPrimes []int64
	smallBig    []*big.Int
	composite   []bool
)

func initSieve() {
	sieveOnce.Do(func() {
		composite = make([]bool, SmallPrimeBound+1)
		composite[0], composite[1] = true, true
		for i := 2; i <= SmallPrimeBound; i++ {
			if composite[i] {
				continue
			}
			smallPrimes = append(smallPrimes, int64(i))
			smallBig = append(smallBig, big.NewInt(int64(i)))
			for j := i * i; j <= SmallPrimeBound; j += i {
				composite[j] = true
			}
		}
	})
}

// SmallPrimes returns a copy of the primes up to SmallPrimeBound.
func SmallPrimes() []int64 {
	initSieve()
	return append([]int64(nil), smallPrimes...)
}

// isSmall reports whether n is within the sieve table.
func isSmall(n *big.Int) bool {
	return n.Sign() >= 0 && n.IsInt64() && n.Int64() <= SmallPrimeBound
}

// smallIsPrime answers primality from the sieve; n must satisfy isSmall.
func smallIsPrime(n *big.Int) bool {
	initSieve()
	return !composite[n.Int64()]
}

// hasSmallFactor reports whether n is divisible by a prime up to
// SmallPrimeBound. n must be larger than SmallPrimeBound.
func hasSmallFactor(n *big.Int) bool {
	initSieve()
	r := new(big.Int)
	for _, p := range smallBig {
		if r.Mod(n, p).Sign() == 0 {
			return true
		}
	}
	return false
}
