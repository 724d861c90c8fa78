// Package memzero wipes sensitive buffers on a best-effort basis.
package memzero

import (
	"crypto/subtle"
	"math/big"
	"runtime"
)

// Zero overwrites b with zeros in a constant-time friendly way.
func Zero(b []byte) {
	if len(b) == 0 {
		return
	}
	zero := make([]byte, len(b))
	subtle.ConstantTimeCopy(1, b, zero)
}

// Int clears the words backing z and sets it to zero.
//
//go:noinline
func Int(z *big.Int) {
	if z == nil {
		return
	}
	words := z.Bits()
	for i := range words {
		words[i] = 0
	}
	z.SetInt64(0)
	runtime.KeepAlive(words)
}
