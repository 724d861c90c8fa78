package crypto

import (
	"crypto/sha256"
	"encoding/hex"
	"math/big"
)

// Fingerprint returns a short hex fingerprint of an RSA modulus.
//
// It hashes the big-endian modulus bytes with SHA-256 and truncates to 10 bytes
// (20 hex chars).
func Fingerprint(modulus *big.Int) string {
	sum := sha256.Sum256(modulus.Bytes())
	return hex.EncodeToString(sum[:10])
}
