package types

import "math/big"

// PublicKey is the public half of an RSA key pair.
type PublicKey struct {
	Modulus        *big.Int
	PublicExponent *big.Int
}

// Size returns the modulus length in bytes (k). Padded blocks and ciphertexts
// for this key are exactly this long.
func (k PublicKey) Size() int { return (k.Modulus.BitLen() + 7) / 8 }

// PrivateKey is the secret half of an RSA key pair.
//
// Prime1, Prime2, Exponent1, Exponent2 and Coefficient exist to run decryption
// through the Chinese Remainder Theorem:
//
//	Modulus     = Prime1 * Prime2
//	Exponent1   = PrivateExponent mod (Prime1-1)
//	Exponent2   = PrivateExponent mod (Prime2-1)
//	Coefficient = Prime2^-1 mod Prime1
//
// Values are never mutated after derivation.
type PrivateKey struct {
	Modulus         *big.Int
	PublicExponent  *big.Int
	PrivateExponent *big.Int
	Prime1          *big.Int
	Prime2          *big.Int
	Exponent1       *big.Int
	Exponent2       *big.Int
	Coefficient     *big.Int
}

// Public returns the public half of k.
func (k PrivateKey) Public() PublicKey {
	return PublicKey{Modulus: k.Modulus, PublicExponent: k.PublicExponent}
}

// Size returns the modulus length in bytes.
func (k PrivateKey) Size() int { return k.Public().Size() }

// KeyPair couples the two halves produced by one generation call.
type KeyPair struct {
	ID      KeyID
	Public  PublicKey
	Private PrivateKey
}
