package rsa

import (
	"errors"
	"io"
	"math/big"

	"tinyrsa/internal/cryptoerr"
	"tinyrsa/internal/domain"
	"tinyrsa/internal/protocol/pkcs1"
	"tinyrsa/internal/util/memzero"
)

var (
	errMessageRange    = errors.New("message representative out of range")
	errCiphertextRange = errors.New("ciphertext representative out of range")
	errCiphertextLen   = errors.New("ciphertext longer than the modulus")
)

// EncryptInt returns m^e mod n. m must lie in [0, n).
func EncryptInt(pub domain.PublicKey, m *big.Int) (*big.Int, error) {
	if err := checkPublic(pub); err != nil {
		return nil, err
	}
	if m.Sign() < 0 || m.Cmp(pub.Modulus) >= 0 {
		return nil, &CipherError{Op: "encrypt", Kind: cryptoerr.KindOutOfRange, Err: errMessageRange}
	}
	return new(big.Int).Exp(m, pub.PublicExponent, pub.Modulus), nil
}

// DecryptInt returns c^d mod n, computed modulo each prime and recombined.
// c must lie in [0, n).
func DecryptInt(priv domain.PrivateKey, c *big.Int) (*big.Int, error) {
	if err := checkPublic(priv.Public()); err != nil {
		return nil, err
	}
	if c.Sign() < 0 || c.Cmp(priv.Modulus) >= 0 {
		return nil, &CipherError{Op: "decrypt", Kind: cryptoerr.KindOutOfRange, Err: errCiphertextRange}
	}

	m1 := new(big.Int).Exp(c, priv.Exponent1, priv.Prime1)
	m2 := new(big.Int).Exp(c, priv.Exponent2, priv.Prime2)
	defer memzero.Int(m1)
	defer memzero.Int(m2)

	// h = qInv * (m1 - m2) mod p; Mod is Euclidean so h is never negative.
	h := m1.Sub(m1, m2)
	h.Mul(h, priv.Coefficient)
	h.Mod(h, priv.Prime1)

	m := h.Mul(h, priv.Prime2)
	return new(big.Int).Add(m, m2), nil
}

// Encrypt pads msg to the modulus length and encrypts it. The ciphertext is
// always exactly pub.Size() bytes.
func Encrypt(random io.Reader, pub domain.PublicKey, msg []byte) ([]byte, error) {
	if err := checkPublic(pub); err != nil {
		return nil, err
	}
	k := pub.Size()
	block, err := pkcs1.Pad(random, k, msg)
	if err != nil {
		return nil, cipherErr("encrypt", err)
	}
	m := new(big.Int).SetBytes(block)
	memzero.Zero(block)
	defer memzero.Int(m)

	c, err := EncryptInt(pub, m)
	if err != nil {
		return nil, err
	}
	out := make([]byte, k)
	c.FillBytes(out)
	return out, nil
}

// Decrypt reverses Encrypt. Inputs shorter than the modulus are accepted as
// big-endian integers with their leading zero bytes dropped.
func Decrypt(priv domain.PrivateKey, ct []byte) ([]byte, error) {
	if err := checkPublic(priv.Public()); err != nil {
		return nil, err
	}
	k := priv.Size()
	if len(ct) > k {
		return nil, &CipherError{Op: "decrypt", Kind: cryptoerr.KindInputTooLarge, Err: errCiphertextLen}
	}

	m, err := DecryptInt(priv, new(big.Int).SetBytes(ct))
	if err != nil {
		return nil, err
	}
	em := make([]byte, k)
	m.FillBytes(em)
	memzero.Int(m)
	defer memzero.Zero(em)

	msg, err := pkcs1.Unpad(k, em)
	if err != nil {
		return nil, cipherErr("decrypt", err)
	}
	return msg, nil
}

func checkPublic(pub domain.PublicKey) error {
	if pub.Modulus == nil || pub.PublicExponent == nil || pub.Modulus.Sign() <= 0 {
		return &CipherError{Op: "check key", Kind: cryptoerr.KindInvalidParameter, Err: errMissingField}
	}
	return nil
}
