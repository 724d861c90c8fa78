package rsa

import (
	"errors"
	"fmt"
	"io"
	"math/big"

	"tinyrsa/internal/crypto"
	"tinyrsa/internal/cryptoerr"
	"tinyrsa/internal/domain"
	"tinyrsa/internal/protocol/prime"
)

// MinModulusBits is the smallest modulus GenerateKeyPair accepts; a 12-byte
// modulus leaves room for one message byte after padding.
const MinModulusBits = 96

var one = big.NewInt(1)

// ExponentSelector picks a public exponent for the given totient.
type ExponentSelector func(random io.Reader, totient *big.Int) (*big.Int, error)

// RandomExponent samples e uniformly from (1, totient) until gcd(e, totient) = 1.
func RandomExponent(random io.Reader, totient *big.Int) (*big.Int, error) {
	gcd := new(big.Int)
	for {
		e, err := crypto.RandomInRange(random, one, totient)
		if err != nil {
			return nil, err
		}
		if gcd.GCD(nil, nil, e, totient).Cmp(one) == 0 {
			return e, nil
		}
	}
}

// FixedExponent always selects e. It fails with ErrExponentNotCoprime when e
// shares a factor with the totient.
func FixedExponent(e int64) ExponentSelector {
	return func(_ io.Reader, totient *big.Int) (*big.Int, error) {
		exp := big.NewInt(e)
		if e < 3 || exp.Cmp(totient) >= 0 {
			return nil, fmt.Errorf("public exponent %d out of range: %w", e, cryptoerr.ErrInvalidParameter)
		}
		if new(big.Int).GCD(nil, nil, exp, totient).Cmp(one) != 0 {
			return nil, ErrExponentNotCoprime
		}
		return exp, nil
	}
}

// Derive builds the key pair for primes p and q with the exponent picked by
// sel (RandomExponent when nil).
func Derive(random io.Reader, p, q *big.Int, sel ExponentSelector) (domain.PublicKey, domain.PrivateKey, error) {
	if sel == nil {
		sel = RandomExponent
	}
	if p.Cmp(q) == 0 {
		return domain.PublicKey{}, domain.PrivateKey{}, keygenErr("derive", cryptoerr.KindInvalidParameter, errEqualPrimes)
	}
	e, err := sel(random, totient(p, q))
	if err != nil {
		return domain.PublicKey{}, domain.PrivateKey{}, keygenErr("select exponent", cryptoerr.KindOf(err), err)
	}
	priv, err := FromPrimes(p, q, e)
	if err != nil {
		return domain.PublicKey{}, domain.PrivateKey{}, err
	}
	return priv.Public(), priv, nil
}

// FromPrimes derives the private key for primes p, q and public exponent e.
func FromPrimes(p, q, e *big.Int) (domain.PrivateKey, error) {
	if p.Cmp(one) <= 0 || q.Cmp(one) <= 0 {
		return domain.PrivateKey{}, keygenErr("derive", cryptoerr.KindInvalidParameter, errors.New("primes must exceed 1"))
	}
	if p.Cmp(q) == 0 {
		return domain.PrivateKey{}, keygenErr("derive", cryptoerr.KindInvalidParameter, errEqualPrimes)
	}
	n := new(big.Int).Mul(p, q)
	phi := totient(p, q)
	if e.Cmp(one) <= 0 || e.Cmp(phi) >= 0 {
		return domain.PrivateKey{}, keygenErr("derive", cryptoerr.KindInvalidParameter, errExponentRange)
	}

	d := new(big.Int).ModInverse(e, phi)
	if d == nil {
		return domain.PrivateKey{}, keygenErr("derive", cryptoerr.KindInvalidParameter, ErrExponentNotCoprime)
	}
	if d.Sign() < 0 || d.Cmp(n) > 0 {
		return domain.PrivateKey{}, keygenErr("derive", cryptoerr.KindArithmetic, errPrivateExponent)
	}
	qInv := new(big.Int).ModInverse(q, p)
	if qInv == nil {
		return domain.PrivateKey{}, keygenErr("derive", cryptoerr.KindInvalidParameter, errNotCoprimes)
	}

	return domain.PrivateKey{
		Modulus:         n,
		PublicExponent:  new(big.Int).Set(e),
		PrivateExponent: d,
		Prime1:          new(big.Int).Set(p),
		Prime2:          new(big.Int).Set(q),
		Exponent1:       new(big.Int).Mod(d, new(big.Int).Sub(p, one)),
		Exponent2:       new(big.Int).Mod(d, new(big.Int).Sub(q, one)),
		Coefficient:     qInv,
	}, nil
}

// GenerateKeyPair draws two independent primes splitting bits as evenly as
// possible and derives a key pair from them. Primes are redrawn until the
// modulus has exactly bits bits. Each prime is composite with probability at
// most 1-certainty.
func GenerateKeyPair(random io.Reader, bits int, certainty float64, sel ExponentSelector) (domain.KeyPair, error) {
	if bits < MinModulusBits {
		return domain.KeyPair{}, keygenErr("generate", cryptoerr.KindInvalidParameter,
			fmt.Errorf("modulus of %d bits is below the minimum of %d", bits, MinModulusBits))
	}
	for {
		p, err := prime.Generate(random, bits/2, certainty)
		if err != nil {
			return domain.KeyPair{}, err
		}
		q, err := prime.Generate(random, bits-bits/2, certainty)
		if err != nil {
			return domain.KeyPair{}, err
		}
		if p.Cmp(q) == 0 || new(big.Int).Mul(p, q).BitLen() != bits {
			continue
		}
		pub, priv, err := Derive(random, p, q, sel)
		if errors.Is(err, ErrExponentNotCoprime) {
			continue
		}
		if err != nil {
			return domain.KeyPair{}, err
		}
		return domain.KeyPair{Public: pub, Private: priv}, nil
	}
}

// Validate checks that every field of priv is consistent with the others.
func Validate(priv domain.PrivateKey) error {
	for _, v := range []*big.Int{
		priv.Modulus, priv.PublicExponent, priv.PrivateExponent, priv.Prime1,
		priv.Prime2, priv.Exponent1, priv.Exponent2, priv.Coefficient,
	} {
		if v == nil {
			return keygenErr("validate", cryptoerr.KindInvalidParameter, errMissingField)
		}
	}
	p, q, d := priv.Prime1, priv.Prime2, priv.PrivateExponent
	if p.Cmp(one) <= 0 || q.Cmp(one) <= 0 || p.Cmp(q) == 0 {
		return keygenErr("validate", cryptoerr.KindArithmetic, errEqualPrimes)
	}

	inconsistent := func(what string) error {
		return keygenErr("validate", cryptoerr.KindArithmetic, fmt.Errorf("%s is inconsistent", what))
	}
	if priv.PublicExponent.Cmp(one) <= 0 || priv.PublicExponent.Cmp(priv.Modulus) >= 0 {
		return keygenErr("validate", cryptoerr.KindArithmetic, errExponentRange)
	}
	if new(big.Int).Mul(p, q).Cmp(priv.Modulus) != 0 {
		return inconsistent("modulus")
	}
	if d.Sign() < 0 || d.Cmp(priv.Modulus) > 0 {
		return keygenErr("validate", cryptoerr.KindArithmetic, errPrivateExponent)
	}
	ed := new(big.Int).Mul(priv.PublicExponent, d)
	if ed.Mod(ed, totient(p, q)).Cmp(one) != 0 {
		return inconsistent("private exponent")
	}
	if new(big.Int).Mod(d, new(big.Int).Sub(p, one)).Cmp(priv.Exponent1) != 0 {
		return inconsistent("exponent1")
	}
	if new(big.Int).Mod(d, new(big.Int).Sub(q, one)).Cmp(priv.Exponent2) != 0 {
		return inconsistent("exponent2")
	}
	qInv := new(big.Int).Mul(priv.Coefficient, q)
	if qInv.Mod(qInv, p).Cmp(one) != 0 {
		return inconsistent("coefficient")
	}
	return nil
}

func totient(p, q *big.Int) *big.Int {
	pm1 := new(big.Int).Sub(p, one)
	qm1 := new(big.Int).Sub(q, one)
	return pm1.Mul(pm1, qm1)
}
