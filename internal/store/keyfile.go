package store

import (
	"fmt"
	"math/big"

	"tinyrsa/internal/domain"
)

// The current supported version of the key file format.
const keyFileVersion = 1

// keyFile is the on-disk JSON document for either half of a key pair.
type keyFile struct {
	Version int            `json:"version"`
	KeyID   domain.KeyID   `json:"key_id"`
	Kind    domain.KeyKind `json:"kind"`
	keyFields
	Sealed *envelope `json:"sealed,omitempty"`
}

// keyFields holds the key integers as lower-case hex strings.
type keyFields struct {
	Modulus         string `json:"modulus"`
	PublicExponent  string `json:"public_exponent"`
	PrivateExponent string `json:"private_exponent,omitempty"`
	Prime1          string `json:"prime1,omitempty"`
	Prime2          string `json:"prime2,omitempty"`
	Exponent1       string `json:"exponent1,omitempty"`
	Exponent2       string `json:"exponent2,omitempty"`
	Coefficient     string `json:"coefficient,omitempty"`
}

func hexOf(v *big.Int) string { return v.Text(16) }

func publicFields(k domain.PublicKey) keyFields {
	return keyFields{
		Modulus:        hexOf(k.Modulus),
		PublicExponent: hexOf(k.PublicExponent),
	}
}

func privateFields(k domain.PrivateKey) keyFields {
	f := publicFields(k.Public())
	f.PrivateExponent = hexOf(k.PrivateExponent)
	f.Prime1 = hexOf(k.Prime1)
	f.Prime2 = hexOf(k.Prime2)
	f.Exponent1 = hexOf(k.Exponent1)
	f.Exponent2 = hexOf(k.Exponent2)
	f.Coefficient = hexOf(k.Coefficient)
	return f
}

// fieldParser decodes hex fields, remembering the first failure.
type fieldParser struct {
	err error
}

func (p *fieldParser) parse(name, s string) *big.Int {
	if p.err != nil {
		return nil
	}
	v, ok := new(big.Int).SetString(s, 16)
	if !ok || v.Sign() < 0 {
		p.err = fmt.Errorf("%w: field %s is not a non-negative hex integer", ErrMalformedKeyFile, name)
		return nil
	}
	return v
}

func (f keyFields) public() (domain.PublicKey, error) {
	var p fieldParser
	k := domain.PublicKey{
		Modulus:        p.parse("modulus", f.Modulus),
		PublicExponent: p.parse("public_exponent", f.PublicExponent),
	}
	if p.err != nil {
		return domain.PublicKey{}, p.err
	}
	if k.PublicExponent.Cmp(big.NewInt(1)) <= 0 || k.PublicExponent.Cmp(k.Modulus) >= 0 {
		return domain.PublicKey{}, fmt.Errorf("%w: public exponent must lie in (1, modulus)", ErrMalformedKeyFile)
	}
	return k, nil
}

func (f keyFields) private() (domain.PrivateKey, error) {
	var p fieldParser
	k := domain.PrivateKey{
		Modulus:         p.parse("modulus", f.Modulus),
		PublicExponent:  p.parse("public_exponent", f.PublicExponent),
		PrivateExponent: p.parse("private_exponent", f.PrivateExponent),
		Prime1:          p.parse("prime1", f.Prime1),
		Prime2:          p.parse("prime2", f.Prime2),
		Exponent1:       p.parse("exponent1", f.Exponent1),
		Exponent2:       p.parse("exponent2", f.Exponent2),
		Coefficient:     p.parse("coefficient", f.Coefficient),
	}
	if p.err != nil {
		return domain.PrivateKey{}, p.err
	}
	return k, nil
}
