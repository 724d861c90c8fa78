// Package cryptoerr defines the error kinds shared by the RSA packages.
//
// Each package reports failures through its own typed error (rsa.KeygenError,
// pkcs1.PadError, rsa.CipherError). All of them carry a Kind and match the
// sentinels below with errors.Is, so callers can decide recoverability without
// knowing which layer failed.
package cryptoerr

import "errors"

// Kind classifies a failure.
type Kind int

const (
	// KindUnknown is the zero value; it never matches a sentinel.
	KindUnknown Kind = iota
	// KindArithmetic marks derived key material that violates its invariants.
	KindArithmetic
	// KindInputTooLarge marks a message, file or ciphertext over its size bound.
	KindInputTooLarge
	// KindTampered marks a padded block that fails the structural checks.
	KindTampered
	// KindOutOfRange marks an integer representative that is not below the modulus.
	KindOutOfRange
	// KindInvalidParameter marks caller-supplied parameters that cannot be used.
	KindInvalidParameter
)

// Sentinel errors for errors.Is() checks.
var (
	ErrArithmeticInconsistency = errors.New("arithmetic inconsistency in derived key")
	ErrInputTooLarge           = errors.New("input too large")
	ErrTampered                = errors.New("malformed or tampered padding")
	ErrOutOfRange              = errors.New("integer representative out of range")
	ErrInvalidParameter        = errors.New("invalid parameter")
)

func (k Kind) String() string {
	switch k {
	case KindArithmetic:
		return "arithmetic inconsistency"
	case KindInputTooLarge:
		return "input too large"
	case KindTampered:
		return "tampered or malformed"
	case KindOutOfRange:
		return "out of range"
	case KindInvalidParameter:
		return "invalid parameter"
	}
	return "unknown"
}

// Sentinel returns the sentinel error for k, or nil for KindUnknown.
func (k Kind) Sentinel() error {
	switch k {
	case KindArithmetic:
		return ErrArithmeticInconsistency
	case KindInputTooLarge:
		return ErrInputTooLarge
	case KindTampered:
		return ErrTampered
	case KindOutOfRange:
		return ErrOutOfRange
	case KindInvalidParameter:
		return ErrInvalidParameter
	}
	return nil
}

// Kinded is implemented by every typed error in the RSA packages.
type Kinded interface {
	error
	ErrorKind() Kind
}

// KindOf returns the kind of the first Kinded error in err's chain.
func KindOf(err error) Kind {
	var k Kinded
	if errors.As(err, &k) {
		return k.ErrorKind()
	}
	for _, kind := range []Kind{KindArithmetic, KindInputTooLarge, KindTampered, KindOutOfRange, KindInvalidParameter} {
		if errors.Is(err, kind.Sentinel()) {
			return kind
		}
	}
	return KindUnknown
}
