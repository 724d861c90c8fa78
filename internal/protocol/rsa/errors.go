package rsa

import (
	"errors"
	"fmt"

	"tinyrsa/internal/cryptoerr"
)

var (
	// ErrExponentNotCoprime is returned when a fixed public exponent shares a
	// factor with the totient.
	ErrExponentNotCoprime = fmt.Errorf("public exponent is not coprime to the totient: %w", cryptoerr.ErrInvalidParameter)

	errEqualPrimes     = errors.New("primes must be distinct")
	errNotCoprimes     = errors.New("primes share a factor")
	errPrivateExponent = errors.New("private exponent outside [0, n]")
	errExponentRange   = errors.New("public exponent out of range")
	errMissingField    = errors.New("key has a missing field")
)

// KeygenError reports a failure to derive or validate key material.
type KeygenError struct {
	Op   string
	Kind cryptoerr.Kind
	Err  error
}

func (e *KeygenError) Error() string {
	return fmt.Sprintf("rsa %s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *KeygenError) Unwrap() error { return e.Err }

// ErrorKind implements cryptoerr.Kinded.
func (e *KeygenError) ErrorKind() cryptoerr.Kind { return e.Kind }

// Is implements errors.Is for sentinel error matching.
func (e *KeygenError) Is(target error) bool {
	return target != nil && target == e.Kind.Sentinel()
}

// CipherError reports a failed encryption or decryption.
type CipherError struct {
	Op   string
	Kind cryptoerr.Kind
	Err  error
}

func (e *CipherError) Error() string {
	return fmt.Sprintf("rsa %s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *CipherError) Unwrap() error { return e.Err }

// ErrorKind implements cryptoerr.Kinded.
func (e *CipherError) ErrorKind() cryptoerr.Kind { return e.Kind }

// Is implements errors.Is for sentinel error matching.
func (e *CipherError) Is(target error) bool {
	return target != nil && target == e.Kind.Sentinel()
}

func keygenErr(op string, kind cryptoerr.Kind, err error) error {
	return &KeygenError{Op: op, Kind: kind, Err: err}
}

func cipherErr(op string, err error) error {
	return &CipherError{Op: op, Kind: cryptoerr.KindOf(err), Err: err}
}
