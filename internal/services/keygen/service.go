package keygen

import (
	"errors"
	"fmt"
	"io"
	"log"
	"time"
	"unicode"

	"github.com/google/uuid"

	"tinyrsa/internal/crypto"
	"tinyrsa/internal/domain"
	"tinyrsa/internal/protocol/rsa"
)

const (
	// minPassphraseLength defines the minimum number of characters required for a passphrase.
	minPassphraseLength = 12
)

var (
	// ErrWeakPassphrase is returned when the passphrase fails the strength policy.
	ErrWeakPassphrase = fmt.Errorf(
		"passphrase is too weak (must be at least %d characters and include upper, lower, "+
			"number, and symbol)",
		minPassphraseLength,
	)
	ErrSamePath    = errors.New("public and private key paths must differ")
	ErrMissingPath = errors.New("both key paths are required")
)

// Service generates key pairs and persists them via a domain.KeyStore.
type Service struct {
	keys   domain.KeyStore
	random io.Reader
	log    *log.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithRandom sets the entropy source for prime and exponent selection.
func WithRandom(random io.Reader) Option {
	return func(s *Service) { s.random = random }
}

// New returns a keygen service backed by the given store. A nil logger
// discards output.
func New(keys domain.KeyStore, logger *log.Logger, opts ...Option) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	s := &Service{keys: keys, log: logger}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Generate creates a key pair with the requested parameters, saves the private
// half (sealed when opts.Passphrase is set) and the public half, and returns the
// pair plus a short fingerprint of the modulus.
func (s *Service) Generate(opts domain.KeygenOptions) (domain.KeyPair, domain.Fingerprint, error) {
	if opts.PublicPath == "" || opts.PrivatePath == "" {
		return domain.KeyPair{}, "", ErrMissingPath
	}
	if opts.PublicPath == opts.PrivatePath {
		return domain.KeyPair{}, "", ErrSamePath
	}
	if opts.Passphrase != "" && !isSecurePassphrase(opts.Passphrase) {
		return domain.KeyPair{}, "", ErrWeakPassphrase
	}

	var sel rsa.ExponentSelector
	if opts.Exponent != 0 {
		sel = rsa.FixedExponent(opts.Exponent)
	}

	start := time.Now()
	kp, err := rsa.GenerateKeyPair(s.random, opts.Bits, opts.Certainty, sel)
	if err != nil {
		return domain.KeyPair{}, "", err
	}
	kp.ID = domain.KeyID(uuid.NewString())
	s.log.Printf("generated %d-bit modulus from %d/%d-bit primes in %s (key %s)",
		kp.Public.Modulus.BitLen(), kp.Private.Prime1.BitLen(), kp.Private.Prime2.BitLen(),
		time.Since(start).Round(time.Millisecond), kp.ID)

	if err := s.keys.SavePrivateKey(opts.PrivatePath, opts.Passphrase, kp.ID, kp.Private); err != nil {
		return domain.KeyPair{}, "", fmt.Errorf("save private key: %w", err)
	}
	if err := s.keys.SavePublicKey(opts.PublicPath, kp.ID, kp.Public); err != nil {
		return domain.KeyPair{}, "", fmt.Errorf("save public key: %w", err)
	}
	s.log.Printf("wrote %s and %s (sealed=%t)", opts.PublicPath, opts.PrivatePath, opts.Passphrase != "")

	return kp, fingerprint(kp.Public), nil
}

// Inspect loads a key file of either kind and returns it with the modulus
// fingerprint.
func (s *Service) Inspect(path, passphrase string) (domain.LoadedKey, domain.Fingerprint, error) {
	lk, err := s.keys.LoadKey(path, passphrase)
	if err != nil {
		return domain.LoadedKey{}, "", err
	}
	return lk, fingerprint(lk.Public), nil
}

func fingerprint(pub domain.PublicKey) domain.Fingerprint {
	return domain.Fingerprint(crypto.Fingerprint(pub.Modulus))
}

// isSecurePassphrase enforces a basic strength policy.
func isSecurePassphrase(passphrase string) bool {
	var hasUpper, hasLower, hasDigit, hasSymbol bool
	if len(passphrase) < minPassphraseLength {
		return false
	}
	for _, r := range passphrase {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r), unicode.IsSymbol(r):
			hasSymbol = true
		}
	}
	return hasUpper && hasLower && hasDigit && hasSymbol
}

// Compile-time assertion that Service implements domain.KeyService.
var _ domain.KeyService = (*Service)(nil)
