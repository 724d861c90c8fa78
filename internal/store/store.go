package store

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"tinyrsa/internal/crypto"
	"tinyrsa/internal/domain"
	"tinyrsa/internal/protocol/rsa"
)

var (
	ErrMalformedKeyFile   = errors.New("malformed key file")
	ErrUnsupportedVersion = errors.New("unsupported key file version")
	ErrWrongKind          = errors.New("wrong key kind")
	// ErrPassphraseRequired is returned when a sealed private key is loaded
	// without a passphrase.
	ErrPassphraseRequired = errors.New("private key is sealed; passphrase required")
	ErrKeyMismatch        = errors.New("sealed fields do not match the public fields")
)

// KeyFileStore persists RSA keys as JSON key files.
type KeyFileStore struct {
	mu     sync.Mutex
	kdf    crypto.KDF
	params crypto.KDFParams
	random io.Reader
}

// Option configures a KeyFileStore.
type Option func(*KeyFileStore)

// WithRandom sets the source of salts and nonces for sealed keys.
func WithRandom(random io.Reader) Option {
	return func(s *KeyFileStore) { s.random = random }
}

// NewKeyFileStore returns a KeyFileStore that seals private keys with kdf
// under the given cost parameters.
func NewKeyFileStore(kdf crypto.KDF, params crypto.KDFParams, opts ...Option) *KeyFileStore {
	s := &KeyFileStore{kdf: kdf, params: params}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SavePublicKey writes the public key file.
func (s *KeyFileStore) SavePublicKey(path string, id domain.KeyID, key domain.PublicKey) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := keyFile{
		Version:   keyFileVersion,
		KeyID:     id,
		Kind:      domain.KindPublic,
		keyFields: publicFields(key),
	}
	return writeJSON(path, doc, publicFileMode)
}

// LoadPublicKey reads the public half from a key file of either kind.
func (s *KeyFileStore) LoadPublicKey(path string) (domain.KeyID, domain.PublicKey, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := readKeyFile(path)
	if err != nil {
		return "", domain.PublicKey{}, err
	}
	pub, err := doc.public()
	if err != nil {
		return "", domain.PublicKey{}, fmt.Errorf("%s: %w", path, err)
	}
	return doc.KeyID, pub, nil
}

// SavePrivateKey writes the private key file, sealing the private fields
// when passphrase is non-empty.
func (s *KeyFileStore) SavePrivateKey(path, passphrase string, id domain.KeyID, key domain.PrivateKey) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := keyFile{
		Version: keyFileVersion,
		KeyID:   id,
		Kind:    domain.KindPrivate,
	}
	fields := privateFields(key)
	if passphrase == "" {
		doc.keyFields = fields
		return writeJSON(path, doc, secretFileMode)
	}

	env, err := seal(s.random, s.kdf, s.params, passphrase, fields)
	if err != nil {
		return err
	}
	doc.keyFields = publicFields(key.Public())
	doc.Sealed = env
	return writeJSON(path, doc, secretFileMode)
}

// LoadPrivateKey reads and validates a private key file.
func (s *KeyFileStore) LoadPrivateKey(path, passphrase string) (domain.KeyID, domain.PrivateKey, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := readKeyFile(path)
	if err != nil {
		return "", domain.PrivateKey{}, err
	}
	if doc.Kind != domain.KindPrivate {
		return "", domain.PrivateKey{}, fmt.Errorf("%s: %w: %s", path, ErrWrongKind, doc.Kind)
	}
	priv, err := openPrivate(doc, passphrase)
	if err != nil {
		return "", domain.PrivateKey{}, fmt.Errorf("%s: %w", path, err)
	}
	return doc.KeyID, priv, nil
}

// LoadKey reads a key file of either kind. A sealed private key loaded without
// a passphrase comes back with only its public half and Sealed set.
func (s *KeyFileStore) LoadKey(path, passphrase string) (domain.LoadedKey, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := readKeyFile(path)
	if err != nil {
		return domain.LoadedKey{}, err
	}
	pub, err := doc.public()
	if err != nil {
		return domain.LoadedKey{}, fmt.Errorf("%s: %w", path, err)
	}
	lk := domain.LoadedKey{ID: doc.KeyID, Kind: doc.Kind, Public: pub, Sealed: doc.Sealed != nil}
	if doc.Kind == domain.KindPublic || (lk.Sealed && passphrase == "") {
		return lk, nil
	}

	priv, err := openPrivate(doc, passphrase)
	if err != nil {
		return domain.LoadedKey{}, fmt.Errorf("%s: %w", path, err)
	}
	lk.Private = &priv
	return lk, nil
}

func readKeyFile(path string) (keyFile, error) {
	var doc keyFile
	if err := readJSON(path, &doc); err != nil {
		return keyFile{}, err
	}
	if doc.Version > keyFileVersion {
		return keyFile{}, fmt.Errorf("%s: %w %d", path, ErrUnsupportedVersion, doc.Version)
	}
	switch doc.Kind {
	case domain.KindPublic, domain.KindPrivate:
	default:
		return keyFile{}, fmt.Errorf("%s: %w: unknown kind %q", path, ErrMalformedKeyFile, doc.Kind)
	}
	return doc, nil
}

func openPrivate(doc keyFile, passphrase string) (domain.PrivateKey, error) {
	fields := doc.keyFields
	if doc.Sealed != nil {
		if passphrase == "" {
			return domain.PrivateKey{}, ErrPassphraseRequired
		}
		var sealed keyFields
		if err := open(doc.Sealed, passphrase, &sealed); err != nil {
			return domain.PrivateKey{}, err
		}
		if sealed.Modulus != fields.Modulus || sealed.PublicExponent != fields.PublicExponent {
			return domain.PrivateKey{}, ErrKeyMismatch
		}
		fields = sealed
	}
	priv, err := fields.private()
	if err != nil {
		return domain.PrivateKey{}, err
	}
	if err := rsa.Validate(priv); err != nil {
		return domain.PrivateKey{}, err
	}
	return priv, nil
}

// Compile-time assertions that the stores implement the domain interfaces.
var (
	_ domain.KeyStore  = (*KeyFileStore)(nil)
	_ domain.BlobStore = (*BlobFileStore)(nil)
)
