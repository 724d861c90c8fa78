package crypto

import (
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/scrypt"

	"tinyrsa/internal/util/memzero"
)

const (
	KeyBytes   = chacha20poly1305.KeySize
	SaltBytes  = 16
	NonceBytes = chacha20poly1305.NonceSize
)

// KDF names a passphrase key-derivation function.
type KDF string

const (
	KDFArgon2id KDF = "argon2id"
	KDFScrypt   KDF = "scrypt"
)

// Upper bounds on the cost parameters accepted from a sealed file.
const (
	maxArgon2Time   = 16
	maxArgon2Memory = 1 << 20 // KiB
	maxScryptN      = 1 << 20
	maxScryptRP     = 1 << 10
	maxScryptMemory = 1 << 30 // bytes, 128*N*r
)

var (
	ErrUnknownKDF = errors.New("unknown key derivation function")
	// ErrInvalidKDFParams is returned for cost parameters that are out of
	// bounds for the selected KDF.
	ErrInvalidKDFParams = errors.New("invalid key derivation parameters")
	// ErrWrongPassphrase is returned when the passphrase is incorrect or the
	// sealed secret has been modified.
	ErrWrongPassphrase = errors.New("wrong passphrase or corrupted secret")
)

// KDFParams holds the cost parameters of both supported KDFs; only the fields
// of the selected KDF are used.
type KDFParams struct {
	Time    uint32 `json:"time,omitempty"`
	Memory  uint32 `json:"memory,omitempty"`
	Threads uint8  `json:"threads,omitempty"`

	N int `json:"scrypt_N,omitempty"`
	R int `json:"scrypt_r,omitempty"`
	P int `json:"scrypt_p,omitempty"`
}

// DefaultKDFParams returns the tunables used for newly sealed secrets.
func DefaultKDFParams(kdf KDF) KDFParams {
	switch kdf {
	case KDFScrypt:
		return KDFParams{N: 1 << 15, R: 8, P: 1}
	default:
		return KDFParams{Time: 1, Memory: 1 << 16, Threads: 4}
	}
}

// ParseKDF validates a KDF name.
func ParseKDF(name string) (KDF, error) {
	switch KDF(name) {
	case KDFArgon2id, KDFScrypt:
		return KDF(name), nil
	case "":
		return KDFArgon2id, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKDF, name)
}

// CheckKDFParams rejects cost parameters the KDF cannot run with, or that
// would make it allocate more than a fixed ceiling.
func CheckKDFParams(kdf KDF, p KDFParams) error {
	switch kdf {
	case KDFArgon2id:
		if p.Time < 1 || p.Time > maxArgon2Time {
			return fmt.Errorf("%w: argon2id time %d", ErrInvalidKDFParams, p.Time)
		}
		if p.Threads < 1 {
			return fmt.Errorf("%w: argon2id threads %d", ErrInvalidKDFParams, p.Threads)
		}
		if p.Memory < 8*uint32(p.Threads) || p.Memory > maxArgon2Memory {
			return fmt.Errorf("%w: argon2id memory %d KiB", ErrInvalidKDFParams, p.Memory)
		}
		return nil
	case KDFScrypt:
		if p.N <= 1 || p.N&(p.N-1) != 0 || p.N > maxScryptN {
			return fmt.Errorf("%w: scrypt N %d", ErrInvalidKDFParams, p.N)
		}
		if p.R < 1 || p.P < 1 || p.R > maxScryptRP || p.P > maxScryptRP || p.R*p.P > maxScryptRP {
			return fmt.Errorf("%w: scrypt r=%d p=%d", ErrInvalidKDFParams, p.R, p.P)
		}
		if 128*p.N*p.R > maxScryptMemory {
			return fmt.Errorf("%w: scrypt needs %d bytes", ErrInvalidKDFParams, 128*p.N*p.R)
		}
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownKDF, kdf)
}

// DeriveKEK derives a key-encryption key from a passphrase and salt.
func DeriveKEK(kdf KDF, passphrase string, salt []byte, params KDFParams) ([]byte, error) {
	if err := CheckKDFParams(kdf, params); err != nil {
		return nil, err
	}
	switch kdf {
	case KDFArgon2id:
		return argon2.IDKey([]byte(passphrase), salt, params.Time, params.Memory, params.Threads, KeyBytes), nil
	case KDFScrypt:
		return scrypt.Key([]byte(passphrase), salt, params.N, params.R, params.P, KeyBytes)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownKDF, kdf)
}

// SealSecret encrypts plaintext under a KEK derived from passphrase and a fresh
// salt. The salt, KDF name and cost parameters are bound as associated data.
func SealSecret(random io.Reader, kdf KDF, params KDFParams, passphrase string, plaintext []byte) (salt, nonce, ciphertext []byte, err error) {
	r := Reader(random)
	salt = make([]byte, SaltBytes)
	if _, err = io.ReadFull(r, salt); err != nil {
		return nil, nil, nil, err
	}
	kek, err := DeriveKEK(kdf, passphrase, salt, params)
	if err != nil {
		return nil, nil, nil, err
	}
	defer memzero.Zero(kek)

	aead, err := chacha20poly1305.New(kek)
	if err != nil {
		return nil, nil, nil, err
	}
	nonce = make([]byte, NonceBytes)
	if _, err = io.ReadFull(r, nonce); err != nil {
		return nil, nil, nil, err
	}
	return salt, nonce, aead.Seal(nil, nonce, plaintext, associatedData(kdf, params, salt)), nil
}

// OpenSecret reverses SealSecret.
func OpenSecret(kdf KDF, params KDFParams, passphrase string, salt, nonce, ciphertext []byte) ([]byte, error) {
	if len(salt) != SaltBytes {
		return nil, errors.New("invalid salt size")
	}
	if len(nonce) != NonceBytes {
		return nil, errors.New("invalid nonce size")
	}
	kek, err := DeriveKEK(kdf, passphrase, salt, params)
	if err != nil {
		return nil, err
	}
	defer memzero.Zero(kek)

	aead, err := chacha20poly1305.New(kek)
	if err != nil {
		return nil, err
	}
	pt, err := aead.Open(nil, nonce, ciphertext, associatedData(kdf, params, salt))
	if err != nil {
		return nil, ErrWrongPassphrase
	}
	return pt, nil
}

func associatedData(kdf KDF, p KDFParams, salt []byte) []byte {
	ad := fmt.Appendf(nil, "%s:t=%d:m=%d:th=%d:N=%d:r=%d:p=%d:",
		kdf, p.Time, p.Memory, p.Threads, p.N, p.R, p.P)
	return append(ad, salt...)
}
