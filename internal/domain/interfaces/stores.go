package interfaces

import domaintypes "tinyrsa/internal/domain/types"

// KeyStore persists RSA keys field by field.
type KeyStore interface {
	SavePublicKey(path string, id domaintypes.KeyID, key domaintypes.PublicKey) error
	LoadPublicKey(path string) (domaintypes.KeyID, domaintypes.PublicKey, error)

	// SavePrivateKey seals the key when passphrase is non-empty.
	SavePrivateKey(path, passphrase string, id domaintypes.KeyID, key domaintypes.PrivateKey) error
	LoadPrivateKey(path, passphrase string) (domaintypes.KeyID, domaintypes.PrivateKey, error)

	// LoadKey reads a key file of either kind.
	LoadKey(path, passphrase string) (domaintypes.LoadedKey, error)
}

// BlobStore moves raw plaintext and ciphertext bytes in and out of files.
type BlobStore interface {
	ReadLimited(path string, max int) ([]byte, error)
	WriteBytes(path string, b []byte) error
}
