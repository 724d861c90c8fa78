package interfaces

import domaintypes "tinyrsa/internal/domain/types"

// KeyService generates, persists and inspects RSA key pairs.
type KeyService interface {
	Generate(opts domaintypes.KeygenOptions) (domaintypes.KeyPair, domaintypes.Fingerprint, error)
	Inspect(path, passphrase string) (domaintypes.LoadedKey, domaintypes.Fingerprint, error)
}

// CipherService encrypts and decrypts files with persisted keys.
type CipherService interface {
	EncryptFile(publicPath, inPath, outPath string, armor bool) error
	DecryptFile(privatePath, passphrase, inPath, outPath string, armor bool) error
}
