package store

import (
	"encoding/json"
	"fmt"
	"io"

	"tinyrsa/internal/crypto"
	"tinyrsa/internal/util/memzero"
)

// The current supported version of the sealed envelope stored on disk.
const envelopeVersion = 1

// envelope is the on-disk JSON structure holding the sealed private fields and
// the KDF parameters needed to open them.
type envelope struct {
	V      int              `json:"v"`
	KDF    crypto.KDF       `json:"kdf"`
	Salt   []byte           `json:"salt"`
	Nonce  []byte           `json:"nonce"`
	Params crypto.KDFParams `json:"params"`
	Cipher []byte           `json:"cipher"`
}

// seal encrypts the JSON form of v under a key derived from passphrase.
func seal(random io.Reader, kdf crypto.KDF, params crypto.KDFParams, passphrase string, v any) (*envelope, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	defer memzero.Zero(raw)
	salt, nonce, ct, err := crypto.SealSecret(random, kdf, params, passphrase, raw)
	if err != nil {
		return nil, err
	}
	return &envelope{
		V:      envelopeVersion,
		KDF:    kdf,
		Salt:   salt,
		Nonce:  nonce,
		Params: params,
		Cipher: ct,
	}, nil
}

// open decrypts env with passphrase and decodes the result into out.
func open(env *envelope, passphrase string, out any) error {
	if env.V > envelopeVersion {
		return fmt.Errorf("%w: envelope version %d", ErrUnsupportedVersion, env.V)
	}
	if err := crypto.CheckKDFParams(env.KDF, env.Params); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedKeyFile, err)
	}
	raw, err := crypto.OpenSecret(env.KDF, env.Params, passphrase, env.Salt, env.Nonce, env.Cipher)
	if err != nil {
		return err
	}
	defer memzero.Zero(raw)
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: sealed fields: %v", ErrMalformedKeyFile, err)
	}
	return nil
}
