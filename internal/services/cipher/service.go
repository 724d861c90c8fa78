package cipher

import (
	"encoding/base64"
	"fmt"
	"io"
	"log"

	"tinyrsa/internal/crypto"
	"tinyrsa/internal/domain"
	"tinyrsa/internal/protocol/pkcs1"
	"tinyrsa/internal/protocol/rsa"
	"tinyrsa/internal/util/memzero"
)

// Service moves file contents through RSA encryption and decryption.
type Service struct {
	keys   domain.KeyStore
	blobs  domain.BlobStore
	random io.Reader
	log    *log.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithRandom sets the source of the padding bytes.
func WithRandom(random io.Reader) Option {
	return func(s *Service) { s.random = random }
}

// New returns a cipher service. A nil logger discards output.
func New(keys domain.KeyStore, blobs domain.BlobStore, logger *log.Logger, opts ...Option) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	s := &Service{keys: keys, blobs: blobs, log: logger}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// EncryptFile encrypts the contents of inPath for the key in publicPath and
// writes the k-byte ciphertext (base64 text when armor is set) to outPath.
// The plaintext must fit in a single block.
func (s *Service) EncryptFile(publicPath, inPath, outPath string, armor bool) error {
	id, pub, err := s.keys.LoadPublicKey(publicPath)
	if err != nil {
		return err
	}
	k := pub.Size()
	msg, err := s.blobs.ReadLimited(inPath, pkcs1.MaxMessageLen(k))
	if err != nil {
		return fmt.Errorf("plaintext for a %d-byte modulus: %w", k, err)
	}
	defer memzero.Zero(msg)

	ct, err := rsa.Encrypt(s.random, pub, msg)
	if err != nil {
		return err
	}
	if armor {
		ct = []byte(crypto.B64(ct) + "\n")
	}
	if err := s.blobs.WriteBytes(outPath, ct); err != nil {
		return err
	}
	s.log.Printf("encrypted %d bytes from %s to %s with key %s", len(msg), inPath, outPath, id)
	return nil
}

// DecryptFile decrypts the ciphertext in inPath with the private key in
// privatePath and writes the plaintext to outPath.
func (s *Service) DecryptFile(privatePath, passphrase, inPath, outPath string, armor bool) error {
	id, priv, err := s.keys.LoadPrivateKey(privatePath, passphrase)
	if err != nil {
		return err
	}
	k := priv.Size()
	limit := k
	if armor {
		// Allow a trailing CRLF after the encoded block.
		limit = base64.StdEncoding.EncodedLen(k) + 2
	}
	ct, err := s.blobs.ReadLimited(inPath, limit)
	if err != nil {
		return fmt.Errorf("ciphertext for a %d-byte modulus: %w", k, err)
	}
	if armor {
		if ct, err = crypto.FromB64(ct); err != nil {
			return fmt.Errorf("ciphertext armor: %w", err)
		}
	}

	msg, err := rsa.Decrypt(priv, ct)
	if err != nil {
		return err
	}
	defer memzero.Zero(msg)
	if err := s.blobs.WriteBytes(outPath, msg); err != nil {
		return err
	}
	s.log.Printf("decrypted %d bytes from %s to %s with key %s", len(msg), inPath, outPath, id)
	return nil
}

// Compile-time assertion that Service implements domain.CipherService.
var _ domain.CipherService = (*Service)(nil)
