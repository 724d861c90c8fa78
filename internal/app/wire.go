package app

import (
	"io"
	"log"

	"tinyrsa/internal/domain"
	ciphersvc "tinyrsa/internal/services/cipher"
	keygensvc "tinyrsa/internal/services/keygen"
	"tinyrsa/internal/store"
)

// Wire bundles all stores and services for the CLI.
type Wire struct {
	Config Config
	Log    *log.Logger

	Keys   domain.KeyStore
	Blobs  domain.BlobStore
	KeyGen domain.KeyService
	Cipher domain.CipherService
}

// NewWire constructs the dependency graph from cfg. Log output goes to logOut
// when cfg.Verbose is set and is discarded otherwise.
func NewWire(cfg Config, logOut io.Writer) (*Wire, error) {
	logger := NewLogger(cfg.Verbose, logOut)

	// File-based stores
	keyStore := store.NewKeyFileStore(cfg.KDF, cfg.KDFParams)
	blobStore := store.NewBlobFileStore()

	// High-level services
	keygenSvc := keygensvc.New(keyStore, logger)
	cipherSvc := ciphersvc.New(keyStore, blobStore, logger)

	return &Wire{
		Config: cfg,
		Log:    logger,
		Keys:   keyStore,
		Blobs:  blobStore,
		KeyGen: keygenSvc,
		Cipher: cipherSvc,
	}, nil
}

// NewLogger returns the logger shared by the services.
func NewLogger(verbose bool, out io.Writer) *log.Logger {
	if !verbose || out == nil {
		out = io.Discard
	}
	return log.New(out, "tinyrsa: ", log.LstdFlags)
}
