package domain

import (
	interfaces "tinyrsa/internal/domain/interfaces"
	types "tinyrsa/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	PublicKey     = types.PublicKey
	PrivateKey    = types.PrivateKey
	KeyPair       = types.KeyPair
	KeyID         = types.KeyID
	KeyKind       = types.KeyKind
	Fingerprint   = types.Fingerprint
	KeygenOptions = types.KeygenOptions
	LoadedKey     = types.LoadedKey
)

// Key kinds.
const (
	KindPublic  = types.KindPublic
	KindPrivate = types.KindPrivate
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	KeyService    = interfaces.KeyService
	CipherService = interfaces.CipherService
	KeyStore      = interfaces.KeyStore
	BlobStore     = interfaces.BlobStore
)
