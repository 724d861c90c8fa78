package types

// KeyID ties a persisted public key to the private key generated with it.
type KeyID string

// String returns the string form of the key identifier.
func (id KeyID) String() string { return string(id) }

// Fingerprint is a short identifier for a modulus presented to users.
type Fingerprint string

// String returns the string form of the fingerprint.
func (f Fingerprint) String() string { return string(f) }

// KeyKind tells public and private key files apart.
type KeyKind string

const (
	KindPublic  KeyKind = "rsa-public"
	KindPrivate KeyKind = "rsa-private"
)
