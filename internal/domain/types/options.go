package types

// KeygenOptions selects the parameters of a new key pair.
type KeygenOptions struct {
	// Bits is the target modulus length; the primes get Bits/2 and Bits-Bits/2.
	Bits int
	// Certainty bounds the chance that either prime is composite by 1-Certainty.
	Certainty float64
	// Exponent fixes the public exponent; zero selects a random coprime one.
	Exponent int64

	PublicPath  string
	PrivatePath string
	// Passphrase seals the private key file when non-empty.
	Passphrase string
}

// LoadedKey is either half of a key pair read back from disk.
type LoadedKey struct {
	ID      KeyID
	Kind    KeyKind
	Public  PublicKey
	Private *PrivateKey // nil for public key files
	Sealed  bool
}
