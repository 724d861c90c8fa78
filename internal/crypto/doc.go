// Package crypto exposes the low-level primitives the RSA packages build on.
//
// Contents
//
//   - Uniform sampling of big integers from a secure source (RandomBits,
//     RandomInRange) and non-zero filler bytes (NonZeroBytes)
//   - Passphrase sealing of secret key files: Argon2id or scrypt key
//     derivation with ChaCha20-Poly1305 (DeriveKEK, SealSecret, OpenSecret)
//   - Short modulus fingerprints for display/logging (Fingerprint)
//   - Base64 armor helpers (B64, FromB64)
//
// # Notes
//
// Every function that consumes entropy takes an io.Reader; nil selects
// crypto/rand.Reader. Tests pass deterministic readers to pin outputs.
package crypto
