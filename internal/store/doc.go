// Package store provides file-based persistence for RSA keys and the raw
// plaintext/ciphertext files the CLI works on.
//
// Key files are JSON documents with every integer written as lower-case hex.
// A private key saved with a passphrase keeps only its public fields in the
// clear; the rest is sealed with ChaCha20-Poly1305 under a key derived by
// Argon2id or scrypt. Loaded private keys are re-validated before use.
//
// All writes go through a temp file and a rename, so a crash never leaves a
// half-written key behind. Methods are concurrency-safe via internal locking.
package store
