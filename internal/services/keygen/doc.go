// Package keygen generates RSA key pairs and writes both halves to disk.
//
// Each generation is stamped with a random key id (a UUID) that is stored in
// both key files, so halves of different generations can be told apart.
// Passphrases for sealed private keys must pass a basic strength policy.
package keygen
