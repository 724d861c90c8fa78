// Package cipher encrypts and decrypts whole files with persisted RSA keys.
package cipher
