// Package rsa derives RSA key pairs from freshly generated primes and runs
// PKCS #1 v1.5 type 2 encryption and CRT decryption.
//
// # Flows
//
// Key generation:
//  1. Draw two independent primes of Bits/2 and Bits-Bits/2 bits (package prime),
//     redrawing until their product has exactly Bits bits.
//  2. n = p*q, totient = (p-1)(q-1).
//  3. Pick e with an ExponentSelector; RandomExponent rejection-samples e in
//     (1, totient) until gcd(e, totient) = 1.
//  4. d = e^-1 mod totient, then dP, dQ and qInv for the CRT.
//
// Encryption pads the message to the modulus length, checks the integer is
// below n and raises it to e. Decryption works modulo p and q separately
// (half-width exponents, roughly four times cheaper than c^d mod n) and
// recombines with Garner's formula before unpadding.
//
// # Errors
//
// KeygenError and CipherError carry a cryptoerr.Kind and match the cryptoerr
// sentinels with errors.Is. Padding failures keep their kind when wrapped.
//
// Keys are plain values and are never mutated after derivation, so they can be
// shared between goroutines. The arithmetic is not constant time.
package rsa
