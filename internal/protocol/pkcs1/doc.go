// Package pkcs1 implements the PKCS #1 v1.5 type 2 (encryption) block format.
//
// A block for a k-byte modulus is laid out as
//
//	0x00 | 0x02 | PS (k-mLen-3 non-zero random bytes) | 0x00 | M
//
// PS is at least MinPaddingLen bytes long, so a message holds at most k-11
// bytes. Unpad left-pads its input with zero bytes to k bytes before checking
// the layout, because converting the decrypted integer back to bytes drops the
// leading 0x00.
package pkcs1
