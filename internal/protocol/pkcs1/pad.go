package pkcs1

import (
	"fmt"
	"io"

	"tinyrsa/internal/crypto"
	"tinyrsa/internal/cryptoerr"
)

const (
	// MinPaddingLen is the minimum length of the random padding string.
	MinPaddingLen = 8
	// Overhead is the number of block bytes not available to the message.
	Overhead = MinPaddingLen + 3

	blockType = 0x02
)

// MaxMessageLen returns the longest message that fits a k-byte block.
func MaxMessageLen(k int) int {
	if k < Overhead {
		return 0
	}
	return k - Overhead
}

// Pad encodes msg into a k-byte type 2 block. The padding bytes are drawn
// uniformly from 1..255 using random (nil selects crypto/rand).
func Pad(random io.Reader, k int, msg []byte) ([]byte, error) {
	if len(msg) > k-Overhead {
		return nil, &PadError{
			Op:   "pad",
			Kind: cryptoerr.KindInputTooLarge,
			Err:  fmt.Errorf("%w: %d bytes, limit %d", errMessageTooLong, len(msg), MaxMessageLen(k)),
		}
	}
	ps, err := crypto.NonZeroBytes(random, k-len(msg)-3)
	if err != nil {
		return nil, err
	}

	block := make([]byte, k)
	block[1] = blockType
	copy(block[2:], ps)
	copy(block[k-len(msg):], msg)
	return block, nil
}

// Unpad recovers the message from a type 2 block for a k-byte modulus. The
// block may be shorter than k when leading zero bytes were lost.
func Unpad(k int, block []byte) ([]byte, error) {
	if len(block) > k {
		return nil, &PadError{
			Op:   "unpad",
			Kind: cryptoerr.KindInputTooLarge,
			Err:  fmt.Errorf("%w: %d bytes, modulus %d", errBlockTooLong, len(block), k),
		}
	}
	if k < Overhead {
		return nil, tampered(errPaddingTooShort)
	}
	em := block
	if len(em) < k {
		em = make([]byte, k)
		copy(em[k-len(block):], block)
	}

	if em[0] != 0x00 {
		return nil, tampered(errBadLeadingByte)
	}
	if em[1] != blockType {
		return nil, tampered(errBadBlockType)
	}
	sep := -1
	for i := 2; i < k; i++ {
		if em[i] == 0x00 {
			sep = i
			break
		}
	}
	if sep < 0 {
		return nil, tampered(errNoTerminator)
	}
	if sep < 2+MinPaddingLen {
		return nil, tampered(errPaddingTooShort)
	}

	msg := make([]byte, k-sep-1)
	copy(msg, em[sep+1:])
	return msg, nil
}
