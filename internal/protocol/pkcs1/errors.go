package pkcs1

import (
	"errors"
	"fmt"

	"tinyrsa/internal/cryptoerr"
)

var (
	errMessageTooLong  = errors.New("message too long for modulus")
	errBlockTooLong    = errors.New("block longer than modulus")
	errBadLeadingByte  = errors.New("leading byte is not 0x00")
	errBadBlockType    = errors.New("block type is not 0x02")
	errNoTerminator    = errors.New("no 0x00 terminator after padding")
	errPaddingTooShort = errors.New("padding string shorter than 8 bytes")
)

// PadError reports a failure to build or parse a padded block.
type PadError struct {
	Op   string // "pad" or "unpad"
	Kind cryptoerr.Kind
	Err  error
}

func (e *PadError) Error() string {
	return fmt.Sprintf("pkcs1 %s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *PadError) Unwrap() error { return e.Err }

// ErrorKind implements cryptoerr.Kinded.
func (e *PadError) ErrorKind() cryptoerr.Kind { return e.Kind }

// Is implements errors.Is for sentinel error matching.
func (e *PadError) Is(target error) bool {
	return target != nil && target == e.Kind.Sentinel()
}

func tampered(err error) error {
	return &PadError{Op: "unpad", Kind: cryptoerr.KindTampered, Err: err}
}
