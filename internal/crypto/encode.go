package crypto

import (
	"bytes"
	"encoding/base64"
)

// B64 returns standard base64 encoding without newlines.
func B64(b []byte) string { return base64.StdEncoding.EncodeToString(b) }

// FromB64 decodes standard base64, ignoring surrounding whitespace.
func FromB64(s []byte) ([]byte, error) {
	s = bytes.TrimSpace(s)
	out := make([]byte, base64.StdEncoding.DecodedLen(len(s)))
	n, err := base64.StdEncoding.Decode(out, s)
	if err != nil {
		return nil, err
	}
	return out[:n], nil
}
