package pkcs1_test

import (
	"bytes"
	"errors"
	"testing"

	"tinyrsa/internal/cryptoerr"
	"tinyrsa/internal/protocol/pkcs1"
)

func TestPadUnpad_RoundTrip(t *testing.T) {
	for _, k := range []int{11, 12, 16, 64, 128, 256} {
		for mLen := 0; mLen <= pkcs1.MaxMessageLen(k); mLen++ {
			msg := bytes.Repeat([]byte{byte(mLen + 1)}, mLen)
			block, err := pkcs1.Pad(nil, k, msg)
			if err != nil {
				t.Fatalf("Pad(k=%d, mLen=%d): %v", k, mLen, err)
			}
			if len(block) != k {
				t.Fatalf("Pad(k=%d) length = %d, want %d", k, len(block), k)
			}
			got, err := pkcs1.Unpad(k, block)
			if err != nil {
				t.Fatalf("Unpad(k=%d, mLen=%d): %v", k, mLen, err)
			}
			if !bytes.Equal(got, msg) {
				t.Fatalf("Unpad(k=%d) = %x, want %x", k, got, msg)
			}
		}
	}
}

func TestPad_Layout(t *testing.T) {
	const k = 32
	msg := []byte("hello, world")
	block, err := pkcs1.Pad(nil, k, msg)
	if err != nil {
		t.Fatalf("Pad: %v", err)
	}
	if block[0] != 0x00 || block[1] != 0x02 {
		t.Fatalf("bad header %x", block[:2])
	}
	sep := k - len(msg) - 1
	if block[sep] != 0x00 {
		t.Fatalf("terminator missing at %d: %x", sep, block)
	}
	if ps := block[2:sep]; bytes.IndexByte(ps, 0) >= 0 {
		t.Fatalf("padding string contains zero byte: %x", ps)
	}
	if !bytes.Equal(block[sep+1:], msg) {
		t.Fatalf("message tail = %q, want %q", block[sep+1:], msg)
	}
}

func TestPad_DeterministicFiller(t *testing.T) {
	// Zero source bytes are redrawn, so the filler comes out as 1..8.
	src := bytes.NewReader([]byte{1, 2, 0, 3, 4, 5, 6, 7, 8})
	block, err := pkcs1.Pad(src, 12, []byte{0xaa})
	if err != nil {
		t.Fatalf("Pad: %v", err)
	}
	want := []byte{0x00, 0x02, 1, 2, 8, 3, 4, 5, 6, 7, 0x00, 0xaa}
	if !bytes.Equal(block, want) {
		t.Fatalf("got %x, want %x", block, want)
	}
}

func TestPad_Boundary(t *testing.T) {
	const k = 64
	if _, err := pkcs1.Pad(nil, k, make([]byte, k-11)); err != nil {
		t.Fatalf("mLen = k-11 should fit: %v", err)
	}
	_, err := pkcs1.Pad(nil, k, make([]byte, k-10))
	if !errors.Is(err, cryptoerr.ErrInputTooLarge) {
		t.Fatalf("mLen = k-10 error = %v, want ErrInputTooLarge", err)
	}
	var pe *pkcs1.PadError
	if !errors.As(err, &pe) || pe.Op != "pad" {
		t.Fatalf("error %v is not a pad PadError", err)
	}
	if _, err := pkcs1.Pad(nil, 10, nil); !errors.Is(err, cryptoerr.ErrInputTooLarge) {
		t.Fatalf("k=10 error = %v, want ErrInputTooLarge", err)
	}
}

func TestUnpad_LeadingZeroDropped(t *testing.T) {
	const k = 48
	msg := []byte("secret")
	block, err := pkcs1.Pad(nil, k, msg)
	if err != nil {
		t.Fatalf("Pad: %v", err)
	}
	got, err := pkcs1.Unpad(k, block[1:])
	if err != nil {
		t.Fatalf("Unpad(short): %v", err)
	}
	if !bytes.Equal(got, msg) {
		t.Fatalf("got %q, want %q", got, msg)
	}
}

func TestUnpad_Tampered(t *testing.T) {
	const k = 40
	msg := []byte("attack at dawn")
	genuine, err := pkcs1.Pad(nil, k, msg)
	if err != nil {
		t.Fatalf("Pad: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(b []byte) []byte
	}{
		{"flipped marker", func(b []byte) []byte { b[1] ^= 0xff; return b }},
		{"marker one", func(b []byte) []byte { b[1] = 0x01; return b }},
		{"nonzero lead", func(b []byte) []byte { b[0] = 0x01; return b }},
		{"early terminator", func(b []byte) []byte { b[9] = 0x00; return b }},
		{"terminator first", func(b []byte) []byte { b[2] = 0x00; return b }},
		{"no terminator", func(b []byte) []byte {
			for i := 2; i < len(b); i++ {
				if b[i] == 0 {
					b[i] = 0x11
				}
			}
			return b
		}},
		{"marker dropped", func(b []byte) []byte { return b[2:] }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			block := tt.mutate(append([]byte(nil), genuine...))
			got, err := pkcs1.Unpad(k, block)
			if err == nil {
				t.Fatalf("Unpad succeeded with %x", got)
			}
			if !errors.Is(err, cryptoerr.ErrTampered) {
				t.Fatalf("error = %v, want ErrTampered", err)
			}
			if got != nil {
				t.Fatalf("partial message returned: %x", got)
			}
		})
	}
}

func TestUnpad_MinimumPadding(t *testing.T) {
	// Terminator at index 10 (exactly 8 padding bytes) is the smallest legal layout.
	block := []byte{0x00, 0x02, 1, 1, 1, 1, 1, 1, 1, 1, 0x00, 'o', 'k'}
	got, err := pkcs1.Unpad(len(block), block)
	if err != nil {
		t.Fatalf("Unpad: %v", err)
	}
	if string(got) != "ok" {
		t.Fatalf("got %q, want %q", got, "ok")
	}

	block = []byte{0x00, 0x02, 1, 1, 1, 1, 1, 1, 1, 0x00, 'n', 'o', '!'}
	if _, err := pkcs1.Unpad(len(block), block); !errors.Is(err, cryptoerr.ErrTampered) {
		t.Fatalf("7 padding bytes error = %v, want ErrTampered", err)
	}
}

func TestUnpad_BlockTooLong(t *testing.T) {
	_, err := pkcs1.Unpad(16, make([]byte, 17))
	if !errors.Is(err, cryptoerr.ErrInputTooLarge) {
		t.Fatalf("error = %v, want ErrInputTooLarge", err)
	}
	if kind := cryptoerr.KindOf(err); kind != cryptoerr.KindInputTooLarge {
		t.Fatalf("KindOf = %v, want KindInputTooLarge", kind)
	}
}
