package keygen_test

import (
	"errors"
	mrand "math/rand"
	"path/filepath"
	"testing"

	"github.com/google/uuid"

	"tinyrsa/internal/crypto"
	"tinyrsa/internal/cryptoerr"
	"tinyrsa/internal/domain"
	"tinyrsa/internal/services/keygen"
	"tinyrsa/internal/store"
)

const strongPass = "Correct-Horse-9"

func newService() *keygen.Service {
	ks := store.NewKeyFileStore(crypto.KDFArgon2id, crypto.KDFParams{Time: 1, Memory: 1 << 10, Threads: 1})
	return keygen.New(ks, nil)
}

func opts(dir string) domain.KeygenOptions {
	return domain.KeygenOptions{
		Bits:        256,
		Certainty:   0.999,
		PublicPath:  filepath.Join(dir, "key.pub"),
		PrivatePath: filepath.Join(dir, "key.sec"),
	}
}

func TestGenerate_WritesBothHalves(t *testing.T) {
	svc := newService()
	o := opts(t.TempDir())

	kp, fp, err := svc.Generate(o)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if _, err := uuid.Parse(kp.ID.String()); err != nil {
		t.Fatalf("key id %q is not a uuid: %v", kp.ID, err)
	}
	if len(fp) != 20 {
		t.Fatalf("fingerprint %q has length %d, want 20", fp, len(fp))
	}

	pub, pubFP, err := svc.Inspect(o.PublicPath, "")
	if err != nil {
		t.Fatalf("Inspect(public): %v", err)
	}
	sec, secFP, err := svc.Inspect(o.PrivatePath, "")
	if err != nil {
		t.Fatalf("Inspect(private): %v", err)
	}
	if pubFP != fp || secFP != fp {
		t.Fatalf("fingerprints %s/%s, want %s", pubFP, secFP, fp)
	}
	if pub.ID != kp.ID || sec.ID != kp.ID {
		t.Fatalf("key ids %s/%s, want %s", pub.ID, sec.ID, kp.ID)
	}
	if sec.Private == nil || sec.Private.PrivateExponent.Cmp(kp.Private.PrivateExponent) != 0 {
		t.Fatal("private key not persisted")
	}
}

func TestGenerate_Sealed(t *testing.T) {
	svc := newService()
	o := opts(t.TempDir())
	o.Passphrase = strongPass

	if _, _, err := svc.Generate(o); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	lk, _, err := svc.Inspect(o.PrivatePath, "")
	if err != nil {
		t.Fatalf("Inspect without passphrase: %v", err)
	}
	if !lk.Sealed || lk.Private != nil {
		t.Fatalf("got %+v, want sealed key without private half", lk)
	}
	if lk, _, err = svc.Inspect(o.PrivatePath, strongPass); err != nil || lk.Private == nil {
		t.Fatalf("Inspect with passphrase: %v", err)
	}
}

func TestGenerate_FixedExponent(t *testing.T) {
	svc := newService()
	o := opts(t.TempDir())
	o.Exponent = 65537

	kp, _, err := svc.Generate(o)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if kp.Public.PublicExponent.Int64() != 65537 {
		t.Fatalf("e = %v, want 65537", kp.Public.PublicExponent)
	}
}

func TestGenerate_RejectsBadOptions(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name   string
		mutate func(o *domain.KeygenOptions)
		want   error
	}{
		{"weak passphrase", func(o *domain.KeygenOptions) { o.Passphrase = "short" }, keygen.ErrWeakPassphrase},
		{"same path", func(o *domain.KeygenOptions) { o.PrivatePath = o.PublicPath }, keygen.ErrSamePath},
		{"missing path", func(o *domain.KeygenOptions) { o.PublicPath = "" }, keygen.ErrMissingPath},
		{"tiny modulus", func(o *domain.KeygenOptions) { o.Bits = 64 }, cryptoerr.ErrInvalidParameter},
		{"bad certainty", func(o *domain.KeygenOptions) { o.Certainty = 1 }, cryptoerr.ErrInvalidParameter},
	}
	svc := newService()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := opts(dir)
			tt.mutate(&o)
			if _, _, err := svc.Generate(o); !errors.Is(err, tt.want) {
				t.Fatalf("got %v, want %v", err, tt.want)
			}
		})
	}
}

func TestGenerate_WithRandom(t *testing.T) {
	ks := store.NewKeyFileStore(crypto.KDFArgon2id, crypto.KDFParams{Time: 1, Memory: 1 << 10, Threads: 1})
	var moduli [2]string
	for i := range moduli {
		svc := keygen.New(ks, nil, keygen.WithRandom(mrand.New(mrand.NewSource(7))))
		o := opts(t.TempDir())
		o.Bits = 128
		kp, _, err := svc.Generate(o)
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		moduli[i] = kp.Public.Modulus.Text(16)
	}
	if moduli[0] != moduli[1] {
		t.Fatalf("same seed gave different moduli: %s vs %s", moduli[0], moduli[1])
	}
}
