package app_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"

	"tinyrsa/internal/app"
	"tinyrsa/internal/crypto"
)

func newViper(t *testing.T) *viper.Viper {
	t.Helper()
	v := viper.New()
	v.Set(app.KeyHome, t.TempDir())
	v.Set(app.KeyEnvFile, "")
	return v
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := app.LoadConfig(newViper(t))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Bits != 1024 || cfg.Certainty != 0.999999 || cfg.Exponent != 0 {
		t.Fatalf("got %+v", cfg)
	}
	if cfg.KDF != crypto.KDFArgon2id || cfg.KDFParams != crypto.DefaultKDFParams(crypto.KDFArgon2id) {
		t.Fatalf("kdf = %s %+v", cfg.KDF, cfg.KDFParams)
	}
}

func TestLoadConfig_Environment(t *testing.T) {
	t.Setenv("TINYRSA_BITS", "2048")
	t.Setenv("TINYRSA_KDF", "scrypt")

	cfg, err := app.LoadConfig(newViper(t))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Bits != 2048 {
		t.Fatalf("bits = %d, want 2048", cfg.Bits)
	}
	if cfg.KDF != crypto.KDFScrypt || cfg.KDFParams.N == 0 {
		t.Fatalf("kdf = %s %+v, want scrypt", cfg.KDF, cfg.KDFParams)
	}
}

func TestLoadConfig_DotEnv(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, "test.env")
	if err := os.WriteFile(envFile, []byte("TINYRSA_EXPONENT=65537\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("TINYRSA_EXPONENT", "")
	os.Unsetenv("TINYRSA_EXPONENT")

	v := newViper(t)
	v.Set(app.KeyEnvFile, envFile)
	cfg, err := app.LoadConfig(v)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Exponent != 65537 {
		t.Fatalf("exponent = %d, want 65537", cfg.Exponent)
	}
}

func TestLoadConfig_File(t *testing.T) {
	home := t.TempDir()
	yaml := "bits: 512\ncertainty: 0.99\nverbose: true\n"
	if err := os.WriteFile(filepath.Join(home, "config.yaml"), []byte(yaml), 0o600); err != nil {
		t.Fatal(err)
	}

	v := newViper(t)
	v.Set(app.KeyHome, home)
	cfg, err := app.LoadConfig(v)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Bits != 512 || cfg.Certainty != 0.99 || !cfg.Verbose {
		t.Fatalf("got %+v", cfg)
	}

	v = newViper(t)
	v.Set(app.KeyConfig, filepath.Join(home, "missing.yaml"))
	if _, err := app.LoadConfig(v); err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := map[string]any{
		app.KeyKDF:       "bcrypt",
		app.KeyCertainty: 1.5,
		app.KeyBits:      -1,
	}
	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			v := newViper(t)
			v.Set(key, value)
			if _, err := app.LoadConfig(v); err == nil {
				t.Fatalf("%s=%v: expected error", key, value)
			}
		})
	}
}

func TestNewWire(t *testing.T) {
	cfg, err := app.LoadConfig(newViper(t))
	if err != nil {
		t.Fatal(err)
	}
	cfg.Verbose = true
	var logs bytes.Buffer
	w, err := app.NewWire(cfg, &logs)
	if err != nil {
		t.Fatalf("NewWire: %v", err)
	}
	if w.KeyGen == nil || w.Cipher == nil || w.Keys == nil || w.Blobs == nil {
		t.Fatalf("incomplete wire: %+v", w)
	}
	w.Log.Printf("hello")
	if !strings.Contains(logs.String(), "tinyrsa: ") {
		t.Fatalf("log output %q lacks prefix", logs.String())
	}

	cfg.Verbose = false
	logs.Reset()
	w, _ = app.NewWire(cfg, &logs)
	w.Log.Printf("quiet")
	if logs.Len() != 0 {
		t.Fatalf("quiet logger wrote %q", logs.String())
	}
}
