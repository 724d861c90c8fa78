package app

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"tinyrsa/internal/crypto"
)

// EnvPrefix is prepended to every environment variable read by LoadConfig.
const EnvPrefix = "TINYRSA"

// Config keys shared by viper, flags and the environment.
const (
	KeyHome      = "home"
	KeyConfig    = "config"
	KeyEnvFile   = "env_file"
	KeyBits      = "bits"
	KeyCertainty = "certainty"
	KeyExponent  = "exponent"
	KeyKDF       = "kdf"
	KeyVerbose   = "verbose"

	// KeyPassphrase is normally supplied through TINYRSA_PASSPHRASE; keep it
	// out of config files.
	KeyPassphrase = "passphrase"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Home      string  // config directory, e.g. $HOME/.tinyrsa
	Bits      int     // default modulus size for keygen
	Certainty float64 // default primality certainty for keygen
	Exponent  int64   // fixed public exponent; 0 picks a random one
	KDF       crypto.KDF
	KDFParams crypto.KDFParams
	Verbose   bool

	Passphrase string
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyEnvFile, ".env")
	v.SetDefault(KeyBits, 1024)
	v.SetDefault(KeyCertainty, 0.999999)
	v.SetDefault(KeyExponent, 0)
	v.SetDefault(KeyKDF, string(crypto.KDFArgon2id))
	v.SetDefault(KeyVerbose, false)
}

// LoadConfig resolves Config from v. Flags bound on v win over TINYRSA_*
// environment variables (which a .env file may supply), which win over the
// config file, which wins over the defaults.
func LoadConfig(v *viper.Viper) (Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()
	if err := loadDotEnv(v.GetString(KeyEnvFile)); err != nil {
		return Config{}, err
	}

	home := v.GetString(KeyHome)
	if home == "" {
		dir, err := os.UserHomeDir()
		if err != nil {
			return Config{}, err
		}
		home = filepath.Join(dir, ".tinyrsa")
	}
	if err := readConfigFile(v, home); err != nil {
		return Config{}, err
	}

	kdf, err := crypto.ParseKDF(v.GetString(KeyKDF))
	if err != nil {
		return Config{}, err
	}
	cfg := Config{
		Home:      home,
		Bits:      v.GetInt(KeyBits),
		Certainty: v.GetFloat64(KeyCertainty),
		Exponent:  v.GetInt64(KeyExponent),
		KDF:       kdf,
		KDFParams: crypto.DefaultKDFParams(kdf),
		Verbose:   v.GetBool(KeyVerbose),

		Passphrase: v.GetString(KeyPassphrase),
	}
	if cfg.Bits <= 0 {
		return Config{}, fmt.Errorf("config: %s must be positive, got %d", KeyBits, cfg.Bits)
	}
	if cfg.Certainty <= 0 || cfg.Certainty >= 1 {
		return Config{}, fmt.Errorf("config: %s must lie in (0,1), got %v", KeyCertainty, cfg.Certainty)
	}
	return cfg, nil
}

// loadDotEnv exports the variables in path unless they are already set. A
// missing file is not an error.
func loadDotEnv(path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// readConfigFile merges the YAML config file into v. An explicit --config path
// must exist; the default one under home is optional.
func readConfigFile(v *viper.Viper, home string) error {
	if path := v.GetString(KeyConfig); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", path, err)
		}
		return nil
	}

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(home)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}
