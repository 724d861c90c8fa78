package commands

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"tinyrsa/internal/app"
)

// flagKeys maps flag names to the viper keys they override.
var flagKeys = map[string]string{
	"home":       app.KeyHome,
	"config":     app.KeyConfig,
	"env-file":   app.KeyEnvFile,
	"kdf":        app.KeyKDF,
	"verbose":    app.KeyVerbose,
	"passphrase": app.KeyPassphrase,
	"bits":       app.KeyBits,
	"certainty":  app.KeyCertainty,
	"exponent":   app.KeyExponent,
}

// env carries the resolved dependency graph from the root command to the
// subcommand handlers.
type env struct {
	wire *app.Wire
}

// Execute runs the CLI with os.Args.
func Execute() error {
	return newRootCmd(os.Stderr).Execute()
}

func newRootCmd(logOut io.Writer) *cobra.Command {
	e := &env{}
	v := viper.New()

	root := &cobra.Command{
		Use:   "tinyrsa",
		Short: "RSA key generation and PKCS #1 v1.5 file encryption",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			for name, key := range flagKeys {
				if f := cmd.Flags().Lookup(name); f != nil {
					if err := v.BindPFlag(key, f); err != nil {
						return err
					}
				}
			}
			cfg, err := app.LoadConfig(v)
			if err != nil {
				return err
			}
			e.wire, err = app.NewWire(cfg, logOut)
			return err
		},
	}

	pf := root.PersistentFlags()
	pf.String("home", "", "config dir (default ~/.tinyrsa)")
	pf.String("config", "", "config file (default <home>/config.yaml)")
	pf.String("env-file", ".env", "dotenv file with TINYRSA_* variables")
	pf.String("kdf", "argon2id", "passphrase KDF for sealed private keys (argon2id|scrypt)")
	pf.String("passphrase", "", "passphrase for the private key (or TINYRSA_PASSPHRASE)")
	pf.BoolP("verbose", "v", false, "log progress to stderr")

	root.AddCommand(keygenCmd(e), encryptCmd(e), decryptCmd(e), inspectCmd(e), fingerprintCmd(e))
	return root
}
