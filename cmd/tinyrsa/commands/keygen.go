package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"tinyrsa/internal/domain"
)

func keygenCmd(e *env) *cobra.Command {
	var publicPath, secretPath string

	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate an RSA key pair",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := e.wire.Config
			kp, fp, err := e.wire.KeyGen.Generate(domain.KeygenOptions{
				Bits:        cfg.Bits,
				Certainty:   cfg.Certainty,
				Exponent:    cfg.Exponent,
				PublicPath:  publicPath,
				PrivatePath: secretPath,
				Passphrase:  cfg.Passphrase,
			})
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Key pair generated (%d-bit modulus).\n", kp.Public.Modulus.BitLen())
			fmt.Fprintf(out, "Key ID: %s\nFingerprint: %s\n", kp.ID, fp)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&publicPath, "public", "p", "", "public key output file")
	f.StringVarP(&secretPath, "secret", "s", "", "private key output file")
	f.IntP("bits", "b", 1024, "modulus size in bits")
	f.Float64P("certainty", "y", 0.999999, "probability that each prime is really prime")
	f.Int64("exponent", 0, "fixed public exponent (0 picks a random one)")
	_ = cmd.MarkFlagRequired("public")
	_ = cmd.MarkFlagRequired("secret")
	return cmd
}
