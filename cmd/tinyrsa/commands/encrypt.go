package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func encryptCmd(e *env) *cobra.Command {
	var plainPath, publicPath, cipherPath string
	var armor bool

	cmd := &cobra.Command{
		Use:   "encrypt",
		Short: "Encrypt a file with a public key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := e.wire.Cipher.EncryptFile(publicPath, plainPath, cipherPath, armor); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Encrypted %s -> %s\n", plainPath, cipherPath)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&plainPath, "message", "m", "", "plaintext input file")
	f.StringVarP(&publicPath, "public", "p", "", "public key file")
	f.StringVarP(&cipherPath, "ciphertext", "c", "", "ciphertext output file")
	f.BoolVar(&armor, "armor", false, "write the ciphertext as base64 text")
	for _, name := range []string{"message", "public", "ciphertext"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}
