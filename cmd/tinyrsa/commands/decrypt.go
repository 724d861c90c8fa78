package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func decryptCmd(e *env) *cobra.Command {
	var cipherPath, secretPath, plainPath string
	var armor bool

	cmd := &cobra.Command{
		Use:   "decrypt",
		Short: "Decrypt a file with a private key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := e.wire.Cipher.DecryptFile(secretPath, e.wire.Config.Passphrase, cipherPath, plainPath, armor)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Decrypted %s -> %s\n", cipherPath, plainPath)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&cipherPath, "ciphertext", "c", "", "ciphertext input file")
	f.StringVarP(&secretPath, "secret", "s", "", "private key file")
	f.StringVarP(&plainPath, "message", "m", "", "plaintext output file")
	f.BoolVar(&armor, "armor", false, "read the ciphertext as base64 text")
	for _, name := range []string{"ciphertext", "secret", "message"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}
