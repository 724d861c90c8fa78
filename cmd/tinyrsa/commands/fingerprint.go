package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func fingerprintCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fingerprint <keyfile>",
		Short: "Print the modulus fingerprint of a key file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, fp, err := e.wire.KeyGen.Inspect(args[0], "")
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Fingerprint: %s\n", fp)
			return nil
		},
	}
	return cmd
}
