package commands

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
)

// dumpConfig prints big integers through their String method.
var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

func inspectCmd(e *env) *cobra.Command {
	var dump bool

	cmd := &cobra.Command{
		Use:   "inspect <keyfile>",
		Short: "Describe a key file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lk, fp, err := e.wire.KeyGen.Inspect(args[0], e.wire.Config.Passphrase)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if dump {
				dumpConfig.Fdump(out, lk)
				return nil
			}

			kind := string(lk.Kind)
			if lk.Sealed {
				kind += " (sealed)"
			}
			fmt.Fprintf(out, "Kind:            %s\n", kind)
			fmt.Fprintf(out, "Key ID:          %s\n", lk.ID)
			fmt.Fprintf(out, "Fingerprint:     %s\n", fp)
			fmt.Fprintf(out, "Modulus:         %d bits (%d bytes)\n", lk.Public.Modulus.BitLen(), lk.Public.Size())
			fmt.Fprintf(out, "Public exponent: %s\n", lk.Public.PublicExponent.Text(16))
			fmt.Fprintf(out, "Max message:     %d bytes\n", max(lk.Public.Size()-11, 0))
			if lk.Private != nil {
				fmt.Fprintf(out, "Primes:          %d + %d bits\n", lk.Private.Prime1.BitLen(), lk.Private.Prime2.BitLen())
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&dump, "dump", false, "dump every field of the loaded key")
	return cmd
}
