package cmd

import (
	"fmt"

	"github.com/ardanlabs/solsign/foundation/signature"
	"github.com/spf13/cobra"
)

var pubkey string

var verifyCmd = &cobra.Command{
	Use:   "verify <message> <signature>",
	Short: "Verify a signature, by default against the wallet key",
	Args:  cobra.ExactArgs(2),
	RunE:  verifyRun,
}

func init() {
	rootCmd.AddCommand(verifyCmd)
	verifyCmd.Flags().StringVarP(&pubkey, "pubkey", "k", "", "Public key to verify against instead of the wallet key.")
}

func verifyRun(cmd *cobra.Command, args []string) error {
	pub := pubkey
	if pub == "" {
		secret, err := signature.LoadKeyFile(getPrivateKeyPath())
		if err != nil {
			return err
		}

		if pub, err = signature.PublicKey(secret); err != nil {
			return err
		}
	}

	valid, err := signature.Verify(args[0], args[1], pub)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), valid)
	return nil
}
