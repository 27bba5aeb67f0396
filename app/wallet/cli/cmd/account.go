package cmd

import (
	"fmt"

	"github.com/ardanlabs/solsign/foundation/signature"
	"github.com/spf13/cobra"
)

var accountCmd = &cobra.Command{
	Use:   "account",
	Short: "Print account for the specific wallet",
	RunE:  accountRun,
}

func init() {
	rootCmd.AddCommand(accountCmd)
}

func accountRun(cmd *cobra.Command, args []string) error {
	secret, err := signature.LoadKeyFile(getPrivateKeyPath())
	if err != nil {
		return err
	}

	pub, err := signature.PublicKey(secret)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), pub)
	return nil
}
