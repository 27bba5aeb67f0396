package cmd

import (
	"fmt"

	"github.com/ardanlabs/solsign/foundation/signature"
	"github.com/spf13/cobra"
)

var signCmd = &cobra.Command{
	Use:   "sign <message>",
	Short: "Sign a message with the wallet key",
	Args:  cobra.ExactArgs(1),
	RunE:  signRun,
}

func init() {
	rootCmd.AddCommand(signCmd)
}

func signRun(cmd *cobra.Command, args []string) error {
	secret, err := signature.LoadKeyFile(getPrivateKeyPath())
	if err != nil {
		return err
	}

	sig, _, err := signature.Sign(args[0], secret)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), sig)
	return nil
}
