package cmd

import (
	"fmt"

	"github.com/ardanlabs/solsign/foundation/signature"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate new key pair",
	RunE:  generateRun,
}

func init() {
	rootCmd.AddCommand(generateCmd)
}

func generateRun(cmd *cobra.Command, args []string) error {
	kp := signature.GenerateKeyPair()

	if err := signature.SaveKeyFile(getPrivateKeyPath(), kp.SecretKey); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), kp.PublicKey)
	return nil
}
