package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/ardanlabs/solsign/business/web/envelope"
	"github.com/ardanlabs/solsign/foundation/signature"
	"github.com/spf13/cobra"
)

var (
	url      string
	to       string
	lamports uint64
)

// sendCmd represents the send command
var sendCmd = &cobra.Command{
	Use:   "send",
	Short: "Build a lamports transfer from the wallet account",
	RunE:  sendRun,
}

func init() {
	rootCmd.AddCommand(sendCmd)
	sendCmd.Flags().StringVarP(&url, "url", "u", "http://localhost:3000", "Url of the signer service.")
	sendCmd.Flags().StringVarP(&to, "to", "t", "", "Account receiving the lamports.")
	sendCmd.Flags().Uint64VarP(&lamports, "lamports", "l", 0, "Lamports to send.")
}

func sendRun(cmd *cobra.Command, args []string) error {
	secret, err := signature.LoadKeyFile(getPrivateKeyPath())
	if err != nil {
		return err
	}

	from, err := signature.PublicKey(secret)
	if err != nil {
		return err
	}

	req := struct {
		From     string `json:"from"`
		To       string `json:"to"`
		Lamports uint64 `json:"lamports"`
	}{
		From:     from,
		To:       to,
		Lamports: lamports,
	}

	data, err := json.Marshal(req)
	if err != nil {
		return err
	}

	resp, err := http.Post(fmt.Sprintf("%s/v1/send/sol", url), "application/json", bytes.NewBuffer(data))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	var inst json.RawMessage
	if err := envelope.Decode(body, &inst); err != nil {
		return fmt.Errorf("send: %w", err)
	}

	var out bytes.Buffer
	if err := json.Indent(&out, inst, "", "  "); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), out.String())
	return nil
}
