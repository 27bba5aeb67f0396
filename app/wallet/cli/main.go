// This program works with key files and the signer service.
package main

import "github.com/ardanlabs/solsign/app/wallet/cli/cmd"

func main() {
	cmd.Execute()
}
