// Package instruction validates requests for the supported instruction kinds
// and assembles their payloads. Every address is checked before any bytes
// are produced, so a failed request never yields a partial instruction.
package instruction

import (
	"github.com/ardanlabs/solsign/foundation/solana"
	"github.com/ardanlabs/solsign/foundation/solana/system"
	"github.com/ardanlabs/solsign/foundation/solana/token"
	"github.com/ardanlabs/solsign/foundation/validate"
)

func init() {
	if err := validate.RegisterEncoding("base58", solana.IsAddress, "Invalid '{0}' address format"); err != nil {
		panic(err)
	}
}

// CreateMint builds the instruction initializing a new token mint.
func CreateMint(nc NewCreateMint) (solana.Instruction, error) {
	if err := check(nc); err != nil {
		return solana.Instruction{}, err
	}

	return token.InitializeMint(nc.Mint, nc.MintAuthority, *nc.Decimals), nil
}

// MintTo builds the instruction minting new tokens into an account.
func MintTo(nm NewMintTo) (solana.Instruction, error) {
	if err := check(nm); err != nil {
		return solana.Instruction{}, err
	}

	return token.MintTo(nm.Mint, nm.Destination, nm.Authority, nm.Amount), nil
}

// TransferTokens builds the instruction moving tokens between accounts.
func TransferTokens(nt NewTokenTransfer) (solana.Instruction, error) {
	if err := check(nt); err != nil {
		return solana.Instruction{}, err
	}

	return token.Transfer(nt.Owner, nt.Destination, nt.Mint, nt.Amount), nil
}

// TransferNative builds the instruction moving lamports between accounts.
func TransferNative(nt NewNativeTransfer) (solana.Instruction, error) {
	if err := check(nt); err != nil {
		return solana.Instruction{}, err
	}

	return system.Transfer(nt.From, nt.To, nt.Lamports), nil
}

// check validates the model and reduces the failures to the one the caller
// should see.
func check(val any) error {
	err := validate.Check(val)
	if err == nil {
		return nil
	}

	if fe := validate.GetFieldErrors(err); fe != nil {
		return fe.First()
	}

	return err
}
