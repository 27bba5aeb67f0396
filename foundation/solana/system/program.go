// Package system builds instructions for the system program.
package system

import (
	"encoding/binary"

	"github.com/ardanlabs/solsign/foundation/solana"
)

// ProgramKey is the system program address emitted in native transfer
// instructions. Existing consumers match on this exact text.
const ProgramKey = "11111111111111111111111111111112"

// Command is the leading byte of the instruction data.
type Command byte

// CommandTransfer moves lamports between two accounts.
const CommandTransfer Command = 2

// Transfer returns the instruction moving lamports from one account to
// another.
func Transfer(from, to string, lamports uint64) solana.Instruction {
	// # Account references
	//   0. [WRITE, SIGNER] Funding account
	//   1. [WRITE] Recipient account
	data := make([]byte, 1+8)
	data[0] = byte(CommandTransfer)
	binary.LittleEndian.PutUint64(data[1:], lamports)

	return solana.NewInstruction(
		ProgramKey,
		data,
		solana.NewAccountMeta(from, true),
		solana.NewAccountMeta(to, false),
	)
}
