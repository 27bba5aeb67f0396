// Package token builds instructions for the SPL token program.
package token

import (
	"encoding/binary"
	"math/rand"

	"github.com/ardanlabs/solsign/foundation/solana"
)

// ProgramKey is the address of the token program.
const ProgramKey = "TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA"

// MaxDecimals is the largest number of decimals a mint may be created with.
const MaxDecimals = 9

// Command is the leading byte of the instruction data that selects the
// token program operation.
type Command byte

// Commands used by this package. The values are the program's opcodes.
const (
	CommandInitializeMint Command = 0
	CommandTransfer       Command = 3
	CommandMintTo         Command = 7
)

// filler supplies the trailing bytes of an InitializeMint payload. The
// generator is goroutine safe and needs no seeding.
var filler = rand.Uint64

// InitializeMint returns the create mint instruction.
func InitializeMint(mint, mintAuthority string, decimals byte) solana.Instruction {
	// Accounts expected by this instruction:
	//
	//   0. `[writable]` The mint to initialize.
	//   1. `[signer]` The mint authority.
	//
	// Data: opcode, decimals, then eight filler bytes that consumers do
	// not interpret.
	data := make([]byte, 1+1+8)
	data[0] = byte(CommandInitializeMint)
	data[1] = decimals
	binary.LittleEndian.PutUint64(data[2:], filler())

	return solana.NewInstruction(
		ProgramKey,
		data,
		solana.NewAccountMeta(mint, false),
		solana.NewReadonlyAccountMeta(mintAuthority, true),
	)
}

// MintTo returns the instruction minting amount new tokens of mint into
// the destination account.
func MintTo(mint, dest, authority string, amount uint64) solana.Instruction {
	// Accounts expected by this instruction:
	//
	//   0. `[writable]` The mint.
	//   1. `[writable]` The account to mint tokens to.
	//   2. `[signer]` The mint's minting authority.
	data := make([]byte, 1+8)
	data[0] = byte(CommandMintTo)
	binary.LittleEndian.PutUint64(data[1:], amount)

	return solana.NewInstruction(
		ProgramKey,
		data,
		solana.NewAccountMeta(mint, false),
		solana.NewAccountMeta(dest, false),
		solana.NewReadonlyAccountMeta(authority, true),
	)
}

// Transfer returns the instruction moving amount tokens of mint from the
// owner to the destination.
func Transfer(owner, dest, mint string, amount uint64) solana.Instruction {
	// Accounts expected by this instruction:
	//
	//   0. `[writable, signer]` The owner.
	//   1. `[writable]` The destination account.
	//   2. `[writable]` The mint.
	data := make([]byte, 1+8)
	data[0] = byte(CommandTransfer)
	binary.LittleEndian.PutUint64(data[1:], amount)

	return solana.NewInstruction(
		ProgramKey,
		data,
		solana.NewAccountMeta(owner, true),
		solana.NewAccountMeta(dest, false),
		solana.NewAccountMeta(mint, false),
	)
}
