package instgrp

import (
	"encoding/base64"

	"github.com/ardanlabs/solsign/foundation/solana"
)

// AppAccountMeta is an account referenced by an instruction.
type AppAccountMeta struct {
	PublicKey  string `json:"pubkey"`
	IsSigner   bool   `json:"is_signer"`
	IsWritable bool   `json:"is_writable"`
}

// AppInstruction is an instruction ready to be placed in a transaction.
// The data bytes are Base64 encoded.
type AppInstruction struct {
	ProgramID string           `json:"program_id"`
	Accounts  []AppAccountMeta `json:"accounts"`
	Data      string           `json:"instruction_data"`
}

func toAppInstruction(inst solana.Instruction) AppInstruction {
	accounts := make([]AppAccountMeta, len(inst.Accounts))
	for i, acct := range inst.Accounts {
		accounts[i] = AppAccountMeta{
			PublicKey:  acct.PublicKey,
			IsSigner:   acct.IsSigner,
			IsWritable: acct.IsWritable,
		}
	}

	return AppInstruction{
		ProgramID: inst.Program,
		Accounts:  accounts,
		Data:      base64.StdEncoding.EncodeToString(inst.Data),
	}
}
