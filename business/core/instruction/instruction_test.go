package instruction_test

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"

	"github.com/ardanlabs/solsign/business/core/instruction"
	"github.com/ardanlabs/solsign/foundation/solana"
	"github.com/ardanlabs/solsign/foundation/solana/system"
	"github.com/ardanlabs/solsign/foundation/solana/token"
	"github.com/ardanlabs/solsign/foundation/validate"
)

// Success and failure markers.
const (
	success = "\u2713"
	failed  = "\u2717"
)

const (
	keyA = "9WzDXwBbmkg8ZTbNMqUxvQRAyrZzDsGYdLVL9zYtAWWM"
	keyB = "HN7cABqLq46Es1jh92dQQisAq662SmxELLLsHHe4YWrH"
	keyC = "So11111111111111111111111111111111111111112"
	bad  = "0OIl"
)

func decimals(d uint8) *uint8 {
	return &d
}

func le(opcode byte, v uint64) []byte {
	data := make([]byte, 9)
	data[0] = opcode
	binary.LittleEndian.PutUint64(data[1:], v)
	return data
}

func Test_CreateMint(t *testing.T) {
	t.Log("Given the need to build create mint instructions.")
	{
		nc := instruction.NewCreateMint{Mint: keyA, MintAuthority: keyB, Decimals: decimals(9)}

		inst1, err := instruction.CreateMint(nc)
		if err != nil {
			t.Fatalf("\t%s\tShould accept 9 decimals: %s", failed, err)
		}
		t.Logf("\t%s\tShould accept 9 decimals.", success)

		inst2, err := instruction.CreateMint(nc)
		if err != nil {
			t.Fatalf("\t%s\tShould build the same request twice: %s", failed, err)
		}

		if inst1.Program != token.ProgramKey {
			t.Fatalf("\t%s\tShould target the token program, got %s.", failed, inst1.Program)
		}
		if len(inst1.Data) != 10 || !bytes.Equal(inst1.Data[:2], []byte{0, 9}) || !bytes.Equal(inst1.Data[:2], inst2.Data[:2]) {
			t.Fatalf("\t%s\tShould get the same opcode and decimals bytes: %v %v", failed, inst1.Data, inst2.Data)
		}
		t.Logf("\t%s\tShould get the same opcode and decimals bytes.", success)

		exp := []solana.AccountMeta{
			{PublicKey: keyA, IsSigner: false, IsWritable: true},
			{PublicKey: keyB, IsSigner: true, IsWritable: false},
		}
		for _, inst := range []solana.Instruction{inst1, inst2} {
			if len(inst.Accounts) != len(exp) {
				t.Fatalf("\t%s\tShould get %d accounts, got %d.", failed, len(exp), len(inst.Accounts))
			}
			for i := range exp {
				if inst.Accounts[i] != exp[i] {
					t.Logf("\t\tgot: %+v", inst.Accounts[i])
					t.Logf("\t\texp: %+v", exp[i])
					t.Fatalf("\t%s\tShould get account %d in order.", failed, i)
				}
			}
		}
		t.Logf("\t%s\tShould get the accounts in the same order.", success)
	}
}

func Test_Encodings(t *testing.T) {
	type table struct {
		name     string
		build    func() (solana.Instruction, error)
		program  string
		data     []byte
		accounts []solana.AccountMeta
	}

	tt := []table{
		{
			name: "mint to",
			build: func() (solana.Instruction, error) {
				return instruction.MintTo(instruction.NewMintTo{Mint: keyA, Destination: keyB, Authority: keyC, Amount: 500})
			},
			program: token.ProgramKey,
			data:    le(7, 500),
			accounts: []solana.AccountMeta{
				{PublicKey: keyA, IsSigner: false, IsWritable: true},
				{PublicKey: keyB, IsSigner: false, IsWritable: true},
				{PublicKey: keyC, IsSigner: true, IsWritable: false},
			},
		},
		{
			name: "transfer tokens",
			build: func() (solana.Instruction, error) {
				return instruction.TransferTokens(instruction.NewTokenTransfer{Owner: keyA, Destination: keyB, Mint: keyC, Amount: 1})
			},
			program: token.ProgramKey,
			data:    []byte{3, 1, 0, 0, 0, 0, 0, 0, 0},
			accounts: []solana.AccountMeta{
				{PublicKey: keyA, IsSigner: true, IsWritable: true},
				{PublicKey: keyB, IsSigner: false, IsWritable: true},
				{PublicKey: keyC, IsSigner: false, IsWritable: true},
			},
		},
		{
			name: "transfer native",
			build: func() (solana.Instruction, error) {
				return instruction.TransferNative(instruction.NewNativeTransfer{From: keyA, To: keyB, Lamports: 1_000_000})
			},
			program: system.ProgramKey,
			data:    le(2, 1_000_000),
			accounts: []solana.AccountMeta{
				{PublicKey: keyA, IsSigner: true, IsWritable: true},
				{PublicKey: keyB, IsSigner: false, IsWritable: true},
			},
		},
	}

	t.Log("Given the need to encode instructions byte for byte.")
	{
		for testID, tst := range tt {
			t.Logf("\tTest %d:\tWhen building %s.", testID, tst.name)
			{
				inst, err := tst.build()
				if err != nil {
					t.Fatalf("\t%s\tTest %d:\tShould be able to build the instruction: %s", failed, testID, err)
				}
				t.Logf("\t%s\tTest %d:\tShould be able to build the instruction.", success, testID)

				if inst.Program != tst.program {
					t.Fatalf("\t%s\tTest %d:\tShould target %s, got %s.", failed, testID, tst.program, inst.Program)
				}
				t.Logf("\t%s\tTest %d:\tShould target the right program.", success, testID)

				if !bytes.Equal(inst.Data, tst.data) {
					t.Logf("\t\tgot: %v", inst.Data)
					t.Logf("\t\texp: %v", tst.data)
					t.Fatalf("\t%s\tTest %d:\tShould get the right data bytes.", failed, testID)
				}
				t.Logf("\t%s\tTest %d:\tShould get the right data bytes.", success, testID)

				if len(inst.Accounts) != len(tst.accounts) {
					t.Fatalf("\t%s\tTest %d:\tShould get %d accounts.", failed, testID, len(tst.accounts))
				}
				for i := range tst.accounts {
					if inst.Accounts[i] != tst.accounts[i] {
						t.Logf("\t\tgot: %+v", inst.Accounts[i])
						t.Logf("\t\texp: %+v", tst.accounts[i])
						t.Fatalf("\t%s\tTest %d:\tShould get account %d in order.", failed, testID, i)
					}
				}
				t.Logf("\t%s\tTest %d:\tShould get the accounts in order.", success, testID)
			}
		}
	}
}

func Test_Validation(t *testing.T) {
	type table struct {
		name  string
		build func() (solana.Instruction, error)
		kind  error
		msg   string
	}

	tt := []table{
		{
			name: "decimals out of range",
			build: func() (solana.Instruction, error) {
				return instruction.CreateMint(instruction.NewCreateMint{Mint: keyA, MintAuthority: keyB, Decimals: decimals(10)})
			},
			kind: validate.ErrInvalidRange,
			msg:  "Decimals must be between 0 and 9",
		},
		{
			name: "missing mint authority",
			build: func() (solana.Instruction, error) {
				return instruction.CreateMint(instruction.NewCreateMint{Mint: keyA, Decimals: decimals(200)})
			},
			kind: validate.ErrMissingField,
			msg:  validate.MissingFields,
		},
		{
			name: "bad mint authority",
			build: func() (solana.Instruction, error) {
				return instruction.CreateMint(instruction.NewCreateMint{Mint: keyA, MintAuthority: bad, Decimals: decimals(0)})
			},
			kind: validate.ErrInvalidEncoding,
			msg:  "Invalid mint authority address format",
		},
		{
			name: "bad mint",
			build: func() (solana.Instruction, error) {
				return instruction.CreateMint(instruction.NewCreateMint{Mint: bad, MintAuthority: bad, Decimals: decimals(0)})
			},
			kind: validate.ErrInvalidEncoding,
			msg:  "Invalid mint address format",
		},
		{
			name: "missing decimals",
			build: func() (solana.Instruction, error) {
				return instruction.CreateMint(instruction.NewCreateMint{Mint: keyA, MintAuthority: keyB})
			},
			kind: validate.ErrMissingField,
			msg:  validate.MissingFields,
		},
		{
			name: "zero mint amount",
			build: func() (solana.Instruction, error) {
				return instruction.MintTo(instruction.NewMintTo{Mint: bad, Destination: keyB, Authority: keyC})
			},
			kind: validate.ErrInvalidRange,
			msg:  "Amount must be greater than 0",
		},
		{
			name: "bad destination",
			build: func() (solana.Instruction, error) {
				return instruction.MintTo(instruction.NewMintTo{Mint: keyA, Destination: bad, Authority: bad, Amount: 1})
			},
			kind: validate.ErrInvalidEncoding,
			msg:  "Invalid 'destination' address format",
		},
		{
			name: "zero token amount",
			build: func() (solana.Instruction, error) {
				return instruction.TransferTokens(instruction.NewTokenTransfer{Owner: keyA, Destination: keyB, Mint: keyC})
			},
			kind: validate.ErrInvalidRange,
			msg:  "Amount must be greater than 0",
		},
		{
			name: "bad owner",
			build: func() (solana.Instruction, error) {
				return instruction.TransferTokens(instruction.NewTokenTransfer{Owner: bad, Destination: keyB, Mint: bad, Amount: 1})
			},
			kind: validate.ErrInvalidEncoding,
			msg:  "Invalid 'owner' address format",
		},
		{
			name: "missing to",
			build: func() (solana.Instruction, error) {
				return instruction.TransferNative(instruction.NewNativeTransfer{From: keyA, Lamports: 1})
			},
			kind: validate.ErrMissingField,
			msg:  validate.MissingFields,
		},
		{
			name: "zero lamports",
			build: func() (solana.Instruction, error) {
				return instruction.TransferNative(instruction.NewNativeTransfer{From: keyA, To: keyB})
			},
			kind: validate.ErrInvalidRange,
			msg:  "Amount must be greater than 0",
		},
		{
			name: "bad from",
			build: func() (solana.Instruction, error) {
				return instruction.TransferNative(instruction.NewNativeTransfer{From: bad, To: keyB, Lamports: 1})
			},
			kind: validate.ErrInvalidEncoding,
			msg:  "Invalid 'from' address format",
		},
	}

	t.Log("Given the need to reject invalid requests before encoding.")
	{
		for testID, tst := range tt {
			t.Logf("\tTest %d:\tWhen handling %s.", testID, tst.name)
			{
				inst, err := tst.build()
				if !errors.Is(err, tst.kind) {
					t.Logf("\t\tgot: %v", err)
					t.Logf("\t\texp: %v", tst.kind)
					t.Fatalf("\t%s\tTest %d:\tShould get the right kind of error.", failed, testID)
				}
				t.Logf("\t%s\tTest %d:\tShould get the right kind of error.", success, testID)

				if err.Error() != tst.msg {
					t.Logf("\t\tgot: %s", err.Error())
					t.Logf("\t\texp: %s", tst.msg)
					t.Fatalf("\t%s\tTest %d:\tShould get the right message.", failed, testID)
				}
				t.Logf("\t%s\tTest %d:\tShould get the right message.", success, testID)

				if inst.Program != "" || inst.Data != nil || inst.Accounts != nil {
					t.Fatalf("\t%s\tTest %d:\tShould not get a partial instruction.", failed, testID)
				}
				t.Logf("\t%s\tTest %d:\tShould not get a partial instruction.", success, testID)
			}
		}
	}
}
