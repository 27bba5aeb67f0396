package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ardanlabs/solsign/foundation/solana"
)

func TestTransfer(t *testing.T) {
	from := "9WzDXwBbmkg8ZTbNMqUxvQRAyrZzDsGYdLVL9zYtAWWM"
	to := "HN7cABqLq46Es1jh92dQQisAq662SmxELLLsHHe4YWrH"

	instruction := Transfer(from, to, 1_000_000)

	// 1_000_000 = 0x0F4240
	assert.Equal(t, ProgramKey, instruction.Program)
	assert.Equal(t, []byte{2, 0x40, 0x42, 0x0F, 0, 0, 0, 0, 0}, instruction.Data)
	assert.Equal(t, []solana.AccountMeta{
		{PublicKey: from, IsSigner: true, IsWritable: true},
		{PublicKey: to, IsSigner: false, IsWritable: true},
	}, instruction.Accounts)
}
