package instruction

// NewCreateMint is what we require to build a create mint instruction.
type NewCreateMint struct {
	Mint          string `json:"mint" validate:"required,base58"`
	MintAuthority string `json:"mintAuthority" validate:"required,base58"`
	Decimals      *uint8 `json:"decimals" validate:"required,lte=9"`
}

// Messages implements the validate.Messenger interface.
func (NewCreateMint) Messages() map[string]string {
	return map[string]string{
		"decimals.lte":         "Decimals must be between 0 and 9",
		"mint.base58":          "Invalid mint address format",
		"mintAuthority.base58": "Invalid mint authority address format",
	}
}

// NewMintTo is what we require to build a mint to instruction.
type NewMintTo struct {
	Mint        string `json:"mint" validate:"required,base58"`
	Destination string `json:"destination" validate:"required,base58"`
	Authority   string `json:"authority" validate:"required,base58"`
	Amount      uint64 `json:"amount" validate:"gt=0"`
}

// Messages implements the validate.Messenger interface.
func (NewMintTo) Messages() map[string]string {
	return amountMessages
}

// NewTokenTransfer is what we require to build a token transfer instruction.
// Fields are declared in the order they are checked.
type NewTokenTransfer struct {
	Owner       string `json:"owner" validate:"required,base58"`
	Destination string `json:"destination" validate:"required,base58"`
	Mint        string `json:"mint" validate:"required,base58"`
	Amount      uint64 `json:"amount" validate:"gt=0"`
}

// Messages implements the validate.Messenger interface.
func (NewTokenTransfer) Messages() map[string]string {
	return amountMessages
}

// NewNativeTransfer is what we require to build a native (lamports)
// transfer instruction.
type NewNativeTransfer struct {
	From     string `json:"from" validate:"required,base58"`
	To       string `json:"to" validate:"required,base58"`
	Lamports uint64 `json:"lamports" validate:"gt=0"`
}

// Messages implements the validate.Messenger interface.
func (NewNativeTransfer) Messages() map[string]string {
	return map[string]string{
		"lamports.gt": amountMessages["amount.gt"],
	}
}

// amountMessages holds the message shared by every instruction moving an
// amount of tokens or lamports.
var amountMessages = map[string]string{
	"amount.gt": "Amount must be greater than 0",
}
