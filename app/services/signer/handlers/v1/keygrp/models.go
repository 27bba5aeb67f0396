package keygrp

// AppKeyPair is a newly generated key pair.
type AppKeyPair struct {
	PublicKey string `json:"pubkey"`
	SecretKey string `json:"secret"`
}

// AppSignRequest is what we require to sign a message.
type AppSignRequest struct {
	Message string `json:"message" validate:"required"`
	Secret  string `json:"secret" validate:"required"`
}

// AppSignature is the result of signing a message.
type AppSignature struct {
	Signature string `json:"signature"`
	PublicKey string `json:"public_key"`
	Message   string `json:"message"`
}

// AppVerifyRequest is what we require to verify a signature.
type AppVerifyRequest struct {
	Message   string `json:"message" validate:"required"`
	Signature string `json:"signature" validate:"required"`
	PublicKey string `json:"pubkey" validate:"required"`
}

// AppVerification is the result of verifying a signature.
type AppVerification struct {
	Valid     bool   `json:"valid"`
	Message   string `json:"message"`
	PublicKey string `json:"pubkey"`
}
