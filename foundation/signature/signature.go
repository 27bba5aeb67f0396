// Package signature provides Ed25519 key generation, message signing and
// signature verification using the Solana text conventions: keys travel as
// Base58 and signatures as Base64.
package signature

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"

	"filippo.io/edwards25519"
	"github.com/mr-tron/base58"
)

// Sizes of the raw values behind the text encodings.
const (
	KeySize       = ed25519.SeedSize
	SignatureSize = ed25519.SignatureSize
)

// Set of errors returned by the package. Encoding and length errors mean the
// input is malformed. A well formed signature that does not match is not an
// error, Verify reports it as false.
var (
	ErrInvalidEncoding        = errors.New("invalid encoding")
	ErrInvalidLength          = errors.New("invalid length")
	ErrInvalidKeyLength       = fmt.Errorf("%w: key must be %d bytes", ErrInvalidLength, KeySize)
	ErrInvalidSignatureLength = fmt.Errorf("%w: signature must be %d bytes", ErrInvalidLength, SignatureSize)
	ErrCryptoFailure          = errors.New("invalid public key")
)

// =============================================================================

// KeyPair is a freshly generated Ed25519 key pair in text form. The secret
// key is the 32 byte seed the signing key is derived from.
type KeyPair struct {
	PublicKey string
	SecretKey string
}

// GenerateKeyPair draws a new signing key from the operating system's secure
// random source. Each call is independent of every other.
func GenerateKeyPair() KeyPair {

	// Reading from crypto/rand never fails, so neither can this.
	pub, priv, _ := ed25519.GenerateKey(rand.Reader)

	return KeyPair{
		PublicKey: base58.Encode(pub),
		SecretKey: base58.Encode(priv.Seed()),
	}
}

// PublicKey derives the Base58 public key for a Base58 secret key.
func PublicKey(secretKey string) (string, error) {
	priv, err := toPrivateKey(secretKey)
	if err != nil {
		return "", err
	}

	return base58.Encode(priv.Public().(ed25519.PublicKey)), nil
}

// Sign signs the UTF-8 bytes of the message with the Base58 secret key. It
// returns the Base64 signature and the Base58 public key of the signer.
// Ed25519 signing is deterministic, the same key and message always produce
// the same signature.
func Sign(message string, secretKey string) (sig string, publicKey string, err error) {
	priv, err := toPrivateKey(secretKey)
	if err != nil {
		return "", "", err
	}

	s := ed25519.Sign(priv, []byte(message))
	pub := priv.Public().(ed25519.PublicKey)

	return base64.StdEncoding.EncodeToString(s), base58.Encode(pub), nil
}

// Verify checks the Base64 signature of the message against the Base58
// public key. Malformed input is an error, a signature that does not match
// is reported as false.
func Verify(message string, sig string, publicKey string) (bool, error) {
	pub, err := toPublicKey(publicKey)
	if err != nil {
		return false, err
	}

	s, err := base64.StdEncoding.DecodeString(sig)
	if err != nil {
		return false, fmt.Errorf("%w: base64: %s", ErrInvalidEncoding, err)
	}

	if len(s) != SignatureSize {
		return false, ErrInvalidSignatureLength
	}

	return ed25519.Verify(pub, []byte(message), s), nil
}

// =============================================================================

// toPrivateKey decodes a Base58 seed and expands it into a signing key.
func toPrivateKey(secretKey string) (ed25519.PrivateKey, error) {
	seed, err := decode(secretKey)
	if err != nil {
		return nil, err
	}

	if len(seed) != KeySize {
		return nil, ErrInvalidKeyLength
	}

	return ed25519.NewKeyFromSeed(seed), nil
}

// toPublicKey decodes a Base58 public key and checks it is a point on the
// curve.
func toPublicKey(publicKey string) (ed25519.PublicKey, error) {
	b, err := decode(publicKey)
	if err != nil {
		return nil, err
	}

	if len(b) != ed25519.PublicKeySize {
		return nil, ErrInvalidKeyLength
	}

	if _, err := new(edwards25519.Point).SetBytes(b); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrCryptoFailure, err)
	}

	return ed25519.PublicKey(b), nil
}

// decode converts Base58 text to bytes.
func decode(s string) ([]byte, error) {
	if s == "" {
		return nil, fmt.Errorf("%w: base58: empty value", ErrInvalidEncoding)
	}

	b, err := base58.Decode(s)
	if err != nil {
		return nil, fmt.Errorf("%w: base58: %s", ErrInvalidEncoding, err)
	}

	return b, nil
}
