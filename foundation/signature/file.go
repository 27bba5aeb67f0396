package signature

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
)

// KeyExtension is the file extension used for stored secret keys.
const KeyExtension = ".ed25519"

// SaveKeyFile writes the Base58 secret key to the file, readable only by
// the owner. The secret is checked before anything is written.
func SaveKeyFile(path string, secretKey string) error {
	if _, err := PublicKey(secretKey); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating key folder: %w", err)
	}

	if err := os.WriteFile(path, []byte(secretKey+"\n"), 0o600); err != nil {
		return fmt.Errorf("writing key file: %w", err)
	}

	return nil
}

// LoadKeyFile reads a Base58 secret key written by SaveKeyFile.
func LoadKeyFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading key file: %w", err)
	}

	secretKey := string(bytes.TrimSpace(data))
	if _, err := PublicKey(secretKey); err != nil {
		return "", fmt.Errorf("key file %s: %w", path, err)
	}

	return secretKey, nil
}
