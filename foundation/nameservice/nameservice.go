// Package nameservice reads a folder of stored secret keys and creates a
// name lookup for the public keys they belong to.
package nameservice

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ardanlabs/solsign/foundation/signature"
)

// NameService maintains a map of public keys for name lookup.
type NameService struct {
	accounts map[string]string
}

// New constructs a name service from the key files found under root. A root
// that does not exist produces an empty name service.
func New(root string) (*NameService, error) {
	ns := NameService{
		accounts: make(map[string]string),
	}

	fn := func(fileName string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("walkdir failure: %w", err)
		}

		if d.IsDir() || filepath.Ext(fileName) != signature.KeyExtension {
			return nil
		}

		secretKey, err := signature.LoadKeyFile(fileName)
		if err != nil {
			return err
		}

		publicKey, err := signature.PublicKey(secretKey)
		if err != nil {
			return err
		}

		ns.accounts[publicKey] = strings.TrimSuffix(filepath.Base(fileName), signature.KeyExtension)

		return nil
	}

	if _, err := os.Stat(root); errors.Is(err, fs.ErrNotExist) {
		return &ns, nil
	}

	if err := filepath.WalkDir(root, fn); err != nil {
		return nil, fmt.Errorf("walking directory: %w", err)
	}

	return &ns, nil
}

// Lookup returns the name for the specified public key, or the key itself
// when it has no name.
func (ns *NameService) Lookup(publicKey string) string {
	name, exists := ns.accounts[publicKey]
	if !exists {
		return publicKey
	}
	return name
}

// Copy returns a copy of the map of public keys and names.
func (ns *NameService) Copy() map[string]string {
	cpy := make(map[string]string, len(ns.accounts))
	for publicKey, name := range ns.accounts {
		cpy[publicKey] = name
	}
	return cpy
}
