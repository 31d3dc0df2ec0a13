package cryptox

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// PepperSize is the number of random bytes in a freshly generated pepper.
const PepperSize = 32

// LoadOrCreatePepper reads the server pepper from path, generating and
// persisting a new one (mode 0600) when the file does not exist yet.
//
// Losing the pepper means identity fingerprints can no longer be recomputed,
// so duplicate registration checks stop matching older rows.
func LoadOrCreatePepper(path string) ([]byte, error) {
	path = filepath.Clean(path)
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return nil, fmt.Errorf("cryptox: create pepper dir: %w", err)
	}

	data, err := os.ReadFile(path)
	if err == nil {
		pepper, err := base64.RawURLEncoding.DecodeString(strings.TrimSpace(string(data)))
		if err != nil {
			return nil, fmt.Errorf("cryptox: decode pepper: %w", err)
		}
		if len(pepper) == 0 {
			return nil, errors.New("cryptox: pepper file is empty")
		}
		return pepper, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("cryptox: read pepper: %w", err)
	}

	pepper := make([]byte, PepperSize)
	if _, err := rand.Read(pepper); err != nil {
		return nil, fmt.Errorf("cryptox: generate pepper: %w", err)
	}

	encoded := base64.RawURLEncoding.EncodeToString(pepper)
	if err := os.WriteFile(path, []byte(encoded), 0600); err != nil {
		return nil, fmt.Errorf("cryptox: write pepper: %w", err)
	}

	return pepper, nil
}
