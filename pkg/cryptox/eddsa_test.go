package cryptox_test

import (
	"crypto/ed25519"
	"crypto/x509"
	"encoding/pem"
	"path/filepath"
	"testing"

	"github.com/aussiebroadwan/ballot/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

func TestGenerateEd25519Key(t *testing.T) {
	pemBytes, err := cryptox.GenerateEd25519Key()
	require.NoError(t, err)

	block, _ := pem.Decode(pemBytes)
	require.NotNil(t, block)
	require.Equal(t, "PRIVATE KEY", block.Type)

	keyInterface, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	require.NoError(t, err)

	key, ok := keyInterface.(ed25519.PrivateKey)
	require.True(t, ok)
	require.Len(t, key, ed25519.PrivateKeySize)
}

func TestLoadOrCreateEd25519Key(t *testing.T) {
	t.Run("empty path is ephemeral", func(t *testing.T) {
		a, err := cryptox.LoadOrCreateEd25519Key("")
		require.NoError(t, err)
		b, err := cryptox.LoadOrCreateEd25519Key("")
		require.NoError(t, err)
		require.NotEqual(t, a, b)
	})

	t.Run("persisted key is reused", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "keys", "receipt.pem")

		first, err := cryptox.LoadOrCreateEd25519Key(path)
		require.NoError(t, err)
		second, err := cryptox.LoadOrCreateEd25519Key(path)
		require.NoError(t, err)
		require.Equal(t, first, second)
	})
}
