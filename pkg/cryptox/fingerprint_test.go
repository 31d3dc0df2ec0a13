package cryptox

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFingerprintIdentity(t *testing.T) {
	pepper := []byte("unit-test-pepper")

	a := FingerprintIdentity(pepper, "jane doe", "1990-01-01", "1 main st")
	b := FingerprintIdentity(pepper, "jane doe", "1990-01-01", "1 main st")
	require.Equal(t, a, b, "fingerprint should be deterministic")
	require.Len(t, a, 43)

	t.Run("field boundaries matter", func(t *testing.T) {
		x := FingerprintIdentity(pepper, "ab", "c")
		y := FingerprintIdentity(pepper, "a", "bc")
		require.NotEqual(t, x, y)
	})

	t.Run("pepper changes the fingerprint", func(t *testing.T) {
		other := FingerprintIdentity([]byte("another-pepper"), "jane doe", "1990-01-01", "1 main st")
		require.NotEqual(t, a, other)
	})
}
