package jwtx_test

import (
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/ballot/pkg/cryptox"
	"github.com/aussiebroadwan/ballot/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

const exampleIssuer = "ballot-test"

func newSigner(t *testing.T, kid string) jwtx.Signer {
	t.Helper()
	pemKey, err := cryptox.GenerateEd25519Key()
	require.NoError(t, err)

	signer, err := jwtx.NewSignerEdDSA(kid, pemKey)
	require.NoError(t, err)
	require.NoError(t, signer.Validate())
	return signer
}

func TestEdDSASignAndVerify(t *testing.T) {
	signer := newSigner(t, "receipt-key-1")
	require.Equal(t, "EdDSA", signer.Alg())
	require.Equal(t, "receipt-key-1", signer.KID())

	claims := jwtx.NewReceiptClaims("01HQ7T3Z1MZ0JQ3M6MZQ1FQ3ZV", 7, "abc123", exampleIssuer, time.Now().UTC())
	token, err := signer.Sign(claims)
	require.NoError(t, err)

	keyset := jwtx.NewKeySet()
	require.NoError(t, keyset.AddSigner(signer))
	require.True(t, keyset.IsReady())

	jwks := keyset.PublicJWKS()
	require.Len(t, jwks.Keys, 1)
	require.Equal(t, "OKP", jwks.Keys[0].Kty)
	require.Equal(t, "Ed25519", jwks.Keys[0].Crv)

	verifier := jwtx.NewVerifierEdDSA(keyset, exampleIssuer, []string{jwtx.ReceiptAudience})
	got, err := verifier.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "01HQ7T3Z1MZ0JQ3M6MZQ1FQ3ZV", got.BallotID)
	require.Equal(t, int64(7), got.Seq)
	require.Equal(t, "abc123", got.EntryHash)
}

func TestEdDSAVerifyRejections(t *testing.T) {
	signer := newSigner(t, "receipt-key-1")
	keyset := jwtx.NewKeySet()
	require.NoError(t, keyset.AddSigner(signer))
	verifier := jwtx.NewVerifierEdDSA(keyset, exampleIssuer, []string{jwtx.ReceiptAudience})

	claims := jwtx.NewReceiptClaims("01HQ7T3Z1MZ0JQ3M6MZQ1FQ3ZV", 1, "hash", exampleIssuer, time.Now())
	token, err := signer.Sign(claims)
	require.NoError(t, err)

	t.Run("tampered payload", func(t *testing.T) {
		parts := strings.Split(token, ".")
		require.Len(t, parts, 3)
		forged := parts[0] + "." + parts[1] + "x" + "." + parts[2]
		_, err := verifier.Verify(forged)
		require.Error(t, err)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := verifier.Verify("not-a-jwt")
		require.ErrorIs(t, err, jwtx.ErrMalformed)
	})

	t.Run("unknown signer", func(t *testing.T) {
		other := newSigner(t, "other-key")
		foreign, err := other.Sign(claims)
		require.NoError(t, err)
		_, err = verifier.Verify(foreign)
		require.Error(t, err)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		strict := jwtx.NewVerifierEdDSA(keyset, "someone-else", nil)
		_, err := strict.Verify(token)
		require.ErrorIs(t, err, jwtx.ErrIssuer)
	})
}
