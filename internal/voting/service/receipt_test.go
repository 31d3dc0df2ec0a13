package service

import (
	"context"
	"testing"

	"github.com/aussiebroadwan/ballot/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

func newTestReceipts(t *testing.T, env *testEnv, issuer string) *ReceiptService {
	t.Helper()
	pemKey, err := cryptox.GenerateEd25519Key()
	require.NoError(t, err)

	receipts, keys, err := NewReceiptService(env.store, pemKey, "receipt-1", issuer)
	require.NoError(t, err)
	require.True(t, keys.IsReady())
	require.Len(t, keys.PublicJWKS().Keys, 1)
	return receipts
}

func TestReceipts(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	env := newTestEnv(t)
	receipts := newTestReceipts(t, env, "https://ballot.test")

	tok := env.register(t, "Jane Doe")
	ballot, err := env.ledger.CastVote(ctx, tok.Value, "Alice")
	require.NoError(t, err)

	receipt, err := receipts.Issue(ballot)
	require.NoError(t, err)
	require.NotContains(t, receipt, tok.Value)

	t.Run("verifies against the ledger", func(t *testing.T) {
		claims, err := receipts.Verify(ctx, receipt)
		require.NoError(t, err)
		require.Equal(t, ballot.ID, claims.BallotID)
		require.Equal(t, ballot.Seq, claims.Seq)
		require.Equal(t, ballot.EntryHash, claims.EntryHash)
	})

	t.Run("blank receipt", func(t *testing.T) {
		_, err := receipts.Verify(ctx, " ")
		require.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("altered receipt", func(t *testing.T) {
		_, err := receipts.Verify(ctx, receipt[:len(receipt)-2]+"xx")
		require.ErrorIs(t, err, ErrInvalidReceipt)
	})

	t.Run("receipt from another key", func(t *testing.T) {
		other := newTestReceipts(t, env, "https://ballot.test")
		foreign, err := other.Issue(ballot)
		require.NoError(t, err)
		_, err = receipts.Verify(ctx, foreign)
		require.ErrorIs(t, err, ErrInvalidReceipt)
	})

	t.Run("receipt for a ballot that is not on the ledger", func(t *testing.T) {
		ghost := ballot
		ghost.ID = "01JGHOSTGHOSTGHOSTGHOSTGHOS"
		forged, err := receipts.Issue(ghost)
		require.NoError(t, err)
		_, err = receipts.Verify(ctx, forged)
		require.ErrorIs(t, err, ErrInvalidReceipt)
	})

	t.Run("receipt whose hash disagrees with the ledger", func(t *testing.T) {
		wrong := ballot
		wrong.EntryHash = ballot.PrevHash
		forged, err := receipts.Issue(wrong)
		require.NoError(t, err)
		_, err = receipts.Verify(ctx, forged)
		require.ErrorIs(t, err, ErrInvalidReceipt)
	})
}
