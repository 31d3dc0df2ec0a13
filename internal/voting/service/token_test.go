package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateToken(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	env := newTestEnv(t)
	tok := env.register(t, "Jane Doe")

	t.Run("unused token is valid and stays valid", func(t *testing.T) {
		for range 3 {
			res, err := env.tokens.Validate(ctx, tok.Value)
			require.NoError(t, err)
			require.True(t, res.Valid)
			require.NoError(t, res.Reason)
		}
	})

	t.Run("surrounding whitespace is ignored", func(t *testing.T) {
		res, err := env.tokens.Validate(ctx, "  "+tok.Value+"\n")
		require.NoError(t, err)
		require.True(t, res.Valid)
	})

	t.Run("blank token is invalid input", func(t *testing.T) {
		_, err := env.tokens.Validate(ctx, "   ")
		require.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("unknown token", func(t *testing.T) {
		res, err := env.tokens.Validate(ctx, "not-a-token")
		require.NoError(t, err)
		require.False(t, res.Valid)
		require.ErrorIs(t, res.Reason, ErrUnknownToken)
	})

	t.Run("used token", func(t *testing.T) {
		_, err := env.ledger.CastVote(ctx, tok.Value, "Alice")
		require.NoError(t, err)

		res, err := env.tokens.Validate(ctx, tok.Value)
		require.NoError(t, err)
		require.False(t, res.Valid)
		require.ErrorIs(t, res.Reason, ErrTokenAlreadyUsed)
	})
}

func TestIsRejection(t *testing.T) {
	t.Parallel()
	require.True(t, IsRejection(ErrUnknownCandidate))
	require.False(t, IsRejection(ErrRosterConflict))
	require.False(t, IsRejection(context.DeadlineExceeded))
	require.False(t, IsRejection(nil))
}
