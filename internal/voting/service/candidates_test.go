package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/aussiebroadwan/ballot/internal/voting/domain"
	"github.com/stretchr/testify/require"
)

func TestParseRoster(t *testing.T) {
	t.Parallel()

	r, err := ParseRoster([]byte("candidates:\n  - Alice\n  - Bob\n"))
	require.NoError(t, err)
	list := r.List()
	require.Len(t, list, 2)
	require.Equal(t, 1, list[0].Position)
	require.Equal(t, domain.CandidateID("Bob"), list[1].ID)

	_, err = ParseRoster([]byte("candidates: []\n"))
	require.Error(t, err)

	_, err = ParseRoster([]byte("candidates:\n  - Alice\n  - alice\n"))
	require.Error(t, err)

	_, err = ParseRoster([]byte("candidates: [\n"))
	require.Error(t, err)
}

func TestLoadRoster(t *testing.T) {
	t.Parallel()

	def, err := LoadRoster("")
	require.NoError(t, err)
	require.Len(t, def.List(), len(domain.DefaultCandidates()))

	path := filepath.Join(t.TempDir(), "candidates.yaml")
	require.NoError(t, os.WriteFile(path, []byte("candidates: [Carol, Dave]\n"), 0o600))
	r, err := LoadRoster(path)
	require.NoError(t, err)
	require.Equal(t, "Carol", r.List()[0].DisplayName)

	_, err = LoadRoster(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestRosterResolve(t *testing.T) {
	t.Parallel()

	r, err := NewRoster([]domain.Candidate{domain.NewCandidate("Bernie Sanders", 1)})
	require.NoError(t, err)

	for _, ref := range []string{"Bernie Sanders", "bernie   SANDERS", " bernie sanders ", domain.CandidateID("Bernie Sanders")} {
		c, ok := r.Resolve(ref)
		require.True(t, ok, ref)
		require.Equal(t, "Bernie Sanders", c.DisplayName)
	}

	_, ok := r.Resolve("Bernie")
	require.False(t, ok)

	t.Run("listed names with inner spacing resolve", func(t *testing.T) {
		r, err := ParseRoster([]byte(`candidates: ["Doug  Ford", Bob]`))
		require.NoError(t, err)

		listed := r.List()[0].DisplayName
		require.Equal(t, "Doug  Ford", listed)
		for _, ref := range []string{listed, "Doug Ford", "doug   ford"} {
			c, ok := r.Resolve(ref)
			require.True(t, ok, ref)
			require.Equal(t, listed, c.DisplayName)
		}
	})

	t.Run("names differing only in spacing collide", func(t *testing.T) {
		_, err := ParseRoster([]byte(`candidates: ["Doug  Ford", "doug ford"]`))
		require.Error(t, err)
	})
}

func TestCandidateSync(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	env := newTestEnv(t)

	list, err := env.candidates.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)

	t.Run("is idempotent", func(t *testing.T) {
		require.NoError(t, env.candidates.Sync(ctx))
		list, err := env.candidates.List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 2)
	})

	t.Run("drops candidates without votes", func(t *testing.T) {
		roster, err := NewRoster([]domain.Candidate{domain.NewCandidate("Alice", 1)})
		require.NoError(t, err)
		svc := &CandidateService{Store: env.store, Roster: roster}
		require.NoError(t, svc.Sync(ctx))

		list, err := svc.List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 1)
	})

	t.Run("refuses to drop candidates with votes", func(t *testing.T) {
		tok := env.register(t, "Jane Doe")
		_, err := env.ledger.CastVote(ctx, tok.Value, "Alice")
		require.NoError(t, err)

		roster, err := NewRoster([]domain.Candidate{domain.NewCandidate("Bob", 1)})
		require.NoError(t, err)
		svc := &CandidateService{Store: env.store, Roster: roster}
		require.ErrorIs(t, svc.Sync(ctx), ErrRosterConflict)

		list, err := svc.List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 1)
		require.Equal(t, "Alice", list[0].DisplayName)
	})
}
