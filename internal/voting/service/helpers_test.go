package service

import (
	"bytes"
	"context"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/aussiebroadwan/ballot/internal/voting/domain"
	"github.com/aussiebroadwan/ballot/internal/voting/store/drivers/sqlite"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	store      *sqlite.Store
	roster     *Roster
	identities *IdentityService
	tokens     *TokenService
	candidates *CandidateService
	ledger     *LedgerService
	tally      *TallyService
}

var testPepper = bytes.Repeat([]byte{0x42}, 32)

func newTestEnv(t *testing.T, names ...string) *testEnv {
	t.Helper()
	return newTestEnvAt(t, ":memory:", names...)
}

// newFileTestEnv backs the services with a database file, so the pool opens
// several connections and writers contend on sqlite's write lock.
func newFileTestEnv(t *testing.T, names ...string) *testEnv {
	t.Helper()
	return newTestEnvAt(t, filepath.Join(t.TempDir(), "ballot.db"), names...)
}

func newTestEnvAt(t *testing.T, path string, names ...string) *testEnv {
	t.Helper()
	if len(names) == 0 {
		names = []string{"Alice", "Bob"}
	}

	st, err := sqlite.NewStore(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	candidates := make([]domain.Candidate, len(names))
	for i, n := range names {
		candidates[i] = domain.NewCandidate(n, i+1)
	}
	roster, err := NewRoster(candidates)
	require.NoError(t, err)

	env := &testEnv{store: st, roster: roster}
	env.tokens = &TokenService{Store: st}
	env.identities = &IdentityService{Store: st, Tokens: env.tokens, Pepper: testPepper}
	env.candidates = &CandidateService{Store: st, Roster: roster}
	env.tally = &TallyService{Store: st}
	env.ledger = &LedgerService{Store: st, Tokens: env.tokens, Roster: roster, Tally: env.tally}

	require.NoError(t, env.candidates.Sync(context.Background()))
	return env
}

func (e *testEnv) register(t *testing.T, name string) domain.Token {
	t.Helper()
	_, tok, err := e.identities.Register(context.Background(), name, "1990-01-15", "1 Main St")
	require.NoError(t, err)
	return tok
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
