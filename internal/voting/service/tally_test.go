package service

import (
	"context"
	"sync"
	"testing"

	"github.com/aussiebroadwan/ballot/internal/voting/domain"
	"github.com/aussiebroadwan/ballot/internal/voting/store"
	"github.com/stretchr/testify/require"
)

func TestTallyIncludesZeroCounts(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	env := newTestEnv(t, "Alice", "Bob", "Carol")

	tally, err := env.tally.Tally(ctx)
	require.NoError(t, err)
	require.Len(t, tally.Counts, 3)
	for _, c := range tally.Counts {
		require.Zero(t, c.Votes)
	}

	votes := map[string]string{"A One": "Alice", "B Two": "Bob", "C Three": "Alice"}
	for name, candidate := range votes {
		tok := env.register(t, name)
		_, err := env.ledger.CastVote(ctx, tok.Value, candidate)
		require.NoError(t, err)
	}

	tally, err = env.tally.Tally(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(3), tally.Total)
	require.Equal(t, int64(3), tally.HeadSeq)

	counts := tally.ByCandidateID()
	require.Equal(t, int64(2), counts[domain.CandidateID("Alice")])
	require.Equal(t, int64(1), counts[domain.CandidateID("Bob")])
	require.Equal(t, int64(0), counts[domain.CandidateID("Carol")])

	// Roster order is preserved.
	require.Equal(t, "Alice", tally.Counts[0].Candidate.DisplayName)
	require.Equal(t, "Carol", tally.Counts[2].Candidate.DisplayName)
}

func TestTallyTracksLedgerHead(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	env := newTestEnv(t)

	// A tally service that is never invalidated still sees new ballots.
	detached := &TallyService{Store: env.store}
	before, err := detached.Tally(ctx)
	require.NoError(t, err)
	require.Zero(t, before.Total)

	tok := env.register(t, "Jane Doe")
	_, err = env.ledger.CastVote(ctx, tok.Value, "Bob")
	require.NoError(t, err)

	after, err := detached.Tally(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(1), after.Total)
}

// Register Jane, validate, vote once, fail to vote again, check the results.
func TestVoterJourney(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	env := newTestEnv(t)

	_, tok, err := env.identities.Register(ctx, JoinName("Jane", "Doe"), "1985-06-30", "42 Wallaby Way")
	require.NoError(t, err)

	res, err := env.tokens.Validate(ctx, tok.Value)
	require.NoError(t, err)
	require.True(t, res.Valid)

	_, err = env.ledger.CastVote(ctx, tok.Value, "Bob")
	require.NoError(t, err)

	_, err = env.ledger.CastVote(ctx, tok.Value, "Alice")
	require.ErrorIs(t, err, ErrTokenAlreadyUsed)

	_, _, err = env.identities.Register(ctx, "jane doe", "1985-06-30", "42 wallaby way")
	require.ErrorIs(t, err, ErrDuplicateIdentity)

	tally, err := env.tally.Tally(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(1), tally.Total)
	require.Equal(t, int64(1), tally.ByCandidateID()[domain.CandidateID("Bob")])
	require.Equal(t, int64(0), tally.ByCandidateID()[domain.CandidateID("Alice")])
}

// pausedCountStore holds the first CountVotes call after its query has run,
// until release is closed.
type pausedCountStore struct {
	store.Store
	once    sync.Once
	counted chan struct{}
	release chan struct{}
}

func (s *pausedCountStore) Ballots() store.Ballots {
	return &pausedCountBallots{Ballots: s.Store.Ballots(), parent: s}
}

type pausedCountBallots struct {
	store.Ballots
	parent *pausedCountStore
}

func (b *pausedCountBallots) CountVotes(ctx context.Context) (domain.Tally, error) {
	t, err := b.Ballots.CountVotes(ctx)
	first := false
	b.parent.once.Do(func() { first = true })
	if first {
		close(b.parent.counted)
		<-b.parent.release
	}
	return t, err
}

func TestTallyDoesNotShareStaleComputation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	env := newTestEnv(t)

	paused := &pausedCountStore{
		Store:   env.store,
		counted: make(chan struct{}),
		release: make(chan struct{}),
	}
	tallies := &TallyService{Store: paused}

	stale := make(chan domain.Tally, 1)
	go func() {
		tl, _ := tallies.Tally(ctx)
		stale <- tl
	}()
	<-paused.counted

	tok := env.register(t, "Jane Doe")
	b, err := env.ledger.CastVote(ctx, tok.Value, "Alice")
	require.NoError(t, err)
	require.Equal(t, int64(1), b.Seq)

	fresh, err := tallies.Tally(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(1), fresh.Total)
	require.Equal(t, int64(1), fresh.HeadSeq)

	close(paused.release)
	require.Zero(t, (<-stale).Total)

	// The late stale result must not replace the newer cached tally.
	again, err := tallies.Tally(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(1), again.Total)
}
