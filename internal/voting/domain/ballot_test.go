package domain_test

import (
	"testing"
	"time"

	"github.com/aussiebroadwan/ballot/internal/voting/domain"
	"github.com/stretchr/testify/require"
)

func TestLedgerHeadNextChains(t *testing.T) {
	castAt := time.Date(2026, 10, 17, 9, 30, 0, 123456789, time.FixedZone("AEDT", 11*3600))

	first := domain.GenesisHead().Next("b1", "tok1", "cand1", castAt)
	require.Equal(t, int64(1), first.Seq)
	require.Equal(t, domain.GenesisHash, first.PrevHash)
	require.Len(t, first.EntryHash, 64)
	require.Equal(t, time.UTC, first.CastAt.Location())
	require.Equal(t, 123456000, first.CastAt.Nanosecond())

	second := first.Head().Next("b2", "tok2", "cand1", castAt)
	require.Equal(t, int64(2), second.Seq)
	require.Equal(t, first.EntryHash, second.PrevHash)
	require.NotEqual(t, first.EntryHash, second.EntryHash)
}

func TestBallotHashCoversEveryField(t *testing.T) {
	base := domain.GenesisHead().Next("b1", "tok1", "cand1", time.Now())
	require.Equal(t, base.EntryHash, base.ComputeHash())

	mutations := map[string]func(b *domain.Ballot){
		"seq":       func(b *domain.Ballot) { b.Seq++ },
		"id":        func(b *domain.Ballot) { b.ID = "b2" },
		"token":     func(b *domain.Ballot) { b.TokenHash = "tok2" },
		"candidate": func(b *domain.Ballot) { b.CandidateID = "cand2" },
		"cast_at":   func(b *domain.Ballot) { b.CastAt = b.CastAt.Add(time.Microsecond) },
		"prev":      func(b *domain.Ballot) { b.PrevHash = base.EntryHash },
	}
	for name, mutate := range mutations {
		t.Run(name, func(t *testing.T) {
			b := base
			mutate(&b)
			require.NotEqual(t, base.EntryHash, b.ComputeHash())
		})
	}
}

func TestCandidateIDStable(t *testing.T) {
	require.Equal(t, domain.CandidateID("Bernie Sanders"), domain.CandidateID("  Bernie Sanders "))
	require.NotEqual(t, domain.CandidateID("Bernie Sanders"), domain.CandidateID("Tim Houston"))

	roster := domain.DefaultCandidates()
	require.Len(t, roster, 5)
	require.Equal(t, "Doug Ford", roster[0].DisplayName)
	require.Equal(t, 1, roster[0].Position)
	require.Equal(t, domain.CandidateID("Doug Ford"), roster[0].ID)
}
