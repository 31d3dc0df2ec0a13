package service

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"sync"

	"github.com/aussiebroadwan/ballot/internal/voting/domain"
	"github.com/aussiebroadwan/ballot/internal/voting/store"
	"golang.org/x/sync/singleflight"
)

// TallyService computes vote counts on demand. The last result is cached
// against the ledger head it was computed at, and concurrent recomputations
// share one query.
type TallyService struct {
	Store store.Store

	mu     sync.Mutex
	cached *domain.Tally
	group  singleflight.Group
}

// Tally returns per-candidate counts for every candidate, zeros included.
func (s *TallyService) Tally(ctx context.Context) (domain.Tally, error) {
	head, err := s.Store.Ballots().GetHead(ctx)
	if err != nil {
		return domain.Tally{}, fmt.Errorf("ledger head: %w", err)
	}

	if t, ok := s.fromCache(head.Seq); ok {
		return t, nil
	}

	// A flight started before head.Seq committed must not be shared with
	// callers that already see it.
	key := "tally:" + strconv.FormatInt(head.Seq, 10)
	v, err, _ := s.group.Do(key, func() (any, error) {
		t, err := s.Store.Ballots().CountVotes(context.WithoutCancel(ctx))
		if err != nil {
			return domain.Tally{}, err
		}

		s.mu.Lock()
		if s.cached == nil || t.HeadSeq >= s.cached.HeadSeq {
			s.cached = &t
		}
		s.mu.Unlock()
		return t, nil
	})
	if err != nil {
		return domain.Tally{}, fmt.Errorf("count votes: %w", err)
	}

	t := v.(domain.Tally)
	t.Counts = slices.Clone(t.Counts)
	return t, nil
}

// Invalidate drops the cached tally. The ledger calls it after every append.
func (s *TallyService) Invalidate() {
	s.mu.Lock()
	s.cached = nil
	s.mu.Unlock()
}

func (s *TallyService) fromCache(headSeq int64) (domain.Tally, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cached == nil || s.cached.HeadSeq != headSeq {
		return domain.Tally{}, false
	}
	t := *s.cached
	t.Counts = slices.Clone(t.Counts)
	return t, true
}
