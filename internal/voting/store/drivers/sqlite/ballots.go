package sqlite

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/ballot/internal/voting/domain"
	"github.com/aussiebroadwan/ballot/internal/voting/store"
	"github.com/aussiebroadwan/ballot/internal/voting/store/drivers/sqlite/gen"
)

type ballotsRepo struct {
	q *gen.Queries
}

func (r *ballotsRepo) AppendBallot(ctx context.Context, b domain.Ballot) error {
	return mapConstraint(r.q.CreateBallot(ctx, gen.CreateBallotParams{
		ID:          b.ID,
		Seq:         b.Seq,
		TokenHash:   b.TokenHash,
		CandidateID: b.CandidateID,
		CastAt:      b.CastAt,
		PrevHash:    b.PrevHash,
		EntryHash:   b.EntryHash,
	}))
}

func (r *ballotsRepo) GetHead(ctx context.Context) (domain.LedgerHead, error) {
	row, err := r.q.GetLedgerHead(ctx)
	if err != nil {
		if errors.Is(mapNotFound(err), store.ErrNotFound) {
			return domain.GenesisHead(), nil
		}
		return domain.LedgerHead{}, err
	}
	return domain.LedgerHead{Seq: row.Seq, Hash: row.EntryHash}, nil
}

func (r *ballotsRepo) GetBallotByID(ctx context.Context, id string) (domain.Ballot, error) {
	row, err := r.q.GetBallotByID(ctx, id)
	if err != nil {
		return domain.Ballot{}, mapNotFound(err)
	}
	return mapBallot(row), nil
}

func (r *ballotsRepo) GetBallotByTokenHash(ctx context.Context, hash string) (domain.Ballot, error) {
	row, err := r.q.GetBallotByTokenHash(ctx, hash)
	if err != nil {
		return domain.Ballot{}, mapNotFound(err)
	}
	return mapBallot(row), nil
}

func (r *ballotsRepo) ListBallots(ctx context.Context, afterSeq int64, limit int) ([]domain.Ballot, error) {
	rows, err := r.q.ListBallotsAfter(ctx, gen.ListBallotsAfterParams{
		Seq:   afterSeq,
		Limit: int64(limit),
	})
	if err != nil {
		return nil, err
	}
	out := make([]domain.Ballot, len(rows))
	for i, row := range rows {
		out[i] = mapBallot(row)
	}
	return out, nil
}

func (r *ballotsRepo) ListUnconsumedBallots(ctx context.Context) ([]int64, error) {
	return r.q.ListUnconsumedBallots(ctx)
}

func (r *ballotsRepo) CountVotes(ctx context.Context) (domain.Tally, error) {
	rows, err := r.q.CountVotes(ctx)
	if err != nil {
		return domain.Tally{}, err
	}

	tally := domain.Tally{Counts: make([]domain.CandidateCount, 0, len(rows))}
	for _, row := range rows {
		tally.Counts = append(tally.Counts, domain.CandidateCount{
			Candidate: domain.Candidate{
				ID:          row.ID,
				DisplayName: row.DisplayName,
				Position:    int(row.Position),
			},
			Votes: row.Votes,
		})
		tally.Total += row.Votes
		tally.HeadSeq = row.HeadSeq
	}
	return tally, nil
}
