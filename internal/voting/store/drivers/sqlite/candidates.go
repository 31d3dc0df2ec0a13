package sqlite

import (
	"context"

	"github.com/aussiebroadwan/ballot/internal/voting/domain"
	"github.com/aussiebroadwan/ballot/internal/voting/store/drivers/sqlite/gen"
)

type candidatesRepo struct {
	q *gen.Queries
}

func (r *candidatesRepo) UpsertCandidate(ctx context.Context, c domain.Candidate) error {
	return mapConstraint(r.q.UpsertCandidate(ctx, gen.UpsertCandidateParams{
		ID:          c.ID,
		DisplayName: c.DisplayName,
		Position:    int64(c.Position),
	}))
}

func (r *candidatesRepo) ListCandidates(ctx context.Context) ([]domain.Candidate, error) {
	rows, err := r.q.ListCandidates(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Candidate, len(rows))
	for i, row := range rows {
		out[i] = mapCandidate(row)
	}
	return out, nil
}

func (r *candidatesRepo) DeleteCandidate(ctx context.Context, id string) error {
	return r.q.DeleteCandidate(ctx, id)
}

func (r *candidatesRepo) CountCandidateBallots(ctx context.Context, id string) (int64, error) {
	return r.q.CountCandidateBallots(ctx, id)
}
