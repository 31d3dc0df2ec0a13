package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/aussiebroadwan/ballot/internal/voting/domain"
	"github.com/aussiebroadwan/ballot/internal/voting/store/drivers/sqlite/gen"
)

type tokensRepo struct {
	q *gen.Queries
}

func (r *tokensRepo) CreateToken(ctx context.Context, t domain.Token) error {
	return mapConstraint(r.q.CreateToken(ctx, gen.CreateTokenParams{
		TokenHash:  t.Hash,
		IdentityID: t.IdentityID,
		IssuedAt:   t.IssuedAt,
	}))
}

func (r *tokensRepo) GetTokenByHash(ctx context.Context, hash string) (domain.Token, error) {
	row, err := r.q.GetTokenByHash(ctx, hash)
	if err != nil {
		return domain.Token{}, mapNotFound(err)
	}
	return mapToken(row), nil
}

func (r *tokensRepo) GetTokenByIdentity(ctx context.Context, identityID string) (domain.Token, error) {
	row, err := r.q.GetTokenByIdentity(ctx, identityID)
	if err != nil {
		return domain.Token{}, mapNotFound(err)
	}
	return mapToken(row), nil
}

func (r *tokensRepo) ConsumeToken(ctx context.Context, hash string, at time.Time) (bool, error) {
	n, err := r.q.ConsumeToken(ctx, gen.ConsumeTokenParams{
		ConsumedAt: sql.NullTime{Time: at, Valid: true},
		TokenHash:  hash,
	})
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

func (r *tokensRepo) CountTokensByState(ctx context.Context) (map[domain.TokenState]int64, error) {
	rows, err := r.q.CountTokensByState(ctx)
	if err != nil {
		return nil, err
	}
	out := map[domain.TokenState]int64{
		domain.TokenIssued:   0,
		domain.TokenConsumed: 0,
	}
	for _, row := range rows {
		out[domain.TokenState(row.State)] = row.Total
	}
	return out, nil
}

func (r *tokensRepo) ListConsumedWithoutBallot(ctx context.Context) ([]string, error) {
	return r.q.ListConsumedWithoutBallot(ctx)
}
