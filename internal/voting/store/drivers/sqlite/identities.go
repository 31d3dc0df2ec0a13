package sqlite

import (
	"context"

	"github.com/aussiebroadwan/ballot/internal/voting/domain"
	"github.com/aussiebroadwan/ballot/internal/voting/store/drivers/sqlite/gen"
)

type identitiesRepo struct {
	q *gen.Queries
}

func (r *identitiesRepo) CreateIdentity(ctx context.Context, id domain.Identity) error {
	return mapConstraint(r.q.CreateIdentity(ctx, gen.CreateIdentityParams{
		ID:           id.ID,
		RegisteredAt: id.RegisteredAt,
	}))
}

func (r *identitiesRepo) GetIdentity(ctx context.Context, id string) (domain.Identity, error) {
	row, err := r.q.GetIdentity(ctx, id)
	if err != nil {
		return domain.Identity{}, mapNotFound(err)
	}
	return domain.Identity{ID: row.ID, RegisteredAt: row.RegisteredAt}, nil
}

func (r *identitiesRepo) CountIdentities(ctx context.Context) (int64, error) {
	return r.q.CountIdentities(ctx)
}
