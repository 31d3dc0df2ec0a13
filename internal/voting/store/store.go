package store

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/ballot/internal/voting/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers implement this.
// Sub-repositories are exposed as methods so a Tx hands out repos bound to
// the transaction and nobody accidentally mixes the two inside one unit of
// work.
type Store interface {
	Identities() Identities
	Tokens() Tokens
	Ballots() Ballots
	Candidates() Candidates

	ApplyMigrations() error

	// Tx starts a write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed. Inside fn only
	// the repos of tx may be used.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Identities interface {
	// CreateIdentity inserts a registrant. Returns ErrAlreadyExists when the
	// fingerprint is already registered.
	CreateIdentity(ctx context.Context, id domain.Identity) error

	GetIdentity(ctx context.Context, id string) (domain.Identity, error)

	CountIdentities(ctx context.Context) (int64, error)
}

type Tokens interface {
	// CreateToken stores an ISSUED token by fingerprint. Returns
	// ErrAlreadyExists if the identity already holds a token.
	CreateToken(ctx context.Context, t domain.Token) error

	GetTokenByHash(ctx context.Context, hash string) (domain.Token, error)

	GetTokenByIdentity(ctx context.Context, identityID string) (domain.Token, error)

	// ConsumeToken flips an ISSUED token to CONSUMED. It reports false when
	// no ISSUED token with that hash exists, leaving the caller to work out
	// whether it was unknown or already used.
	ConsumeToken(ctx context.Context, hash string, at time.Time) (bool, error)

	CountTokensByState(ctx context.Context) (map[domain.TokenState]int64, error)

	// ListConsumedWithoutBallot returns hashes of CONSUMED tokens that have
	// no ballot. A healthy ledger returns none.
	ListConsumedWithoutBallot(ctx context.Context) ([]string, error)
}

type Ballots interface {
	// AppendBallot inserts a chained ballot. Returns ErrAlreadyExists if the
	// token or the sequence number is already on the ledger.
	AppendBallot(ctx context.Context, b domain.Ballot) error

	// GetHead returns the newest ledger entry's position and hash, or the
	// genesis head when the ledger is empty.
	GetHead(ctx context.Context) (domain.LedgerHead, error)

	GetBallotByID(ctx context.Context, id string) (domain.Ballot, error)
	GetBallotByTokenHash(ctx context.Context, hash string) (domain.Ballot, error)

	// ListBallots returns up to limit ballots with seq > afterSeq in ledger order.
	ListBallots(ctx context.Context, afterSeq int64, limit int) ([]domain.Ballot, error)

	// ListUnconsumedBallots returns seqs of ballots whose token is missing
	// or not CONSUMED. A healthy ledger returns none.
	ListUnconsumedBallots(ctx context.Context) ([]int64, error)

	// CountVotes aggregates the ledger per candidate in one statement, so the
	// counts and head sequence come from the same snapshot.
	CountVotes(ctx context.Context) (domain.Tally, error)
}

type Candidates interface {
	UpsertCandidate(ctx context.Context, c domain.Candidate) error

	// ListCandidates returns the roster ordered by position.
	ListCandidates(ctx context.Context) ([]domain.Candidate, error)

	DeleteCandidate(ctx context.Context, id string) error

	// CountCandidateBallots returns how many ballots reference the candidate.
	CountCandidateBallots(ctx context.Context, id string) (int64, error)
}
