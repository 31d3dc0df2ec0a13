package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/aussiebroadwan/ballot/internal/voting/domain"
	"github.com/aussiebroadwan/ballot/internal/voting/store"
	"github.com/aussiebroadwan/ballot/internal/voting/store/drivers/sqlite/gen"
	sqlitedrv "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

type Store struct {
	db  *sql.DB
	q   *gen.Queries
	dsn string
}

// NewStore opens the database at path. Every connection enforces foreign
// keys and waits up to five seconds for a competing writer. Transactions
// begin IMMEDIATE so a write transaction holds the write lock from its first
// statement, which serializes casts across connections.
//
// ":memory:" databases are private to a connection, so the pool is pinned to
// one connection to keep every caller on the same database.
func NewStore(path string) (*Store, error) {
	dsn := buildDSN(path)

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if isMemory(path) {
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{
		db:  db,
		q:   gen.New(db),
		dsn: dsn,
	}, nil
}

func buildDSN(path string) string {
	params := []string{
		"_pragma=foreign_keys(1)",
		"_pragma=busy_timeout(5000)",
		"_txlock=immediate",
	}
	if !isMemory(path) {
		params = append(params, "_pragma=journal_mode(WAL)", "_pragma=synchronous(NORMAL)")
	}

	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + strings.Join(params, "&")
}

func isMemory(path string) bool {
	return path == ":memory:" || strings.Contains(path, "mode=memory")
}

func (s *Store) Close() error { return s.db.Close() }

// DB exposes the underlying handle for maintenance tooling and tests.
func (s *Store) DB() *sql.DB { return s.db }

// Ping verifies the database connection is still alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Tx starts a write transaction and returns a Tx-scoped Store.
func (s *Store) Tx(ctx context.Context) (store.Tx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return newTx(tx), nil
}

// WithTx executes fn within a transaction, automatically handling commit/rollback.
func (s *Store) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	tx, err := s.Tx(ctx)
	if err != nil {
		return err
	}

	// Ensure rollback is called if we panic or return early with error
	defer func() {
		_ = tx.Rollback() // safe to call even after commit
	}()

	if err := fn(tx); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *Store) Identities() store.Identities { return &identitiesRepo{q: s.q} }
func (s *Store) Tokens() store.Tokens         { return &tokensRepo{q: s.q} }
func (s *Store) Ballots() store.Ballots       { return &ballotsRepo{q: s.q} }
func (s *Store) Candidates() store.Candidates { return &candidatesRepo{q: s.q} }

func mapNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return store.ErrNotFound
	}
	return err
}

// mapConstraint turns unique and primary key violations into
// store.ErrAlreadyExists, keeping the driver error in the chain.
func mapConstraint(err error) error {
	if err == nil {
		return nil
	}
	var serr *sqlitedrv.Error
	if errors.As(err, &serr) {
		switch serr.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return errors.Join(store.ErrAlreadyExists, err)
		}
	}
	return err
}

func mapToken(row gen.Token) domain.Token {
	t := domain.Token{
		Hash:       row.TokenHash,
		IdentityID: row.IdentityID,
		State:      domain.TokenState(row.State),
		IssuedAt:   row.IssuedAt,
	}
	if row.ConsumedAt.Valid {
		at := row.ConsumedAt.Time
		t.ConsumedAt = &at
	}
	return t
}

func mapBallot(row gen.Ballot) domain.Ballot {
	return domain.Ballot{
		ID:          row.ID,
		Seq:         row.Seq,
		TokenHash:   row.TokenHash,
		CandidateID: row.CandidateID,
		CastAt:      row.CastAt.UTC(),
		PrevHash:    row.PrevHash,
		EntryHash:   row.EntryHash,
	}
}

func mapCandidate(row gen.Candidate) domain.Candidate {
	return domain.Candidate{
		ID:          row.ID,
		DisplayName: row.DisplayName,
		Position:    int(row.Position),
	}
}
