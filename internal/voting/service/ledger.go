package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/aussiebroadwan/ballot/internal/voting/domain"
	"github.com/aussiebroadwan/ballot/internal/voting/store"
	"github.com/aussiebroadwan/ballot/pkg/cryptox"
	"github.com/aussiebroadwan/ballot/pkg/idx"
	"github.com/aussiebroadwan/ballot/pkg/slogx"
)

const (
	DefaultPageSize = 100
	MaxPageSize     = 1000

	verifyBatch = 500
)

// LedgerService owns the ballot ledger. A cast consumes the token and appends
// the chained ballot in one write transaction, so no reader ever sees a
// consumed token without its ballot or a ballot whose token is still issued.
type LedgerService struct {
	Store  store.Store
	Tokens *TokenService
	Roster *Roster
	Tally  *TallyService // optional; invalidated after each append
	Now    func() time.Time
}

// LedgerPage is one page of the public ledger.
type LedgerPage struct {
	Entries []domain.Ballot
	Head    domain.LedgerHead
}

// LedgerReport is the outcome of a full ledger scan.
type LedgerReport struct {
	Valid    bool
	Entries  int64
	HeadHash string
	Problems []string
}

// CastVote spends tokenValue on candidate. candidate may be a display name or
// a candidate ID.
func (s *LedgerService) CastVote(ctx context.Context, tokenValue, candidate string) (domain.Ballot, error) {
	log := slogx.FromContext(ctx)

	hash, c, err := s.prepare(tokenValue, candidate)
	if err != nil {
		log.Info("vote rejected", slog.String("reason", err.Error()))
		return domain.Ballot{}, err
	}

	var ballot domain.Ballot
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		now := s.now()
		if err := s.Tokens.consume(ctx, tx, hash, now); err != nil {
			return err
		}

		head, err := tx.Ballots().GetHead(ctx)
		if err != nil {
			return fmt.Errorf("ledger head: %w", err)
		}

		ballot = head.Next(idx.NewAt(now).String(), hash, c.ID, now)
		if err := tx.Ballots().AppendBallot(ctx, ballot); err != nil {
			return fmt.Errorf("append ballot: %w", err)
		}
		return nil
	})
	if err != nil {
		if IsRejection(err) {
			log.Info("vote rejected", slog.String("reason", err.Error()))
		} else {
			log.Error("failed to cast vote", slog.Any("error", err))
		}
		return domain.Ballot{}, err
	}

	if s.Tally != nil {
		s.Tally.Invalidate()
	}

	log.Info("ballot cast",
		slog.String("ballot_id", ballot.ID),
		slog.Int64("seq", ballot.Seq),
	)
	return ballot, nil
}

// RecoverCast is the single permitted follow-up to a CastVote that failed
// with an infrastructure error, when the caller cannot tell whether the
// first attempt committed. If the token's ballot exists for the same
// candidate it is returned as the result of the first attempt; a ballot for
// another candidate means the token was already spent. Otherwise the cast is
// attempted once more.
func (s *LedgerService) RecoverCast(ctx context.Context, tokenValue, candidate string) (domain.Ballot, error) {
	hash, c, err := s.prepare(tokenValue, candidate)
	if err != nil {
		return domain.Ballot{}, err
	}

	existing, err := s.Store.Ballots().GetBallotByTokenHash(ctx, hash)
	switch {
	case err == nil:
		if existing.CandidateID != c.ID {
			return domain.Ballot{}, ErrTokenAlreadyUsed
		}
		slogx.FromContext(ctx).Info("recovered committed ballot",
			slog.String("ballot_id", existing.ID),
			slog.Int64("seq", existing.Seq),
		)
		return existing, nil
	case errors.Is(err, store.ErrNotFound):
		return s.CastVote(ctx, tokenValue, candidate)
	default:
		return domain.Ballot{}, fmt.Errorf("lookup ballot: %w", err)
	}
}

func (s *LedgerService) prepare(tokenValue, candidate string) (string, domain.Candidate, error) {
	tokenValue = strings.TrimSpace(tokenValue)
	candidate = strings.TrimSpace(candidate)
	if tokenValue == "" {
		return "", domain.Candidate{}, fmt.Errorf("%w: token is required", ErrInvalidInput)
	}
	if candidate == "" {
		return "", domain.Candidate{}, fmt.Errorf("%w: candidate is required", ErrInvalidInput)
	}

	c, ok := s.Roster.Resolve(candidate)
	if !ok {
		return "", domain.Candidate{}, ErrUnknownCandidate
	}
	return cryptox.FingerprintToken(tokenValue), c, nil
}

// Entries returns up to limit ballots after afterSeq. A limit of zero means
// DefaultPageSize.
func (s *LedgerService) Entries(ctx context.Context, afterSeq int64, limit int) (LedgerPage, error) {
	if afterSeq < 0 || limit < 0 || limit > MaxPageSize {
		return LedgerPage{}, fmt.Errorf("%w: after must be >= 0 and limit between 0 and %d", ErrInvalidInput, MaxPageSize)
	}
	if limit == 0 {
		limit = DefaultPageSize
	}

	head, err := s.Store.Ballots().GetHead(ctx)
	if err != nil {
		return LedgerPage{}, fmt.Errorf("ledger head: %w", err)
	}

	entries, err := s.Store.Ballots().ListBallots(ctx, afterSeq, limit)
	if err != nil {
		return LedgerPage{}, fmt.Errorf("list ballots: %w", err)
	}
	return LedgerPage{Entries: entries, Head: head}, nil
}

// Verify scans the whole ledger. It recomputes each entry hash, checks the
// prev-hash links and seq continuity, looks for repeated tokens and checks
// that ballots and consumed tokens pair up one to one.
func (s *LedgerService) Verify(ctx context.Context) (LedgerReport, error) {
	report := LedgerReport{HeadHash: domain.GenesisHash}
	expect := domain.GenesisHead()
	seen := make(map[string]int64)

	for {
		page, err := s.Store.Ballots().ListBallots(ctx, expect.Seq, verifyBatch)
		if err != nil {
			return LedgerReport{}, fmt.Errorf("list ballots: %w", err)
		}

		for _, b := range page {
			if b.Seq != expect.Seq+1 {
				report.Problems = append(report.Problems,
					fmt.Sprintf("seq %d: expected seq %d", b.Seq, expect.Seq+1))
			}
			if b.PrevHash != expect.Hash {
				report.Problems = append(report.Problems,
					fmt.Sprintf("seq %d: prev_hash does not link to previous entry", b.Seq))
			}
			if b.ComputeHash() != b.EntryHash {
				report.Problems = append(report.Problems,
					fmt.Sprintf("seq %d: entry_hash mismatch", b.Seq))
			}
			if first, dup := seen[b.TokenHash]; dup {
				report.Problems = append(report.Problems,
					fmt.Sprintf("seq %d: token already used at seq %d", b.Seq, first))
			} else {
				seen[b.TokenHash] = b.Seq
			}

			expect = b.Head()
			report.Entries++
		}

		if len(page) < verifyBatch {
			break
		}
	}
	report.HeadHash = expect.Hash

	unconsumed, err := s.Store.Ballots().ListUnconsumedBallots(ctx)
	if err != nil {
		return LedgerReport{}, fmt.Errorf("list unconsumed ballots: %w", err)
	}
	for _, seq := range unconsumed {
		report.Problems = append(report.Problems,
			fmt.Sprintf("seq %d: token is not consumed", seq))
	}

	orphans, err := s.Store.Tokens().ListConsumedWithoutBallot(ctx)
	if err != nil {
		return LedgerReport{}, fmt.Errorf("list orphan tokens: %w", err)
	}
	if len(orphans) > 0 {
		report.Problems = append(report.Problems,
			fmt.Sprintf("%d consumed tokens have no ballot", len(orphans)))
	}

	report.Valid = len(report.Problems) == 0
	return report, nil
}

func (s *LedgerService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
