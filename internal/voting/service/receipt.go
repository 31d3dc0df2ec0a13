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
	"github.com/aussiebroadwan/ballot/pkg/jwtx"
	"github.com/aussiebroadwan/ballot/pkg/slogx"
)

// ReceiptService signs and checks ballot receipts. A receipt proves that a
// ledger entry exists with a given hash; it names no token, identity or
// candidate.
type ReceiptService struct {
	Store    store.Store
	Signer   jwtx.Signer
	Verifier jwtx.Verifier
	Issuer   string
	Now      func() time.Time
}

// NewReceiptService builds a receipt service around an Ed25519 PKCS8 PEM key
// and returns the key set holding its public key for JWKS publication.
func NewReceiptService(st store.Store, pemKey []byte, kid, issuer string) (*ReceiptService, *jwtx.KeySet, error) {
	signer, err := jwtx.NewSignerEdDSA(kid, pemKey)
	if err != nil {
		return nil, nil, fmt.Errorf("receipt signer: %w", err)
	}
	if err := signer.Validate(); err != nil {
		return nil, nil, fmt.Errorf("receipt signer: %w", err)
	}

	keys := jwtx.NewKeySet()
	if err := keys.AddSigner(signer); err != nil {
		return nil, nil, fmt.Errorf("receipt keyset: %w", err)
	}

	return &ReceiptService{
		Store:    st,
		Signer:   signer,
		Verifier: jwtx.NewVerifierEdDSA(keys, issuer, []string{jwtx.ReceiptAudience}),
		Issuer:   issuer,
	}, keys, nil
}

// Issue signs a receipt for a ballot that is already on the ledger.
func (s *ReceiptService) Issue(b domain.Ballot) (string, error) {
	now := time.Now()
	if s.Now != nil {
		now = s.Now()
	}
	return s.Signer.Sign(jwtx.NewReceiptClaims(b.ID, b.Seq, b.EntryHash, s.Issuer, now))
}

// Verify checks the receipt signature and that the ledger still holds the
// entry at the same position with the same, self-consistent hash.
func (s *ReceiptService) Verify(ctx context.Context, receipt string) (jwtx.ReceiptClaims, error) {
	receipt = strings.TrimSpace(receipt)
	if receipt == "" {
		return jwtx.ReceiptClaims{}, fmt.Errorf("%w: receipt is required", ErrInvalidInput)
	}

	claims, err := s.Verifier.Verify(receipt)
	if err != nil {
		slogx.FromContext(ctx).Info("receipt rejected", slog.Any("error", err))
		return jwtx.ReceiptClaims{}, fmt.Errorf("%w: signature check failed", ErrInvalidReceipt)
	}

	b, err := s.Store.Ballots().GetBallotByID(ctx, claims.BallotID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return jwtx.ReceiptClaims{}, fmt.Errorf("%w: ballot not on ledger", ErrInvalidReceipt)
		}
		return jwtx.ReceiptClaims{}, fmt.Errorf("get ballot: %w", err)
	}

	if b.Seq != claims.Seq || b.EntryHash != claims.EntryHash || b.ComputeHash() != b.EntryHash {
		slogx.FromContext(ctx).Warn("receipt does not match ledger entry",
			slog.String("ballot_id", b.ID),
			slog.Int64("seq", b.Seq),
		)
		return jwtx.ReceiptClaims{}, fmt.Errorf("%w: ledger entry does not match", ErrInvalidReceipt)
	}
	return claims, nil
}
