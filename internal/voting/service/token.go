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
	"github.com/aussiebroadwan/ballot/pkg/slogx"
)

// TokenService is the only component that moves a token between states.
type TokenService struct {
	Store store.Store
	Now   func() time.Time
}

// ValidationResult is the outcome of a read-only token check. Reason is
// ErrUnknownToken or ErrTokenAlreadyUsed when Valid is false.
type ValidationResult struct {
	Valid  bool
	Reason error
}

// Issue creates the token for an already registered identity.
func (s *TokenService) Issue(ctx context.Context, identityID string) (domain.Token, error) {
	if strings.TrimSpace(identityID) == "" {
		return domain.Token{}, fmt.Errorf("%w: identity is required", ErrInvalidInput)
	}

	var token domain.Token
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if _, err := tx.Identities().GetIdentity(ctx, identityID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fmt.Errorf("%w: identity is not registered", ErrInvalidInput)
			}
			return fmt.Errorf("get identity: %w", err)
		}

		var err error
		token, err = s.issue(ctx, tx, identityID)
		return err
	})
	return token, err
}

// issue generates and stores a fresh token inside tx.
func (s *TokenService) issue(ctx context.Context, tx store.Tx, identityID string) (domain.Token, error) {
	if _, err := tx.Tokens().GetTokenByIdentity(ctx, identityID); err == nil {
		return domain.Token{}, ErrAlreadyIssued
	} else if !errors.Is(err, store.ErrNotFound) {
		return domain.Token{}, fmt.Errorf("lookup token: %w", err)
	}

	value, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		return domain.Token{}, fmt.Errorf("generate token: %w", err)
	}

	token := domain.Token{
		Value:      value,
		Hash:       cryptox.FingerprintToken(value),
		IdentityID: identityID,
		State:      domain.TokenIssued,
		IssuedAt:   s.now().UTC(),
	}
	if err := tx.Tokens().CreateToken(ctx, token); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.Token{}, ErrAlreadyIssued
		}
		return domain.Token{}, fmt.Errorf("create token: %w", err)
	}

	slogx.FromContext(ctx).Debug("token issued", slog.Time("issued_at", token.IssuedAt))
	return token, nil
}

// Validate reports whether value is an unused token. It never changes state,
// so voters may check a token as often as they like before voting.
func (s *TokenService) Validate(ctx context.Context, value string) (ValidationResult, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return ValidationResult{}, fmt.Errorf("%w: token is required", ErrInvalidInput)
	}

	token, err := s.Store.Tokens().GetTokenByHash(ctx, cryptox.FingerprintToken(value))
	switch {
	case errors.Is(err, store.ErrNotFound):
		return ValidationResult{Valid: false, Reason: ErrUnknownToken}, nil
	case err != nil:
		return ValidationResult{}, fmt.Errorf("get token: %w", err)
	case token.State == domain.TokenConsumed:
		return ValidationResult{Valid: false, Reason: ErrTokenAlreadyUsed}, nil
	default:
		return ValidationResult{Valid: true}, nil
	}
}

// consume moves the token to CONSUMED inside tx with a compare-and-swap on
// its state. When the swap misses it works out which rejection applies.
func (s *TokenService) consume(ctx context.Context, tx store.Tx, hash string, at time.Time) error {
	ok, err := tx.Tokens().ConsumeToken(ctx, hash, at)
	if err != nil {
		return fmt.Errorf("consume token: %w", err)
	}
	if ok {
		return nil
	}

	if _, err := tx.Tokens().GetTokenByHash(ctx, hash); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrUnknownToken
		}
		return fmt.Errorf("get token: %w", err)
	}
	return ErrTokenAlreadyUsed
}

func (s *TokenService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
