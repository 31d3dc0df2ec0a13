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

const dateLayout = "2006-01-02"

// IdentityService registers voters. Registration and token issuance happen
// in one transaction so a registrant can never exist without a token.
type IdentityService struct {
	Store  store.Store
	Tokens *TokenService
	Pepper []byte
	Now    func() time.Time
}

// Registration is the normalized form of a registration request.
type Registration struct {
	Name        string
	DateOfBirth string
	Address     string
}

// Register creates the identity for (name, dateOfBirth, address) and issues
// its voting token. The returned token carries its plaintext Value; it is the
// only time the value is ever available.
func (s *IdentityService) Register(
	ctx context.Context,
	name, dateOfBirth, address string,
) (domain.Identity, domain.Token, error) {
	log := slogx.FromContext(ctx)

	reg, err := NormalizeRegistration(name, dateOfBirth, address, s.now())
	if err != nil {
		log.Info("registration rejected", slog.String("reason", err.Error()))
		return domain.Identity{}, domain.Token{}, err
	}

	identity := domain.Identity{
		ID:           cryptox.FingerprintIdentity(s.Pepper, reg.Name, reg.DateOfBirth, reg.Address),
		RegisteredAt: s.now().UTC(),
	}

	var token domain.Token
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Identities().CreateIdentity(ctx, identity); err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				return ErrDuplicateIdentity
			}
			return fmt.Errorf("create identity: %w", err)
		}

		token, err = s.Tokens.issue(ctx, tx, identity.ID)
		return err
	})
	if err != nil {
		if errors.Is(err, ErrDuplicateIdentity) {
			log.Warn("duplicate registration attempt")
		} else {
			log.Error("failed to register identity", slog.Any("error", err))
		}
		return domain.Identity{}, domain.Token{}, err
	}

	log.Info("identity registered", slog.Time("registered_at", identity.RegisteredAt))
	return identity, token, nil
}

func (s *IdentityService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// NormalizeRegistration trims and collapses whitespace in every field,
// case-folds name and address and checks that the date of birth is a real
// YYYY-MM-DD date strictly before today.
func NormalizeRegistration(name, dateOfBirth, address string, now time.Time) (Registration, error) {
	reg := Registration{
		Name:        strings.ToLower(collapseSpace(name)),
		DateOfBirth: collapseSpace(dateOfBirth),
		Address:     strings.ToLower(collapseSpace(address)),
	}

	switch {
	case reg.Name == "":
		return Registration{}, fmt.Errorf("%w: name is required", ErrInvalidInput)
	case reg.DateOfBirth == "":
		return Registration{}, fmt.Errorf("%w: date_of_birth is required", ErrInvalidInput)
	case reg.Address == "":
		return Registration{}, fmt.Errorf("%w: address is required", ErrInvalidInput)
	}

	dob, err := time.Parse(dateLayout, reg.DateOfBirth)
	if err != nil {
		return Registration{}, fmt.Errorf("%w: date_of_birth must be YYYY-MM-DD", ErrInvalidInput)
	}

	y, m, d := now.UTC().Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	if !dob.Before(today) {
		return Registration{}, fmt.Errorf("%w: date_of_birth must be in the past", ErrInvalidInput)
	}

	return reg, nil
}

// JoinName builds a full name from separate first and last name fields.
func JoinName(first, last string) string {
	return collapseSpace(first + " " + last)
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
