package jwtx

import (
	"slices"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ReceiptAudience is the audience every ballot receipt is issued for.
const ReceiptAudience = "ballot-receipt"

// ReceiptClaims are embedded in the receipt handed back after a vote. They
// identify a ledger entry and nothing else: no token, no identity, and no
// candidate.
type ReceiptClaims struct {
	jwt.RegisteredClaims

	BallotID  string `json:"bid"`
	Seq       int64  `json:"seq"`
	EntryHash string `json:"eh"`
}

// NewReceiptClaims builds receipt claims for a ledger entry. Receipts never
// expire; they prove inclusion for as long as the ledger exists.
func NewReceiptClaims(ballotID string, seq int64, entryHash, issuer string, now time.Time) ReceiptClaims {
	return ReceiptClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:   issuer,
			Subject:  ballotID,
			Audience: jwt.ClaimStrings{ReceiptAudience},
			IssuedAt: jwt.NewNumericDate(now),
		},
		BallotID:  ballotID,
		Seq:       seq,
		EntryHash: entryHash,
	}
}

// ValidateIssuer checks if the issuer matches expected value.
func (c *ReceiptClaims) ValidateIssuer(expected string) error {
	if expected == "" {
		return nil
	}
	if c.Issuer != expected {
		return ErrIssuer
	}
	return nil
}

// ValidateAudience checks if at least one expected audience is present.
func (c *ReceiptClaims) ValidateAudience(expected []string) error {
	if len(expected) == 0 {
		return nil
	}
	for _, want := range expected {
		if slices.Contains(c.Audience, want) {
			return nil
		}
	}
	return ErrAudience
}
