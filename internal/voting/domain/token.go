package domain

import "time"

type TokenState string

const (
	TokenIssued   TokenState = "issued"
	TokenConsumed TokenState = "consumed"
)

// Token is a single-use voting credential bound to exactly one Identity.
// Only the fingerprint is persisted; Value is populated once, on issue.
type Token struct {
	Value      string
	Hash       string
	IdentityID string
	State      TokenState
	IssuedAt   time.Time
	ConsumedAt *time.Time
}
