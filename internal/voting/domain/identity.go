package domain

import "time"

// Identity is a registrant. ID is the peppered fingerprint of the normalized
// (name, date of birth, address) tuple; no plaintext PII is kept.
type Identity struct {
	ID           string
	RegisteredAt time.Time
}
