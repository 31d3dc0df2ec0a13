package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"
	"time"
)

// GenesisHash is the prev_hash of the first ballot in the ledger.
var GenesisHash = strings.Repeat("0", 64)

// Ballot is one immutable ledger entry. TokenHash is the fingerprint of the
// consuming token and is never exposed alongside identity data.
type Ballot struct {
	ID          string
	Seq         int64
	TokenHash   string
	CandidateID string
	CastAt      time.Time
	PrevHash    string
	EntryHash   string
}

// LedgerHead is the position and hash new ballots chain from.
type LedgerHead struct {
	Seq  int64
	Hash string
}

// GenesisHead is the head of an empty ledger.
func GenesisHead() LedgerHead {
	return LedgerHead{Seq: 0, Hash: GenesisHash}
}

// Next returns the ballot that extends head, with Seq, PrevHash and
// EntryHash filled in.
func (h LedgerHead) Next(id, tokenHash, candidateID string, castAt time.Time) Ballot {
	b := Ballot{
		ID:          id,
		Seq:         h.Seq + 1,
		TokenHash:   tokenHash,
		CandidateID: candidateID,
		CastAt:      castAt.UTC().Truncate(time.Microsecond),
		PrevHash:    h.Hash,
	}
	b.EntryHash = b.ComputeHash()
	return b
}

// ComputeHash returns the hex SHA-256 over the ballot's chained fields.
func (b Ballot) ComputeHash() string {
	h := sha256.New()
	for _, part := range []string{
		b.PrevHash,
		strconv.FormatInt(b.Seq, 10),
		b.ID,
		b.TokenHash,
		b.CandidateID,
		b.CastAt.UTC().Format(time.RFC3339Nano),
	} {
		h.Write([]byte(part))
		h.Write([]byte{'|'})
	}
	return hex.EncodeToString(h.Sum(nil))
}

// Head returns the ledger head once b has been appended.
func (b Ballot) Head() LedgerHead {
	return LedgerHead{Seq: b.Seq, Hash: b.EntryHash}
}
