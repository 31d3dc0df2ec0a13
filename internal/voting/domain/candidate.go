package domain

import (
	"strings"

	"github.com/google/uuid"
)

// candidateNamespace scopes name based candidate IDs to this service.
var candidateNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("urn:ballot:candidate"))

type Candidate struct {
	ID          string
	DisplayName string
	Position    int
}

// CandidateID derives the stable identifier for a display name. The name is
// trimmed first so stray whitespace in a roster file cannot fork the ID.
func CandidateID(displayName string) string {
	return uuid.NewSHA1(candidateNamespace, []byte(strings.TrimSpace(displayName))).String()
}

// NewCandidate builds a roster entry at the given position.
func NewCandidate(displayName string, position int) Candidate {
	name := strings.TrimSpace(displayName)
	return Candidate{
		ID:          CandidateID(name),
		DisplayName: name,
		Position:    position,
	}
}

// DefaultCandidates is the roster used when no roster file is configured.
func DefaultCandidates() []Candidate {
	names := []string{
		"Doug Ford",
		"Dwayne 'The Rock' Johnson",
		"Zohran Mamdani",
		"Bernie Sanders",
		"Tim Houston",
	}
	out := make([]Candidate, len(names))
	for i, n := range names {
		out[i] = NewCandidate(n, i+1)
	}
	return out
}
