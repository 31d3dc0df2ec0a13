package domain

// CandidateCount is the number of ballots cast for one candidate.
type CandidateCount struct {
	Candidate Candidate
	Votes     int64
}

// Tally is a snapshot of the vote counts at ledger position HeadSeq.
// Counts is in roster order and lists every candidate, including those
// without votes.
type Tally struct {
	Counts  []CandidateCount
	Total   int64
	HeadSeq int64
}

// ByCandidateID returns the counts keyed by candidate ID.
func (t Tally) ByCandidateID() map[string]int64 {
	out := make(map[string]int64, len(t.Counts))
	for _, c := range t.Counts {
		out[c.Candidate.ID] = c.Votes
	}
	return out
}
