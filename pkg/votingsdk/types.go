package votingsdk

import "github.com/aussiebroadwan/ballot/pkg/jwtx"

// ============================================================================
// Error Types
// ============================================================================

// ErrorResponse is the body of every failed request except /validate-token
// and /receipts/verify, which answer with their own shapes.
type ErrorResponse struct {
	// Error is a stable machine readable code (e.g. "token_already_used")
	Error string `json:"error" example:"token_already_used"`

	// Message is a human readable description safe to show to a voter
	Message string `json:"message" example:"Token has already been used"`
}

// ============================================================================
// Registration Types
// ============================================================================

// RegisterRequest registers a voter. Either Name or FirstName and LastName
// must be given.
type RegisterRequest struct {
	Name        string `json:"name,omitempty" example:"Jane Doe"`
	FirstName   string `json:"first_name,omitempty" example:"Jane"`
	LastName    string `json:"last_name,omitempty" example:"Doe"`
	DateOfBirth string `json:"date_of_birth" example:"1990-01-01"`
	Address     string `json:"address" example:"1 Main St"`
}

// RegisterResponse carries the voting token. The token is returned exactly
// once and cannot be recovered later.
type RegisterResponse struct {
	Token   string `json:"token" example:"q3N2m7XkS0bT1r9yVtZt1w3cE4Hk8sJd2x0Qy5uNn6A"`
	Message string `json:"message"`
}

// ============================================================================
// Token Types
// ============================================================================

// ValidateTokenRequest asks whether a token is still unused.
type ValidateTokenRequest struct {
	Token string `json:"token"`
}

// ValidateTokenResponse is returned for valid and invalid tokens alike.
// Reason is set when Valid is false.
type ValidateTokenResponse struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message"`
	Reason  string `json:"reason,omitempty" example:"token_already_used"`
}

// ============================================================================
// Voting Types
// ============================================================================

// CandidatesResponse lists candidate display names in ballot order.
type CandidatesResponse struct {
	Candidates []string `json:"candidates" example:"Doug Ford,Bernie Sanders"`
}

// VoteRequest spends a token on a candidate. SelectedCandidate is a display
// name (matched ignoring case) or a candidate ID.
type VoteRequest struct {
	Token             string `json:"token"`
	SelectedCandidate string `json:"selected_candidate" example:"Bernie Sanders"`
}

// VoteResponse confirms a cast ballot. Receipt is a signed JWT that can later
// be checked with /receipts/verify; it is omitted if signing failed.
type VoteResponse struct {
	Message   string `json:"message"`
	BallotID  string `json:"ballot_id" example:"01JC2Z8Q4VJ9G7W3K5N0X1Y2Z3"`
	Seq       int64  `json:"seq" example:"42"`
	EntryHash string `json:"entry_hash"`
	Receipt   string `json:"receipt,omitempty"`
}

// CandidateResult is one row of the results table.
type CandidateResult struct {
	Candidate string `json:"candidate" example:"Bernie Sanders"`
	Votes     int64  `json:"votes" example:"3"`
}

// ResultsResponse lists every candidate in ballot order, zero counts included.
type ResultsResponse []CandidateResult

// ============================================================================
// Ledger Types
// ============================================================================

// LedgerEntry is one public ballot. TokenHash is a one-way fingerprint of the
// token that cast it; the voter's identity never appears on the ledger.
type LedgerEntry struct {
	Seq         int64  `json:"seq"`
	BallotID    string `json:"ballot_id"`
	TokenHash   string `json:"token_hash"`
	CandidateID string `json:"candidate_id"`
	CastAt      string `json:"cast_at" example:"2026-03-01T10:00:00.123456Z"`
	PrevHash    string `json:"prev_hash"`
	EntryHash   string `json:"entry_hash"`
}

// LedgerResponse is one page of the ledger. Length is the sequence number of
// the head, i.e. the total number of ballots.
type LedgerResponse struct {
	Entries  []LedgerEntry `json:"entries"`
	HeadHash string        `json:"head_hash"`
	Length   int64         `json:"length"`
}

// LedgerVerifyResponse is the outcome of a full ledger scan.
type LedgerVerifyResponse struct {
	Valid    bool     `json:"valid"`
	Entries  int64    `json:"entries"`
	HeadHash string   `json:"head_hash"`
	Problems []string `json:"problems"`
}

// ============================================================================
// Receipt Types
// ============================================================================

// VerifyReceiptRequest submits a receipt returned by /vote.
type VerifyReceiptRequest struct {
	Receipt string `json:"receipt"`
}

// VerifyReceiptResponse reports whether a receipt matches the ledger.
type VerifyReceiptResponse struct {
	Valid     bool   `json:"valid"`
	Message   string `json:"message,omitempty"`
	BallotID  string `json:"ballot_id,omitempty"`
	Seq       int64  `json:"seq,omitempty"`
	EntryHash string `json:"entry_hash,omitempty"`
}

// ============================================================================
// Health Types
// ============================================================================

// HealthResponse represents the response structure for health check endpoints.
// Used by both /livez and /readyz endpoints (readyz includes additional Checks field).
type HealthResponse struct {
	// Status indicates the overall health status (e.g., "ok")
	Status string `json:"status"`

	// Uptime is the service uptime duration as a string (e.g., "1h23m45s")
	Uptime string `json:"uptime,omitempty"`

	// Version is the service version string
	Version string `json:"version,omitempty"`

	// Checks contains the status of critical dependencies (only in /readyz)
	Checks *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks represents the status of critical service dependencies.
type HealthChecks struct {
	// Database indicates the database connection status
	Database string `json:"database"`

	// Signer indicates the receipt signing capability status
	Signer string `json:"signer"`

	// Ledger is the result of the last background audit
	Ledger string `json:"ledger"`
}

// ============================================================================
// JWKS Types
// ============================================================================

// JWKSResponse contains the public keys that sign ballot receipts.
type JWKSResponse jwtx.JWKS
