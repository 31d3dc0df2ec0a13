package votingsdk

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// KioskIDHeader names the polling-station kiosk a request comes from. The
// service rate limits registration and voting per address and kiosk, so
// kiosks sharing one public address do not starve each other.
const KioskIDHeader = "X-Kiosk-ID"

// SDKClient is a client for the ballot service.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client

	// KioskID, when set, is sent as the X-Kiosk-ID header on every request.
	KioskID string
}

// NewSDKClient creates a new ballot service client.
func NewSDKClient(baseURL string) *SDKClient {
	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Register registers a voter and returns their one-time token.
func (c *SDKClient) Register(ctx context.Context, req RegisterRequest) (*RegisterResponse, error) {
	resp, err := c.postJSON(ctx, "/register", req)
	if err != nil {
		return nil, err
	}

	var out RegisterResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// ValidateToken checks a token without spending it. An unknown or used token
// is reported through Valid and Reason, not as an error.
func (c *SDKClient) ValidateToken(ctx context.Context, token string) (*ValidateTokenResponse, error) {
	resp, err := c.postJSON(ctx, "/validate-token", ValidateTokenRequest{Token: token})
	if err != nil {
		return nil, err
	}

	var out ValidateTokenResponse
	if err := decodeJSON(resp, &out, http.StatusOK, http.StatusBadRequest, http.StatusNotFound); err != nil {
		return nil, err
	}
	if !out.Valid && out.Reason == ErrorCodeInvalidInput {
		return nil, ErrInvalidInput.WithMessage(out.Message)
	}
	return &out, nil
}

// ListCandidates returns candidate names in ballot order.
func (c *SDKClient) ListCandidates(ctx context.Context) ([]string, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/candidates", nil, nil)
	if err != nil {
		return nil, err
	}

	var out CandidatesResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out.Candidates, nil
}

// Vote spends token on candidate. Do not retry a Vote that failed with
// ErrUnavailable without first checking the token with ValidateToken.
func (c *SDKClient) Vote(ctx context.Context, token, candidate string) (*VoteResponse, error) {
	resp, err := c.postJSON(ctx, "/vote", VoteRequest{Token: token, SelectedCandidate: candidate})
	if err != nil {
		return nil, err
	}

	var out VoteResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// Results returns the current tally.
func (c *SDKClient) Results(ctx context.Context) (ResultsResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/results", nil, nil)
	if err != nil {
		return nil, err
	}

	var out ResultsResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

// Ledger returns up to limit entries after seq after. A limit of 0 uses the
// server default.
func (c *SDKClient) Ledger(ctx context.Context, after int64, limit int) (*LedgerResponse, error) {
	q := url.Values{}
	q.Set("after", strconv.FormatInt(after, 10))
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}

	resp, err := c.doRequest(ctx, http.MethodGet, "/ledger?"+q.Encode(), nil, nil)
	if err != nil {
		return nil, err
	}

	var out LedgerResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// VerifyLedger asks the server to scan the whole ledger.
func (c *SDKClient) VerifyLedger(ctx context.Context) (*LedgerVerifyResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/ledger/verify", nil, nil)
	if err != nil {
		return nil, err
	}

	var out LedgerVerifyResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// VerifyReceipt checks a receipt returned by Vote. A receipt that does not
// match the ledger is returned as an *APIError with ErrorCodeInvalidReceipt.
func (c *SDKClient) VerifyReceipt(ctx context.Context, receipt string) (*VerifyReceiptResponse, error) {
	resp, err := c.postJSON(ctx, "/receipts/verify", VerifyReceiptRequest{Receipt: receipt})
	if err != nil {
		return nil, err
	}

	var out VerifyReceiptResponse
	if err := decodeJSON(resp, &out, http.StatusOK, http.StatusBadRequest); err != nil {
		return nil, err
	}
	if !out.Valid {
		return nil, ErrInvalidReceipt.WithMessage(out.Message)
	}
	return &out, nil
}

// GetJWKS fetches the keys that sign receipts.
func (c *SDKClient) GetJWKS(ctx context.Context) (*JWKSResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/.well-known/jwks.json", nil, nil)
	if err != nil {
		return nil, err
	}

	var out JWKSResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, fmt.Errorf("jwks: %w", err)
	}
	return &out, nil
}
