package votingsdk

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/aussiebroadwan/ballot/pkg/httpx"
)

// Error codes carried in the "error" (or "reason") field of failed responses.
const (
	ErrorCodeInvalidInput      = "invalid_input"
	ErrorCodeDuplicateIdentity = "duplicate_identity"
	ErrorCodeUnknownToken      = "unknown_token"
	ErrorCodeTokenAlreadyUsed  = "token_already_used"
	ErrorCodeUnknownCandidate  = "unknown_candidate"
	ErrorCodeInvalidReceipt    = "invalid_receipt"
	ErrorCodeUnavailable       = "unavailable"
	ErrorCodeRateLimited       = "rate_limit_exceeded"
)

// APIError is a failed request. The server writes it and the client parses it
// back, so errors.Is works on both sides of the wire.
type APIError struct {
	StatusCode int    `json:"-"`
	Code       string `json:"error"`
	Message    string `json:"message"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Is matches on Code so a parsed error compares equal to the predefined one.
func (e *APIError) Is(target error) bool {
	var t *APIError
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code
}

// Temporary reports whether retrying the same request later may succeed.
func (e *APIError) Temporary() bool {
	return e.Code == ErrorCodeUnavailable || e.Code == ErrorCodeRateLimited
}

// WriteError writes the error as a JSON response.
func (e *APIError) WriteError(w http.ResponseWriter) {
	httpx.WriteJSON(w, e.StatusCode, ErrorResponse{Error: e.Code, Message: e.Message})
}

// WithMessage returns a copy of e with a more specific message.
func (e *APIError) WithMessage(msg string) *APIError {
	cp := *e
	cp.Message = msg
	return &cp
}

var (
	ErrInvalidInput = &APIError{
		StatusCode: http.StatusBadRequest,
		Code:       ErrorCodeInvalidInput,
		Message:    "The request is malformed or missing required fields",
	}

	ErrDuplicateIdentity = &APIError{
		StatusCode: http.StatusBadRequest,
		Code:       ErrorCodeDuplicateIdentity,
		Message:    "This person is already registered",
	}

	ErrUnknownToken = &APIError{
		StatusCode: http.StatusNotFound,
		Code:       ErrorCodeUnknownToken,
		Message:    "Token not recognised",
	}

	ErrTokenAlreadyUsed = &APIError{
		StatusCode: http.StatusConflict,
		Code:       ErrorCodeTokenAlreadyUsed,
		Message:    "Token has already been used",
	}

	ErrUnknownCandidate = &APIError{
		StatusCode: http.StatusBadRequest,
		Code:       ErrorCodeUnknownCandidate,
		Message:    "Candidate is not on the ballot",
	}

	ErrInvalidReceipt = &APIError{
		StatusCode: http.StatusBadRequest,
		Code:       ErrorCodeInvalidReceipt,
		Message:    "Receipt does not match the ledger",
	}

	// ErrUnavailable is an infrastructure failure. The request may be retried
	// except for /vote, where the outcome is unknown.
	ErrUnavailable = &APIError{
		StatusCode: http.StatusServiceUnavailable,
		Code:       ErrorCodeUnavailable,
		Message:    "Service temporarily unavailable, please try again",
	}
)

// parseErrorResponse turns a non-2xx response into an *APIError.
func parseErrorResponse(resp *http.Response, body []byte) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		return &APIError{
			StatusCode: resp.StatusCode,
			Code:       errResp.Error,
			Message:    errResp.Message,
		}
	}

	// /validate-token and /receipts/verify failures
	var shaped struct {
		Message string `json:"message"`
		Reason  string `json:"reason"`
	}
	if err := json.Unmarshal(body, &shaped); err == nil && shaped.Message != "" {
		code := shaped.Reason
		if code == "" {
			code = codeForStatus(resp.StatusCode)
		}
		return &APIError{StatusCode: resp.StatusCode, Code: code, Message: shaped.Message}
	}

	return &APIError{
		StatusCode: resp.StatusCode,
		Code:       codeForStatus(resp.StatusCode),
		Message:    fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
	}
}

func codeForStatus(status int) string {
	switch status {
	case http.StatusNotFound:
		return ErrorCodeUnknownToken
	case http.StatusConflict:
		return ErrorCodeTokenAlreadyUsed
	case http.StatusTooManyRequests:
		return ErrorCodeRateLimited
	case http.StatusBadRequest:
		return ErrorCodeInvalidInput
	default:
		return ErrorCodeUnavailable
	}
}
