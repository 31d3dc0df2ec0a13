package service

import "errors"

// Rejections are terminal business-rule failures. They carry stable messages,
// are safe to show to a voter and must never be retried automatically.
var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrDuplicateIdentity = errors.New("identity already registered")
	ErrAlreadyIssued     = errors.New("token already issued for identity")
	ErrUnknownToken      = errors.New("unknown token")
	ErrTokenAlreadyUsed  = errors.New("token already used")
	ErrUnknownCandidate  = errors.New("unknown candidate")
	ErrInvalidReceipt    = errors.New("invalid receipt")
)

var rejections = []error{
	ErrInvalidInput,
	ErrDuplicateIdentity,
	ErrAlreadyIssued,
	ErrUnknownToken,
	ErrTokenAlreadyUsed,
	ErrUnknownCandidate,
	ErrInvalidReceipt,
}

// IsRejection reports whether err is a business-rule rejection. Any other
// non-nil error is an infrastructure failure (storage unavailable, timeout).
func IsRejection(err error) bool {
	for _, r := range rejections {
		if errors.Is(err, r) {
			return true
		}
	}
	return false
}
