package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/ballot/internal/voting/service"
	"github.com/aussiebroadwan/ballot/pkg/slogx"
	"github.com/aussiebroadwan/ballot/pkg/votingsdk"
)

// apiError maps a service error to its wire form. Anything that is not a
// rejection is an infrastructure failure.
func apiError(err error) *votingsdk.APIError {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		// Invalid input messages are built from fixed strings in the service.
		return votingsdk.ErrInvalidInput.WithMessage(err.Error())
	case errors.Is(err, service.ErrDuplicateIdentity), errors.Is(err, service.ErrAlreadyIssued):
		return votingsdk.ErrDuplicateIdentity
	case errors.Is(err, service.ErrUnknownToken):
		return votingsdk.ErrUnknownToken
	case errors.Is(err, service.ErrTokenAlreadyUsed):
		return votingsdk.ErrTokenAlreadyUsed
	case errors.Is(err, service.ErrUnknownCandidate):
		return votingsdk.ErrUnknownCandidate
	case errors.Is(err, service.ErrInvalidReceipt):
		return votingsdk.ErrInvalidReceipt
	default:
		return votingsdk.ErrUnavailable
	}
}

// writeError writes err and logs infrastructure failures with the request
// logger.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	apiErr := apiError(err)
	if apiErr.Code == votingsdk.ErrorCodeUnavailable {
		slogx.FromContext(r.Context()).Error("request failed",
			"path", r.URL.Path,
			"error", err,
		)
	}
	apiErr.WriteError(w)
}

var errBadBody = votingsdk.ErrInvalidInput.WithMessage("request body must be a single JSON object")
