package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/aussiebroadwan/ballot/internal/voting/service"
	"github.com/aussiebroadwan/ballot/pkg/httpx"
	"github.com/aussiebroadwan/ballot/pkg/votingsdk"
)

type ValidateTokenHandler struct {
	TokenService *service.TokenService
}

// ServeHTTP godoc
//
//	@Summary		Validate Token
//	@Description	Check whether a token exists and is unused. Never changes the token.
//	@Tags			Voting
//	@Accept			json
//	@Produce		json
//	@Param			request	body		votingsdk.ValidateTokenRequest	true	"token"
//	@Success		200		{object}	votingsdk.ValidateTokenResponse	"valid"
//	@Failure		400		{object}	votingsdk.ValidateTokenResponse	"blank or already used"
//	@Failure		404		{object}	votingsdk.ValidateTokenResponse	"unknown token"
//	@Failure		503		{object}	votingsdk.ErrorResponse			"storage unavailable"
//	@Router			/validate-token [post].
func (h *ValidateTokenHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req votingsdk.ValidateTokenRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		invalid(w, errBadBody)
		return
	}

	res, err := retryRead(r.Context(), func(ctx context.Context) (service.ValidationResult, error) {
		return h.TokenService.Validate(ctx, req.Token)
	})
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		invalid(w, apiError(err))
	case err != nil:
		writeError(w, r, err)
	case res.Valid:
		httpx.WriteJSON(w, http.StatusOK, votingsdk.ValidateTokenResponse{
			Valid:   true,
			Message: "Token is valid",
		})
	case errors.Is(res.Reason, service.ErrTokenAlreadyUsed):
		invalid(w, votingsdk.ErrTokenAlreadyUsed)
	default:
		invalid(w, votingsdk.ErrUnknownToken)
	}
}

// invalid writes a {valid:false} answer. Unknown tokens keep their 404; every
// other reason is a 400.
func invalid(w http.ResponseWriter, e *votingsdk.APIError) {
	status := http.StatusBadRequest
	if e.Code == votingsdk.ErrorCodeUnknownToken {
		status = http.StatusNotFound
	}
	httpx.WriteJSON(w, status, votingsdk.ValidateTokenResponse{
		Valid:   false,
		Message: e.Message,
		Reason:  e.Code,
	})
}
