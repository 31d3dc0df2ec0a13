package http

import (
	"net/http"
	"strings"

	"github.com/aussiebroadwan/ballot/internal/voting/service"
	"github.com/aussiebroadwan/ballot/pkg/httpx"
	"github.com/aussiebroadwan/ballot/pkg/votingsdk"
)

type RegisterHandler struct {
	IdentityService *service.IdentityService
}

// ServeHTTP godoc
//
//	@Summary		Register Voter
//	@Description	Register a person and issue their single-use voting token.
//	@Description	The token is returned only once and cannot be recovered.
//	@Tags			Voting
//	@Accept			json
//	@Produce		json
//	@Param			request	body		votingsdk.RegisterRequest	true	"name (or first_name and last_name), date_of_birth, address"
//	@Success		200		{object}	votingsdk.RegisterResponse	"token, message"
//	@Failure		400		{object}	votingsdk.ErrorResponse		"invalid input or already registered"
//	@Failure		503		{object}	votingsdk.ErrorResponse		"storage unavailable"
//	@Router			/register [post].
func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req votingsdk.RegisterRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		errBadBody.WriteError(w)
		return
	}

	name := req.Name
	if strings.TrimSpace(name) == "" {
		name = service.JoinName(req.FirstName, req.LastName)
	}

	_, token, err := h.IdentityService.Register(r.Context(), name, req.DateOfBirth, req.Address)
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, votingsdk.RegisterResponse{
		Token:   token.Value,
		Message: "Registration successful. Keep this token safe, it will not be shown again.",
	})
}
