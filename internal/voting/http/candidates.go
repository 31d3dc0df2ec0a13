package http

import (
	"net/http"

	"github.com/aussiebroadwan/ballot/internal/voting/service"
	"github.com/aussiebroadwan/ballot/pkg/httpx"
	"github.com/aussiebroadwan/ballot/pkg/votingsdk"
)

type CandidatesHandler struct {
	CandidateService *service.CandidateService
}

// ServeHTTP godoc
//
//	@Summary		List Candidates
//	@Description	Candidate display names in ballot order.
//	@Tags			Voting
//	@Produce		json
//	@Success		200	{object}	votingsdk.CandidatesResponse	"candidates"
//	@Failure		503	{object}	votingsdk.ErrorResponse			"storage unavailable"
//	@Router			/candidates [get].
func (h *CandidatesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	candidates, err := retryRead(r.Context(), h.CandidateService.List)
	if err != nil {
		writeError(w, r, err)
		return
	}

	names := make([]string, len(candidates))
	for i, c := range candidates {
		names[i] = c.DisplayName
	}
	httpx.WriteJSON(w, http.StatusOK, votingsdk.CandidatesResponse{Candidates: names})
}
