package http

import (
	"net/http"

	"github.com/aussiebroadwan/ballot/internal/voting/service"
	"github.com/aussiebroadwan/ballot/pkg/httpx"
	"github.com/aussiebroadwan/ballot/pkg/votingsdk"
)

type ResultsHandler struct {
	TallyService *service.TallyService
}

// ServeHTTP godoc
//
//	@Summary		Results
//	@Description	Vote counts for every candidate in ballot order, zero counts included.
//	@Tags			Voting
//	@Produce		json
//	@Success		200	{array}		votingsdk.CandidateResult	"candidate, votes"
//	@Failure		503	{object}	votingsdk.ErrorResponse		"storage unavailable"
//	@Router			/results [get].
func (h *ResultsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	tally, err := retryRead(r.Context(), h.TallyService.Tally)
	if err != nil {
		writeError(w, r, err)
		return
	}

	out := make(votingsdk.ResultsResponse, len(tally.Counts))
	for i, c := range tally.Counts {
		out[i] = votingsdk.CandidateResult{Candidate: c.Candidate.DisplayName, Votes: c.Votes}
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}
