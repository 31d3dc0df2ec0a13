package http

import (
	"net/http"

	"github.com/aussiebroadwan/ballot/internal/voting/service"
	"github.com/aussiebroadwan/ballot/pkg/httpx"
	"github.com/aussiebroadwan/ballot/pkg/slogx"
	"github.com/aussiebroadwan/ballot/pkg/votingsdk"
)

type VoteHandler struct {
	LedgerService  *service.LedgerService
	ReceiptService *service.ReceiptService // optional
}

// ServeHTTP godoc
//
//	@Summary		Cast Vote
//	@Description	Spend a token on one candidate. A token can be spent exactly once.
//	@Description	The response carries a signed receipt for the ledger entry.
//	@Tags			Voting
//	@Accept			json
//	@Produce		json
//	@Param			request	body		votingsdk.VoteRequest	true	"token, selected_candidate"
//	@Success		200		{object}	votingsdk.VoteResponse	"ballot_id, seq, entry_hash, receipt"
//	@Failure		400		{object}	votingsdk.ErrorResponse	"invalid input or unknown candidate"
//	@Failure		404		{object}	votingsdk.ErrorResponse	"unknown token"
//	@Failure		409		{object}	votingsdk.ErrorResponse	"token already used"
//	@Failure		503		{object}	votingsdk.ErrorResponse	"storage unavailable, outcome unknown"
//	@Router			/vote [post].
func (h *VoteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req votingsdk.VoteRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		errBadBody.WriteError(w)
		return
	}

	ballot, err := h.LedgerService.CastVote(ctx, req.Token, req.SelectedCandidate)
	if err != nil && !service.IsRejection(err) && ctx.Err() == nil {
		// The first attempt may or may not have committed.
		log.Warn("cast failed, attempting recovery", "error", err)
		ballot, err = h.LedgerService.RecoverCast(ctx, req.Token, req.SelectedCandidate)
	}
	if err != nil {
		writeError(w, r, err)
		return
	}

	resp := votingsdk.VoteResponse{
		Message:   "Vote cast successfully",
		BallotID:  ballot.ID,
		Seq:       ballot.Seq,
		EntryHash: ballot.EntryHash,
	}
	if h.ReceiptService != nil {
		receipt, err := h.ReceiptService.Issue(ballot)
		if err != nil {
			// The vote is committed; a missing receipt must not turn it into a failure.
			log.Error("failed to sign receipt", "ballot_id", ballot.ID, "error", err)
		} else {
			resp.Receipt = receipt
		}
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}
