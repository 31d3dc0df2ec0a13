package http

import (
	"net/http"

	"github.com/aussiebroadwan/ballot/internal/voting/service"
	"github.com/aussiebroadwan/ballot/pkg/httpx"
	"github.com/aussiebroadwan/ballot/pkg/votingsdk"
)

type ReceiptVerifyHandler struct {
	ReceiptService *service.ReceiptService
}

// ServeHTTP godoc
//
//	@Summary		Verify Receipt
//	@Description	Check a vote receipt's signature and that the ledger still holds the entry it names.
//	@Tags			Ledger
//	@Accept			json
//	@Produce		json
//	@Param			request	body		votingsdk.VerifyReceiptRequest	true	"receipt"
//	@Success		200		{object}	votingsdk.VerifyReceiptResponse	"valid, ballot_id, seq, entry_hash"
//	@Failure		400		{object}	votingsdk.VerifyReceiptResponse	"valid=false, message"
//	@Failure		503		{object}	votingsdk.ErrorResponse			"storage unavailable"
//	@Router			/receipts/verify [post].
func (h *ReceiptVerifyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req votingsdk.VerifyReceiptRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, votingsdk.VerifyReceiptResponse{Message: errBadBody.Message})
		return
	}

	claims, err := h.ReceiptService.Verify(r.Context(), req.Receipt)
	if err != nil {
		if service.IsRejection(err) {
			httpx.WriteJSON(w, http.StatusBadRequest, votingsdk.VerifyReceiptResponse{
				Valid:   false,
				Message: apiError(err).Message,
			})
			return
		}
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, votingsdk.VerifyReceiptResponse{
		Valid:     true,
		BallotID:  claims.BallotID,
		Seq:       claims.Seq,
		EntryHash: claims.EntryHash,
	})
}
