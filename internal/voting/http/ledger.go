package http

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/aussiebroadwan/ballot/internal/voting/service"
	"github.com/aussiebroadwan/ballot/pkg/httpx"
	"github.com/aussiebroadwan/ballot/pkg/votingsdk"
)

type LedgerHandler struct {
	LedgerService *service.LedgerService
}

// HandleList godoc
//
//	@Summary		Ledger
//	@Description	One page of the public hash-chained ballot ledger, oldest first.
//	@Tags			Ledger
//	@Produce		json
//	@Param			after	query		int							false	"return entries with seq greater than this"	default(0)
//	@Param			limit	query		int							false	"page size, at most 1000"					default(100)
//	@Success		200		{object}	votingsdk.LedgerResponse	"entries, head_hash, length"
//	@Failure		400		{object}	votingsdk.ErrorResponse		"bad paging parameters"
//	@Failure		503		{object}	votingsdk.ErrorResponse		"storage unavailable"
//	@Router			/ledger [get].
func (h *LedgerHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	after, err1 := parseQueryInt(q.Get("after"))
	limit, err2 := parseQueryInt(q.Get("limit"))
	if err1 != nil || err2 != nil {
		votingsdk.ErrInvalidInput.WithMessage("after and limit must be integers").WriteError(w)
		return
	}

	page, err := retryRead(r.Context(), func(ctx context.Context) (service.LedgerPage, error) {
		return h.LedgerService.Entries(ctx, after, int(limit))
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	entries := make([]votingsdk.LedgerEntry, len(page.Entries))
	for i, b := range page.Entries {
		entries[i] = votingsdk.LedgerEntry{
			Seq:         b.Seq,
			BallotID:    b.ID,
			TokenHash:   b.TokenHash,
			CandidateID: b.CandidateID,
			CastAt:      b.CastAt.UTC().Format(time.RFC3339Nano),
			PrevHash:    b.PrevHash,
			EntryHash:   b.EntryHash,
		}
	}
	httpx.WriteJSON(w, http.StatusOK, votingsdk.LedgerResponse{
		Entries:  entries,
		HeadHash: page.Head.Hash,
		Length:   page.Head.Seq,
	})
}

// HandleVerify godoc
//
//	@Summary		Verify Ledger
//	@Description	Scan the whole ledger: recompute every entry hash, check the chain links and the token pairing.
//	@Tags			Ledger
//	@Produce		json
//	@Success		200	{object}	votingsdk.LedgerVerifyResponse	"valid, entries, head_hash, problems"
//	@Failure		503	{object}	votingsdk.ErrorResponse			"storage unavailable"
//	@Router			/ledger/verify [get].
func (h *LedgerHandler) HandleVerify(w http.ResponseWriter, r *http.Request) {
	report, err := retryRead(r.Context(), h.LedgerService.Verify)
	if err != nil {
		writeError(w, r, err)
		return
	}

	problems := report.Problems
	if problems == nil {
		problems = []string{}
	}
	httpx.WriteJSON(w, http.StatusOK, votingsdk.LedgerVerifyResponse{
		Valid:    report.Valid,
		Entries:  report.Entries,
		HeadHash: report.HeadHash,
		Problems: problems,
	})
}

func parseQueryInt(s string) (int64, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.ParseInt(s, 10, 64)
}
