package http

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/aussiebroadwan/ballot/internal/voting/domain"
	"github.com/aussiebroadwan/ballot/internal/voting/service"
	"github.com/aussiebroadwan/ballot/internal/voting/store"
	"github.com/aussiebroadwan/ballot/internal/voting/store/drivers/sqlite"
	"github.com/aussiebroadwan/ballot/pkg/cryptox"
	"github.com/aussiebroadwan/ballot/pkg/httpx"
	"github.com/aussiebroadwan/ballot/pkg/votingsdk"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	store  *sqlite.Store
	router *Router
	client *votingsdk.SDKClient
}

// newTestServer wires the full router over an in-memory store. wrap, when
// given, decorates the store seen by the services.
func newTestServer(t *testing.T, wrap func(store.Store) store.Store) *testServer {
	t.Helper()
	ctx := context.Background()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	var svcStore store.Store = st
	if wrap != nil {
		svcStore = wrap(st)
	}

	roster, err := service.NewRoster([]domain.Candidate{
		domain.NewCandidate("Alice", 1),
		domain.NewCandidate("Bob", 2),
	})
	require.NoError(t, err)

	pemKey, err := cryptox.GenerateEd25519Key()
	require.NoError(t, err)
	receipts, keys, err := service.NewReceiptService(svcStore, pemKey, "test-key", "http://ballot.test")
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	tokens := &service.TokenService{Store: svcStore}
	tally := &service.TallyService{Store: svcStore}
	candidates := &service.CandidateService{Store: st, Roster: roster}
	require.NoError(t, candidates.Sync(ctx))
	ledger := &service.LedgerService{Store: svcStore, Tokens: tokens, Roster: roster, Tally: tally}

	r := NewRouter(keys, "test", st, logger, RouterOptions{CORSOrigin: "https://vote.example.com", RequestTimeout: 5 * time.Second})
	r.IdentityService = &service.IdentityService{Store: svcStore, Tokens: tokens, Pepper: bytes.Repeat([]byte{1}, 32)}
	r.TokenService = tokens
	r.CandidateService = candidates
	r.LedgerService = ledger
	r.TallyService = tally
	r.ReceiptService = receipts
	r.LedgerAuditor = service.NewLedgerAuditor(ledger, logger, time.Hour)
	r.ApplyRoutes()

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	return &testServer{store: st, router: r, client: votingsdk.NewSDKClient(srv.URL)}
}

func TestVoterJourney(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	ts := newTestServer(t, nil)
	c := ts.client

	names, err := c.ListCandidates(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"Alice", "Bob"}, names)

	reg, err := c.Register(ctx, votingsdk.RegisterRequest{
		FirstName:   "Jane",
		LastName:    "Doe",
		DateOfBirth: "1990-01-01",
		Address:     "1 Main St",
	})
	require.NoError(t, err)
	require.NotEmpty(t, reg.Token)

	check, err := c.ValidateToken(ctx, reg.Token)
	require.NoError(t, err)
	require.True(t, check.Valid)

	vote, err := c.Vote(ctx, reg.Token, "Alice")
	require.NoError(t, err)
	require.Equal(t, int64(1), vote.Seq)
	require.NotEmpty(t, vote.Receipt)

	check, err = c.ValidateToken(ctx, reg.Token)
	require.NoError(t, err)
	require.False(t, check.Valid)
	require.Equal(t, votingsdk.ErrorCodeTokenAlreadyUsed, check.Reason)

	_, err = c.Vote(ctx, reg.Token, "Bob")
	require.ErrorIs(t, err, votingsdk.ErrTokenAlreadyUsed)

	_, err = c.Register(ctx, votingsdk.RegisterRequest{Name: "jane doe", DateOfBirth: "1990-01-01", Address: "1 MAIN ST"})
	require.ErrorIs(t, err, votingsdk.ErrDuplicateIdentity)

	results, err := c.Results(ctx)
	require.NoError(t, err)
	require.Equal(t, votingsdk.ResultsResponse{
		{Candidate: "Alice", Votes: 1},
		{Candidate: "Bob", Votes: 0},
	}, results)

	ok, err := c.VerifyReceipt(ctx, vote.Receipt)
	require.NoError(t, err)
	require.Equal(t, vote.BallotID, ok.BallotID)
	require.Equal(t, vote.EntryHash, ok.EntryHash)

	page, err := c.Ledger(ctx, 0, 0)
	require.NoError(t, err)
	require.Equal(t, int64(1), page.Length)
	require.Len(t, page.Entries, 1)
	require.Equal(t, domain.GenesisHash, page.Entries[0].PrevHash)
	require.Equal(t, vote.EntryHash, page.HeadHash)

	report, err := c.VerifyLedger(ctx)
	require.NoError(t, err)
	require.True(t, report.Valid)
	require.Empty(t, report.Problems)

	jwks, err := c.GetJWKS(ctx)
	require.NoError(t, err)
	require.Len(t, jwks.Keys, 1)
}

func TestVoteStatusCodes(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	ts := newTestServer(t, nil)
	c := ts.client

	reg, err := c.Register(ctx, votingsdk.RegisterRequest{Name: "Sam Poe", DateOfBirth: "1970-07-07", Address: "9 Elm Rd"})
	require.NoError(t, err)

	_, err = c.Vote(ctx, "not-a-token", "Alice")
	require.ErrorIs(t, err, votingsdk.ErrUnknownToken)

	_, err = c.Vote(ctx, reg.Token, "Mallory")
	require.ErrorIs(t, err, votingsdk.ErrUnknownCandidate)

	_, err = c.Vote(ctx, reg.Token, "")
	require.ErrorIs(t, err, votingsdk.ErrInvalidInput)

	// Still unspent after the rejected attempts.
	check, err := c.ValidateToken(ctx, reg.Token)
	require.NoError(t, err)
	require.True(t, check.Valid)

	results, err := c.Results(ctx)
	require.NoError(t, err)
	for _, r := range results {
		require.Zero(t, r.Votes)
	}
}

func TestRawResponses(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t, nil)

	do := func(method, path, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Origin", "https://vote.example.com")
		rec := httptest.NewRecorder()
		ts.router.ServeHTTP(rec, req)
		return rec
	}

	t.Run("malformed register body", func(t *testing.T) {
		rec := do(http.MethodPost, "/register", `{"name":`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), `"error":"invalid_input"`)
		require.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
	})

	t.Run("unknown token validates as 404", func(t *testing.T) {
		rec := do(http.MethodPost, "/validate-token", `{"token":"nope"}`)
		require.Equal(t, http.StatusNotFound, rec.Code)
		require.Contains(t, rec.Body.String(), `"valid":false`)
	})

	t.Run("blank token validates as 400", func(t *testing.T) {
		rec := do(http.MethodPost, "/validate-token", `{"token":"  "}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), `"reason":"invalid_input"`)
	})

	t.Run("bad ledger paging", func(t *testing.T) {
		require.Equal(t, http.StatusBadRequest, do(http.MethodGet, "/ledger?after=x", "").Code)
		require.Equal(t, http.StatusBadRequest, do(http.MethodGet, "/ledger?limit=5000", "").Code)
		require.Equal(t, http.StatusOK, do(http.MethodGet, "/ledger?after=0&limit=10", "").Code)
	})

	t.Run("garbage receipt", func(t *testing.T) {
		rec := do(http.MethodPost, "/receipts/verify", `{"receipt":"a.b.c"}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), `"valid":false`)
	})

	t.Run("cors preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/vote", nil)
		req.Header.Set("Origin", "https://vote.example.com")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		rec := httptest.NewRecorder()
		ts.router.ServeHTTP(rec, req)
		require.Equal(t, http.StatusNoContent, rec.Code)
		require.Equal(t, "https://vote.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("request id is echoed", func(t *testing.T) {
		rec := do(http.MethodGet, "/livez", "")
		require.Equal(t, http.StatusOK, rec.Code)
		require.NotEmpty(t, rec.Header().Get("X-Request-ID"))
	})
}

func TestReadyz(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	ts := newTestServer(t, nil)

	health, err := ts.client.GetReadiness(ctx)
	require.NoError(t, err)
	require.Equal(t, "pending", health.Checks.Ledger)

	_, err = ts.router.LedgerAuditor.Audit(ctx)
	require.NoError(t, err)
	health, err = ts.client.GetReadiness(ctx)
	require.NoError(t, err)
	require.Equal(t, "ok", health.Checks.Ledger)

	require.NoError(t, ts.store.Close())
	health, err = ts.client.GetReadiness(ctx)
	require.ErrorIs(t, err, votingsdk.ErrUnavailable)
	require.Equal(t, "degraded", health.Status)
	require.Contains(t, health.Checks.Database, "error")
}

func TestInfrastructureErrorsAre503(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	ts := newTestServer(t, nil)
	require.NoError(t, ts.store.Close())

	_, err := ts.client.Results(ctx)
	require.ErrorIs(t, err, votingsdk.ErrUnavailable)

	_, err = ts.client.Register(ctx, votingsdk.RegisterRequest{Name: "Jane Doe", DateOfBirth: "1990-01-01", Address: "1 Main St"})
	require.ErrorIs(t, err, votingsdk.ErrUnavailable)
}

// lostAckStore commits the first transaction and then reports a failure, as
// if the connection dropped after COMMIT.
type lostAckStore struct {
	store.Store
	dropped atomic.Bool
}

func (s *lostAckStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	if err := s.Store.WithTx(ctx, fn); err != nil {
		return err
	}
	if s.dropped.CompareAndSwap(false, true) {
		return errors.New("connection reset after commit")
	}
	return nil
}

func TestVoteRecoversCommittedBallot(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var flaky *lostAckStore
	ts := newTestServer(t, func(st store.Store) store.Store {
		flaky = &lostAckStore{Store: st}
		flaky.dropped.Store(true) // let registration through
		return flaky
	})

	reg, err := ts.client.Register(ctx, votingsdk.RegisterRequest{Name: "Jane Doe", DateOfBirth: "1990-01-01", Address: "1 Main St"})
	require.NoError(t, err)

	flaky.dropped.Store(false)
	vote, err := ts.client.Vote(ctx, reg.Token, "Bob")
	require.NoError(t, err)
	require.Equal(t, int64(1), vote.Seq)

	results, err := ts.client.Results(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(1), results[1].Votes)

	page, err := ts.client.Ledger(ctx, 0, 0)
	require.NoError(t, err)
	require.Len(t, page.Entries, 1)
}

func TestRetryRead(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("retries infrastructure errors", func(t *testing.T) {
		var calls int
		v, err := retryRead(ctx, func(context.Context) (int, error) {
			calls++
			if calls < 3 {
				return 0, errors.New("database is locked")
			}
			return 42, nil
		})
		require.NoError(t, err)
		require.Equal(t, 42, v)
		require.Equal(t, 3, calls)
	})

	t.Run("stops on rejections", func(t *testing.T) {
		var calls int
		_, err := retryRead(ctx, func(context.Context) (int, error) {
			calls++
			return 0, service.ErrInvalidInput
		})
		require.ErrorIs(t, err, service.ErrInvalidInput)
		require.Equal(t, 1, calls)
	})

	t.Run("gives up", func(t *testing.T) {
		var calls int
		_, err := retryRead(ctx, func(context.Context) (int, error) {
			calls++
			return 0, errors.New("down")
		})
		require.Error(t, err)
		require.Equal(t, readRetries+1, calls)
	})
}

func TestRegisterRateLimitIsPerKiosk(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t, nil)

	register := func(kiosk string) int {
		req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(`{}`))
		req.RemoteAddr = "198.51.100.7:40000"
		if kiosk != "" {
			req.Header.Set(votingsdk.KioskIDHeader, kiosk)
		}
		rec := httptest.NewRecorder()
		ts.router.ServeHTTP(rec, req)
		return rec.Code
	}

	for range httpx.StrictLimit.Burst {
		require.Equal(t, http.StatusBadRequest, register("kiosk-1"))
	}
	require.Equal(t, http.StatusTooManyRequests, register("kiosk-1"))

	// Same address, other kiosks keep their own budget.
	require.Equal(t, http.StatusBadRequest, register("kiosk-2"))
	require.Equal(t, http.StatusBadRequest, register(""))
}

func TestSDKSendsKioskID(t *testing.T) {
	t.Parallel()

	var got atomic.Value
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got.Store(r.Header.Get(votingsdk.KioskIDHeader))
		httpx.WriteJSON(w, http.StatusOK, votingsdk.CandidatesResponse{Candidates: []string{"Alice"}})
	}))
	t.Cleanup(srv.Close)

	client := votingsdk.NewSDKClient(srv.URL)
	client.KioskID = "kiosk-9"
	_, err := client.ListCandidates(t.Context())
	require.NoError(t, err)
	require.Equal(t, "kiosk-9", got.Load())
}
