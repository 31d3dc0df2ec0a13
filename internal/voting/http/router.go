package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/ballot/internal/voting/service"
	"github.com/aussiebroadwan/ballot/internal/voting/store"
	"github.com/aussiebroadwan/ballot/pkg/httpx"
	"github.com/aussiebroadwan/ballot/pkg/jwtx"
	"github.com/aussiebroadwan/ballot/pkg/slogx"
	"github.com/aussiebroadwan/ballot/pkg/votingsdk"

	_ "github.com/aussiebroadwan/ballot/api/ballot" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	keys         *jwtx.KeySet
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store            store.Store
	IdentityService  *service.IdentityService
	TokenService     *service.TokenService
	CandidateService *service.CandidateService
	LedgerService    *service.LedgerService
	TallyService     *service.TallyService
	ReceiptService   *service.ReceiptService
	LedgerAuditor    *service.LedgerAuditor // Optional: readiness reports "pending" without it
}

// RouterOptions configures the global middleware chain.
type RouterOptions struct {
	CORSOrigin     string
	RequestTimeout time.Duration
}

func NewRouter(
	keys *jwtx.KeySet,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
	opts RouterOptions,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		keys:         keys,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		httpx.CORS(opts.CORSOrigin),
		httpx.Timeout(opts.RequestTimeout),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerVoting()
	r.registerLedger()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Ballot Service API
//	@version		0.1.0
//	@description	Voter registration, single-use voting tokens and a hash-chained ballot ledger.
//	@description
//	@description	Vote receipts are EdDSA-signed JWTs and can be verified offline using the JWKS endpoint.
//
//	@contact.name	AussieBroadWAN Team
//	@contact.url	https://github.com/aussiebroadwan/ballot
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host			localhost:8080
//	@BasePath		/
//
//	@schemes		http https
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// kioskKey buckets requests by client address and the optional kiosk header.
var kioskKey = httpx.CompositeKeyExtractor("|",
	httpx.IPKeyExtractor,
	httpx.HeaderKeyExtractor(votingsdk.KioskIDHeader),
)

func (r *Router) registerVoting() {
	// POST /register - strict rate limit per kiosk (creates identities and tokens)
	r.Mux.Handle("POST /register",
		httpx.Chain(&RegisterHandler{IdentityService: r.IdentityService},
			httpx.RateLimitMiddleware(httpx.StrictLimit, kioskKey),
		),
	)

	// Token-bearing endpoints - moderate rate limit to slow down token guessing
	r.Mux.Handle("POST /validate-token",
		httpx.Chain(&ValidateTokenHandler{TokenService: r.TokenService},
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("POST /vote",
		httpx.Chain(&VoteHandler{LedgerService: r.LedgerService, ReceiptService: r.ReceiptService},
			httpx.RateLimitMiddleware(httpx.ModerateLimit, kioskKey),
		),
	)

	// Public reads
	r.Mux.Handle("GET /candidates",
		httpx.Chain(&CandidatesHandler{CandidateService: r.CandidateService},
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("GET /results",
		httpx.Chain(&ResultsHandler{TallyService: r.TallyService},
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
}

func (r *Router) registerLedger() {
	h := &LedgerHandler{LedgerService: r.LedgerService}

	r.Mux.Handle("GET /ledger",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)

	// Full scans are expensive - lenient rather than public limit
	r.Mux.Handle("GET /ledger/verify",
		httpx.Chain(http.HandlerFunc(h.HandleVerify),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("POST /receipts/verify",
		httpx.Chain(&ReceiptVerifyHandler{ReceiptService: r.ReceiptService},
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)

	// GET /jwks.json - public endpoint with high limit
	r.Mux.Handle("GET /.well-known/jwks.json",
		httpx.Chain(JWKSHandler(r.keys),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store, r.keys, r.LedgerAuditor),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
