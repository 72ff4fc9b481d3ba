package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/astromitts/gifterator3000/internal/exchange/metrics"
	"github.com/astromitts/gifterator3000/internal/exchange/service"
	"github.com/astromitts/gifterator3000/internal/exchange/store"
	"github.com/astromitts/gifterator3000/pkg/httpx"
	"github.com/astromitts/gifterator3000/pkg/slogx"

	_ "github.com/astromitts/gifterator3000/api/giftexchange" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// MaxRequestBody caps JSON request bodies.
const MaxRequestBody = 1 << 20

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store              store.Store
	ExchangeService    *service.ExchangeService
	ParticipantService *service.ParticipantService
	AssignmentService  *service.AssignmentService
}

func NewRouter(buildVersion string, st store.Store, logger *slog.Logger) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		httpx.Recoverer,
		httpx.MaxBodyBytes(MaxRequestBody),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerExchanges()
	r.registerParticipants()
	r.registerAssignments()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpx.Chain(httpSwagger.Handler(),
		httpx.RateLimitByIP(httpx.PublicLimit),
	))
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Gift Exchange Service API
//	@version		0.1.0
//	@description	Organizers create exchanges, enrol participants and draw assignments.
//	@description
//	@description	Every active participant gives exactly one gift and receives exactly one gift. Assignments always form a single cycle with no self-assignment.
//
//	@contact.name	Gifterator Team
//	@contact.url	https://github.com/astromitts/gifterator3000
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

func (r *Router) registerExchanges() {
	h := &ExchangesHandler{ExchangeService: r.ExchangeService}

	r.Mux.Handle("POST /v1/exchanges",
		httpx.Chain(http.HandlerFunc(h.HandleCreate),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("GET /v1/exchanges",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /v1/exchanges/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleGet),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("PATCH /v1/exchanges/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleUpdate),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerParticipants() {
	h := &ParticipantsHandler{
		ParticipantService: r.ParticipantService,
		AssignmentService:  r.AssignmentService,
	}

	// Participant writes are budgeted per client and exchange.
	r.Mux.Handle("POST /v1/exchanges/{id}/participants",
		httpx.Chain(http.HandlerFunc(h.HandleAdd),
			httpx.RateLimitByClientAndPathValue(httpx.ModerateLimit, "id"),
		),
	)
	r.Mux.Handle("GET /v1/exchanges/{id}/participants",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("PATCH /v1/exchanges/{id}/participants/{pid}",
		httpx.Chain(http.HandlerFunc(h.HandleUpdate),
			httpx.RateLimitByClientAndPathValue(httpx.ModerateLimit, "id"),
		),
	)
	r.Mux.Handle("DELETE /v1/exchanges/{id}/participants/{pid}",
		httpx.Chain(http.HandlerFunc(h.HandleRemove),
			httpx.RateLimitByClientAndPathValue(httpx.ModerateLimit, "id"),
		),
	)
}

func (r *Router) registerAssignments() {
	h := &AssignmentsHandler{
		ExchangeService:    r.ExchangeService,
		ParticipantService: r.ParticipantService,
		AssignmentService:  r.AssignmentService,
	}

	// Generation is limited per exchange so one busy exchange cannot starve others.
	r.Mux.Handle("POST /v1/exchanges/{id}/assignments",
		httpx.Chain(http.HandlerFunc(h.HandleGenerate),
			httpx.RateLimitByPathValue(httpx.StrictLimit, "id"),
		),
	)
	r.Mux.Handle("GET /v1/exchanges/{id}/assignments",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /v1/exchanges/{id}/participants/{pid}/recipient",
		httpx.Chain(http.HandlerFunc(h.HandleRecipient),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)

	r.Mux.Handle("POST /v1/exchanges/{id}/lock",
		httpx.Chain(http.HandlerFunc(h.HandleLock),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("DELETE /v1/exchanges/{id}/lock",
		httpx.Chain(http.HandlerFunc(h.HandleUnlock),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("POST /v1/exchanges/{id}/lock/toggle",
		httpx.Chain(http.HandlerFunc(h.HandleToggle),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerSystem() {
	// Health check endpoints - public rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("GET /metrics",
		httpx.Chain(metrics.Handler(),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
}
