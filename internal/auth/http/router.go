package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
	"github.com/unrolled/secure"

	_ "github.com/aussiebroadwan/passport/api/auth" // Swagger docs
	"github.com/aussiebroadwan/passport/internal/auth/service"
	"github.com/aussiebroadwan/passport/internal/auth/store"
	"github.com/aussiebroadwan/passport/pkg/httpx"
	"github.com/aussiebroadwan/passport/pkg/slogx"
)

// RouterOptions are the dependencies shared by every handler.
type RouterOptions struct {
	Auth   *service.AuthService
	Tokens *service.TokenService
	Store  store.Store

	// Gatherer backs /metrics. Nil disables the endpoint.
	Gatherer prometheus.Gatherer

	BuildVersion string
	Logger       *slog.Logger

	// Development relaxes the security headers for local use.
	Development bool
}

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	auth         *service.AuthService
	tokens       *service.TokenService
	store        store.Store
	gatherer     prometheus.Gatherer
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
}

func NewRouter(opts RouterOptions) *Router {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	r := &Router{
		Mux:          http.NewServeMux(),
		auth:         opts.Auth,
		tokens:       opts.Tokens,
		store:        opts.Store,
		gatherer:     opts.Gatherer,
		buildVersion: opts.BuildVersion,
		startTime:    time.Now(),
		logger:       logger,
	}

	headers := secure.New(secure.Options{
		FrameDeny:          true,
		ContentTypeNosniff: true,
		BrowserXssFilter:   true,
		ReferrerPolicy:     "no-referrer",
		IsDevelopment:      opts.Development,
	})

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		headers.Handler,
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerUsers()
	r.registerAuth()
	r.registerRules()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Passport Authentication Service API
//	@version		0.1.0
//	@description	Registers users, checks passwords and resolves bearer tokens back to users.
//	@description
//	@description				Tokens are HS256 JWTs valid for 30 days.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/passport
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Token from POST /v1/auth. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerUsers() {
	h := &UsersHandler{AuthService: r.auth}
	r.Mux.Handle("POST /v1/users", h)
}

func (r *Router) registerAuth() {
	h := &AuthHandler{AuthService: r.auth}
	r.Mux.HandleFunc("POST /v1/auth", h.HandleLogin)
	r.Mux.HandleFunc("GET /v1/auth", h.HandleFetch)
}

func (r *Router) registerRules() {
	r.Mux.Handle("GET /v1/rules", RulesHandler())
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store, r.tokens))

	if r.gatherer != nil {
		r.Mux.Handle("GET /metrics", promhttp.HandlerFor(r.gatherer, promhttp.HandlerOpts{
			EnableOpenMetrics: true,
		}))
	}
}
