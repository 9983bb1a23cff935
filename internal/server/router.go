package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/icdc-io/rbac-go/internal/authz"
	"github.com/icdc-io/rbac-go/internal/httpx"
	mw2 "github.com/icdc-io/rbac-go/internal/mw"
	"github.com/icdc-io/rbac-go/internal/version"
)

type Options struct {
	EnableCORS bool
}

type Deps struct {
	Authorizer *authz.Authorizer
}

// BuildRouter wires the middleware chain and the guarded demo routes.
// Extra middleware (mws) runs after the baseline and before tracing.
func BuildRouter(d Deps, opts Options, mws ...func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()

	// baseline
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	if opts.EnableCORS {
		r.Use(cors.Handler(cors.Options{
			AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Content-Type", authz.HeaderAccount, authz.HeaderRole, authz.HeaderOwner},
			MaxAge:         300,
		}))
	}
	for _, m := range mws {
		r.Use(m)
	}

	// tracing + logger
	r.Use(mw2.Trace())
	r.Use(mw2.Logger(mw2.LogOpts{
		SkipPaths:     []string{"/healthz", "/version"},
		RedactHeaders: []string{authz.HeaderAccount, authz.HeaderRole, authz.HeaderOwner},
	}))

	r.Get("/healthz", healthCheckHandler)
	r.Get("/version", versionHandler)

	r.Route("/users", func(ur chi.Router) {
		ur.With(d.Authorizer.Allow("users.read")).Get("/", listUsers)
		ur.With(d.Authorizer.Allow("users.write")).Post("/", createUser)
	})

	return r
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"version": version.Version,
	})
}

func versionHandler(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, version.Get())
}
