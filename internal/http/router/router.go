package router

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/sandeepkv93/notes-ai-backend/internal/health"
	"github.com/sandeepkv93/notes-ai-backend/internal/http/handler"
	"github.com/sandeepkv93/notes-ai-backend/internal/http/middleware"
	"github.com/sandeepkv93/notes-ai-backend/internal/http/response"
)

type Dependencies struct {
	AuthHandler      *handler.AuthHandler
	NoteHandler      *handler.NoteHandler
	AIHandler        *handler.AIHandler
	TokenVerifier    middleware.TokenVerifier
	CookieName       string
	CORSOrigins      []string
	AuthRateLimitRPM int
	APIRateLimitRPM  int
	AuthRateLimiter  AuthRateLimiterFunc
	APIRateLimiter   APIRateLimiterFunc
	MaxBodyBytes     int64
	AIRequireAuth    bool
	Production       bool
	Readiness        *health.ProbeRunner
	Logger           *slog.Logger
	EnableOTelHTTP   bool
}

type AuthRateLimiterFunc func(http.Handler) http.Handler
type APIRateLimiterFunc func(http.Handler) http.Handler

func NewRouter(dep Dependencies) http.Handler {
	logger := dep.Logger
	if logger == nil {
		logger = slog.Default()
	}
	maxBody := dep.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = 1 << 20
	}

	r := chi.NewRouter()
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.SecurityHeaders(dep.Production))
	r.Use(middleware.CORS(dep.CORSOrigins))
	r.Use(middleware.BodyLimit(maxBody))

	apiLimiter := dep.APIRateLimiter
	if apiLimiter == nil {
		apiLimiter = middleware.RateLimitByIP("api", dep.APIRateLimitRPM, time.Minute)
	}
	authLimiter := dep.AuthRateLimiter
	if authLimiter == nil {
		authLimiter = middleware.RateLimitByIP("auth", dep.AuthRateLimitRPM, time.Minute)
	}
	requireAuth := middleware.AuthMiddleware(dep.TokenVerifier, dep.CookieName)
	aiAuth := requireAuth
	if !dep.AIRequireAuth {
		aiAuth = middleware.OptionalAuth(dep.TokenVerifier, dep.CookieName)
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		response.Error(w, r, http.StatusNotFound, "NOT_FOUND", "Route not found", nil)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		response.Error(w, r, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
	})

	r.Get("/health/live", func(w http.ResponseWriter, r *http.Request) {
		response.JSON(w, r, http.StatusOK, "", map[string]any{"status": "ok"})
	})
	r.Get("/health/ready", func(w http.ResponseWriter, r *http.Request) {
		ready, results := dep.Readiness.Ready(r.Context())
		if results == nil {
			results = []health.CheckResult{}
		}
		if ready {
			response.JSON(w, r, http.StatusOK, "", map[string]any{"status": "ready", "checks": results})
			return
		}
		response.Error(w, r, http.StatusServiceUnavailable, "DEPENDENCY_UNREADY", "dependencies are not ready", map[string]any{"checks": results})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				r.Use(authLimiter)
				r.Post("/sendOTP", dep.AuthHandler.SendCode)
				r.Post("/sendotp", dep.AuthHandler.SendCode)
				r.Post("/signup", dep.AuthHandler.Signup)
				r.Post("/login", dep.AuthHandler.Login)
			})
			r.Post("/logout", dep.AuthHandler.Logout)
			r.With(apiLimiter, requireAuth).Get("/me", dep.AuthHandler.Me)
		})
		r.With(apiLimiter, requireAuth).Get("/me", dep.AuthHandler.Me)

		r.Route("/notes", func(r chi.Router) {
			r.Use(apiLimiter, requireAuth)
			r.Post("/createNote", dep.NoteHandler.Create)
			r.Get("/fetchAllNotes", dep.NoteHandler.ListAll)
			r.Get("/fetchNoteById/{id}", dep.NoteHandler.Get)
			r.Put("/updateNote/{id}", dep.NoteHandler.Update)
			r.Delete("/deleteNote/{id}", dep.NoteHandler.Delete)

			r.Post("/", dep.NoteHandler.Create)
			r.Get("/", dep.NoteHandler.List)
			r.Get("/{id}", dep.NoteHandler.Get)
			r.Put("/{id}", dep.NoteHandler.Update)
			r.Delete("/{id}", dep.NoteHandler.Delete)
		})

		r.Route("/ai", aiRoutes(dep, apiLimiter, aiAuth))
	})
	// Original mount of the AI routes.
	r.Route("/api/ai", aiRoutes(dep, apiLimiter, aiAuth))

	var h http.Handler = r
	if dep.EnableOTelHTTP {
		h = otelhttp.NewHandler(r, "http.server")
	}
	return h
}

func aiRoutes(dep Dependencies, limiter, auth func(http.Handler) http.Handler) func(chi.Router) {
	return func(r chi.Router) {
		r.Use(limiter, auth)
		r.Post("/summarize", dep.AIHandler.Summarize)
		r.Post("/chat", dep.AIHandler.Chat)
	}
}
