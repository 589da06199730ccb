package httpapi

import (
	"net/http"
	"time"

	"catacuti-backend-go/internal/config"
	"catacuti-backend-go/internal/platform/logger"
	"catacuti-backend-go/internal/services"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

type Server struct {
	Service *services.Service
	Config  config.Config
	Tokens  services.TokenService
	Log     *logger.Logger
}

func NewServer(svc *services.Service, cfg config.Config, log *logger.Logger) *Server {
	if log == nil {
		log = logger.NewNop()
	}
	tokens := services.TokenService{
		Secret:    []byte(cfg.JWTSecret),
		Issuer:    cfg.JWTIssuer,
		AccessTTL: time.Duration(cfg.AccessTTLSeconds) * time.Second,
	}
	return &Server{
		Service: svc,
		Config:  cfg,
		Tokens:  tokens,
		Log:     log,
	}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(RequestLogger(s.Log))
	r.Use(Recoverer(s.Log))
	if len(s.Config.CorsOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   s.Config.CorsOrigins,
			AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", requestIDHeader},
			ExposedHeaders:   []string{requestIDHeader},
			AllowCredentials: false,
			MaxAge:           300,
		}))
	}
	r.MethodNotAllowed(s.MethodNotAllowed)

	r.Route("/api", func(api chi.Router) {
		api.NotFound(s.NotFound)
		api.MethodNotAllowed(s.MethodNotAllowed)

		api.Get("/health", s.Health)
		api.Post("/login", s.Login)

		api.Get("/content", s.ListContent)
		api.Get("/content/{id:[0-9]+}", s.GetContent)

		api.Post("/progress", s.RecordProgress)
		api.Get("/progress/{userId:[0-9]+}", s.GetProgress)

		api.Get("/streak/{userId:[0-9]+}", s.GetStreak)

		api.Route("/admin", func(admin chi.Router) {
			if s.Config.AdminAuthRequired {
				admin.Use(WithAuth(s.Tokens))
				admin.Use(RequireRole("admin"))
			}
			admin.Get("/stats", s.AdminStats)
			admin.Get("/users", s.AdminUsers)
		})
	})

	r.Get("/", s.ServeStatic)
	r.Get("/*", s.ServeStatic)
	return r
}

func (s *Server) NotFound(w http.ResponseWriter, r *http.Request) {
	WriteError(w, http.StatusNotFound, "Not found", "The requested resource was not found")
}

func (s *Server) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	WriteError(w, http.StatusMethodNotAllowed, "Method not allowed", "The method is not allowed for the requested URL")
}

// fail writes a service error. Unclassified errors are logged and reported
// as 500 with their message.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	status, message := services.StatusOf(err)
	if status >= http.StatusInternalServerError {
		s.Log.Error("request failed", "path", r.URL.Path, "request_id", RequestIDFrom(r.Context()), "error", err)
	}
	WriteError(w, status, message, "")
}
