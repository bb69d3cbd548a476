package web

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Config holds server configuration
type Config struct {
	Port      int
	StaticDir string // pre-built site assets

	// form submission throttle, per client IP
	FormRPS   float64
	FormBurst int
}

// Server represents the HTTP server
type Server struct {
	router     *chi.Mux
	httpServer *http.Server
	config     *Config
	listener   net.Listener
	hub        *Hub
	formLimit  *ipRateLimiter
}

// NewServer creates a new HTTP server
func NewServer(cfg *Config, hub *Hub) *Server {
	router := chi.NewRouter()

	rps := cfg.FormRPS
	if rps <= 0 {
		rps = 0.5
	}
	burst := cfg.FormBurst
	if burst <= 0 {
		burst = 3
	}

	srv := &Server{
		router:    router,
		config:    cfg,
		hub:       hub,
		formLimit: newIPRateLimiter(rps, burst),
	}

	srv.setupMiddleware()
	srv.setupRoutes()

	return srv
}

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Timeout(30 * time.Second))
	s.router.Use(middleware.Compress(5))
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
}

func (s *Server) setupRoutes() {
	// static site assets
	if s.config.StaticDir != "" {
		fileServer := http.FileServer(http.Dir(s.config.StaticDir))
		s.router.Handle("/static/*", http.StripPrefix("/static/", fileServer))
	}

	// admin event feed
	if s.hub != nil {
		s.router.Get("/ws", func(w http.ResponseWriter, r *http.Request) {
			ServeWs(s.hub, w, r)
		})
	}

	// Health endpoint
	s.router.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte(`{"status":"ok"}`)); err != nil {
			_ = err // Client disconnected
		}
	})
}

// Start starts the HTTP server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.config.Port)
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	s.listener = listener

	s.httpServer = &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return s.httpServer.Serve(listener)
}

// Stop gracefully stops the server
func (s *Server) Stop(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}

// BaseURL returns the server's base URL
func (s *Server) BaseURL() string {
	if s.listener != nil {
		return fmt.Sprintf("http://%s", s.listener.Addr().String())
	}
	return fmt.Sprintf("http://localhost:%d", s.config.Port)
}

// RegisterFormHandlers registers the public form intake endpoints,
// throttled per client IP.
func (s *Server) RegisterFormHandlers(contact, applications interface{}) {
	type createHandler interface {
		Create(w http.ResponseWriter, r *http.Request)
	}

	s.router.Group(func(r chi.Router) {
		r.Use(s.formLimit.Middleware)
		if h, ok := contact.(createHandler); ok {
			r.Post("/api/contact", h.Create)
		}
		if h, ok := applications.(createHandler); ok {
			r.Post("/api/job-applications", h.Create)
		}
	})
}

// RegisterAdminHandler registers the authenticated admin API
func (s *Server) RegisterAdminHandler(handler interface{}) {
	type adminHandler interface {
		RequireAuth(next http.Handler) http.Handler
		GetBrevoConfig(w http.ResponseWriter, r *http.Request)
		UpdateBrevoConfig(w http.ResponseWriter, r *http.Request)
		TestConnection(w http.ResponseWriter, r *http.Request)
		ListSubmissions(w http.ResponseWriter, r *http.Request)
	}

	if h, ok := handler.(adminHandler); ok {
		s.router.Route("/api/admin", func(r chi.Router) {
			r.Use(h.RequireAuth)
			r.Get("/brevo-config", h.GetBrevoConfig)
			r.Put("/brevo-config", h.UpdateBrevoConfig)
			r.Post("/brevo-config/test", h.TestConnection)
			r.Get("/submissions", h.ListSubmissions)
		})
	}
}

// Router returns the underlying Chi router for external route mounting.
func (s *Server) Router() *chi.Mux {
	return s.router
}
