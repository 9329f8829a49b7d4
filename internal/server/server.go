package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/contextclip/clipcal/internal/database"
	"github.com/contextclip/clipcal/internal/event"
	"github.com/contextclip/clipcal/internal/notify"
)

// EventPublisher runs the text-to-calendar pipeline.
type EventPublisher interface {
	Publish(ctx context.Context, sourceText string) (*event.PublishResult, error)
}

// CalendarConnector is the slice of the Google Calendar client the HTTP
// surface needs for connection management.
type CalendarConnector interface {
	IsAuthenticated() bool
	GetAuthURL() string
	ExchangeCode(ctx context.Context, code string) error
}

type Server struct {
	db            *database.DB
	publisher     EventPublisher
	gcalClient    CalendarConnector
	notifyService *notify.Service
	httpSrv       *http.Server
	port          int
}

// Config holds server dependencies.
type Config struct {
	DB            *database.DB
	Publisher     EventPublisher
	GCalClient    CalendarConnector
	NotifyService *notify.Service
	Port          int
}

func New(cfg Config) *Server {
	s := &Server{
		db:            cfg.DB,
		publisher:     cfg.Publisher,
		gcalClient:    cfg.GCalClient,
		notifyService: cfg.NotifyService,
		port:          cfg.Port,
	}

	mux := http.NewServeMux()
	s.registerRoutes(mux)

	s.httpSrv = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.corsMiddleware(mux),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

func (s *Server) registerRoutes(mux *http.ServeMux) {
	// Health check
	mux.HandleFunc("GET /health", s.handleHealthCheck)

	// Publish pipeline
	mux.HandleFunc("POST /api/publish", s.handlePublish)
	mux.HandleFunc("GET /api/history", s.handleHistory)

	// Settings
	mux.HandleFunc("GET /api/settings", s.handleGetSettings)
	mux.HandleFunc("PUT /api/settings", s.handleUpdateSettings)

	// Google Calendar connection
	mux.HandleFunc("GET /api/gcal/status", s.handleGCalStatus)
	mux.HandleFunc("POST /api/gcal/connect", s.handleGCalConnect)
	mux.HandleFunc("GET /oauth/callback", s.handleOAuthCallback)
}

func (s *Server) Start() error {
	log.Info().Int("port", s.port).Msg("starting HTTP server")
	return s.httpSrv.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpSrv.Shutdown(ctx)
}

// Handler returns the server's HTTP handler for testing purposes
func (s *Server) Handler() http.Handler {
	return s.httpSrv.Handler
}

// corsMiddleware adds CORS headers to allow browser extension requests
func (s *Server) corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		// Handle preflight requests
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
