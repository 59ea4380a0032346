// Package server provides the HTTP REST API for CV extraction and offer
// matching.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/inclusionlab/cvmatch/internal/catalog"
	"github.com/inclusionlab/cvmatch/internal/config"
	"github.com/inclusionlab/cvmatch/internal/employability"
	"github.com/inclusionlab/cvmatch/internal/extraction"
	"github.com/inclusionlab/cvmatch/internal/matching"
	"github.com/inclusionlab/cvmatch/internal/observability"
	"github.com/inclusionlab/cvmatch/internal/types"
)

// OfferSource yields the offers currently open for matching. Both the
// PostgreSQL store and the JSON file source satisfy it.
type OfferSource interface {
	ActiveOffers(ctx context.Context) ([]types.Offer, error)
}

// fileOfferSource adapts a catalog.FileSource to OfferSource.
type fileOfferSource struct {
	src *catalog.FileSource
}

func (f fileOfferSource) ActiveOffers(ctx context.Context) ([]types.Offer, error) {
	return f.src.ActiveOffers(time.Now()), nil
}

// Server represents the HTTP server.
type Server struct {
	httpServer     *http.Server
	extractor      *extraction.Extractor
	scorer         *matching.Scorer
	offers         OfferSource
	store          *catalog.Store
	profiles       *profileStore
	validate       *validator.Validate
	model          employability.Model
	printer        *observability.Printer
	candidateLimit int
}

// Config holds server configuration.
type Config struct {
	Port           int
	DatabaseURL    string
	OffersFile     string
	CandidateLimit int
	Verbose        bool
	Model          employability.Model // optional prediction model
}

// New creates a new server instance. Offers come from PostgreSQL when a
// database URL is configured, otherwise from the offers file.
func New(ctx context.Context, cfg Config) (*Server, error) {
	s := &Server{
		extractor:      extraction.New(extraction.DefaultConfig()),
		scorer:         matching.NewScorer(),
		profiles:       newProfileStore(),
		validate:       validator.New(),
		model:          cfg.Model,
		candidateLimit: cfg.CandidateLimit,
	}
	if s.candidateLimit <= 0 {
		s.candidateLimit = matching.DefaultCandidateLimit
	}
	if cfg.Verbose {
		s.printer = observability.NewPrinter(os.Stderr)
	}

	switch {
	case cfg.DatabaseURL != "":
		store, err := catalog.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to offer catalog: %w", err)
		}
		s.store = store
		s.offers = store
	case cfg.OffersFile != "":
		src, err := catalog.LoadOffersFile(cfg.OffersFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load offer catalog: %w", err)
		}
		s.offers = fileOfferSource{src: src}
	default:
		return nil, fmt.Errorf("either a database URL or an offers file is required")
	}

	// Setup router
	mux := http.NewServeMux()
	mux.HandleFunc("POST /extract-cv-data", s.handleExtractCV)
	mux.HandleFunc("POST /process-candidate-data", s.handleProcessCandidate)
	mux.HandleFunc("GET /candidate-summary/{id}", s.handleCandidateSummary)
	mux.HandleFunc("POST /match-offers", s.handleMatchOffers)
	mux.HandleFunc("POST /match-candidates", s.handleMatchCandidates)
	mux.HandleFunc("GET /health", s.handleHealth)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(s.withCORS(mux)),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// NewFromConfig builds a server from application configuration.
func NewFromConfig(ctx context.Context, cfg config.Config) (*Server, error) {
	return New(ctx, Config{
		Port:           cfg.Port,
		DatabaseURL:    cfg.DatabaseURL,
		OffersFile:     cfg.OffersFile,
		CandidateLimit: cfg.CandidateLimit,
		Verbose:        cfg.Verbose,
	})
}

// Start begins listening for requests and blocks until an interrupt or
// SIGTERM triggers graceful shutdown.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if s.store != nil {
		s.store.Close()
	}
	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// jsonResponse writes a JSON response with the given status code
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
