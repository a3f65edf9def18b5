// Package api - Thin HTTP layer over the estimation engine.
// The API is only responsible for input ingestion, engine orchestration and
// output serialization; it never performs cost logic.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"archcost/core/estimate"
	"archcost/core/pricing"
	"archcost/core/types"
	"archcost/db/ingestion"
	"archcost/internal/config"
	"archcost/internal/errors"
	"archcost/internal/logging"
	"archcost/internal/notify"
)

// Server is the API server
type Server struct {
	mux            *http.ServeMux
	version        string
	service        *pricing.Service
	store          *pricing.Store
	pipeline       *ingestion.Pipeline
	mailer         *notify.Mailer
	auth           *Authenticator
	allowedOrigins []string
}

// NewServer creates the API server. store, pipeline and mailer may be nil;
// the endpoints that depend on them degrade gracefully.
func NewServer(version string, cfg *config.Config, service *pricing.Service, store *pricing.Store, pipeline *ingestion.Pipeline, mailer *notify.Mailer) *Server {
	s := &Server{
		mux:            http.NewServeMux(),
		version:        version,
		service:        service,
		store:          store,
		pipeline:       pipeline,
		mailer:         mailer,
		auth:           NewAuthenticator(cfg.Admin),
		allowedOrigins: cfg.Server.AllowedOrigins,
	}
	s.registerRoutes()
	return s
}

// registerRoutes registers all API routes
func (s *Server) registerRoutes() {
	// Core endpoints
	s.mux.HandleFunc("POST /estimate", s.handleEstimate)
	s.mux.HandleFunc("GET /health", s.handleHealth)

	// Supporting endpoints
	s.mux.HandleFunc("GET /version", s.handleVersion)
	s.mux.HandleFunc("GET /providers", s.handleProviders)
	s.mux.HandleFunc("GET /pricing/status", s.handlePricingStatus)
	s.mux.HandleFunc("POST /contact", s.handleContact)

	// Admin endpoints
	s.mux.HandleFunc("POST /admin/login", s.handleLogin)
	s.mux.HandleFunc("POST /admin/refresh-prices", s.requireAuth(s.handleRefreshPrices))
}

// handleEstimate handles POST /estimate
func (s *Server) handleEstimate(w http.ResponseWriter, r *http.Request) {
	var req EstimateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, "INVALID_JSON", err.Error(), http.StatusBadRequest)
		return
	}

	if err := validateEstimateRequest(&req); err != nil {
		s.writeError(w, string(errors.TypeInput), err.Error(), http.StatusBadRequest)
		return
	}

	result := estimate.Estimate(
		s.service.Current(),
		types.Architecture(req.Architecture),
		req.Traffic,
		req.Currency,
	)
	s.writeJSON(w, result, http.StatusOK)
}

// handleHealth handles GET /health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]interface{}{
		"status":  "healthy",
		"version": s.version,
		"time":    time.Now().UTC().Format(time.RFC3339),
	}, http.StatusOK)
}

// handleVersion handles GET /version
func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{
		"version":     s.version,
		"engine":      "archcost",
		"api_version": "v1",
	}, http.StatusOK)
}

// handleProviders handles GET /providers: the selectable architectures,
// cloud providers with their cost multipliers, and supported currencies.
func (s *Server) handleProviders(w http.ResponseWriter, r *http.Request) {
	table := s.service.Current()

	currencies := table.CurrencyRates()
	codes := make([]string, 0, len(currencies))
	for code := range currencies {
		codes = append(codes, code)
	}

	s.writeJSON(w, map[string]interface{}{
		"architectures": []string{
			types.ArchMonolith.String(),
			types.ArchMicroservices.String(),
			types.ArchServerless.String(),
			types.ArchHybrid.String(),
		},
		"cloud_providers": table.CloudMultipliers(),
		"currencies":      codes,
	}, http.StatusOK)
}

// handlePricingStatus handles GET /pricing/status: active table metadata, the
// last refresh outcome and the snapshot archive.
func (s *Server) handlePricingStatus(w http.ResponseWriter, r *http.Request) {
	meta := s.service.Current().Meta()

	resp := map[string]interface{}{
		"last_updated": meta.UpdatedAt,
		"sources":      meta.Sources,
	}
	if s.pipeline != nil {
		resp["refresh_job"] = s.pipeline.Status()
	}
	if s.store != nil {
		history, err := s.store.History()
		if err != nil {
			logging.Warn("failed to list snapshot archive", zap.Error(err))
		} else {
			resp["archive"] = history
		}
	}
	s.writeJSON(w, resp, http.StatusOK)
}

// handleLogin handles POST /admin/login
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, "INVALID_JSON", err.Error(), http.StatusBadRequest)
		return
	}
	if err := validate.Struct(req); err != nil {
		s.writeError(w, string(errors.TypeInput), "username and password are required", http.StatusBadRequest)
		return
	}

	token, expiresIn, err := s.auth.Login(req.Username, req.Password)
	if err != nil {
		logging.Warn("admin login rejected", zap.String("username", req.Username))
		s.writeError(w, string(errors.TypeAuth), "invalid username or password", http.StatusUnauthorized)
		return
	}

	s.writeJSON(w, LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   expiresIn,
	}, http.StatusOK)
}

// handleRefreshPrices handles POST /admin/refresh-prices. The refresh runs in
// the background; clients poll GET /pricing/status for the outcome.
func (s *Server) handleRefreshPrices(w http.ResponseWriter, r *http.Request) {
	if s.pipeline == nil {
		s.writeError(w, string(errors.TypePricing), "price refresh is not configured", http.StatusServiceUnavailable)
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()
		_ = s.pipeline.Run(ctx)
	}()

	s.writeJSON(w, map[string]string{
		"status": "refresh started",
	}, http.StatusAccepted)
}

// handleContact handles POST /contact
func (s *Server) handleContact(w http.ResponseWriter, r *http.Request) {
	var sub notify.ContactSubmission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		s.writeError(w, "INVALID_JSON", err.Error(), http.StatusBadRequest)
		return
	}
	if err := validate.Struct(sub); err != nil {
		s.writeError(w, string(errors.TypeInput), "name, email, subject and message are required", http.StatusBadRequest)
		return
	}

	sent := false
	if s.mailer != nil {
		sent = s.mailer.ContactNotification(r.Context(), sub)
	}
	s.writeJSON(w, map[string]interface{}{
		"received": true,
		"emailed":  sent,
	}, http.StatusOK)
}

func (s *Server) writeJSON(w http.ResponseWriter, data interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (s *Server) writeError(w http.ResponseWriter, code, message string, status int) {
	s.writeJSON(w, map[string]interface{}{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	}, status)
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.withMiddleware(s.mux).ServeHTTP(w, r)
}
