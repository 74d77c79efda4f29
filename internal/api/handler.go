package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.opentelemetry.io/otel/attribute"

	"github.com/authentiview/trustengine/internal/assistant"
	"github.com/authentiview/trustengine/internal/catalog"
	"github.com/authentiview/trustengine/internal/engine"
	"github.com/authentiview/trustengine/internal/tracing"
	"github.com/authentiview/trustengine/pkg/logging"
)

// Handler handles HTTP requests.
type Handler struct {
	engine    *engine.Engine
	catalog   *catalog.Catalog
	assistant *assistant.Assistant
	logger    *slog.Logger
	mux       *http.ServeMux
}

// NewHandler creates the API handler with CORS support and metrics.
func NewHandler(eng *engine.Engine, cat *catalog.Catalog, asst *assistant.Assistant, logger *slog.Logger) http.Handler {
	h := &Handler{
		engine:    eng,
		catalog:   cat,
		assistant: asst,
		logger:    logger,
		mux:       http.NewServeMux(),
	}
	h.setupRoutes()

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})
	return c.Handler(h.mux)
}

func (h *Handler) setupRoutes() {
	h.mux.Handle("/metrics", promhttp.Handler())
	h.mux.HandleFunc("/api/analyze/review", h.handleAnalyzeReview)
	h.mux.HandleFunc("/api/analyze/product", h.handleAnalyzeProduct)
	h.mux.HandleFunc("/api/analyze/reviewer", h.handleAnalyzeReviewer)
	h.mux.HandleFunc("/api/products", h.handleListProducts)
	h.mux.HandleFunc("/api/reviewers", h.handleListReviewers)
	h.mux.HandleFunc("/api/assistant", h.handleAssistant)
	h.mux.HandleFunc("/health", h.handleHealth)
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, map[string]string{
		"status": "ok",
		"time":   time.Now().Format(time.RFC3339),
	}, http.StatusOK)
}

func (h *Handler) handleAnalyzeReview(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		Text   string `json:"text"`
		Rating int    `json:"rating"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	tracing.SetSpanAttributes(r.Context(),
		attribute.Int("review.text_length", len(req.Text)),
		attribute.Int("review.rating", req.Rating))

	start := time.Now()
	result, err := h.engine.AnalyzeReview(req.Text, req.Rating)
	if err != nil {
		switch {
		case errors.Is(err, engine.ErrEmptyText):
			analysisErrors.WithLabelValues("review", "empty_text").Inc()
		case errors.Is(err, engine.ErrInvalidRating):
			analysisErrors.WithLabelValues("review", "invalid_rating").Inc()
		}
		respondError(w, err.Error(), http.StatusBadRequest)
		return
	}
	analysisDuration.WithLabelValues("review").Observe(time.Since(start).Seconds())
	analysesTotal.WithLabelValues("review", string(result.Verdict)).Inc()

	result.ID = uuid.NewString()
	result.CreatedAt = time.Now().UTC()
	respondJSON(w, result, http.StatusOK)
}

func (h *Handler) handleAnalyzeProduct(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		ProductID string `json:"product_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.ProductID == "" {
		respondError(w, "product_id is required", http.StatusBadRequest)
		return
	}

	series, distribution, err := h.catalog.ProductData(req.ProductID)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			analysisErrors.WithLabelValues("product", "unknown_id").Inc()
			respondError(w, "product not found", http.StatusNotFound)
			return
		}
		logging.HTTPErrorLogger(h.logger, http.StatusInternalServerError, err, r)
		respondError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	tracing.SetSpanAttributes(r.Context(), attribute.String("product.id", req.ProductID))

	start := time.Now()
	result := h.engine.AnalyzeProduct(series, distribution)
	analysisDuration.WithLabelValues("product").Observe(time.Since(start).Seconds())
	analysesTotal.WithLabelValues("product", string(result.Verdict)).Inc()

	result.ID = uuid.NewString()
	result.CreatedAt = time.Now().UTC()
	respondJSON(w, result, http.StatusOK)
}

func (h *Handler) handleAnalyzeReviewer(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		ReviewerID string `json:"reviewer_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.ReviewerID == "" {
		respondError(w, "reviewer_id is required", http.StatusBadRequest)
		return
	}

	metrics, activity, radar, err := h.catalog.ReviewerData(req.ReviewerID)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			analysisErrors.WithLabelValues("reviewer", "unknown_id").Inc()
			respondError(w, "reviewer not found", http.StatusNotFound)
			return
		}
		logging.HTTPErrorLogger(h.logger, http.StatusInternalServerError, err, r)
		respondError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	tracing.SetSpanAttributes(r.Context(), attribute.String("reviewer.id", req.ReviewerID))

	start := time.Now()
	result := h.engine.AnalyzeReviewer(metrics)
	analysisDuration.WithLabelValues("reviewer").Observe(time.Since(start).Seconds())
	analysesTotal.WithLabelValues("reviewer", string(result.Verdict)).Inc()

	result.ID = uuid.NewString()
	result.CreatedAt = time.Now().UTC()
	result.Activity = activity
	result.Radar = radar
	respondJSON(w, result, http.StatusOK)
}

func (h *Handler) handleListProducts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	respondJSON(w, h.catalog.Products(), http.StatusOK)
}

func (h *Handler) handleListReviewers(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	respondJSON(w, h.catalog.Reviewers(), http.StatusOK)
}

func (h *Handler) handleAssistant(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Message == "" {
		respondError(w, "message is required", http.StatusBadRequest)
		return
	}

	respondJSON(w, map[string]string{
		"reply": h.assistant.Respond(req.Message),
	}, http.StatusOK)
}

// respondJSON sends a JSON response.
func respondJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// respondError sends an error response.
func respondError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]string{
		"error": message,
	})
}
