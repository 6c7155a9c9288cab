package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sleuth/internal/engine"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// ApiV1Router manages routes for API version 1.
// Exposes guilt queries, investigations, corpus listings and engine statistics.
// All endpoints follow a REST-like structure and answer with JSON.
type ApiV1Router struct {
	// engine: evaluates queries over the loaded corpus.
	engine *engine.Engine
	// gatherer: source of the /metrics exposition. Metrics are disabled when nil.
	gatherer prometheus.Gatherer
	logger   *slog.Logger
}

// Mux returns a configured *http.ServeMux with registered handlers.
// Registers the following routes:
// - GET /api/v1/suspects/{suspect}/crimes/{crime}: evaluates a suspect against a crime
// - GET /api/v1/suspects/{suspect}/facts: lists facts about a suspect
// - GET /api/v1/investigation: evaluates and ranks every pair
// - GET /api/v1/suspects, /api/v1/crimes, /api/v1/rules: corpus listings
// - DELETE /api/v1/cache: clears the query cache
// - GET /api/v1/cache/stats, /api/v1/stats: statistics
// - GET /metrics: Prometheus metrics (if enabled)
func (ar *ApiV1Router) Mux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/suspects/{suspect}/crimes/{crime}", ar.queryHandler)
	mux.HandleFunc("GET /api/v1/suspects/{suspect}/facts", ar.factsHandler)
	mux.HandleFunc("GET /api/v1/investigation", ar.investigationHandler)
	mux.HandleFunc("GET /api/v1/suspects", ar.suspectsHandler)
	mux.HandleFunc("GET /api/v1/crimes", ar.crimesHandler)
	mux.HandleFunc("GET /api/v1/rules", ar.rulesHandler)
	mux.HandleFunc("DELETE /api/v1/cache", ar.clearCacheHandler)
	mux.HandleFunc("GET /api/v1/cache/stats", ar.cacheStatsHandler)
	mux.HandleFunc("GET /api/v1/stats", ar.statsHandler)

	if ar.gatherer != nil {
		mux.Handle("GET /metrics", promhttp.HandlerFor(ar.gatherer, promhttp.HandlerOpts{}))
	}

	return mux
}

// queryHandler evaluates the suspect and crime taken from the URL path.
// Unknown identifiers are reported with status 404 when the engine runs in strict mode.
func (ar *ApiV1Router) queryHandler(w http.ResponseWriter, r *http.Request) {
	suspect, crime := r.PathValue("suspect"), r.PathValue("crime")

	result, err := ar.engine.IsGuilty(suspect, crime)
	if err != nil {
		var unknown *engine.UnknownIdentifierError
		if errors.As(err, &unknown) {
			ar.logger.Warn("Unknown identifier", "suspect", suspect, "crime", crime, "error", err)
			ar.writeError(w, http.StatusNotFound, err)
			return
		}

		ar.logger.Error("Query failed", "suspect", suspect, "crime", crime, "error", err)
		ar.writeError(w, http.StatusInternalServerError, err)
		return
	}

	ar.writeJSON(w, result)
}

func (ar *ApiV1Router) factsHandler(w http.ResponseWriter, r *http.Request) {
	ar.writeJSON(w, ar.engine.FactsForSuspect(r.PathValue("suspect")))
}

func (ar *ApiV1Router) investigationHandler(w http.ResponseWriter, _ *http.Request) {
	ar.writeJSON(w, ar.engine.InvestigateAll())
}

func (ar *ApiV1Router) suspectsHandler(w http.ResponseWriter, _ *http.Request) {
	ar.writeJSON(w, ar.engine.Suspects())
}

func (ar *ApiV1Router) crimesHandler(w http.ResponseWriter, _ *http.Request) {
	ar.writeJSON(w, ar.engine.Crimes())
}

func (ar *ApiV1Router) rulesHandler(w http.ResponseWriter, _ *http.Request) {
	ar.writeJSON(w, ar.engine.Rules())
}

func (ar *ApiV1Router) clearCacheHandler(w http.ResponseWriter, _ *http.Request) {
	ar.engine.ClearCache()
	w.WriteHeader(http.StatusNoContent)
}

func (ar *ApiV1Router) cacheStatsHandler(w http.ResponseWriter, _ *http.Request) {
	ar.writeJSON(w, ar.engine.CacheStats())
}

func (ar *ApiV1Router) statsHandler(w http.ResponseWriter, _ *http.Request) {
	ar.writeJSON(w, ar.engine.SystemStats())
}

// writeJSON marshals v and writes it with status 200.
func (ar *ApiV1Router) writeJSON(w http.ResponseWriter, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		ar.logger.Warn("Unable to marshal response", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(body)
}

type errorResponse struct {
	Error string `json:"error"`
}

func (ar *ApiV1Router) writeError(w http.ResponseWriter, status int, err error) {
	body, _ := json.Marshal(errorResponse{Error: err.Error()})
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(body)
}

// NewApiV1Router creates a new API v1 router.
// Parameters:
// - e: evaluation engine
// - gatherer: metrics source for /metrics (can be nil)
//
// Returns pointer to configured ApiV1Router.
func NewApiV1Router(e *engine.Engine, gatherer prometheus.Gatherer) *ApiV1Router {
	return &ApiV1Router{
		engine:   e,
		gatherer: gatherer,
		logger:   slog.Default().With("source", "ApiV1Router"),
	}
}
