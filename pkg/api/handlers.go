package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"github.com/gilchrisn/louvain-engine/pkg/louvain"
	"github.com/gilchrisn/louvain-engine/pkg/metrics"
)

// Handlers contains HTTP request handlers.
type Handlers struct {
	store    *JobStore
	metrics  *metrics.Registry
	maxEdges int
}

// NewHandlers creates new API handlers. maxEdges caps the size of submitted
// edge lists; zero means unlimited.
func NewHandlers(store *JobStore, reg *metrics.Registry, maxEdges int) *Handlers {
	return &Handlers{store: store, metrics: reg, maxEdges: maxEdges}
}

// NewRouter wires handlers, middleware and the metrics endpoint.
func NewRouter(h *Handlers, reg *metrics.Registry) *mux.Router {
	r := mux.NewRouter()
	r.Use(RecoveryMiddleware, LoggingMiddleware, MetricsMiddleware(reg), CORSMiddleware)

	v1 := r.PathPrefix("/api/v1").Subrouter()
	v1.HandleFunc("/cluster", h.Cluster).Methods(http.MethodPost, http.MethodOptions)
	v1.HandleFunc("/jobs", h.SubmitJob).Methods(http.MethodPost, http.MethodOptions)
	v1.HandleFunc("/jobs/{id}", h.GetJob).Methods(http.MethodGet, http.MethodOptions)

	r.HandleFunc("/health", h.Health).Methods(http.MethodGet)
	r.Handle("/metrics", reg.Handler()).Methods(http.MethodGet)
	return r
}

// Cluster runs the solver synchronously on the submitted edge list.
func (h *Handlers) Cluster(w http.ResponseWriter, r *http.Request) {
	var req ClusterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if h.maxEdges > 0 && len(req.Edges) > h.maxEdges {
		WriteError(w, http.StatusRequestEntityTooLarge, "Edge list too large", nil)
		return
	}

	resp, err := h.run(&req)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "Clustering failed", err)
		return
	}
	WriteJSON(w, http.StatusOK, resp)
}

// SubmitJob starts an asynchronous clustering run and returns its job id.
func (h *Handlers) SubmitJob(w http.ResponseWriter, r *http.Request) {
	var req ClusterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if len(req.Edges) == 0 {
		WriteError(w, http.StatusBadRequest, "Edge list is empty", nil)
		return
	}
	if h.maxEdges > 0 && len(req.Edges) > h.maxEdges {
		WriteError(w, http.StatusRequestEntityTooLarge, "Edge list too large", nil)
		return
	}

	job := h.store.Create()
	go func() {
		h.store.SetRunning(job.ID)
		resp, err := h.run(&req)
		if err != nil {
			log.Error().Str("job_id", job.ID).Err(err).Msg("Clustering job failed")
			h.store.SetError(job.ID, err.Error())
			return
		}
		h.store.SetResult(job.ID, resp)
	}()

	WriteJSON(w, http.StatusAccepted, job)
}

// GetJob returns the status or result of a job.
func (h *Handlers) GetJob(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	job, ok := h.store.Get(id)
	if !ok {
		WriteError(w, http.StatusNotFound, "Job not found", nil)
		return
	}
	WriteJSON(w, http.StatusOK, job)
}

// Health reports liveness.
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// run executes one clustering request and records solver metrics.
func (h *Handlers) run(req *ClusterRequest) (*ClusterResponse, error) {
	g, err := buildGraph(req.Edges)
	if err != nil {
		h.metrics.ClusteringRunsTotal.WithLabelValues("failed").Inc()
		return nil, err
	}

	start := time.Now()
	res, err := louvain.Run(g, buildConfig(req.Options))
	if err != nil {
		h.metrics.ClusteringRunsTotal.WithLabelValues("failed").Inc()
		return nil, err
	}

	resp := toResponse(g, res)
	h.metrics.ClusteringRunsTotal.WithLabelValues("completed").Inc()
	h.metrics.ClusteringDuration.Observe(time.Since(start).Seconds())
	h.metrics.CommunitiesFound.Set(float64(resp.NumCommunities))
	return resp, nil
}
