package api

import (
	"fmt"
	"time"

	"github.com/gilchrisn/louvain-engine/pkg/graph"
	"github.com/gilchrisn/louvain-engine/pkg/louvain"
)

// EdgeInput is one undirected edge of a submitted graph. An omitted or zero
// weight defaults to 1.
type EdgeInput struct {
	Source int     `json:"source"`
	Target int     `json:"target"`
	Weight float64 `json:"weight,omitempty"`
}

// ClusterOptions overrides solver defaults; nil fields keep them.
type ClusterOptions struct {
	Resolution             *float64 `json:"resolution,omitempty"`
	Tolerance              *float64 `json:"tolerance,omitempty"`
	PassTolerance          *float64 `json:"pass_tolerance,omitempty"`
	ToleranceDeclineFactor *float64 `json:"tolerance_decline_factor,omitempty"`
	MaxIterations          *int     `json:"max_iterations,omitempty"`
	MaxPasses              *int     `json:"max_passes,omitempty"`
	Repeat                 *int     `json:"repeat,omitempty"`
}

// ClusterRequest is the payload of POST /api/v1/cluster and /api/v1/jobs.
type ClusterRequest struct {
	Edges   []EdgeInput    `json:"edges"`
	Options ClusterOptions `json:"options"`
}

// ClusterResponse is the solver output returned to clients.
type ClusterResponse struct {
	Membership     []int   `json:"membership"`
	NumCommunities int     `json:"num_communities"`
	Modularity     float64 `json:"modularity"`
	Iterations     int     `json:"iterations"`
	Passes         int     `json:"passes"`
	RuntimeMS      int64   `json:"runtime_ms"`
}

// JobStatus is the lifecycle state of an asynchronous clustering job.
type JobStatus string

const (
	JobPending   JobStatus = "pending"
	JobRunning   JobStatus = "running"
	JobCompleted JobStatus = "completed"
	JobFailed    JobStatus = "failed"
)

// Job tracks an asynchronous clustering run.
type Job struct {
	ID          string           `json:"id"`
	Status      JobStatus        `json:"status"`
	SubmittedAt time.Time        `json:"submitted_at"`
	CompletedAt *time.Time       `json:"completed_at,omitempty"`
	Result      *ClusterResponse `json:"result,omitempty"`
	Error       string           `json:"error,omitempty"`
}

// buildGraph assembles the submitted edges into a graph.
func buildGraph(edges []EdgeInput) (*graph.Graph, error) {
	if len(edges) == 0 {
		return nil, fmt.Errorf("edge list is empty")
	}
	g := graph.New()
	for i, e := range edges {
		if e.Source < 0 || e.Target < 0 {
			return nil, fmt.Errorf("edge %d has negative vertex id", i)
		}
		w := e.Weight
		if w == 0 {
			w = 1
		}
		if err := g.AddEdge(e.Source, e.Target, w); err != nil {
			return nil, fmt.Errorf("edge %d: %w", i, err)
		}
	}
	return g, nil
}

// buildConfig maps request options onto a solver config.
func buildConfig(opts ClusterOptions) *louvain.Config {
	cfg := louvain.NewConfig()
	if opts.Resolution != nil {
		cfg.Set("algorithm.resolution", *opts.Resolution)
	}
	if opts.Tolerance != nil {
		cfg.Set("algorithm.tolerance", *opts.Tolerance)
	}
	if opts.PassTolerance != nil {
		cfg.Set("algorithm.pass_tolerance", *opts.PassTolerance)
	}
	if opts.ToleranceDeclineFactor != nil {
		cfg.Set("algorithm.tolerance_decline_factor", *opts.ToleranceDeclineFactor)
	}
	if opts.MaxIterations != nil {
		cfg.Set("algorithm.max_iterations", *opts.MaxIterations)
	}
	if opts.MaxPasses != nil {
		cfg.Set("algorithm.max_passes", *opts.MaxPasses)
	}
	if opts.Repeat != nil {
		cfg.Set("algorithm.repeat", *opts.Repeat)
	}
	return cfg
}

// toResponse converts a solver result. Communities are counted over live
// vertices only; dead keys in the span keep their identity assignment.
func toResponse(g *graph.Graph, res *louvain.Result) *ClusterResponse {
	seen := make(map[int]struct{})
	g.ForEachVertexKey(func(u int) {
		seen[res.Membership[u]] = struct{}{}
	})
	return &ClusterResponse{
		Membership:     res.Membership,
		NumCommunities: len(seen),
		Modularity:     res.Modularity,
		Iterations:     res.Iterations,
		Passes:         res.Passes,
		RuntimeMS:      res.RuntimeMS,
	}
}
