package louvain

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/gilchrisn/louvain-engine/pkg/graph"
)

// Run executes the complete Louvain algorithm: local moving to convergence,
// community aggregation, and repeat until a pass stops improving modularity
// by more than the pass tolerance or stops compressing the graph. The
// returned membership maps every leaf vertex key to its top-level community.
//
// The graph is borrowed read-only. With repeat > 1 the full solve is re-run
// and the last result returned, matching the timing-loop semantics of the
// repeat option.
func Run(g *graph.Graph, cfg *Config) (*Result, error) {
	if cfg == nil {
		cfg = NewConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("invalid graph: %w", err)
	}
	logger := cfg.CreateLogger()

	repeat := cfg.Repeat()
	if repeat < 1 {
		repeat = 1
	}
	var res *Result
	for i := 0; i < repeat; i++ {
		res = solve(g, cfg, logger, nil, nil)
	}
	return res, nil
}

// solve is the multi-pass driver shared by Run and RunDynamic. A non-nil
// initial membership seeds the community state instead of singletons; a
// non-nil affected mask restricts the first local-moving phase.
func solve(g *graph.Graph, cfg *Config, logger zerolog.Logger, initial []int, affected []bool) *Result {
	start := time.Now()
	span := g.Span()

	membership := make([]int, span)
	for i := range membership {
		membership[i] = i
	}
	res := &Result{Membership: membership}

	vtot := VertexWeights(g)
	m := totalEdgeWeight(vtot)
	r := cfg.Resolution()
	if m <= 0 {
		// No edge mass: every vertex keeps its own community.
		if initial != nil {
			copy(membership, initial)
		}
		res.RuntimeMS = time.Since(start).Milliseconds()
		return res
	}

	var vcom []int
	var ctot []float64
	if initial != nil {
		vcom = make([]int, span)
		copy(vcom, initial)
		ctot = CommunityWeights(g, vcom, vtot)
	} else {
		vcom, ctot = InitializeCommunities(g, vtot)
	}

	logger.Info().
		Int("vertices", g.Order()).
		Float64("edge_mass", m).
		Float64("resolution", r).
		Msg("starting solve")

	cur := g
	s := newScratch(span)
	e := cfg.Tolerance()
	q := Modularity(cur, vcom, m, r)

	for res.Passes < cfg.MaxPasses() {
		levelStart := time.Now()
		iterations := localMove(cur, vcom, ctot, vtot, s, affected, m, r, e, cfg.MaxIterations(), logger)
		affected = nil // the restriction applies to the first phase only
		res.Iterations += iterations
		res.Passes++

		lookupCommunities(membership, vcom)
		communities := countCommunities(cur, vcom)
		qNew := Modularity(cur, vcom, m, r)

		res.Levels = append(res.Levels, LevelInfo{
			Level:       res.Passes - 1,
			Vertices:    cur.Order(),
			Communities: communities,
			Iterations:  iterations,
			Modularity:  qNew,
			RuntimeMS:   time.Since(levelStart).Milliseconds(),
		})
		logger.Info().
			Int("pass", res.Passes).
			Int("vertices", cur.Order()).
			Int("communities", communities).
			Int("iterations", iterations).
			Float64("modularity", qNew).
			Msg("pass completed")

		if communities == cur.Order() || qNew-q <= cfg.PassTolerance() {
			q = qNew
			break
		}
		q = qNew

		cur = Aggregate(cur, vcom)
		vtot = VertexWeights(cur)
		vcom, ctot = InitializeCommunities(cur, vtot)
		e *= cfg.ToleranceDeclineFactor()
	}

	res.Modularity = q
	res.RuntimeMS = time.Since(start).Milliseconds()
	return res
}

// countCommunities counts distinct community ids among live vertices.
func countCommunities(g *graph.Graph, vcom []int) int {
	seen := make([]bool, g.Span())
	n := 0
	g.ForEachVertexKey(func(u int) {
		if !seen[vcom[u]] {
			seen[vcom[u]] = true
			n++
		}
	})
	return n
}
