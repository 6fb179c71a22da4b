package louvain

import (
	"github.com/rs/zerolog"

	"github.com/gilchrisn/louvain-engine/pkg/graph"
)

// invalidCommunity marks "no beneficial move found". Community 0 is a legal
// move target.
const invalidCommunity = -1

// chooseCommunity picks the scanned community with the best positive
// modularity gain for vertex u. Ties keep the first-encountered candidate
// (strict greater-than). Returns invalidCommunity and 0 when no candidate
// improves on staying put.
func chooseCommunity(u int, vcom []int, vtot, ctot []float64, s *scratch, m, r float64) (int, float64) {
	d := vcom[u]
	best := invalidCommunity
	gain := 0.0
	for _, c := range s.vcs {
		if c == d {
			continue
		}
		e := deltaModularity(s.vcout[c], s.vcout[d], vtot[u], ctot[c], ctot[d], m, r)
		if e > gain {
			gain = e
			best = c
		}
	}
	return best, gain
}

// changeCommunity moves u into community c, keeping the community weight
// totals in sync with the membership.
func changeCommunity(u, c int, vcom []int, ctot, vtot []float64) {
	d := vcom[u]
	ctot[d] -= vtot[u]
	ctot[c] += vtot[u]
	vcom[u] = c
}

// localMove runs the local-moving phase: sweep every live vertex in native
// key order, moving each to its best neighboring community. Moves take
// effect immediately, so later vertices in the same sweep observe earlier
// moves. The phase stops when the L1 sum of per-vertex best gains in a
// sweep drops to the tolerance e, or after maxIterations sweeps. A non-nil
// affected mask restricts the sweep to the marked vertices.
//
// Returns the number of completed sweeps.
func localMove(g *graph.Graph, vcom []int, ctot, vtot []float64, s *scratch, affected []bool, m, r, e float64, maxIterations int, logger zerolog.Logger) int {
	iterations := 0
	for iterations < maxIterations {
		el := 0.0
		g.ForEachVertexKey(func(u int) {
			if affected != nil && !affected[u] {
				return
			}
			s.clear()
			s.scan(g, u, vcom, false)
			c, gain := chooseCommunity(u, vcom, vtot, ctot, s, m, r)
			if c != invalidCommunity {
				changeCommunity(u, c, vcom, ctot, vtot)
			}
			el += gain
		})
		iterations++
		logger.Debug().
			Int("iteration", iterations).
			Float64("gain_sum", el).
			Msg("local moving sweep")
		if el <= e {
			break
		}
	}
	return iterations
}
