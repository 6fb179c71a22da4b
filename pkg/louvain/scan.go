package louvain

import (
	"github.com/gilchrisn/louvain-engine/pkg/graph"
)

// scratch holds the per-vertex scan buffers: vcs is the compact list of
// distinct community ids touched by the current scan, vcout a dense sidecar
// mapping community id to the accumulated edge weight from the scanned
// vertex. Outside an active scan every vcout entry is zero and vcs is
// empty; clear restores that invariant by walking vcs instead of wiping the
// whole sidecar.
type scratch struct {
	vcs   []int
	vcout []float64
}

func newScratch(span int) *scratch {
	return &scratch{
		vcs:   make([]int, 0, 64),
		vcout: make([]float64, span),
	}
}

// scan accumulates the edge weight from u into each adjacent community.
// Self-loops are skipped during local moving (u's own weight must not pull
// it towards its current community) and included during aggregation, where
// they carry the within-community mass.
func (s *scratch) scan(g *graph.Graph, u int, vcom []int, includeSelf bool) {
	g.ForEachEdge(u, func(v int, w float64) {
		if !includeSelf && v == u {
			return
		}
		c := vcom[v]
		if s.vcout[c] == 0 {
			s.vcs = append(s.vcs, c)
		}
		s.vcout[c] += w
	})
}

// clear zeroes the touched sidecar entries and empties the community list.
// Must run before the buffers are reused for a different vertex.
func (s *scratch) clear() {
	for _, c := range s.vcs {
		s.vcout[c] = 0
	}
	s.vcs = s.vcs[:0]
}
