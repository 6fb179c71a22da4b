package louvain

import (
	"github.com/gilchrisn/louvain-engine/pkg/graph"
)

// deltaModularity is the closed-form modularity change for moving a vertex
// with total weight vu from community d to community c, where kc and kd are
// the vertex's edge weight into c and d (self-loops excluded) and the
// community totals still count the vertex in d.
func deltaModularity(kc, kd, vu, ctotC, ctotD, m, r float64) float64 {
	return (kc-kd)/m - r*vu*(ctotC-ctotD+vu)/(2*m*m)
}

// Modularity computes the global modularity of a clustering:
//
//	Q = sum_c [ in(c)/(2M) - R * (ctot(c)/(2M))^2 ]
//
// with in(c) the directed weight sum of intra-community edges. Every
// accepted local move raises this quantity by exactly its deltaModularity.
func Modularity(g *graph.Graph, vcom []int, m, r float64) float64 {
	if m <= 0 {
		return 0
	}
	span := g.Span()
	in := make([]float64, span)
	ctot := make([]float64, span)
	g.ForEachVertexKey(func(u int) {
		c := vcom[u]
		g.ForEachEdge(u, func(v int, w float64) {
			if vcom[v] == c {
				in[c] += w
			}
			ctot[c] += w
		})
	})
	q := 0.0
	for c := 0; c < span; c++ {
		if ctot[c] == 0 {
			continue
		}
		frac := ctot[c] / (2 * m)
		q += in[c]/(2*m) - r*frac*frac
	}
	return q
}
