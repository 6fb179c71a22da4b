package louvain

import (
	"github.com/gilchrisn/louvain-engine/pkg/graph"
)

// VertexWeights returns the total edge weight of each vertex, indexed by
// vertex key. Self-loops contribute their weight once.
func VertexWeights(g *graph.Graph) []float64 {
	vtot := make([]float64, g.Span())
	g.ForEachVertexKey(func(u int) {
		g.ForEachEdge(u, func(v int, w float64) {
			vtot[u] += w
		})
	})
	return vtot
}

// InitializeCommunities places every live vertex in its own community and
// seeds the community weights from the vertex weights. The community map is
// identity over the whole key space so that dead keys stay stable under
// membership lifting.
func InitializeCommunities(g *graph.Graph, vtot []float64) (vcom []int, ctot []float64) {
	span := g.Span()
	vcom = make([]int, span)
	ctot = make([]float64, span)
	for u := 0; u < span; u++ {
		vcom[u] = u
	}
	g.ForEachVertexKey(func(u int) {
		ctot[u] = vtot[u]
	})
	return vcom, ctot
}

// CommunityWeights recomputes the total weight of each community from an
// externally supplied community map, e.g. when re-clustering after a batch
// update.
func CommunityWeights(g *graph.Graph, vcom []int, vtot []float64) []float64 {
	ctot := make([]float64, g.Span())
	g.ForEachVertexKey(func(u int) {
		ctot[vcom[u]] += vtot[u]
	})
	return ctot
}

// totalEdgeWeight is the M of the modularity formula: half the directed
// edge weight sum, so a self-loop of weight w counts w/2.
func totalEdgeWeight(vtot []float64) float64 {
	sum := 0.0
	for _, w := range vtot {
		sum += w
	}
	return sum / 2
}
