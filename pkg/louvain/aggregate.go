package louvain

import (
	"github.com/gilchrisn/louvain-engine/pkg/graph"
)

// communityVertices builds the community -> members inverted index in a
// single pass over the live vertices.
func communityVertices(g *graph.Graph, vcom []int) [][]int {
	comv := make([][]int, g.Span())
	g.ForEachVertexKey(func(u int) {
		c := vcom[u]
		comv[c] = append(comv[c], u)
	})
	return comv
}

// Aggregate condenses each community into a super-vertex. The condensed
// edge weight between communities c and d is the summed weight of all
// original edges between their members; c == d yields the super-vertex's
// self-loop carrying the within-community mass. Community ids keep the
// current key space, so the span is preserved and membership lifting stays
// a plain index substitution.
//
// Because members are scanned with self-loops enabled and both endpoint
// communities emit their own half-edges, each cross-community pair produces
// matching directed halves of equal weight and the total edge mass is
// unchanged.
func Aggregate(g *graph.Graph, vcom []int) *graph.Graph {
	span := g.Span()
	a := graph.NewWithSpan(span)
	comv := communityVertices(g, vcom)
	s := newScratch(span)
	for c := 0; c < span; c++ {
		if len(comv[c]) == 0 {
			continue
		}
		s.clear()
		for _, u := range comv[c] {
			s.scan(g, u, vcom, true)
		}
		a.AddVertex(c)
		for _, d := range s.vcs {
			a.AddDirectedEdge(c, d, s.vcout[d])
		}
	}
	return a
}

// lookupCommunities lifts a leaf membership through one aggregation level:
// every entry is replaced by its community at the next level.
func lookupCommunities(a, vcom []int) {
	for i, v := range a {
		a[i] = vcom[v]
	}
}
