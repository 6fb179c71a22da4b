package graph

import (
	gograph "gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
)

// FromGonum builds a Graph from a gonum weighted undirected graph. Node IDs
// become vertex keys, so the span is the largest node ID plus one.
func FromGonum(src gograph.WeightedUndirected) *Graph {
	g := New()
	nodes := src.Nodes()
	for nodes.Next() {
		g.AddVertex(int(nodes.Node().ID()))
	}
	nodes.Reset()
	for nodes.Next() {
		uid := nodes.Node().ID()
		to := src.From(uid)
		for to.Next() {
			vid := to.Node().ID()
			if vid < uid {
				continue
			}
			if e := src.WeightedEdge(uid, vid); e != nil {
				g.AddEdge(int(uid), int(vid), e.Weight())
			}
		}
	}
	return g
}

// ToGonum converts the graph into a gonum simple.WeightedUndirectedGraph.
// Self-loops are dropped: simple graphs reject them.
func ToGonum(g *Graph) *simple.WeightedUndirectedGraph {
	dst := simple.NewWeightedUndirectedGraph(0, 0)
	g.ForEachVertexKey(func(u int) {
		dst.AddNode(simple.Node(u))
	})
	g.ForEachVertexKey(func(u int) {
		g.ForEachEdge(u, func(v int, w float64) {
			if v < u || v == u {
				return
			}
			dst.SetWeightedEdge(dst.NewWeightedEdge(simple.Node(u), simple.Node(v), w))
		})
	})
	return dst
}
