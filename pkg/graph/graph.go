package graph

import (
	"fmt"
)

// Graph is a weighted undirected graph stored as paired adjacency and weight
// slices indexed by vertex key. Keys live in [0, Span()); not every key needs
// to name a live vertex, which lets community ids share the vertex key space
// across aggregation levels without renumbering.
//
// Undirected edges are stored as two directed half-edges of equal weight;
// self-loops are stored once. Parallel edges are allowed and their weights
// accumulate wherever the graph is consumed.
type Graph struct {
	exists  []bool
	targets [][]int
	weights [][]float64
	order   int
	total   float64
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{}
}

// NewWithSpan creates a graph whose key space is pre-grown to [0, span),
// with no live vertices.
func NewWithSpan(span int) *Graph {
	return &Graph{
		exists:  make([]bool, span),
		targets: make([][]int, span),
		weights: make([][]float64, span),
	}
}

// Span returns the size of the vertex key space (max key + 1).
func (g *Graph) Span() int {
	return len(g.exists)
}

// Order returns the number of live vertices.
func (g *Graph) Order() int {
	return g.order
}

// TotalWeight returns the sum of all stored directed edge weights. For an
// undirected graph this is twice the off-diagonal edge mass plus each
// self-loop weight once.
func (g *Graph) TotalWeight() float64 {
	return g.total
}

// Degree returns the number of stored half-edges at u, self-loops included.
func (g *Graph) Degree(u int) int {
	if u < 0 || u >= len(g.targets) {
		return 0
	}
	return len(g.targets[u])
}

func (g *Graph) grow(span int) {
	if span <= len(g.exists) {
		return
	}
	exists := make([]bool, span)
	targets := make([][]int, span)
	weights := make([][]float64, span)
	copy(exists, g.exists)
	copy(targets, g.targets)
	copy(weights, g.weights)
	g.exists, g.targets, g.weights = exists, targets, weights
}

// AddVertex makes key u a live vertex, growing the key space if needed.
// Adding an existing vertex is a no-op.
func (g *Graph) AddVertex(u int) {
	if u < 0 {
		return
	}
	g.grow(u + 1)
	if !g.exists[u] {
		g.exists[u] = true
		g.order++
	}
}

// HasVertex reports whether key u names a live vertex.
func (g *Graph) HasVertex(u int) bool {
	return u >= 0 && u < len(g.exists) && g.exists[u]
}

// AddDirectedEdge stores a single half-edge u -> v. Most callers want
// AddEdge; the aggregation phase uses this directly because both endpoint
// communities emit their own matching halves.
func (g *Graph) AddDirectedEdge(u, v int, w float64) error {
	if u < 0 || v < 0 {
		return fmt.Errorf("negative vertex key on edge %d-%d", u, v)
	}
	if w < 0 {
		return fmt.Errorf("negative edge weight %f on edge %d-%d", w, u, v)
	}
	g.AddVertex(u)
	g.AddVertex(v)
	g.targets[u] = append(g.targets[u], v)
	g.weights[u] = append(g.weights[u], w)
	g.total += w
	return nil
}

// AddEdge adds an undirected edge between u and v, creating either endpoint
// if needed. Self-loops are stored once and contribute their weight once.
func (g *Graph) AddEdge(u, v int, w float64) error {
	if err := g.AddDirectedEdge(u, v, w); err != nil {
		return err
	}
	if u != v {
		return g.AddDirectedEdge(v, u, w)
	}
	return nil
}

// HasEdge reports whether at least one u -> v half-edge is stored.
func (g *Graph) HasEdge(u, v int) bool {
	if u < 0 || u >= len(g.targets) {
		return false
	}
	for _, t := range g.targets[u] {
		if t == v {
			return true
		}
	}
	return false
}

// EdgeValue returns the weight of the first stored u -> v half-edge, or 0
// if there is none.
func (g *Graph) EdgeValue(u, v int) float64 {
	if u < 0 || u >= len(g.targets) {
		return 0
	}
	for i, t := range g.targets[u] {
		if t == v {
			return g.weights[u][i]
		}
	}
	return 0
}

// SetEdgeValue updates the weight of an existing undirected edge on both
// directions. Returns an error if the edge does not exist.
func (g *Graph) SetEdgeValue(u, v int, w float64) error {
	if w < 0 {
		return fmt.Errorf("negative edge weight %f on edge %d-%d", w, u, v)
	}
	if !g.HasEdge(u, v) {
		return fmt.Errorf("edge %d-%d does not exist", u, v)
	}
	g.setHalf(u, v, w)
	if u != v {
		g.setHalf(v, u, w)
	}
	return nil
}

func (g *Graph) setHalf(u, v int, w float64) {
	for i, t := range g.targets[u] {
		if t == v {
			g.total += w - g.weights[u][i]
			g.weights[u][i] = w
			return
		}
	}
}

// RemoveEdge deletes every u-v half-edge in both directions.
func (g *Graph) RemoveEdge(u, v int) {
	g.removeHalf(u, v)
	if u != v {
		g.removeHalf(v, u)
	}
}

func (g *Graph) removeHalf(u, v int) {
	if u < 0 || u >= len(g.targets) {
		return
	}
	targets := g.targets[u][:0]
	weights := g.weights[u][:0]
	for i, t := range g.targets[u] {
		if t == v {
			g.total -= g.weights[u][i]
			continue
		}
		targets = append(targets, t)
		weights = append(weights, g.weights[u][i])
	}
	g.targets[u] = targets
	g.weights[u] = weights
}

// ForEachVertexKey calls f for every live vertex key in increasing order.
func (g *Graph) ForEachVertexKey(f func(u int)) {
	for u, ok := range g.exists {
		if ok {
			f(u)
		}
	}
}

// ForEachEdge calls f for every half-edge leaving u.
func (g *Graph) ForEachEdge(u int, f func(v int, w float64)) {
	if u < 0 || u >= len(g.targets) {
		return
	}
	for i, v := range g.targets[u] {
		f(v, g.weights[u][i])
	}
}

// ForEachEdgeKey calls f with the target key of every half-edge leaving u.
func (g *Graph) ForEachEdgeKey(u int, f func(v int)) {
	if u < 0 || u >= len(g.targets) {
		return
	}
	for _, v := range g.targets[u] {
		f(v)
	}
}

// Clone returns a deep copy of the graph.
func (g *Graph) Clone() *Graph {
	c := &Graph{
		exists:  make([]bool, len(g.exists)),
		targets: make([][]int, len(g.targets)),
		weights: make([][]float64, len(g.weights)),
		order:   g.order,
		total:   g.total,
	}
	copy(c.exists, g.exists)
	for u := range g.targets {
		if g.targets[u] == nil {
			continue
		}
		c.targets[u] = make([]int, len(g.targets[u]))
		c.weights[u] = make([]float64, len(g.weights[u]))
		copy(c.targets[u], g.targets[u])
		copy(c.weights[u], g.weights[u])
	}
	return c
}

// Validate checks structural consistency: adjacency and weight slices in
// sync, targets inside the key space and live, and no negative weights.
func (g *Graph) Validate() error {
	span := len(g.exists)
	for u := 0; u < span; u++ {
		if len(g.targets[u]) != len(g.weights[u]) {
			return fmt.Errorf("adjacency and weight slices inconsistent for vertex %d", u)
		}
		if len(g.targets[u]) > 0 && !g.exists[u] {
			return fmt.Errorf("dead vertex %d has edges", u)
		}
		for i, v := range g.targets[u] {
			if v < 0 || v >= span {
				return fmt.Errorf("edge %d-%d points outside key space [0,%d)", u, v, span)
			}
			if !g.exists[v] {
				return fmt.Errorf("edge %d-%d points at dead vertex", u, v)
			}
			if g.weights[u][i] < 0 {
				return fmt.Errorf("negative edge weight %f on edge %d-%d", g.weights[u][i], u, v)
			}
		}
	}
	return nil
}
