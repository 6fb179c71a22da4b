package louvain

import (
	"testing"

	"github.com/gilchrisn/louvain-engine/pkg/graph"
)

// edgeGraph builds a graph from (u, v, w) triples.
func edgeGraph(t *testing.T, edges [][3]float64) *graph.Graph {
	t.Helper()
	g := graph.New()
	for _, e := range edges {
		if err := g.AddEdge(int(e[0]), int(e[1]), e[2]); err != nil {
			t.Fatalf("AddEdge(%v): %v", e, err)
		}
	}
	return g
}

func triangle(t *testing.T) *graph.Graph {
	return edgeGraph(t, [][3]float64{{0, 1, 1}, {1, 2, 1}, {0, 2, 1}})
}

// bridgedTriangles is two unit-weight triangles joined by a 0.01 bridge.
func bridgedTriangles(t *testing.T) *graph.Graph {
	return edgeGraph(t, [][3]float64{
		{0, 1, 1}, {1, 2, 1}, {0, 2, 1},
		{3, 4, 1}, {4, 5, 1}, {3, 5, 1},
		{2, 3, 0.01},
	})
}

// assertPartition checks that the membership realizes exactly the expected
// vertex groups: same group iff same community.
func assertPartition(t *testing.T, membership []int, groups [][]int) {
	t.Helper()
	for _, group := range groups {
		for _, u := range group[1:] {
			if membership[u] != membership[group[0]] {
				t.Errorf("vertices %d and %d should share a community, got %d and %d",
					group[0], u, membership[group[0]], membership[u])
			}
		}
	}
	for i := 0; i < len(groups); i++ {
		for j := i + 1; j < len(groups); j++ {
			if membership[groups[i][0]] == membership[groups[j][0]] {
				t.Errorf("vertices %d and %d should be in different communities, both got %d",
					groups[i][0], groups[j][0], membership[groups[i][0]])
			}
		}
	}
}

func TestRunTriangle(t *testing.T) {
	res, err := Run(triangle(t), nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	assertPartition(t, res.Membership, [][]int{{0, 1, 2}})
	if len(res.Levels) == 0 {
		t.Fatal("expected at least one level")
	}
	if it := res.Levels[0].Iterations; it < 1 || it > 2 {
		t.Errorf("first-level iterations = %d, want 1 or 2", it)
	}
	if res.Modularity < 0 {
		t.Errorf("modularity = %f, want >= 0", res.Modularity)
	}
}

func TestRunBridgedTriangles(t *testing.T) {
	res, err := Run(bridgedTriangles(t), nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	assertPartition(t, res.Membership, [][]int{{0, 1, 2}, {3, 4, 5}})
}

func TestRunStar(t *testing.T) {
	g := edgeGraph(t, [][3]float64{
		{0, 1, 1}, {0, 2, 1}, {0, 3, 1}, {0, 4, 1}, {0, 5, 1},
	})
	res, err := Run(g, nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	assertPartition(t, res.Membership, [][]int{{0, 1, 2, 3, 4, 5}})
}

func TestRunWeightedPath(t *testing.T) {
	// Path of 6 with a weak middle link splits at the 0.01 edge.
	g := edgeGraph(t, [][3]float64{
		{0, 1, 1}, {1, 2, 1}, {2, 3, 0.01}, {3, 4, 1}, {4, 5, 1},
	})
	res, err := Run(g, nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	assertPartition(t, res.Membership, [][]int{{0, 1, 2}, {3, 4, 5}})
}

func TestRunSelfLoop(t *testing.T) {
	g := graph.New()
	if err := g.AddEdge(0, 0, 2); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}
	vtot := VertexWeights(g)
	if vtot[0] != 2 {
		t.Errorf("vtot[0] = %f, want 2", vtot[0])
	}
	if m := totalEdgeWeight(vtot); m != 1 {
		t.Errorf("M = %f, want 1", m)
	}
	res, err := Run(g, nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Membership[0] != 0 {
		t.Errorf("membership[0] = %d, want 0", res.Membership[0])
	}
}

func TestRunEmptyGraph(t *testing.T) {
	res, err := Run(graph.New(), nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(res.Membership) != 0 {
		t.Errorf("membership length = %d, want 0", len(res.Membership))
	}
	if res.Iterations != 0 || res.Passes != 0 {
		t.Errorf("iterations, passes = %d, %d, want 0, 0", res.Iterations, res.Passes)
	}
}

func TestRunSingleVertex(t *testing.T) {
	g := graph.New()
	g.AddVertex(0)
	res, err := Run(g, nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Membership[0] != 0 {
		t.Errorf("membership[0] = %d, want 0", res.Membership[0])
	}
}

func TestRunIsolatedVertices(t *testing.T) {
	g := graph.New()
	g.AddVertex(0)
	g.AddVertex(1)
	res, err := Run(g, nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	assertPartition(t, res.Membership, [][]int{{0}, {1}})
}

func TestRunDisconnectedComponents(t *testing.T) {
	// Two disjoint triangles: no cross-component community can ever form.
	g := edgeGraph(t, [][3]float64{
		{0, 1, 1}, {1, 2, 1}, {0, 2, 1},
		{3, 4, 1}, {4, 5, 1}, {3, 5, 1},
	})
	res, err := Run(g, nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	assertPartition(t, res.Membership, [][]int{{0, 1, 2}, {3, 4, 5}})
}

func TestRunCompleteGraph(t *testing.T) {
	g := graph.New()
	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			g.AddEdge(i, j, 1)
		}
	}
	res, err := Run(g, nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	assertPartition(t, res.Membership, [][]int{{0, 1, 2, 3}})
}

func TestRunRepeat(t *testing.T) {
	cfg := NewConfig()
	cfg.Set("algorithm.repeat", 3)
	res, err := Run(bridgedTriangles(t), cfg)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	assertPartition(t, res.Membership, [][]int{{0, 1, 2}, {3, 4, 5}})
}

func TestRunMalformedGraph(t *testing.T) {
	g := graph.New()
	g.AddVertex(0)
	g.AddVertex(1)
	// AddDirectedEdge applies the same weight check as AddEdge, so a
	// negative-weight graph cannot be built and never reaches Run.
	if err := g.AddDirectedEdge(0, 1, -1); err == nil {
		t.Fatal("expected AddDirectedEdge to reject a negative weight")
	}
}

func TestRunOptionDomain(t *testing.T) {
	cases := []struct {
		name  string
		key   string
		value interface{}
	}{
		{"ZeroResolution", "algorithm.resolution", 0.0},
		{"NegativeResolution", "algorithm.resolution", -1.0},
		{"NegativeMaxIterations", "algorithm.max_iterations", -1},
		{"NegativeDeclineFactor", "algorithm.tolerance_decline_factor", -0.5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := NewConfig()
			cfg.Set(tc.key, tc.value)
			if _, err := Run(triangle(t), cfg); err == nil {
				t.Errorf("Run accepted %s = %v", tc.key, tc.value)
			}
		})
	}
}

func TestRunZeroMaxIterations(t *testing.T) {
	// Zero sweeps allowed: the solver must return without moving anything.
	cfg := NewConfig()
	cfg.Set("algorithm.max_iterations", 0)
	res, err := Run(triangle(t), cfg)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Iterations != 0 {
		t.Errorf("iterations = %d, want 0", res.Iterations)
	}
	assertPartition(t, res.Membership, [][]int{{0}, {1}, {2}})
}
