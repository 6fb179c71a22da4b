package parser

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoadMTX(t *testing.T) {
	path := writeFile(t, "triangle.mtx", `%%MatrixMarket matrix coordinate real symmetric
% triangle with one weighted edge
3 3 3
1 2 1.0
2 3 1.0
1 3 0.5
`)
	g, err := LoadMTX(path)
	if err != nil {
		t.Fatalf("LoadMTX: %v", err)
	}
	if g.Span() != 3 || g.Order() != 3 {
		t.Errorf("span, order = %d, %d, want 3, 3", g.Span(), g.Order())
	}
	if w := g.EdgeValue(0, 2); w != 0.5 {
		t.Errorf("EdgeValue(0,2) = %f, want 0.5", w)
	}
	if !g.HasEdge(2, 1) {
		t.Error("symmetric half of edge 2-3 missing")
	}
}

func TestLoadMTXPatternDefaultsWeight(t *testing.T) {
	path := writeFile(t, "pattern.mtx", `%%MatrixMarket matrix coordinate pattern symmetric
2 2 1
1 2
`)
	g, err := LoadMTX(path)
	if err != nil {
		t.Fatalf("LoadMTX: %v", err)
	}
	if w := g.EdgeValue(0, 1); w != 1 {
		t.Errorf("EdgeValue(0,1) = %f, want 1", w)
	}
}

func TestLoadMTXBadHeader(t *testing.T) {
	path := writeFile(t, "bad.mtx", "not a matrix market file\n1 1 0\n")
	if _, err := LoadMTX(path); err == nil {
		t.Error("LoadMTX accepted a bad header")
	}
}

func TestLoadMTXBadEntry(t *testing.T) {
	path := writeFile(t, "bad_entry.mtx", `%%MatrixMarket matrix coordinate real symmetric
2 2 1
1 x
`)
	if _, err := LoadMTX(path); err == nil {
		t.Error("LoadMTX accepted a malformed entry")
	}
}

func TestLoadEdgeList(t *testing.T) {
	path := writeFile(t, "graph.txt", `# comment line
0 1
1 2 2.5

2 0 0.25
`)
	g, err := LoadEdgeList(path)
	if err != nil {
		t.Fatalf("LoadEdgeList: %v", err)
	}
	if g.Order() != 3 {
		t.Errorf("Order() = %d, want 3", g.Order())
	}
	if w := g.EdgeValue(0, 1); w != 1 {
		t.Errorf("default weight = %f, want 1", w)
	}
	if w := g.EdgeValue(2, 1); w != 2.5 {
		t.Errorf("EdgeValue(2,1) = %f, want 2.5", w)
	}
}

func TestLoadEdgeListNegativeVertex(t *testing.T) {
	path := writeFile(t, "neg.txt", "-1 2\n")
	if _, err := LoadEdgeList(path); err == nil {
		t.Error("LoadEdgeList accepted a negative vertex id")
	}
}

func TestLoadEdgeListNegativeWeight(t *testing.T) {
	path := writeFile(t, "negw.txt", "0 1 -3\n")
	if _, err := LoadEdgeList(path); err == nil {
		t.Error("LoadEdgeList accepted a negative weight")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := LoadEdgeList(filepath.Join(t.TempDir(), "absent.txt")); err == nil {
		t.Error("LoadEdgeList succeeded on a missing file")
	}
}
