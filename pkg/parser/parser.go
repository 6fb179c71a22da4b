package parser

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/gilchrisn/louvain-engine/pkg/graph"
)

// LoadMTX reads a MatrixMarket coordinate file into a weighted undirected
// graph. Indices are 1-based in the file and shifted to 0-based keys. A
// missing weight column defaults to 1. Both "symmetric" and "general"
// matrices are accepted; in either case each entry contributes one
// undirected edge.
func LoadMTX(path string) (*graph.Graph, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open MTX file: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 1024*1024), 1024*1024)

	// Header line: %%MatrixMarket matrix coordinate <field> <symmetry>
	if !scanner.Scan() {
		return nil, fmt.Errorf("empty MTX file %s", path)
	}
	header := strings.Fields(strings.ToLower(scanner.Text()))
	if len(header) < 4 || !strings.HasPrefix(header[0], "%%matrixmarket") || header[2] != "coordinate" {
		return nil, fmt.Errorf("unsupported MTX header in %s: %q", path, scanner.Text())
	}

	// Skip comment lines, then read the size line.
	var rows, cols int
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "%") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 3 {
			return nil, fmt.Errorf("malformed MTX size line in %s: %q", path, line)
		}
		if rows, err = strconv.Atoi(fields[0]); err != nil {
			return nil, fmt.Errorf("malformed MTX size line in %s: %w", path, err)
		}
		if cols, err = strconv.Atoi(fields[1]); err != nil {
			return nil, fmt.Errorf("malformed MTX size line in %s: %w", path, err)
		}
		break
	}

	span := rows
	if cols > span {
		span = cols
	}
	g := graph.NewWithSpan(span)
	for u := 0; u < span; u++ {
		g.AddVertex(u)
	}

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "%") {
			continue
		}
		u, v, w, err := parseEdgeLine(line, 1)
		if err != nil {
			return nil, fmt.Errorf("malformed MTX entry in %s: %w", path, err)
		}
		if err := g.AddEdge(u, v, w); err != nil {
			return nil, fmt.Errorf("invalid MTX entry in %s: %w", path, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read MTX file %s: %w", path, err)
	}
	return g, nil
}

// LoadEdgeList reads a SNAP-style edge list: whitespace-separated
// "u v [weight]" lines with 0-based indices, '#' comments ignored. The
// weight defaults to 1.
func LoadEdgeList(path string) (*graph.Graph, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open edge list: %w", err)
	}
	defer file.Close()

	g := graph.New()
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 1024*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		u, v, w, err := parseEdgeLine(line, 0)
		if err != nil {
			return nil, fmt.Errorf("malformed edge in %s: %w", path, err)
		}
		if err := g.AddEdge(u, v, w); err != nil {
			return nil, fmt.Errorf("invalid edge in %s: %w", path, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read edge list %s: %w", path, err)
	}
	return g, nil
}

// parseEdgeLine parses "u v [w]", shifting indices down by base.
func parseEdgeLine(line string, base int) (int, int, float64, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return 0, 0, 0, fmt.Errorf("expected at least 2 fields, got %q", line)
	}
	u, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("bad source vertex %q: %w", fields[0], err)
	}
	v, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("bad target vertex %q: %w", fields[1], err)
	}
	w := 1.0
	if len(fields) > 2 {
		if w, err = strconv.ParseFloat(fields[2], 64); err != nil {
			return 0, 0, 0, fmt.Errorf("bad edge weight %q: %w", fields[2], err)
		}
	}
	u -= base
	v -= base
	if u < 0 || v < 0 {
		return 0, 0, 0, fmt.Errorf("vertex index below %d in %q", base, line)
	}
	return u, v, w, nil
}
